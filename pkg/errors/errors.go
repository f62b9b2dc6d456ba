package errors

import "fmt"

var (
	// Общие ошибки доменного уровня
	ErrNotFound   = fmt.Errorf("запись не найдена")
	ErrConflict   = fmt.Errorf("запись с такими уникальными параметрами уже существует")
	ErrBadRequest = fmt.Errorf("неверный запрос")
)

// InvalidInputError — ошибка валидации входных параметров.
// Отсекается на границе, до обращения к базе данных.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

func NewInvalidInputError(format string, args ...interface{}) error {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}
