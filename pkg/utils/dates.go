package utils

import (
	"time"

	apperrors "sales-system/pkg/errors"
)

const DateLayout = "2006-01-02"

// ParseDate разбирает календарную дату формата YYYY-MM-DD.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, apperrors.NewInvalidInputError("неверный формат даты %q, ожидается YYYY-MM-DD", value)
	}
	return t, nil
}

// ParseDateRange разбирает параметры start/end. Обе границы включительные,
// start не может быть позже end.
func ParseDateRange(startStr, endStr string) (start, end time.Time, err error) {
	if startStr == "" || endStr == "" {
		return start, end, apperrors.NewInvalidInputError("параметры start и end обязательны")
	}
	if start, err = ParseDate(startStr); err != nil {
		return start, end, err
	}
	if end, err = ParseDate(endStr); err != nil {
		return start, end, err
	}
	if start.After(end) {
		return start, end, apperrors.NewInvalidInputError("start не может быть позже end")
	}
	return start, end, nil
}
