package validation

import (
	"time"

	"github.com/go-playground/validator/v10"
)

func registerRules(v *validator.Validate) error {
	return v.RegisterValidation("sale_date", isCalendarDate)
}

// isCalendarDate проверяет, что строка — календарная дата формата YYYY-MM-DD.
func isCalendarDate(fl validator.FieldLevel) bool {
	_, err := time.Parse("2006-01-02", fl.Field().String())
	return err == nil
}
