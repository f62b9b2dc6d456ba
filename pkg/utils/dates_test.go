package utils

import (
	"testing"
	"time"

	apperrors "sales-system/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), date)

	var invalidInput *apperrors.InvalidInputError
	_, err = ParseDate("01.03.2024")
	assert.ErrorAs(t, err, &invalidInput)

	_, err = ParseDate("2024-13-40")
	assert.ErrorAs(t, err, &invalidInput)
}

func TestParseDateRange(t *testing.T) {
	start, end, err := ParseDateRange("2024-03-01", "2024-03-31")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01", start.Format(DateLayout))
	assert.Equal(t, "2024-03-31", end.Format(DateLayout))

	// Одинаковые границы допустимы: период из одного дня
	_, _, err = ParseDateRange("2024-03-01", "2024-03-01")
	assert.NoError(t, err)

	var invalidInput *apperrors.InvalidInputError

	_, _, err = ParseDateRange("", "2024-03-31")
	assert.ErrorAs(t, err, &invalidInput)

	_, _, err = ParseDateRange("2024-03-01", "")
	assert.ErrorAs(t, err, &invalidInput)

	_, _, err = ParseDateRange("2024-03-31", "2024-03-01")
	assert.ErrorAs(t, err, &invalidInput)
}
