package repositories

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	apperrors "sales-system/pkg/errors"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// translatePgError переводит ошибки ограничений PostgreSQL в доменные:
// нарушение уникальности и нарушение ссылочной целостности — конфликт.
func translatePgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("нарушено ограничение уникальности %s: %w", pgErr.ConstraintName, apperrors.ErrConflict)
		case pgForeignKeyViolation:
			return fmt.Errorf("нарушена ссылочная целостность (%s): %w", pgErr.ConstraintName, apperrors.ErrConflict)
		}
	}
	return err
}
