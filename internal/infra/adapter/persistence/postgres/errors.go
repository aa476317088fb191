package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"newsapi/internal/domain/entity"
)

// PostgreSQL error codes the repositories care about.
const (
	codeStringTooLong    = "22001"
	codeNotNullViolation = "23502"
	codeFKViolation      = "23503"
	codeUniqueViolation  = "23505"
	codeCheckViolation   = "23514"
)

// mapError translates driver-level constraint errors into domain sentinels.
// Unique and foreign key violations become ErrConflict; not-null, check and
// over-length violations become ErrInvalidInput. Anything else passes through.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case codeUniqueViolation, codeFKViolation:
		return fmt.Errorf("%w: %s", entity.ErrConflict, pgErr.Message)
	case codeNotNullViolation, codeCheckViolation, codeStringTooLong:
		return fmt.Errorf("%w: %s", entity.ErrInvalidInput, pgErr.Message)
	}
	return err
}
