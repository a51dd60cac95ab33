package postgres

import (
	"catconnect/pkg/storage"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// mapWriteError converts unique violations into storage.ErrDuplicate and
// wraps everything else with msg.
func mapWriteError(err error, msg string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return fmt.Errorf("%s: %w (%s)", msg, storage.ErrDuplicate, pgErr.ConstraintName)
	}

	return fmt.Errorf("%s: %w", msg, err)
}
