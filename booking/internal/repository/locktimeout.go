package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

// LockTimeout abstracts how a backing engine exposes its lock-wait bound.
// Postgres uses a session/transaction variable; other engines configure the
// wait differently, so the engine-specific part lives behind this port and is
// selected at startup.
type LockTimeout interface {
	Set(ctx context.Context, tx *sqlx.Tx, d time.Duration) error
}

func NewLockTimeout(driver string) (LockTimeout, error) {
	switch driver {
	case "pgx", "postgres":
		return postgresLockTimeout{}, nil
	default:
		return nil, errors.Errorf("no lock timeout support for driver %q", driver)
	}
}

type postgresLockTimeout struct{}

func (postgresLockTimeout) Set(ctx context.Context, tx *sqlx.Tx, d time.Duration) error {
	// SET LOCAL scopes the wait bound to the enclosing transaction. The value
	// cannot be bound as a parameter.
	_, err := tx.ExecContext(ctx, fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", d.Milliseconds()))
	return err
}
