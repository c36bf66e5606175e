package e

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func Wrap(message string, err error) error {
	return fmt.Errorf("%s: %w", message, err)
}

var (
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInternal           = errors.New("internal error")
	ErrDeadline           = errors.New("deadline exceeded")
	ErrCanceled           = errors.New("context canceled")
	ErrUniqueViolation    = errors.New("unique violation")
	ErrInvalidCoordinates = errors.New("invalid coordinates")
	ErrInvalidOwner       = errors.New("invalid owner")

	// routing
	ErrNoRoute           = errors.New("no route available")
	ErrNoSafeBorderPoint = errors.New("no safe border point")
	ErrNoShelters        = errors.New("no shelters available")
	ErrNoHitAreas        = errors.New("no hit areas")

	ErrNotificationQueueEmpty = errors.New("notification queue is empty")
	ErrLocationUnavailable    = errors.New("location unavailable")
)

// IsNoRoute reports whether err is one of the planner outcomes the caller
// should surface as "no route" rather than as a server failure.
func IsNoRoute(err error) bool {
	return errors.Is(err, ErrNoRoute) ||
		errors.Is(err, ErrNoSafeBorderPoint) ||
		errors.Is(err, ErrNoShelters) ||
		errors.Is(err, ErrNoHitAreas)
}

func WrapError(ctx context.Context, op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", op, ErrDeadline)
	}
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", op, ErrCanceled)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return fmt.Errorf("%s: %w", op, ErrUniqueViolation)
		case "23503", "23514", "22P02":
			return fmt.Errorf("%s: %w", op, ErrInvalidInput)
		default:
			return fmt.Errorf("%s: pg error %s: %w", op, pgErr.Code, ErrInternal)
		}
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return fmt.Errorf("%s: %w", op, ErrInternal)
}
