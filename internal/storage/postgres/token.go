package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"drp/internal/domain"
	"drp/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Tokens is the push token registry. One token is kept per device and owner
// kind; re-registering a device replaces its token and owner.
type Tokens struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewTokens(pool *pgxpool.Pool, logger *slog.Logger) *Tokens {
	return &Tokens{pool: pool, logger: logger}
}

func (p *Tokens) Upsert(ctx context.Context, t *domain.PushToken) error {
	const op = "postgres.Token.Upsert"

	if t == nil || t.DeviceID == "" || t.Token == "" || t.Owner.ID == uuid.Nil {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	if !t.Owner.Kind.Valid() {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidOwner)
	}
	if t.LastUsed.IsZero() {
		t.LastUsed = time.Now().UTC()
	}

	const query = `
		INSERT INTO push_tokens (device_id, owner_kind, owner_id, token, last_used)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (owner_kind, device_id)
		DO UPDATE SET owner_id = EXCLUDED.owner_id, token = EXCLUDED.token, last_used = EXCLUDED.last_used
	`
	if _, err := p.pool.Exec(ctx, query, t.DeviceID, string(t.Owner.Kind), t.Owner.ID, t.Token, t.LastUsed); err != nil {
		p.logger.Error("db exec failed",
			slog.String("op", op),
			slog.Any("error", err),
			slog.String("owner", t.Owner.String()),
		)
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (p *Tokens) Delete(ctx context.Context, kind domain.OwnerKind, deviceID string) error {
	const op = "postgres.Token.Delete"

	if !kind.Valid() {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidOwner)
	}
	tag, err := p.pool.Exec(ctx, `DELETE FROM push_tokens WHERE owner_kind = $1 AND device_id = $2`, string(kind), deviceID)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	return nil
}

// FindTokens returns the tokens registered for any of owners. Owners are
// grouped by kind so users and guests never match each other's ids.
func (p *Tokens) FindTokens(ctx context.Context, owners []domain.Owner) ([]domain.PushToken, error) {
	const op = "postgres.Token.FindTokens"

	byKind := make(map[domain.OwnerKind][]uuid.UUID, 2)
	for _, o := range owners {
		if !o.Kind.Valid() {
			return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidOwner)
		}
		byKind[o.Kind] = append(byKind[o.Kind], o.ID)
	}

	const query = `
		SELECT owner_kind, owner_id, device_id, token, last_used
		FROM push_tokens
		WHERE owner_kind = $1 AND owner_id = ANY($2)
	`

	tokens := make([]domain.PushToken, 0, len(owners))
	for _, kind := range []domain.OwnerKind{domain.OwnerUser, domain.OwnerGuest} {
		ids := byKind[kind]
		if len(ids) == 0 {
			continue
		}

		rows, err := p.pool.Query(ctx, query, string(kind), ids)
		if err != nil {
			p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		for rows.Next() {
			var (
				t       domain.PushToken
				rawKind string
			)
			if err := rows.Scan(&rawKind, &t.Owner.ID, &t.DeviceID, &t.Token, &t.LastUsed); err != nil {
				rows.Close()
				p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
				return nil, e.WrapError(ctx, op, err)
			}
			t.Owner.Kind = domain.OwnerKind(rawKind)
			tokens = append(tokens, t)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return nil, e.WrapError(ctx, op, err)
		}
	}
	return tokens, nil
}
