package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"drp/internal/domain"
	"drp/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Shelters struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewShelters(pool *pgxpool.Pool, logger *slog.Logger) *Shelters {
	return &Shelters{pool: pool, logger: logger}
}

func (p *Shelters) Create(ctx context.Context, s *domain.Shelter) error {
	const op = "postgres.Shelter.Create"

	if s == nil {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}

	const query = `
		INSERT INTO shelters (id, title, geo_point, capacity)
		VALUES ($1, $2, ST_SetSRID(ST_MakePoint($3, $4), 4326), $5)
	`
	if _, err := p.pool.Exec(ctx, query, s.ID, s.Title, s.Lng, s.Lat, s.Capacity); err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (p *Shelters) List(ctx context.Context) ([]domain.Shelter, error) {
	const op = "postgres.Shelter.List"

	const query = `
		SELECT id, title, ST_Y(geo_point::geometry), ST_X(geo_point::geometry), capacity
		FROM shelters
		ORDER BY title
	`
	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	shelters := make([]domain.Shelter, 0, 16)
	for rows.Next() {
		var s domain.Shelter
		if err := rows.Scan(&s.ID, &s.Title, &s.Lat, &s.Lng, &s.Capacity); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		shelters = append(shelters, s)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return shelters, nil
}

func (p *Shelters) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "postgres.Shelter.Delete"

	tag, err := p.pool.Exec(ctx, `DELETE FROM shelters WHERE id = $1`, id)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	return nil
}
