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

// Locations stores device positions and answers radius queries for the
// notifier. Distances are computed on geography, so radius is in meters.
type Locations struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewLocations(pool *pgxpool.Pool, logger *slog.Logger) *Locations {
	return &Locations{pool: pool, logger: logger}
}

func validPoint(p domain.Point) bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}

func (p *Locations) UpsertLive(ctx context.Context, loc *domain.LiveLocation) error {
	const op = "postgres.Location.UpsertLive"

	if loc == nil || loc.UserID == uuid.Nil || loc.DeviceID == "" {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	if !validPoint(domain.Point{Lat: loc.Lat, Lng: loc.Lng}) {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}
	if loc.Timestamp.IsZero() {
		loc.Timestamp = time.Now().UTC()
	}

	const query = `
		INSERT INTO live_locations (user_id, device_id, geo_point, recorded_at)
		VALUES ($1, $2, ST_SetSRID(ST_MakePoint($3, $4), 4326), $5)
		ON CONFLICT (user_id, device_id)
		DO UPDATE SET geo_point = EXCLUDED.geo_point, recorded_at = EXCLUDED.recorded_at
	`
	if _, err := p.pool.Exec(ctx, query, loc.UserID, loc.DeviceID, loc.Lng, loc.Lat, loc.Timestamp); err != nil {
		p.logger.Error("db exec failed",
			slog.String("op", op),
			slog.Any("error", err),
			slog.String("user_id", loc.UserID.String()),
		)
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (p *Locations) UpsertGuest(ctx context.Context, g *domain.Guest) error {
	const op = "postgres.Location.UpsertGuest"

	if g == nil || g.ID == uuid.Nil {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	if !validPoint(domain.Point{Lat: g.Lat, Lng: g.Lng}) {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}
	if g.LastActive.IsZero() {
		g.LastActive = time.Now().UTC()
	}

	const query = `
		INSERT INTO guests (id, geo_point, last_active)
		VALUES ($1, ST_SetSRID(ST_MakePoint($2, $3), 4326), $4)
		ON CONFLICT (id)
		DO UPDATE SET geo_point = EXCLUDED.geo_point, last_active = EXCLUDED.last_active
	`
	if _, err := p.pool.Exec(ctx, query, g.ID, g.Lng, g.Lat, g.LastActive); err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

// SaveManual stores a named location; saving the same name again moves it.
func (p *Locations) SaveManual(ctx context.Context, loc *domain.ManualLocation) error {
	const op = "postgres.Location.SaveManual"

	if loc == nil || loc.UserID == uuid.Nil {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	if !validPoint(domain.Point{Lat: loc.Lat, Lng: loc.Lng}) {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}
	if loc.ID == uuid.Nil {
		loc.ID = uuid.New()
	}

	const query = `
		INSERT INTO manual_locations (id, user_id, name, geo_point)
		VALUES ($1, $2, $3, ST_SetSRID(ST_MakePoint($4, $5), 4326))
		ON CONFLICT (user_id, name)
		DO UPDATE SET geo_point = EXCLUDED.geo_point
		RETURNING id
	`
	if err := p.pool.QueryRow(ctx, query, loc.ID, loc.UserID, loc.Name, loc.Lng, loc.Lat).Scan(&loc.ID); err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (p *Locations) GuestsNear(ctx context.Context, pt domain.Point, radius float64) ([]domain.Guest, error) {
	const op = "postgres.Location.GuestsNear"

	if !validPoint(pt) || radius <= 0 {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}

	const query = `
		SELECT id, ST_Y(geo_point::geometry), ST_X(geo_point::geometry), last_active
		FROM guests
		WHERE ST_DWithin(geo_point, ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography, $3)
	`
	rows, err := p.pool.Query(ctx, query, pt.Lng, pt.Lat, radius)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	guests := make([]domain.Guest, 0, 8)
	for rows.Next() {
		var g domain.Guest
		if err := rows.Scan(&g.ID, &g.Lat, &g.Lng, &g.LastActive); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		guests = append(guests, g)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return guests, nil
}

// LiveUsersNear returns live fixes within radius recorded at or after since.
func (p *Locations) LiveUsersNear(ctx context.Context, pt domain.Point, radius float64, since time.Time) ([]domain.LiveLocation, error) {
	const op = "postgres.Location.LiveUsersNear"

	if !validPoint(pt) || radius <= 0 {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}

	const query = `
		SELECT user_id, device_id, ST_Y(geo_point::geometry), ST_X(geo_point::geometry), recorded_at
		FROM live_locations
		WHERE recorded_at >= $4
		  AND ST_DWithin(geo_point, ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography, $3)
	`
	rows, err := p.pool.Query(ctx, query, pt.Lng, pt.Lat, radius, since)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	out := make([]domain.LiveLocation, 0, 8)
	for rows.Next() {
		var l domain.LiveLocation
		if err := rows.Scan(&l.UserID, &l.DeviceID, &l.Lat, &l.Lng, &l.Timestamp); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return out, nil
}

func (p *Locations) ManualUsersNear(ctx context.Context, pt domain.Point, radius float64) ([]domain.ManualLocation, error) {
	const op = "postgres.Location.ManualUsersNear"

	if !validPoint(pt) || radius <= 0 {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}

	const query = `
		SELECT id, user_id, name, ST_Y(geo_point::geometry), ST_X(geo_point::geometry)
		FROM manual_locations
		WHERE ST_DWithin(geo_point, ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography, $3)
	`
	rows, err := p.pool.Query(ctx, query, pt.Lng, pt.Lat, radius)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	out := make([]domain.ManualLocation, 0, 8)
	for rows.Next() {
		var m domain.ManualLocation
		if err := rows.Scan(&m.ID, &m.UserID, &m.Name, &m.Lat, &m.Lng); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return out, nil
}

// DeleteInactiveGuests removes guests not seen since before. It returns the
// number of removed rows.
func (p *Locations) DeleteInactiveGuests(ctx context.Context, before time.Time) (int64, error) {
	const op = "postgres.Location.DeleteInactiveGuests"

	tag, err := p.pool.Exec(ctx, `DELETE FROM guests WHERE last_active < $1`, before)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return 0, e.WrapError(ctx, op, err)
	}
	return tag.RowsAffected(), nil
}
