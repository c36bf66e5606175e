package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"drp/internal/domain"
	"drp/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Incidents struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewIncidents(pool *pgxpool.Pool, logger *slog.Logger) *Incidents {
	return &Incidents{pool: pool, logger: logger}
}

const incidentColumns = `
	id,
	ST_Y(geo_point::geometry) AS lat,
	ST_X(geo_point::geometry) AS lng,
	type_id,
	type_name,
	severity,
	description,
	is_fake,
	created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanIncident(row rowScanner) (*domain.Incident, error) {
	var (
		inc    domain.Incident
		typeID pgtype.UUID
	)
	if err := row.Scan(
		&inc.ID,
		&inc.Lat,
		&inc.Lng,
		&typeID,
		&inc.TypeName,
		&inc.Severity,
		&inc.Description,
		&inc.IsFake,
		&inc.CreatedAt,
	); err != nil {
		return nil, err
	}
	if typeID.Valid {
		inc.TypeID = uuid.UUID(typeID.Bytes)
	}
	return &inc, nil
}

func collectIncidents(rows pgx.Rows) ([]*domain.Incident, error) {
	defer rows.Close()

	incidents := make([]*domain.Incident, 0, 16)
	for rows.Next() {
		inc, err := scanIncident(rows)
		if err != nil {
			return nil, err
		}
		incidents = append(incidents, inc)
	}
	return incidents, rows.Err()
}

func (p *Incidents) Create(ctx context.Context, incident *domain.Incident) error {
	const op = "postgres.Incident.Create"

	if incident == nil {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	if incident.ID == uuid.Nil {
		incident.ID = uuid.New()
	}
	if incident.CreatedAt.IsZero() {
		incident.CreatedAt = time.Now().UTC()
	}
	if incident.Severity == "" {
		incident.Severity = domain.SeverityMedium
	}

	const query = `
		INSERT INTO incidents (id, geo_point, type_id, type_name, severity, description, is_fake, created_at)
		VALUES ($1, ST_SetSRID(ST_MakePoint($2, $3), 4326), $4, $5, $6, $7, $8, $9)
	`

	_, err := p.pool.Exec(ctx, query,
		incident.ID,
		incident.Lng,
		incident.Lat,
		pgtype.UUID{Bytes: incident.TypeID, Valid: incident.TypeID != uuid.Nil},
		incident.TypeName,
		incident.Severity,
		incident.Description,
		incident.IsFake,
		incident.CreatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed",
			slog.String("op", op),
			slog.Any("error", err),
		)
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *Incidents) Get(ctx context.Context, id uuid.UUID) (*domain.Incident, error) {
	const op = "postgres.Incident.Get"

	query := `SELECT ` + incidentColumns + ` FROM incidents WHERE id = $1`

	inc, err := scanIncident(p.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return inc, nil
}

func (p *Incidents) List(ctx context.Context, page, limit int) ([]*domain.Incident, int64, error) {
	const op = "postgres.Incident.List"

	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	var total int64
	if err := p.pool.QueryRow(ctx, `SELECT COUNT(*) FROM incidents`).Scan(&total); err != nil {
		p.logger.Error("db count failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	query := `SELECT ` + incidentColumns + `
		FROM incidents
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	rows, err := p.pool.Query(ctx, query, limit, offset)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}
	incidents, err := collectIncidents(rows)
	if err != nil {
		p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	return incidents, total, nil
}

// ListActive returns every incident not flagged as fake, newest first.
func (p *Incidents) ListActive(ctx context.Context) ([]*domain.Incident, error) {
	const op = "postgres.Incident.ListActive"

	query := `SELECT ` + incidentColumns + `
		FROM incidents
		WHERE is_fake = false
		ORDER BY created_at DESC`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	incidents, err := collectIncidents(rows)
	if err != nil {
		p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	return incidents, nil
}

// ListNear returns active incidents within radius meters of p.
func (p *Incidents) ListNear(ctx context.Context, pt domain.Point, radius float64) ([]*domain.Incident, error) {
	const op = "postgres.Incident.ListNear"

	if pt.Lat < -90 || pt.Lat > 90 || pt.Lng < -180 || pt.Lng > 180 || radius <= 0 {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}

	query := `SELECT ` + incidentColumns + `
		FROM incidents
		WHERE is_fake = false
		  AND ST_DWithin(geo_point, ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography, $3)
		ORDER BY ST_Distance(geo_point, ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography)`

	rows, err := p.pool.Query(ctx, query, pt.Lng, pt.Lat, radius)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	incidents, err := collectIncidents(rows)
	if err != nil {
		p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	return incidents, nil
}

func (p *Incidents) MarkFake(ctx context.Context, id uuid.UUID, fake bool) error {
	const op = "postgres.Incident.MarkFake"

	tag, err := p.pool.Exec(ctx, `UPDATE incidents SET is_fake = $2 WHERE id = $1`, id, fake)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	return nil
}
