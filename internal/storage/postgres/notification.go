package postgres

import (
	"context"
	"log/slog"
	"time"

	"drp/internal/domain"
	"drp/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Notifications struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewNotifications(pool *pgxpool.Pool, logger *slog.Logger) *Notifications {
	return &Notifications{pool: pool, logger: logger}
}

// InsertNotifications writes all records in one statement. Rows that already
// exist for the same user, incident and type are skipped without failing the
// others. It returns the number of rows written.
func (p *Notifications) InsertNotifications(ctx context.Context, records []domain.NotificationRecord) (int, error) {
	const op = "postgres.Notification.InsertMany"

	if len(records) == 0 {
		return 0, nil
	}

	var (
		ids       = make([]uuid.UUID, len(records))
		users     = make([]uuid.UUID, len(records))
		incidents = make([]uuid.UUID, len(records))
		types     = make([]string, len(records))
		created   = make([]time.Time, len(records))
	)
	now := time.Now().UTC()
	for i, r := range records {
		ids[i] = uuid.New()
		users[i] = r.UserID
		incidents[i] = r.IncidentID
		types[i] = string(r.Type)
		created[i] = r.CreatedAt
		if created[i].IsZero() {
			created[i] = now
		}
	}

	const query = `
		INSERT INTO notifications (id, user_id, incident_id, notification_type, created_at)
		SELECT * FROM unnest($1::uuid[], $2::uuid[], $3::uuid[], $4::text[], $5::timestamptz[])
		ON CONFLICT (user_id, incident_id, notification_type) DO NOTHING
	`
	tag, err := p.pool.Exec(ctx, query, ids, users, incidents, types, created)
	if err != nil {
		p.logger.Error("db exec failed",
			slog.String("op", op),
			slog.Int("records", len(records)),
			slog.Any("error", err),
		)
		return 0, e.WrapError(ctx, op, err)
	}

	inserted := int(tag.RowsAffected())
	if skipped := len(records) - inserted; skipped > 0 {
		p.logger.Debug("duplicate notification records skipped", slog.String("op", op), slog.Int("skipped", skipped))
	}
	return inserted, nil
}

func (p *Notifications) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.NotificationRecord, error) {
	const op = "postgres.Notification.ListByUser"

	if limit <= 0 || limit > 200 {
		limit = 50
	}

	const query = `
		SELECT user_id, incident_id, notification_type, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := p.pool.Query(ctx, query, userID, limit)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	out := make([]domain.NotificationRecord, 0, limit)
	for rows.Next() {
		var (
			r   domain.NotificationRecord
			typ string
		)
		if err := rows.Scan(&r.UserID, &r.IncidentID, &typ, &r.CreatedAt); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		r.Type = domain.NotificationType(typ)
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return out, nil
}
