package postgres

import (
	"context"

	"drp/pkg/e"
)

const schema = `
CREATE EXTENSION IF NOT EXISTS postgis;

CREATE TABLE IF NOT EXISTS incidents (
	id          uuid PRIMARY KEY,
	geo_point   geography(Point, 4326) NOT NULL,
	type_id     uuid,
	type_name   text NOT NULL,
	severity    text NOT NULL DEFAULT 'medium',
	description text NOT NULL DEFAULT '',
	is_fake     boolean NOT NULL DEFAULT false,
	created_at  timestamptz NOT NULL
);
CREATE INDEX IF NOT EXISTS incidents_geo_idx ON incidents USING GIST (geo_point);
CREATE INDEX IF NOT EXISTS incidents_created_idx ON incidents (created_at DESC);

CREATE TABLE IF NOT EXISTS shelters (
	id         uuid PRIMARY KEY,
	title      text NOT NULL,
	geo_point  geography(Point, 4326) NOT NULL,
	capacity   integer NOT NULL DEFAULT 0,
	created_at timestamptz NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS shelters_geo_idx ON shelters USING GIST (geo_point);

CREATE TABLE IF NOT EXISTS live_locations (
	user_id     uuid NOT NULL,
	device_id   text NOT NULL,
	geo_point   geography(Point, 4326) NOT NULL,
	recorded_at timestamptz NOT NULL,
	PRIMARY KEY (user_id, device_id)
);
CREATE INDEX IF NOT EXISTS live_locations_geo_idx ON live_locations USING GIST (geo_point);

CREATE TABLE IF NOT EXISTS manual_locations (
	id        uuid PRIMARY KEY,
	user_id   uuid NOT NULL,
	name      text NOT NULL DEFAULT '',
	geo_point geography(Point, 4326) NOT NULL,
	UNIQUE (user_id, name)
);
CREATE INDEX IF NOT EXISTS manual_locations_geo_idx ON manual_locations USING GIST (geo_point);

CREATE TABLE IF NOT EXISTS guests (
	id          uuid PRIMARY KEY,
	geo_point   geography(Point, 4326) NOT NULL,
	last_active timestamptz NOT NULL
);
CREATE INDEX IF NOT EXISTS guests_geo_idx ON guests USING GIST (geo_point);

CREATE TABLE IF NOT EXISTS push_tokens (
	device_id  text NOT NULL,
	owner_kind text NOT NULL CHECK (owner_kind IN ('user', 'guest')),
	owner_id   uuid NOT NULL,
	token      text NOT NULL,
	last_used  timestamptz NOT NULL,
	PRIMARY KEY (owner_kind, device_id)
);
CREATE INDEX IF NOT EXISTS push_tokens_owner_idx ON push_tokens (owner_kind, owner_id);

CREATE TABLE IF NOT EXISTS notifications (
	id                uuid PRIMARY KEY,
	user_id           uuid NOT NULL,
	incident_id       uuid NOT NULL,
	notification_type text NOT NULL,
	created_at        timestamptz NOT NULL,
	UNIQUE (user_id, incident_id, notification_type)
);
CREATE INDEX IF NOT EXISTS notifications_user_idx ON notifications (user_id, created_at DESC);
`

// Migrate creates the tables and indexes if they do not exist yet.
func (p *Postgres) Migrate(ctx context.Context) error {
	const op = "postgres.Migrate"

	if _, err := p.Pool.Exec(ctx, schema); err != nil {
		return e.WrapError(ctx, op, err)
	}
	return nil
}
