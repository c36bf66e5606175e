package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"drp/internal/domain"

	goredis "github.com/redis/go-redis/v9"
)

const activeIncidentsKey = "incidents:active"

// IncidentCache keeps the active incident list that field devices poll.
type IncidentCache struct {
	client *goredis.Client
	key    string
}

func NewIncidentCache(r *Redis) *IncidentCache {
	return &IncidentCache{
		client: r.Client,
		key:    activeIncidentsKey,
	}
}

// GetActive returns nil, nil on a cache miss.
func (c *IncidentCache) GetActive(ctx context.Context) ([]*domain.Incident, error) {
	data, err := c.client.Get(ctx, c.key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var incidents []*domain.Incident
	if err := json.Unmarshal(data, &incidents); err != nil {
		return nil, err
	}

	return incidents, nil
}

func (c *IncidentCache) SetActive(ctx context.Context, incidents []*domain.Incident, ttl time.Duration) error {
	if incidents == nil {
		incidents = []*domain.Incident{}
	}
	b, err := json.Marshal(incidents)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key, b, ttl).Err()
}

func (c *IncidentCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, c.key).Err()
}
