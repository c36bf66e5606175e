package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"drp/internal/domain"
	"drp/pkg/e"

	goredis "github.com/redis/go-redis/v9"
)

const NotificationQueueKey = "notifications:queue"

// NotificationQueue is a FIFO list of notification jobs: producers LPUSH,
// workers BRPOP.
type NotificationQueue struct {
	client *goredis.Client
	key    string
}

func NewNotificationQueue(client *goredis.Client, key string) *NotificationQueue {
	if key == "" {
		key = NotificationQueueKey
	}
	return &NotificationQueue{client: client, key: key}
}

func (q *NotificationQueue) Enqueue(ctx context.Context, job domain.NotificationJob) error {
	b, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("encode notification job: %w", err)
	}
	return q.client.LPush(ctx, q.key, b).Err()
}

// BRPop blocks up to timeout for a job. It returns e.ErrNotificationQueueEmpty
// when nothing arrived.
func (q *NotificationQueue) BRPop(ctx context.Context, timeout time.Duration) (domain.NotificationJob, error) {
	var job domain.NotificationJob

	res, err := q.client.BRPop(ctx, timeout, q.key).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return job, e.ErrNotificationQueueEmpty
		}
		return job, err
	}
	if len(res) < 2 {
		return job, e.ErrNotificationQueueEmpty
	}
	if err := json.Unmarshal([]byte(res[1]), &job); err != nil {
		return job, fmt.Errorf("decode notification job: %w", err)
	}
	return job, nil
}

func (q *NotificationQueue) Len(ctx context.Context) (int64, error) {
	return q.client.LLen(ctx, q.key).Result()
}
