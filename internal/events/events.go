// Package events fans interview status changes out to dashboard
// listeners through Redis pub/sub. Publishing is a single best-effort
// attempt; a missed event only delays a dashboard refresh.
package events

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
)

// Channel carries InterviewStatusEvent payloads as JSON.
const Channel = "interviews:events"

type InterviewStatusEvent struct {
	InterviewID  string `json:"interviewId"`
	StreamCallID string `json:"streamCallId"`
	Status       string `json:"status"`
	At           int64  `json:"at"` // epoch millis
}

type Publisher interface {
	InterviewStatusChanged(ctx context.Context, ev InterviewStatusEvent) error
}

type RedisPublisher struct {
	rdb *redis.Client
}

func NewRedisPublisher(rdb *redis.Client) *RedisPublisher {
	return &RedisPublisher{rdb: rdb}
}

func (p *RedisPublisher) InterviewStatusChanged(ctx context.Context, ev InterviewStatusEvent) error {
	b, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return p.rdb.Publish(ctx, Channel, b).Err()
}
