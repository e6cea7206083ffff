package publish

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
)

// RedisStream publishes accepted steps to a Redis stream via XADD, grounded
// in the teacher corpus's redis.NewClient(&redis.Options{...}) wiring
// (WavesMan-ip-api/internal/utils.OpenRedisFromEnv), standing in for the
// original AMQP queue per SPEC_FULL §6.4.
type RedisStream struct {
	client *redis.Client
	stream string
}

// NewRedisStream builds a RedisStream publisher writing to stream on
// client. The caller owns client's lifecycle (creation and Close).
func NewRedisStream(client *redis.Client, stream string) *RedisStream {
	return &RedisStream{client: client, stream: stream}
}

// OpenFromAddr dials a Redis client at addr, mirroring the teacher's
// OpenRedis(addr, pass) helper. Returns nil if addr is empty.
func OpenFromAddr(addr string) *redis.Client {
	if addr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{Addr: addr})
}

// Publish serializes step as JSON and XADDs it to the configured stream.
func (p *RedisStream) Publish(ctx context.Context, step PublishedStep) error {
	payload, err := json.Marshal(step)
	if err != nil {
		return err
	}
	return p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: map[string]interface{}{"step": payload},
	}).Err()
}
