package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"spendguard/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// EventPublisher implements ports.EventPublisher over a Redis stream.
// Each event becomes one XADD entry carrying the dotted topic and a
// JSON payload, so downstream consumers can replay from any offset.
type EventPublisher struct {
	client *goredis.Client
	stream string
	maxLen int64
	log    zerolog.Logger
}

// NewEventPublisher creates a publisher writing to the given stream.
// maxLen caps the stream with approximate trimming; zero disables it.
func NewEventPublisher(client *goredis.Client, stream string, maxLen int64, log zerolog.Logger) *EventPublisher {
	return &EventPublisher{
		client: client,
		stream: stream,
		maxLen: maxLen,
		log:    log,
	}
}

// Publish appends the event to the stream.
func (p *EventPublisher) Publish(ctx context.Context, event domain.Event) error {
	payload, err := json.Marshal(event.Payload)
	if err != nil {
		return fmt.Errorf("marshal event payload: %w", err)
	}

	args := &goredis.XAddArgs{
		Stream: p.stream,
		Values: map[string]interface{}{
			"topic":   strings.Join(event.Topic, "."),
			"payload": string(payload),
		},
	}
	if p.maxLen > 0 {
		args.MaxLen = p.maxLen
		args.Approx = true
	}

	id, err := p.client.XAdd(ctx, args).Result()
	if err != nil {
		return fmt.Errorf("xadd event: %w", err)
	}

	p.log.Debug().
		Str("stream", p.stream).
		Str("id", id).
		Strs("topic", event.Topic).
		Msg("Event published")

	return nil
}
