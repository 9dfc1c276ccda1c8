package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/devport/portfolio-api/internal/realtime"
)

const fanoutChannel = "portfolio:events"

// envelope is the wire form on the Redis channel. Origin identifies the
// publishing instance so it can skip its own messages on the way back in.
type envelope struct {
	Origin  string `json:"origin"`
	Event   string `json:"event"`
	Message string `json:"message"`
}

// Fanout bridges the in-process hub to a Redis pub/sub channel so broadcasts
// reach clients connected to sibling instances. It implements realtime.Relay.
type Fanout struct {
	client *redis.Client
	hub    *realtime.Hub
	origin string
	log    zerolog.Logger
}

func NewFanout(client *redis.Client, hub *realtime.Hub, log zerolog.Logger) *Fanout {
	return &Fanout{
		client: client,
		hub:    hub,
		origin: uuid.NewString(),
		log:    log,
	}
}

// Publish pushes a local broadcast onto the shared channel.
func (f *Fanout) Publish(ctx context.Context, n realtime.Notice) error {
	payload, err := json.Marshal(envelope{Origin: f.origin, Event: n.Event, Message: n.Message})
	if err != nil {
		return fmt.Errorf("marshal fanout envelope: %w", err)
	}
	if err := f.client.Publish(ctx, fanoutChannel, payload).Err(); err != nil {
		return fmt.Errorf("publish fanout: %w", err)
	}
	return nil
}

// Run subscribes to the shared channel and injects messages from sibling
// instances into the local hub. Blocks until ctx is cancelled.
func (f *Fanout) Run(ctx context.Context) {
	sub := f.client.Subscribe(ctx, fanoutChannel)
	defer func() { _ = sub.Close() }()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case m, ok := <-ch:
			if !ok {
				return
			}
			var env envelope
			if err := json.Unmarshal([]byte(m.Payload), &env); err != nil {
				f.log.Warn().Err(err).Msg("malformed fanout envelope dropped")
				continue
			}
			if env.Origin == f.origin {
				continue
			}
			f.hub.Broadcast(realtime.Notice{Event: env.Event, Message: env.Message})
		}
	}
}
