package myredis

import (
	"context"
	"encoding/json"

	"myregistry/domain"
	"myregistry/events"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/go-redis/redis/v8"
)

// Event is the JSON message the Notifier publishes.
type Event struct {
	Type         events.Kind          `json:"type"`
	Registration *domain.Registration `json:"registration,omitempty"`
	ID           string               `json:"id"`
}

// Notifier relays emitter events to a redis pub/sub channel so other processes can watch membership.
type Notifier struct {
	client  redis.UniversalClient
	channel string
	logger  log.Logger
}

// NewNotifier creates a Notifier publishing to channel.
func NewNotifier(client redis.UniversalClient, channel string, logger log.Logger) *Notifier {
	return &Notifier{
		client:  client,
		channel: channel,
		logger:  log.WithPrefix(logger, "component", "Notifier", "channel", channel),
	}
}

// Subscribe attaches the notifier to e.
func (n *Notifier) Subscribe(e *events.Emitter) {
	e.OnOnline(func(reg domain.Registration) {
		n.publish(Event{Type: events.KindOnline, Registration: &reg, ID: reg.ID})
	})
	e.OnOffline(func(id string) {
		n.publish(Event{Type: events.KindOffline, ID: id})
	})
}

func (n *Notifier) publish(ev Event) {
	b, err := json.Marshal(ev)
	if err != nil {
		level.Error(n.logger).Log("msg", "Failed to marshal event", "id", ev.ID, "err", err)
		return
	}
	if err := n.client.Publish(context.Background(), n.channel, b).Err(); err != nil {
		level.Error(n.logger).Log("msg", "Failed to publish event", "type", ev.Type, "id", ev.ID, "err", err)
	}
}
