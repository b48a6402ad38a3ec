// Package event fans out change notifications about maintenances and payments.
package event

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/frostguard/frostguard/internal/metrics"
)

type Action string

const (
	ActionInsert Action = "insert"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

type Change struct {
	Entity string    `json:"entity"`
	Action Action    `json:"action"`
	ID     uuid.UUID `json:"id"`
	At     time.Time `json:"at"`
}

// Publisher is what services depend on to announce mutations.
type Publisher interface {
	Publish(ctx context.Context, change Change)
}

const subscriberBuffer = 16

// Broker delivers every published change to all subscribers. A subscriber whose buffer is full misses the change.
type Broker struct {
	mu      sync.Mutex
	clients map[chan []byte]struct{}
	now     func() time.Time
}

func NewBroker() *Broker {
	return &Broker{
		clients: make(map[chan []byte]struct{}),
		now:     time.Now,
	}
}

func (b *Broker) Publish(_ context.Context, change Change) {
	if b == nil {
		return
	}

	if change.At.IsZero() {
		change.At = b.now().UTC()
	}

	payload, err := json.Marshal(change)
	if err != nil {
		slog.Error("failed to encode change event", "entity", change.Entity, "error", err)
		return
	}

	metrics.IncEventPublished(change.Entity)
	b.broadcast(payload)
}

func (b *Broker) Subscribe() chan []byte {
	if b == nil {
		return nil
	}

	ch := make(chan []byte, subscriberBuffer)

	b.mu.Lock()
	b.clients[ch] = struct{}{}
	b.mu.Unlock()

	return ch
}

func (b *Broker) Unsubscribe(ch chan []byte) {
	if b == nil || ch == nil {
		return
	}

	b.mu.Lock()
	_, ok := b.clients[ch]
	delete(b.clients, ch)
	b.mu.Unlock()

	if ok {
		close(ch)
	}
}

func (b *Broker) broadcast(payload []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for ch := range b.clients {
		select {
		case ch <- payload:
		default:
		}
	}
}

// Nop discards every change.
type Nop struct{}

func (Nop) Publish(context.Context, Change) {}
