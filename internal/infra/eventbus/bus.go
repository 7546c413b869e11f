// Package eventbus is the in-process implementation of event.Emitter.
package eventbus

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"

	"rating/internal/domain/event"
	"rating/internal/infra/metrics"
)

type handlerFunc func(ctx context.Context, payload any)

type subscriber struct {
	id      uint64
	handler handlerFunc
}

// Subscription identifies a registered handler for Off.
type Subscription struct {
	topic string
	id    uint64
}

// Bus fans events out synchronously to the handlers of a topic in
// registration order. Handlers that need to do slow work must hand it to a
// Dispatcher instead of blocking the emitter.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]subscriber
	nextID   atomic.Uint64

	logger  *slog.Logger
	metrics *metrics.Collector
}

// NewBus creates an empty bus.
func NewBus(logger *slog.Logger, collector *metrics.Collector) *Bus {
	return &Bus{
		handlers: make(map[string][]subscriber),
		logger:   logger,
		metrics:  collector,
	}
}

// On registers handler for topic. The payload type is checked at compile time
// on both sides through event.Topic.
func On[T any](b *Bus, topic event.Topic[T], handler func(ctx context.Context, payload T)) Subscription {
	name := topic.Name()
	id := b.nextID.Add(1)

	wrapped := func(ctx context.Context, payload any) {
		typed, ok := payload.(T)
		if !ok {
			b.logger.WarnContext(ctx, "Dropping event with unexpected payload type",
				slog.String("topic", name),
				slog.String("payload_type", fmt.Sprintf("%T", payload)),
			)

			return
		}
		handler(ctx, typed)
	}

	b.mu.Lock()
	b.handlers[name] = append(b.handlers[name], subscriber{id: id, handler: wrapped})
	b.mu.Unlock()

	return Subscription{topic: name, id: id}
}

// Off removes a handler. Removing an unknown subscription is a no-op.
func (b *Bus) Off(sub Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.handlers[sub.topic]
	idx := slices.IndexFunc(subs, func(s subscriber) bool { return s.id == sub.id })
	if idx < 0 {
		return
	}

	b.handlers[sub.topic] = slices.Delete(slices.Clone(subs), idx, idx+1)
}

// EmitEvent implements event.Emitter.
func (b *Bus) EmitEvent(ctx context.Context, topic string, payload any) {
	b.mu.RLock()
	subs := b.handlers[topic]
	b.mu.RUnlock()

	if b.metrics != nil {
		b.metrics.EventsEmitted.WithLabelValues(topic).Inc()
	}

	for _, sub := range subs {
		b.invoke(ctx, topic, sub.handler, payload)
	}
}

// HandlerCount returns the number of handlers registered for topic.
func (b *Bus) HandlerCount(topic string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.handlers[topic])
}

func (b *Bus) invoke(ctx context.Context, topic string, handler handlerFunc, payload any) {
	defer func() {
		if r := recover(); r != nil {
			if b.metrics != nil {
				b.metrics.HandlerPanics.WithLabelValues(topic).Inc()
			}
			b.logger.ErrorContext(ctx, "Event handler panicked",
				slog.String("topic", topic),
				slog.Any("panic", r),
			)
		}
	}()

	handler(ctx, payload)
}
