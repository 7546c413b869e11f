// Package event declares the in-process event topics and their payloads.
//
// Delivery is at-most-once: events live only in memory, handlers are not
// retried, and anything pending when the process stops is lost. Summaries can
// always be regenerated by another comment or a manual summary update.
package event

import "context"

// Topic names an event type and binds it to its payload type.
type Topic[T any] struct {
	name string
}

// NewTopic declares a topic.
func NewTopic[T any](name string) Topic[T] {
	return Topic[T]{name: name}
}

// Name returns the wire name of the topic.
func (t Topic[T]) Name() string {
	return t.name
}

// Emitter is the untyped side of the event bus. Use Emit for type safety.
type Emitter interface {
	EmitEvent(ctx context.Context, topic string, payload any)
}

// Emit publishes payload on topic through e.
func Emit[T any](ctx context.Context, e Emitter, topic Topic[T], payload T) {
	e.EmitEvent(ctx, topic.Name(), payload)
}

// CommentAddedPayload is carried by CommentAdded.
type CommentAddedPayload struct {
	BuildingID string `json:"buildingId"`
	CommentID  string `json:"commentId"`
}

// CommentAdded fires after a comment has been persisted.
var CommentAdded = NewTopic[CommentAddedPayload]("COMMENT_ADDED")
