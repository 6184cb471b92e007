package bus

import "time"

// Bus is a thread-safe, in-process pub/sub fabric for trigger events,
// typically carrying Callback payloads that downstream handlers turn into
// deferred runs.
//
// Characteristics:
// - Type-based fan-out: handlers subscribe by Event.Type() string.
// - Synchronous delivery: Publish invokes handlers in the caller goroutine,
//   in subscription order.
// - Batch publish orders events by priority (ties keep submission order)
//   before delivering.
// - Error aggregation: handler errors are joined and returned.
//
// The bus never touches the world. Handlers that want world effects enqueue
// commands into a world command queue and let the host replay them, which
// keeps the single-writer discipline intact.
type Bus interface {
	// Publish delivers the event synchronously to all active subscribers of
	// event.Type(). Handler errors are joined and returned.
	Publish(event Event) error
	// PublishBatch delivers a set of events, highest priority first; equal
	// priorities keep their submission order. Errors aggregate across the
	// whole batch.
	PublishBatch(events ...Event) error
	// PublishAsync delivers events concurrently, one goroutine per event,
	// and reports the joined error on the returned channel once all
	// deliveries finish. Ordering across events is not guaranteed.
	PublishAsync(events ...Event) <-chan error

	// Subscribe registers a handler for an event type and returns a handle
	// for cancellation.
	Subscribe(eventType string, handler Handler) (Subscription, error)
	// Unsubscribe cancels the given Subscription. Safe to call with nil.
	Unsubscribe(Subscription) error
}

// Event is an immutable trigger message. Data usually holds a
// label.Callback; the bus itself treats it as opaque.
type Event interface {
	Type() string
	Source() string
	Timestamp() time.Time
	Data() any
	Priority() int
}

// Handler is a user callback invoked per delivered event.
type Handler func(event Event) error

// Subscription represents a registered handler bound to an event type.
type Subscription interface {
	// ID is a unique identifier for this subscription.
	ID() string
	// EventType returns the event type this subscription listens to.
	EventType() string
	// IsActive reports whether this subscription is still registered.
	IsActive() bool
	// Cancel de-registers the handler. Multiple calls are safe.
	Cancel() error
}
