package bus

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/weftlabs/weft/pkg/sequence"
)

// simpleEvent is a basic implementation of Event for callers without their
// own event types.
type simpleEvent struct {
	typeStr string
	source  string
	ts      time.Time
	data    any
	prio    int
}

func (e simpleEvent) Type() string         { return e.typeStr }
func (e simpleEvent) Source() string       { return e.source }
func (e simpleEvent) Timestamp() time.Time { return e.ts }
func (e simpleEvent) Data() any            { return e.data }
func (e simpleEvent) Priority() int        { return e.prio }

// NewEvent creates a simple Event implementation.
func NewEvent(typ, src string, data any, priority int) Event {
	return simpleEvent{typeStr: typ, source: src, ts: time.Now(), data: data, prio: priority}
}

// subscription implements Subscription.
type subscription struct {
	id        string
	eventType string
	handler   Handler
	active    bool
	cancel    func()
}

func (s *subscription) ID() string        { return s.id }
func (s *subscription) EventType() string { return s.eventType }
func (s *subscription) IsActive() bool    { return s.active }
func (s *subscription) Cancel() error {
	if s.cancel != nil {
		s.cancel()
	}
	s.active = false
	return nil
}

// inMemoryBus is a thread-safe Bus. Handlers for one event type are kept in
// subscription order so delivery is deterministic.
type inMemoryBus struct {
	mu       sync.RWMutex
	handlers map[string][]*subscription
}

// New creates a new Bus instance.
func New() Bus {
	return &inMemoryBus{
		handlers: make(map[string][]*subscription),
	}
}

func (b *inMemoryBus) Subscribe(eventType string, handler Handler) (Subscription, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := uuid.NewString()
	s := &subscription{id: id, eventType: eventType, handler: handler, active: true}
	s.cancel = func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		subs := b.handlers[eventType]
		for i, candidate := range subs {
			if candidate.id == id {
				b.handlers[eventType] = append(subs[:i], subs[i+1:]...)
				break
			}
		}
		s.active = false
	}
	b.handlers[eventType] = append(b.handlers[eventType], s)
	return s, nil
}

func (b *inMemoryBus) Unsubscribe(sub Subscription) error {
	if sub == nil {
		return nil
	}
	return sub.Cancel()
}

func (b *inMemoryBus) Publish(event Event) error {
	return b.deliver(event)
}

func (b *inMemoryBus) PublishBatch(events ...Event) error {
	pq := sequence.NewPriorityQueue[Event]()
	for _, e := range events {
		pq.Enqueue(e, e.Priority())
	}

	var all error
	for {
		e, ok := pq.Dequeue()
		if !ok {
			break
		}
		if err := b.deliver(e); err != nil {
			all = errors.Join(all, err)
		}
	}
	return all
}

func (b *inMemoryBus) PublishAsync(events ...Event) <-chan error {
	ch := make(chan error, 1)
	go func() {
		g := errgroup.Group{}
		for _, e := range events {
			g.Go(func() error {
				return b.deliver(e)
			})
		}
		ch <- g.Wait()
		close(ch)
	}()
	return ch
}

func (b *inMemoryBus) deliver(event Event) error {
	b.mu.RLock()
	subs := make([]*subscription, len(b.handlers[event.Type()]))
	copy(subs, b.handlers[event.Type()])
	b.mu.RUnlock()

	var all error
	for _, s := range subs {
		if !s.active {
			continue
		}
		if err := s.handler(event); err != nil {
			all = errors.Join(all, err)
		}
	}
	return all
}
