package bus

import (
	"errors"
	"testing"

	"github.com/weftlabs/weft/internal/core/label"
	"github.com/weftlabs/weft/internal/core/registry"
	"github.com/weftlabs/weft/internal/core/system"
	"github.com/weftlabs/weft/internal/core/world"
)

func TestBasicPublishSubscribe(t *testing.T) {
	b := New()
	called := 0
	_, err := b.Subscribe("trigger.attack", func(e Event) error {
		called++
		return nil
	})
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	if err = b.Publish(NewEvent("trigger.attack", "tester", nil, 0)); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if called != 1 {
		t.Fatalf("handler called %d times, want 1", called)
	}
}

func TestDeliveryInSubscriptionOrder(t *testing.T) {
	b := New()
	var order []int
	for i := 0; i < 3; i++ {
		_, _ = b.Subscribe("ev", func(e Event) error {
			order = append(order, i)
			return nil
		})
	}
	_ = b.Publish(NewEvent("ev", "src", nil, 0))
	if len(order) != 3 || order[0] != 0 || order[1] != 1 || order[2] != 2 {
		t.Fatalf("delivery order wrong: %v", order)
	}
}

func TestCancelStopsDelivery(t *testing.T) {
	b := New()
	called := 0
	sub, _ := b.Subscribe("ev", func(e Event) error { called++; return nil })
	if err := b.Unsubscribe(sub); err != nil {
		t.Fatalf("unsubscribe: %v", err)
	}
	_ = b.Publish(NewEvent("ev", "src", nil, 0))
	if called != 0 {
		t.Fatalf("cancelled handler still called")
	}
	if sub.IsActive() {
		t.Fatal("subscription still active after cancel")
	}
}

func TestPublishAggregatesHandlerErrors(t *testing.T) {
	b := New()
	handlerErr := errors.New("fail")
	_, _ = b.Subscribe("x", func(e Event) error { return handlerErr })
	_, _ = b.Subscribe("x", func(e Event) error { return nil })
	if err := b.Publish(NewEvent("x", "src", nil, 0)); !errors.Is(err, handlerErr) {
		t.Fatalf("expected handler error, got %v", err)
	}
}

func TestPublishBatchPriorityOrder(t *testing.T) {
	b := New()
	var order []string
	_, _ = b.Subscribe("ev", func(e Event) error {
		order = append(order, e.Source())
		return nil
	})
	err := b.PublishBatch(
		NewEvent("ev", "low-a", nil, 1),
		NewEvent("ev", "high", nil, 9),
		NewEvent("ev", "low-b", nil, 1),
	)
	if err != nil {
		t.Fatalf("batch: %v", err)
	}
	want := []string{"high", "low-a", "low-b"}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("priority order wrong: %v", order)
		}
	}
}

func TestPublishAsyncReturnsErrorChannel(t *testing.T) {
	b := New()
	handlerErr := errors.New("fail")
	_, _ = b.Subscribe("x", func(e Event) error { return handlerErr })
	ch := b.PublishAsync(NewEvent("x", "src", nil, 0))
	if e := <-ch; e == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestCallbackDrainQueuesRuns(t *testing.T) {
	w := world.New()

	type hits struct{ N int }
	world.InitResource[hits](w)
	registry.RegisterWithLabels(w, system.NewFunc(func(ctx *system.Context) {
		system.ResMut[hits](ctx).N++
	}), label.Name("on_hit"))

	b := New()
	var q world.CommandQueue
	_, _ = b.Subscribe("trigger", CallbackDrain(&q, false))

	if err := b.Publish(NewEvent("trigger", "tester", label.NewCallback(label.Name("on_hit")), 0)); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if got, _ := world.Resource[hits](w); got.N != 0 {
		t.Fatal("callback ran before the queue was replayed")
	}

	q.Apply(w)
	if got, _ := world.Resource[hits](w); got.N != 1 {
		t.Fatalf("callback not applied: %d", got.N)
	}
}

func TestCallbackDrainRejectsWrongPayload(t *testing.T) {
	b := New()
	var q world.CommandQueue
	_, _ = b.Subscribe("trigger", CallbackDrain(&q, false))
	if err := b.Publish(NewEvent("trigger", "tester", 42, 0)); err == nil {
		t.Fatal("expected payload type error")
	}
	if q.Len() != 0 {
		t.Fatal("bad payload must not enqueue a command")
	}
}
