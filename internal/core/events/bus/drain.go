package bus

import (
	"fmt"

	"github.com/weftlabs/weft/internal/core/label"
	"github.com/weftlabs/weft/internal/core/registry"
	"github.com/weftlabs/weft/internal/core/world"
)

// CallbackDrain builds a handler that converts Callback payloads into
// deferred run commands on the given queue. The host replays the queue
// against its world at a point where no system is mid-run, so triggers
// published from anywhere never violate the world's exclusive-access rule.
//
// lenient controls what an unknown label does when the queued command is
// eventually applied: panic (false) or log-and-drop (true).
func CallbackDrain(q *world.CommandQueue, lenient bool) Handler {
	return func(e Event) error {
		cb, ok := e.Data().(label.Callback)
		if !ok {
			return fmt.Errorf("bus: event %q carries %T, want label.Callback", e.Type(), e.Data())
		}
		q.Push(registry.RunCallbackCommand{Callback: cb, Lenient: lenient})
		return nil
	}
}
