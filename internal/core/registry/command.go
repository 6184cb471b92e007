package registry

import (
	"github.com/weftlabs/weft/internal/core/label"
	"github.com/weftlabs/weft/internal/core/observability/log"
	"github.com/weftlabs/weft/internal/core/system"
	"github.com/weftlabs/weft/internal/core/world"
)

// RunSystemCommand is the deferred form of Run: it owns a system value and
// forwards to Run when the command buffer replays it against a world. Useful
// for systems that cannot reach the world synchronously.
//
// Replaying it from within another stored system's flush is recursion and
// panics on the registry borrow.
type RunSystemCommand struct {
	sys system.System
}

var _ world.Command = RunSystemCommand{}

// NewRunSystemCommand captures sys for a later run.
func NewRunSystemCommand(sys system.System) RunSystemCommand {
	return RunSystemCommand{sys: sys}
}

func (c RunSystemCommand) Apply(w *world.World) {
	Run(w, c.sys)
}

// RunCallbackCommand is the deferred form of RunCallback: it owns a Callback
// by value and forwards when replayed. The command is plain comparable data,
// so it can sit in queues, components, or events.
//
// An unknown label is escalated to a panic by default: commands have no error
// channel back to whoever queued them, and silently dropping a requested run
// would be worse. Set Lenient to log and drop instead.
type RunCallbackCommand struct {
	Callback label.Callback
	Lenient  bool
}

var _ world.Command = RunCallbackCommand{}

// NewRunCallbackCommand captures cb for a later strict run.
func NewRunCallbackCommand(cb label.Callback) RunCallbackCommand {
	return RunCallbackCommand{Callback: cb}
}

func (c RunCallbackCommand) Apply(w *world.World) {
	err := RunCallback(w, c.Callback)
	if err == nil {
		return
	}
	if c.Lenient {
		log.Provide().Error("callback command dropped",
			log.String("label", c.Callback.String()),
			log.Error(err))
		return
	}
	panic(err)
}
