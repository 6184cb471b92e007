package world

import "github.com/weftlabs/weft/pkg/generic"

// Command is a deferred operation on the world. Commands are queued while the
// world is unavailable for direct mutation and replayed later, in the order
// they were queued.
type Command interface {
	Apply(w *World)
}

var commandSlices = generic.NewSlicePool[Command](16)

// CommandQueue buffers commands in FIFO order. The zero value is ready to
// use.
type CommandQueue struct {
	cmds []Command
}

// Push appends a command to the queue.
func (q *CommandQueue) Push(c Command) {
	if q.cmds == nil {
		q.cmds = commandSlices.Get()
	}
	q.cmds = append(q.cmds, c)
}

// Len returns the number of pending commands.
func (q *CommandQueue) Len() int { return len(q.cmds) }

// Apply drains the queue, applying each command against the world in the
// order it was pushed. Commands pushed while draining run in the same pass,
// after the ones already queued.
func (q *CommandQueue) Apply(w *World) {
	for len(q.cmds) > 0 {
		cmds := q.cmds
		q.cmds = nil
		for _, c := range cmds {
			c.Apply(w)
		}
		commandSlices.Put(cmds)
	}
}

// CommandFunc adapts a plain function to the Command interface.
type CommandFunc func(w *World)

func (f CommandFunc) Apply(w *World) { f(w) }

// SpawnCommand spawns one entity carrying the given components.
type SpawnCommand struct {
	Components []any
}

func (c SpawnCommand) Apply(w *World) {
	id := w.Spawn()
	for _, component := range c.Components {
		w.AttachComponent(id, component)
	}
}

// DespawnCommand removes an entity. Despawning an already-dead entity is a
// no-op.
type DespawnCommand struct {
	Entity EntityID
}

func (c DespawnCommand) Apply(w *World) {
	w.Despawn(c.Entity)
}
