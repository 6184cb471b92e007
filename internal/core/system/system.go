package system

import (
	"github.com/weftlabs/weft/internal/core/label"
	"github.com/weftlabs/weft/internal/core/world"
)

// System is a stateful, runnable unit of logic over the world. A system
// consumes no input and produces no output; its only effect is mutating the
// world, directly during Execute or deferred through its command buffer.
//
// The registry initializes a system exactly once, then alternates
// Execute/Flush on every run. Internal state (change-detection marks, locals,
// buffered commands) persists across runs for the lifetime of the registry.
type System interface {
	// Name is a short human-readable identifier used in diagnostics.
	Name() string

	// Identity is the automatic label derived from the system's static
	// identity. Registering the same logic twice yields equal identities.
	Identity() label.Label

	// DefaultLabels are the labels the system is indexed under when it is
	// registered implicitly by a run call.
	DefaultLabels() []label.Label

	// Initialize performs one-time state setup against the world.
	Initialize(w *world.World)

	// Execute runs the system's logic with exclusive access to the world.
	Execute(w *world.World)

	// Flush applies the commands buffered during the last Execute into the
	// world, in the order they were queued.
	Flush(w *world.World)
}
