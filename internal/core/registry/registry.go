// Package registry stores initialized systems so they can be re-run in an
// ad-hoc fashion against a world, outside any fixed schedule.
//
// Systems are keyed by label: every system registered under a label runs (in
// registration order) when that label is run, and repeated runs of the same
// function reuse cached state, so locals and change detection keep working.
// Commands a system buffers during a run are applied into the world
// immediately after that run, before the next system starts.
//
// One Registry lives on each world as a resource with a usable zero value.
// The package-level forwarders (Register, Run, RunByLabel, RunCallback) take
// care of the split borrow between the registry and the rest of the world;
// prefer them over holding a Registry yourself.
//
// Limitations: stored systems cannot be chained (no inputs, no outputs), and
// they cannot recurse: a running system must not trigger another run through
// this mechanism, directly or via a queued command. Recursion faults with a
// borrow panic rather than corrupting state.
package registry

import (
	"github.com/weftlabs/weft/internal/core/config"
	"github.com/weftlabs/weft/internal/core/label"
	"github.com/weftlabs/weft/internal/core/observability/log"
	"github.com/weftlabs/weft/internal/core/system"
	"github.com/weftlabs/weft/internal/core/world"
)

// storedSystem pairs a type-erased system with its slot. The system value
// owns all per-system cached state.
type storedSystem struct {
	sys system.System
}

// Registry is an append-only store of systems plus a label index. Slots are
// stable: indices are never reused or reordered, and a label's index list
// preserves registration order. The zero value is ready to use.
type Registry struct {
	systems []storedSystem
	// index of every system stored under the key's label
	labels map[label.Key][]int

	cfg    config.RegistryConfig
	logger log.Log
}

// Configure applies registry policy. Call before registration; existing
// registrations are unaffected.
func (r *Registry) Configure(cfg config.RegistryConfig) {
	r.cfg = cfg
}

// SetLogger overrides the diagnostics logger, which otherwise defaults to
// the process-wide one.
func (r *Registry) SetLogger(l log.Log) {
	r.logger = l
}

func (r *Registry) log() log.Log {
	if r.logger == nil {
		r.logger = log.Provide()
	}
	return r.logger
}

// Register stores sys under its automatic identity label and initializes it
// against the world. Registering the same identity twice is tolerated: the
// duplicate is skipped with a warning (or rejected with a
// *DuplicateRegistrationError under the error policy).
func (r *Registry) Register(w *world.World, sys system.System) error {
	identity := sys.Identity()
	if !r.IsLabelRegistered(identity) {
		r.register(w, sys, []label.Label{identity})
		return nil
	}
	if r.cfg.DuplicatePolicy == config.DuplicateError {
		return &DuplicateRegistrationError{System: sys.Name(), Label: identity}
	}
	r.log().Warn("system registered more than once",
		log.String("system", sys.Name()),
		log.String("label", identity.String()))
	return nil
}

// RegisterWithLabels unconditionally stores a new copy of sys, indexed under
// every supplied label, and returns its slot index. Unlike Register, no
// duplicate suppression applies: each copy keeps independent state and each
// runs separately when a shared label is run.
func (r *Registry) RegisterWithLabels(w *world.World, sys system.System, labels ...label.Label) int {
	return r.register(w, sys, labels)
}

func (r *Registry) register(w *world.World, sys system.System, labels []label.Label) int {
	sys.Initialize(w)

	index := len(r.systems)
	r.systems = append(r.systems, storedSystem{sys: sys})

	if r.labels == nil {
		r.labels = make(map[label.Key][]int)
	}
	for _, l := range labels {
		key := l.Key()
		r.labels[key] = append(r.labels[key], index)
	}
	return index
}

// IsLabelRegistered reports whether at least one system is indexed under the
// label.
func (r *Registry) IsLabelRegistered(l label.Label) bool {
	return len(r.labels[l.Key()]) > 0
}

// FirstRegisteredIndex returns the earliest-registered slot for a label.
func (r *Registry) FirstRegisteredIndex(l label.Label) (int, bool) {
	indexes := r.labels[l.Key()]
	if len(indexes) == 0 {
		return 0, false
	}
	return indexes[0], true
}

// Len returns the number of stored systems.
func (r *Registry) Len() int { return len(r.systems) }

// runAtIndex executes the stored system at index, then immediately applies
// its buffered commands. Flushing after every run keeps the world fully up to
// date for whatever runs next in the same batch.
func (r *Registry) runAtIndex(w *world.World, index int) {
	stored := &r.systems[index]

	stored.sys.Execute(w)
	stored.sys.Flush(w)
}

// Run executes sys against the world a single time. If a system with the
// same identity was run or registered before, the cached copy runs and the
// passed value only supplies the identity; otherwise sys is registered under
// its default labels first. State persists across calls, so locals and
// change detection behave as if the system were permanently installed.
func (r *Registry) Run(w *world.World, sys system.System) {
	index, ok := r.FirstRegisteredIndex(sys.Identity())
	if !ok {
		index = r.register(w, sys, sys.DefaultLabels())
	}
	r.runAtIndex(w, index)
}

// RunByLabel runs every system registered under the label, sequentially in
// registration order, each with its own immediate flush. Returns a
// *LabelNotFoundError if nothing is registered under the label; the world is
// left untouched in that case.
func (r *Registry) RunByLabel(w *world.World, l label.Label) error {
	return r.RunCallback(w, label.NewCallback(l))
}

// RunCallback runs the systems named by the callback's label. Semantics
// match RunByLabel.
func (r *Registry) RunCallback(w *world.World, cb label.Callback) error {
	indexes, ok := r.labels[cb.Key()]
	if !ok || len(indexes) == 0 {
		return &LabelNotFoundError{Label: cb.Label()}
	}

	// Snapshot: a flushed command may register more systems under this
	// label, and those belong to a later run.
	snapshot := make([]int, len(indexes))
	copy(snapshot, indexes)
	for _, index := range snapshot {
		r.runAtIndex(w, index)
	}
	return nil
}
