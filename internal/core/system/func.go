package system

import (
	"strings"

	"github.com/weftlabs/weft/internal/core/label"
	"github.com/weftlabs/weft/internal/core/world"
)

// Func adapts a plain function to the System interface. The wrapped function
// receives a Context scoped to this system's cached state, so locals and
// change detection behave correctly across repeated runs of the same
// function.
type Func struct {
	fn       func(*Context)
	name     string
	identity label.Label
	labels   []label.Label
	lastRun  uint64
	locals   map[string]any
	queue    world.CommandQueue
}

var _ System = (*Func)(nil)

// Option tweaks a Func at construction.
type Option func(*Func)

// WithName overrides the diagnostic name.
func WithName(name string) Option {
	return func(f *Func) { f.name = name }
}

// WithDefaultLabels adds labels to the set used when the system is
// registered implicitly by a run call. The automatic identity label is
// always part of that set, so later runs keep finding the cached copy.
func WithDefaultLabels(labels ...label.Label) Option {
	return func(f *Func) { f.labels = labels }
}

// NewFunc wraps fn. The automatic identity label comes from fn's symbol name,
// so two NewFunc calls over the same function produce interchangeable
// systems.
func NewFunc(fn func(*Context), opts ...Option) *Func {
	identity := label.Auto(fn)
	f := &Func{
		fn:       fn,
		name:     shortName(identity.String()),
		identity: identity,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func shortName(qualified string) string {
	if i := strings.LastIndexByte(qualified, '/'); i >= 0 {
		return qualified[i+1:]
	}
	return qualified
}

func (f *Func) Name() string          { return f.name }
func (f *Func) Identity() label.Label { return f.identity }

func (f *Func) DefaultLabels() []label.Label {
	labels := make([]label.Label, 0, len(f.labels)+1)
	labels = append(labels, f.identity)
	return append(labels, f.labels...)
}

func (f *Func) Initialize(_ *world.World) {
	if f.locals == nil {
		f.locals = make(map[string]any)
	}
}

func (f *Func) Execute(w *world.World) {
	ctx := Context{world: w, sys: f}
	f.fn(&ctx)
	f.lastRun = w.Tick()
	w.AdvanceTick()
}

func (f *Func) Flush(w *world.World) {
	f.queue.Apply(w)
}

// Context is the view handed to a system function for one invocation. It
// exposes the world plus the system's own cached state.
type Context struct {
	world *world.World
	sys   *Func
}

// World returns the world for direct reads and writes.
func (c *Context) World() *world.World { return c.world }

// Commands returns the system's deferred command buffer. Queued commands are
// applied immediately after this run completes.
func (c *Context) Commands() *world.CommandQueue { return &c.sys.queue }

// Res reads the T resource. The second result is false if it was never
// inserted.
func Res[T any](c *Context) (*T, bool) {
	return world.Resource[T](c.world)
}

// ResMut returns the T resource for writing, marking it changed. Panics if
// the resource is absent.
func ResMut[T any](c *Context) *T {
	return world.ResourceMut[T](c.world)
}

// Changed reports whether the T resource was mutated since this system's
// previous run. On the first run everything present reads as changed.
func Changed[T any](c *Context) bool {
	return world.ResourceChangedSince[T](c.world, c.sys.lastRun)
}

// Local returns a pointer to this system's named local state, allocating the
// zero value on first use. Locals survive across runs and are invisible to
// other systems.
func Local[T any](c *Context, key string) *T {
	if v, ok := c.sys.locals[key]; ok {
		return v.(*T)
	}
	v := new(T)
	c.sys.locals[key] = v
	return v
}
