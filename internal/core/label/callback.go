package label

// Callback is a portable handle meaning "run whatever is registered under
// this label". It can be stored in components, published as an event payload,
// or queued in a resource; it carries no ownership over the systems it names.
//
// Callbacks are comparable: equality and hashing delegate to the wrapped
// label's key.
type Callback struct {
	label Label
}

// NewCallback wraps an explicit label.
func NewCallback(l Label) Callback {
	return Callback{label: l}
}

// CallbackOf derives the automatic type-identity label for v, typically a
// system function. The target still has to be registered before the callback
// can be run.
func CallbackOf(v any) Callback {
	return Callback{label: Auto(v)}
}

// Label returns the wrapped label.
func (c Callback) Label() Label { return c.label }

// Key returns the wrapped label's index key.
func (c Callback) Key() Key { return c.label.Key() }

// Hash returns the wrapped label's hash.
func (c Callback) Hash() uint64 { return c.label.Key().Hash() }

func (c Callback) String() string {
	if c.label == nil {
		return "<empty callback>"
	}
	return c.label.String()
}
