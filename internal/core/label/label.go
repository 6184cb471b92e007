package label

import (
	"reflect"
	"runtime"

	"github.com/cespare/xxhash/v2"
)

// Label identifies one or more registered systems. Implementations must be
// cheap to copy and must derive Key from a stable canonical name, so equal
// labels always carry identical hashes.
type Label interface {
	Key() Key
	String() string
}

// Kind separates user-chosen names from type-derived identities, so a user
// label can never collide with an automatic one.
type Kind uint8

const (
	KindName Kind = iota
	KindType
)

// Key is the comparable index form of a Label. Equality follows the (kind,
// name) pair; the hash is computed from the same name, which keeps equality
// and hashing in agreement by construction.
type Key struct {
	kind Kind
	name string
	hash uint64
}

func makeKey(kind Kind, name string) Key {
	return Key{kind: kind, name: name, hash: xxhash.Sum64String(name)}
}

// Hash returns the xxhash of the label's canonical name.
func (k Key) Hash() uint64 { return k.hash }

// Kind reports whether the key came from a user name or a type identity.
func (k Key) Kind() Kind { return k.kind }

func (k Key) String() string { return k.name }

// Name is a user-supplied label.
type Name string

func (n Name) Key() Key       { return makeKey(KindName, string(n)) }
func (n Name) String() string { return string(n) }

// typeLabel is the automatic label derived from a value's static identity.
type typeLabel struct {
	key Key
}

func (t typeLabel) Key() Key       { return t.key }
func (t typeLabel) String() string { return t.key.name }

// Auto derives a label from the static identity of v. Functions are keyed by
// their fully qualified symbol name, everything else by its package path and
// type name. The derived name is stable for the lifetime of the process, so
// passing "the same" function twice yields equal labels.
func Auto(v any) Label {
	return typeLabel{key: makeKey(KindType, identityName(v))}
}

func identityName(v any) string {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Func {
		if fn := runtime.FuncForPC(rv.Pointer()); fn != nil {
			return fn.Name()
		}
	}
	t := rv.Type()
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.PkgPath() != "" {
		return t.PkgPath() + "." + t.Name()
	}
	return t.String()
}
