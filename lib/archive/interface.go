package archive

import "github.com/ValentinKolb/dSER/lib/adapter"

// Archive is the engine view handed to object descriptions. The unexported
// methods restrict implementations to this package, descriptions use the
// free field functions (Value1b, Container, Object, ...).
type Archive interface {
	// Writing reports whether the archive encodes (true) or decodes (false)
	Writing() bool
	// State returns the engine state
	State() State
	// ErrorState returns the sticky error of the underlying adapter
	ErrorState() adapter.Error

	value(v *uint64, width int)
	bits(v *uint64, bits uint)
	size(n int, bound int) int
	raw(b []byte)
	scratch(n int) []byte
	remainingBits() int
	bitPacking() bool
	beginBitPacking()
	endBitPacking()
	setError(err adapter.Error)
}

// ContextArchive is an Archive carrying a serialization context
type ContextArchive interface {
	Archive
	// Context returns the context of the current top-level call
	Context() *Context
}

// Describable is implemented by types that describe their fields with a
// member procedure
type Describable interface {
	Describe(a Archive)
}

// ContextDescribable is implemented by types whose description needs a
// context, e.g. types with virtual bases
type ContextDescribable interface {
	DescribeContext(a ContextArchive)
}

// DescribablePtr constrains P to *T implementing Describable
type DescribablePtr[T any] interface {
	*T
	Describable
}

// ContextDescribablePtr constrains P to *T implementing ContextDescribable
type ContextDescribablePtr[T any] interface {
	*T
	ContextDescribable
}

// --------------------------------------------------------------------------
// Engine state
// --------------------------------------------------------------------------

// State of an engine
type State uint8

const (
	Idle State = iota
	Walking
	Completed
	Errored
)

// String returns a string representation of the state
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Walking:
		return "walking"
	case Completed:
		return "completed"
	case Errored:
		return "errored"
	default:
		return "unknown"
	}
}
