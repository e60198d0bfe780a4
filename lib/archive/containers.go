package archive

import (
	"github.com/ValentinKolb/dSER/lib/adapter"
	"github.com/ValentinKolb/dSER/lib/traits"
	"unsafe"
)

// --------------------------------------------------------------------------
// Containers
// --------------------------------------------------------------------------

// growStep is the number of elements a resizable container is first sized
// to when the decoded length is not covered by the known input
const growStep = 4096

// Container transfers the elements of c with fn. Resizable containers are
// prefixed with their length; on read the container is resized to the
// decoded length before it is populated. bound limits the length, values
// <= 0 use the session MaxSize. Fixed containers transfer Len elements
// without a prefix.
func Container[C, E any, T traits.Container[C, E]](a Archive, t T, c *C, bound int, fn func(a Archive, e *E)) {
	if !t.Resizable() {
		for i, n := 0, t.Len(c); i < n; i++ {
			fn(a, t.At(c, i))
		}
		return
	}
	n := a.size(t.Len(c), bound)
	if !a.Writing() {
		readElements(a, t, c, n, fn)
		return
	}
	if n != t.Len(c) {
		return
	}
	for i := 0; i < n; i++ {
		fn(a, t.At(c, i))
	}
}

// readElements resizes c to n and decodes its elements. If the input is not
// known to hold n elements of at least one bit each, c grows by doubling
// from growStep, so a corrupt length fails before it is allocated.
func readElements[C, E any, T traits.Container[C, E]](a Archive, t T, c *C, n int, fn func(a Archive, e *E)) {
	if n == 0 {
		t.Resize(c, 0)
		return
	}
	step := n
	if rem := a.remainingBits(); rem < 0 || n > rem {
		step = min(n, growStep)
	}
	for done := 0; done < n; {
		next := min(n, max(done+step, 2*done))
		t.Resize(c, next)
		for ; done < next; done++ {
			fn(a, t.At(c, done))
		}
		if a.ErrorState() != adapter.NoError {
			return
		}
	}
}

// Container1b transfers a container of 1 byte values. Contiguous slices
// are transferred in one adapter call.
func Container1b[C any, E Bytes1, T traits.Container[C, E]](a Archive, t T, c *C, bound int) {
	if !t.Contiguous() {
		Container(a, t, c, bound, Value1b[E])
		return
	}
	if t.Resizable() {
		n := a.size(t.Len(c), bound)
		if !a.Writing() {
			if rem := a.remainingBits(); rem < 0 || n*8 > rem {
				readElements(a, t, c, n, Value1b[E])
				return
			}
			t.Resize(c, n)
		} else if n != t.Len(c) {
			return
		}
	}
	if s := traits.Elements[C, E](t, c); s != nil {
		a.raw(unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), len(s)))
		return
	}
	for i, n := 0, t.Len(c); i < n; i++ {
		Value1b(a, t.At(c, i))
	}
}

// Container2b transfers a container of 2 byte values
func Container2b[C any, E Bytes2, T traits.Container[C, E]](a Archive, t T, c *C, bound int) {
	Container(a, t, c, bound, Value2b[E])
}

// Container4b transfers a container of 4 byte values
func Container4b[C any, E Bytes4, T traits.Container[C, E]](a Archive, t T, c *C, bound int) {
	Container(a, t, c, bound, Value4b[E])
}

// Container8b transfers a container of 8 byte values
func Container8b[C any, E Bytes8, T traits.Container[C, E]](a Archive, t T, c *C, bound int) {
	Container(a, t, c, bound, Value8b[E])
}

// Bytes transfers a length prefixed byte slice
func Bytes(a Archive, c *[]byte, bound int) {
	Container1b(a, traits.Slice[byte]{}, c, bound)
}

// --------------------------------------------------------------------------
// Text
// --------------------------------------------------------------------------

// Text transfers c as length prefixed characters. The terminator of NUL
// terminated text is not transferred, it is restored on read. For text
// with a fixed capacity the length is additionally bounded by the capacity,
// full storage without a terminator records adapter.InvalidData on write.
func Text[C any, T traits.Text[C]](a Archive, t T, c *C, bound int) {
	if a.Writing() {
		view := t.View(c)
		if !t.Resizable() && len(view) > t.Capacity(c) {
			a.setError(adapter.InvalidData)
			return
		}
		if a.size(len(view), bound) == len(view) {
			a.raw(view)
		}
		return
	}
	n := a.size(0, bound)
	if !t.Resizable() && n > t.Capacity(c) {
		a.setError(adapter.InvalidData)
		n = 0
	}
	t.Assign(c, readRaw(a, n))
}

// readRaw reads n bytes, nil after an adapter error. Lengths beyond the
// known input record adapter.DataOverflow without allocating, for inputs of
// unknown size the buffer grows with the data actually read.
func readRaw(a Archive, n int) []byte {
	rem := a.remainingBits()
	if rem >= 0 && n*8 > rem {
		a.setError(adapter.DataOverflow)
		return nil
	}
	var buf []byte
	if rem >= 0 || n <= growStep {
		buf = a.scratch(n)
		a.raw(buf)
	} else {
		for len(buf) < n && a.ErrorState() == adapter.NoError {
			k := min(n-len(buf), max(len(buf), growStep))
			buf = append(buf, make([]byte, k)...)
			a.raw(buf[len(buf)-k:])
		}
	}
	if a.ErrorState() != adapter.NoError {
		return nil
	}
	return buf
}

// String transfers a Go string
func String(a Archive, s *string, bound int) {
	Text(a, traits.String{}, s, bound)
}

// --------------------------------------------------------------------------
// Objects
// --------------------------------------------------------------------------

// Object transfers v using its member description
func Object(a Archive, v Describable) { v.Describe(a) }

// ObjectContext transfers v using its context aware member description
func ObjectContext(a ContextArchive, v ContextDescribable) { v.DescribeContext(a) }

// ObjectFunc transfers v using the free description fn
func ObjectFunc[T any](a Archive, v *T, fn func(a Archive, v *T)) { fn(a, v) }

// Element adapts a member description to an element function for Container
func Element[T any, P DescribablePtr[T]](a Archive, e *T) {
	P(e).Describe(a)
}
