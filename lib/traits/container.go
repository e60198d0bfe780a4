package traits

// --------------------------------------------------------------------------
// Container descriptors
// --------------------------------------------------------------------------

// Container describes how generic code may manipulate a container of type C
// holding elements of type E.
type Container[C any, E any] interface {
	// Resizable reports whether Resize may be called. Fixed containers are
	// transferred against their current length and never carry a length prefix.
	Resizable() bool
	// Contiguous reports whether the elements are stored in one block of memory,
	// which allows byte sized elements to be copied in one step.
	Contiguous() bool
	// Len returns the number of elements in the container
	Len(c *C) int
	// Resize changes the number of elements. Only called if Resizable is true.
	Resize(c *C, n int)
	// At returns the address of the i-th element
	At(c *C, i int) *E
}

// Slice is the descriptor for resizable []E containers
type Slice[E any] struct{}

func (Slice[E]) Resizable() bool     { return true }
func (Slice[E]) Contiguous() bool    { return true }
func (Slice[E]) Len(c *[]E) int      { return len(*c) }
func (Slice[E]) At(c *[]E, i int) *E { return &(*c)[i] }

// Resize sets the length of the slice to exactly n. The backing array is
// reused when it is large enough, otherwise a new array of capacity n is
// allocated so no extra memory is held after decoding.
func (Slice[E]) Resize(c *[]E, n int) {
	if n <= cap(*c) {
		old := len(*c)
		*c = (*c)[:n]
		if n > old {
			clear((*c)[old:])
		}
		return
	}
	s := make([]E, n)
	copy(s, *c)
	*c = s
}

// Fixed is the descriptor for []E containers whose length is decided by the
// caller, e.g. slices over arrays. The caller has to make sure the length
// matches the encoded data before reading.
type Fixed[E any] struct{}

func (Fixed[E]) Resizable() bool     { return false }
func (Fixed[E]) Contiguous() bool    { return true }
func (Fixed[E]) Len(c *[]E) int      { return len(*c) }
func (Fixed[E]) At(c *[]E, i int) *E { return &(*c)[i] }

// Resize panics: fixed containers are never resized.
func (Fixed[E]) Resize(*[]E, int) {
	panic("traits: Resize called on a fixed container")
}

// Elements returns the contiguous element storage of c when the descriptor
// reports contiguous storage and the container is a slice, nil otherwise.
func Elements[C any, E any, T Container[C, E]](t T, c *C) []E {
	if !t.Contiguous() {
		return nil
	}
	if s, ok := any(c).(*[]E); ok {
		return *s
	}
	return nil
}
