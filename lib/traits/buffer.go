package traits

import "math/bits"

// --------------------------------------------------------------------------
// Buffer descriptors
// --------------------------------------------------------------------------

// minBufferSize is the first allocation size of a growing buffer
const minBufferSize = 128

// Buffer describes a byte buffer an output adapter writes into.
type Buffer[C any] interface {
	// Bytes returns the whole usable storage of the buffer
	Bytes(c *C) []byte
	// Grow makes sure Bytes returns at least need bytes, keeping the content.
	// It is only called when the current storage is too small.
	Grow(c *C, need int)
}

// ByteSlice is the buffer descriptor for []byte. The slice length is the
// usable storage, growth doubles to the next power of two.
type ByteSlice struct{}

func (ByteSlice) Bytes(c *[]byte) []byte { return *c }

func (ByteSlice) Grow(c *[]byte, need int) {
	if need <= len(*c) {
		return
	}
	n := nearestPow2(need)
	if n < minBufferSize {
		n = minBufferSize
	}
	if n <= cap(*c) {
		*c = (*c)[:n]
		return
	}
	buf := make([]byte, n)
	copy(buf, *c)
	*c = buf
}

// nearestPow2 returns the smallest power of two that is >= x
func nearestPow2(x int) int {
	if x <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(x-1))
}
