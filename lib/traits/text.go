package traits

import (
	"bytes"
	"unsafe"
)

// --------------------------------------------------------------------------
// Text descriptors
// --------------------------------------------------------------------------

// Text describes how generic code may read and store text held in a C.
type Text[C any] interface {
	// Resizable reports whether the storage grows to fit any decoded length.
	Resizable() bool
	// AddNUL reports whether a NUL byte is kept after the text in memory.
	// It is never transferred.
	AddNUL() bool
	// Length returns the text length, excluding a terminating NUL
	Length(c *C) int
	// Capacity returns the longest text that fits into fixed storage.
	// Not used for resizable text.
	Capacity(c *C) int
	// View returns the Length bytes of text. The result must not be modified.
	View(c *C) []byte
	// Assign stores b as the new text content
	Assign(c *C, b []byte)
}

// String is the resizable text descriptor for Go strings
type String struct{}

func (String) Resizable() bool        { return true }
func (String) AddNUL() bool           { return false }
func (String) Length(c *string) int   { return len(*c) }
func (String) Capacity(c *string) int { return len(*c) }

// View returns the bytes of the string without copying
func (String) View(c *string) []byte {
	if len(*c) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(*c), len(*c))
}

func (String) Assign(c *string, b []byte) { *c = string(b) }

// CString is the fixed text descriptor for NUL terminated text stored in a
// byte slice. The slice length is the storage size, one byte is always
// reserved for the terminator.
type CString struct{}

func (CString) Resizable() bool { return false }
func (CString) AddNUL() bool    { return true }

// Length returns the number of bytes before the first NUL
func (CString) Length(c *[]byte) int {
	if i := bytes.IndexByte(*c, 0); i >= 0 {
		return i
	}
	return len(*c)
}

func (CString) Capacity(c *[]byte) int {
	if len(*c) == 0 {
		return 0
	}
	return len(*c) - 1
}

func (t CString) View(c *[]byte) []byte { return (*c)[:t.Length(c)] }

// Assign copies b into the storage and terminates it. Bytes that do not fit
// are dropped, callers bound the length with Capacity first.
func (t CString) Assign(c *[]byte, b []byte) {
	if len(*c) == 0 {
		return
	}
	n := copy((*c)[:t.Capacity(c)], b)
	(*c)[n] = 0
}
