package adapter

import "github.com/ValentinKolb/dSER/lib/traits"

// --------------------------------------------------------------------------
// Growable output buffer
// --------------------------------------------------------------------------

// OutputBuffer writes into a buffer that is grown through its traits.Buffer
// descriptor. It never overflows.
type OutputBuffer[C any, T traits.Buffer[C]] struct {
	sticky
	buf    *C
	traits T
	pos    int
}

// NewOutputBuffer creates a sink writing to buf from its beginning
func NewOutputBuffer[C any, T traits.Buffer[C]](buf *C, t T) *OutputBuffer[C, T] {
	return &OutputBuffer[C, T]{buf: buf, traits: t}
}

// NewByteOutput creates a growable sink over a byte slice
func NewByteOutput(buf *[]byte) *OutputBuffer[[]byte, traits.ByteSlice] {
	return NewOutputBuffer(buf, traits.ByteSlice{})
}

func (o *OutputBuffer[C, T]) Write(b []byte) {
	if o.err != NoError || len(b) == 0 {
		return
	}
	need := o.pos + len(b)
	if need > len(o.traits.Bytes(o.buf)) {
		o.traits.Grow(o.buf, need)
	}
	copy(o.traits.Bytes(o.buf)[o.pos:], b)
	o.pos = need
}

// Flush does nothing, the buffer is always up to date
func (o *OutputBuffer[C, T]) Flush() {}

func (o *OutputBuffer[C, T]) BytesCount() int { return o.pos }

func (o *OutputBuffer[C, T]) IsCompletedSuccessfully() bool { return o.err == NoError }

// Data returns the written bytes
func (o *OutputBuffer[C, T]) Data() []byte {
	return o.traits.Bytes(o.buf)[:o.pos]
}

// --------------------------------------------------------------------------
// Fixed capacity output
// --------------------------------------------------------------------------

// FixedOutput writes into a byte slice of fixed length. A write that does not
// fit records DataOverflow and writes nothing.
type FixedOutput struct {
	sticky
	buf []byte
	pos int
}

// NewFixedOutput creates a sink with capacity len(buf)
func NewFixedOutput(buf []byte) *FixedOutput {
	return &FixedOutput{buf: buf}
}

func (o *FixedOutput) Write(b []byte) {
	if o.err != NoError || len(b) == 0 {
		return
	}
	if len(b) > len(o.buf)-o.pos {
		o.SetError(DataOverflow)
		return
	}
	o.pos += copy(o.buf[o.pos:], b)
}

func (o *FixedOutput) Flush() {}

func (o *FixedOutput) BytesCount() int { return o.pos }

func (o *FixedOutput) IsCompletedSuccessfully() bool { return o.err == NoError }

// Data returns the written bytes
func (o *FixedOutput) Data() []byte { return o.buf[:o.pos] }

// --------------------------------------------------------------------------
// Input buffer
// --------------------------------------------------------------------------

// InputBuffer reads from a byte slice
type InputBuffer struct {
	sticky
	data []byte
	pos  int
}

// NewInputBuffer creates a source over data
func NewInputBuffer(data []byte) *InputBuffer {
	return &InputBuffer{data: data}
}

func (i *InputBuffer) Read(b []byte) {
	if i.err != NoError {
		clear(b)
		return
	}
	if len(b) > len(i.data)-i.pos {
		i.SetError(DataOverflow)
		clear(b)
		return
	}
	i.pos += copy(b, i.data[i.pos:])
}

func (i *InputBuffer) BytesCount() int { return i.pos }

// Remaining returns the number of unread bytes
func (i *InputBuffer) Remaining() int { return len(i.data) - i.pos }

func (i *InputBuffer) IsCompletedSuccessfully() bool {
	return i.err == NoError && i.pos == len(i.data)
}
