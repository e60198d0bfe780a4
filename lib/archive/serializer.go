package archive

import (
	"github.com/ValentinKolb/dSER/lib/adapter"
	"github.com/ValentinKolb/dSER/lib/codec"
)

// Serializer is the writing engine. It is created Idle and serializes
// exactly one root object.
type Serializer struct {
	w     *codec.Writer
	out   adapter.Writer
	state State
	tmp   []byte
}

// NewSerializer creates a serializer writing to w
func NewSerializer(w adapter.Writer, opts ...Option) *Serializer {
	o := buildOptions(opts)
	return &Serializer{w: codec.NewWriter(w, o.cfg), out: w}
}

// Serialize writes root. The returned error wraps ErrTransfer and the
// adapter.Error if the adapter failed during the walk.
func (s *Serializer) Serialize(root Describable) error {
	if err := s.begin(); err != nil {
		return err
	}
	defer s.abortOnPanic()
	root.Describe(s)
	return s.finish()
}

// Adapter returns the output adapter
func (s *Serializer) Adapter() adapter.Writer { return s.out }

// BytesCount returns the number of bytes written so far
func (s *Serializer) BytesCount() int { return s.out.BytesCount() }

func (s *Serializer) begin() error {
	if s.state != Idle {
		return ErrNotIdle
	}
	s.state = Walking
	writeCalls.Inc()
	return nil
}

func (s *Serializer) finish() error {
	s.w.Flush()
	writeBytes.Add(s.out.BytesCount())
	if err := s.out.ErrorState(); err != adapter.NoError {
		s.state = Errored
		writeErrors.Inc()
		Logger.Debugf("serialize ended in state %s: %s", s.state, err)
		return transferError("serialize", err, s.out.BytesCount())
	}
	s.state = Completed
	return nil
}

func (s *Serializer) abortOnPanic() {
	if r := recover(); r != nil {
		s.state = Errored
		writeErrors.Inc()
		panic(r)
	}
}

// --------------------------------------------------------------------------
// Archive implementation
// --------------------------------------------------------------------------

func (s *Serializer) Writing() bool             { return true }
func (s *Serializer) State() State              { return s.state }
func (s *Serializer) ErrorState() adapter.Error { return s.out.ErrorState() }

func (s *Serializer) value(v *uint64, width int) {
	s.w.WriteValue(*v, width)
}

func (s *Serializer) bits(v *uint64, bits uint) { s.w.WriteBits(*v, bits) }

func (s *Serializer) size(n int, bound int) int {
	if bound > 0 && n > bound {
		s.out.SetError(adapter.InvalidData)
		return 0
	}
	s.w.WriteSize(n)
	if s.out.ErrorState() != adapter.NoError {
		return 0
	}
	return n
}

func (s *Serializer) raw(b []byte) { s.w.WriteBytes(b) }

func (s *Serializer) scratch(n int) []byte {
	if cap(s.tmp) < n {
		s.tmp = make([]byte, n)
	}
	return s.tmp[:n]
}

func (s *Serializer) remainingBits() int         { return -1 }
func (s *Serializer) bitPacking() bool           { return s.w.BitPacking() }
func (s *Serializer) beginBitPacking()           { s.w.BeginBitPacking() }
func (s *Serializer) endBitPacking()             { s.w.EndBitPacking() }
func (s *Serializer) setError(err adapter.Error) { s.out.SetError(err) }

// --------------------------------------------------------------------------
// Context variant
// --------------------------------------------------------------------------

// ContextSerializer is a Serializer carrying a Context. Types with virtual
// bases can only be serialized through it.
type ContextSerializer struct {
	*Serializer
	ctx *Context
}

// NewContextSerializer creates a serializer writing to w that uses ctx to
// track virtual bases. A nil ctx creates a fresh context.
func NewContextSerializer(w adapter.Writer, ctx *Context, opts ...Option) *ContextSerializer {
	if ctx == nil {
		ctx = NewContext()
	}
	return &ContextSerializer{Serializer: NewSerializer(w, opts...), ctx: ctx}
}

// Context returns the context of the serializer
func (s *ContextSerializer) Context() *Context { return s.ctx }

// Serialize writes root as a new call of the context. Bases recorded by
// earlier calls are written again.
func (s *ContextSerializer) Serialize(root ContextDescribable) error {
	if err := s.begin(); err != nil {
		return err
	}
	defer s.abortOnPanic()
	s.ctx.begin(root)
	root.DescribeContext(s)
	return s.finish()
}
