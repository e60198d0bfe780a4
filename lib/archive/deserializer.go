package archive

import (
	"github.com/ValentinKolb/dSER/lib/adapter"
	"github.com/ValentinKolb/dSER/lib/codec"
)

// Deserializer is the reading engine. It is created Idle and deserializes
// exactly one root object. After an adapter error the walk continues with
// zero values.
type Deserializer struct {
	r     *codec.Reader
	in    adapter.Reader
	state State
	tmp   []byte
}

// NewDeserializer creates a deserializer reading from r
func NewDeserializer(r adapter.Reader, opts ...Option) *Deserializer {
	o := buildOptions(opts)
	return &Deserializer{r: codec.NewReader(r, o.cfg), in: r}
}

// Deserialize reads root. The returned error wraps ErrTransfer and the
// adapter.Error if the adapter failed during the walk. Input left after
// root is not an error, see Decode.
func (d *Deserializer) Deserialize(root Describable) error {
	if err := d.begin(); err != nil {
		return err
	}
	defer d.abortOnPanic()
	root.Describe(d)
	return d.finish()
}

// Adapter returns the input adapter
func (d *Deserializer) Adapter() adapter.Reader { return d.in }

// BytesCount returns the number of bytes consumed so far
func (d *Deserializer) BytesCount() int { return d.in.BytesCount() }

func (d *Deserializer) begin() error {
	if d.state != Idle {
		return ErrNotIdle
	}
	d.state = Walking
	readCalls.Inc()
	return nil
}

func (d *Deserializer) finish() error {
	d.r.Align()
	readBytes.Add(d.in.BytesCount())
	if err := d.in.ErrorState(); err != adapter.NoError {
		d.state = Errored
		readErrors.Inc()
		Logger.Debugf("deserialize ended in state %s: %s", d.state, err)
		return transferError("deserialize", err, d.in.BytesCount())
	}
	d.state = Completed
	return nil
}

func (d *Deserializer) abortOnPanic() {
	if r := recover(); r != nil {
		d.state = Errored
		readErrors.Inc()
		panic(r)
	}
}

// --------------------------------------------------------------------------
// Archive implementation
// --------------------------------------------------------------------------

func (d *Deserializer) Writing() bool             { return false }
func (d *Deserializer) State() State              { return d.state }
func (d *Deserializer) ErrorState() adapter.Error { return d.in.ErrorState() }

func (d *Deserializer) value(v *uint64, width int) {
	*v = d.r.ReadValue(width)
}

func (d *Deserializer) bits(v *uint64, bits uint) { *v = d.r.ReadBits(bits) }

func (d *Deserializer) size(_ int, bound int) int { return d.r.ReadSize(bound) }

func (d *Deserializer) raw(b []byte) { d.r.ReadBytes(b) }

func (d *Deserializer) scratch(n int) []byte {
	if cap(d.tmp) < n {
		d.tmp = make([]byte, n)
	}
	return d.tmp[:n]
}

func (d *Deserializer) remainingBits() int         { return d.r.RemainingBits() }
func (d *Deserializer) bitPacking() bool           { return d.r.BitPacking() }
func (d *Deserializer) beginBitPacking()           { d.r.BeginBitPacking() }
func (d *Deserializer) endBitPacking()             { d.r.EndBitPacking() }
func (d *Deserializer) setError(err adapter.Error) { d.in.SetError(err) }

// --------------------------------------------------------------------------
// Context variant
// --------------------------------------------------------------------------

// ContextDeserializer is a Deserializer carrying a Context
type ContextDeserializer struct {
	*Deserializer
	ctx *Context
}

// NewContextDeserializer creates a deserializer reading from r that uses
// ctx to track virtual bases. A nil ctx creates a fresh context.
func NewContextDeserializer(r adapter.Reader, ctx *Context, opts ...Option) *ContextDeserializer {
	if ctx == nil {
		ctx = NewContext()
	}
	return &ContextDeserializer{Deserializer: NewDeserializer(r, opts...), ctx: ctx}
}

// Context returns the context of the deserializer
func (d *ContextDeserializer) Context() *Context { return d.ctx }

// Deserialize reads root as a new call of the context. The shared bases of
// root have to be allocated.
func (d *ContextDeserializer) Deserialize(root ContextDescribable) error {
	if err := d.begin(); err != nil {
		return err
	}
	defer d.abortOnPanic()
	d.ctx.begin(root)
	root.DescribeContext(d)
	return d.finish()
}
