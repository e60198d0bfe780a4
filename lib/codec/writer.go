package codec

import (
	"encoding/binary"
	"github.com/ValentinKolb/dSER/lib/adapter"
	"github.com/cockroachdb/errors"
)

// Writer encodes values into an adapter.Writer
type Writer struct {
	w           adapter.Writer
	order       binary.ByteOrder
	policy      OverflowPolicy
	scratch     uint64 // pending bits, lowest bit first
	scratchBits uint   // number of pending bits, always < 8 between calls
	packing     int    // depth of bit packing sessions
	tmp         [8]byte // fixed width values
	out         [1]byte // completed bit stream bytes, never aliases tmp
}

// NewWriter creates a codec writer over w
func NewWriter(w adapter.Writer, cfg Config) *Writer {
	return &Writer{
		w:      w,
		order:  cfg.Endianness.ByteOrder(),
		policy: cfg.BitOverflow,
	}
}

// Adapter returns the underlying adapter
func (w *Writer) Adapter() adapter.Writer { return w.w }

// --------------------------------------------------------------------------
// Fixed width values
// --------------------------------------------------------------------------

// WriteValue writes the low width bytes of v. width must be 1, 2, 4 or 8.
func (w *Writer) WriteValue(v uint64, width int) {
	b := w.tmp[:width]
	switch width {
	case 1:
		b[0] = byte(v)
	case 2:
		w.order.PutUint16(b, uint16(v))
	case 4:
		w.order.PutUint32(b, uint32(v))
	case 8:
		w.order.PutUint64(b, v)
	default:
		panic(errors.Newf("codec: unsupported value width %d", width))
	}
	w.WriteBytes(b)
}

// WriteBytes writes b unchanged. Inside an unaligned bit stream every byte
// is shifted in as 8 bits.
func (w *Writer) WriteBytes(b []byte) {
	if w.scratchBits == 0 {
		w.w.Write(b)
		return
	}
	for _, c := range b {
		w.writeBits(uint64(c), 8)
	}
}

// --------------------------------------------------------------------------
// Bit packing
// --------------------------------------------------------------------------

// BeginBitPacking starts a (possibly nested) bit packing session
func (w *Writer) BeginBitPacking() { w.packing++ }

// EndBitPacking ends a session. Leaving the outermost session pads the
// stream to a byte boundary.
func (w *Writer) EndBitPacking() {
	if w.packing > 0 {
		w.packing--
	}
	if w.packing == 0 {
		w.Align()
	}
}

// BitPacking reports whether a bit packing session is active
func (w *Writer) BitPacking() bool { return w.packing > 0 }

// WriteBits writes the low bits of v. A value wider than bits is handled
// according to the configured OverflowPolicy.
func (w *Writer) WriteBits(v uint64, bits uint) {
	if bits == 0 {
		return
	}
	if bits > 64 {
		panic(errors.Newf("codec: unsupported bit width %d", bits))
	}
	if bits < 64 && v>>bits != 0 {
		if w.policy == OverflowPanic {
			panic(errors.Wrapf(ErrBitOverflow, "value %d does not fit into %d bits", v, bits))
		}
		v &= lowMask(bits)
	}
	w.writeBits(v, bits)
}

func (w *Writer) writeBits(v uint64, bits uint) {
	for bits > 0 {
		take := min(bits, 32)
		w.scratch |= (v & lowMask(take)) << w.scratchBits
		w.scratchBits += take
		v >>= take
		bits -= take
		for w.scratchBits >= 8 {
			w.out[0] = byte(w.scratch)
			w.w.Write(w.out[:])
			w.scratch >>= 8
			w.scratchBits -= 8
		}
	}
}

// Align pads pending bits with zeros up to the next byte boundary
func (w *Writer) Align() {
	if w.scratchBits == 0 {
		return
	}
	w.out[0] = byte(w.scratch)
	w.w.Write(w.out[:])
	w.scratch = 0
	w.scratchBits = 0
}

// --------------------------------------------------------------------------
// Size prefix
// --------------------------------------------------------------------------

// WriteSize writes a container or text length using 1, 2 or 4 bytes.
// Lengths above MaxSize record adapter.InvalidData.
func (w *Writer) WriteSize(n int) {
	switch {
	case n < 0 || n > MaxSize:
		w.w.SetError(adapter.InvalidData)
	case n < 0x80:
		w.WriteValue(uint64(n), 1)
	case n < 0x4000:
		w.WriteValue(uint64(n>>8)|0x80, 1)
		w.WriteValue(uint64(n), 1)
	default:
		w.WriteValue(uint64(n>>24)|0xC0, 1)
		w.WriteValue(uint64(n>>16), 1)
		w.WriteValue(uint64(n), 2)
	}
}

// Flush aligns the bit stream and flushes the adapter
func (w *Writer) Flush() {
	w.Align()
	w.w.Flush()
}
