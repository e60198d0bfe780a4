package codec

import (
	"encoding/binary"
	"github.com/ValentinKolb/dSER/lib/adapter"
	"github.com/cockroachdb/errors"
)

// Reader decodes values from an adapter.Reader
type Reader struct {
	r           adapter.Reader
	order       binary.ByteOrder
	maxSize     int
	scratch     uint64
	scratchBits uint
	packing     int
	tmp         [8]byte // fixed width values
	next        [1]byte // bit stream refills, never aliases tmp
}

// NewReader creates a codec reader over r
func NewReader(r adapter.Reader, cfg Config) *Reader {
	return &Reader{
		r:       r,
		order:   cfg.Endianness.ByteOrder(),
		maxSize: cfg.sizeBound(),
	}
}

// Adapter returns the underlying adapter
func (r *Reader) Adapter() adapter.Reader { return r.r }

// MaxSize returns the effective size bound of the session
func (r *Reader) MaxSize() int { return r.maxSize }

// RemainingBits returns the number of unread bits including the pending
// bits of the current byte, or -1 if the adapter does not implement
// adapter.Sized
func (r *Reader) RemainingBits() int {
	s, ok := r.r.(adapter.Sized)
	if !ok {
		return -1
	}
	return s.Remaining()*8 + int(r.scratchBits)
}

// --------------------------------------------------------------------------
// Fixed width values
// --------------------------------------------------------------------------

// ReadValue reads a value of width bytes. width must be 1, 2, 4 or 8.
// After an adapter error the result is 0.
func (r *Reader) ReadValue(width int) uint64 {
	b := r.tmp[:width]
	r.ReadBytes(b)
	switch width {
	case 1:
		return uint64(b[0])
	case 2:
		return uint64(r.order.Uint16(b))
	case 4:
		return uint64(r.order.Uint32(b))
	case 8:
		return r.order.Uint64(b)
	default:
		panic(errors.Newf("codec: unsupported value width %d", width))
	}
}

// ReadBytes fills b, taking unaligned bit streams into account
func (r *Reader) ReadBytes(b []byte) {
	if r.scratchBits == 0 {
		r.r.Read(b)
		return
	}
	for i := range b {
		b[i] = byte(r.ReadBits(8))
	}
}

// --------------------------------------------------------------------------
// Bit packing
// --------------------------------------------------------------------------

// BeginBitPacking starts a (possibly nested) bit packing session
func (r *Reader) BeginBitPacking() { r.packing++ }

// EndBitPacking ends a session. Leaving the outermost session skips the
// padding up to the next byte boundary.
func (r *Reader) EndBitPacking() {
	if r.packing > 0 {
		r.packing--
	}
	if r.packing == 0 {
		r.Align()
	}
}

// BitPacking reports whether a bit packing session is active
func (r *Reader) BitPacking() bool { return r.packing > 0 }

// ReadBits reads a value of the given bit width
func (r *Reader) ReadBits(bits uint) uint64 {
	if bits > 64 {
		panic(errors.Newf("codec: unsupported bit width %d", bits))
	}
	var v uint64
	var got uint
	for got < bits {
		if r.scratchBits == 0 {
			r.r.Read(r.next[:])
			r.scratch = uint64(r.next[0])
			r.scratchBits = 8
		}
		take := min(bits-got, r.scratchBits)
		v |= (r.scratch & lowMask(take)) << got
		r.scratch >>= take
		r.scratchBits -= take
		got += take
	}
	return v
}

// Align drops the pending bits of the current byte. Padding must be zero,
// anything else records adapter.InvalidData.
func (r *Reader) Align() {
	if r.scratchBits == 0 {
		return
	}
	if r.scratch&lowMask(r.scratchBits) != 0 {
		r.r.SetError(adapter.InvalidData)
	}
	r.scratch = 0
	r.scratchBits = 0
}

// --------------------------------------------------------------------------
// Size prefix
// --------------------------------------------------------------------------

// ReadSize reads a length written by Writer.WriteSize. A length above bound
// (or above the session bound) records adapter.InvalidData and returns 0.
func (r *Reader) ReadSize(bound int) int {
	hb := int(r.ReadValue(1))
	var n int
	switch {
	case hb < 0x80:
		n = hb
	case hb&0x40 == 0:
		lb := int(r.ReadValue(1))
		n = (hb&0x7F)<<8 | lb
	default:
		lb := int(r.ReadValue(1))
		lw := int(r.ReadValue(2))
		n = ((hb&0x3F)<<8|lb)<<16 | lw
	}
	if bound <= 0 || bound > r.maxSize {
		bound = r.maxSize
	}
	if n > bound {
		r.r.SetError(adapter.InvalidData)
		return 0
	}
	return n
}
