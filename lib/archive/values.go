package archive

import (
	"github.com/ValentinKolb/dSER/lib/adapter"
	"math/bits"
	"unsafe"
)

// Bytes1 are the types transferred by Value1b
type Bytes1 interface{ ~int8 | ~uint8 }

// Bytes2 are the types transferred by Value2b
type Bytes2 interface{ ~int16 | ~uint16 }

// Bytes4 are the types transferred by Value4b
type Bytes4 interface{ ~int32 | ~uint32 | ~float32 }

// Bytes8 are the types transferred by Value8b
type Bytes8 interface{ ~int64 | ~uint64 | ~float64 }

// Unsigned are the types accepted by Bits
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integer are the types accepted by BitsRange
type Integer interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Value1b transfers a 1 byte value
func Value1b[T Bytes1](a Archive, v *T) {
	p := (*uint8)(unsafe.Pointer(v))
	x := uint64(*p)
	a.value(&x, 1)
	if !a.Writing() {
		*p = uint8(x)
	}
}

// Value2b transfers a 2 byte value in the session byte order
func Value2b[T Bytes2](a Archive, v *T) {
	p := (*uint16)(unsafe.Pointer(v))
	x := uint64(*p)
	a.value(&x, 2)
	if !a.Writing() {
		*p = uint16(x)
	}
}

// Value4b transfers a 4 byte value in the session byte order. float32 is
// transferred as its IEEE 754 bit pattern.
func Value4b[T Bytes4](a Archive, v *T) {
	p := (*uint32)(unsafe.Pointer(v))
	x := uint64(*p)
	a.value(&x, 4)
	if !a.Writing() {
		*p = uint32(x)
	}
}

// Value8b transfers an 8 byte value in the session byte order
func Value8b[T Bytes8](a Archive, v *T) {
	p := (*uint64)(unsafe.Pointer(v))
	x := *p
	a.value(&x, 8)
	if !a.Writing() {
		*p = x
	}
}

// Bool transfers a bool. Inside a bit packing session it takes one bit,
// otherwise one byte. Reading a byte other than 0 or 1 records
// adapter.InvalidData.
func Bool(a Archive, v *bool) {
	var x uint64
	if *v {
		x = 1
	}
	if a.bitPacking() {
		a.bits(&x, 1)
	} else {
		a.value(&x, 1)
		if x > 1 {
			a.setError(adapter.InvalidData)
			x = 0
		}
	}
	if !a.Writing() {
		*v = x == 1
	}
}

// Bits transfers the low n bits of v. Outside a bit packing session the
// call opens its own session, which is aligned when it ends.
func Bits[T Unsigned](a Archive, v *T, n uint) {
	if !a.bitPacking() {
		a.beginBitPacking()
		defer a.endBitPacking()
	}
	x := uint64(*v)
	a.bits(&x, n)
	if !a.Writing() {
		*v = T(x)
	}
}

// BitsRange transfers v as offset from lo using the minimal number of bits
// for the range [lo, hi]. Values outside the range record adapter.InvalidData.
func BitsRange[T Integer](a Archive, v *T, lo, hi T) {
	span := uint64(hi) - uint64(lo)
	n := uint(bits.Len64(span))
	if !a.bitPacking() {
		a.beginBitPacking()
		defer a.endBitPacking()
	}
	var x uint64
	if a.Writing() {
		if *v < lo || *v > hi {
			a.setError(adapter.InvalidData)
			return
		}
		x = uint64(*v) - uint64(lo)
	}
	a.bits(&x, n)
	if !a.Writing() {
		if x > span {
			a.setError(adapter.InvalidData)
			x = 0
		}
		*v = T(uint64(lo) + x)
	}
}

// EnableBitPacking runs fn inside a bit packing session. Sessions nest,
// leaving the outermost one aligns the stream to a byte boundary.
func EnableBitPacking(a Archive, fn func(a Archive)) {
	a.beginBitPacking()
	defer a.endBitPacking()
	fn(a)
}
