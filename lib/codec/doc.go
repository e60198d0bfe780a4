// Package codec implements the bit-level value codec of the serialization core.
// It turns fixed-width scalars, bit-packed integers and length prefixes into
// bytes (and back) on top of an adapter.Writer / adapter.Reader.
//
// The package focuses on:
//   - Fixed-width scalars of exactly 1, 2, 4 or 8 bytes
//   - One byte order per session, applied to every multi-byte value
//   - Bit packing of integers with a caller-declared bit width
//   - A compact 1/2/4 byte length prefix for containers and text
//
// Key Components:
//
//   - Config: Session configuration (byte order, bit overflow policy, maximum
//     container size). DefaultConfig returns little endian, truncating and
//     the largest encodable size.
//
//   - Writer: Encodes values into an adapter.Writer. Bit packing sessions can be
//     nested; leaving the outermost session pads to the next byte boundary
//     with zero bits.
//
//   - Reader: Decodes values from an adapter.Reader. Non-zero padding bits and
//     sizes above the bound are recorded as adapter.InvalidData.
//
// Bit Overflow:
//
//	Writing a value that does not fit into the declared bit width is a caller
//	contract violation. OverflowTruncate keeps the low bits and continues,
//	OverflowPanic panics with an error wrapping ErrBitOverflow.
//
// Thread Safety:
//
//	Writer and Reader keep per-session state and must not be shared between
//	concurrent traversals.
package codec
