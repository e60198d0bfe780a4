// Package adapter provides the byte level boundary of the serialization core:
// bounded sinks and sources that move raw bytes and record a sticky error.
//
// The package focuses on:
//   - A minimal Writer/Reader contract used by the codec and the archive engine
//   - A sticky error model: the first error is kept, later operations never clear it
//   - Never reading or writing outside the backing storage
//
// Key Components:
//
//   - Writer: Bounded byte sink. Once an error is recorded every further write is
//     dropped. IsCompletedSuccessfully reports whether the sink never failed.
//
//   - Reader: Bounded byte source. Reading past the end records DataOverflow and
//     returns zero bytes instead of data. IsCompletedSuccessfully additionally
//     requires that all input was consumed.
//
//   - Error: Enumeration of transfer errors (DataOverflow, InvalidData,
//     ReadingError, WritingError). Error values implement the error interface.
//
// Implementations:
//
//   - OutputBuffer: growable sink over any buffer type with a traits.Buffer descriptor
//   - FixedOutput: fixed capacity sink over a byte slice, overflow is an error
//   - InputBuffer: source over a byte slice
//   - OutputStream / InputStream: buffered adapters over io.Writer / io.Reader
//
// Thread Safety:
//
//	Adapters are owned by exactly one traversal and are not safe for concurrent use.
//	Callers that serialize in parallel create one adapter per call.
package adapter
