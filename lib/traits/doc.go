// Package traits provides the descriptors that let the generic encode/decode
// routines of the archive package work on arbitrary container, text and buffer
// types without depending on their concrete representation.
//
// The package focuses on:
//   - Describing containers (resizable or fixed, contiguous or not)
//   - Describing text storage (growable strings and NUL terminated byte buffers)
//   - Describing growable byte buffers used by output adapters
//
// Key Components:
//
//   - Container: Descriptor interface for element containers. It reports whether
//     the container can be resized, whether its elements are stored contiguously,
//     and gives access to length, resize and element addresses.
//
//   - Text: Descriptor interface for text. Text is transferred as a length
//     prefixed byte sequence, fixed text storage additionally keeps a trailing
//     NUL byte.
//
//   - Buffer: Descriptor interface for byte buffers that an output adapter may
//     grow while writing.
//
// Built-in descriptors:
//
//   - Slice[E]: resizable, contiguous descriptor for []E
//   - Fixed[E]: fixed size, contiguous descriptor for []E (length is never changed)
//   - String: resizable text descriptor for string
//   - CString: fixed text descriptor for []byte with NUL termination
//   - ByteSlice: buffer descriptor for []byte with power-of-two growth
//
// Descriptors are passed to the archive routines as type parameters, so using a
// type without a descriptor does not compile. There is no runtime fallback.
//
// Descriptors are stateless values and safe for concurrent use.
package traits
