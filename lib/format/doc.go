// Package format provides whole-object formats for comparing the archive
// binary encoding with Go's general purpose encodings. It defines a common
// interface and one implementation per encoding.
//
// The package focuses on:
//   - Providing a consistent interface for different serialization formats
//   - Making size and speed of the archive encoding comparable on the same objects
//
// Key Components:
//
//   - IFormat: Core interface that all formats must satisfy.
//
//   - archiveFormatImpl: The dSER binary encoding. Objects must implement
//     archive.Describable or archive.ContextDescribable. Shared virtual bases
//     are written once.
//
//   - gobFormatImpl: Go's built-in gob encoding. Self describing, with larger
//     payloads for small objects.
//
//   - jsonFormatImpl: JSON encoding, human readable but the largest payloads.
//
// Shared pointers (virtual bases) are written once per reference by gob and
// json, so they decode into separate copies unless the target already holds
// the shared pointers.
//
// Thread Safety:
//
//	All formats are stateless and safe for concurrent use.
//
// Usage:
//
//	f, err := format.New("archive")
//	data, err := f.Serialize(obj)
//	err = f.Deserialize(data, target)
package format
