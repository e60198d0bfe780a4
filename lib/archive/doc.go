// Package archive implements the serializer/deserializer engine of dSER. It
// walks an object's field description and routes every field to the value
// codec, to a container routine, or to an extension.
//
// The package focuses on:
//   - One symmetric description per type: the same Describe method encodes and decodes
//   - Compile-time checked plumbing: containers need a traits descriptor, extensions
//     need the capability they are used with, virtual bases need a context archive
//   - A sticky error model: a failed transfer never aborts the walk, the engine simply
//     finishes in the Errored state
//
// Key Components:
//
//   - Archive: The interface every description receives. Implemented by Serializer
//     (writing) and Deserializer (reading). Field primitives are free generic functions
//     taking an Archive (Value1b..Value8b, Bool, Bits, Text, Bytes, Container, Object, Ext).
//
//   - ContextArchive: An Archive that also carries a Context. Implemented by
//     ContextSerializer and ContextDeserializer. Types whose description needs
//     the context (virtual bases) implement ContextDescribable instead of Describable.
//
//   - Context: Per call record of already processed virtual bases, keyed by the
//     top-level call and the identity of the base. Every Serialize or
//     Deserialize starts a new call, so one context can serve several roots.
//
//   - Extensions: ObjectExtension, ContextExtension, ValueExtension and FuncExtension
//     are independent capabilities. See package ext for the inheritance extension.
//
//   - Registry: Free describe functions for types that cannot carry a method.
//     Exactly one description is selected per type, ambiguities panic at registration.
//
// Engine States:
//
//	Idle -> Walking -> Completed | Errored
//
//	Serialize / Deserialize may be called once per engine. The returned error wraps
//	ErrTransfer and the adapter.Error that stopped the data flow.
//
// Usage:
//
//	type Point struct{ X, Y int32 }
//
//	func (p *Point) Describe(a archive.Archive) {
//	    archive.Value4b(a, &p.X)
//	    archive.Value4b(a, &p.Y)
//	}
//
//	data, err := archive.Encode(&Point{X: 1, Y: 2})
//	var p Point
//	err = archive.Decode(data, &p)
//
// Thread Safety:
//
//	Engines, contexts and adapters belong to one traversal. The registry and the
//	metrics are safe for concurrent use.
package archive
