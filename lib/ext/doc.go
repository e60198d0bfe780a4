// Package ext contains extensions for the archive engine. Extensions change
// how a field is transferred without changing the engine.
//
// Inheritance:
//
// Go expresses class hierarchies through composition. A derived type embeds
// its bases and transfers them through one of the base markers:
//
//   - BaseClass[P]: a plain base, transferred every time it is listed, in
//     listed order. The base describes itself with Describe.
//   - ContextBaseClass[P]: a plain base whose description needs the context,
//     typically an intermediate type with a virtual base.
//   - VirtualBaseClass[P]: a shared base, transferred at most once per
//     top-level call. All derived parts point to the same base instance and
//     the context remembers that it was processed. Only usable with a
//     ContextArchive, anything else does not compile.
//
// Example (the classic diamond):
//
//	type Base struct{ X uint8 }
//	type Left struct{ Base *Base; Y uint8 }   // virtual base
//	type Right struct{ Base *Base; Z uint8 }  // virtual base
//	type Bottom struct{ Left; Right; W uint8 } // Left.Base == Right.Base
//
//	func (l *Left) DescribeContext(a archive.ContextArchive) {
//	    archive.ExtContext(a, l.Base, ext.VirtualBaseClass[*Base]{})
//	    archive.Value1b(a, &l.Y)
//	}
//
//	func (b *Bottom) DescribeContext(a archive.ContextArchive) {
//	    archive.ExtContext(a, &b.Left, ext.ContextBaseClass[*Left]{})
//	    archive.ExtContext(a, &b.Right, ext.ContextBaseClass[*Right]{})
//	    archive.Value1b(a, &b.W)
//	}
//
// Serializing a Bottom writes X once: 4 bytes in total.
//
// Optional:
//
// Optional[V] transfers a *V as presence flag followed by the value. It
// implements the value and the transform capability.
package ext
