// Package samples contains sample object shapes described for the archive
// engine. They are used by the dser command, the format comparison and the
// examples.
//
// Shapes:
//   - Primitives: fixed width values and a bit packed block
//   - Inventory: containers of values, text and nested objects
//   - Note: text in a resizable string and a NUL terminated byte buffer
//   - Record: plain multiple inheritance (two bases listed in order)
//   - MultipleInheritance: the diamond, two derived parts sharing one virtual Base
package samples
