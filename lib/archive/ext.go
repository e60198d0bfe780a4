package archive

// --------------------------------------------------------------------------
// Extension capabilities
// --------------------------------------------------------------------------

// ObjectExtension is the object capability: the extension transfers obj
// with the archive's own routines
type ObjectExtension[T any] interface {
	ExtObject(a Archive, obj T)
}

// ContextExtension is the object capability for extensions that need the
// serialization context
type ContextExtension[T any] interface {
	ExtContext(a ContextArchive, obj T)
}

// ValueExtension is the value capability: the engine supplies a fixed width
// scalar routine for the inner value V
type ValueExtension[T, V any] interface {
	ExtValue(a Archive, obj *T, value func(a Archive, v *V))
}

// FuncExtension is the transform capability: the caller supplies the
// routine for the inner value V
type FuncExtension[T, V any] interface {
	ExtFunc(a Archive, obj *T, fn func(a Archive, v *V))
}

// Ext transfers obj through an object extension
func Ext[T any](a Archive, obj T, e ObjectExtension[T]) {
	e.ExtObject(a, obj)
}

// ExtContext transfers obj through a context extension
func ExtContext[T any](a ContextArchive, obj T, e ContextExtension[T]) {
	e.ExtContext(a, obj)
}

// Ext1b transfers obj through a value extension with a 1 byte inner value
func Ext1b[T any, V Bytes1](a Archive, obj *T, e ValueExtension[T, V]) {
	e.ExtValue(a, obj, Value1b[V])
}

// Ext2b transfers obj through a value extension with a 2 byte inner value
func Ext2b[T any, V Bytes2](a Archive, obj *T, e ValueExtension[T, V]) {
	e.ExtValue(a, obj, Value2b[V])
}

// Ext4b transfers obj through a value extension with a 4 byte inner value
func Ext4b[T any, V Bytes4](a Archive, obj *T, e ValueExtension[T, V]) {
	e.ExtValue(a, obj, Value4b[V])
}

// Ext8b transfers obj through a value extension with an 8 byte inner value
func Ext8b[T any, V Bytes8](a Archive, obj *T, e ValueExtension[T, V]) {
	e.ExtValue(a, obj, Value8b[V])
}

// ExtFunc transfers obj through a transform extension, fn transfers the
// inner value
func ExtFunc[T, V any](a Archive, obj *T, e FuncExtension[T, V], fn func(a Archive, v *V)) {
	e.ExtFunc(a, obj, fn)
}
