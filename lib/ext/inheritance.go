package ext

import "github.com/ValentinKolb/dSER/lib/archive"

// BaseClass transfers a plain base of type P. It never consults the
// context, every listing of the base is transferred.
type BaseClass[P archive.Describable] struct{}

// ExtObject transfers the base
func (BaseClass[P]) ExtObject(a archive.Archive, base P) {
	base.Describe(a)
}

// ExtContext transfers the base inside a context aware description
func (BaseClass[P]) ExtContext(a archive.ContextArchive, base P) {
	base.Describe(a)
}

// ContextBaseClass transfers a plain base whose description needs the
// context. It never consults the context itself.
type ContextBaseClass[P archive.ContextDescribable] struct{}

// ExtContext transfers the base
func (ContextBaseClass[P]) ExtContext(a archive.ContextArchive, base P) {
	base.DescribeContext(a)
}

// VirtualBaseClass transfers a shared base of type P at most once per
// top-level call. base must point to the single storage of the shared
// base, all derived parts have to use the same pointer. When reading, the
// pointer has to be allocated before the traversal.
type VirtualBaseClass[P archive.Describable] struct{}

// ExtContext transfers the base unless it was already processed in the
// current call
func (VirtualBaseClass[P]) ExtContext(a archive.ContextArchive, base P) {
	if a.Context().Visit(base) {
		base.Describe(a)
	}
}
