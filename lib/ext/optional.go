package ext

import "github.com/ValentinKolb/dSER/lib/archive"

// Optional transfers a *V as a presence flag followed by the value. Reading
// an absent value sets the pointer to nil, reading a present value into a
// nil pointer allocates it.
type Optional[V any] struct{}

// ExtValue transfers the value with the fixed width routine of the engine
func (o Optional[V]) ExtValue(a archive.Archive, obj **V, value func(archive.Archive, *V)) {
	o.ExtFunc(a, obj, value)
}

// ExtFunc transfers the value with fn
func (Optional[V]) ExtFunc(a archive.Archive, obj **V, fn func(archive.Archive, *V)) {
	present := *obj != nil
	archive.Bool(a, &present)
	if !present {
		if !a.Writing() {
			*obj = nil
		}
		return
	}
	if *obj == nil {
		*obj = new(V)
	}
	fn(a, *obj)
}
