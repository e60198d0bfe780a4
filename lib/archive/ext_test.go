package archive

import (
	"github.com/google/go-cmp/cmp"
	"math"
	"testing"
)

// fixedPoint stores a float64 as an int32 with two decimals
type fixedPoint struct{}

func (fixedPoint) ExtValue(a Archive, obj *float64, value func(Archive, *int32)) {
	v := int32(math.Round(*obj * 100))
	value(a, &v)
	if !a.Writing() {
		*obj = float64(v) / 100
	}
}

// nullable transfers a pointer as presence flag plus value
type nullable[V any] struct{}

func (nullable[V]) ExtFunc(a Archive, obj **V, fn func(Archive, *V)) {
	present := *obj != nil
	Bool(a, &present)
	switch {
	case present && !a.Writing() && *obj == nil:
		*obj = new(V)
		fn(a, *obj)
	case present:
		fn(a, *obj)
	case !a.Writing():
		*obj = nil
	}
}

// reversedPair transfers a point with Y first
type reversedPair struct{}

func (reversedPair) ExtObject(a Archive, p *point) {
	Value4b(a, &p.Y)
	Value4b(a, &p.X)
}

type extended struct {
	Price  float64
	Origin *point
	Target *point
	Pair   point
}

func (e *extended) Describe(a Archive) {
	Ext4b[float64, int32](a, &e.Price, fixedPoint{})
	ExtFunc[*point, point](a, &e.Origin, nullable[point]{}, Element[point])
	ExtFunc[*point, point](a, &e.Target, nullable[point]{}, Element[point])
	Ext(a, &e.Pair, reversedPair{})
}

// TestExtensions tests the value, transform and object capabilities
func TestExtensions(t *testing.T) {
	in := &extended{Price: 12.34, Origin: &point{X: 1, Y: 2}, Pair: point{X: 5, Y: 6}}

	out, data := roundTrip(t, in)
	// price 4 + origin 1+8 + target 1 + pair 8
	if len(data) != 22 {
		t.Errorf("Expected 22 bytes, got %d", len(data))
	}
	if data[14] != 6 {
		t.Errorf("Expected Y of the pair first, got %x", data[14:])
	}
	if diff := cmp.Diff(in, out); diff != "" {
		t.Errorf("Round trip mismatch (-want +got):\n%s", diff)
	}

	// decoding an absent value clears an existing one
	out.Origin = nil
	out.Target = &point{X: 9}
	data, _ = Encode(out)
	cleared := &extended{Target: &point{}}
	if err := Decode(data, cleared); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if cleared.Origin != nil || cleared.Target == nil || cleared.Target.X != 9 {
		t.Errorf("Unexpected optional values %+v", cleared)
	}
}
