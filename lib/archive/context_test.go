package archive

import (
	"bytes"
	"github.com/ValentinKolb/dSER/lib/adapter"
	"testing"
)

type shared struct {
	V uint8
}

// sharedList is a root whose dynamic value is not hashable
type sharedList []*shared

func (l sharedList) DescribeContext(a ContextArchive) {
	for _, s := range l {
		if a.Context().Visit(s) {
			Value1b(a, &s.V)
		}
	}
}

// TestContextVisit tests the per root bookkeeping of the context
func TestContextVisit(t *testing.T) {
	ctx := NewContext()
	rootA, rootB := &word{}, &word{}
	base := &shared{}

	ctx.begin(rootA)
	if !ctx.Visit(base) {
		t.Errorf("Expected first visit to report true")
	}
	if ctx.Visit(base) {
		t.Errorf("Expected second visit to report false")
	}
	if !ctx.Visited(base) {
		t.Errorf("Expected base to be recorded")
	}
	if !ctx.Visit(&shared{}) {
		t.Errorf("Expected a different base instance to be new")
	}

	ctx.begin(rootB)
	if !ctx.Visit(base) {
		t.Errorf("Expected base to be new for another root")
	}
	if ctx.Len() != 3 {
		t.Errorf("Expected 3 records, got %d", ctx.Len())
	}

	ctx.Reset()
	if ctx.Len() != 0 || ctx.Root() != nil {
		t.Errorf("Expected empty context after reset")
	}
}

// TestContextZeroValue tests that a zero Context can be used by an engine
func TestContextZeroValue(t *testing.T) {
	var ctx Context
	ctx.begin(&word{})
	if !ctx.Visit(&shared{}) {
		t.Errorf("Expected first visit to report true")
	}
}

// TestContextUnhashableRoot tests a root value that cannot be used as a map
// key and that every call records its bases separately
func TestContextUnhashableRoot(t *testing.T) {
	base := &shared{V: 7}
	root := sharedList{base, base, &shared{V: 9}}

	ctx := NewContext()
	var buf []byte
	out := adapter.NewByteOutput(&buf)
	for i := 0; i < 2; i++ {
		if err := NewContextSerializer(out, ctx).Serialize(root); err != nil {
			t.Fatalf("Serialize %d failed: %v", i, err)
		}
	}
	if !bytes.Equal(out.Data(), []byte{7, 9, 7, 9}) {
		t.Errorf("Expected each base once per call, got %x", out.Data())
	}
	if ctx.Len() != 4 {
		t.Errorf("Expected 4 records, got %d", ctx.Len())
	}
}
