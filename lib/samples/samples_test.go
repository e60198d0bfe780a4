package samples

import (
	"github.com/ValentinKolb/dSER/lib/archive"
	"github.com/google/go-cmp/cmp"
	"testing"
)

func encode(t *testing.T, v any) []byte {
	t.Helper()
	var data []byte
	var err error
	switch v := v.(type) {
	case archive.ContextDescribable:
		data, err = archive.EncodeContext(v)
	case archive.Describable:
		data, err = archive.Encode(v)
	default:
		t.Fatalf("%T is not describable", v)
	}
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	return data
}

func decode(t *testing.T, data []byte, v any) {
	t.Helper()
	var err error
	switch v := v.(type) {
	case archive.ContextDescribable:
		err = archive.DecodeContext(data, v)
	case archive.Describable:
		err = archive.Decode(data, v)
	}
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
}

// TestSamplesRoundTrip tests every sample shape
func TestSamplesRoundTrip(t *testing.T) {
	sizes := map[string]int{
		"primitives": 8 + 4 + 8 + 4 + 1 + 6, // 43 packed bits
		"record":     1 + 2 + 8 + 1 + 4,
		"diamond":    4,
	}

	for _, s := range All() {
		t.Run(s.Name, func(t *testing.T) {
			in := s.Value()
			data := encode(t, in)
			if want, ok := sizes[s.Name]; ok && len(data) != want {
				t.Errorf("Expected %d bytes, got %d", want, len(data))
			}

			out := s.Empty()
			decode(t, data, out)
			if diff := cmp.Diff(in, out); diff != "" {
				t.Errorf("Round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// TestDiamondSharedBase tests the diamond from both derived parts
func TestDiamondSharedBase(t *testing.T) {
	data := encode(t, NewMultipleInheritance(3, 78, 11, 55))

	out := NewMultipleInheritance(0, 0, 0, 0)
	decode(t, data, out)
	if out.Derive1.Base.X != 3 || out.Derive2.Base.X != 3 {
		t.Errorf("Expected X=3 through both parts, got %d and %d", out.Derive1.Base.X, out.Derive2.Base.X)
	}
	if out.Derive1.Base != out.Derive2.Base {
		t.Errorf("Expected the base to stay shared")
	}
}

// TestLookup tests the sample lookup by name
func TestLookup(t *testing.T) {
	if _, ok := Lookup("diamond"); !ok {
		t.Errorf("Expected the diamond sample")
	}
	if _, ok := Lookup("unknown"); ok {
		t.Errorf("Expected no sample for an unknown name")
	}
}
