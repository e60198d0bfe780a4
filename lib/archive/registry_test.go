package archive

import (
	"strings"
	"testing"
)

type freeOnly struct {
	A uint16
	B uint8
}

type withMember struct {
	V uint8
}

func (w *withMember) Describe(a Archive) { Value1b(a, &w.V) }

type selectedFunc struct {
	V uint8
}

func (s *selectedFunc) Describe(a Archive) { Value1b(a, &s.V) }

type selectedMember struct {
	V uint8
}

func (s *selectedMember) Describe(a Archive) { Value1b(a, &s.V) }

type duplicate struct{}

type staleSelection struct{ V uint8 }

type undescribed struct{ V int }

// holder describes its field through the registry
type holder[T any] struct {
	Inner T
}

func (h *holder[T]) Describe(a Archive) { Describe(a, &h.Inner) }

// expectPanic runs fn and checks that it panics with a message containing want
func expectPanic(t *testing.T, want string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("Expected panic containing %q", want)
		}
		if msg, _ := r.(string); !strings.Contains(msg, want) {
			t.Errorf("Expected panic containing %q, got %v", want, r)
		}
	}()
	fn()
}

// TestRegisterFunc tests describing a type through a free function
func TestRegisterFunc(t *testing.T) {
	RegisterFunc(func(a Archive, v *freeOnly) {
		Value2b(a, &v.A)
		Value1b(a, &v.B)
	})
	if !Registered[freeOnly]() {
		t.Fatalf("Expected freeOnly to be registered")
	}

	in := &holder[freeOnly]{Inner: freeOnly{A: 0x1234, B: 7}}
	out, data := roundTrip(t, in)
	if len(data) != 3 {
		t.Errorf("Expected 3 bytes, got %d", len(data))
	}
	if out.Inner != in.Inner {
		t.Errorf("Expected %+v, got %+v", in.Inner, out.Inner)
	}

	found := false
	for _, name := range RegisteredTypes() {
		if name == "archive.freeOnly" {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected archive.freeOnly in %v", RegisteredTypes())
	}
}

// TestRegisterFuncConflicts tests the registration errors
func TestRegisterFuncConflicts(t *testing.T) {
	t.Run("Duplicate", func(t *testing.T) {
		fn := func(Archive, *duplicate) {}
		RegisterFunc(fn)
		expectPanic(t, "registered twice", func() { RegisterFunc(fn) })
	})

	t.Run("Ambiguous", func(t *testing.T) {
		expectPanic(t, "select one", func() {
			RegisterFunc(func(a Archive, v *withMember) {})
		})
		if Registered[withMember]() {
			t.Errorf("Expected no registration after a failed attempt")
		}
	})

	t.Run("TooManySelections", func(t *testing.T) {
		expectPanic(t, "more than one selection", func() {
			RegisterFunc(func(a Archive, v *withMember) {}, UseMember, UseFunc)
		})
	})

	t.Run("SelectionWithoutMember", func(t *testing.T) {
		expectPanic(t, "without a member description", func() {
			RegisterFunc(func(a Archive, v *staleSelection) {}, UseMember)
		})
		if Registered[staleSelection]() {
			t.Errorf("Expected no registration after a failed attempt")
		}
	})

	t.Run("Undescribed", func(t *testing.T) {
		expectPanic(t, "no description", func() {
			_, _ = Encode(&holder[undescribed]{})
		})
	})
}

// TestSelection tests the explicit choice between member and free function
func TestSelection(t *testing.T) {
	RegisterFunc(func(a Archive, v *selectedFunc) {
		Value1b(a, &v.V)
		var pad uint8 = 0xEE
		Value1b(a, &pad)
	}, UseFunc)
	RegisterFunc(func(a Archive, v *selectedMember) {
		panic("free function must not be used")
	}, UseMember)

	data, err := Encode(&holder[selectedFunc]{Inner: selectedFunc{V: 1}})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if len(data) != 2 || data[1] != 0xEE {
		t.Errorf("Expected the free function to be used, got %x", data)
	}

	data, err = Encode(&holder[selectedMember]{Inner: selectedMember{V: 1}})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if len(data) != 1 {
		t.Errorf("Expected the member description to be used, got %x", data)
	}

	// the member is used directly when nothing is registered
	data, err = Encode(&holder[withMember]{Inner: withMember{V: 9}})
	if err != nil || len(data) != 1 || data[0] != 9 {
		t.Errorf("Expected member description, got %x (%v)", data, err)
	}
}
