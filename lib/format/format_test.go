package format

import (
	"github.com/ValentinKolb/dSER/lib/codec"
	"github.com/ValentinKolb/dSER/lib/samples"
	"github.com/cockroachdb/errors"
	"github.com/google/go-cmp/cmp"
	"testing"
)

// testFormats creates one instance of every format
func testFormats(t testing.TB) []IFormat {
	var formats []IFormat
	for _, name := range Names() {
		f, err := New(name, codec.DefaultConfig())
		if err != nil {
			t.Fatalf("Failed to create format %s: %v", name, err)
		}
		formats = append(formats, f)
	}
	return formats
}

// TestFormatRoundTrip tests that every sample survives every format
func TestFormatRoundTrip(t *testing.T) {
	for _, f := range testFormats(t) {
		t.Run(f.Name(), func(t *testing.T) {
			for _, s := range samples.All() {
				in := s.Value()

				// Serialize
				data, err := f.Serialize(in)
				if err != nil {
					t.Errorf("Failed to serialize %s: %v", s.Name, err)
					continue
				}

				// Deserialize
				out := s.Empty()
				if err := f.Deserialize(data, out); err != nil {
					t.Errorf("Failed to deserialize %s: %v", s.Name, err)
					continue
				}

				// Compare
				if diff := cmp.Diff(in, out); diff != "" {
					t.Errorf("%s doesn't match after round trip (-want +got):\n%s", s.Name, diff)
				}
			}
		})
	}
}

// TestArchiveIsSmallest tests that the archive encoding is the most compact
func TestArchiveIsSmallest(t *testing.T) {
	formats := testFormats(t)
	for _, s := range samples.All() {
		sizes := make(map[string]int)
		for _, f := range formats {
			data, err := f.Serialize(s.Value())
			if err != nil {
				t.Fatalf("Failed to serialize %s with %s: %v", s.Name, f.Name(), err)
			}
			sizes[f.Name()] = len(data)
		}
		for name, size := range sizes {
			if size < sizes["archive"] {
				t.Errorf("%s: %s (%d bytes) is smaller than archive (%d bytes)", s.Name, name, size, sizes["archive"])
			}
		}
	}
}

// TestArchiveUnsupported tests values without a description
func TestArchiveUnsupported(t *testing.T) {
	f := NewArchiveFormat(codec.DefaultConfig())
	if _, err := f.Serialize(struct{ A int }{1}); !errors.Is(err, ErrUnsupported) {
		t.Errorf("Expected ErrUnsupported, got %v", err)
	}
	if err := f.Deserialize(nil, &struct{ A int }{}); !errors.Is(err, ErrUnsupported) {
		t.Errorf("Expected ErrUnsupported, got %v", err)
	}
}

// TestArchiveConfig tests that the codec configuration is applied
func TestArchiveConfig(t *testing.T) {
	cfg := codec.DefaultConfig()
	cfg.Endianness = codec.BigEndian
	f := NewArchiveFormat(cfg)

	data, err := f.Serialize(&samples.Header{Version: 1, Kind: 0x0203})
	if err != nil {
		t.Fatalf("Failed to serialize: %v", err)
	}
	if len(data) != 3 || data[1] != 0x02 || data[2] != 0x03 {
		t.Errorf("Expected big endian encoding, got %x", data)
	}
}

// TestNew tests the format lookup
func TestNew(t *testing.T) {
	if _, err := New("xml", codec.DefaultConfig()); err == nil {
		t.Errorf("Expected an error for an unknown format")
	}
	if got := Names(); len(got) != 3 || got[0] != "archive" {
		t.Errorf("Unexpected format names %v", got)
	}
}
