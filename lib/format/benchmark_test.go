package format

import (
	"github.com/ValentinKolb/dSER/lib/samples"
	"testing"
)

// BenchmarkSerialize benchmarks serialization for all formats with every sample
func BenchmarkSerialize(b *testing.B) {
	for _, f := range testFormats(b) {
		for _, s := range samples.All() {
			b.Run(f.Name()+"_"+s.Name, func(b *testing.B) {
				v := s.Value()
				b.ResetTimer()

				for i := 0; i < b.N; i++ {
					if _, err := f.Serialize(v); err != nil {
						b.Fatalf("Failed to serialize: %v", err)
					}
				}
			})
		}
	}
}

// BenchmarkDeserialize benchmarks deserialization for all formats with every sample
func BenchmarkDeserialize(b *testing.B) {
	for _, f := range testFormats(b) {
		for _, s := range samples.All() {
			b.Run(f.Name()+"_"+s.Name, func(b *testing.B) {
				data, err := f.Serialize(s.Value())
				if err != nil {
					b.Fatalf("Failed to serialize: %v", err)
				}
				b.ResetTimer()

				for i := 0; i < b.N; i++ {
					if err := f.Deserialize(data, s.Empty()); err != nil {
						b.Fatalf("Failed to deserialize: %v", err)
					}
				}
			})
		}
	}
}
