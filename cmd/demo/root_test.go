package demo

import (
	"bytes"
	"strings"
	"testing"
)

// TestRun tests the demo report
func TestRun(t *testing.T) {
	var buf bytes.Buffer
	if err := Run(&buf); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"034e0b37 (4 bytes)",
		"X=3 (via Derive1) X=3 (via Derive2) Y1=78 Y2=11 Z=55",
		"shared   : true",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in:\n%s", want, out)
		}
	}
}
