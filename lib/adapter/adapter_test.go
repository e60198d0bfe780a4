package adapter

import (
	"bytes"
	"github.com/cockroachdb/errors"
	"testing"
)

// TestByteOutputGrows tests that the growable sink accepts any amount of data
func TestByteOutputGrows(t *testing.T) {
	var buf []byte
	w := NewByteOutput(&buf)

	payload := bytes.Repeat([]byte{7}, 1000)
	w.Write(payload[:10])
	w.Write(payload[10:])
	w.Flush()

	if w.BytesCount() != 1000 {
		t.Errorf("Expected 1000 bytes, got %d", w.BytesCount())
	}
	if !bytes.Equal(w.Data(), payload) {
		t.Error("Written data does not match payload")
	}
	if !w.IsCompletedSuccessfully() {
		t.Errorf("Unexpected error %v", w.ErrorState())
	}
}

// TestFixedOutputOverflow tests that a fixed sink never writes past its capacity
func TestFixedOutputOverflow(t *testing.T) {
	backing := make([]byte, 6)
	window := backing[:4]
	w := NewFixedOutput(window)

	w.Write([]byte{1, 2, 3})
	w.Write([]byte{4, 5}) // does not fit
	w.Write([]byte{6})    // would fit, but the error is sticky

	if w.ErrorState() != DataOverflow {
		t.Fatalf("Expected DataOverflow, got %v", w.ErrorState())
	}
	if w.IsCompletedSuccessfully() {
		t.Error("Overflowed sink must not report success")
	}
	if w.BytesCount() != 3 {
		t.Errorf("Expected 3 bytes written, got %d", w.BytesCount())
	}
	if !bytes.Equal(backing, []byte{1, 2, 3, 0, 0, 0}) {
		t.Errorf("Bytes beyond the accepted data were modified: %v", backing)
	}
}

// TestInputBufferUnderflow tests reading past the end of the input
func TestInputBufferUnderflow(t *testing.T) {
	r := NewInputBuffer([]byte{1, 2, 3})

	b := make([]byte, 2)
	r.Read(b)
	if !bytes.Equal(b, []byte{1, 2}) {
		t.Fatalf("Unexpected data %v", b)
	}

	b = []byte{9, 9}
	r.Read(b)
	if r.ErrorState() != DataOverflow {
		t.Fatalf("Expected DataOverflow, got %v", r.ErrorState())
	}
	if !bytes.Equal(b, []byte{0, 0}) {
		t.Errorf("Failed read must zero the target, got %v", b)
	}

	// sticky: even a read that would fit returns nothing
	one := []byte{9}
	r.Read(one)
	if one[0] != 0 || r.BytesCount() != 2 {
		t.Errorf("Read after error must not consume data (got %v, count %d)", one, r.BytesCount())
	}
	if r.IsCompletedSuccessfully() {
		t.Error("Reader with error must not report success")
	}
}

// TestInputBufferCompletion tests that success requires consuming all input
func TestInputBufferCompletion(t *testing.T) {
	r := NewInputBuffer([]byte{1, 2})
	r.Read(make([]byte, 1))
	if r.IsCompletedSuccessfully() {
		t.Error("Reader with unread input must not report success")
	}
	if r.Remaining() != 1 {
		t.Errorf("Expected 1 remaining byte, got %d", r.Remaining())
	}
	r.Read(make([]byte, 1))
	if !r.IsCompletedSuccessfully() {
		t.Error("Reader should report success after consuming all input")
	}
}

// TestStickyError tests that the first error is kept
func TestStickyError(t *testing.T) {
	r := NewInputBuffer(nil)
	r.SetError(InvalidData)
	r.SetError(DataOverflow)
	if r.ErrorState() != InvalidData {
		t.Errorf("Expected first error to stick, got %v", r.ErrorState())
	}
	if !errors.Is(error(InvalidData), InvalidData) {
		t.Error("Adapter errors should be comparable with errors.Is")
	}
}

// failingWriter fails every write
type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

// TestStreams tests the io adapters
func TestStreams(t *testing.T) {
	var sink bytes.Buffer
	w := NewOutputStream(&sink, 0)
	w.Write([]byte("hello"))
	w.Flush()
	if sink.String() != "hello" || !w.IsCompletedSuccessfully() {
		t.Fatalf("Unexpected stream output %q (%v)", sink.String(), w.ErrorState())
	}

	r := NewInputStream(bytes.NewReader(sink.Bytes()), 0)
	b := make([]byte, 5)
	r.Read(b)
	if string(b) != "hello" || !r.IsCompletedSuccessfully() {
		t.Errorf("Unexpected stream input %q (%v)", b, r.ErrorState())
	}

	r.Read(make([]byte, 1))
	if r.ErrorState() != DataOverflow {
		t.Errorf("Expected DataOverflow at end of stream, got %v", r.ErrorState())
	}

	bw := NewOutputStream(failingWriter{}, 1)
	bw.Write([]byte("xy"))
	bw.Flush()
	if bw.ErrorState() != WritingError {
		t.Errorf("Expected WritingError, got %v", bw.ErrorState())
	}
}
