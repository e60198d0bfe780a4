package adapter

import (
	"bufio"
	"github.com/cockroachdb/errors"
	"io"
)

// defaultStreamBufferSize is used when a stream adapter is created with size <= 0
const defaultStreamBufferSize = 4096

// --------------------------------------------------------------------------
// Output stream
// --------------------------------------------------------------------------

// OutputStream writes to an io.Writer through a buffer. Failures of the
// underlying writer are recorded as WritingError.
type OutputStream struct {
	sticky
	w     *bufio.Writer
	count int
}

// NewOutputStream creates a sink over w with a buffer of size bytes
func NewOutputStream(w io.Writer, size int) *OutputStream {
	if size <= 0 {
		size = defaultStreamBufferSize
	}
	return &OutputStream{w: bufio.NewWriterSize(w, size)}
}

func (o *OutputStream) Write(b []byte) {
	if o.err != NoError || len(b) == 0 {
		return
	}
	n, err := o.w.Write(b)
	o.count += n
	if err != nil {
		o.SetError(WritingError)
	}
}

// Flush writes buffered data to the underlying writer
func (o *OutputStream) Flush() {
	if o.err != NoError {
		return
	}
	if err := o.w.Flush(); err != nil {
		o.SetError(WritingError)
	}
}

func (o *OutputStream) BytesCount() int { return o.count }

func (o *OutputStream) IsCompletedSuccessfully() bool { return o.err == NoError }

// --------------------------------------------------------------------------
// Input stream
// --------------------------------------------------------------------------

// InputStream reads from an io.Reader through a buffer. A premature end of
// input is recorded as DataOverflow, other failures as ReadingError.
type InputStream struct {
	sticky
	r     *bufio.Reader
	count int
}

// NewInputStream creates a source over r with a buffer of size bytes
func NewInputStream(r io.Reader, size int) *InputStream {
	if size <= 0 {
		size = defaultStreamBufferSize
	}
	return &InputStream{r: bufio.NewReaderSize(r, size)}
}

func (i *InputStream) Read(b []byte) {
	if i.err != NoError {
		clear(b)
		return
	}
	n, err := io.ReadFull(i.r, b)
	i.count += n
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			i.SetError(DataOverflow)
		} else {
			i.SetError(ReadingError)
		}
		clear(b)
	}
}

func (i *InputStream) BytesCount() int { return i.count }

// IsCompletedSuccessfully reports whether no error was recorded and the
// underlying reader is at its end
func (i *InputStream) IsCompletedSuccessfully() bool {
	if i.err != NoError {
		return false
	}
	_, err := i.r.Peek(1)
	return errors.Is(err, io.EOF)
}
