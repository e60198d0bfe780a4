package adapter

// Error is a sticky transfer error recorded by an adapter
type Error uint8

const (
	// NoError means every transfer so far succeeded
	NoError Error = iota
	// DataOverflow is set when reading past the end of the input
	// or writing past the capacity of a fixed sink
	DataOverflow
	// InvalidData is set when decoded data violates the format, e.g. a length
	// above the configured bound or non-zero bit padding
	InvalidData
	// ReadingError is set when the underlying source failed
	ReadingError
	// WritingError is set when the underlying sink failed
	WritingError
)

// String returns a string representation of the error
func (e Error) String() string {
	switch e {
	case NoError:
		return "no error"
	case DataOverflow:
		return "data overflow"
	case InvalidData:
		return "invalid data"
	case ReadingError:
		return "reading error"
	case WritingError:
		return "writing error"
	default:
		return "unknown adapter error"
	}
}

// Error implements the error interface
func (e Error) Error() string {
	return "adapter: " + e.String()
}

// Writer is a bounded byte sink with a sticky error
type Writer interface {
	// Write appends all bytes of b. If b does not fit, nothing is written and
	// DataOverflow is recorded. Does nothing once an error is recorded.
	Write(b []byte)
	// Flush pushes buffered bytes to the underlying sink
	Flush()
	// BytesCount returns the number of bytes accepted so far
	BytesCount() int
	// ErrorState returns the first recorded error
	ErrorState() Error
	// SetError records err unless an error is already recorded
	SetError(err Error)
	// IsCompletedSuccessfully reports whether no error was recorded
	IsCompletedSuccessfully() bool
}

// Reader is a bounded byte source with a sticky error
type Reader interface {
	// Read fills b completely. If not enough input is left, DataOverflow is
	// recorded and b is zeroed. Once an error is recorded b is always zeroed.
	Read(b []byte)
	// BytesCount returns the number of bytes consumed so far
	BytesCount() int
	// ErrorState returns the first recorded error
	ErrorState() Error
	// SetError records err unless an error is already recorded
	SetError(err Error)
	// IsCompletedSuccessfully reports whether no error was recorded and all
	// input was consumed
	IsCompletedSuccessfully() bool
}

// Sized is implemented by readers that know how much input is left. The
// engine uses it to reject decoded lengths the input cannot hold before
// allocating for them.
type Sized interface {
	// Remaining returns the number of unread bytes
	Remaining() int
}

// sticky implements the shared error bookkeeping of all adapters
type sticky struct {
	err Error
}

func (s *sticky) ErrorState() Error { return s.err }

func (s *sticky) SetError(err Error) {
	if s.err == NoError {
		s.err = err
	}
}
