package archive

import (
	"github.com/ValentinKolb/dSER/lib/adapter"
	"github.com/ValentinKolb/dSER/lib/codec"
	"github.com/cockroachdb/errors"
	"github.com/lni/dragonboat/v4/logger"
)

// Logger is the package logger of the engine
var Logger = logger.GetLogger("archive")

var (
	// ErrNotIdle is returned when Serialize or Deserialize is called on an
	// engine that already ran
	ErrNotIdle = errors.New("archive: engine is not idle")
	// ErrTransfer marks errors caused by the adapter during a traversal.
	// The adapter.Error is part of the cause chain.
	ErrTransfer = errors.New("archive: transfer failed")
	// ErrIncomplete is returned by Decode when input is left after the root object
	ErrIncomplete = errors.New("archive: trailing input")
)

// Option configures an engine
type Option func(*options)

type options struct {
	cfg codec.Config
}

// WithConfig sets the codec configuration of the session
func WithConfig(cfg codec.Config) Option {
	return func(o *options) { o.cfg = cfg }
}

// WithEndianness overrides only the byte order of the session
func WithEndianness(e codec.Endianness) Option {
	return func(o *options) { o.cfg.Endianness = e }
}

func buildOptions(opts []Option) options {
	o := options{cfg: codec.DefaultConfig()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// transferError converts a sticky adapter error into the engine error
func transferError(op string, err adapter.Error, bytes int) error {
	return errors.Mark(errors.Wrapf(err, "%s failed after %d bytes", op, bytes), ErrTransfer)
}
