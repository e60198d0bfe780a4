package format

import (
	"github.com/ValentinKolb/dSER/lib/archive"
	"github.com/ValentinKolb/dSER/lib/codec"
	"github.com/cockroachdb/errors"
)

// Config configures the archive format
type Config = codec.Config

// NewArchiveFormat creates a format using the archive engine with the given
// codec configuration
func NewArchiveFormat(cfg Config) IFormat {
	return &archiveFormatImpl{opts: []archive.Option{archive.WithConfig(cfg)}}
}

// archiveFormatImpl implements IFormat with the archive engine
type archiveFormatImpl struct {
	opts []archive.Option
}

// --------------------------------------------------------------------------
// Interface Methods (docu see format.IFormat)
// --------------------------------------------------------------------------

func (f *archiveFormatImpl) Name() string { return "archive" }

func (f *archiveFormatImpl) Serialize(v any) ([]byte, error) {
	switch v := v.(type) {
	case archive.ContextDescribable:
		return archive.EncodeContext(v, f.opts...)
	case archive.Describable:
		return archive.Encode(v, f.opts...)
	default:
		Logger.Debugf("archive format cannot serialize %T", v)
		return nil, errors.Wrapf(ErrUnsupported, "%T has no description", v)
	}
}

func (f *archiveFormatImpl) Deserialize(b []byte, v any) error {
	switch v := v.(type) {
	case archive.ContextDescribable:
		return archive.DecodeContext(b, v, f.opts...)
	case archive.Describable:
		return archive.Decode(b, v, f.opts...)
	default:
		Logger.Debugf("archive format cannot deserialize %T", v)
		return errors.Wrapf(ErrUnsupported, "%T has no description", v)
	}
}
