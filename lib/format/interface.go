package format

import (
	"github.com/cockroachdb/errors"
	"github.com/lni/dragonboat/v4/logger"
	"sort"
)

// Logger is the package logger of the formats
var Logger = logger.GetLogger("format")

// ErrUnsupported is returned when a format cannot handle a value
var ErrUnsupported = errors.New("format: unsupported value")

// IFormat is the interface for all object formats
type IFormat interface {
	// Name returns the name the format is registered under
	Name() string
	// Serialize serializes v into a byte array
	Serialize(v any) ([]byte, error)
	// Deserialize deserializes b into v, which must be a pointer
	Deserialize(b []byte, v any) error
}

// factories maps a format name to its constructor
var factories = map[string]func(cfg Config) IFormat{
	"archive": NewArchiveFormat,
	"gob":     func(Config) IFormat { return NewGOBFormat() },
	"json":    func(Config) IFormat { return NewJSONFormat() },
}

// Names returns the names of all formats, sorted
func Names() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New creates the format with the given name. cfg is used by formats that
// can be configured and ignored by the others.
func New(name string, cfg Config) (IFormat, error) {
	factory, ok := factories[name]
	if !ok {
		return nil, errors.Newf("invalid format %s", name)
	}
	return factory(cfg), nil
}
