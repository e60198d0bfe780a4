package common

import (
	"fmt"
	"github.com/ValentinKolb/dSER/lib/codec"
	"github.com/cockroachdb/errors"
	"strings"
)

// Config holds the settings of a dSER session as read from flags and the
// environment
type Config struct {
	// Endianness is the byte order of multi-byte values (little, big)
	Endianness string
	// BitOverflow selects what happens to values wider than their bit
	// field (truncate, panic)
	BitOverflow string
	// MaxSize bounds container and text lengths, 0 uses codec.MaxSize
	MaxSize int

	// Logging configuration
	LogLevel string
}

// DefaultConfig returns the configuration used when nothing is set
func DefaultConfig() Config {
	return Config{
		Endianness:  codec.LittleEndian.String(),
		BitOverflow: codec.OverflowTruncate.String(),
		MaxSize:     0,
		LogLevel:    "warn",
	}
}

// ToCodecConfig converts the configuration to a codec.Config
func (c *Config) ToCodecConfig() (codec.Config, error) {
	endianness, err := codec.ParseEndianness(c.Endianness)
	if err != nil {
		return codec.Config{}, err
	}
	policy, err := codec.ParseOverflowPolicy(c.BitOverflow)
	if err != nil {
		return codec.Config{}, err
	}
	if c.MaxSize < 0 || c.MaxSize > codec.MaxSize {
		return codec.Config{}, errors.Newf("max size %d out of range [0, %d]", c.MaxSize, codec.MaxSize)
	}
	return codec.Config{
		Endianness:  endianness,
		BitOverflow: policy,
		MaxSize:     c.MaxSize,
	}, nil
}

// String returns a formatted string representation of the configuration
func (c *Config) String() string {
	var sb strings.Builder

	// Create helper functions for consistent formatting
	addSection := func(title string) {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%s\n", strings.ToUpper(title)))
	}

	addField := func(name, value string) {
		sb.WriteString(fmt.Sprintf("  %-22s: %s\n", name, value))
	}

	// Codec settings
	addSection("Codec")
	addField("Endianness", c.Endianness)
	addField("Bit Overflow", c.BitOverflow)
	if c.MaxSize == 0 {
		addField("Max Size", fmt.Sprintf("%d (default)", codec.MaxSize))
	} else {
		addField("Max Size", fmt.Sprintf("%d", c.MaxSize))
	}

	// Logging configuration
	addSection("Logging")
	addField("Log Level", c.LogLevel)

	return sb.String()
}
