package codec

import (
	"encoding/binary"
	"fmt"
	"github.com/cockroachdb/errors"
	"strings"
)

// MaxSize is the largest length the size prefix can represent
const MaxSize = 0x40000000 - 1

// ErrBitOverflow is the panic value (wrapped) of OverflowPanic
var ErrBitOverflow = errors.New("codec: value exceeds declared bit width")

// --------------------------------------------------------------------------
// Byte order
// --------------------------------------------------------------------------

// Endianness selects the byte order of multi-byte values
type Endianness uint8

const (
	LittleEndian Endianness = iota
	BigEndian
)

// ByteOrder returns the encoding/binary byte order for e
func (e Endianness) ByteOrder() binary.ByteOrder {
	if e == BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

func (e Endianness) String() string {
	if e == BigEndian {
		return "big"
	}
	return "little"
}

// ParseEndianness converts "little" or "big" to an Endianness
func ParseEndianness(s string) (Endianness, error) {
	switch strings.ToLower(s) {
	case "little", "le":
		return LittleEndian, nil
	case "big", "be":
		return BigEndian, nil
	default:
		return LittleEndian, fmt.Errorf("invalid endianness: %s (expected little or big)", s)
	}
}

// --------------------------------------------------------------------------
// Bit overflow policy
// --------------------------------------------------------------------------

// OverflowPolicy selects what happens when a value exceeds its declared bit width
type OverflowPolicy uint8

const (
	// OverflowTruncate keeps the low bits of the value
	OverflowTruncate OverflowPolicy = iota
	// OverflowPanic aborts the traversal with a panic
	OverflowPanic
)

func (p OverflowPolicy) String() string {
	if p == OverflowPanic {
		return "panic"
	}
	return "truncate"
}

// ParseOverflowPolicy converts "truncate" or "panic" to an OverflowPolicy
func ParseOverflowPolicy(s string) (OverflowPolicy, error) {
	switch strings.ToLower(s) {
	case "truncate":
		return OverflowTruncate, nil
	case "panic", "strict":
		return OverflowPanic, nil
	default:
		return OverflowTruncate, fmt.Errorf("invalid bit overflow policy: %s (expected truncate or panic)", s)
	}
}

// --------------------------------------------------------------------------
// Config
// --------------------------------------------------------------------------

// Config is the codec configuration of one session
type Config struct {
	// Endianness of all multi-byte values
	Endianness Endianness
	// BitOverflow is applied when a bit-packed value exceeds its width
	BitOverflow OverflowPolicy
	// MaxSize bounds every decoded container and text length. Values <= 0 or
	// above MaxSize mean MaxSize.
	MaxSize int
}

// DefaultConfig returns little endian, truncating, unbounded (MaxSize) settings
func DefaultConfig() Config {
	return Config{
		Endianness:  LittleEndian,
		BitOverflow: OverflowTruncate,
		MaxSize:     MaxSize,
	}
}

// sizeBound returns the effective size bound of the config
func (c Config) sizeBound() int {
	if c.MaxSize <= 0 || c.MaxSize > MaxSize {
		return MaxSize
	}
	return c.MaxSize
}

// lowMask returns a mask of the n lowest bits
func lowMask(n uint) uint64 {
	if n >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << n) - 1
}
