package common

import (
	"bytes"
	"github.com/ValentinKolb/dSER/lib/codec"
	"github.com/lni/dragonboat/v4/logger"
	"log"
	"strings"
	"testing"
)

// TestToCodecConfig tests the conversion of valid and invalid settings
func TestToCodecConfig(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		want    codec.Config
		wantErr bool
	}{
		{
			name:   "Default",
			config: DefaultConfig(),
			want:   codec.Config{Endianness: codec.LittleEndian, BitOverflow: codec.OverflowTruncate},
		},
		{
			name:   "BigStrict",
			config: Config{Endianness: "big", BitOverflow: "strict", MaxSize: 1024, LogLevel: "info"},
			want:   codec.Config{Endianness: codec.BigEndian, BitOverflow: codec.OverflowPanic, MaxSize: 1024},
		},
		{
			name:    "BadEndianness",
			config:  Config{Endianness: "middle", BitOverflow: "truncate"},
			wantErr: true,
		},
		{
			name:    "BadPolicy",
			config:  Config{Endianness: "little", BitOverflow: "wrap"},
			wantErr: true,
		},
		{
			name:    "MaxSizeTooLarge",
			config:  Config{Endianness: "little", BitOverflow: "truncate", MaxSize: codec.MaxSize + 1},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.config.ToCodecConfig()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Expected error=%t, got %v", tt.wantErr, err)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("Expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

// TestConfigString tests the rendered configuration
func TestConfigString(t *testing.T) {
	c := DefaultConfig()
	s := c.String()
	for _, want := range []string{"CODEC", "LOGGING", "Endianness", "little", "(default)"} {
		if !strings.Contains(s, want) {
			t.Errorf("Expected %q in:\n%s", want, s)
		}
	}
}

// TestParseLogLevel tests all accepted level names
func TestParseLogLevel(t *testing.T) {
	levels := map[string]logger.LogLevel{
		"debug":   logger.DEBUG,
		"INFO":    logger.INFO,
		"warn":    logger.WARNING,
		"warning": logger.WARNING,
		"error":   logger.ERROR,
	}
	for name, want := range levels {
		got, err := ParseLogLevel(name)
		if err != nil || got != want {
			t.Errorf("ParseLogLevel(%q) = %v, %v, want %v", name, got, err, want)
		}
	}
	if _, err := ParseLogLevel("verbose"); err == nil {
		t.Errorf("Expected an error for an unknown level")
	}
}

// TestLoggerFormat tests level filtering and the line format
func TestLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	l := &dSERLogger{name: "archive", level: logger.INFO, logger: log.New(&buf, "", 0)}

	l.Debugf("hidden %d", 1)
	l.Infof("shown %d", 2)
	l.Errorf("failed")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("Expected debug output to be filtered, got %q", out)
	}
	if !strings.Contains(out, "INFO  | archive    | shown 2") {
		t.Errorf("Unexpected info line in %q", out)
	}
	if !strings.Contains(out, "ERROR | archive    | failed") {
		t.Errorf("Unexpected error line in %q", out)
	}
}
