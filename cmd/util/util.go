package util

import (
	"github.com/ValentinKolb/dSER/lib/common"
	"github.com/ValentinKolb/dSER/lib/format"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"strings"
)

const (
	// Wrap is the number of characters to Wrap the help text at
	Wrap int = 50
)

// WrapString wraps a string at Wrap characters
func WrapString(text string) string {
	var wrappedLines []string
	var currentLine strings.Builder
	lineWidth := 0

	for _, word := range strings.Fields(text) {
		wordWidth := len(word)

		// Check if we need to wrap
		if lineWidth > 0 && lineWidth+1+wordWidth > Wrap {
			wrappedLines = append(wrappedLines, currentLine.String())
			currentLine.Reset()
			lineWidth = 0
		}

		// Add space before word (if not first word on line)
		if lineWidth > 0 {
			currentLine.WriteString(" ")
			lineWidth++
		}

		currentLine.WriteString(word)
		lineWidth += wordWidth
	}

	if currentLine.Len() > 0 {
		wrappedLines = append(wrappedLines, currentLine.String())
	}

	return strings.Join(wrappedLines, "\n")
}

// SetupCodecFlags adds the codec and logging flags to a command
func SetupCodecFlags(cmd *cobra.Command) {
	defaults := common.DefaultConfig()

	key := "endianness"
	cmd.PersistentFlags().String(key, defaults.Endianness, WrapString("Byte order of multi-byte values (little, big)"))

	key = "bit-overflow"
	cmd.PersistentFlags().String(key, defaults.BitOverflow, WrapString("What to do with values wider than their bit field (truncate, panic)"))

	key = "max-size"
	cmd.PersistentFlags().Int(key, defaults.MaxSize, WrapString("Upper bound for decoded container and text lengths (0 = largest encodable size)"))

	key = "log-level"
	cmd.PersistentFlags().String(key, defaults.LogLevel, WrapString("LogLevel is the level at which logs will be output (debug, info, warn, error)"))
}

// InitConfig initializes configuration from environment variables
func InitConfig() {
	// load env files
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	// initialize viper
	viper.SetEnvPrefix("dser")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match
}

// GetConfig reads the session configuration from viper
func GetConfig() common.Config {
	return common.Config{
		Endianness:  viper.GetString("endianness"),
		BitOverflow: viper.GetString("bit-overflow"),
		MaxSize:     viper.GetInt("max-size"),
		LogLevel:    viper.GetString("log-level"),
	}
}

// GetFormats creates the formats named in a comma separated list, all
// formats for an empty list
func GetFormats(list string) ([]format.IFormat, error) {
	conf := GetConfig()
	codecConf, err := conf.ToCodecConfig()
	if err != nil {
		return nil, err
	}

	names := format.Names()
	if list != "" {
		names = strings.Split(list, ",")
	}

	formats := make([]format.IFormat, 0, len(names))
	for _, name := range names {
		f, err := format.New(strings.TrimSpace(name), codecConf)
		if err != nil {
			return nil, err
		}
		formats = append(formats, f)
	}
	return formats, nil
}

// BindCommandFlags binds a command's flags to viper
func BindCommandFlags(cmd *cobra.Command) error {
	return viper.BindPFlags(cmd.Flags())
}
