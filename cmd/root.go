package cmd

import (
	"fmt"
	"github.com/ValentinKolb/dSER/cmd/demo"
	"github.com/ValentinKolb/dSER/cmd/perf"
	"github.com/ValentinKolb/dSER/cmd/roundtrip"
	"github.com/ValentinKolb/dSER/cmd/util"
	"github.com/ValentinKolb/dSER/lib/common"
	"github.com/spf13/cobra"
	"os"
)

const (
	Version = "0.1.0"
)

var (

	// RootCmd represents the base command when called without any subcommands
	RootCmd = &cobra.Command{
		Use:   "dser",
		Short: "generic binary serializer",
		Long: fmt.Sprintf(`dSER (v%s)

A generic binary serialization library written in Go. Objects describe
their fields once, the same description encodes and decodes them,
including class hierarchies with shared virtual bases.

All flags can be set via environment variables in the format DSER_<flag>
(e.g. DSER_ENDIANNESS=big).`, Version),
		PersistentPreRunE: setup,
		SilenceUsage:      true,
	}
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of dSER",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("dSER v%s\n", Version)
		},
	}
)

func init() {
	// initialize viper
	cobra.OnInitialize(util.InitConfig)

	// Add Commands
	RootCmd.AddCommand(demo.DemoCmd)
	RootCmd.AddCommand(roundtrip.RoundTripCmd)
	RootCmd.AddCommand(perf.PerfCmd)
	RootCmd.AddCommand(versionCmd)

	// Add Flags
	util.SetupCodecFlags(RootCmd)
}

// setup binds the flags of the executed command and initializes logging
func setup(cmd *cobra.Command, _ []string) error {
	if err := util.BindCommandFlags(cmd); err != nil {
		return err
	}
	conf := util.GetConfig()
	if _, err := conf.ToCodecConfig(); err != nil {
		return err
	}
	return common.InitLoggers(conf)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
