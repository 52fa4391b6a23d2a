package cmd

import (
	"fmt"
	"github.com/ValentinKolb/dBytes/cmd/document"
	"github.com/ValentinKolb/dBytes/cmd/perf"
	"github.com/ValentinKolb/dBytes/cmd/util"
	"github.com/ValentinKolb/dBytes/lib/codec"
	"github.com/ValentinKolb/dBytes/lib/common"
	"github.com/ValentinKolb/dBytes/lib/format"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"os"
)

const (
	Version = "0.3.1"
)

var (

	// RootCmd represents the base command when called without any subcommands
	RootCmd = &cobra.Command{
		Use:   "dbytes",
		Short: "byte payloads in text and binary documents",
		Long: fmt.Sprintf(`dBytes (v%s)

Encode raw bytes into JSON, YAML or CBOR documents and back.
Human-readable formats carry the bytes as hex or base64 text,
binary formats as native byte strings.`, Version),
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		PersistentPostRun: printMetrics,
	}
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of dBytes",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "dBytes v%s\n", Version)
		},
	}
	formatsCmd = &cobra.Command{
		Use:   "formats",
		Short: "List the available document formats and codecs",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			for _, name := range format.Names() {
				f, _ := format.Get(name)
				kind := "binary"
				if f.HumanReadable() {
					kind = "text"
				}
				fmt.Fprintf(out, "%-8s%s\n", name, kind)
			}
			fmt.Fprintln(out)
			fmt.Fprintf(out, "codecs: %v\n", codec.Names())
		},
	}
)

func init() {
	// Initialize viper
	cobra.OnInitialize(util.InitConfig)

	// Add Commands
	RootCmd.AddCommand(document.Commands...)
	RootCmd.AddCommand(perf.PerfCmd)
	RootCmd.AddCommand(formatsCmd)
	RootCmd.AddCommand(versionCmd)

	// Add Flags
	util.SetupDocumentFlags(RootCmd)
}

// setup binds the flags, validates the configuration and initializes the loggers
func setup(cmd *cobra.Command, _ []string) error {
	if err := util.BindCommandFlags(cmd); err != nil {
		return err
	}

	config := util.GetConfig()
	if err := util.ValidateConfig(config); err != nil {
		return err
	}
	if err := common.InitLoggers(config.LogLevel); err != nil {
		return err
	}

	util.Logger.Debugf("configuration:\n%s", config)
	return nil
}

func printMetrics(cmd *cobra.Command, _ []string) {
	if viper.GetBool("metrics") {
		format.WriteMetrics(cmd.ErrOrStderr())
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
