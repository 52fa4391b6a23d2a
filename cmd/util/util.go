package util

import (
	"fmt"
	"github.com/ValentinKolb/dBytes/lib/codec"
	"github.com/ValentinKolb/dBytes/lib/common"
	"github.com/ValentinKolb/dBytes/lib/format"
	"github.com/hengadev/errsx"
	"github.com/joho/godotenv"
	"github.com/lni/dragonboat/v4/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const (
	// Wrap is the number of characters to Wrap the help text at
	Wrap int = 50
	// Stdio is the file name that selects stdin or stdout
	Stdio = "-"
)

// Logger is the logger of the command line interface
var Logger = logger.GetLogger("cli")

// WrapString wraps a string at Wrap characters
func WrapString(text string) string {
	var wrappedLines []string
	var currentLine strings.Builder
	lineWidth := 0

	for _, word := range strings.Fields(text) {
		wordWidth := len(word)

		if lineWidth > 0 && lineWidth+1+wordWidth > Wrap {
			wrappedLines = append(wrappedLines, currentLine.String())
			currentLine.Reset()
			lineWidth = 0
		}

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

// SetupDocumentFlags adds the flags shared by all document commands
func SetupDocumentFlags(cmd *cobra.Command) {
	key := "format"
	cmd.PersistentFlags().String(key, "json", WrapString(fmt.Sprintf("Document format (%s)", strings.Join(format.Names(), ", "))))

	key = "codec"
	cmd.PersistentFlags().String(key, "hex", WrapString(fmt.Sprintf("Text codec for bytes in human-readable formats (%s)", strings.Join(codec.Names(), ", "))))

	key = "output"
	cmd.PersistentFlags().StringP(key, "o", Stdio, WrapString("File to write the result to, - for stdout"))

	key = "log-level"
	cmd.PersistentFlags().String(key, "warn", WrapString("Log level (debug, info, warn, error)"))

	key = "metrics"
	cmd.PersistentFlags().Bool(key, false, WrapString("Print the document counters in Prometheus format to stderr when done"))
}

// InitConfig initializes configuration from .env files and environment variables
func InitConfig() {
	// load env files
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	// initialize viper
	viper.SetEnvPrefix("dbytes")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// GetConfig reads the configuration from viper
func GetConfig() *common.Config {
	return &common.Config{
		Format:   viper.GetString("format"),
		Codec:    viper.GetString("codec"),
		Digest:   viper.GetBool("digest"),
		Output:   viper.GetString("output"),
		LogLevel: viper.GetString("log-level"),
	}
}

// ValidateConfig checks all settings of c and reports every invalid one
func ValidateConfig(c *common.Config) error {
	errs := errsx.Map{}

	if _, err := format.Get(c.Format); err != nil {
		errs.Set("format", err)
	}
	if _, err := codec.Lookup(c.Codec); err != nil {
		errs.Set("codec", err)
	}
	if _, err := common.ParseLogLevel(c.LogLevel); err != nil {
		errs.Set("log-level", err)
	}
	if c.Output != Stdio && c.Output != "" {
		if info, err := os.Stat(filepath.Dir(c.Output)); err != nil || !info.IsDir() {
			errs.Set("output", fmt.Errorf("directory of %s does not exist", c.Output))
		}
	}

	return errs.AsError()
}

// BindCommandFlags binds a command's flags to viper
func BindCommandFlags(cmd *cobra.Command) error {
	return viper.BindPFlags(cmd.Flags())
}

// --------------------------------------------------------------------------
// Input / Output
// --------------------------------------------------------------------------

// ReadInput reads the file named by the first argument, or stdin of cmd if there is none (or it is -)
func ReadInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == Stdio {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	Logger.Debugf("read %d bytes from %s", len(data), args[0])
	return data, nil
}

// WriteOutput writes data to the configured output file, or stdout of cmd
func WriteOutput(cmd *cobra.Command, data []byte) error {
	path := viper.GetString("output")
	if path == "" || path == Stdio {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	Logger.Infof("wrote %d bytes to %s", len(data), path)
	return nil
}

