package document

import (
	"fmt"
	"github.com/ValentinKolb/dBytes/cmd/util"
	"github.com/ValentinKolb/dBytes/lib/format"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	encodeCmd = &cobra.Command{
		Use:   "encode [file]",
		Short: "Wrap raw bytes into a document",
		Long: util.WrapString(`Reads raw bytes from the file (or stdin) and writes them as a document
in the selected format. Human-readable formats store the bytes as text using the selected codec,
binary formats store them as a native byte string.`),
		Args: cobra.MaximumNArgs(1),
		RunE: runEncode,
	}

	decodeCmd = &cobra.Command{
		Use:   "decode [file]",
		Short: "Extract the raw bytes of a document",
		Long: util.WrapString(`Reads a document in the selected format from the file (or stdin),
verifies its size and digest and writes the raw bytes.`),
		Args: cobra.MaximumNArgs(1),
		RunE: runDecode,
	}

	convertCmd = &cobra.Command{
		Use:   "convert [file] --to <format>",
		Short: "Convert a document between formats",
		Long: util.WrapString(`Reads a document in the selected format and writes it in the --to format.
The codec of the input is kept unless --codec is given.`),
		Args: cobra.MaximumNArgs(1),
		RunE: runConvert,
	}

	// Commands holds all document commands
	Commands = []*cobra.Command{encodeCmd, decodeCmd, convertCmd}
)

func init() {
	key := "digest"
	encodeCmd.Flags().Bool(key, false, util.WrapString("Add a SHA-256 digest of the payload to the document"))

	key = "to"
	convertCmd.Flags().String(key, "", util.WrapString("Format of the converted document"))
	_ = convertCmd.MarkFlagRequired(key)
}

func runEncode(cmd *cobra.Command, args []string) error {
	config := util.GetConfig()

	f, err := format.Get(config.Format)
	if err != nil {
		return err
	}

	data, err := util.ReadInput(cmd, args)
	if err != nil {
		return err
	}

	out, err := format.EncodeDocument(f, config.Codec, data, config.Digest)
	if err != nil {
		return err
	}
	return util.WriteOutput(cmd, out)
}

func runDecode(cmd *cobra.Command, args []string) error {
	f, err := format.Get(viper.GetString("format"))
	if err != nil {
		return err
	}

	data, err := util.ReadInput(cmd, args)
	if err != nil {
		return err
	}

	doc, err := format.DecodeDocument(f, data)
	if err != nil {
		return err
	}
	if !doc.HasDigest {
		util.Logger.Infof("document has no digest, only the size was verified")
	}
	return util.WriteOutput(cmd, doc.Data)
}

func runConvert(cmd *cobra.Command, args []string) error {
	from, err := format.Get(viper.GetString("format"))
	if err != nil {
		return err
	}
	to, err := format.Get(viper.GetString("to"))
	if err != nil {
		return fmt.Errorf("invalid --to: %w", err)
	}

	// keep the codec of the input unless it was set explicitly
	codecName := ""
	if cmd.Flags().Changed("codec") {
		codecName = viper.GetString("codec")
	}

	data, err := util.ReadInput(cmd, args)
	if err != nil {
		return err
	}

	out, err := format.ConvertDocument(from, to, codecName, data)
	if err != nil {
		return err
	}
	return util.WriteOutput(cmd, out)
}
