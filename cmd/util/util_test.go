package util

import (
	"bytes"
	"github.com/ValentinKolb/dBytes/lib/common"
	"github.com/hengadev/errsx"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWrapString(t *testing.T) {
	text := "Text codec for bytes in human-readable formats (hex, base64)"
	wrapped := WrapString(text)

	for _, line := range strings.Split(wrapped, "\n") {
		assert.LessOrEqual(t, len(line), Wrap)
	}
	assert.Equal(t, strings.Fields(text), strings.Fields(wrapped))
	assert.Equal(t, "", WrapString(""))
}

func TestValidateConfig(t *testing.T) {
	valid := &common.Config{Format: "json", Codec: "hex", Output: Stdio, LogLevel: "warn"}
	require.NoError(t, ValidateConfig(valid))

	invalid := &common.Config{
		Format:   "xml",
		Codec:    "base32",
		Output:   filepath.Join(t.TempDir(), "missing", "out.json"),
		LogLevel: "loud",
	}
	err := ValidateConfig(invalid)
	require.Error(t, err)

	errs, ok := err.(errsx.Map)
	require.True(t, ok, "expected error to be of type errsx.Map")
	assert.Len(t, errs, 4)
	for _, key := range []string{"format", "codec", "output", "log-level"} {
		_, ok := errs[key]
		assert.True(t, ok, "expected key %q", key)
	}
}

func TestGetConfig(t *testing.T) {
	viper.Set("format", "cbor")
	viper.Set("codec", "base64")
	viper.Set("digest", true)
	defer viper.Reset()

	c := GetConfig()
	assert.Equal(t, "cbor", c.Format)
	assert.Equal(t, "base64", c.Codec)
	assert.True(t, c.Digest)
}

func TestReadWrite(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetIn(strings.NewReader("from stdin"))

	data, err := ReadInput(cmd, nil)
	require.NoError(t, err)
	assert.Equal(t, "from stdin", string(data))

	path := filepath.Join(t.TempDir(), "in.bin")
	require.NoError(t, os.WriteFile(path, []byte{1, 2, 3}, 0o600))
	data, err = ReadInput(cmd, []string{path})
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, data)

	_, err = ReadInput(cmd, []string{filepath.Join(t.TempDir(), "missing")})
	assert.Error(t, err)

	var out bytes.Buffer
	cmd.SetOut(&out)
	viper.Set("output", Stdio)
	defer viper.Reset()
	require.NoError(t, WriteOutput(cmd, []byte("to stdout")))
	assert.Equal(t, "to stdout", out.String())

	outPath := filepath.Join(t.TempDir(), "out.bin")
	viper.Set("output", outPath)
	require.NoError(t, WriteOutput(cmd, []byte{4, 5}))
	written, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, []byte{4, 5}, written)
}
