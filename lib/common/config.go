package common

import (
	"fmt"
	"strings"
)

// Config holds the settings shared by all dbytes commands
type Config struct {
	// Format is the document format (json, yaml or cbor)
	Format string
	// Codec is the text codec for human-readable formats (hex or base64)
	Codec string
	// Digest adds a SHA-256 digest to encoded documents
	Digest bool
	// Output is the output file, "-" for stdout
	Output string

	LogLevel string
}

// String returns a formatted string representation of the configuration
func (c *Config) String() string {
	var sb strings.Builder

	addSection := func(title string) {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%s\n", strings.ToUpper(title)))
	}

	addField := func(name, value string) {
		sb.WriteString(fmt.Sprintf("  %-22s: %s\n", name, value))
	}

	addSection("Document")
	addField("Format", c.Format)
	addField("Codec", c.Codec)
	addField("Digest", fmt.Sprintf("%t", c.Digest))

	addSection("Output")
	addField("Destination", c.Output)

	addSection("Logging")
	addField("Log Level", c.LogLevel)

	return sb.String()
}
