// Package cmd implements the dbytes command-line interface. It wraps raw bytes
// into documents of the formats registered in lib/format and extracts them again.
//
// The package is organized into several subpackages:
//
//   - document: encode, decode and convert commands
//   - perf: encoding and decoding benchmarks per format and codec
//   - util: Shared utilities for command-line processing and configuration (internal use)
//
// All flags can also be set as environment variables with the DBYTES_ prefix
// (e.g. DBYTES_LOG_LEVEL=debug), .env and .env.local files are loaded on start.
//
// See dbytes -help for a list of all commands.
package cmd
