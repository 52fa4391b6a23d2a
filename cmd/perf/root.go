package perf

import (
	"encoding/csv"
	"fmt"
	"github.com/ValentinKolb/dBytes/cmd/util"
	"github.com/ValentinKolb/dBytes/lib/codec"
	"github.com/ValentinKolb/dBytes/lib/format"
	"github.com/lni/dragonboat/v4/logger"
	gometrics "github.com/rcrowley/go-metrics"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"io"
	"math"
	"math/rand"
	"os"
	"slices"
	"strings"
	"testing"
	"time"
)

var (
	// PerfCmd benchmarks encoding and decoding of documents
	PerfCmd = &cobra.Command{
		Use:   "perf",
		Short: "Benchmark document encoding and decoding",
		Long: util.WrapString(`Runs an encode and a decode benchmark for every format and codec.
Tests are named format/codec/op (e.g. json/hex/encode), --skip accepts full names or single parts.`),
		RunE:    run,
		PreRunE: processPerfConfig,
	}

	log = logger.GetLogger("perf")

	perfSizeKB  = 64
	perfSamples = 1000
	perfSkip    = make([]string, 0)
)

// percentiles reported from the latency samples
var percentiles = []float64{0.5, 0.99}

func init() {
	key := "size"
	PerfCmd.Flags().Int(key, 64, util.WrapString("Payload size of the documents (in KB)"))
	key = "samples"
	PerfCmd.Flags().Int(key, 1000, util.WrapString("Number of timed runs per test used for the latency percentiles"))
	key = "skip"
	PerfCmd.Flags().String(key, "", util.WrapString("Tests to skip (comma separated - e.g. cbor,json/base64/decode)"))
	key = "csv"
	PerfCmd.Flags().String(key, "", util.WrapString("Optional path to save benchmark results as CSV"))
}

func processPerfConfig(cmd *cobra.Command, _ []string) error {
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	perfSizeKB = viper.GetInt("size")
	perfSamples = viper.GetInt("samples")
	perfSkip = perfSkip[:0]
	for _, s := range strings.Split(viper.GetString("skip"), ",") {
		if s = strings.TrimSpace(s); s != "" {
			perfSkip = append(perfSkip, s)
		}
	}

	if perfSizeKB < 0 {
		return fmt.Errorf("size must not be negative: %d", perfSizeKB)
	}
	if perfSamples < 1 {
		return fmt.Errorf("samples must be at least 1: %d", perfSamples)
	}
	return nil
}

// --------------------------------------------------------------------------
// Tests
// --------------------------------------------------------------------------

// perfTest is a single named benchmark
type perfTest struct {
	name string
	op   func() error
}

// result of a single test
type result struct {
	name    string
	bench   testing.BenchmarkResult
	latency []float64
	size    int
}

// buildTests creates an encode and a decode test for every format and codec
func buildTests(payload []byte) ([]perfTest, error) {
	var tests []perfTest

	for _, formatName := range format.Names() {
		f, err := format.Get(formatName)
		if err != nil {
			return nil, err
		}

		for _, codecName := range codec.Names() {
			doc, err := format.EncodeDocument(f, codecName, payload, true)
			if err != nil {
				return nil, err
			}

			prefix := fmt.Sprintf("%s/%s", formatName, codecName)
			tests = append(tests,
				perfTest{
					name: prefix + "/encode",
					op: func() error {
						_, err := format.EncodeDocument(f, codecName, payload, true)
						return err
					},
				},
				perfTest{
					name: prefix + "/decode",
					op: func() error {
						_, err := format.DecodeDocument(f, doc)
						return err
					},
				},
			)
		}
	}

	return tests, nil
}

// shouldSkip reports whether the test or one of its name parts is in the skip list
func shouldSkip(test string) bool {
	parts := strings.Split(test, "/")
	for _, skip := range perfSkip {
		if test == skip || slices.Contains(parts, skip) {
			return true
		}
	}
	return false
}

// runTest benchmarks the test and samples its latency into the registry
func runTest(test perfTest, registry gometrics.Registry) (result, error) {
	// run once to surface errors before timing
	if err := test.op(); err != nil {
		return result{}, fmt.Errorf("(%s) - %w", test.name, err)
	}

	bench := testing.Benchmark(func(b *testing.B) {
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			if err := test.op(); err != nil {
				log.Errorf("(%s) - %v", test.name, err)
			}
		}
	})

	h := gometrics.GetOrRegisterHistogram(test.name, registry, gometrics.NewUniformSample(perfSamples))
	for i := 0; i < perfSamples; i++ {
		start := time.Now()
		if err := test.op(); err != nil {
			log.Errorf("(%s) - %v", test.name, err)
		}
		h.Update(time.Since(start).Nanoseconds())
	}

	return result{
		name:    test.name,
		bench:   bench,
		latency: h.Percentiles(percentiles),
	}, nil
}

func run(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Performance testing tool for dBytes documents")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Payload: %d KB, Samples: %d\n", perfSizeKB, perfSamples)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "starting tests...")

	payload := make([]byte, perfSizeKB*1024)
	rand.New(rand.NewSource(1)).Read(payload)

	tests, err := buildTests(payload)
	if err != nil {
		return err
	}

	registry := gometrics.NewRegistry()
	results := make([]result, 0, len(tests))
	for _, test := range tests {
		if shouldSkip(test.name) {
			printSkipped(out, test.name)
			continue
		}

		r, err := runTest(test, registry)
		if err != nil {
			return err
		}
		r.size = len(payload)
		results = append(results, r)
		printResult(out, r)
	}

	if csvPath := viper.GetString("csv"); csvPath != "" {
		if err := writeResultsToCSV(csvPath, results); err != nil {
			return err
		}
		fmt.Fprintf(out, "\nResults saved to %s\n", csvPath)
	}
	return nil
}

// --------------------------------------------------------------------------
// Output
// --------------------------------------------------------------------------

func opsPerSec(r testing.BenchmarkResult) (nsPerOp, ops float64) {
	nsPerOp = math.Max(float64(r.NsPerOp()), 1) // prevent division by zero
	return nsPerOp, 1.0 / (nsPerOp / 1e9)
}

// throughput in MB/s for the payload size
func throughput(nsPerOp float64, size int) float64 {
	return float64(size) / (nsPerOp / 1e9) / (1 << 20)
}

func printSkipped(w io.Writer, test string) {
	fmt.Fprintf(w, "%-22sskipped\n", test)
}

// printResult prints the result of a benchmark test in a formatted way
func printResult(w io.Writer, r result) {
	nsPerOp, ops := opsPerSec(r.bench)
	fmt.Fprintf(w, "%-22s%.0fns/op (%s/op)\t%.0f ops/sec\t%.1f MB/s\tp50 %s\tp99 %s\n",
		r.name, nsPerOp, time.Duration(nsPerOp), ops, throughput(nsPerOp, r.size),
		time.Duration(r.latency[0]), time.Duration(r.latency[1]))
}

// writeResultsToCSV writes benchmark results to a CSV file
func writeResultsToCSV(csvPath string, results []result) error {
	file, err := os.Create(csvPath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %v", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	header := []string{
		"Test", "NsPerOp", "DurationPerOp", "OpsPerSec", "MBPerSec",
		"AllocsPerOp", "BytesPerOp", "P50Ns", "P99Ns", "PayloadKB", "Samples",
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %v", err)
	}

	for _, r := range results {
		nsPerOp, ops := opsPerSec(r.bench)
		row := []string{
			r.name,
			fmt.Sprintf("%.0f", nsPerOp),
			time.Duration(nsPerOp).String(),
			fmt.Sprintf("%.0f", ops),
			fmt.Sprintf("%.1f", throughput(nsPerOp, r.size)),
			fmt.Sprintf("%d", r.bench.AllocsPerOp()),
			fmt.Sprintf("%d", r.bench.AllocedBytesPerOp()),
			fmt.Sprintf("%.0f", r.latency[0]),
			fmt.Sprintf("%.0f", r.latency[1]),
			fmt.Sprintf("%d", perfSizeKB),
			fmt.Sprintf("%d", perfSamples),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %v", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
