package perf

import (
	"encoding/csv"
	"fmt"
	"github.com/ValentinKolb/dSER/cmd/util"
	"github.com/ValentinKolb/dSER/lib/format"
	"github.com/ValentinKolb/dSER/lib/samples"
	vm "github.com/VictoriaMetrics/metrics"
	"github.com/cockroachdb/errors"
	gometrics "github.com/rcrowley/go-metrics"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"
)

var (
	// PerfCmd benchmarks the formats on the sample shapes
	PerfCmd = &cobra.Command{
		Use:     "perf",
		Short:   "Performance testing tool for the formats",
		Long:    util.WrapString("Benchmarks serialization and deserialization of every sample shape with every selected format. After each benchmark a number of single operations is timed to report latency percentiles."),
		RunE:    run,
		PreRunE: processPerfConfig,
	}
	perfIterations = 1000
	perfSkip       = make([]string, 0)
)

func init() {
	// add flags
	key := "formats"
	PerfCmd.Flags().String(key, "", util.WrapString("Comma separated list of formats (archive, gob, json). Empty selects all"))
	key = "samples"
	PerfCmd.Flags().String(key, "", util.WrapString("Comma separated list of sample shapes. Empty selects all"))
	key = "skip"
	PerfCmd.Flags().String(key, "", util.WrapString("Operations to skip (comma separated - e.g. serialize,deserialize)"))
	key = "iterations"
	PerfCmd.Flags().Int(key, 1000, util.WrapString("Number of individually timed operations for the latency percentiles"))
	key = "csv"
	PerfCmd.Flags().String(key, "", util.WrapString("Optional path to save benchmark results as CSV"))
	key = "prometheus"
	PerfCmd.Flags().Bool(key, false, util.WrapString("Print all collected metrics in Prometheus text format after the run"))
}

func processPerfConfig(cmd *cobra.Command, _ []string) error {
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	// Read the configuration from the command line flags and environment variables
	perfIterations = viper.GetInt("iterations")
	perfSkip = strings.Split(viper.GetString("skip"), ",")
	if perfIterations < 0 {
		return errors.Newf("iterations must not be negative, got %d", perfIterations)
	}

	return nil
}

// Result is the outcome of one benchmark
type Result struct {
	Sample string
	Format string
	Op     string
	Size   int
	Bench  testing.BenchmarkResult
	Timer  gometrics.Timer
}

func run(cmd *cobra.Command, _ []string) error {
	w := cmd.OutOrStdout()
	fmt.Fprintln(w, "Performance testing tool for dSER formats")

	// Print configuration
	conf := util.GetConfig()
	fmt.Fprintln(w)
	fmt.Fprint(w, "Configuration:")
	fmt.Fprintln(w, conf.String())

	formats, err := util.GetFormats(viper.GetString("formats"))
	if err != nil {
		return err
	}
	shapes := samples.All()
	if list := viper.GetString("samples"); list != "" {
		shapes = shapes[:0]
		for _, name := range strings.Split(list, ",") {
			s, ok := samples.Lookup(strings.TrimSpace(name))
			if !ok {
				return errors.Newf("invalid sample %s", name)
			}
			shapes = append(shapes, s)
		}
	}

	fmt.Fprintln(w, "starting tests...")
	registry := gometrics.NewRegistry()
	results, err := Run(w, registry, formats, shapes, perfIterations)
	if err != nil {
		return err
	}

	// Write results to csv if specified
	if csvPath := viper.GetString("csv"); csvPath != "" {
		fmt.Fprintf(w, "\nExporting results to CSV: %s\n", csvPath)
		if err := writeResultsToCSV(csvPath, results); err != nil {
			return errors.Wrap(err, "failed to export results to CSV")
		}
		fmt.Fprintln(w, "Export complete")
	}

	if viper.GetBool("prometheus") {
		fmt.Fprintln(w)
		vm.WritePrometheus(w, false)
	}
	return nil
}

// Run benchmarks every format on every sample. Latencies of single
// operations are recorded in registry.
func Run(w io.Writer, registry gometrics.Registry, formats []format.IFormat, shapes []samples.Sample, iterations int) ([]Result, error) {
	var results []Result

	for _, s := range shapes {
		for _, f := range formats {
			data, err := f.Serialize(s.Value())
			if err != nil {
				return nil, errors.Wrapf(err, "%s/%s", f.Name(), s.Name)
			}
			vm.GetOrCreateHistogram(fmt.Sprintf(`dser_perf_size_bytes{format=%q,sample=%q}`, f.Name(), s.Name)).Update(float64(len(data)))

			ops := map[string]func() error{
				"serialize": func() error {
					_, err := f.Serialize(s.Value())
					return err
				},
				"deserialize": func() error {
					return f.Deserialize(data, s.Empty())
				},
			}

			for _, op := range []string{"serialize", "deserialize"} {
				res := Result{Sample: s.Name, Format: f.Name(), Op: op, Size: len(data)}
				if shouldSkip(op) {
					results = append(results, res)
					printResult(w, res)
					continue
				}

				fn := ops[op]
				var opErr error
				res.Bench = testing.Benchmark(func(b *testing.B) {
					for i := 0; i < b.N; i++ {
						if err := fn(); err != nil {
							opErr = err
							b.FailNow()
						}
					}
				})
				if opErr != nil {
					return nil, errors.Wrapf(opErr, "%s/%s/%s", f.Name(), s.Name, op)
				}

				res.Timer = gometrics.GetOrRegisterTimer(fmt.Sprintf("%s.%s.%s", f.Name(), s.Name, op), registry)
				hist := vm.GetOrCreateHistogram(fmt.Sprintf(`dser_perf_latency_seconds{format=%q,sample=%q,op=%q}`, f.Name(), s.Name, op))
				for i := 0; i < iterations; i++ {
					start := time.Now()
					_ = fn()
					res.Timer.UpdateSince(start)
					hist.UpdateDuration(start)
				}

				results = append(results, res)
				printResult(w, res)
			}
		}
	}
	return results, nil
}

// --------------------------------------------------------------------------
// Helper
// --------------------------------------------------------------------------

func shouldSkip(op string) bool {
	// Check if the operation is in the skip list
	for _, skip := range perfSkip {
		if op == skip {
			return true
		}
	}
	return false
}

// percentiles returns p50 and p99 of the timer in nanoseconds
func percentiles(t gometrics.Timer) (float64, float64) {
	if t == nil || t.Count() == 0 {
		return 0, 0
	}
	ps := t.Percentiles([]float64{0.5, 0.99})
	return ps[0], ps[1]
}

// printResult prints the result of a benchmark test in a formatted way
func printResult(w io.Writer, res Result) {
	name := fmt.Sprintf("%s/%s/%s", res.Sample, res.Format, res.Op)
	if res.Bench.NsPerOp() == 0 {
		fmt.Fprintf(w, "%-36sskipped\n", name)
		return
	}

	nsPerOp := math.Max(float64(res.Bench.NsPerOp()), 1) // prevent division by zero
	opsPerSec := 1.0 / (nsPerOp / 1e9)
	p50, p99 := percentiles(res.Timer)

	// Print the formatted result
	fmt.Fprintf(w, "%-36s%6d B\t%.0fns/op (%s/op)\t%.0f ops/sec\tp50 %s\tp99 %s\n",
		name, res.Size, nsPerOp, time.Duration(nsPerOp), opsPerSec, time.Duration(p50), time.Duration(p99))
}

// writeResultsToCSV writes benchmark results to a CSV file
func writeResultsToCSV(csvPath string, results []Result) error {
	file, err := os.Create(csvPath)
	if err != nil {
		return errors.Wrap(err, "failed to create CSV file")
	}
	defer file.Close()

	return writeResultsCSV(file, results, util.GetConfig().Endianness)
}

// writeResultsCSV writes the results as CSV to w
func writeResultsCSV(w io.Writer, results []Result, endianness string) error {
	writer := csv.NewWriter(w)

	// Write header
	header := []string{
		"Sample", "Format", "Op", "Bytes", "NsPerOp", "DurationPerOp", "OpsPerSec",
		"P50Ns", "P99Ns", "Skipped", "Endianness",
	}
	if err := writer.Write(header); err != nil {
		return errors.Wrap(err, "failed to write CSV header")
	}

	// Write test results
	for _, res := range results {
		var nsPerOp float64
		var opsPerSec float64
		var skipped string

		if res.Bench.NsPerOp() == 0 {
			skipped = "true"
		} else {
			skipped = "false"
			nsPerOp = math.Max(float64(res.Bench.NsPerOp()), 1)
			opsPerSec = 1.0 / (nsPerOp / 1e9)
		}
		p50, p99 := percentiles(res.Timer)

		row := []string{
			res.Sample,
			res.Format,
			res.Op,
			strconv.Itoa(res.Size),
			fmt.Sprintf("%.0f", nsPerOp),
			time.Duration(nsPerOp).String(),
			fmt.Sprintf("%.0f", opsPerSec),
			fmt.Sprintf("%.0f", p50),
			fmt.Sprintf("%.0f", p99),
			skipped,
			endianness,
		}

		if err := writer.Write(row); err != nil {
			return errors.Wrapf(err, "failed to write row for %s/%s/%s", res.Sample, res.Format, res.Op)
		}
	}

	writer.Flush()
	return writer.Error()
}
