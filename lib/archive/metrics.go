package archive

import "github.com/VictoriaMetrics/metrics"

// Engine counters, exported through metrics.WritePrometheus
var (
	writeCalls  = metrics.NewCounter(`dser_archive_calls_total{direction="write"}`)
	readCalls   = metrics.NewCounter(`dser_archive_calls_total{direction="read"}`)
	writeBytes  = metrics.NewCounter(`dser_archive_bytes_total{direction="write"}`)
	readBytes   = metrics.NewCounter(`dser_archive_bytes_total{direction="read"}`)
	writeErrors = metrics.NewCounter(`dser_archive_errors_total{direction="write"}`)
	readErrors  = metrics.NewCounter(`dser_archive_errors_total{direction="read"}`)
)
