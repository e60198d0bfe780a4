// Package cmd implements the command-line interface of dSER. It provides
// commands to inspect the binary encoding of the sample shapes and to
// compare it with other formats.
//
// The package is organized into several subpackages:
//
//   - demo: Runs the diamond inheritance example and prints the encoding
//   - roundtrip: Encodes and decodes every sample shape and reports size,
//     fingerprint and equality
//   - perf: Benchmarks the formats on the sample shapes
//   - util: Shared utilities for command-line processing and configuration (internal use)
//
// See dser -help for a list of all commands.
package cmd
