package roundtrip

import (
	"encoding/hex"
	"fmt"
	"github.com/ValentinKolb/dSER/cmd/util"
	"github.com/ValentinKolb/dSER/lib/format"
	"github.com/ValentinKolb/dSER/lib/samples"
	"github.com/cespare/xxhash/v2"
	"github.com/cockroachdb/errors"
	"github.com/google/go-cmp/cmp"
	"github.com/lni/dragonboat/v4/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"io"
	"strings"
)

var (
	log = logger.GetLogger("cli")

	// RoundTripCmd encodes and decodes the sample shapes
	RoundTripCmd = &cobra.Command{
		Use:     "roundtrip",
		Short:   "Encode and decode the sample shapes",
		Long:    util.WrapString("Encodes every sample shape with every selected format, decodes the bytes into a fresh object and compares it with the original. Prints size, xxhash fingerprint and the result of the comparison."),
		PreRunE: func(cmd *cobra.Command, _ []string) error { return util.BindCommandFlags(cmd) },
		RunE:    run,
	}
)

// ErrMismatch is returned when a decoded object differs from the original
var ErrMismatch = errors.New("roundtrip: decoded object differs")

func init() {
	key := "formats"
	RoundTripCmd.Flags().String(key, "", util.WrapString("Comma separated list of formats (archive, gob, json). Empty selects all"))
	key = "samples"
	RoundTripCmd.Flags().String(key, "", util.WrapString("Comma separated list of sample shapes. Empty selects all"))
	key = "hex"
	RoundTripCmd.Flags().Bool(key, false, util.WrapString("Print the encoded bytes"))
}

func run(cmd *cobra.Command, _ []string) error {
	formats, err := util.GetFormats(viper.GetString("formats"))
	if err != nil {
		return err
	}
	shapes, err := selectSamples(viper.GetString("samples"))
	if err != nil {
		return err
	}
	return Run(cmd.OutOrStdout(), formats, shapes, viper.GetBool("hex"))
}

// Result is the outcome of one round trip
type Result struct {
	Sample      string
	Format      string
	Size        int
	Fingerprint uint64
	Equal       bool
	Data        []byte
}

// RoundTrip encodes the sample with f and decodes it again
func RoundTrip(f format.IFormat, s samples.Sample) (Result, error) {
	in := s.Value()
	data, err := f.Serialize(in)
	if err != nil {
		return Result{}, errors.Wrapf(err, "%s/%s: serialize", f.Name(), s.Name)
	}

	out := s.Empty()
	if err := f.Deserialize(data, out); err != nil {
		return Result{}, errors.Wrapf(err, "%s/%s: deserialize", f.Name(), s.Name)
	}

	res := Result{
		Sample:      s.Name,
		Format:      f.Name(),
		Size:        len(data),
		Fingerprint: xxhash.Sum64(data),
		Equal:       cmp.Equal(in, out),
		Data:        data,
	}
	if !res.Equal {
		log.Warningf("%s/%s: %s", f.Name(), s.Name, cmp.Diff(in, out))
	}
	return res, nil
}

// Run performs all round trips and writes a report to w
func Run(w io.Writer, formats []format.IFormat, shapes []samples.Sample, printHex bool) error {
	fmt.Fprintf(w, "%-12s%-10s%8s  %-18s%s\n", "SAMPLE", "FORMAT", "BYTES", "XXHASH", "EQUAL")

	failed := 0
	for _, s := range shapes {
		for _, f := range formats {
			res, err := RoundTrip(f, s)
			if err != nil {
				return err
			}
			if !res.Equal {
				failed++
			}
			fmt.Fprintf(w, "%-12s%-10s%8d  %016x  %t\n", res.Sample, res.Format, res.Size, res.Fingerprint, res.Equal)
			if printHex {
				fmt.Fprintf(w, "  %s\n", hex.EncodeToString(res.Data))
			}
		}
	}

	if failed > 0 {
		return errors.Wrapf(ErrMismatch, "%d round trips", failed)
	}
	return nil
}

// selectSamples resolves a comma separated list of sample names
func selectSamples(list string) ([]samples.Sample, error) {
	if list == "" {
		return samples.All(), nil
	}
	var shapes []samples.Sample
	for _, name := range strings.Split(list, ",") {
		s, ok := samples.Lookup(strings.TrimSpace(name))
		if !ok {
			return nil, errors.Newf("invalid sample %s", name)
		}
		shapes = append(shapes, s)
	}
	return shapes, nil
}
