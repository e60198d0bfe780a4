package demo

import (
	"encoding/hex"
	"fmt"
	"github.com/ValentinKolb/dSER/cmd/util"
	"github.com/ValentinKolb/dSER/lib/adapter"
	"github.com/ValentinKolb/dSER/lib/archive"
	"github.com/ValentinKolb/dSER/lib/samples"
	"github.com/cockroachdb/errors"
	"github.com/lni/dragonboat/v4/logger"
	"github.com/spf13/cobra"
	"io"
)

var (
	log = logger.GetLogger("cli")

	// DemoCmd runs the diamond inheritance example
	DemoCmd = &cobra.Command{
		Use:   "demo",
		Short: "Serialize the diamond inheritance example",
		Long: util.WrapString(`Serializes a MultipleInheritance object whose two derived parts share one virtual Base.
The shared base is written once, so the encoding takes 4 bytes. The bytes are then decoded
into a fresh object and the base is read back through both derived parts.`),
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf := util.GetConfig()
			codecConf, err := conf.ToCodecConfig()
			if err != nil {
				return err
			}
			return Run(cmd.OutOrStdout(), archive.WithConfig(codecConf))
		},
	}
)

// Run executes the demo and writes its report to w
func Run(w io.Writer, opts ...archive.Option) error {
	in := samples.NewMultipleInheritance(3, 78, 11, 55)

	// serialize with an explicit context, one per top-level call
	var buf []byte
	out := adapter.NewByteOutput(&buf)
	ctx := archive.NewContext()
	ser := archive.NewContextSerializer(out, ctx, opts...)
	if err := ser.Serialize(in); err != nil {
		return errors.Wrap(err, "serialize")
	}
	data := out.Data()
	log.Debugf("serializer state %s, %d virtual bases recorded", ser.State(), ctx.Len())

	fmt.Fprintf(w, "object   : X=%d Y1=%d Y2=%d Z=%d\n", in.Derive1.Base.X, in.Derive1.Y1, in.Derive2.Y2, in.Z)
	fmt.Fprintf(w, "encoded  : %s (%d bytes)\n", hex.EncodeToString(data), len(data))

	// deserialize into an object whose derived parts share a fresh base
	res := samples.NewMultipleInheritance(0, 0, 0, 0)
	in2 := adapter.NewInputBuffer(data)
	des := archive.NewContextDeserializer(in2, archive.NewContext(), opts...)
	if err := des.Deserialize(res); err != nil {
		return errors.Wrap(err, "deserialize")
	}
	if !in2.IsCompletedSuccessfully() {
		return errors.Newf("deserialize: %d bytes left", in2.Remaining())
	}

	fmt.Fprintf(w, "decoded  : X=%d (via Derive1) X=%d (via Derive2) Y1=%d Y2=%d Z=%d\n",
		res.Derive1.Base.X, res.Derive2.Base.X, res.Derive1.Y1, res.Derive2.Y2, res.Z)
	fmt.Fprintf(w, "shared   : %t\n", res.Derive1.Base == res.Derive2.Base)
	return nil
}
