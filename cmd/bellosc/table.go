package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/justyntemme/bellosc/pkg/bell"
	"github.com/justyntemme/bellosc/pkg/midi"
)

var tableNote int

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Print the partial table and parameter mappings",
	Long: `Table prints the eleven partials with their frequencies at --note,
the normalization constant, and what each parameter code maps to.

Example:
  bellosc table --note 69`,
	RunE: runTable,
}

func init() {
	tableCmd.Flags().IntVarP(&tableNote, "note", "n", bell.DefaultNote, "Note number for the frequency column")
}

func runTable(cmd *cobra.Command, args []string) error {
	note, _, err := checkPitch(tableNote, 0)
	if err != nil {
		return err
	}
	fundamental := midi.NoteToFrequency(note)

	out := cmd.OutOrStdout()
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', tabwriter.AlignRight)

	info := bell.Plugin{}.GetInfo()
	fmt.Fprintf(out, "%s, uid %x\n\n", info, info.UID())

	fmt.Fprintf(out, "Partials at %s (%.2f Hz)\n\n", midi.NoteNumberToName(note), fundamental)
	fmt.Fprintln(tw, "#\tamp\tdur\tenters at\tratio\tdetune\tHz\t")
	specs := bell.PartialSpecs()
	for i, p := range bell.Partials() {
		fmt.Fprintf(tw, "%d\t%.4f\t%.3f\t%.3f\t%.2f\t%.2f\t%.2f\t\n",
			i+1, p.Amplitude, specs[i].Duration, p.DurationComplement, p.Ratio, p.Detune, p.Ratio*fundamental+p.Detune)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(out, "\nnormalization %.6f\n\n", bell.Normalization())

	fmt.Fprintln(tw, "code\thold\tcomp\tattack\t\tshape\tdecay\t")
	for _, step := range []float32{0, 0.1, 0.25, 0.5, 0.75, 0.9, 1} {
		pc := step * bell.PercentScale
		tc := step * bell.TenBitScale
		fmt.Fprintf(tw, "%.0f%%\t%.4f\t%.2f\t%.2e\t\t%.3f\t%.2e\t\n",
			step*100, bell.MapHold(pc), bell.MapCompensation(pc), bell.MapAttack(pc),
			bell.MapShape(tc), bell.MapDecay(tc))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	eng, err := bell.New(bell.DefaultConfig())
	if err != nil {
		return err
	}
	reg := eng.Registry()
	fmt.Fprintf(out, "\n%d parameters\n\n", reg.Count())
	fmt.Fprintln(tw, "id\tname\tshort\trange\tdefault\t")
	for _, p := range reg.All() {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%.0f-%.0f\t%s\t\n",
			p.ID, p.Name, p.ShortName, p.Min, p.Max, p.FormatValue(p.DefaultValue))
	}
	return tw.Flush()
}
