package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sarchlab/streamconv/core"
	"github.com/sarchlab/streamconv/runner"
)

var (
	tracePattern       string
	traceFrom, traceTo int
)

var traceCmd = &cobra.Command{
	Use:   "trace",
	Short: "Print the window and line buffers step by step",
	Long: `Runs one frame with a step tracer attached and prints the window and
line buffer contents after each step in the selected range. The ramp
pattern numbers pixels in stream order, so every cell shows which pixel
it holds.

Example:
  streamconv trace --width 5 --height 4 --from 10 --to 14`,
	RunE: traceFrame,
}

func init() {
	traceCmd.Flags().StringVarP(&tracePattern, "pattern", "p", "ramp", "Input pattern: gradient, checker, random or ramp")
	traceCmd.Flags().IntVar(&traceFrom, "from", 0, "First step to print")
	traceCmd.Flags().IntVar(&traceTo, "to", -1, "Last step to print, -1 for the end of the frame")
}

func traceFrame(cmd *cobra.Command, args []string) error {
	f, cfg, err := loadPipeline(cmd)
	if err != nil {
		return err
	}

	pixels, err := makeFrame(tracePattern, cfg, 1)
	if err != nil {
		return err
	}

	tracer := &core.StepTracer{WithSnapshots: true}
	if _, err := runner.Run(cfg, pixels, runner.WithFreq(f.Freq()), runner.WithHook(tracer)); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, rec := range tracer.Records {
		if rec.Step < traceFrom || (traceTo >= 0 && rec.Step > traceTo) {
			continue
		}

		emit := "-"
		if rec.Emit {
			row, col, interior := cfg.Coord(rec.Step - cfg.Delay())
			emit = fmt.Sprintf("%d for (%d,%d) interior=%t last=%t",
				rec.Value, row, col, interior, rec.Last)
		}

		fmt.Fprintf(out, "step %d at %.0f ns, output %s\n",
			rec.Step, float64(rec.Time)*1e9, emit)
		fmt.Fprintln(out, core.RenderSnapshot(*rec.Snapshot))
	}

	return nil
}
