package main

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/sarchlab/akita/v4/monitoring"
	"github.com/spf13/cobra"

	"github.com/sarchlab/streamconv/axis"
	"github.com/sarchlab/streamconv/conv"
	"github.com/sarchlab/streamconv/runner"
	"github.com/sarchlab/streamconv/verify"
)

// Frames wider than this are summarized instead of printed.
const maxPrintedWidth = 16

var (
	pattern    string
	seed       int64
	useMonitor bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Simulate one synthetic frame",
	Long: `Streams one synthetic frame through the accelerator, prints the
cycle statistics and, for small frames, the convolved interior.

Example:
  streamconv run --pattern checker --kernel edge --width 12 --height 8`,
	RunE: runFrame,
}

func init() {
	runCmd.Flags().StringVarP(&pattern, "pattern", "p", "gradient", "Input pattern: gradient, checker, random or ramp")
	runCmd.Flags().Int64Var(&seed, "seed", 1, "Seed of the random pattern")
	runCmd.Flags().BoolVar(&useMonitor, "monitor", false, "Serve the akita monitor while simulating")
}

func runFrame(cmd *cobra.Command, args []string) error {
	f, cfg, err := loadPipeline(cmd)
	if err != nil {
		return err
	}

	pixels, err := makeFrame(pattern, cfg, seed)
	if err != nil {
		return err
	}

	opts := []runner.Option{runner.WithFreq(f.Freq())}
	if useMonitor {
		monitor := monitoring.NewMonitor()
		monitor.StartServer()
		opts = append(opts, runner.WithMonitor(monitor))
	}

	res, err := runner.Run(cfg, pixels, opts...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	writeStats(out, cfg, res)

	report := verify.Compare(cfg, pixels, res.Output)
	if cfg.Width <= maxPrintedWidth {
		writeInterior(out, cfg, res.Output)
	}
	report.WriteReport(out)

	if !report.OK() {
		return errVerifyFailed
	}

	return nil
}

func writeStats(w io.Writer, cfg conv.Config, res *runner.Result) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(fmt.Sprintf("%dx%d frame, shift %d", cfg.Width, cfg.Height, cfg.Shift))
	t.AppendHeader(table.Row{"Metric", "Value"})
	t.AppendRows([]table.Row{
		{"Beats in", res.Stats.BeatsIn},
		{"Beats out", res.Stats.BeatsOut},
		{"Pipeline steps", res.Stats.Steps},
		{"Warm-up steps", cfg.Delay()},
		{"Stall ticks", res.Stats.StallTicks},
		{"Simulated time (ns)", float64(res.EndTime) * 1e9},
	})
	t.Render()
}

// writeInterior prints the convolved pixels at their image coordinates.
func writeInterior(w io.Writer, cfg conv.Config, out []axis.Beat) {
	fmt.Fprintln(w, "Interior output")

	t := table.NewWriter()
	t.SetOutputMirror(w)

	header := table.Row{""}
	for c := 0; c <= cfg.Width-conv.K; c++ {
		header = append(header, c)
	}
	t.AppendHeader(header)

	for r := 0; r <= cfg.Height-conv.K; r++ {
		row := table.Row{r}
		for c := 0; c <= cfg.Width-conv.K; c++ {
			row = append(row, out[r*cfg.Width+c].Data)
		}
		t.AppendRow(row)
	}

	t.Render()
}
