package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/sarchlab/streamconv/runner"
	"github.com/sarchlab/streamconv/verify"
)

var errVerifyFailed = errors.New("verification failed")

var (
	numFrames  int
	verifySeed int64
	jobs       int
	verbose    bool
	reportDir  string
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check random frames against the reference convolution",
	Long: `Simulates independent random frames in parallel and compares every
interior output with the reference nested-loop convolution. The exit
status is non-zero if any frame fails.

Example:
  streamconv verify --frames 64 --kernel sharpen --shift 1`,
	RunE: verifyFrames,
}

func init() {
	verifyCmd.Flags().IntVarP(&numFrames, "frames", "n", 16, "Number of frames to simulate")
	verifyCmd.Flags().IntVarP(&jobs, "jobs", "j", runtime.NumCPU(), "Frames simulated at the same time")
	verifyCmd.Flags().Int64Var(&verifySeed, "seed", 1, "Seed of the first frame")
	verifyCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print the report of every frame")
	verifyCmd.Flags().StringVar(&reportDir, "report-dir", "", "Also save the report of each failed frame in this directory")
}

func verifyFrames(cmd *cobra.Command, args []string) error {
	f, cfg, err := loadPipeline(cmd)
	if err != nil {
		return err
	}

	frames := make([][]uint8, numFrames)
	for i := range frames {
		frames[i] = random(cfg, verifySeed+int64(i))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	results, err := runner.RunFrames(ctx, cfg, frames, jobs, runner.WithFreq(f.Freq()))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	summary := table.NewWriter()
	summary.SetOutputMirror(out)
	summary.SetTitle("Verification summary")
	summary.AppendHeader(table.Row{"Frame", "Seed", "Checked", "Issues", "Stalls", "Status"})

	failed := 0
	for i, res := range results {
		report := verify.Compare(cfg, frames[i], res.Output)

		status := "PASS"
		if !report.OK() {
			status = "FAIL"
			failed++
		}

		summary.AppendRow(table.Row{
			i, verifySeed + int64(i), report.Checked, len(report.Issues()),
			res.Stats.StallTicks, status,
		})

		if verbose || !report.OK() {
			report.WriteReport(out)
		}

		if reportDir != "" && !report.OK() {
			name := filepath.Join(reportDir, fmt.Sprintf("frame-%03d.txt", i))
			if err := report.SaveReportToFile(name); err != nil {
				return err
			}
		}
	}

	summary.AppendFooter(table.Row{"", "", "", "", "Failed", failed})
	summary.Render()

	if failed > 0 {
		return errVerifyFailed
	}

	return nil
}
