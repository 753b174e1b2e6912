package core

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/sarchlab/streamconv/conv"
)

// LevelTrace sits below debug; per-beat data flow is logged at this level.
const LevelTrace slog.Level = slog.LevelDebug - 4

func Trace(msg string, args ...any) {
	slog.Log(context.Background(), LevelTrace, msg, args...)
}

// RenderSnapshot draws the window and the line buffers as tables. The slot
// each row reads on the next step is marked with brackets. Headings stay
// outside the tables, which are often narrower than the heading text.
func RenderSnapshot(s conv.Snapshot) string {
	winTable := table.NewWriter()

	header := table.Row{"Row"}
	for j := 0; j < conv.K; j++ {
		header = append(header, fmt.Sprintf("C%d", j))
	}
	winTable.AppendHeader(header)

	for i := 0; i < conv.K; i++ {
		row := table.Row{fmt.Sprintf("R%d", i)}
		for j := 0; j < conv.K; j++ {
			row = append(row, s.Window[i][j])
		}
		winTable.AppendRow(row)
	}

	lineTable := table.NewWriter()

	for i, line := range s.Lines {
		row := table.Row{fmt.Sprintf("L%d", i)}
		next := -1
		if len(line) > 0 {
			next = s.Step % len(line)
		}

		for slot, v := range line {
			if slot == next {
				row = append(row, fmt.Sprintf("[%d]", v))
				continue
			}
			row = append(row, v)
		}
		lineTable.AppendRow(row)
	}

	return fmt.Sprintf("Window before step %d\n%s\nLine buffers\n%s",
		s.Step, winTable.Render(), lineTable.Render())
}

// LogState dumps the pipeline state of the unit at debug level.
func LogState(u *Unit) {
	s := u.Snapshot()
	slog.Debug("StateCheckpoint",
		"Unit", u.Name(),
		"Step", s.Step,
		"Window", s.Window,
		"Lines", s.Lines,
		"Stats", u.Stats(),
	)
}
