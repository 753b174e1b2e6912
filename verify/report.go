package verify

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/sarchlab/streamconv/conv"
)

// MaxListedIssues caps the number of issues rendered per category.
const MaxListedIssues = 16

// Report represents the outcome of comparing one streamed frame with the
// reference convolution.
type Report struct {
	Config  conv.Config
	Beats   int
	Checked int
	Err     error

	LengthIssues   []Issue
	FramingIssues  []Issue
	MismatchIssues []Issue
}

func (r *Report) add(issue Issue) {
	switch issue.Type {
	case IssueLength:
		r.LengthIssues = append(r.LengthIssues, issue)
	case IssueFraming:
		r.FramingIssues = append(r.FramingIssues, issue)
	default:
		r.MismatchIssues = append(r.MismatchIssues, issue)
	}
}

// Issues returns every issue found, length first.
func (r *Report) Issues() []Issue {
	all := make([]Issue, 0,
		len(r.LengthIssues)+len(r.FramingIssues)+len(r.MismatchIssues))
	all = append(all, r.LengthIssues...)
	all = append(all, r.FramingIssues...)
	all = append(all, r.MismatchIssues...)

	return all
}

// OK tells whether the frame passed every check.
func (r *Report) OK() bool {
	return r.Err == nil && len(r.Issues()) == 0
}

// WriteReport writes a formatted report to a writer
func (r *Report) WriteReport(w io.Writer) {
	separator := strings.Repeat("=", 60)

	fmt.Fprintln(w, separator)
	fmt.Fprintln(w, "STREAMING CONVOLUTION VERIFICATION REPORT")
	fmt.Fprintln(w, separator)

	fmt.Fprintf(w, "Geometry: %dx%d, delay %d, shift %d\n",
		r.Config.Width, r.Config.Height, r.Config.Delay(), r.Config.Shift)
	fmt.Fprintf(w, "Kernel:   %v\n", r.Config.Kernel)

	if r.Err != nil {
		fmt.Fprintf(w, "\n⚠ Reference failed: %v\n", r.Err)
		return
	}

	fmt.Fprintln(w, "\n"+separator)
	fmt.Fprintln(w, "STAGE 1: STREAM FRAMING")
	fmt.Fprintln(w, separator)

	fmt.Fprintf(w, "Beats received: %d (want %d)\n",
		r.Beats, r.Config.StreamLength())
	if len(r.LengthIssues)+len(r.FramingIssues) == 0 {
		fmt.Fprintln(w, "✓ Length and end-of-frame checks passed")
	} else {
		writeIssueTable(w, "Framing issues",
			append(append([]Issue{}, r.LengthIssues...), r.FramingIssues...))
	}

	fmt.Fprintln(w, "\n"+separator)
	fmt.Fprintln(w, "STAGE 2: INTERIOR EQUIVALENCE")
	fmt.Fprintln(w, separator)

	fmt.Fprintf(w, "Interior pixels checked: %d\n", r.Checked)
	if len(r.MismatchIssues) == 0 {
		fmt.Fprintln(w, "✓ All interior pixels match the reference")
	} else {
		fmt.Fprintf(w, "⚠ %d interior pixels differ\n", len(r.MismatchIssues))
		writeIssueTable(w, "Mismatches", r.MismatchIssues)
	}

	fmt.Fprintln(w, "\n"+separator)
	if r.OK() {
		fmt.Fprintln(w, "✓ FRAME PASSED ALL CHECKS")
	} else {
		fmt.Fprintln(w, "✗ FRAME FAILED")
	}
	fmt.Fprintln(w, separator)
}

func writeIssueTable(w io.Writer, title string, issues []Issue) {
	t := table.NewWriter()
	t.SetTitle(title)
	t.AppendHeader(table.Row{"Type", "Index", "Row", "Col", "Got", "Want", "Message"})

	for i, issue := range issues {
		if i == MaxListedIssues {
			t.AppendFooter(table.Row{"", "", "", "", "", "",
				fmt.Sprintf("... %d more", len(issues)-MaxListedIssues)})
			break
		}

		t.AppendRow(table.Row{
			issue.Type, issue.Index, issue.Row, issue.Col,
			issue.Got, issue.Want, issue.Message,
		})
	}

	fmt.Fprintln(w, t.Render())
}

// SaveReportToFile saves the report to a file
func (r *Report) SaveReportToFile(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()

	r.WriteReport(file)
	return nil
}
