package verify

import (
	"fmt"

	"github.com/sarchlab/streamconv/axis"
	"github.com/sarchlab/streamconv/conv"
)

// IssueType categorizes verification issues
type IssueType string

const (
	IssueLength   IssueType = "LENGTH"   // Output beat count differs from input
	IssueFraming  IssueType = "FRAMING"  // End-of-frame flag or keep mask wrong
	IssueMismatch IssueType = "MISMATCH" // Interior value differs from reference
)

// Issue represents a single verification issue
type Issue struct {
	Type    IssueType
	Index   int // Output stream index or -1
	Row     int // Image row or -1
	Col     int // Image column or -1
	Got     uint8
	Want    uint8
	Message string
}

// Compare checks a streamed output frame against the reference convolution
// of src. It never fails; everything it finds ends up in the report.
func Compare(cfg conv.Config, src []uint8, out []axis.Beat) *Report {
	r := &Report{Config: cfg, Beats: len(out)}

	want, err := Reference(cfg, src)
	if err != nil {
		r.Err = err
		return r
	}

	if len(out) != cfg.StreamLength() {
		r.add(Issue{
			Type: IssueLength, Index: -1, Row: -1, Col: -1,
			Message: fmt.Sprintf("got %d beats, want %d",
				len(out), cfg.StreamLength()),
		})
	}

	for i, b := range out {
		if err := axis.CheckBeat(b, i, len(out)); err != nil {
			r.add(Issue{
				Type: IssueFraming, Index: i, Row: -1, Col: -1,
				Message: err.Error(),
			})
		}

		row, col, interior := cfg.Coord(i)
		if !interior || i >= len(want) {
			continue
		}

		r.Checked++
		if b.Data != want[i] {
			r.add(Issue{
				Type: IssueMismatch, Index: i, Row: row, Col: col,
				Got: b.Data, Want: want[i],
				Message: fmt.Sprintf("pixel (%d,%d) got %d want %d",
					row, col, b.Data, want[i]),
			})
		}
	}

	return r
}
