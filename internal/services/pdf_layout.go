package services

import (
	"math"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

const (
	// strictTolerance is the horizontal gap (points) below which adjacent
	// text runs on a line are butt-joined; wider gaps become a space.
	strictTolerance = 1.5
	// looseTolerance is used on the retry pass for pages where the strict
	// pass produced little or no text.
	looseTolerance = 5.0
	// lineTolerance is the vertical distance within which two runs are
	// considered to sit on the same line.
	lineTolerance = 2.0
)

// extractPageText assembles a page's text runs into lines. With preserveFlow
// the runs keep their content-stream order; otherwise they are re-sorted
// top-to-bottom, left-to-right. tolerance controls how far apart two runs
// may be before a space is inserted between them.
func extractPageText(page pdf.Page, tolerance float64, preserveFlow bool) (out string) {
	// ledongthuc/pdf panics on some malformed content streams; treat those
	// pages as empty and let the fallback paths take over.
	defer func() {
		if r := recover(); r != nil {
			out = ""
		}
	}()

	runs := page.Content().Text
	if len(runs) == 0 {
		return ""
	}

	if !preserveFlow {
		runs = append([]pdf.Text(nil), runs...)
		sort.SliceStable(runs, func(i, j int) bool {
			if math.Abs(runs[i].Y-runs[j].Y) > lineTolerance {
				return runs[i].Y > runs[j].Y
			}
			return runs[i].X < runs[j].X
		})
	}

	var sb strings.Builder
	prev := runs[0]
	sb.WriteString(prev.S)
	for _, run := range runs[1:] {
		switch {
		case math.Abs(run.Y-prev.Y) > lineTolerance:
			sb.WriteString("\n")
		case run.X-(prev.X+prev.W) > tolerance:
			sb.WriteString(" ")
		}
		sb.WriteString(run.S)
		prev = run
	}
	return sb.String()
}
