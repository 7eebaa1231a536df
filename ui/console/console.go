package console

import (
	"fmt"
	"io"
	"strings"

	"sysdash/internal/output"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[91m"
	colorBlue   = "\033[34m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorWhite  = "\033[37m"
)

// Print renders the dashboard view to the writer in a compact format.
func Print(w io.Writer, view output.DashboardView) {
	fmt.Fprintf(w, "%s%s %s%s\n", colorCyan, "■", "SYSDASH SNAPSHOT", colorReset)

	for _, sec := range view.Sections {
		color := colorFor(sec.ID)
		fmt.Fprintf(w, "%s%s%s\n", color, "─ "+sec.Title, colorReset)

		if len(sec.Items) == 0 {
			fmt.Fprintf(w, "  %s(none)%s\n", colorWhite, colorReset)
			continue
		}

		for _, it := range sec.Items {
			label := it.Label
			if label == "" {
				label = "(unnamed)"
			}
			if len(label) > 20 {
				label = label[:17] + "..."
			}

			valStr := it.Note
			if valStr == "" {
				if it.Unit != "" {
					valStr = fmt.Sprintf("%.2f%s", it.Value, it.Unit)
				} else {
					valStr = fmt.Sprintf("%g", it.Value)
				}
			}

			dots := strings.Repeat("·", 22-len(label))

			// "  Label............... Value"
			fmt.Fprintf(w, "  %s%s %s\n", label, color+dots+colorReset, valStr)
		}
	}
	fmt.Fprintln(w)
}

// PrintFrame is Print over a frame.
func PrintFrame(w io.Writer, f output.Frame) {
	Print(w, output.BuildDashboard(f))
}

func colorFor(section string) string {
	switch section {
	case output.SectionCPU:
		return colorRed
	case output.SectionMemory:
		return colorCyan
	case output.SectionDisk:
		return colorBlue
	case output.SectionInfo:
		return colorWhite
	default:
		return colorYellow
	}
}

// Recorder is a renderer that keeps the most recent frame instead of drawing
// it. The snapshot command prints the recorded frame once sampling ends.
type Recorder struct {
	last   output.Frame
	frames int
}

func (r *Recorder) Draw(f output.Frame) error {
	r.last = f.Clone()
	r.frames++
	return nil
}

// Last returns the recorded frame and whether any frame was drawn.
func (r *Recorder) Last() (output.Frame, bool) {
	return r.last, r.frames > 0
}

func (r *Recorder) Frames() int { return r.frames }
