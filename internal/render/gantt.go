package render

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/pipetrace/pipetrace/internal/trace"
)

// MinWidth is the narrowest readable timeline.
const MinWidth = 40

// maxAnnotatedItem is the largest item id that fits the 2-digit
// annotation budget; larger ids skip the annotation, never error.
const maxAnnotatedItem = 99

// TimeToCol maps an offset in [0, total] to a column in [0, width-1].
// A non-positive total collapses every column to 0.
func TimeToCol(t, total time.Duration, width int) int {
	if total <= 0 {
		return 0
	}
	x := t.Seconds() / total.Seconds()
	if x < 0 {
		x = 0
	}
	if x > 1 {
		x = 1
	}
	col := int(math.Round(x * float64(width-1)))
	if col < 0 {
		col = 0
	}
	if col >= width {
		col = width - 1
	}
	return col
}

// Timeline paints the events into one row per worker id in
// [0, MaxWorker]. Events should be display-sorted first so that
// overpainting at low width resolves deterministically.
func Timeline(events []trace.Event, total time.Duration, width int) []string {
	workers := trace.MaxWorker(events) + 1
	if workers <= 0 {
		return nil
	}

	rows := make([][]byte, workers)
	for w := range rows {
		rows[w] = []byte(strings.Repeat(".", width))
	}

	for _, e := range events {
		if e.Worker >= 0 && e.Worker < workers {
			paintEvent(rows[e.Worker], width, e, total)
		}
	}

	out := make([]string, workers)
	for w := range rows {
		out[w] = string(rows[w])
	}
	return out
}

// paintEvent fills [c0, c1] with the stage tag and, when at least three
// columns remain, overlays the item id digits after the start column.
func paintEvent(row []byte, width int, e trace.Event, total time.Duration) {
	c0 := TimeToCol(e.Start, total, width)
	c1 := TimeToCol(e.End, total, width)

	if c1 < c0 {
		c0, c1 = c1, c0
	}

	if c0 == c1 {
		row[c0] = e.Stage.Tag()
		return
	}

	for c := c0; c <= c1 && c < width; c++ {
		row[c] = e.Stage.Tag()
	}

	// Best-effort item annotation near the start.
	if c0+2 < width && e.Item >= 0 && e.Item <= maxAnnotatedItem {
		row[c0] = e.Stage.Tag()
		if e.Item >= 10 {
			row[c0+1] = byte('0' + e.Item/10)
			row[c0+2] = byte('0' + e.Item%10)
		} else {
			row[c0+1] = byte('0' + e.Item)
		}
	}
}

// WriteGantt writes the legend, the time axis and one timeline row per
// worker.
func WriteGantt(w io.Writer, events []trace.Event, total time.Duration, width int) {
	fmt.Fprintf(w, "Legend:\n")
	fmt.Fprintf(w, "  A = produce, B = transform, C = consume\n")
	fmt.Fprintf(w, "  Digits after a stage letter indicate the item id (best-effort annotation)\n\n")

	fmt.Fprintf(w, "Timeline (each row = one worker):\n")
	writeAxis(w, total, width)

	for wid, row := range Timeline(events, total, width) {
		fmt.Fprintf(w, "W%02d: %s\n", wid, row)
	}
}

func writeAxis(w io.Writer, total time.Duration, width int) {
	var sb strings.Builder
	sb.WriteString("Time: 0")
	for i := 0; i < width-10; i++ {
		if i == (width-11)/2 || i == width-12 {
			sb.WriteByte('|')
		} else {
			sb.WriteByte('-')
		}
	}
	fmt.Fprintf(w, "%sT=%.3fs\n", sb.String(), total.Seconds())
}
