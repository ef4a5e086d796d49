package view

import (
	"fmt"
	"io"
	"time"

	"github.com/logrusorgru/aurora"
)

// ConsoleOut reports batch-run progress to a writer, no terminal UI needed.
type ConsoleOut struct {
	w     io.Writer
	start time.Time
}

// NewConsoleOut returns a reporter writing to w.
func NewConsoleOut(w io.Writer) *ConsoleOut {
	return &ConsoleOut{w: w}
}

// PrintHeader dumps the run configuration and marks the start time.
func (c *ConsoleOut) PrintHeader(st Status, interval time.Duration, maxSteps int, fill string) {
	fmt.Fprintln(c.w, "Running configuration:")
	fmt.Fprintf(c.w, "  Dimension: %v x %v\n", st.Size.W, st.Size.H)
	fmt.Fprintf(c.w, "  Interval: %v\n", interval)
	fmt.Fprintf(c.w, "  Max iterations: %v steps\n", maxSteps)
	fmt.Fprintf(c.w, "  Fill: %v\n", fill)
	fmt.Fprintf(c.w, "\n%s\n", aurora.Cyan("Simulation started..."))
	c.start = time.Now()
}

// Progress prints a line every 10 iterations while the run is active.
func (c *ConsoleOut) Progress(st Status) {
	if st.Mode != ModeRunning || st.Iteration == 0 || st.Iteration%10 != 0 {
		return
	}
	fmt.Fprintf(c.w, "  Iterations done: %v\n", st.Iteration)
}

// Summary prints the final run report.
func (c *ConsoleOut) Summary(st Status) {
	total := time.Since(c.start).Round(time.Millisecond)
	fmt.Fprintf(c.w, "\n%s\n", aurora.Green("Finished:"))
	fmt.Fprintf(c.w, "  Last iteration: %v\n", st.Iteration)
	fmt.Fprintf(c.w, "  Live cells: %v\n", st.Population)
	fmt.Fprintf(c.w, "  Last step time: %v\n", st.StepTime.Round(time.Microsecond))
	fmt.Fprintf(c.w, "  Total time: %v\n", total)
}
