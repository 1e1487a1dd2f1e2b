package processing

import (
	"fmt"
	"io"
	"strings"
)

// Reporter renders the pipeline's progress on Out and failures on Err.
// It holds the step list and nothing else; the engine tells it which
// index is active.
type Reporter struct {
	Out   io.Writer
	Err   io.Writer
	Steps []string
}

// Header prints the run banner.
func (r *Reporter) Header(project string) {
	fmt.Fprintf(r.Out, "Releasing %s (%d steps)\n", project, len(r.Steps))
}

// Progress renders the step list with prior steps marked done, the
// step at active marked running, and the rest pending. An active index
// equal to len(Steps) renders the all-done state.
func (r *Reporter) Progress(active int) {
	marks := make([]string, len(r.Steps))
	for i, step := range r.Steps {
		switch {
		case i < active:
			marks[i] = "[done] " + step
		case i == active:
			marks[i] = "[run ] " + step
		default:
			marks[i] = "[    ] " + step
		}
	}

	if active < len(r.Steps) {
		fmt.Fprintf(r.Out, "(%d/%d) %s\n", active+1, len(r.Steps), strings.Join(marks, "  "))
	} else {
		fmt.Fprintf(r.Out, "%s\n", strings.Join(marks, "  "))
	}
}

// Success prints the final all-steps-complete line.
func (r *Reporter) Success() {
	r.Progress(len(r.Steps))
	fmt.Fprintf(r.Out, "all %d steps complete\n", len(r.Steps))
}

// Failure prints the failing step and cause on the error stream.
func (r *Reporter) Failure(step string, err error) {
	fmt.Fprintf(r.Err, "ERROR in step %q: %v\n", step, err)
}
