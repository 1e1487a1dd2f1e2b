package steps

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// TerminalConfirmer prompts on out and reads a y/yes answer from a
// single buffered reader, so input past the first newline survives
// between prompts. Anything else, including a read error, counts as no.
type TerminalConfirmer struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewTerminalConfirmer creates a confirmer reading answers from in.
func NewTerminalConfirmer(in io.Reader, out io.Writer) *TerminalConfirmer {
	return &TerminalConfirmer{reader: bufio.NewReader(in), out: out}
}

func (c *TerminalConfirmer) Confirm(prompt string) bool {
	fmt.Fprintf(c.out, "%s [y/N]: ", prompt)

	line, err := c.reader.ReadString('\n')
	if err != nil && line == "" {
		return false
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

// AutoConfirmer answers yes to every prompt; used in non-interactive
// runs.
type AutoConfirmer struct{}

func (AutoConfirmer) Confirm(string) bool { return true }
