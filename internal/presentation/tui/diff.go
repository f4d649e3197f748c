// Package tui renders dry-run output for the terminal.
package tui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/term"
)

// Differ writes unified diffs, colorized when the sink is an interactive
// terminal.
type Differ struct {
	out     io.Writer
	profile termenv.Profile
}

// NewDiffer creates a Differ writing to out. Color is enabled only when out
// is a TTY, so piped output stays plain.
func NewDiffer(out io.Writer) *Differ {
	profile := termenv.Ascii
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		profile = termenv.ColorProfile()
	}
	return &Differ{out: out, profile: profile}
}

// Print writes the unified diff between before and after, labeled with path.
// It does nothing when the contents are identical.
func (d *Differ) Print(path string, before, after []byte) error {
	if string(before) == string(after) {
		return nil
	}
	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(before)),
		B:        difflib.SplitLines(string(after)),
		FromFile: path,
		ToFile:   path + " (converted)",
		Context:  3,
	})
	if err != nil {
		return fmt.Errorf("failed to compute diff: %w", err)
	}
	for _, line := range strings.SplitAfter(text, "\n") {
		if line == "" {
			continue
		}
		if _, err := io.WriteString(d.out, d.colorize(line)); err != nil {
			return err
		}
	}
	return nil
}

func (d *Differ) colorize(line string) string {
	if d.profile == termenv.Ascii {
		return line
	}
	s := termenv.String(line)
	switch {
	case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
		return s.Bold().String()
	case strings.HasPrefix(line, "@@"):
		return s.Foreground(d.profile.Color("6")).String()
	case strings.HasPrefix(line, "+"):
		return s.Foreground(d.profile.Color("2")).String()
	case strings.HasPrefix(line, "-"):
		return s.Foreground(d.profile.Color("1")).String()
	}
	return line
}
