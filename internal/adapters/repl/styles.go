package repl

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// styles decorate single-line output. Each renderer detects the color
// profile of its own writer, so pipes and buffers get plain text.
type styles struct {
	prompt lipgloss.Style
	notice lipgloss.Style
	err    lipgloss.Style
}

func newStyles(out, errOut io.Writer) styles {
	outR := lipgloss.NewRenderer(out)
	errR := lipgloss.NewRenderer(errOut)

	return styles{
		prompt: outR.NewStyle().Bold(true),
		notice: outR.NewStyle().Foreground(lipgloss.Color("#FFE66D")),
		err:    errR.NewStyle().Foreground(lipgloss.Color("#FF6B6B")),
	}
}
