package segment

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"gitprompt.dev/gitprompt/internal/status"
)

// ColorMode controls when the segment is colored
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Renderer renders repository states into prompt segments
type Renderer struct {
	frame    lipgloss.Style
	index    lipgloss.Style
	worktree lipgloss.Style
	color    bool
}

// NewRenderer creates a renderer honoring the color mode, NO_COLOR, and
// whether stdout is a terminal.
func NewRenderer(mode ColorMode) *Renderer {
	return newRenderer(colorEnabled(mode))
}

func newRenderer(color bool) *Renderer {
	r := &Renderer{color: color}
	if !color {
		return r
	}

	// Force an ANSI profile: the segment is emitted into PS1 substitution,
	// where stdout is a pipe and auto-detection would strip the color.
	lr := lipgloss.NewRenderer(os.Stdout, termenv.WithProfile(termenv.ANSI))
	lr.SetColorProfile(termenv.ANSI)
	r.frame = lr.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	r.index = lr.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	r.worktree = lr.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	return r
}

// colorEnabled resolves the effective color decision for a mode
func colorEnabled(mode ColorMode) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	case ColorAuto:
		fallthrough
	default:
		return isatty.IsTerminal(os.Stdout.Fd())
	}
}

// Render produces the full segment for a repository state
func (r *Renderer) Render(state *status.State) string {
	branchText := BranchText(state.Branch)
	indexText := IndexText(state.Files)
	worktreeText := WorktreeText(state.Files)

	var sb strings.Builder
	sb.WriteString(r.cyan("["))
	sb.WriteString(r.cyan(branchText))
	if indexText != "" {
		sb.WriteString(r.green(indexText))
		if worktreeText != "" {
			sb.WriteString(r.cyan(" |"))
		}
	}
	if worktreeText != "" {
		sb.WriteString(r.red(worktreeText))
	}
	sb.WriteString(r.cyan("]"))
	return sb.String()
}

func (r *Renderer) cyan(text string) string {
	if !r.color {
		return text
	}
	return r.frame.Render(text)
}

func (r *Renderer) green(text string) string {
	if !r.color {
		return text
	}
	return r.index.Render(text)
}

func (r *Renderer) red(text string) string {
	if !r.color {
		return text
	}
	return r.worktree.Render(text)
}
