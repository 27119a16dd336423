package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gitprompt.dev/gitprompt/internal/segment"
	"gitprompt.dev/gitprompt/internal/status"
)

// PreviewSample is a canned repository state shown in the preview program
type PreviewSample struct {
	Name        string
	Description string
	State       status.State
}

// PreviewSamples covers the states the segment can render
var PreviewSamples = []PreviewSample{
	{
		Name:        "Clean",
		Description: "On a branch, nothing staged, nothing modified",
		State: status.State{
			Branch: status.BranchState{Name: "main"},
		},
	},
	{
		Name:        "Dirty worktree",
		Description: "Untracked, modified, and deleted files, nothing staged",
		State: status.State{
			Branch: status.BranchState{Name: "main"},
			Files:  status.FileState{WorktreeAdd: 2, WorktreeEdit: 1, WorktreeRemove: 1},
		},
	},
	{
		Name:        "Staged changes",
		Description: "Everything staged, worktree clean",
		State: status.State{
			Branch: status.BranchState{Name: "feature/login"},
			Files:  status.FileState{IndexAdd: 1, IndexEdit: 3},
		},
	},
	{
		Name:        "Staged and dirty",
		Description: "Both sections present, separated by the divider",
		State: status.State{
			Branch: status.BranchState{Name: "feature/login"},
			Files:  status.FileState{IndexEdit: 2, WorktreeEdit: 1, WorktreeAdd: 1},
		},
	},
	{
		Name:        "Ahead of upstream",
		Description: "Two unpushed commits",
		State: status.State{
			Branch: status.BranchState{Name: "main", Ahead: 2},
		},
	},
	{
		Name:        "Diverged",
		Description: "Ahead and behind upstream at the same time",
		State: status.State{
			Branch: status.BranchState{Name: "main", Ahead: 1, Behind: 3},
			Files:  status.FileState{WorktreeEdit: 1},
		},
	},
	{
		Name:        "Detached HEAD",
		Description: "Checked out a commit directly",
		State: status.State{
			Branch: status.BranchState{Name: "HEAD", Detached: true, SHA: "f4c3b00c2a1d9e8f7a6b5c4d3e2f1a0b9c8d7e6f"},
		},
	},
}

type previewKeyMap struct {
	Next key.Binding
	Prev key.Binding
	Quit key.Binding
}

func (k previewKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Quit}
}

func (k previewKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Prev, k.Next}, {k.Quit}}
}

var defaultPreviewKeys = previewKeyMap{
	Next: key.NewBinding(
		key.WithKeys("down", "j", "right", "l", "tab"),
		key.WithHelp("↓/j", "next"),
	),
	Prev: key.NewBinding(
		key.WithKeys("up", "k", "left", "h", "shift+tab"),
		key.WithHelp("↑/k", "previous"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

type previewStyles struct {
	title   lipgloss.Style
	cursor  lipgloss.Style
	name    lipgloss.Style
	dim     lipgloss.Style
	segment lipgloss.Style
}

func newPreviewStyles() previewStyles {
	return previewStyles{
		title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginBottom(1),
		cursor:  lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
		name:    lipgloss.NewStyle().Bold(true),
		dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		segment: lipgloss.NewStyle().MarginLeft(2),
	}
}

// previewModel is the bubbletea model cycling through sample segment states
type previewModel struct {
	samples  []PreviewSample
	renderer *segment.Renderer
	cursor   int
	styles   previewStyles
	keys     previewKeyMap
	help     help.Model
}

// NewPreviewModel creates the preview model with the given segment renderer
func NewPreviewModel(renderer *segment.Renderer) tea.Model {
	return previewModel{
		samples:  PreviewSamples,
		renderer: renderer,
		styles:   newPreviewStyles(),
		keys:     defaultPreviewKeys,
		help:     help.New(),
	}
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.cursor = (m.cursor + 1) % len(m.samples)
		case key.Matches(msg, m.keys.Prev):
			m.cursor = (m.cursor - 1 + len(m.samples)) % len(m.samples)
		}
	}
	return m, nil
}

func (m previewModel) View() string {
	var sb strings.Builder
	sb.WriteString(m.styles.title.Render("gitprompt preview"))
	sb.WriteString("\n")

	for i, sample := range m.samples {
		cursor := "  "
		name := m.styles.dim.Render(sample.Name)
		if i == m.cursor {
			cursor = m.styles.cursor.Render("▸ ")
			name = m.styles.name.Render(sample.Name)
		}
		sb.WriteString(fmt.Sprintf("%s%s\n", cursor, name))
	}

	sample := m.samples[m.cursor]
	sb.WriteString("\n")
	sb.WriteString(m.styles.dim.Render(sample.Description))
	sb.WriteString("\n\n")
	sb.WriteString(m.styles.segment.Render(m.renderer.Render(&sample.State)))
	sb.WriteString("\n\n")
	sb.WriteString(m.help.View(m.keys))
	sb.WriteString("\n")
	return sb.String()
}

// RunPreview starts the interactive preview program
func RunPreview(renderer *segment.Renderer) error {
	program := tea.NewProgram(NewPreviewModel(renderer))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run preview: %w", err)
	}
	return nil
}
