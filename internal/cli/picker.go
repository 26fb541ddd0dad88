package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// pickInput resolves the command's input file: the positional argument
// when given, otherwise an interactive picker over the JSON documents in
// dir.
func pickInput(args []string, dir string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	return pickJSONFile(dir)
}

// pickJSONFile runs an interactive list over the *.json files in dir and
// returns the selection.
func pickJSONFile(dir string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return "", err
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("no JSON documents in %s (pass a file argument)", dir)
	}
	sort.Strings(matches)

	model, err := tea.NewProgram(newFileListModel(matches)).Run()
	if err != nil {
		return "", fmt.Errorf("run picker: %w", err)
	}
	m, ok := model.(fileListModel)
	if !ok || m.selected == "" {
		return "", fmt.Errorf("no document selected")
	}
	return m.selected, nil
}

// =============================================================================
// fileListModel - Interactive document selection
// =============================================================================

// fileListModel is the bubbletea model for picking one document from a
// list of files.
type fileListModel struct {
	files    []string
	sizes    []string
	cursor   int
	selected string
	height   int
	offset   int
}

// newFileListModel creates a file list model over the given paths.
func newFileListModel(files []string) fileListModel {
	sizes := make([]string, len(files))
	for i, f := range files {
		if info, err := os.Stat(f); err == nil {
			sizes[i] = formatSize(info.Size())
		} else {
			sizes[i] = "—"
		}
	}
	return fileListModel{
		files:  files,
		sizes:  sizes,
		height: 15,
	}
}

func (m fileListModel) Init() tea.Cmd {
	return nil
}

func (m fileListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < len(m.files)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		case "enter":
			m.selected = m.files[m.cursor]
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 6
		if m.height < 5 {
			m.height = 5
		}
	}
	return m, nil
}

func (m fileListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Document"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := m.offset + m.height
	if end > len(m.files) {
		end = len(m.files)
	}

	for i := m.offset; i < end; i++ {
		cursor := "  "
		style := listNormalStyle
		if i == m.cursor {
			cursor = "▸ "
			style = listSelectedStyle
		}
		b.WriteString(cursor + style.Render(filepath.Base(m.files[i])))
		b.WriteString("  " + listDimStyle.Render(m.sizes[i]))
		b.WriteString("\n")
	}

	return b.String()
}

// formatSize renders a byte count compactly (e.g. "12.4kB").
func formatSize(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1fMB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1fkB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%dB", n)
	}
}
