package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/fieldgeneral/playcall/pkg/playbook"
)

// exploreCommand creates the explore command for browsing defensive looks.
func (c *CLI) exploreCommand() *cobra.Command {
	var dataDir string

	cmd := &cobra.Command{
		Use:   "explore",
		Short: "Browse defensive looks and their answers interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := loadLibrary(dataDir)
			if err != nil {
				return err
			}

			model := NewExploreModel(lib)
			p := tea.NewProgram(model, tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().StringVar(&dataDir, "data-dir", "", "load reference data from this directory instead of the built-in set")

	return cmd
}

var (
	exploreSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	exploreNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	exploreDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	explorePaneStyle     = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorDim).
				Padding(0, 1)
)

// exploreColumn identifies which picker column has focus.
type exploreColumn int

const (
	columnFormation exploreColumn = iota
	columnCoverage
	columnBlitz
)

// ExploreModel is the bubbletea model for browsing defensive looks.
// Three picker columns select the look; the detail pane shows the
// offensive answers for the current selection.
type ExploreModel struct {
	lib *playbook.Library

	formations []string
	coverages  []string
	blitzes    []string

	column  exploreColumn
	cursors [3]int
}

// NewExploreModel creates the explorer over the given library.
func NewExploreModel(lib *playbook.Library) ExploreModel {
	return ExploreModel{
		lib:        lib,
		formations: lib.FormationKeys(),
		coverages:  lib.CoverageKeys(),
		blitzes:    lib.BlitzKeys(),
	}
}

// Selection returns the currently selected look.
func (m ExploreModel) Selection() (formation, coverage, blitz string) {
	return m.formations[m.cursors[columnFormation]],
		m.coverages[m.cursors[columnCoverage]],
		m.blitzes[m.cursors[columnBlitz]]
}

func (m ExploreModel) Init() tea.Cmd {
	return nil
}

func (m ExploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h":
			if m.column > columnFormation {
				m.column--
			}
		case "right", "l", "tab":
			if m.column < columnBlitz {
				m.column++
			}
		case "up", "k":
			if m.cursors[m.column] > 0 {
				m.cursors[m.column]--
			}
		case "down", "j":
			if m.cursors[m.column] < m.columnLen()-1 {
				m.cursors[m.column]++
			}
		}
	}
	return m, nil
}

func (m ExploreModel) columnLen() int {
	switch m.column {
	case columnFormation:
		return len(m.formations)
	case columnCoverage:
		return len(m.coverages)
	default:
		return len(m.blitzes)
	}
}

func (m ExploreModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Playcall Explorer"))
	b.WriteString("\n")
	b.WriteString(exploreDimStyle.Render("←/→ switch column  ↑/↓ select  q quit"))
	b.WriteString("\n\n")

	pickers := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderColumn("Formation", m.formations, columnFormation),
		m.renderColumn("Coverage", m.coverages, columnCoverage),
		m.renderColumn("Blitz", m.blitzes, columnBlitz),
	)
	b.WriteString(pickers)
	b.WriteString("\n")
	b.WriteString(m.renderDetail())

	return b.String()
}

// renderColumn draws one picker column, highlighting the cursor row when
// the column has focus.
func (m ExploreModel) renderColumn(title string, keys []string, col exploreColumn) string {
	var b strings.Builder

	if m.column == col {
		b.WriteString(StyleHighlight.Bold(true).Render(title))
	} else {
		b.WriteString(exploreDimStyle.Render(title))
	}
	b.WriteString("\n")

	for i, key := range keys {
		cursor := "  "
		if i == m.cursors[col] {
			cursor = "▸ "
		}
		line := cursor + key
		switch {
		case i == m.cursors[col] && m.column == col:
			b.WriteString(exploreSelectedStyle.Render(line))
		case i == m.cursors[col]:
			b.WriteString(exploreNormalStyle.Render(line))
		default:
			b.WriteString(exploreDimStyle.Render(line))
		}
		b.WriteString("\n")
	}

	return explorePaneStyle.Render(b.String())
}

// renderDetail shows the analysis for the selected look.
func (m ExploreModel) renderDetail() string {
	formation, coverage, blitz := m.Selection()
	a := m.lib.Analyze(formation, coverage, blitz)

	var b strings.Builder
	b.WriteString(StyleHighlight.Render(fmt.Sprintf("%s · %s · %s",
		a.Defense.FormationInfo.Name, a.Defense.CoverageInfo.Name, a.Defense.BlitzInfo.Name)))
	b.WriteString("\n")

	if a.Priority != "" {
		b.WriteString(StyleWarning.Render("Priority: " + a.Priority))
		b.WriteString("\n")
	}
	if a.KeyAdvice != "" {
		b.WriteString(StyleValue.Render(a.KeyAdvice))
		b.WriteString("\n")
	}

	if len(a.PassConcepts) > 0 {
		b.WriteString("\n")
		b.WriteString(StyleSuccess.Render("Pass"))
		b.WriteString("\n")
		for _, p := range a.PassConcepts {
			b.WriteString(fmt.Sprintf("  %s %s %s\n",
				exploreNormalStyle.Render(p.Name),
				exploreDimStyle.Render(iconArrow),
				exploreDimStyle.Render(p.WhyItWorks)))
		}
	}
	if len(a.RunConcepts) > 0 {
		b.WriteString("\n")
		b.WriteString(StyleSuccess.Render("Run"))
		b.WriteString("\n")
		for _, r := range a.RunConcepts {
			b.WriteString(fmt.Sprintf("  %s %s %s\n",
				exploreNormalStyle.Render(r.Name),
				exploreDimStyle.Render(iconArrow),
				exploreDimStyle.Render(r.WhyItWorks)))
		}
	}
	if len(a.PassConcepts) == 0 && len(a.RunConcepts) == 0 {
		b.WriteString(exploreDimStyle.Render("No catalogued answers for this look."))
		b.WriteString("\n")
	}

	return explorePaneStyle.Render(b.String())
}
