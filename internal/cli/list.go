package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/fieldgeneral/playcall/pkg/playbook"
)

// List categories accepted as the optional argument.
// "concepts" prints both the pass and run tables.
var listCategories = []string{"formations", "coverages", "blitzes", "concepts", "pass", "run"}

// listCommand creates the list command for printing the reference data.
func (c *CLI) listCommand() *cobra.Command {
	var dataDir string

	cmd := &cobra.Command{
		Use:       "list [category]",
		Short:     "List formations, coverages, blitzes, or concepts",
		ValidArgs: listCategories,
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := loadLibrary(dataDir)
			if err != nil {
				return err
			}

			category := ""
			if len(args) == 1 {
				category = args[0]
			}
			printLibrary(lib, category)
			return nil
		},
	}

	cmd.Flags().StringVar(&dataDir, "data-dir", "", "load reference data from this directory instead of the built-in set")

	return cmd
}

// printLibrary prints the selected category, or everything when empty.
func printLibrary(lib *playbook.Library, category string) {
	all := category == ""
	if all || category == "formations" {
		printTable("Formations", []string{"Key", "Name", "Personnel", "Description"},
			formationRows(lib))
	}
	if all || category == "coverages" {
		printTable("Coverages", []string{"Key", "Name", "Family", "Description"},
			coverageRows(lib))
	}
	if all || category == "blitzes" {
		printTable("Blitz Packages", []string{"Key", "Name", "Rushers", "Description"},
			blitzRows(lib))
	}
	if all || category == "concepts" || category == "pass" {
		printTable("Pass Concepts", []string{"Key", "Name", "Routes", "Key Read"},
			passRows(lib))
	}
	if all || category == "concepts" || category == "run" {
		printTable("Run Concepts", []string{"Key", "Name", "Blocking", "Key Read"},
			runRows(lib))
	}
}

func formationRows(lib *playbook.Library) [][]string {
	var rows [][]string
	for _, k := range lib.FormationKeys() {
		f := lib.Formations[k]
		rows = append(rows, []string{k, f.Name, f.Personnel, truncate(f.Description, 60)})
	}
	return rows
}

func coverageRows(lib *playbook.Library) [][]string {
	var rows [][]string
	for _, k := range lib.CoverageKeys() {
		cov := lib.Coverages[k]
		rows = append(rows, []string{k, cov.Name, cov.Family, truncate(cov.Description, 60)})
	}
	return rows
}

func blitzRows(lib *playbook.Library) [][]string {
	var rows [][]string
	for _, k := range lib.BlitzKeys() {
		b := lib.Blitzes[k]
		rows = append(rows, []string{k, b.Name, fmt.Sprintf("%d", b.Rushers), truncate(b.Description, 60)})
	}
	return rows
}

func passRows(lib *playbook.Library) [][]string {
	var rows [][]string
	for _, k := range lib.PassConceptKeys() {
		p := lib.PassConcepts[k]
		rows = append(rows, []string{k, p.Name, strings.Join(p.Routes, ", "), truncate(p.KeyRead, 50)})
	}
	return rows
}

func runRows(lib *playbook.Library) [][]string {
	var rows [][]string
	for _, k := range lib.RunConceptKeys() {
		r := lib.RunConcepts[k]
		rows = append(rows, []string{k, r.Name, r.Blocking, truncate(r.KeyRead, 50)})
	}
	return rows
}

func printTable(title string, headers []string, rows [][]string) {
	fmt.Println(StyleTitle.Render(title))
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleBorder).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			if col == 0 {
				return StyleHighlight
			}
			return StyleValue
		})
	fmt.Println(t.Render())
	fmt.Println()
}

// truncate shortens s to max runes with an ellipsis.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
