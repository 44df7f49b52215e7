package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/fieldgeneral/playcall/pkg/diagram"
	"github.com/fieldgeneral/playcall/pkg/matchup"
)

// matchupsCommand creates the matchups command for rendering the
// concept-versus-coverage graph.
func (c *CLI) matchupsCommand() *cobra.Command {
	var (
		output  string
		dataDir string
		runGame bool
	)

	cmd := &cobra.Command{
		Use:   "matchups",
		Short: "Render the concept-versus-coverage matchup graph",
		Long: `Render a graph with one edge from every offensive concept to each
coverage or blitz package it beats. Output format follows the file
extension: .dot writes raw Graphviz DOT, .png converts through
rsvg-convert, anything else writes SVG.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := loadLibrary(dataDir)
			if err != nil {
				return err
			}

			dot := matchup.ToDOT(lib, matchup.Options{RunGame: runGame})

			var data []byte
			switch filepath.Ext(output) {
			case ".dot":
				data = []byte(dot)
			case ".png":
				c.Logger.Debug("rendering matchup graph with graphviz")
				svg, err := matchup.RenderSVG(dot)
				if err != nil {
					return err
				}
				data, err = diagram.ToPNG(svg, defaultPNGScale)
				if err != nil {
					return err
				}
			default:
				c.Logger.Debug("rendering matchup graph with graphviz")
				data, err = matchup.RenderSVG(dot)
				if err != nil {
					return err
				}
			}

			if err := os.WriteFile(output, data, 0644); err != nil {
				return err
			}
			printFile(output)
			printSuccess("Rendered matchup graph (%d beaters)", len(lib.Beaters))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "matchups.svg", "output file (.svg, .png, or .dot)")
	cmd.Flags().StringVar(&dataDir, "data-dir", "", "load reference data from this directory instead of the built-in set")
	cmd.Flags().BoolVar(&runGame, "run-game", false, "include run concepts in the graph")

	return cmd
}
