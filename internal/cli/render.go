package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fieldgeneral/playcall/pkg/diagram"
)

// Output formats for the render command.
const (
	formatSVG = "svg"
	formatPNG = "png"
	formatPDF = "pdf"

	defaultPNGScale = 2.0
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string
	concept string
	formats []string
}

// renderCommand creates the render command for generating play diagrams.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <formation> <coverage>",
		Short: "Render a play diagram",
		Long: `Render the diagram for a defensive look as SVG, PNG, or PDF.

Unknown formation or coverage keys do not fail: the formation falls back
to the 4-3 and unknown coverages simply draw no zone overlays. Use
--concept to overlay the route paths of an offensive concept.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := validateFormats(opts.formats); err != nil {
				return err
			}
			return runRender(cmd.Context(), args[0], args[1], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf (comma-separated)")
	cmd.Flags().StringVar(&opts.concept, "concept", "", "overlay an offensive concept's routes")

	return cmd
}

// parseFormats parses the --format flag into a slice of output formats.
// If empty, defaults to ["svg"].
func parseFormats(s string) []string {
	if s == "" {
		return []string{formatSVG}
	}
	return strings.Split(s, ",")
}

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{formatSVG: true, formatPNG: true, formatPDF: true}

// validateFormats checks that all requested formats are valid.
func validateFormats(formats []string) error {
	for _, f := range formats {
		if !validFormats[f] {
			return fmt.Errorf("invalid format: %s (must be 'svg', 'png', or 'pdf')", f)
		}
	}
	return nil
}

// basePath derives the base output path from the --output flag and the
// look being rendered. A format extension on the output is stripped so
// multi-format runs produce look.svg, look.png, and so on.
func basePath(output, formation, coverage string) string {
	if output == "" {
		return formation + "_" + coverage
	}
	ext := filepath.Ext(output)
	if validFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

func runRender(ctx context.Context, formation, coverage string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	p := newProgress(logger)

	var composeOpts []diagram.Option
	if opts.concept != "" {
		composeOpts = append(composeOpts, diagram.WithConcept(opts.concept))
	}
	svg := diagram.Render(formation, coverage, composeOpts...)
	logger.Debugf("composed diagram: %d bytes", len(svg))

	base := basePath(opts.output, formation, coverage)
	for _, format := range opts.formats {
		data, err := convertFormat(svg, format)
		if err != nil {
			return err
		}

		path := base + "." + format
		if opts.output != "" && len(opts.formats) == 1 {
			path = opts.output
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return err
		}
		printFile(path)
	}

	p.done(fmt.Sprintf("Rendered %s vs %s", formation, coverage))
	return nil
}

// convertFormat converts the rendered SVG to the requested format.
func convertFormat(svg []byte, format string) ([]byte, error) {
	switch format {
	case formatSVG:
		return svg, nil
	case formatPNG:
		return diagram.ToPNG(svg, defaultPNGScale)
	case formatPDF:
		return diagram.ToPDF(svg)
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}
