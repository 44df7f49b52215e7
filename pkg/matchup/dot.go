package matchup

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/fieldgeneral/playcall/pkg/playbook"
)

// Options configures matchup graph rendering.
type Options struct {
	// RunGame includes run concepts alongside the pass concepts.
	RunGame bool
}

// ToDOT converts the library's beater relationships to Graphviz DOT.
// Coverages and blitz packages are drawn as filled boxes on the left
// rank, concepts as rounded boxes, with one edge per answer.
func ToDOT(lib *playbook.Library, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph matchups {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=20, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=1.2;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, key := range sortedBeaterKeys(lib) {
		label := beaterLabel(lib, key)
		fmt.Fprintf(&buf, "  %q [label=%q, fillcolor=lightcoral];\n", key, label)
	}
	for _, key := range lib.PassConceptKeys() {
		fmt.Fprintf(&buf, "  %q [label=%q, fillcolor=lightblue];\n", key, lib.PassConcepts[key].Name)
	}
	if opts.RunGame {
		for _, key := range lib.RunConceptKeys() {
			fmt.Fprintf(&buf, "  %q [label=%q, fillcolor=palegreen];\n", key, lib.RunConcepts[key].Name)
		}
	}

	buf.WriteString("\n")
	for _, key := range sortedBeaterKeys(lib) {
		b := lib.Beaters[key]
		for _, concept := range b.BestPass {
			fmt.Fprintf(&buf, "  %q -> %q;\n", concept, key)
		}
		if opts.RunGame {
			for _, concept := range b.BestRun {
				fmt.Fprintf(&buf, "  %q -> %q;\n", concept, key)
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func sortedBeaterKeys(lib *playbook.Library) []string {
	keys := make([]string, 0, len(lib.Beaters))
	for _, k := range lib.CoverageKeys() {
		if _, ok := lib.Beaters[k]; ok {
			keys = append(keys, k)
		}
	}
	for _, k := range lib.BlitzKeys() {
		if k == playbook.BaseBlitz {
			continue
		}
		if _, ok := lib.Beaters[k]; ok {
			keys = append(keys, k)
		}
	}
	return keys
}

func beaterLabel(lib *playbook.Library, key string) string {
	if c, ok := lib.Coverages[key]; ok {
		return c.Name
	}
	if b, ok := lib.Blitzes[key]; ok {
		return b.Name + "\n(blitz)"
	}
	return strings.ReplaceAll(key, "_", " ")
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the Graphviz svg tag so the document scales
// cleanly when embedded.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
