// Package diagram composes schematic play diagrams as SVG.
//
// A diagram is built as an ordered list of typed drawable elements
// (rectangles, circles, triangles, lines, labels) and serialized in a
// single step, so tests can inspect the element list instead of parsing
// markup. Composition is pure and deterministic: identical inputs produce
// byte-identical output, and unknown formation, coverage, or concept keys
// degrade to defaults or empty layers instead of failing.
//
// Layer order is fixed back to front: field, coverage zones, soft spots,
// offensive markers, defensive markers, route paths.
//
//	svg := diagram.Render("4-3", "cover_2", diagram.WithConcept("mesh"))
package diagram
