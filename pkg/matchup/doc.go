// Package matchup renders the coverage-versus-concept relationship graph:
// an edge from every offensive concept to each coverage or blitz package
// it beats. The graph is emitted as Graphviz DOT and rendered with the
// dot layout engine, giving a one-page view of the whole answer sheet.
package matchup
