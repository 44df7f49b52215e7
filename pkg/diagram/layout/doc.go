// Package layout holds the static position tables used by diagram
// rendering: defensive formation alignments, per-coverage safety
// adjustments, coverage zone rectangles, soft-spot annotations, and
// offensive route paths.
//
// All tables are read-only. Lookups by unknown key never fail: formations
// fall back to the base 4-3 alignment and every other table returns an
// empty result, so a caller always gets a drawable (possibly sparse)
// answer.
//
// Coordinates live on a fixed 400×250 canvas with the offense at the
// bottom and the defensive backfield at the top.
package layout
