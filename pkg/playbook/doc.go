// Package playbook holds the football-strategy reference library:
// defensive formations, coverages, and blitz packages on one side, and
// the offensive pass/run concepts that answer them on the other.
//
// The library ships embedded default data and can be overridden from a
// data directory. All lookups are read-only; the library is loaded once
// at startup and safe for concurrent use.
package playbook
