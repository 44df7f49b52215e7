package playbook

import (
	"sort"
)

// BaseBlitz is the sentinel blitz key meaning "no extra pressure".
const BaseBlitz = "base"

// Formation describes a defensive personnel grouping.
type Formation struct {
	Name        string   `json:"name"`
	Personnel   string   `json:"personnel"`
	Description string   `json:"description"`
	Strengths   []string `json:"strengths,omitempty"`
	Weaknesses  []string `json:"weaknesses,omitempty"`
}

// Coverage describes a pass-coverage scheme.
type Coverage struct {
	Name        string   `json:"name"`
	Family      string   `json:"family"` // "man" or "zone"
	Description string   `json:"description"`
	Strengths   []string `json:"strengths,omitempty"`
	Weaknesses  []string `json:"weaknesses,omitempty"`
}

// Blitz describes a pressure package layered on a base coverage.
type Blitz struct {
	Name        string `json:"name"`
	Rushers     int    `json:"rushers"`
	Description string `json:"description"`
	Weakness    string `json:"weakness,omitempty"`
}

// PassConcept is an offensive route combination.
type PassConcept struct {
	Name          string            `json:"name"`
	Routes        []string          `json:"routes"`
	Description   string            `json:"description"`
	WhyItWorks    map[string]string `json:"why_it_works,omitempty"`
	KeyRead       string            `json:"key_read,omitempty"`
	HotAdjustment string            `json:"hot_adjustment,omitempty"`
}

// RunConcept is an offensive run scheme.
type RunConcept struct {
	Name        string            `json:"name"`
	Blocking    string            `json:"blocking"`
	Description string            `json:"description"`
	WhyItWorks  map[string]string `json:"why_it_works,omitempty"`
	KeyRead     string            `json:"key_read,omitempty"`
}

// Beater lists the offensive answers to one defensive look.
// Keys may name coverages or blitz packages.
type Beater struct {
	BestPass  []string `json:"best_pass,omitempty"`
	BestRun   []string `json:"best_run,omitempty"`
	Priority  string   `json:"priority,omitempty"`
	KeyAdvice string   `json:"key_advice,omitempty"`
}

// Library is the full reference dataset.
type Library struct {
	Formations   map[string]Formation   `json:"formations"`
	Coverages    map[string]Coverage    `json:"coverages"`
	Blitzes      map[string]Blitz       `json:"blitz_packages"`
	PassConcepts map[string]PassConcept `json:"pass_concepts"`
	RunConcepts  map[string]RunConcept  `json:"run_concepts"`
	Beaters      map[string]Beater      `json:"coverage_beaters"`
}

// FormationKeys returns the formation keys in sorted order.
func (l *Library) FormationKeys() []string { return sortedKeys(l.Formations) }

// CoverageKeys returns the coverage keys in sorted order.
func (l *Library) CoverageKeys() []string { return sortedKeys(l.Coverages) }

// BlitzKeys returns the blitz package keys in sorted order.
func (l *Library) BlitzKeys() []string { return sortedKeys(l.Blitzes) }

// PassConceptKeys returns the pass concept keys in sorted order.
func (l *Library) PassConceptKeys() []string { return sortedKeys(l.PassConcepts) }

// RunConceptKeys returns the run concept keys in sorted order.
func (l *Library) RunConceptKeys() []string { return sortedKeys(l.RunConcepts) }

// Play is one defensive look: formation × coverage × blitz.
type Play struct {
	ID            string `json:"id"`
	Formation     string `json:"formation"`
	FormationName string `json:"formation_name"`
	Coverage      string `json:"coverage"`
	CoverageName  string `json:"coverage_name"`
	Blitz         string `json:"blitz"`
	BlitzName     string `json:"blitz_name"`
}

// Plays enumerates every formation × coverage × blitz combination in
// deterministic (sorted) order.
func (l *Library) Plays() []Play {
	var plays []Play
	for _, fk := range l.FormationKeys() {
		for _, ck := range l.CoverageKeys() {
			for _, bk := range l.BlitzKeys() {
				plays = append(plays, Play{
					ID:            fk + "_" + ck + "_" + bk,
					Formation:     fk,
					FormationName: l.Formations[fk].Name,
					Coverage:      ck,
					CoverageName:  l.Coverages[ck].Name,
					Blitz:         bk,
					BlitzName:     l.Blitzes[bk].Name,
				})
			}
		}
	}
	return plays
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
