package playbook

// Caps on merged answer lists. A blitz look merges its beaters into the
// coverage's, and the result stays short enough to act on at the line.
const (
	maxPassAnswers = 5
	maxRunAnswers  = 4
)

// Generic fallbacks when a concept has no note for the specific look.
const (
	genericPassReason = "Exploits coverage weakness"
	genericRunReason  = "Attacks defensive weakness"
)

// DefenseLook echoes the analyzed defensive call with its records.
type DefenseLook struct {
	Formation     string    `json:"formation"`
	FormationInfo Formation `json:"formation_info"`
	Coverage      string    `json:"coverage"`
	CoverageInfo  Coverage  `json:"coverage_info"`
	Blitz         string    `json:"blitz"`
	BlitzInfo     Blitz     `json:"blitz_info"`
}

// PassAnswer is a pass concept expanded for one defensive look.
type PassAnswer struct {
	Key           string   `json:"key"`
	Name          string   `json:"name"`
	Routes        []string `json:"routes"`
	Description   string   `json:"description"`
	WhyItWorks    string   `json:"why_it_works"`
	KeyRead       string   `json:"key_read"`
	HotAdjustment string   `json:"hot_adjustment"`
}

// RunAnswer is a run concept expanded for one defensive look.
type RunAnswer struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Blocking    string `json:"blocking"`
	Description string `json:"description"`
	WhyItWorks  string `json:"why_it_works"`
	KeyRead     string `json:"key_read"`
}

// Analysis is the offensive answer sheet for a defensive look.
type Analysis struct {
	Defense      DefenseLook  `json:"defense"`
	PassConcepts []PassAnswer `json:"pass_concepts"`
	RunConcepts  []RunAnswer  `json:"run_concepts"`
	Priority     string       `json:"priority"`
	KeyAdvice    string       `json:"key_advice"`
}

// Analyze resolves a defensive look and returns the offensive answers.
// Unknown keys resolve to zero-value records and empty answer lists —
// the caller always gets a complete (possibly sparse) analysis.
//
// When blitz is not "base", the blitz's beaters merge into the
// coverage's: coverage answers first, then blitz answers not already
// listed, capped at 5 pass and 4 run. The blitz's priority and advice
// win when present.
func (l *Library) Analyze(formation, coverage, blitz string) Analysis {
	beaters := l.Beaters[coverage]
	if blitz != "" && blitz != BaseBlitz {
		beaters = mergeBeaters(beaters, l.Beaters[blitz])
	}

	a := Analysis{
		Defense: DefenseLook{
			Formation:     formation,
			FormationInfo: l.Formations[formation],
			Coverage:      coverage,
			CoverageInfo:  l.Coverages[coverage],
			Blitz:         blitz,
			BlitzInfo:     l.Blitzes[blitz],
		},
		Priority:  beaters.Priority,
		KeyAdvice: beaters.KeyAdvice,
	}

	for _, key := range beaters.BestPass {
		c, ok := l.PassConcepts[key]
		if !ok {
			continue
		}
		a.PassConcepts = append(a.PassConcepts, PassAnswer{
			Key:           key,
			Name:          c.Name,
			Routes:        c.Routes,
			Description:   c.Description,
			WhyItWorks:    firstReason(c.WhyItWorks, genericPassReason, coverage, blitz),
			KeyRead:       c.KeyRead,
			HotAdjustment: c.HotAdjustment,
		})
	}

	for _, key := range beaters.BestRun {
		c, ok := l.RunConcepts[key]
		if !ok {
			continue
		}
		a.RunConcepts = append(a.RunConcepts, RunAnswer{
			Key:         key,
			Name:        c.Name,
			Blocking:    c.Blocking,
			Description: c.Description,
			WhyItWorks:  firstReason(c.WhyItWorks, genericRunReason, coverage, formation, blitz),
			KeyRead:     c.KeyRead,
		})
	}

	return a
}

// mergeBeaters appends blitz answers the coverage didn't already list,
// in stable order, and applies the caps. Blitz-specific priority and
// advice override the coverage's.
func mergeBeaters(coverage, blitz Beater) Beater {
	merged := Beater{
		BestPass:  capList(appendMissing(coverage.BestPass, blitz.BestPass), maxPassAnswers),
		BestRun:   capList(appendMissing(coverage.BestRun, blitz.BestRun), maxRunAnswers),
		Priority:  coverage.Priority,
		KeyAdvice: coverage.KeyAdvice,
	}
	if blitz.Priority != "" {
		merged.Priority = blitz.Priority
	}
	if blitz.KeyAdvice != "" {
		merged.KeyAdvice = blitz.KeyAdvice
	}
	return merged
}

func appendMissing(base, extra []string) []string {
	seen := make(map[string]struct{}, len(base))
	out := make([]string, 0, len(base)+len(extra))
	for _, k := range base {
		seen[k] = struct{}{}
		out = append(out, k)
	}
	for _, k := range extra {
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}

func capList(list []string, max int) []string {
	if len(list) > max {
		return list[:max]
	}
	return list
}

// firstReason walks the lookup keys in priority order and returns the
// first note present, or the generic fallback.
func firstReason(reasons map[string]string, fallback string, keys ...string) string {
	for _, k := range keys {
		if k == "" {
			continue
		}
		if r, ok := reasons[k]; ok {
			return r
		}
	}
	return fallback
}
