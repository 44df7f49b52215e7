package api

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/fieldgeneral/playcall/pkg/cache"
	"github.com/fieldgeneral/playcall/pkg/diagram"
	"github.com/fieldgeneral/playcall/pkg/errors"
	"github.com/fieldgeneral/playcall/pkg/observability"
	"github.com/fieldgeneral/playcall/pkg/playbook"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleFormations(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"status":     "ok",
		"formations": s.lib.Formations,
	})
}

func (s *Server) handleCoverages(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"coverages": s.lib.Coverages,
	})
}

func (s *Server) handleBlitzes(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"status":         "ok",
		"blitz_packages": s.lib.Blitzes,
	})
}

func (s *Server) handlePlays(w http.ResponseWriter, r *http.Request) {
	plays := s.lib.Plays()
	s.writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"plays":  plays,
		"count":  len(plays),
	})
}

type analyzeRequest struct {
	Formation string `json:"formation"`
	Coverage  string `json:"coverage"`
	Blitz     string `json:"blitz"`
}

type analyzeOffense struct {
	PassConcepts []playbook.PassAnswer `json:"pass_concepts"`
	RunConcepts  []playbook.RunAnswer  `json:"run_concepts"`
	Priority     string                `json:"priority"`
	KeyAdvice    string                `json:"key_advice"`
}

// handleAnalyze resolves a defensive look to its offensive answers and
// bundles the rendered diagram. Missing fields fall back to the default
// look; unknown keys yield a sparse but valid analysis.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode analyze request"))
		return
	}
	if req.Formation == "" {
		req.Formation = defaultFormation
	}
	if req.Coverage == "" {
		req.Coverage = defaultCoverage
	}
	if req.Blitz == "" {
		req.Blitz = playbook.BaseBlitz
	}

	analysis := s.lib.Analyze(req.Formation, req.Coverage, req.Blitz)
	svg := s.renderDiagram(r, req.Formation, req.Coverage, "")

	s.writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"defense": analysis.Defense,
		"offense": analyzeOffense{
			PassConcepts: analysis.PassConcepts,
			RunConcepts:  analysis.RunConcepts,
			Priority:     analysis.Priority,
			KeyAdvice:    analysis.KeyAdvice,
		},
		"diagram_svg": string(svg),
	})
}

// handleConcept returns one pass or run concept record with a diagram
// of its routes against the default look.
func (s *Server) handleConcept(w http.ResponseWriter, r *http.Request) {
	conceptType := chi.URLParam(r, "conceptType")
	key := chi.URLParam(r, "key")

	var concept any
	switch conceptType {
	case "pass":
		c, ok := s.lib.PassConcepts[key]
		if !ok {
			s.writeError(w, errors.New(errors.ErrCodeConceptNotFound, "unknown pass concept %q", key))
			return
		}
		concept = c
	case "run":
		c, ok := s.lib.RunConcepts[key]
		if !ok {
			s.writeError(w, errors.New(errors.ErrCodeConceptNotFound, "unknown run concept %q", key))
			return
		}
		concept = c
	default:
		s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "concept type must be pass or run, got %q", conceptType))
		return
	}

	svg := s.renderDiagram(r, defaultFormation, defaultCoverage, key)
	s.writeJSON(w, http.StatusOK, map[string]any{
		"status":      "ok",
		"type":        conceptType,
		"key":         key,
		"concept":     concept,
		"diagram_svg": string(svg),
	})
}

// handleDiagram returns the raw SVG for a look. All parameters are
// optional; unknown keys degrade to defaults rather than erroring.
func (s *Server) handleDiagram(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	formation := q.Get("formation")
	if formation == "" {
		formation = defaultFormation
	}
	coverage := q.Get("coverage")
	if coverage == "" {
		coverage = defaultCoverage
	}
	concept := q.Get("concept")

	svg := s.renderDiagram(r, formation, coverage, concept)
	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(svg); err != nil {
		s.logger.Error("write diagram", "error", err)
	}
}

// renderDiagram renders through the cache. Cache errors are logged and
// swallowed; the diagram is recomputed either way.
func (s *Server) renderDiagram(r *http.Request, formation, coverage, concept string) []byte {
	ctx := r.Context()
	key := cache.DiagramKey(formation, coverage, concept, "svg")

	if data, ok, err := s.cache.Get(ctx, key); err != nil {
		s.logger.Debug("cache get", "key", key, "error", err)
	} else if ok {
		observability.Cache().OnCacheHit(ctx, "diagram")
		return data
	}
	observability.Cache().OnCacheMiss(ctx, "diagram")

	var opts []diagram.Option
	if concept != "" {
		opts = append(opts, diagram.WithConcept(concept))
	}
	observability.Diagram().OnRenderStart(ctx, formation, coverage)
	start := time.Now()
	svg := diagram.Render(formation, coverage, opts...)
	observability.Diagram().OnRenderComplete(ctx, formation, coverage, len(svg), time.Since(start))

	if err := s.cache.Set(ctx, key, svg, s.ttl); err != nil {
		s.logger.Debug("cache set", "key", key, "error", err)
	} else {
		observability.Cache().OnCacheSet(ctx, "diagram", len(svg))
	}
	return svg
}
