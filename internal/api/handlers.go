package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	evoerrors "github.com/evoviz/evoviz/pkg/errors"
	"github.com/evoviz/evoviz/pkg/graph"
	"github.com/evoviz/evoviz/pkg/lineage"
	"github.com/evoviz/evoviz/pkg/pipeline"
	"github.com/evoviz/evoviz/pkg/store"
	"github.com/evoviz/evoviz/pkg/strategy"
)

// maxBodyBytes caps request bodies. Evolution documents are small;
// anything past this is a client error.
const maxBodyBytes = 8 << 20

type layoutResponse struct {
	Layout graph.Renderable `json:"layout"`
	Cached bool             `json:"cached"`
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleStrategyLayout computes the node-level layout of a single
// strategy document. An optional run_id query parameter persists the
// result when a store is configured.
func (s *Server) handleStrategyLayout(w http.ResponseWriter, r *http.Request) {
	var doc strategy.Document
	if !s.decodeBody(w, r, &doc) {
		return
	}

	opts, ok := s.layoutOptions(w, r)
	if !ok {
		return
	}

	out, cached, err := s.runner.ComputeStrategy(r.Context(), doc, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.persist(r, pipeline.KindStrategy, out)
	writeJSON(w, http.StatusOK, layoutResponse{Layout: out, Cached: cached})
}

// handleLineageLayout computes the generation-level layout of an
// evolution run. The generations query parameter forces empty marker
// rows up to that count.
func (s *Server) handleLineageLayout(w http.ResponseWriter, r *http.Request) {
	var doc lineage.Document
	if !s.decodeBody(w, r, &doc) {
		return
	}

	opts, ok := s.layoutOptions(w, r)
	if !ok {
		return
	}
	if v := r.URL.Query().Get("generations"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			s.writeError(w, r, evoerrors.New(evoerrors.ErrCodeInvalidInput, "invalid generations: %q", v))
			return
		}
		opts.GenerationCount = n
	}

	out, cached, err := s.runner.ComputeLineage(r.Context(), doc, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.persist(r, pipeline.KindLineage, out)
	writeJSON(w, http.StatusOK, layoutResponse{Layout: out, Cached: cached})
}

// handleRunLayout serves a previously persisted layout.
func (s *Server) handleRunLayout(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.writeError(w, r, evoerrors.New(evoerrors.ErrCodeUnsupported, "layout persistence is not configured"))
		return
	}
	runID := chi.URLParam(r, "runID")
	kind := chi.URLParam(r, "kind")
	if !pipeline.ValidKinds[kind] {
		s.writeError(w, r, evoerrors.New(evoerrors.ErrCodeInvalidKind, "invalid kind: %q", kind))
		return
	}

	out, err := s.store.Load(r.Context(), runID, kind)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.writeError(w, r, evoerrors.New(evoerrors.ErrCodeRunNotFound, "no %s layout for run %q", kind, runID))
			return
		}
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, layoutResponse{Layout: out})
}

// layoutOptions parses the shared node_gap and rank_gap overrides.
func (s *Server) layoutOptions(w http.ResponseWriter, r *http.Request) (pipeline.Options, bool) {
	var opts pipeline.Options
	q := r.URL.Query()
	for _, p := range []struct {
		name string
		dst  *float64
	}{
		{"node_gap", &opts.NodeGap},
		{"rank_gap", &opts.RankGap},
	} {
		v := q.Get(p.name)
		if v == "" {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f <= 0 {
			s.writeError(w, r, evoerrors.New(evoerrors.ErrCodeInvalidInput, "invalid %s: %q", p.name, v))
			return opts, false
		}
		*p.dst = f
	}
	return opts, true
}

func (s *Server) decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		s.writeError(w, r, evoerrors.Wrap(evoerrors.ErrCodeInvalidDocument, err, "decode request body"))
		return false
	}
	return true
}

// persist writes the layout to the store under run_id when both are
// present. Store failures are logged, never surfaced: persistence is
// best effort and must not fail the layout request.
func (s *Server) persist(r *http.Request, kind string, out graph.Renderable) {
	runID := r.URL.Query().Get("run_id")
	if s.store == nil || runID == "" {
		return
	}
	if err := s.store.Save(r.Context(), runID, kind, out); err != nil {
		s.logger.Warn("layout persist failed", "run_id", runID, "kind", kind, "err", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := evoerrors.GetCode(err)
	status := http.StatusInternalServerError
	switch code {
	case evoerrors.ErrCodeInvalidInput, evoerrors.ErrCodeInvalidKind,
		evoerrors.ErrCodeInvalidFormat, evoerrors.ErrCodeInvalidDocument:
		status = http.StatusBadRequest
	case evoerrors.ErrCodeNotFound, evoerrors.ErrCodeRunNotFound, evoerrors.ErrCodeFileNotFound:
		status = http.StatusNotFound
	case evoerrors.ErrCodeUnsupported:
		status = http.StatusNotImplemented
	}
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "err", err, "request_id", RequestID(r.Context()))
	}
	writeJSON(w, status, errorResponse{Error: evoerrors.UserMessage(err), Code: string(code)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
