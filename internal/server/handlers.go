package server

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"strconv"

	"github.com/matzehuels/cliquer/pkg/analysis"
	"github.com/matzehuels/cliquer/pkg/buildinfo"
	"github.com/matzehuels/cliquer/pkg/clique"
	"github.com/matzehuels/cliquer/pkg/errors"
)

type healthResponse struct {
	Status string         `json:"status"`
	Build  buildinfo.Info `json:"build"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Build: buildinfo.Get()})
}

// handleTriangles serves POST /v1/triangles.
//
// Query parameters: prefix (default "t"; present but empty matches every
// node), list (include triangle keys), refresh (skip the cache lookup).
func (s *Server) handleTriangles(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	prefix := clique.DefaultPrefix
	if q.Has("prefix") {
		prefix = q.Get("prefix")
	}
	list, err := boolParam(r, "list")
	if err != nil {
		s.fail(w, r, err)
		return
	}
	refresh, err := boolParam(r, "refresh")
	if err != nil {
		s.fail(w, r, err)
		return
	}

	res, err := s.analyze(r, analysis.Options{Mode: analysis.ModeTriangles, Prefix: prefix, Refresh: refresh})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if !list {
		res.Triangles = nil
	}
	writeJSON(w, http.StatusOK, res)
}

// handleClique serves POST /v1/clique.
//
// Query parameters: parallel, workers, refresh.
func (s *Server) handleClique(w http.ResponseWriter, r *http.Request) {
	parallel, err := boolParam(r, "parallel")
	if err != nil {
		s.fail(w, r, err)
		return
	}
	refresh, err := boolParam(r, "refresh")
	if err != nil {
		s.fail(w, r, err)
		return
	}
	workers := 0
	if v := r.URL.Query().Get("workers"); v != "" {
		workers, err = strconv.Atoi(v)
		if err != nil {
			s.fail(w, r, errors.New(errors.ErrCodeInvalidInput, "workers: %q is not an integer", v))
			return
		}
	}

	res, err := s.analyze(r, analysis.Options{
		Mode:     analysis.ModeClique,
		Parallel: parallel,
		Workers:  workers,
		Refresh:  refresh,
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) analyze(r *http.Request, opts analysis.Options) (*analysis.Result, error) {
	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.Timeout)
	defer cancel()
	g, err := s.runner.Load(ctx, r.Body)
	if err != nil {
		return nil, err
	}
	return s.runner.Run(ctx, g, opts)
}

func boolParam(r *http.Request, name string) (bool, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, errors.New(errors.ErrCodeInvalidInput, "%s: %q is not a boolean", name, v)
	}
	return b, nil
}

// =============================================================================
// Responses
// =============================================================================

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error     errorBody `json:"error"`
	RequestID string    `json:"request_id,omitempty"`
}

// statusFor maps a structured error to an HTTP status.
func statusFor(err error) int {
	var tooLarge *http.MaxBytesError
	switch {
	case stderrors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case stderrors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, errors.ErrCodeNotFound), errors.Is(err, errors.ErrCodeFileNotFound):
		return http.StatusNotFound
	case errors.Is(err, errors.ErrCodeUnsupported):
		return http.StatusNotImplemented
	}
	return http.StatusInternalServerError
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	code := string(errors.GetCode(err))
	if code == "" {
		code = string(errors.ErrCodeInternal)
	}
	msg := errors.UserMessage(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "error", err, "request_id", RequestIDFromContext(r.Context()))
	}
	if status == http.StatusRequestEntityTooLarge {
		code = string(errors.ErrCodeInvalidInput)
		msg = "request body too large"
	}
	writeError(w, r, status, code, msg)
}

func writeError(w http.ResponseWriter, r *http.Request, status int, code, msg string) {
	writeJSON(w, status, errorResponse{
		Error:     errorBody{Code: code, Message: msg},
		RequestID: RequestIDFromContext(r.Context()),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
