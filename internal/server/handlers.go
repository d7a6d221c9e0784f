package server

import (
	"bytes"
	"context"
	"encoding/json"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/tangzhangming/cubit/internal/history"
	"github.com/tangzhangming/cubit/internal/i18n"
	"github.com/tangzhangming/cubit/internal/interpreter"
	"github.com/tangzhangming/cubit/internal/metrics"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// ExecuteRequest is the body of POST /execute.
type ExecuteRequest struct {
	Code string `json:"code"`
}

// ExecuteResponse is the reply of POST /execute. Output and Error are null
// when empty; partial output is kept when the run fails.
type ExecuteResponse struct {
	ID     string  `json:"id"`
	Output *string `json:"output"`
	Result any     `json:"result"`
	Error  *string `json:"error"`
}

// MetricsResponse is the reply of GET /metrics.
type MetricsResponse struct {
	UptimeSeconds float64                     `json:"uptime_seconds"`
	Modules       map[string]metrics.Snapshot `json:"modules"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Errorf("encoding response: %s", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) bool {
	writeJSON(w, http.StatusOK, map[string]any{
		"message": i18n.T(i18n.MsgServerWelcome),
		"version": s.version,
		"endpoints": map[string]string{
			"/":        "API information (this page)",
			"/health":  "Health check endpoint",
			"/execute": "Execute Cubit code (POST)",
			"/metrics": "Per-endpoint request metrics",
			"/history": "Recent executions, when enabled",
		},
	})
	return true
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) bool {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
	return true
}

func (s *Server) handleExecute(w http.ResponseWriter, r *http.Request) bool {
	var req ExecuteRequest
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := decoder.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, i18n.T(i18n.ErrBadRequest, err))
		return false
	}

	resp, entry := s.execute(r.Context(), req.Code)

	if s.history != nil {
		if err := s.history.Record(r.Context(), entry); err != nil {
			log.Errorf("execution %s not recorded: %s", entry.ID, err)
		}
	}

	writeJSON(w, http.StatusOK, resp)
	return resp.Error == nil
}

// execute runs code in a fresh interpreter.
func (s *Server) execute(ctx context.Context, code string) (ExecuteResponse, history.Entry) {
	id := uuid.NewString()
	start := time.Now()

	var out bytes.Buffer
	in := interpreter.New(interpreter.WithOutput(&limitedWriter{buf: &out, limit: s.maxOutput}))

	runCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	v, err := in.RunContext(runCtx, code)
	elapsed := time.Since(start)

	resp := ExecuteResponse{ID: id}
	entry := history.Entry{ID: id, Code: code, Output: out.String(), Duration: elapsed, Created: start}

	if out.Len() > 0 {
		output := out.String()
		resp.Output = &output
	}
	if err != nil {
		msg := err.Error()
		resp.Error = &msg
		entry.Error = msg
		log.Infof("execution %s failed after %s: %s", id, elapsed, msg)
	} else {
		resp.Result = jsonValue(v.Interface())
		log.Debugf("execution %s finished in %s", id, elapsed)
	}
	return resp, entry
}

// jsonValue replaces floats JSON cannot carry with their cubit spelling.
func jsonValue(v any) any {
	switch x := v.(type) {
	case float64:
		if math.IsInf(x, 0) || math.IsNaN(x) {
			return interpreter.NewFloat(x).Repr()
		}
	case []any:
		for i := range x {
			x[i] = jsonValue(x[i])
		}
	}
	return v
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) bool {
	resp := MetricsResponse{
		UptimeSeconds: math.Round(s.metrics.Uptime().Seconds()*100) / 100,
		Modules:       map[string]metrics.Snapshot{},
	}
	for _, name := range s.metrics.Modules() {
		resp.Modules[name] = s.metrics.Snapshot(name)
	}
	writeJSON(w, http.StatusOK, resp)
	return true
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) bool {
	if s.history == nil {
		writeError(w, http.StatusNotFound, i18n.T(i18n.ErrHistoryDisabled))
		return false
	}

	limit := defaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, i18n.T(i18n.ErrBadLimit, raw))
			return false
		}
		limit = min(n, maxHistoryLimit)
	}

	entries, err := s.history.Recent(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, i18n.T(i18n.ErrHistoryFailed, err))
		return false
	}
	writeJSON(w, http.StatusOK, entries)
	return true
}

// limitedWriter fails once more than limit bytes have been written.
type limitedWriter struct {
	buf   *bytes.Buffer
	limit int
}

func (lw *limitedWriter) Write(p []byte) (int, error) {
	if lw.buf.Len()+len(p) > lw.limit {
		return 0, &outputLimitError{limit: lw.limit}
	}
	return lw.buf.Write(p)
}

type outputLimitError struct {
	limit int
}

func (e *outputLimitError) Error() string {
	return i18n.T(i18n.ErrOutputLimit, e.limit)
}
