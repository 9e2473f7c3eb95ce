package contact

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"soluciones-site/api/pkg/i18n"
	"soluciones-site/api/pkg/middleware"
)

// maxRequestBody limits the size of the submit request body to prevent abuse.
const maxRequestBody = 1 << 20 // 1MB

// submitRequest is the JSON body of a submission: the form fields plus
// the language the visitor has the site toggled to.
type submitRequest struct {
	Lang string `json:"lang"`
	FormFields
}

// HandleSubmit runs the submission workflow for one contact form post.
// Validation failures, transport failures and the honeypot drop are all
// business-level outcomes returned as 200 with the status record; only
// a malformed request or an overlapping submission gets an error status
// code.
func (s *Service) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	rid := middleware.ReqID(r)

	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)

	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Warn("failed to decode submit body", "requestId", rid, "error", err)
		writeErrorJSON(w, "INVALID_BODY", "invalid request body", http.StatusBadRequest)
		return
	}

	lang := req.Lang
	if !s.tr.Supported(lang) {
		lang = i18n.DefaultLang
	}

	outcome, err := s.workflow.Submit(r.Context(), lang, req.FormFields)
	if err != nil {
		if errors.Is(err, ErrSubmissionInFlight) {
			slog.Warn("rejecting overlapping submission", "requestId", rid)
			writeErrorJSON(w, "SUBMISSION_IN_FLIGHT", s.tr.Translate(lang, "contact.error.in_flight"), http.StatusConflict)
			return
		}
		slog.Error("submission failed", "requestId", rid, "error", err)
		writeErrorJSON(w, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	s.countOutcome(outcome.Status.Kind)

	payload, err := json.Marshal(outcome)
	if err != nil {
		slog.Error("failed to marshal outcome", "requestId", rid, "error", err)
		writeErrorJSON(w, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(payload); err != nil {
		slog.Error("failed to write response", "requestId", rid, "error", err)
	}
}

// countOutcome records the attempt in the submissions counter, mapping
// the silent drop to its own label so bot traffic is visible to
// operators without being visible to bots.
func (s *Service) countOutcome(kind StatusKind) {
	if s.submissions == nil {
		return
	}
	label := string(kind)
	if kind == StatusNone {
		label = "dropped"
	}
	s.submissions.WithLabelValues(label).Inc()
}

// writeErrorJSON writes a structured JSON error response with a
// machine-readable code and a human-readable message.
func writeErrorJSON(w http.ResponseWriter, errCode, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{"code": errCode, "message": message})
}
