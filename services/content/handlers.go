package content

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5"

	"soluciones-site/api/pkg/middleware"
)

// HandleGetLandingPage loads one language of the site content and
// returns it as JSON. An unknown locale is a 404, not an empty page, so
// the frontend can fall back to its default language explicitly.
func (s *Service) HandleGetLandingPage(w http.ResponseWriter, r *http.Request) {
	rid := middleware.ReqID(r)
	lang := mux.Vars(r)["lang"]
	slog.Debug("returning landing page content", "lang", lang, "requestId", rid)

	page, err := s.storage.GetLandingPage(r.Context(), lang)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			slog.Warn("no content for locale", "lang", lang, "requestId", rid)
			writeErrorJSON(w, "NOT_FOUND", "no content for locale", http.StatusNotFound)
			return
		}
		slog.Error("failed to get landing page", "lang", lang, "requestId", rid, "error", err)
		writeErrorJSON(w, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	payload, err := json.Marshal(page)
	if err != nil {
		slog.Error("failed to marshal landing page", "lang", lang, "requestId", rid, "error", err)
		writeErrorJSON(w, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(payload); err != nil {
		slog.Error("failed to write response", "lang", lang, "requestId", rid, "error", err)
	}
}

// writeErrorJSON writes a structured JSON error response with a
// machine-readable code and a human-readable message.
func writeErrorJSON(w http.ResponseWriter, errCode, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{"code": errCode, "message": message})
}
