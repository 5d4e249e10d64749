package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	auth "github.com/mind-engage/mindengage-cognition/internal/auth/middleware"
	"github.com/mind-engage/mindengage-cognition/internal/platform/logger"
	"github.com/mind-engage/mindengage-cognition/internal/profile"
	"github.com/mind-engage/mindengage-cognition/internal/results"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeErr maps domain errors to status codes. Only 500s are logged; the
// client sees a generic message for those.
func writeErr(w http.ResponseWriter, log *logger.Logger, err error) {
	switch {
	case errors.Is(err, results.ErrInvalid),
		errors.Is(err, profile.ErrIncompleteAnswers),
		errors.Is(err, profile.ErrInvalidAnswer):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, results.ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	default:
		log.Error("request failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// targetUser is the {userID} URL param when the route has one, otherwise
// the token subject. Routes with {userID} are guarded by rbac.RequireOwnerOr.
func targetUser(r *http.Request) string {
	if id := chi.URLParam(r, "userID"); id != "" {
		return id
	}
	return auth.SubjectFromContext(r.Context())
}

// IsOwner reports whether the {userID} in the path is the caller.
func IsOwner(r *http.Request) bool {
	sub := auth.SubjectFromContext(r.Context())
	return sub != "" && chi.URLParam(r, "userID") == sub
}

func queryInt(r *http.Request, key string, def int) (int, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return def, nil
	}
	return strconv.Atoi(v)
}
