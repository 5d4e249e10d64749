package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	auth "github.com/mind-engage/mindengage-cognition/internal/auth/middleware"
	"github.com/mind-engage/mindengage-cognition/internal/platform/logger"
	"github.com/mind-engage/mindengage-cognition/internal/profile"
	"github.com/mind-engage/mindengage-cognition/internal/results"
)

const maxListLimit = 500

// POST /results  { "game_id": "reaction", "score": 245, "lower_is_better": true, "meta": {...} }
func RecordResultHandler(svc *profile.Service, log *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			GameID        string         `json:"game_id"`
			Score         *float64       `json:"score"`
			LowerIsBetter bool           `json:"lower_is_better"`
			Meta          map[string]any `json:"meta"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		if req.GameID == "" || req.Score == nil {
			http.Error(w, "game_id and score required", http.StatusBadRequest)
			return
		}
		if req.GameID == results.PersonalityGameID {
			http.Error(w, "use POST /personality", http.StatusBadRequest)
			return
		}
		saved, err := svc.Record(r.Context(), results.GameResult{
			UserID:        auth.SubjectFromContext(r.Context()),
			GameID:        req.GameID,
			Score:         *req.Score,
			LowerIsBetter: req.LowerIsBetter,
			Meta:          req.Meta,
		})
		if err != nil {
			writeErr(w, log, err)
			return
		}
		writeJSON(w, http.StatusCreated, saved)
	}
}

// GET /results?game_id=&limit=
func ListResultsHandler(svc *profile.Service, log *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := queryInt(r, "limit", 0)
		if err != nil || limit < 0 {
			http.Error(w, "bad limit", http.StatusBadRequest)
			return
		}
		if limit > maxListLimit {
			limit = maxListLimit
		}
		list, err := svc.History(r.Context(), targetUser(r), r.URL.Query().Get("game_id"), limit)
		if err != nil {
			writeErr(w, log, err)
			return
		}
		if list == nil {
			list = []results.GameResult{}
		}
		writeJSON(w, http.StatusOK, list)
	}
}

// GET /games/{gameID}/best
func BestScoreHandler(svc *profile.Service, log *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		best, err := svc.Best(r.Context(), targetUser(r), chi.URLParam(r, "gameID"))
		if err != nil {
			writeErr(w, log, err)
			return
		}
		writeJSON(w, http.StatusOK, best)
	}
}

// GET /profile/traits
func TraitReportHandler(svc *profile.Service, log *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rep, err := svc.TraitReport(r.Context(), targetUser(r))
		if err != nil {
			writeErr(w, log, err)
			return
		}
		writeJSON(w, http.StatusOK, rep)
	}
}
