package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	auth "github.com/mind-engage/mindengage-cognition/internal/auth/middleware"
	"github.com/mind-engage/mindengage-cognition/internal/personality"
	"github.com/mind-engage/mindengage-cognition/internal/platform/logger"
	"github.com/mind-engage/mindengage-cognition/internal/profile"
)

type axisInfo struct {
	Axis personality.Axis `json:"axis"`
	personality.Pole
}

// GET /personality/questions
func QuestionsHandler() http.HandlerFunc {
	axes := make([]axisInfo, 0, len(personality.Axes))
	for _, ax := range personality.Axes {
		axes = append(axes, axisInfo{Axis: ax, Pole: personality.Poles[ax]})
	}
	body := map[string]any{
		"questions":  personality.Questions,
		"scale":      personality.Scale,
		"dimensions": axes,
	}
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, body)
	}
}

// POST /personality  { "answers": { "1": 2, "2": -1, ... } }
func SubmitPersonalityHandler(svc *profile.Service, log *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Answers personality.Answers `json:"answers"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		p, saved, err := svc.SubmitPersonality(r.Context(), auth.SubjectFromContext(r.Context()), req.Answers)
		if err != nil {
			writeErr(w, log, err)
			return
		}
		view := profile.PersonalityView{ResultID: saved.ID, Profile: p, TakenAt: saved.CreatedAt}
		if rec, ok := personality.Lookup(p.Type); ok {
			view.Record = &rec
		}
		writeJSON(w, http.StatusCreated, view)
	}
}

// GET /personality
func LatestPersonalityHandler(svc *profile.Service, log *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, err := svc.LatestPersonality(r.Context(), targetUser(r))
		if err != nil {
			writeErr(w, log, err)
			return
		}
		writeJSON(w, http.StatusOK, v)
	}
}

// GET /personality/types/{code}
func PersonalityTypeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, ok := personality.Lookup(strings.ToUpper(chi.URLParam(r, "code")))
		if !ok {
			http.Error(w, "unknown type", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, rec)
	}
}
