package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/mind-engage/mindengage-cognition/internal/baseline"
	"github.com/mind-engage/mindengage-cognition/internal/platform/logger"
	syncx "github.com/mind-engage/mindengage-cognition/internal/sync"
)

// EventSource is the read side of the event log.
type EventSource interface {
	Since(ctx context.Context, after int64, limit int) ([]syncx.Event, error)
}

type eventOut struct {
	Seq       int64  `json:"seq"`
	SiteID    string `json:"site_id"`
	Type      string `json:"type"`
	Key       string `json:"key"`
	Data      string `json:"data"`
	CreatedAt int64  `json:"created_at"`
}

// GET /admin/events?after=&limit=  pulls the replication feed in seq order.
func EventsHandler(src EventSource, log *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var after int64
		if v := r.URL.Query().Get("after"); v != "" {
			n, err := strconv.ParseInt(v, 10, 64)
			if err != nil || n < 0 {
				http.Error(w, "bad after", http.StatusBadRequest)
				return
			}
			after = n
		}
		limit, err := queryInt(r, "limit", 100)
		if err != nil || limit <= 0 || limit > maxListLimit {
			http.Error(w, "bad limit", http.StatusBadRequest)
			return
		}
		evs, err := src.Since(r.Context(), after, limit)
		if err != nil {
			writeErr(w, log, err)
			return
		}
		out := make([]eventOut, 0, len(evs))
		next := after
		for _, e := range evs {
			out = append(out, eventOut{e.Seq, e.SiteID, e.Type, e.Key, e.DataJSON, e.CreatedAt})
			next = e.Seq
		}
		writeJSON(w, http.StatusOK, map[string]any{"events": out, "next": next})
	}
}

// GET /admin/baselines  shows the effective table.
func BaselinesHandler(t *baseline.Table) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"baselines": t.Entries()})
	}
}
