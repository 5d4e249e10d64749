package results

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// PersonalityGameID is the game id under which questionnaire outcomes are
// stored. Its Score is always 0; the profile lives in Meta.
const PersonalityGameID = "personality-test"

var (
	ErrNotFound = errors.New("result not found")
	ErrInvalid  = errors.New("invalid result")
)

// GameResult is one completed session. Records are append-only.
type GameResult struct {
	ID            string         `json:"id"`
	UserID        string         `json:"user_id"`
	GameID        string         `json:"game_id"`
	Score         float64        `json:"score"`
	LowerIsBetter bool           `json:"lower_is_better"`
	Meta          map[string]any `json:"meta,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
}

// Validate checks the fields a store needs before persisting r.
func Validate(r GameResult) error {
	switch {
	case r.UserID == "":
		return fmt.Errorf("%w: user_id is required", ErrInvalid)
	case r.GameID == "":
		return fmt.Errorf("%w: game_id is required", ErrInvalid)
	case math.IsNaN(r.Score) || math.IsInf(r.Score, 0):
		return fmt.Errorf("%w: score must be finite", ErrInvalid)
	}
	return nil
}

// Better reports whether a beats b under the given directionality.
func Better(a, b float64, lowerIsBetter bool) bool {
	if lowerIsBetter {
		return a < b
	}
	return a > b
}

// Earlier orders results by CreatedAt then ID, giving a total order that
// does not depend on slice position.
func Earlier(a, b GameResult) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.Before(b.CreatedAt)
	}
	return a.ID < b.ID
}
