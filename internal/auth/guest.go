package auth

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	authmw "github.com/mind-engage/mindengage-cognition/internal/auth/middleware"
)

const (
	guestCookie = "mc_guest_id"
	guestTTL    = 30 * 24 * time.Hour
)

// GuestLoginHandler issues a player token for an anonymous visitor. The
// subject lives in a cookie so the same browser keeps its history.
//
// POST /auth/guest
func GuestLoginHandler(a *authmw.AuthService, secureCookie bool) http.HandlerFunc {
	type out struct {
		AccessToken string `json:"access_token"`
		Username    string `json:"username"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		userID := ""
		if c, err := r.Cookie(guestCookie); err == nil && validGuestID(c.Value) {
			userID = c.Value
		} else {
			userID = authmw.GuestPrefix + uuid.NewString()
		}

		tok, err := a.IssueJWT(userID, authmw.RolePlayer)
		if err != nil {
			http.Error(w, "issue token", http.StatusInternalServerError)
			return
		}
		sameSite := http.SameSiteLaxMode
		if secureCookie {
			sameSite = http.SameSiteNoneMode
		}
		http.SetCookie(w, &http.Cookie{
			Name:     guestCookie,
			Value:    userID,
			Path:     "/",
			HttpOnly: true,
			Secure:   secureCookie,
			SameSite: sameSite,
			Expires:  time.Now().Add(guestTTL),
		})
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(out{AccessToken: tok, Username: GuestName(userID)})
	}
}

// GuestName is the short display name for a guest subject.
func GuestName(userID string) string {
	id := strings.TrimPrefix(userID, authmw.GuestPrefix)
	id = strings.ReplaceAll(id, "-", "")
	if len(id) > 6 {
		id = id[len(id)-6:]
	}
	return "guest-" + id
}

func validGuestID(v string) bool {
	if !strings.HasPrefix(v, authmw.GuestPrefix) {
		return false
	}
	_, err := uuid.Parse(strings.TrimPrefix(v, authmw.GuestPrefix))
	return err == nil
}
