package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	authmw "github.com/mind-engage/mindengage-cognition/internal/auth/middleware"
)

func TestGuestLogin(t *testing.T) {
	a := authmw.NewAuthService("k")
	h := GuestLoginHandler(a, false)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("POST", "/auth/guest", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || !strings.HasPrefix(cookies[0].Value, authmw.GuestPrefix) {
		t.Fatalf("cookies = %+v", cookies)
	}
	var first struct {
		AccessToken string `json:"access_token"`
		Username    string `json:"username"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&first); err != nil {
		t.Fatal(err)
	}
	c, err := a.Parse(first.AccessToken)
	if err != nil || c.Sub != cookies[0].Value || c.Role != authmw.RolePlayer {
		t.Fatalf("claims = %+v, %v", c, err)
	}
	if len(first.Username) != len("guest-")+6 {
		t.Fatalf("username = %q", first.Username)
	}

	// same browser keeps its subject
	req := httptest.NewRequest("POST", "/auth/guest", nil)
	req.AddCookie(cookies[0])
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if got := rec.Result().Cookies()[0].Value; got != cookies[0].Value {
		t.Fatalf("subject changed: %q -> %q", cookies[0].Value, got)
	}

	// forged cookie is replaced
	req = httptest.NewRequest("POST", "/auth/guest", nil)
	req.AddCookie(&http.Cookie{Name: guestCookie, Value: "admin"})
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if got := rec.Result().Cookies()[0].Value; !validGuestID(got) {
		t.Fatalf("forged cookie kept: %q", got)
	}
}
