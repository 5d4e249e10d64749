package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/mind-engage/mindengage-cognition/internal/rbac"
)

func TestIssueAndParse(t *testing.T) {
	a := NewAuthService("s3cret")
	tok, err := a.IssueJWT("alice", RolePlayer)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	c, err := a.Parse(tok)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if c.Sub != "alice" || c.Role != RolePlayer {
		t.Fatalf("claims = %+v", c)
	}
	if _, err := NewAuthService("other").Parse(tok); !errors.Is(err, ErrBadToken) {
		t.Fatalf("wrong key err = %v", err)
	}
}

func TestJWTMiddleware(t *testing.T) {
	a := NewAuthService("s3cret")
	var gotSub, gotRole string
	h := JWTMiddleware(a)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSub = SubjectFromContext(r.Context())
		gotRole = rbac.RoleFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("no bearer status = %d", rec.Code)
	}

	tok, _ := a.IssueJWT("bob", RoleAdmin)
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK || gotSub != "bob" || gotRole != RoleAdmin {
		t.Fatalf("status=%d sub=%q role=%q", rec.Code, gotSub, gotRole)
	}
}

func TestLoginHandler(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	a := NewAuthService("s3cret")
	h := LoginHandler(a, LoginOptions{DevLogin: true, AdminUser: "admin", AdminPassHash: string(hash)})

	cases := []struct {
		body     string
		wantCode int
		wantRole string
	}{
		{`{"username":"alice","password":"alice"}`, http.StatusOK, RolePlayer},
		{`{"username":"alice","password":"nope"}`, http.StatusUnauthorized, ""},
		{`{"username":"admin","password":"hunter2"}`, http.StatusOK, RoleAdmin},
		{`{"username":"admin","password":"admin"}`, http.StatusUnauthorized, ""},
		{`{"username":"","password":""}`, http.StatusUnauthorized, ""},
		{`{"username":"guest|6f1c1a52-5d0e-4a55-9c5e-0d6f6d1b2a10","password":"guest|6f1c1a52-5d0e-4a55-9c5e-0d6f6d1b2a10"}`, http.StatusUnauthorized, ""},
		{`not json`, http.StatusBadRequest, ""},
	}
	for _, c := range cases {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest("POST", "/auth/login", strings.NewReader(c.body)))
		if rec.Code != c.wantCode {
			t.Fatalf("%s: status = %d, want %d", c.body, rec.Code, c.wantCode)
		}
		if c.wantRole == "" {
			continue
		}
		var out map[string]string
		if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
			t.Fatalf("%s: decode: %v", c.body, err)
		}
		claims, err := a.Parse(out["access_token"])
		if err != nil || claims.Role != c.wantRole {
			t.Fatalf("%s: claims = %+v, %v", c.body, claims, err)
		}
	}

	noDev := LoginHandler(a, LoginOptions{})
	rec := httptest.NewRecorder()
	noDev.ServeHTTP(rec, httptest.NewRequest("POST", "/auth/login", strings.NewReader(`{"username":"alice","password":"alice"}`)))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("dev login disabled: status = %d", rec.Code)
	}
}
