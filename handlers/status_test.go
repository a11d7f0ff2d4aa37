package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"

	"hbday/config"
	"hbday/handlers"
	"hbday/middleware"
	"hbday/sessions"
)

// Wires the gate and the auth handlers the way main does and walks a
// full login/logout cycle through real HTTP.
func TestLoginStatusLogoutCycle(t *testing.T) {
	cfg := &config.Config{AdminID: "admin", AdminPW: "correct"}
	store := sessions.NewStore()

	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/admin-login", func(w http.ResponseWriter, r *http.Request) {
		handlers.LoginHandler(w, r, cfg, store)
	}).Methods("POST")
	api.HandleFunc("/admin-logout", func(w http.ResponseWriter, r *http.Request) {
		handlers.LogoutHandler(w, r, store)
	}).Methods("POST")
	api.HandleFunc("/admin-status", handlers.AdminStatus).Methods("GET")
	r.Use(middleware.NewIdentityMiddleware(store).Middleware)

	srv := httptest.NewServer(r)
	defer srv.Close()

	status := func(cookie *http.Cookie) *string {
		t.Helper()
		req, _ := http.NewRequest(http.MethodGet, srv.URL+"/api/admin-status", nil)
		if cookie != nil {
			req.AddCookie(cookie)
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatalf("status request failed: %v", err)
		}
		defer resp.Body.Close()
		var body struct {
			IsAdmin *string `json:"isAdmin"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			t.Fatalf("failed to decode status response: %v", err)
		}
		return body.IsAdmin
	}

	// 1. No cookie: anonymous.
	if got := status(nil); got != nil {
		t.Fatalf("status before login = %q, want null", *got)
	}

	// 2. Login sets the session cookie.
	resp, err := http.Post(srv.URL+"/api/admin-login", "application/json",
		strings.NewReader(`{"username":"admin","password":"correct"}`))
	if err != nil {
		t.Fatalf("login request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	var cookie *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == sessions.CookieName {
			cookie = c
		}
	}
	if cookie == nil {
		t.Fatal("login response carries no adminSession cookie")
	}

	// 3. With the cookie the gate resolves the admin identity.
	if got := status(cookie); got == nil || *got != "admin" {
		t.Fatalf("status after login = %v, want admin", got)
	}

	// 4. Logout revokes the session; the old cookie is anonymous again.
	req, _ := http.NewRequest(http.MethodPost, srv.URL+"/api/admin-logout", nil)
	req.AddCookie(cookie)
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("logout request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("logout status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	if got := status(cookie); got != nil {
		t.Fatalf("status after logout = %q, want null", *got)
	}
	if store.Count() != 0 {
		t.Errorf("store.Count() = %d after logout, want 0", store.Count())
	}
}
