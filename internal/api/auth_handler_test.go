package api

import (
	"net/http"
	"testing"

	"portfolio/internal/database"
)

func TestLogin(t *testing.T) {
	router, _, _ := setupAPI(t)

	// Wrong password.
	w := doRequest(t, router, http.MethodPost, "/api/auth/login", map[string]any{
		"email":    testAdminEmail,
		"password": "wrong",
	}, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}

	// Wrong email.
	w = doRequest(t, router, http.MethodPost, "/api/auth/login", map[string]any{
		"email":    "intruder@example.com",
		"password": testAdminPassword,
	}, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}

	// Missing fields.
	w = doRequest(t, router, http.MethodPost, "/api/auth/login", map[string]any{
		"email": testAdminEmail,
	}, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}

	// Valid credential yields a token the protected routes accept.
	w = doRequest(t, router, http.MethodPost, "/api/auth/login", map[string]any{
		"email":    testAdminEmail,
		"password": testAdminPassword,
	}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", w.Code, http.StatusOK, w.Body.String())
	}
	var body struct {
		Token string `json:"token"`
	}
	decodeBody(t, w, &body)
	if body.Token == "" {
		t.Fatal("login returned an empty token")
	}

	w = doRequest(t, router, http.MethodGet, "/api/auth/me", nil, body.Token)
	if w.Code != http.StatusOK {
		t.Fatalf("me status = %d, want %d: %s", w.Code, http.StatusOK, w.Body.String())
	}
	var me struct {
		Email string `json:"email"`
		Role  string `json:"role"`
	}
	decodeBody(t, w, &me)
	if me.Email != testAdminEmail || me.Role != "admin" {
		t.Fatalf("me = %+v, want email %q role admin", me, testAdminEmail)
	}
}

// Every mutating route must refuse anonymous and garbage credentials
// without touching the database.
func TestProtectedRoutes_RequireToken(t *testing.T) {
	router, db, _ := setupAPI(t)

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/blogs"},
		{http.MethodPut, "/api/blogs/1"},
		{http.MethodDelete, "/api/blogs/1"},
		{http.MethodGet, "/api/blogs/admin/all"},
		{http.MethodPost, "/api/projects"},
		{http.MethodPut, "/api/projects/1"},
		{http.MethodDelete, "/api/projects/1"},
		{http.MethodPost, "/api/skills"},
		{http.MethodPost, "/api/education"},
		{http.MethodPost, "/api/experience"},
		{http.MethodPost, "/api/certifications"},
		{http.MethodGet, "/api/certifications/admin/1"},
		{http.MethodPost, "/api/reviews"},
		{http.MethodPost, "/api/tags"},
		{http.MethodDelete, "/api/tags/react"},
		{http.MethodPut, "/api/profile"},
		{http.MethodGet, "/api/auth/me"},
	}

	for _, token := range []string{"", "not-a-jwt"} {
		for _, route := range routes {
			w := doRequest(t, router, route.method, route.path, map[string]any{"title": "x"}, token)
			if w.Code != http.StatusUnauthorized {
				t.Fatalf("%s %s with token %q: status = %d, want %d",
					route.method, route.path, token, w.Code, http.StatusUnauthorized)
			}
		}
	}

	for _, model := range database.AllModels() {
		if n := countRows(t, db, model); n != 0 {
			t.Fatalf("%T rows = %d, want 0 after rejected requests", model, n)
		}
	}
}

func TestTokenSignedWithOtherSecret_Rejected(t *testing.T) {
	router, _, _ := setupAPI(t)

	forged := newForeignToken(t)
	w := doRequest(t, router, http.MethodGet, "/api/auth/me", nil, forged)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}
