package api

import (
	"net/http"
	"testing"
	"time"

	"portfolio/internal/database"
)

func TestCreateCertification_MissingFields(t *testing.T) {
	router, db, token := setupAPI(t)

	w := doRequest(t, router, http.MethodPost, "/api/certifications", map[string]any{
		"title": "AWS Certified Developer",
	}, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}

	var body struct {
		Errors []string `json:"errors"`
	}
	decodeBody(t, w, &body)
	want := []string{"issuer", "issueDate"}
	if len(body.Errors) != len(want) {
		t.Fatalf("errors = %v, want %v", body.Errors, want)
	}
	for i, field := range want {
		if body.Errors[i] != field {
			t.Fatalf("errors[%d] = %q, want %q", i, body.Errors[i], field)
		}
	}
	if n := countRows(t, db, &database.Certification{}); n != 0 {
		t.Fatalf("certification rows = %d, want 0", n)
	}
}

func TestListCertifications_VisibleFilter(t *testing.T) {
	router, db, token := setupAPI(t)

	seed := []database.Certification{
		{Title: "Visible A", Issuer: "AWS", IssueDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Visible: true, Order: 1},
		{Title: "Hidden", Issuer: "GCP", IssueDate: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), Visible: false, Order: 1},
		{Title: "Visible B", Issuer: "Azure", IssueDate: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), Visible: true, Order: 2},
	}
	for i := range seed {
		if err := db.Create(&seed[i]).Error; err != nil {
			t.Fatalf("seed certification: %v", err)
		}
	}

	w := doRequest(t, router, http.MethodGet, "/api/certifications", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	var visible []database.Certification
	decodeBody(t, w, &visible)
	if len(visible) != 2 {
		t.Fatalf("visible certifications = %d, want 2", len(visible))
	}
	if visible[0].Title != "Visible A" || visible[1].Title != "Visible B" {
		t.Fatalf("order = [%s, %s], want [Visible A, Visible B]", visible[0].Title, visible[1].Title)
	}

	w = doRequest(t, router, http.MethodGet, "/api/certifications/admin/all", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("admin list status = %d, want %d", w.Code, http.StatusOK)
	}
	var all []database.Certification
	decodeBody(t, w, &all)
	if len(all) != 3 {
		t.Fatalf("admin certifications = %d, want 3", len(all))
	}
}

func TestGetCertification_AdminRoute(t *testing.T) {
	router, db, token := setupAPI(t)

	certification := database.Certification{
		Title:     "Hidden",
		Issuer:    "AWS",
		IssueDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Visible:   false,
	}
	if err := db.Create(&certification).Error; err != nil {
		t.Fatalf("seed certification: %v", err)
	}

	w := doRequest(t, router, http.MethodGet, "/api/certifications/admin/1", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", w.Code, http.StatusOK, w.Body.String())
	}
	var got database.Certification
	decodeBody(t, w, &got)
	if got.Title != "Hidden" {
		t.Fatalf("title = %q, want Hidden", got.Title)
	}

	w = doRequest(t, router, http.MethodGet, "/api/certifications/admin/999", nil, token)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestUpdateCertification_ToggleVisibility(t *testing.T) {
	router, db, token := setupAPI(t)

	certification := database.Certification{
		Title:     "AWS Certified Developer",
		Issuer:    "AWS",
		IssueDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Visible:   true,
	}
	if err := db.Create(&certification).Error; err != nil {
		t.Fatalf("seed certification: %v", err)
	}

	w := doRequest(t, router, http.MethodPut, "/api/certifications/1", map[string]any{
		"visible": false,
	}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", w.Code, http.StatusOK, w.Body.String())
	}

	var stored database.Certification
	if err := db.First(&stored, certification.ID).Error; err != nil {
		t.Fatalf("reload certification: %v", err)
	}
	if stored.Visible {
		t.Fatal("visible not overwritten by explicit false")
	}
	if stored.Title != "AWS Certified Developer" {
		t.Fatalf("title = %q, want untouched", stored.Title)
	}
}
