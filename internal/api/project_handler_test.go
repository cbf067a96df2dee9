package api

import (
	"net/http"
	"testing"

	"gorm.io/datatypes"

	"portfolio/internal/database"
)

func TestCreateProject_MissingFields(t *testing.T) {
	router, db, token := setupAPI(t)

	w := doRequest(t, router, http.MethodPost, "/api/projects", map[string]any{
		"title": "Portfolio Site",
	}, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}

	var body struct {
		Errors []string `json:"errors"`
	}
	decodeBody(t, w, &body)
	want := []string{"description", "shortDescription"}
	if len(body.Errors) != len(want) {
		t.Fatalf("errors = %v, want %v", body.Errors, want)
	}
	for i, field := range want {
		if body.Errors[i] != field {
			t.Fatalf("errors[%d] = %q, want %q", i, body.Errors[i], field)
		}
	}
	if n := countRows(t, db, &database.Project{}); n != 0 {
		t.Fatalf("project rows = %d, want 0", n)
	}
}

func TestCreateProject_DefaultsEmptyTechStack(t *testing.T) {
	router, _, token := setupAPI(t)

	w := doRequest(t, router, http.MethodPost, "/api/projects", map[string]any{
		"title":            "Portfolio Site",
		"description":      "A personal portfolio website",
		"shortDescription": "Portfolio",
	}, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d: %s", w.Code, http.StatusCreated, w.Body.String())
	}

	var body struct {
		Project database.Project `json:"project"`
	}
	decodeBody(t, w, &body)
	if body.Project.TechStack == nil {
		t.Fatal("techStack is null, want empty array")
	}
	if body.Project.Featured {
		t.Fatal("featured = true for unspecified field, want false")
	}
}

func TestListProjects_FeaturedFilterAndOrder(t *testing.T) {
	router, db, _ := setupAPI(t)

	seed := []database.Project{
		{Title: "C", Description: "d", ShortDescription: "s", Order: 2, Featured: true, TechStack: datatypes.NewJSONSlice([]string{})},
		{Title: "A", Description: "d", ShortDescription: "s", Order: 1, Featured: true, TechStack: datatypes.NewJSONSlice([]string{})},
		{Title: "B", Description: "d", ShortDescription: "s", Order: 1, Featured: false, TechStack: datatypes.NewJSONSlice([]string{})},
	}
	for i := range seed {
		if err := db.Create(&seed[i]).Error; err != nil {
			t.Fatalf("seed project: %v", err)
		}
	}

	w := doRequest(t, router, http.MethodGet, "/api/projects?featured=true", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	var featured []database.Project
	decodeBody(t, w, &featured)
	if len(featured) != 2 {
		t.Fatalf("featured projects = %d, want 2", len(featured))
	}
	if featured[0].Title != "A" || featured[1].Title != "C" {
		t.Fatalf("order = [%s, %s], want [A, C]", featured[0].Title, featured[1].Title)
	}

	w = doRequest(t, router, http.MethodGet, "/api/projects", nil, "")
	var all []database.Project
	decodeBody(t, w, &all)
	if len(all) != 3 {
		t.Fatalf("projects = %d, want 3", len(all))
	}
}

func TestUpdateProject_PartialFields(t *testing.T) {
	router, db, token := setupAPI(t)

	project := database.Project{
		Title:            "Old Title",
		Description:      "Old description",
		ShortDescription: "Old",
		Featured:         true,
		TechStack:        datatypes.NewJSONSlice([]string{"Go"}),
	}
	if err := db.Create(&project).Error; err != nil {
		t.Fatalf("seed project: %v", err)
	}

	w := doRequest(t, router, http.MethodPut, "/api/projects/1", map[string]any{
		"title":    "New Title",
		"featured": false,
	}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", w.Code, http.StatusOK, w.Body.String())
	}

	var stored database.Project
	if err := db.First(&stored, project.ID).Error; err != nil {
		t.Fatalf("reload project: %v", err)
	}
	if stored.Title != "New Title" {
		t.Fatalf("title = %q, want %q", stored.Title, "New Title")
	}
	if stored.Featured {
		t.Fatal("featured not overwritten by explicit false")
	}
	if stored.Description != "Old description" {
		t.Fatalf("description = %q, want untouched", stored.Description)
	}
	if len(stored.TechStack) != 1 || stored.TechStack[0] != "Go" {
		t.Fatalf("techStack = %v, want untouched [Go]", stored.TechStack)
	}
}

func TestProject_NotFound(t *testing.T) {
	router, _, token := setupAPI(t)

	for _, path := range []string{"/api/projects/999", "/api/projects/not-a-number"} {
		w := doRequest(t, router, http.MethodGet, path, nil, "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("GET %s status = %d, want %d", path, w.Code, http.StatusNotFound)
		}
		w = doRequest(t, router, http.MethodPut, path, map[string]any{"title": "x"}, token)
		if w.Code != http.StatusNotFound {
			t.Fatalf("PUT %s status = %d, want %d", path, w.Code, http.StatusNotFound)
		}
		w = doRequest(t, router, http.MethodDelete, path, nil, token)
		if w.Code != http.StatusNotFound {
			t.Fatalf("DELETE %s status = %d, want %d", path, w.Code, http.StatusNotFound)
		}
	}
}
