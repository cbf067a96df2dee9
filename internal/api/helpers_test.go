package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"portfolio/internal/auth"
	"portfolio/internal/config"
	"portfolio/internal/database"
)

const (
	testAdminEmail    = "admin@example.com"
	testAdminPassword = "test-password"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(database.AllModels()...); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// setupAPI builds the full engine with routes, middleware and an
// authenticated admin token, backed by an in-memory database.
func setupAPI(t *testing.T) (*gin.Engine, *gorm.DB, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := newTestDB(t)

	authService, err := auth.NewService("test-secret", time.Hour, testAdminEmail, testAdminPassword)
	if err != nil {
		t.Fatalf("new auth service: %v", err)
	}

	cfg := &config.Config{API: config.APIConfig{Port: 5000, CORSOrigin: "http://localhost:3000"}}
	router := NewRouter(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	RegisterRoutes(router, db, authService)

	token, err := authService.GenerateToken()
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	return router, db, token
}

// doRequest performs one request against the engine. A non-nil body is
// JSON-encoded; a non-empty token is sent as a bearer credential.
func doRequest(t *testing.T, router *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

// newForeignToken returns a structurally valid token signed with a
// secret the API under test does not trust.
func newForeignToken(t *testing.T) string {
	t.Helper()
	foreign, err := auth.NewService("other-secret", time.Hour, testAdminEmail, testAdminPassword)
	if err != nil {
		t.Fatalf("new auth service: %v", err)
	}
	token, err := foreign.GenerateToken()
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return token
}

func countRows(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var count int64
	if err := db.Model(model).Count(&count).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}
	return count
}
