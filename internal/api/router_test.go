package api_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dom/hxh-catalog/internal/api"
	"github.com/dom/hxh-catalog/internal/config"
	"github.com/dom/hxh-catalog/internal/domain"
	"github.com/dom/hxh-catalog/internal/repository"
	"github.com/dom/hxh-catalog/internal/service"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// brokenRepo fails every call the way a lost connection would.
type brokenRepo struct{}

var errConnection = errors.New("dial tcp 127.0.0.1:5432: connection refused")

func (brokenRepo) List(context.Context) ([]*domain.Character, error) { return nil, errConnection }
func (brokenRepo) GetByID(context.Context, string) (*domain.Character, error) {
	return nil, errConnection
}
func (brokenRepo) Create(context.Context, *domain.Character) error { return errConnection }
func (brokenRepo) Replace(context.Context, string, *domain.Character) (*domain.Character, error) {
	return nil, errConnection
}
func (brokenRepo) Delete(context.Context, string) (*domain.Character, error) {
	return nil, errConnection
}

func newRouter(t *testing.T, backend config.Backend) (http.Handler, *test.Hook) {
	t.Helper()
	log, hook := test.NewNullLogger()
	services := service.NewServices(&repository.Repositories{Character: brokenRepo{}})
	return api.NewRouter(services, backend, log), hook
}

func serve(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRouter_StorageFailures(t *testing.T) {
	router, hook := newRouter(t, config.BackendRelational)
	valid := `{"name":"Gon","image_url":"u"}`

	tests := []struct {
		method  string
		path    string
		body    string
		message string
	}{
		{http.MethodGet, "/characters", "", "Failed to list characters"},
		{http.MethodGet, "/characters/1", "", "Failed to get character"},
		{http.MethodPost, "/characters", valid, "Failed to create character"},
		{http.MethodPut, "/characters/1", valid, "Failed to update character"},
		{http.MethodDelete, "/characters/1", "", "Failed to delete character"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := serve(router, tt.method, tt.path, tt.body)

			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, `{"error":"`+tt.message+`"}`, rec.Body.String())
			assert.NotContains(t, rec.Body.String(), "5432", "engine detail stays in the log")
		})
	}

	var logged bool
	for _, e := range hook.AllEntries() {
		if e.Data["error"] == errConnection {
			logged = true
		}
	}
	assert.True(t, logged, "storage failure is logged")
}

func TestRouter_ValidationBeforeStorage(t *testing.T) {
	router, _ := newRouter(t, config.BackendDocument)

	rec := serve(router, http.MethodPost, "/characters", `{"name":"Gon"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Name and image_url required"}`, rec.Body.String())

	rec = serve(router, http.MethodPut, "/characters/abc", `{"image_url":"u"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Name and image_url required"}`, rec.Body.String())
}

func TestRouter_Info(t *testing.T) {
	tests := []struct {
		backend config.Backend
		message string
	}{
		{config.BackendRelational, "Hunter x Hunter Relational API"},
		{config.BackendDocument, "Hunter x Hunter NoSQL API"},
	}

	for _, tt := range tests {
		t.Run(string(tt.backend), func(t *testing.T) {
			router, _ := newRouter(t, tt.backend)

			rec := serve(router, http.MethodGet, "/", "")
			require.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, `{"message":"`+tt.message+`","backend":"`+string(tt.backend)+`"}`, rec.Body.String())
		})
	}
}

func TestRouter_Plumbing(t *testing.T) {
	router, _ := newRouter(t, config.BackendRelational)

	rec := serve(router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())

	rec = serve(router, http.MethodOptions, "/characters/1", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = serve(router, http.MethodGet, "/villains", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Not found"}`, rec.Body.String())

	rec = serve(router, http.MethodPatch, "/characters/1", "{}")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.JSONEq(t, `{"error":"Method not allowed"}`, rec.Body.String())
}
