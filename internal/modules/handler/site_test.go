package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/codewave/webhost/internal/modules/model"
	"github.com/codewave/webhost/internal/modules/repo"
	"github.com/codewave/webhost/internal/modules/service"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupSiteRouter(t *testing.T) (*gin.Engine, *MockProjectService) {
	ctx := context.Background()
	content := repo.NewContentRepo(t.TempDir())
	require.NoError(t, content.EnsureDir(ctx, "demo"))
	_, err := content.WriteFile(ctx, "demo", "index.html", []byte("<h1>Demo</h1>"))
	require.NoError(t, err)
	_, err = content.WriteFile(ctx, "demo", "style.css", []byte("body{color:red}"))
	require.NoError(t, err)
	require.NoError(t, content.EnsureDir(ctx, "draft"))
	_, err = content.WriteFile(ctx, "draft", "about.html", []byte("about"))
	require.NoError(t, err)

	projects := &MockProjectService{}
	handler := NewSiteHandler(service.NewSiteService(content), projects, zap.NewNop())
	router := setupRouter()
	router.GET("/", handler.Landing)
	router.NoRoute(handler.Serve)
	return router, projects
}

func TestSiteHandler_Serve(t *testing.T) {
	router, _ := setupSiteRouter(t)

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
		expectedBody   string
		expectedType   string
	}{
		{"entry point", "GET", "/demo/", http.StatusOK, "<h1>Demo</h1>", "text/html; charset=utf-8"},
		{"explicit entry point", "GET", "/demo/index.html", http.StatusOK, "<h1>Demo</h1>", "text/html; charset=utf-8"},
		{"asset", "GET", "/demo/style.css", http.StatusOK, "body{color:red}", "text/css; charset=utf-8"},
		{"head request", "HEAD", "/demo/style.css", http.StatusOK, "", "text/css; charset=utf-8"},
		{"missing asset", "GET", "/demo/app.js", http.StatusNotFound, "File not found", ""},
		{"traversal", "GET", "/demo/..%2f..%2fetc/passwd", http.StatusNotFound, "", ""},
		{"unknown project", "GET", "/ghost/", http.StatusNotFound, "Project not found", ""},
		{"invalid project name", "GET", "/Ghost%20Site/", http.StatusNotFound, "Project not found", ""},
		{"missing entry point", "GET", "/draft/", http.StatusNotFound, "Missing index.html", ""},
		{"missing entry point file", "GET", "/draft/about.html", http.StatusNotFound, "Missing index.html", ""},
		{"non-GET method", "POST", "/demo/", http.StatusNotFound, `"error":"Not found"`, ""},
		{"unknown api route", "GET", "/api/nothing", http.StatusNotFound, `"error":"Not found"`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, w.Body.String(), tt.expectedBody)
			}
			if tt.expectedType != "" {
				assert.Equal(t, tt.expectedType, w.Header().Get("Content-Type"))
			}
		})
	}
}

func TestSiteHandler_Serve_DistinctNotFoundPages(t *testing.T) {
	router, _ := setupSiteRouter(t)

	missing := httptest.NewRecorder()
	router.ServeHTTP(missing, httptest.NewRequest("GET", "/ghost/", nil))
	noEntry := httptest.NewRecorder()
	router.ServeHTTP(noEntry, httptest.NewRequest("GET", "/draft/", nil))

	assert.Equal(t, http.StatusNotFound, missing.Code)
	assert.Equal(t, http.StatusNotFound, noEntry.Code)
	assert.NotEqual(t, missing.Body.String(), noEntry.Body.String())
}

func TestSiteHandler_Serve_RedirectsToTrailingSlash(t *testing.T) {
	router, _ := setupSiteRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/demo?v=2", nil))

	assert.Equal(t, http.StatusMovedPermanently, w.Code)
	assert.Equal(t, "/demo/?v=2", w.Header().Get("Location"))
}

func TestSiteHandler_Landing(t *testing.T) {
	router, projects := setupSiteRouter(t)
	projects.On("List", mock.Anything).Return([]model.Project{{Name: "demo", Files: []model.FileSummary{{Name: "index.html"}}}}, nil).Once()
	projects.On("List", mock.Anything).Return(nil, errors.New("store down")).Once()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `href="/demo/"`)

	// the landing page still renders when the store is unreadable
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "No projects yet")
	projects.AssertExpectations(t)
}

func TestSiteHandler_Serve_ResolveError(t *testing.T) {
	sites := &MockSiteService{}
	sites.On("Resolve", mock.Anything, "demo").Return(service.SiteNotFound, errors.New("permission denied"))
	handler := NewSiteHandler(sites, &MockProjectService{}, zap.NewNop())
	router := setupRouter()
	router.NoRoute(handler.Serve)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/demo/", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	sites.AssertExpectations(t)
}
