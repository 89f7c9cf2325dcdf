package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/codewave/webhost/internal/pkg/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestGitHubServer(t *testing.T, routes map[string]func(w http.ResponseWriter)) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer ghp_test", r.Header.Get("Authorization"))
		h, ok := routes[r.Method+" "+r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"Not Found"}`))
			return
		}
		h(w)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestGitHubClient(url string) *GitHubClient {
	return &GitHubClient{BaseURL: url, Token: "ghp_test", HTTPClient: &http.Client{}, Logger: zap.NewNop()}
}

func respond(status int, body string) func(w http.ResponseWriter) {
	return func(w http.ResponseWriter) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

func TestGitHubClient_CheckFork(t *testing.T) {
	tests := []struct {
		name   string
		routes map[string]func(w http.ResponseWriter)
		exists bool
	}{
		{
			name: "fork exists",
			routes: map[string]func(w http.ResponseWriter){
				"GET /user":             respond(http.StatusOK, `{"login":"alice"}`),
				"GET /repos/alice/site": respond(http.StatusOK, `{"full_name":"alice/site","fork":true,"parent":{"full_name":"codewave/site"}}`),
			},
			exists: true,
		},
		{
			name: "no repository",
			routes: map[string]func(w http.ResponseWriter){
				"GET /user": respond(http.StatusOK, `{"login":"alice"}`),
			},
			exists: false,
		},
		{
			name: "same name but not a fork",
			routes: map[string]func(w http.ResponseWriter){
				"GET /user":             respond(http.StatusOK, `{"login":"alice"}`),
				"GET /repos/alice/site": respond(http.StatusOK, `{"full_name":"alice/site","fork":false}`),
			},
			exists: false,
		},
		{
			name: "fork of another parent",
			routes: map[string]func(w http.ResponseWriter){
				"GET /user":             respond(http.StatusOK, `{"login":"alice"}`),
				"GET /repos/alice/site": respond(http.StatusOK, `{"full_name":"alice/site","fork":true,"parent":{"full_name":"other/site"}}`),
			},
			exists: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestGitHubServer(t, tt.routes)
			status, err := newTestGitHubClient(srv.URL).CheckFork(context.Background(), "codewave", "site")
			require.NoError(t, err)
			assert.Equal(t, tt.exists, status.Exists)
		})
	}
}

func TestGitHubClient_CheckFork_Unauthorized(t *testing.T) {
	srv := newTestGitHubServer(t, map[string]func(w http.ResponseWriter){
		"GET /user": respond(http.StatusUnauthorized, `{"message":"Bad credentials"}`),
	})

	_, err := newTestGitHubClient(srv.URL).CheckFork(context.Background(), "codewave", "site")
	assert.ErrorIs(t, err, apperr.ErrUpstream)
}

func TestGitHubClient_CreateFork(t *testing.T) {
	srv := newTestGitHubServer(t, map[string]func(w http.ResponseWriter){
		"POST /repos/codewave/site/forks": respond(http.StatusAccepted, `{"full_name":"alice/site","html_url":"https://github.com/alice/site","fork":true}`),
	})

	fork, err := newTestGitHubClient(srv.URL).CreateFork(context.Background(), "codewave", "site")
	require.NoError(t, err)
	assert.Equal(t, "alice/site", fork.FullName)
	assert.Equal(t, "https://github.com/alice/site", fork.HTMLURL)
}

func TestGitHubClient_CreateFork_Forbidden(t *testing.T) {
	srv := newTestGitHubServer(t, map[string]func(w http.ResponseWriter){
		"POST /repos/codewave/site/forks": respond(http.StatusForbidden, `{"message":"forbidden"}`),
	})

	_, err := newTestGitHubClient(srv.URL).CreateFork(context.Background(), "codewave", "site")
	assert.ErrorIs(t, err, apperr.ErrUpstream)
}
