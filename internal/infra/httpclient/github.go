package httpclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/codewave/webhost/internal/config"
	"github.com/codewave/webhost/internal/pkg/apperr"
	"go.uber.org/zap"
)

// GitHubClient checks for and creates forks using the REST API as the token's user.
type GitHubClient struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
	Logger     *zap.Logger
}

func NewGitHubClient(cfg *config.Config, log *zap.Logger) *GitHubClient {
	return &GitHubClient{
		BaseURL: strings.TrimRight(cfg.GitHub.BaseURL, "/"),
		Token:   cfg.GitHub.Token,
		HTTPClient: &http.Client{
			Timeout: time.Duration(cfg.GitHub.TimeoutSec) * time.Second,
		},
		Logger: log,
	}
}

// Repository is the subset of the GitHub repository object we care about
type Repository struct {
	FullName string      `json:"full_name"`
	HTMLURL  string      `json:"html_url"`
	Fork     bool        `json:"fork"`
	Parent   *Repository `json:"parent,omitempty"`
}

// ForkStatus reports whether the authenticated user already has a fork of owner/repo
type ForkStatus struct {
	Exists bool        `json:"exists"`
	Fork   *Repository `json:"fork,omitempty"`
}

type githubUser struct {
	Login string `json:"login"`
}

// CheckFork looks for <user>/<repo> and reports it as the fork when it is a
// fork whose parent is owner/repo.
func (c *GitHubClient) CheckFork(ctx context.Context, owner, repo string) (*ForkStatus, error) {
	var user githubUser
	if _, err := c.do(ctx, http.MethodGet, "/user", &user, http.StatusOK); err != nil {
		return nil, err
	}

	var candidate Repository
	status, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/repos/%s/%s", url.PathEscape(user.Login), url.PathEscape(repo)), &candidate, http.StatusOK, http.StatusNotFound)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound || !candidate.Fork {
		return &ForkStatus{Exists: false}, nil
	}
	if candidate.Parent != nil && !strings.EqualFold(candidate.Parent.FullName, owner+"/"+repo) {
		return &ForkStatus{Exists: false}, nil
	}
	return &ForkStatus{Exists: true, Fork: &candidate}, nil
}

// CreateFork asks GitHub to fork owner/repo. GitHub answers 202 and creates the fork asynchronously.
func (c *GitHubClient) CreateFork(ctx context.Context, owner, repo string) (*Repository, error) {
	var fork Repository
	if _, err := c.do(ctx, http.MethodPost, fmt.Sprintf("/repos/%s/%s/forks", url.PathEscape(owner), url.PathEscape(repo)), &fork, http.StatusAccepted, http.StatusOK); err != nil {
		return nil, err
	}
	return &fork, nil
}

func (c *GitHubClient) do(ctx context.Context, method, path string, out interface{}, accept ...int) (int, error) {
	httpReq, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, nil)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/vnd.github+json")
	httpReq.Header.Set("X-GitHub-Api-Version", "2022-11-28")
	if c.Token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return 0, apperr.Upstream("github unavailable", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, apperr.Upstream("github unavailable", err)
	}

	ok := false
	for _, code := range accept {
		if resp.StatusCode == code {
			ok = true
			break
		}
	}
	if !ok {
		c.Logger.Error("github request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return resp.StatusCode, apperr.Upstream("github request failed", fmt.Errorf("%s %s: status %d", method, path, resp.StatusCode))
	}

	if resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusAccepted {
		if err := sonic.Unmarshal(body, out); err != nil {
			return resp.StatusCode, apperr.Upstream("github request failed", fmt.Errorf("unmarshal response: %w", err))
		}
	}
	return resp.StatusCode, nil
}
