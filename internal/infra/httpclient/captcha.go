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

// CaptchaClient verifies reCAPTCHA tokens against the siteverify endpoint.
type CaptchaClient struct {
	VerifyURL  string
	Secret     string
	HTTPClient *http.Client
	Logger     *zap.Logger
}

func NewCaptchaClient(cfg *config.Config, log *zap.Logger) *CaptchaClient {
	return &CaptchaClient{
		VerifyURL: cfg.Captcha.VerifyURL,
		Secret:    cfg.Captcha.Secret,
		HTTPClient: &http.Client{
			Timeout: time.Duration(cfg.Captcha.TimeoutSec) * time.Second,
		},
		Logger: log,
	}
}

// CaptchaResult is the siteverify response body
type CaptchaResult struct {
	Success     bool     `json:"success"`
	ChallengeTS string   `json:"challenge_ts,omitempty"`
	Hostname    string   `json:"hostname,omitempty"`
	ErrorCodes  []string `json:"error-codes,omitempty"`
}

// Verify posts the token to the verify endpoint. A rejected token is not an
// error; only transport and decoding failures are.
func (c *CaptchaClient) Verify(ctx context.Context, token, remoteIP string) (*CaptchaResult, error) {
	form := url.Values{}
	form.Set("secret", c.Secret)
	form.Set("response", token)
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.VerifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, apperr.Upstream("captcha verification unavailable", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperr.Upstream("captcha verification unavailable", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.Logger.Error("siteverify request failed",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, apperr.Upstream("captcha verification failed", fmt.Errorf("status %d", resp.StatusCode))
	}

	var result CaptchaResult
	if err := sonic.Unmarshal(body, &result); err != nil {
		return nil, apperr.Upstream("captcha verification failed", fmt.Errorf("unmarshal response: %w", err))
	}
	return &result, nil
}
