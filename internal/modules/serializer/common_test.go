package serializer

import (
	"errors"
	"net/http"
	"testing"

	"github.com/codewave/webhost/internal/pkg/apperr"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestErrorFrom(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"validation", apperr.Validation("missing files"), http.StatusBadRequest, "missing files"},
		{"unsupported", apperr.UnsupportedType("file type not allowed: a.exe"), http.StatusBadRequest, "file type not allowed: a.exe"},
		{"too large", apperr.PayloadTooLarge("file too large: a.png"), http.StatusBadRequest, "file too large: a.png"},
		{"not found", apperr.NotFound("File not found"), http.StatusNotFound, "File not found"},
		{"io", apperr.IO("write project store", errors.New("disk full")), http.StatusInternalServerError, "write project store"},
		{"upstream", apperr.Upstream("captcha verification failed", errors.New("timeout")), http.StatusBadGateway, "captcha verification failed"},
		{"untyped", errors.New("boom"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := ErrorFrom(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, body.Error)
			assert.NotEmpty(t, body.Details)
		})
	}
}

func TestErr_ReleaseModeHidesDetails(t *testing.T) {
	gin.SetMode(gin.ReleaseMode)
	defer gin.SetMode(gin.TestMode)

	res := Err("internal server error", errors.New("secret path /var/lib"))
	assert.Empty(t, res.Details)
}
