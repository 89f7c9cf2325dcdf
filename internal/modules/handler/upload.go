package handler

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/codewave/webhost/internal/config"
	"github.com/codewave/webhost/internal/modules/serializer"
	"github.com/codewave/webhost/internal/modules/service"
	"github.com/codewave/webhost/internal/pkg/apperr"
	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	svc service.UploadService
	cfg *config.Config
}

func NewUploadHandler(s service.UploadService, cfg *config.Config) *UploadHandler {
	return &UploadHandler{
		svc: s,
		cfg: cfg,
	}
}

// Upload godoc
//
//	@Summary		Upload site files
//	@Description	Upload 1-20 static files under a project name. Replies with a plain text confirmation.
//	@Tags			upload
//	@Accept			multipart/form-data
//	@Produce		plain
//	@Param			project	formData	string	true	"Project name"
//	@Param			files	formData	file	true	"Site files"
//	@Success		200	{string}	string	"confirmation"
//	@Failure		400	{string}	string	"error"
//	@Router			/upload [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	out, err := h.upload(c)
	if err != nil {
		c.String(apperr.KindOf(err).Status(), "Upload failed: %s", apperr.Message(err))
		return
	}
	c.String(http.StatusOK, "Uploaded %d file(s) to project %q. Your site is live at %s", out.FileCount, out.Project, out.URL)
}

// UploadJSON godoc
//
//	@Summary		Upload site files
//	@Description	Same as /upload, but replies with a JSON summary.
//	@Tags			upload
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			project	formData	string	true	"Project name"
//	@Param			files	formData	file	true	"Site files"
//	@Success		200	{object}	service.UploadOutput
//	@Failure		400	{object}	serializer.ErrorResponse
//	@Router			/api/upload [post]
func (h *UploadHandler) UploadJSON(c *gin.Context) {
	out, err := h.upload(c)
	if err != nil {
		serializer.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *UploadHandler) upload(c *gin.Context) (*service.UploadOutput, error) {
	// room for every file at the cap plus form overhead
	limit := h.cfg.Upload.MaxFileSize*int64(h.cfg.Upload.MaxFiles) + 1<<20
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)

	form, err := c.MultipartForm()
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, apperr.PayloadTooLarge(fmt.Sprintf("request larger than %d bytes", limit))
		}
		if errors.Is(err, http.ErrNotMultipart) {
			return nil, apperr.Validation("missing files")
		}
		return nil, apperr.Validation(fmt.Sprintf("invalid multipart form: %v", err))
	}
	defer form.RemoveAll()

	return h.svc.Upload(c.Request.Context(), service.UploadInput{
		Project: firstValue(form, "project"),
		Files:   form.File["files"],
		BaseURL: h.baseURL(c),
	})
}

// baseURL is the configured public URL, or scheme://host of the request.
func (h *UploadHandler) baseURL(c *gin.Context) string {
	if h.cfg.Public.BaseURL != "" {
		return h.cfg.Public.BaseURL
	}
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return scheme + "://" + c.Request.Host
}

func firstValue(form *multipart.Form, key string) string {
	if v := form.Value[key]; len(v) > 0 {
		return v[0]
	}
	return ""
}
