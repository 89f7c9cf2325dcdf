package handler

import (
	"embed"
	"html/template"
	"net/http"
	"strings"

	"github.com/codewave/webhost/internal/modules/serializer"
	"github.com/codewave/webhost/internal/modules/service"
	"github.com/codewave/webhost/internal/pkg/apperr"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Pages parses the HTML pages rendered by SiteHandler.
func Pages() *template.Template {
	return template.Must(template.New("").ParseFS(templatesFS, "templates/*.html"))
}

type SiteHandler struct {
	sites    service.SiteService
	projects service.ProjectService
	log      *zap.Logger
}

func NewSiteHandler(sites service.SiteService, projects service.ProjectService, log *zap.Logger) *SiteHandler {
	return &SiteHandler{
		sites:    sites,
		projects: projects,
		log:      log,
	}
}

// Landing renders the home page with the known projects.
func (h *SiteHandler) Landing(c *gin.Context) {
	projects, err := h.projects.List(c.Request.Context())
	if err != nil {
		h.log.Sugar().Warnw("list projects for landing page", "err", err)
	}
	c.HTML(http.StatusOK, "landing.html", gin.H{
		"Title":    "Home",
		"Projects": projects,
	})
}

// Serve handles every path no other route claims: the first segment names
// the project, the rest is a file inside it.
func (h *SiteHandler) Serve(c *gin.Context) {
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead ||
		strings.HasPrefix(c.Request.URL.Path, "/api/") {
		c.JSON(http.StatusNotFound, serializer.ErrorResponse{Error: "Not found"})
		return
	}

	trimmed := strings.TrimPrefix(c.Request.URL.Path, "/")
	if trimmed == "" {
		h.Landing(c)
		return
	}
	project, rest, hasSlash := strings.Cut(trimmed, "/")

	state, err := h.sites.Resolve(c.Request.Context(), project)
	if err != nil {
		h.log.Sugar().Errorw("resolve project", "project", project, "err", err)
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}

	switch state {
	case service.SiteNotFound:
		h.page(c, "project_not_found.html", "Project not found", project, "")
		return
	case service.SiteMissingEntryPoint:
		h.page(c, "missing_entry.html", "Missing index.html", project, "")
		return
	}

	if !hasSlash {
		target := "/" + project + "/"
		if c.Request.URL.RawQuery != "" {
			target += "?" + c.Request.URL.RawQuery
		}
		c.Redirect(http.StatusMovedPermanently, target)
		return
	}

	f, info, err := h.sites.Open(c.Request.Context(), project, rest)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindNotFound {
			h.page(c, "file_not_found.html", "File not found", project, rest)
			return
		}
		h.log.Sugar().Errorw("open site file", "project", project, "path", rest, "err", err)
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}
	defer f.Close()

	http.ServeContent(c.Writer, c.Request, info.Name(), info.ModTime(), f)
}

func (h *SiteHandler) page(c *gin.Context, name, title, project, path string) {
	c.HTML(http.StatusNotFound, name, gin.H{
		"Title":   title,
		"Project": project,
		"Path":    path,
	})
}
