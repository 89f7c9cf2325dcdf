package handler

import (
	"net/http"

	"github.com/codewave/webhost/internal/modules/model"
	"github.com/codewave/webhost/internal/modules/serializer"
	"github.com/codewave/webhost/internal/modules/service"
	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	svc service.ProjectService
}

func NewProjectHandler(s service.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: s}
}

// ListProjects godoc
//
//	@Summary		List projects
//	@Description	List every project record
//	@Tags			project
//	@Produce		json
//	@Success		200	{array}		model.Project
//	@Failure		500	{object}	serializer.ErrorResponse
//	@Router			/api/projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.svc.List(c.Request.Context())
	if err != nil {
		serializer.Abort(c, err)
		return
	}
	if projects == nil {
		projects = []model.Project{}
	}
	c.JSON(http.StatusOK, projects)
}

// UpsertProject godoc
//
//	@Summary		Save project
//	@Description	Insert a project record, or replace the one with the same name
//	@Tags			project
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		model.Project	true	"Project record"
//	@Success		200		{object}	serializer.Response
//	@Failure		400		{object}	serializer.ErrorResponse
//	@Router			/api/projects [post]
func (h *ProjectHandler) UpsertProject(c *gin.Context) {
	var p model.Project
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid project record", err))
		return
	}

	if err := h.svc.Upsert(c.Request.Context(), &p); err != nil {
		serializer.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.OK("Project saved"))
}

// DeleteProject godoc
//
//	@Summary		Delete project
//	@Description	Delete a project record and its files
//	@Tags			project
//	@Produce		json
//	@Param			name	path		string	true	"Project name"
//	@Success		200		{object}	serializer.Response
//	@Failure		500		{object}	serializer.ErrorResponse
//	@Router			/api/projects/{name} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	name := c.Param("name")
	if err := h.svc.Delete(c.Request.Context(), name); err != nil {
		serializer.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.OK("Project deleted"))
}

// ListFiles godoc
//
//	@Summary		List project files
//	@Description	List the files currently in a project directory
//	@Tags			project
//	@Produce		json
//	@Param			name	path	string	true	"Project name"
//	@Success		200		{array}		model.StoredFile
//	@Failure		404		{object}	serializer.ErrorResponse
//	@Router			/api/project/{name}/files [get]
func (h *ProjectHandler) ListFiles(c *gin.Context) {
	files, err := h.svc.ListFiles(c.Request.Context(), c.Param("name"))
	if err != nil {
		serializer.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, files)
}
