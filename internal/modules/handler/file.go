package handler

import (
	"net/http"

	"github.com/codewave/webhost/internal/modules/serializer"
	"github.com/codewave/webhost/internal/modules/service"
	"github.com/gin-gonic/gin"
)

type FileHandler struct {
	svc service.FileService
}

func NewFileHandler(s service.FileService) *FileHandler {
	return &FileHandler{svc: s}
}

type FileContent struct {
	Content string `json:"content"`
}

type PutFileReq struct {
	Content *string `json:"content" binding:"required"`
}

// GetFile godoc
//
//	@Summary		Read file
//	@Description	Read one file of a project as text
//	@Tags			file
//	@Produce		json
//	@Param			name		path		string	true	"Project name"
//	@Param			filename	path		string	true	"File name"
//	@Success		200			{object}	handler.FileContent
//	@Failure		404			{object}	serializer.ErrorResponse
//	@Router			/api/project/{name}/file/{filename} [get]
func (h *FileHandler) GetFile(c *gin.Context) {
	content, err := h.svc.Get(c.Request.Context(), c.Param("name"), c.Param("filename"))
	if err != nil {
		serializer.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, FileContent{Content: content})
}

// PutFile godoc
//
//	@Summary		Overwrite file
//	@Description	Replace the content of an existing file. Files are never created here.
//	@Tags			file
//	@Accept			json
//	@Produce		json
//	@Param			name		path		string				true	"Project name"
//	@Param			filename	path		string				true	"File name"
//	@Param			payload		body		handler.PutFileReq	true	"New content"
//	@Success		200			{object}	serializer.Response
//	@Failure		404			{object}	serializer.ErrorResponse
//	@Router			/api/project/{name}/file/{filename} [put]
func (h *FileHandler) PutFile(c *gin.Context) {
	var req PutFileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("missing content", err))
		return
	}

	if err := h.svc.Put(c.Request.Context(), c.Param("name"), c.Param("filename"), *req.Content); err != nil {
		serializer.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.OK("File saved"))
}
