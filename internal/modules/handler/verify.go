package handler

import (
	"context"
	"net/http"

	"github.com/codewave/webhost/internal/infra/httpclient"
	"github.com/codewave/webhost/internal/modules/serializer"
	"github.com/gin-gonic/gin"
)

type CaptchaVerifier interface {
	Verify(ctx context.Context, token, remoteIP string) (*httpclient.CaptchaResult, error)
}

type ForkClient interface {
	CheckFork(ctx context.Context, owner, repo string) (*httpclient.ForkStatus, error)
	CreateFork(ctx context.Context, owner, repo string) (*httpclient.Repository, error)
}

type VerifyHandler struct {
	captcha CaptchaVerifier
	github  ForkClient
}

func NewVerifyHandler(captcha CaptchaVerifier, github ForkClient) *VerifyHandler {
	return &VerifyHandler{
		captcha: captcha,
		github:  github,
	}
}

type VerifyCaptchaReq struct {
	Token string `json:"token"`
}

type VerifyCaptchaResp struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

// VerifyCaptcha godoc
//
//	@Summary		Verify reCAPTCHA
//	@Description	Check a reCAPTCHA token with the verification service
//	@Tags			verify
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		handler.VerifyCaptchaReq	true	"Token"
//	@Success		200		{object}	handler.VerifyCaptchaResp
//	@Failure		400		{object}	handler.VerifyCaptchaResp
//	@Failure		502		{object}	handler.VerifyCaptchaResp
//	@Router			/verify-recaptcha [post]
func (h *VerifyHandler) VerifyCaptcha(c *gin.Context) {
	var req VerifyCaptchaReq
	_ = c.ShouldBindJSON(&req)
	if req.Token == "" {
		c.JSON(http.StatusBadRequest, VerifyCaptchaResp{Error: "Missing token"})
		return
	}

	result, err := h.captcha.Verify(c.Request.Context(), req.Token, c.ClientIP())
	if err != nil {
		status, body := serializer.ErrorFrom(err)
		resp := VerifyCaptchaResp{Error: body.Error}
		if body.Details != "" {
			resp.Details = body.Details
		}
		c.JSON(status, resp)
		return
	}
	if !result.Success {
		c.JSON(http.StatusOK, VerifyCaptchaResp{Error: "reCAPTCHA failed", Details: result.ErrorCodes})
		return
	}
	c.JSON(http.StatusOK, VerifyCaptchaResp{Success: true, Message: "reCAPTCHA verified"})
}

type ForkReq struct {
	Owner string `form:"owner" json:"owner" binding:"required"`
	Repo  string `form:"repo" json:"repo" binding:"required"`
}

// CheckFork godoc
//
//	@Summary		Check fork
//	@Description	Report whether the configured GitHub user already forked owner/repo
//	@Tags			fork
//	@Produce		json
//	@Param			owner	query		string	true	"Repository owner"
//	@Param			repo	query		string	true	"Repository name"
//	@Success		200		{object}	httpclient.ForkStatus
//	@Failure		502		{object}	serializer.ErrorResponse
//	@Router			/api/fork [get]
func (h *VerifyHandler) CheckFork(c *gin.Context) {
	var req ForkReq
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("owner and repo are required", err))
		return
	}

	status, err := h.github.CheckFork(c.Request.Context(), req.Owner, req.Repo)
	if err != nil {
		serializer.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// CreateFork godoc
//
//	@Summary		Create fork
//	@Description	Fork owner/repo into the configured GitHub account
//	@Tags			fork
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		handler.ForkReq	true	"Repository"
//	@Success		202		{object}	httpclient.Repository
//	@Failure		502		{object}	serializer.ErrorResponse
//	@Router			/api/fork [post]
func (h *VerifyHandler) CreateFork(c *gin.Context) {
	var req ForkReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("owner and repo are required", err))
		return
	}

	fork, err := h.github.CreateFork(c.Request.Context(), req.Owner, req.Repo)
	if err != nil {
		serializer.Abort(c, err)
		return
	}
	c.JSON(http.StatusAccepted, fork)
}
