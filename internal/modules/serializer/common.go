package serializer

import (
	"fmt"

	"github.com/codewave/webhost/internal/pkg/apperr"
	"github.com/gin-gonic/gin"
)

// Response is the body of successful mutations.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ErrorResponse is the body of every failed JSON request.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// OK
func OK(msg string) Response {
	return Response{Success: true, Message: msg}
}

// Err
func Err(msg string, err error) ErrorResponse {
	res := ErrorResponse{Error: msg}
	// development mode, show error detail
	if err != nil && gin.Mode() != gin.ReleaseMode {
		res.Details = fmt.Sprintf("%+v", err)
	}
	return res
}

// ParamErr
func ParamErr(msg string, err error) ErrorResponse {
	if msg == "" {
		msg = "parameter error"
	}
	return Err(msg, err)
}

// ErrorFrom maps err to its HTTP status and body.
func ErrorFrom(err error) (int, ErrorResponse) {
	return apperr.KindOf(err).Status(), Err(apperr.Message(err), err)
}

// Abort writes err as JSON and stops the handler chain.
func Abort(c *gin.Context, err error) {
	status, body := ErrorFrom(err)
	c.AbortWithStatusJSON(status, body)
}
