package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/loudent/library/pkg/errors"
)

// Response is the uniform JSON envelope. Code is the business error code
// (0 on success), not the HTTP status; clients switch on it while the
// HTTP status carries the coarse category.
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Success writes a 200 with the payload.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// Error classifies err and writes the matching status and envelope. Only
// the classified category and its safe message reach the client.
func Error(c *gin.Context, err error) {
	appErr := apperrors.Classify(err)
	c.JSON(statusFor(appErr.Code), Response{
		Code:    appErr.Code,
		Message: appErr.Message,
	})
}

// ErrorWithCode writes an explicit code and message.
func ErrorWithCode(c *gin.Context, code int, message string) {
	c.JSON(statusFor(code), Response{
		Code:    code,
		Message: message,
	})
}

// statusFor maps a business error code to its HTTP status.
func statusFor(code int) int {
	switch {
	case code == apperrors.ErrCodeNotFound:
		return http.StatusNotFound
	case code == apperrors.ErrCodeTimeout:
		return http.StatusRequestTimeout
	case code >= 40900 && code < 41000:
		return http.StatusBadRequest
	case code >= 50000:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}
