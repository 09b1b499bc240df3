package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the JSON shape of every failed response.
type ErrorBody struct {
	Error   string   `json:"error"`
	Code    string   `json:"code"`
	Missing []string `json:"missing,omitempty"`
	Details string   `json:"details,omitempty"`
}

// OK sends a 200 response with data as the body
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// --- Error Responses ---

// Error sends body with the given status and stops the handler chain
func Error(c *gin.Context, status int, body ErrorBody) {
	c.AbortWithStatusJSON(status, body)
}

// BadRequest sends a 400 response
func BadRequest(c *gin.Context, code, message string, missing []string) {
	if code == "" {
		code = "BAD_REQUEST"
	}
	Error(c, http.StatusBadRequest, ErrorBody{Error: message, Code: code, Missing: missing})
}

// NotFound sends a 404 response
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "resource not found"
	}
	Error(c, http.StatusNotFound, ErrorBody{Error: message, Code: "NOT_FOUND"})
}

// InternalError sends a 500 response. details is only set by callers in
// development mode.
func InternalError(c *gin.Context, code, message, details string) {
	if message == "" {
		message = "internal server error"
	}
	if code == "" {
		code = "INTERNAL_ERROR"
	}
	Error(c, http.StatusInternalServerError, ErrorBody{Error: message, Code: code, Details: details})
}

// TooManyRequests sends a 429 response
func TooManyRequests(c *gin.Context, message string) {
	if message == "" {
		message = "rate limit exceeded, please try again later"
	}
	Error(c, http.StatusTooManyRequests, ErrorBody{Error: message, Code: "RATE_LIMIT_EXCEEDED"})
}
