package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the uniform error payload for every failed request:
// {timestamp, status, error, message, path}, with per-field validation
// messages under "errors" when present.
type ErrorBody struct {
	Timestamp string `json:"timestamp"`
	Status    int    `json:"status"`
	Error     string `json:"error"`
	Message   string `json:"message"`
	Path      string `json:"path"`
	Errors    any    `json:"errors,omitempty"`
}

func Error(c *gin.Context, status int, message string, details any) {
	c.JSON(status, ErrorBody{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Status:    status,
		Error:     http.StatusText(status),
		Message:   message,
		Path:      c.Request.URL.Path,
		Errors:    details,
	})
}
