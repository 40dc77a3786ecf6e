package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// The wire contract exposes bare JSON bodies; failures are always
// {"message": ...}, optionally with per-field details on validation errors.

// Error writes the uniform failure body.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

// AbortError writes the failure body and stops the handler chain.
// Used by middleware.
func AbortError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"message": message})
}

// ValidationError writes a 400 with field-level details from binding.
func ValidationError(c *gin.Context, details map[string]string) {
	c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payload", "details": details})
}

// Internal surfaces the underlying error message with a 500.
func Internal(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
}
