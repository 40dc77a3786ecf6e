package router

import "github.com/gin-gonic/gin"

// Module is a self-contained route group (users, expenses, feedback, ...)
// that attaches its endpoints and per-route middleware to the root group.
type Module interface {
	Register(rg *gin.RouterGroup)
}
