package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"quotidepense-be/internal/container"
	handlers "quotidepense-be/internal/interface/http"
	"quotidepense-be/internal/interface/middleware"
	"quotidepense-be/pkg/helpers"
)

// FeedbackModule wires the protected feedback intake routes.
type FeedbackModule struct {
	Handler *handlers.FeedbackHandler
	JWT     *helpers.JWTManager
}

func NewFeedbackModule(h *handlers.FeedbackHandler, jwt *helpers.JWTManager) *FeedbackModule {
	return &FeedbackModule{Handler: h, JWT: jwt}
}

func (m *FeedbackModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/feedback", m.Handler.Submit)
		auth.GET("/feedback", m.Handler.List)
	}
}
