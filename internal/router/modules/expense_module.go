package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"quotidepense-be/internal/container"
	handlers "quotidepense-be/internal/interface/http"
	"quotidepense-be/internal/interface/middleware"
	"quotidepense-be/pkg/helpers"
)

// ExpenseModule wires the protected expense CRUD and aggregation routes.
type ExpenseModule struct {
	Handler *handlers.ExpenseHandler
	JWT     *helpers.JWTManager
}

func NewExpenseModule(h *handlers.ExpenseHandler, jwt *helpers.JWTManager) *ExpenseModule {
	return &ExpenseModule{Handler: h, JWT: jwt}
}

func (m *ExpenseModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	auth.Use(
		middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), nil),
		middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil),
	)
	{
		auth.POST("/expenses", m.Handler.Create)
		auth.GET("/expenses", m.Handler.List)
		// static route before the :id params
		auth.GET("/expenses/stats", m.Handler.Stats)
		auth.PUT("/expenses/:id", m.Handler.Update)
		auth.DELETE("/expenses/:id", m.Handler.Delete)
	}
}
