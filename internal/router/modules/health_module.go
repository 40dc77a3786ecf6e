package modules

import (
	"github.com/gin-gonic/gin"

	handlers "quotidepense-be/internal/interface/http"
)

// HealthModule exposes the public liveness probe.
type HealthModule struct{}

func NewHealthModule() *HealthModule { return &HealthModule{} }

func (m *HealthModule) Register(rg *gin.RouterGroup) {
	rg.GET("/health", handlers.Health)
}
