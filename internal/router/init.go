package router

import (
	"quotidepense-be/internal/application"
	"quotidepense-be/internal/container"
	pginfra "quotidepense-be/internal/infrastructure/postgres"
	handlers "quotidepense-be/internal/interface/http"
	"quotidepense-be/internal/router/modules"
)

// InitModules builds every feature module from the container singletons and
// registers it with the router registry. Called once during startup.
func InitModules(r *Registry) {
	pool := container.GetPGPool()
	logger := container.GetLogger()
	jwt := container.GetJWT()

	// Keep the interface nil when no publisher was configured so the
	// service skips fan-out instead of calling through a typed nil.
	var pub application.Publisher
	if p := container.GetFeedbackPub(); p != nil {
		pub = p
	}

	userSvc := application.NewUserService(pginfra.NewUserRepository(pool), jwt, logger)
	expenseSvc := application.NewExpenseService(pginfra.NewExpenseRepository(pool), logger)
	feedbackSvc := application.NewFeedbackService(pginfra.NewFeedbackRepository(pool), pub, logger)

	r.Add(modules.NewUserModule(handlers.NewUserHandler(userSvc, logger), jwt))
	r.Add(modules.NewExpenseModule(handlers.NewExpenseHandler(expenseSvc, logger), jwt))
	r.Add(modules.NewFeedbackModule(handlers.NewFeedbackHandler(feedbackSvc, logger), jwt))
	r.Add(modules.NewHealthModule())
	if container.GetConfig().DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
