package http

import (
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"ticketdesk/internal/interfaces/http/middleware"
	"ticketdesk/internal/interfaces/http/routes"

	_ "ticketdesk/docs"
)

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.CustomLogger(r.log))
	r.engine.Use(middleware.Recovery(r.log))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))

	r.engine.GET("/health", r.hdlrs.healthHandler.HealthCheck)
	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.engine.Group("/api")
	if r.rateLimiter != nil {
		api.Use(r.rateLimiter.Limit())
	}

	routes.SetupAuthRoutes(api, &routes.AuthRouteConfig{
		AuthHandler: r.hdlrs.authHandler,
	})
	routes.SetupUserRoutes(api, &routes.UserRouteConfig{
		UserHandler: r.hdlrs.userHandler,
	})
	routes.SetupTicketRoutes(api, &routes.TicketRouteConfig{
		TicketHandler: r.hdlrs.ticketHandler,
	})
}
