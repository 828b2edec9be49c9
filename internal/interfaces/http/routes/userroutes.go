package routes

import (
	"github.com/gin-gonic/gin"

	"ticketdesk/internal/interfaces/http/handlers"
)

// UserRouteConfig holds dependencies for user routes.
type UserRouteConfig struct {
	UserHandler *handlers.UserHandler
}

// SetupUserRoutes configures user routes.
func SetupUserRoutes(api *gin.RouterGroup, cfg *UserRouteConfig) {
	users := api.Group("/users")
	{
		users.GET("", cfg.UserHandler.ListUsers)
	}
}
