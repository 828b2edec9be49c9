package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "ticketdesk/internal/interfaces/http/handlers/ticket"
)

type TicketRouteConfig struct {
	TicketHandler *tickethandlers.TicketHandler
}

func SetupTicketRoutes(api *gin.RouterGroup, config *TicketRouteConfig) {
	tickets := api.Group("/tickets")
	{
		// Collection operations (no ID parameter)
		tickets.GET("", config.TicketHandler.ListTickets)
		tickets.POST("", config.TicketHandler.CreateTicket)

		tickets.GET("/:id/comments", config.TicketHandler.ListComments)
		tickets.POST("/:id/comments", config.TicketHandler.AddComment)

		tickets.GET("/:id", config.TicketHandler.GetTicket)
		tickets.PUT("/:id", config.TicketHandler.UpdateTicket)
		tickets.DELETE("/:id", config.TicketHandler.DeleteTicket)
	}
}
