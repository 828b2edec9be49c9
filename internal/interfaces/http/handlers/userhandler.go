package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ticketdesk/internal/application/user/usecases"
	"ticketdesk/internal/shared/logger"
	"ticketdesk/internal/shared/utils"
)

// UserHandler handles HTTP requests for user operations
type UserHandler struct {
	listUsersUC usecases.ListUsersExecutor
	logger      logger.Interface
}

// NewUserHandler creates a new user handler
func NewUserHandler(listUsersUC usecases.ListUsersExecutor, log logger.Interface) *UserHandler {
	return &UserHandler{
		listUsersUC: listUsersUC,
		logger:      log,
	}
}

// ListUsers handles GET /users
// @Summary List users
// @Description Lists every account, or only those with the given role.
// @Tags users
// @Produce json
// @Param role query string false "Exact role match"
// @Success 200 {object} utils.APIResponse{data=[]dto.UserResponse}
// @Failure 500 {object} utils.APIResponse
// @Router /api/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	result, err := h.listUsersUC.Execute(c.Request.Context(), usecases.ListUsersQuery{Role: c.Query("role")})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
