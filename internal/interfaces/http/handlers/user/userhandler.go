// Package user provides HTTP handlers for user lookups.
package user

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"flowdesk/internal/application/user/usecases"
	"flowdesk/internal/interfaces/http/middleware"
	"flowdesk/internal/shared/errors"
	"flowdesk/internal/shared/logger"
	"flowdesk/internal/shared/utils"
)

type UserHandler struct {
	getUserUC   usecases.GetUserExecutor
	listUsersUC usecases.ListUsersExecutor
	logger      logger.Interface
}

func NewUserHandler(
	getUserUC usecases.GetUserExecutor,
	listUsersUC usecases.ListUsersExecutor,
) *UserHandler {
	return &UserHandler{
		getUserUC:   getUserUC,
		listUsersUC: listUsersUC,
		logger:      logger.NewLogger(),
	}
}

// Me handles GET /users/me
func (h *UserHandler) Me(c *gin.Context) {
	userID := c.GetUint(middleware.ContextKeyUserID)

	result, err := h.getUserUC.Execute(c.Request.Context(), usecases.GetUserQuery{UserID: userID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetUser handles GET /users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid user id"))
		return
	}

	result, err := h.getUserUC.Execute(c.Request.Context(), usecases.GetUserQuery{UserID: uint(id)})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(c *gin.Context) {
	result, err := h.listUsersUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
