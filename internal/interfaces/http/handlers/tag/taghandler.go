// Package tag provides HTTP handlers for tag management.
package tag

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"flowdesk/internal/application/ticket/usecases"
	"flowdesk/internal/shared/logger"
	"flowdesk/internal/shared/utils"
)

type CreateTagRequest struct {
	Name  string `json:"name" binding:"required"`
	Color string `json:"color"`
}

type TagHandler struct {
	createTagUC usecases.CreateTagExecutor
	listTagsUC  usecases.ListTagsExecutor
	logger      logger.Interface
}

func NewTagHandler(
	createTagUC usecases.CreateTagExecutor,
	listTagsUC usecases.ListTagsExecutor,
) *TagHandler {
	return &TagHandler{
		createTagUC: createTagUC,
		listTagsUC:  listTagsUC,
		logger:      logger.NewLogger(),
	}
}

// CreateTag handles POST /tags
func (h *TagHandler) CreateTag(c *gin.Context) {
	var req CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create tag", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createTagUC.Execute(c.Request.Context(), usecases.CreateTagCommand{
		Name:  req.Name,
		Color: req.Color,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Tag created successfully")
}

// ListTags handles GET /tags
func (h *TagHandler) ListTags(c *gin.Context) {
	result, err := h.listTagsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
