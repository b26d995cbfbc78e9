package ticket

import (
	"encoding/json"
	"strconv"

	"github.com/gin-gonic/gin"

	"flowdesk/internal/application/ticket/usecases"
	"flowdesk/internal/shared/errors"
)

type CreateTicketRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	AssigneeID  *uint  `json:"assignee_id"`
	TagIDs      []uint `json:"tag_ids"`
}

func (r *CreateTicketRequest) ToCommand(creatorID uint) usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		Title:       r.Title,
		Description: r.Description,
		Status:      r.Status,
		Priority:    r.Priority,
		CreatorID:   creatorID,
		AssigneeID:  r.AssigneeID,
		TagIDs:      r.TagIDs,
	}
}

// OptionalUint distinguishes an absent JSON field from an explicit null:
// null clears the value, absence leaves it untouched.
type OptionalUint struct {
	Set   bool
	Value *uint
}

func (o *OptionalUint) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	var v uint
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

type UpdateTicketRequest struct {
	Title       *string      `json:"title"`
	Description *string      `json:"description"`
	Status      *string      `json:"status"`
	Priority    *string      `json:"priority"`
	AssigneeID  OptionalUint `json:"assignee_id"`
	TagIDs      []uint       `json:"tag_ids"`
}

func (r *UpdateTicketRequest) ToCommand(ticketID, requesterID uint, requesterRole string) usecases.UpdateTicketCommand {
	return usecases.UpdateTicketCommand{
		TicketID:       ticketID,
		RequesterID:    requesterID,
		RequesterRole:  requesterRole,
		Title:          r.Title,
		Description:    r.Description,
		Status:         r.Status,
		Priority:       r.Priority,
		AssigneeID:     r.AssigneeID.Value,
		UpdateAssignee: r.AssigneeID.Set,
		TagIDs:         r.TagIDs,
	}
}

type AddCommentRequest struct {
	Content    string `json:"content" binding:"required"`
	IsInternal bool   `json:"is_internal"`
}

func parseTicketID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid ticket id")
	}
	return uint(id), nil
}

func parseListTicketsQuery(c *gin.Context) (usecases.ListTicketsQuery, error) {
	query := usecases.ListTicketsQuery{}

	if v := c.Query("status"); v != "" {
		query.Status = &v
	}
	if v := c.Query("priority"); v != "" {
		query.Priority = &v
	}

	if v := c.Query("creator_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return query, errors.NewValidationError("invalid creator_id")
		}
		creatorID := uint(id)
		query.CreatorID = &creatorID
	}
	if v := c.Query("assignee_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return query, errors.NewValidationError("invalid assignee_id")
		}
		assigneeID := uint(id)
		query.AssigneeID = &assigneeID
	}

	if v := c.Query("offset"); v != "" {
		offset, err := strconv.Atoi(v)
		if err != nil || offset < 0 {
			return query, errors.NewValidationError("invalid offset")
		}
		query.Offset = offset
	}
	if v := c.Query("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 0 {
			return query, errors.NewValidationError("invalid limit")
		}
		query.Limit = limit
	}

	return query, nil
}
