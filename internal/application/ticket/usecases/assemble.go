package usecases

import (
	"context"

	"flowdesk/internal/application/ticket/dto"
	userdto "flowdesk/internal/application/user/dto"
	"flowdesk/internal/domain/ticket"
	"flowdesk/internal/domain/user"
	"flowdesk/internal/shared/utils/setutil"
)

func toTagDTO(tag *ticket.Tag) dto.TagDTO {
	return dto.TagDTO{
		ID:    tag.ID(),
		Name:  tag.Name(),
		Color: tag.Color(),
	}
}

func toTagDTOs(tags []*ticket.Tag) []dto.TagDTO {
	result := make([]dto.TagDTO, 0, len(tags))
	for _, tag := range tags {
		result = append(result, toTagDTO(tag))
	}
	return result
}

func toUserDTO(u *user.User) userdto.UserDTO {
	return userdto.UserDTO{
		ID:        u.ID(),
		Email:     u.Email(),
		Username:  u.Username(),
		FullName:  u.FullName(),
		Role:      u.Role().String(),
		IsActive:  u.IsActive(),
		CreatedAt: u.CreatedAt(),
	}
}

func toCommentDTO(c *ticket.Comment, author *user.User) dto.CommentDTO {
	result := dto.CommentDTO{
		ID:         c.ID(),
		TicketID:   c.TicketID(),
		AuthorID:   c.AuthorID(),
		Content:    c.Content(),
		IsInternal: c.IsInternal(),
		CreatedAt:  c.CreatedAt(),
		UpdatedAt:  c.UpdatedAt(),
	}
	if author != nil {
		result.Author = toUserDTO(author)
	}
	return result
}

func toTicketDTO(t *ticket.Ticket, tags []*ticket.Tag, users map[uint]*user.User) *dto.TicketDTO {
	comments := make([]dto.CommentDTO, 0, len(t.Comments()))
	for _, c := range t.Comments() {
		comments = append(comments, toCommentDTO(c, users[c.AuthorID()]))
	}

	result := &dto.TicketDTO{
		ID:          t.ID(),
		Title:       t.Title(),
		Description: t.Description(),
		Status:      t.Status().String(),
		Priority:    t.Priority().String(),
		CreatorID:   t.CreatorID(),
		AssigneeID:  t.AssigneeID(),
		Tags:        toTagDTOs(tags),
		Comments:    comments,
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
		ResolvedAt:  t.ResolvedAt(),
	}

	if creator := users[t.CreatorID()]; creator != nil {
		result.Creator = toUserDTO(creator)
	}
	if aid := t.AssigneeID(); aid != nil {
		if assignee := users[*aid]; assignee != nil {
			assigneeDTO := toUserDTO(assignee)
			result.Assignee = &assigneeDTO
		}
	}

	return result
}

func toTicketSummaryDTO(t *ticket.Ticket, tags []dto.TagDTO, commentCount int64, users map[uint]*user.User) dto.TicketSummaryDTO {
	if tags == nil {
		tags = []dto.TagDTO{}
	}

	result := dto.TicketSummaryDTO{
		ID:           t.ID(),
		Title:        t.Title(),
		Status:       t.Status().String(),
		Priority:     t.Priority().String(),
		CreatorID:    t.CreatorID(),
		AssigneeID:   t.AssigneeID(),
		Tags:         tags,
		CommentCount: commentCount,
		CreatedAt:    t.CreatedAt(),
		UpdatedAt:    t.UpdatedAt(),
		ResolvedAt:   t.ResolvedAt(),
	}

	if creator := users[t.CreatorID()]; creator != nil {
		result.Creator = toUserDTO(creator)
	}
	if aid := t.AssigneeID(); aid != nil {
		if assignee := users[*aid]; assignee != nil {
			assigneeDTO := toUserDTO(assignee)
			result.Assignee = &assigneeDTO
		}
	}

	return result
}

// collectTicketUserIDs gathers every user a ticket response embeds: the
// creator, the assignee when set, and each comment's author.
func collectTicketUserIDs(set *setutil.UintSet, t *ticket.Ticket) {
	set.Add(t.CreatorID())
	if aid := t.AssigneeID(); aid != nil {
		set.Add(*aid)
	}
	for _, c := range t.Comments() {
		set.Add(c.AuthorID())
	}
}

func loadUsersByID(ctx context.Context, repo user.UserRepository, ids []uint) (map[uint]*user.User, error) {
	users, err := repo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[uint]*user.User, len(users))
	for _, u := range users {
		byID[u.ID()] = u
	}
	return byID, nil
}
