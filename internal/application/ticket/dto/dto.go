// Package dto defines data transfer objects for the ticket application layer.
package dto

import (
	"time"

	userdto "flowdesk/internal/application/user/dto"
)

type TicketDTO struct {
	ID          uint             `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Status      string           `json:"status"`
	Priority    string           `json:"priority"`
	CreatorID   uint             `json:"creator_id"`
	Creator     userdto.UserDTO  `json:"creator"`
	AssigneeID  *uint            `json:"assignee_id"`
	Assignee    *userdto.UserDTO `json:"assignee"`
	Tags        []TagDTO         `json:"tags"`
	Comments    []CommentDTO     `json:"comments"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
	ResolvedAt  *time.Time       `json:"resolved_at"`
}

// TicketSummaryDTO is the list representation: no comment bodies, only a count.
type TicketSummaryDTO struct {
	ID           uint             `json:"id"`
	Title        string           `json:"title"`
	Status       string           `json:"status"`
	Priority     string           `json:"priority"`
	CreatorID    uint             `json:"creator_id"`
	Creator      userdto.UserDTO  `json:"creator"`
	AssigneeID   *uint            `json:"assignee_id"`
	Assignee     *userdto.UserDTO `json:"assignee"`
	Tags         []TagDTO         `json:"tags"`
	CommentCount int64            `json:"comment_count"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
	ResolvedAt   *time.Time       `json:"resolved_at"`
}

type CommentDTO struct {
	ID         uint            `json:"id"`
	TicketID   uint            `json:"ticket_id"`
	AuthorID   uint            `json:"author_id"`
	Author     userdto.UserDTO `json:"author"`
	Content    string          `json:"content"`
	IsInternal bool            `json:"is_internal"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

type TagDTO struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}
