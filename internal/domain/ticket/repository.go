package ticket

import (
	"context"

	vo "flowdesk/internal/domain/ticket/valueobjects"
)

// Pagination bounds for List. Limits are enforced by the repository so every
// caller gets the same window regardless of how the request arrived.
const (
	DefaultListLimit = 100
	MaxListLimit     = 1000
)

type TicketRepository interface {
	// Save persists a new ticket together with its initial tag links.
	// An unknown tag id fails the whole operation.
	Save(ctx context.Context, t *Ticket) error
	Update(ctx context.Context, t *Ticket) error
	// Delete removes the ticket along with its comments and tag links.
	Delete(ctx context.Context, ticketID uint) error
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	List(ctx context.Context, filter TicketFilter) ([]*Ticket, int64, error)
	AddTagLinks(ctx context.Context, ticketID uint, tagIDs []uint) error
	RemoveTagLinks(ctx context.Context, ticketID uint, tagIDs []uint) error
	CountCommentsByTicketIDs(ctx context.Context, ticketIDs []uint) (map[uint]int64, error)
}

type TicketFilter struct {
	Status     *vo.TicketStatus
	Priority   *vo.Priority
	CreatorID  *uint
	AssigneeID *uint
	Offset     int
	Limit      int
}

type CommentRepository interface {
	Save(ctx context.Context, comment *Comment) error
	GetByTicketID(ctx context.Context, ticketID uint) ([]*Comment, error)
}

type TagRepository interface {
	Save(ctx context.Context, tag *Tag) error
	GetByIDs(ctx context.Context, ids []uint) ([]*Tag, error)
	GetByTicketID(ctx context.Context, ticketID uint) ([]*Tag, error)
	List(ctx context.Context) ([]*Tag, error)
}
