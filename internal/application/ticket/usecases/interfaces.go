package usecases

import (
	"context"

	"flowdesk/internal/application/ticket/dto"
)

// Update types carried in the realtime envelope pushed to clients.
const (
	UpdateTypeTicketCreated = "ticket_created"
	UpdateTypeTicketUpdated = "ticket_updated"
	UpdateTypeTicketDeleted = "ticket_deleted"
	UpdateTypeCommentAdded  = "comment_added"
)

// UpdateNotifier pushes ticket changes to connected clients. Delivery is
// best-effort; implementations must never fail the calling mutation.
type UpdateNotifier interface {
	SendTicketUpdate(ticketID uint, updateType string, data any)
}

// TransactionManager runs a function within a database transaction.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error)
}

type UpdateTicketExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketCommand) (*dto.TicketDTO, error)
}

type DeleteTicketExecutor interface {
	Execute(ctx context.Context, cmd DeleteTicketCommand) error
}

type AddCommentExecutor interface {
	Execute(ctx context.Context, cmd AddCommentCommand) (*dto.CommentDTO, error)
}

type CreateTagExecutor interface {
	Execute(ctx context.Context, cmd CreateTagCommand) (*dto.TagDTO, error)
}

type ListTagsExecutor interface {
	Execute(ctx context.Context) ([]dto.TagDTO, error)
}
