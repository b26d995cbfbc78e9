package usecases

import (
	"context"

	"flowdesk/internal/application/ticket/dto"
	"flowdesk/internal/domain/ticket"
	"flowdesk/internal/domain/user"
	"flowdesk/internal/shared/errors"
	"flowdesk/internal/shared/logger"
)

type AddCommentCommand struct {
	TicketID   uint
	AuthorID   uint
	AuthorRole string
	Content    string
	IsInternal bool
}

type AddCommentUseCase struct {
	ticketRepo  ticket.TicketRepository
	commentRepo ticket.CommentRepository
	userRepo    user.UserRepository
	txManager   TransactionManager
	notifier    UpdateNotifier
	logger      logger.Interface
}

func NewAddCommentUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	userRepo user.UserRepository,
	txManager TransactionManager,
	notifier UpdateNotifier,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		userRepo:    userRepo,
		txManager:   txManager,
		notifier:    notifier,
		logger:      logger,
	}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*dto.CommentDTO, error) {
	uc.logger.Infow("executing add comment use case", "ticket_id", cmd.TicketID, "author_id", cmd.AuthorID)

	if _, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID); err != nil {
		return nil, err
	}

	role, err := user.NewRole(cmd.AuthorRole)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if cmd.IsInternal && !role.IsStaff() {
		return nil, errors.NewForbiddenError("only staff may add internal comments")
	}

	author, err := uc.userRepo.GetByID(ctx, cmd.AuthorID)
	if err != nil {
		uc.logger.Errorw("failed to load comment author", "author_id", cmd.AuthorID, "error", err)
		return nil, err
	}

	comment, err := ticket.NewComment(cmd.TicketID, cmd.AuthorID, cmd.Content, cmd.IsInternal)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.commentRepo.Save(txCtx, comment)
	}); err != nil {
		uc.logger.Errorw("failed to save comment", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	result := toCommentDTO(comment, author)

	uc.logger.Infow("comment added successfully", "ticket_id", cmd.TicketID, "comment_id", comment.ID())
	uc.notifier.SendTicketUpdate(cmd.TicketID, UpdateTypeCommentAdded, result)

	return &result, nil
}
