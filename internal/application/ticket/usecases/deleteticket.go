package usecases

import (
	"context"

	"flowdesk/internal/domain/ticket"
	"flowdesk/internal/domain/user"
	"flowdesk/internal/shared/errors"
	"flowdesk/internal/shared/logger"
)

type DeleteTicketCommand struct {
	TicketID      uint
	RequesterID   uint
	RequesterRole string
}

type DeleteTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	txManager  TransactionManager
	notifier   UpdateNotifier
	logger     logger.Interface
}

func NewDeleteTicketUseCase(
	ticketRepo ticket.TicketRepository,
	txManager TransactionManager,
	notifier UpdateNotifier,
	logger logger.Interface,
) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		ticketRepo: ticketRepo,
		txManager:  txManager,
		notifier:   notifier,
		logger:     logger,
	}
}

func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) error {
	uc.logger.Infow("executing delete ticket use case", "ticket_id", cmd.TicketID, "requester_id", cmd.RequesterID)

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return err
	}

	role, err := user.NewRole(cmd.RequesterRole)
	if err != nil {
		return errors.NewValidationError(err.Error())
	}
	if !role.IsAdmin() && t.CreatorID() != cmd.RequesterID {
		return errors.NewForbiddenError("only the creator or an admin may delete this ticket")
	}

	// The ticket row, its comments and its tag links go in one transaction.
	if err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.ticketRepo.Delete(txCtx, cmd.TicketID)
	}); err != nil {
		uc.logger.Errorw("failed to delete ticket", "ticket_id", cmd.TicketID, "error", err)
		return err
	}

	uc.logger.Infow("ticket deleted successfully", "ticket_id", cmd.TicketID)
	uc.notifier.SendTicketUpdate(cmd.TicketID, UpdateTypeTicketDeleted, map[string]any{"id": cmd.TicketID})

	return nil
}
