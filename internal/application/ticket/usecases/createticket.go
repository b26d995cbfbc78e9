package usecases

import (
	"context"

	"flowdesk/internal/application/ticket/dto"
	"flowdesk/internal/domain/ticket"
	vo "flowdesk/internal/domain/ticket/valueobjects"
	"flowdesk/internal/domain/user"
	"flowdesk/internal/shared/errors"
	"flowdesk/internal/shared/logger"
)

type CreateTicketCommand struct {
	Title       string
	Description string
	Status      string
	Priority    string
	CreatorID   uint
	AssigneeID  *uint
	TagIDs      []uint
}

type CreateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	tagRepo    ticket.TagRepository
	userRepo   user.UserRepository
	txManager  TransactionManager
	notifier   UpdateNotifier
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	tagRepo ticket.TagRepository,
	userRepo user.UserRepository,
	txManager TransactionManager,
	notifier UpdateNotifier,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		tagRepo:    tagRepo,
		userRepo:   userRepo,
		txManager:  txManager,
		notifier:   notifier,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing create ticket use case", "title", cmd.Title, "creator_id", cmd.CreatorID)

	// Absent enum fields take documented defaults; present ones must parse.
	if cmd.Status == "" {
		cmd.Status = vo.StatusOpen.String()
	}
	if cmd.Priority == "" {
		cmd.Priority = vo.PriorityMedium.String()
	}

	status, err := vo.NewTicketStatus(cmd.Status)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	priority, err := vo.NewPriority(cmd.Priority)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	creator, err := uc.userRepo.GetByID(ctx, cmd.CreatorID)
	if err != nil {
		uc.logger.Errorw("failed to load ticket creator", "creator_id", cmd.CreatorID, "error", err)
		return nil, err
	}
	if !creator.IsActive() {
		return nil, errors.NewForbiddenError("inactive users cannot create tickets")
	}

	users := map[uint]*user.User{creator.ID(): creator}
	if cmd.AssigneeID != nil {
		assignee, err := uc.userRepo.GetByID(ctx, *cmd.AssigneeID)
		if err != nil {
			if errors.IsNotFound(err) {
				return nil, errors.NewNotFoundError("assignee not found")
			}
			return nil, err
		}
		users[assignee.ID()] = assignee
	}

	newTicket, err := ticket.NewTicket(
		cmd.Title,
		cmd.Description,
		status,
		priority,
		cmd.CreatorID,
		cmd.AssigneeID,
	)
	if err != nil {
		uc.logger.Errorw("failed to create ticket entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if len(cmd.TagIDs) > 0 {
		newTicket.SetTagIDs(cmd.TagIDs)
	}

	// Save also writes the initial tag links; an unknown tag id rolls
	// back the ticket row as well.
	if err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.ticketRepo.Save(txCtx, newTicket)
	}); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, err
	}

	tags, err := uc.tagRepo.GetByIDs(ctx, newTicket.TagIDs())
	if err != nil {
		uc.logger.Errorw("failed to load ticket tags", "ticket_id", newTicket.ID(), "error", err)
		return nil, err
	}

	result := toTicketDTO(newTicket, tags, users)

	uc.logger.Infow("ticket created successfully", "ticket_id", newTicket.ID())
	uc.notifier.SendTicketUpdate(newTicket.ID(), UpdateTypeTicketCreated, result)

	return result, nil
}
