package usecases

import (
	"context"

	"flowdesk/internal/application/ticket/dto"
	"flowdesk/internal/domain/ticket"
	vo "flowdesk/internal/domain/ticket/valueobjects"
	"flowdesk/internal/domain/user"
	"flowdesk/internal/shared/errors"
	"flowdesk/internal/shared/logger"
	"flowdesk/internal/shared/utils/setutil"
)

// UpdateTicketCommand carries a partial update: nil fields are left
// untouched. UpdateAssignee distinguishes "set assignee to nil" from
// "leave assignee alone"; a nil TagIDs slice leaves the tag set alone
// while an empty one clears it.
type UpdateTicketCommand struct {
	TicketID       uint
	RequesterID    uint
	RequesterRole  string
	Title          *string
	Description    *string
	Status         *string
	Priority       *string
	AssigneeID     *uint
	UpdateAssignee bool
	TagIDs         []uint
}

type UpdateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	tagRepo    ticket.TagRepository
	userRepo   user.UserRepository
	txManager  TransactionManager
	notifier   UpdateNotifier
	logger     logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	tagRepo ticket.TagRepository,
	userRepo user.UserRepository,
	txManager TransactionManager,
	notifier UpdateNotifier,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo: ticketRepo,
		tagRepo:    tagRepo,
		userRepo:   userRepo,
		txManager:  txManager,
		notifier:   notifier,
		logger:     logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing update ticket use case", "ticket_id", cmd.TicketID, "requester_id", cmd.RequesterID)

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(cmd.RequesterRole)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if !role.IsStaff() && t.CreatorID() != cmd.RequesterID {
		return nil, errors.NewForbiddenError("only the creator or staff may update this ticket")
	}

	if err := uc.applyChanges(ctx, t, cmd); err != nil {
		return nil, err
	}

	delta := ticket.ReconcileTags(t.TagIDs(), cmd.TagIDs)
	if cmd.TagIDs != nil {
		t.SetTagIDs(cmd.TagIDs)
	}

	// Field updates and tag link changes commit or roll back together,
	// so an unknown tag id leaves the ticket untouched.
	if err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			return err
		}
		if err := uc.ticketRepo.RemoveTagLinks(txCtx, t.ID(), delta.Remove); err != nil {
			return err
		}
		return uc.ticketRepo.AddTagLinks(txCtx, t.ID(), delta.Add)
	}); err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", t.ID(), "error", err)
		return nil, err
	}

	tags, err := uc.tagRepo.GetByIDs(ctx, t.TagIDs())
	if err != nil {
		uc.logger.Errorw("failed to load ticket tags", "ticket_id", t.ID(), "error", err)
		return nil, err
	}

	userIDs := setutil.NewUintSet()
	collectTicketUserIDs(userIDs, t)
	users, err := loadUsersByID(ctx, uc.userRepo, userIDs.ToSlice())
	if err != nil {
		uc.logger.Errorw("failed to load ticket users", "ticket_id", t.ID(), "error", err)
		return nil, err
	}

	result := toTicketDTO(t, tags, users)

	uc.logger.Infow("ticket updated successfully", "ticket_id", t.ID())
	uc.notifier.SendTicketUpdate(t.ID(), UpdateTypeTicketUpdated, result)

	return result, nil
}

func (uc *UpdateTicketUseCase) applyChanges(ctx context.Context, t *ticket.Ticket, cmd UpdateTicketCommand) error {
	if cmd.Title != nil {
		if err := t.UpdateTitle(*cmd.Title); err != nil {
			return errors.NewValidationError(err.Error())
		}
	}

	if cmd.Description != nil {
		if err := t.UpdateDescription(*cmd.Description); err != nil {
			return errors.NewValidationError(err.Error())
		}
	}

	if cmd.Status != nil {
		status, err := vo.NewTicketStatus(*cmd.Status)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := t.ChangeStatus(status); err != nil {
			return errors.NewValidationError(err.Error())
		}
	}

	if cmd.Priority != nil {
		priority, err := vo.NewPriority(*cmd.Priority)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := t.ChangePriority(priority); err != nil {
			return errors.NewValidationError(err.Error())
		}
	}

	if cmd.UpdateAssignee {
		if cmd.AssigneeID == nil {
			t.Unassign()
		} else {
			if _, err := uc.userRepo.GetByID(ctx, *cmd.AssigneeID); err != nil {
				if errors.IsNotFound(err) {
					return errors.NewNotFoundError("assignee not found")
				}
				return err
			}
			if err := t.AssignTo(*cmd.AssigneeID); err != nil {
				return errors.NewValidationError(err.Error())
			}
		}
	}

	return nil
}
