package usecases

import (
	"context"

	"flowdesk/internal/application/ticket/dto"
	"flowdesk/internal/domain/ticket"
	"flowdesk/internal/domain/user"
	"flowdesk/internal/shared/logger"
	"flowdesk/internal/shared/utils/setutil"
)

type GetTicketQuery struct {
	TicketID uint
}

type GetTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	tagRepo    ticket.TagRepository
	userRepo   user.UserRepository
	logger     logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.TicketRepository,
	tagRepo ticket.TagRepository,
	userRepo user.UserRepository,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		tagRepo:    tagRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error) {
	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
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

	return toTicketDTO(t, tags, users), nil
}
