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

type ListTicketsQuery struct {
	Status     *string
	Priority   *string
	CreatorID  *uint
	AssigneeID *uint
	Offset     int
	Limit      int
}

type ListTicketsResult struct {
	Tickets    []dto.TicketSummaryDTO
	TotalCount int64
	Offset     int
	Limit      int
}

type ListTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	tagRepo    ticket.TagRepository
	userRepo   user.UserRepository
	logger     logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo ticket.TicketRepository,
	tagRepo ticket.TagRepository,
	userRepo user.UserRepository,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		tagRepo:    tagRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	filter := ticket.TicketFilter{
		CreatorID:  query.CreatorID,
		AssigneeID: query.AssigneeID,
		Offset:     query.Offset,
		Limit:      query.Limit,
	}

	// Filter enums are parsed once here; an unknown value is rejected
	// instead of silently matching nothing.
	if query.Status != nil {
		status, err := vo.NewTicketStatus(*query.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}
	if query.Priority != nil {
		priority, err := vo.NewPriority(*query.Priority)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Priority = &priority
	}

	tickets, total, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, err
	}

	ticketIDs := make([]uint, 0, len(tickets))
	tagIDSet := setutil.NewUintSet()
	userIDSet := setutil.NewUintSet()
	for _, t := range tickets {
		ticketIDs = append(ticketIDs, t.ID())
		tagIDSet.AddAll(t.TagIDs())
		collectTicketUserIDs(userIDSet, t)
	}

	commentCounts, err := uc.ticketRepo.CountCommentsByTicketIDs(ctx, ticketIDs)
	if err != nil {
		uc.logger.Errorw("failed to count ticket comments", "error", err)
		return nil, err
	}

	tags, err := uc.tagRepo.GetByIDs(ctx, tagIDSet.ToSlice())
	if err != nil {
		uc.logger.Errorw("failed to load ticket tags", "error", err)
		return nil, err
	}
	tagsByID := make(map[uint]dto.TagDTO, len(tags))
	for _, tag := range tags {
		tagsByID[tag.ID()] = toTagDTO(tag)
	}

	users, err := loadUsersByID(ctx, uc.userRepo, userIDSet.ToSlice())
	if err != nil {
		uc.logger.Errorw("failed to load ticket users", "error", err)
		return nil, err
	}

	summaries := make([]dto.TicketSummaryDTO, 0, len(tickets))
	for _, t := range tickets {
		ticketTags := make([]dto.TagDTO, 0, len(t.TagIDs()))
		for _, tagID := range t.TagIDs() {
			if tagDTO, ok := tagsByID[tagID]; ok {
				ticketTags = append(ticketTags, tagDTO)
			}
		}
		summaries = append(summaries, toTicketSummaryDTO(t, ticketTags, commentCounts[t.ID()], users))
	}

	limit := query.Limit
	if limit <= 0 {
		limit = ticket.DefaultListLimit
	}
	if limit > ticket.MaxListLimit {
		limit = ticket.MaxListLimit
	}

	return &ListTicketsResult{
		Tickets:    summaries,
		TotalCount: total,
		Offset:     query.Offset,
		Limit:      limit,
	}, nil
}
