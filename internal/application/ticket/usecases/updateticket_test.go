package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flowdesk/internal/domain/ticket"
	vo "flowdesk/internal/domain/ticket/valueobjects"
	"flowdesk/internal/domain/user"
	"flowdesk/internal/shared/errors"
	"flowdesk/internal/shared/logger"
)

func newUpdateTicketUseCase(
	ticketRepo *mockTicketRepository,
	tagRepo *mockTagRepository,
	userRepo *mockUserRepository,
	notifier *mockNotifier,
) *UpdateTicketUseCase {
	return NewUpdateTicketUseCase(
		ticketRepo,
		tagRepo,
		userRepo,
		&mockTxManager{},
		notifier,
		logger.NewLogger(),
	)
}

func strPtr(s string) *string { return &s }

func TestUpdateTicket_PartialUpdate(t *testing.T) {
	existing := makeTicket(t, 1, vo.StatusOpen, 42, nil)
	updated := false
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return existing, nil
		},
		UpdateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			updated = true
			return nil
		},
	}
	notifier := &mockNotifier{}
	uc := newUpdateTicketUseCase(ticketRepo, &mockTagRepository{}, &mockUserRepository{}, notifier)

	result, err := uc.Execute(context.Background(), UpdateTicketCommand{
		TicketID:      1,
		RequesterID:   42,
		RequesterRole: "user",
		Title:         strPtr("Printer still down"),
	})

	require.NoError(t, err)
	assert.True(t, updated)
	assert.Equal(t, "Printer still down", result.Title)
	assert.Equal(t, "The office printer is not responding.", result.Description)
	assert.Equal(t, "open", result.Status)

	calls := notifier.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, UpdateTypeTicketUpdated, calls[0].UpdateType)
}

func TestUpdateTicket_ForbiddenForOtherUsers(t *testing.T) {
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return makeTicket(t, 1, vo.StatusOpen, 42, nil), nil
		},
	}
	notifier := &mockNotifier{}
	uc := newUpdateTicketUseCase(ticketRepo, &mockTagRepository{}, &mockUserRepository{}, notifier)

	_, err := uc.Execute(context.Background(), UpdateTicketCommand{
		TicketID:      1,
		RequesterID:   7,
		RequesterRole: "user",
		Title:         strPtr("hijack"),
	})

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeForbidden, appErr.Type)
	assert.Empty(t, notifier.Calls())
}

func TestUpdateTicket_StaffMayUpdateAnyTicket(t *testing.T) {
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return makeTicket(t, 1, vo.StatusOpen, 42, nil), nil
		},
	}
	uc := newUpdateTicketUseCase(ticketRepo, &mockTagRepository{}, &mockUserRepository{}, &mockNotifier{})

	result, err := uc.Execute(context.Background(), UpdateTicketCommand{
		TicketID:      1,
		RequesterID:   7,
		RequesterRole: "agent",
		Priority:      strPtr("urgent"),
	})

	require.NoError(t, err)
	assert.Equal(t, "urgent", result.Priority)
}

func TestUpdateTicket_ResolvedAtStampedOnceAndKept(t *testing.T) {
	existing := makeTicket(t, 1, vo.StatusOpen, 42, nil)
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return existing, nil
		},
	}
	uc := newUpdateTicketUseCase(ticketRepo, &mockTagRepository{}, &mockUserRepository{}, &mockNotifier{})

	resolved, err := uc.Execute(context.Background(), UpdateTicketCommand{
		TicketID:      1,
		RequesterID:   42,
		RequesterRole: "user",
		Status:        strPtr("resolved"),
	})
	require.NoError(t, err)
	require.NotNil(t, resolved.ResolvedAt)
	firstStamp := *resolved.ResolvedAt

	// Reopening keeps the original resolution time.
	reopened, err := uc.Execute(context.Background(), UpdateTicketCommand{
		TicketID:      1,
		RequesterID:   42,
		RequesterRole: "user",
		Status:        strPtr("open"),
	})
	require.NoError(t, err)
	require.NotNil(t, reopened.ResolvedAt)
	assert.Equal(t, firstStamp, *reopened.ResolvedAt)

	// Closing again does not move the stamp either.
	closed, err := uc.Execute(context.Background(), UpdateTicketCommand{
		TicketID:      1,
		RequesterID:   42,
		RequesterRole: "user",
		Status:        strPtr("closed"),
	})
	require.NoError(t, err)
	require.NotNil(t, closed.ResolvedAt)
	assert.Equal(t, firstStamp, *closed.ResolvedAt)
}

func TestUpdateTicket_ReconcilesTagLinks(t *testing.T) {
	existing := makeTicket(t, 1, vo.StatusOpen, 42, []uint{1, 2})
	var added, removed []uint
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return existing, nil
		},
		AddTagLinksFunc: func(ctx context.Context, ticketID uint, tagIDs []uint) error {
			added = tagIDs
			return nil
		},
		RemoveTagLinksFunc: func(ctx context.Context, ticketID uint, tagIDs []uint) error {
			removed = tagIDs
			return nil
		},
	}
	uc := newUpdateTicketUseCase(ticketRepo, &mockTagRepository{}, &mockUserRepository{}, &mockNotifier{})

	_, err := uc.Execute(context.Background(), UpdateTicketCommand{
		TicketID:      1,
		RequesterID:   42,
		RequesterRole: "user",
		TagIDs:        []uint{2, 3},
	})

	require.NoError(t, err)
	assert.Equal(t, []uint{3}, added)
	assert.Equal(t, []uint{1}, removed)
}

func TestUpdateTicket_NilTagsLeaveLinksAlone(t *testing.T) {
	existing := makeTicket(t, 1, vo.StatusOpen, 42, []uint{1, 2})
	linkCalls := 0
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return existing, nil
		},
		AddTagLinksFunc: func(ctx context.Context, ticketID uint, tagIDs []uint) error {
			if len(tagIDs) > 0 {
				linkCalls++
			}
			return nil
		},
		RemoveTagLinksFunc: func(ctx context.Context, ticketID uint, tagIDs []uint) error {
			if len(tagIDs) > 0 {
				linkCalls++
			}
			return nil
		},
	}
	uc := newUpdateTicketUseCase(ticketRepo, &mockTagRepository{}, &mockUserRepository{}, &mockNotifier{})

	result, err := uc.Execute(context.Background(), UpdateTicketCommand{
		TicketID:      1,
		RequesterID:   42,
		RequesterRole: "user",
		Title:         strPtr("unchanged tags"),
	})

	require.NoError(t, err)
	assert.Zero(t, linkCalls)
	assert.ElementsMatch(t, []uint{1, 2}, existing.TagIDs())
	assert.NotNil(t, result)
}

func TestUpdateTicket_UnknownTagRollsBack(t *testing.T) {
	existing := makeTicket(t, 1, vo.StatusOpen, 42, []uint{1})
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return existing, nil
		},
		AddTagLinksFunc: func(ctx context.Context, ticketID uint, tagIDs []uint) error {
			return errors.NewValidationError("one or more tag ids do not exist")
		},
	}
	notifier := &mockNotifier{}
	uc := newUpdateTicketUseCase(ticketRepo, &mockTagRepository{}, &mockUserRepository{}, notifier)

	_, err := uc.Execute(context.Background(), UpdateTicketCommand{
		TicketID:      1,
		RequesterID:   42,
		RequesterRole: "user",
		TagIDs:        []uint{1, 999},
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
	assert.Empty(t, notifier.Calls())
}

func TestUpdateTicket_EmbedsCreatorAndAssignee(t *testing.T) {
	existing := makeTicket(t, 1, vo.StatusOpen, 42, nil)
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return existing, nil
		},
	}
	userRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, userID uint) (*user.User, error) {
			return makeUser(t, userID, user.RoleAgent, true), nil
		},
		GetByIDsFunc: func(ctx context.Context, userIDs []uint) ([]*user.User, error) {
			users := make([]*user.User, 0, len(userIDs))
			for _, id := range userIDs {
				users = append(users, makeUser(t, id, user.RoleUser, true))
			}
			return users, nil
		},
	}
	uc := newUpdateTicketUseCase(ticketRepo, &mockTagRepository{}, userRepo, &mockNotifier{})

	assignee := uint(9)
	result, err := uc.Execute(context.Background(), UpdateTicketCommand{
		TicketID:       1,
		RequesterID:    42,
		RequesterRole:  "user",
		AssigneeID:     &assignee,
		UpdateAssignee: true,
	})

	require.NoError(t, err)
	assert.Equal(t, uint(42), result.Creator.ID)
	require.NotNil(t, result.Assignee)
	assert.Equal(t, uint(9), result.Assignee.ID)
}

func TestUpdateTicket_ClearAssignee(t *testing.T) {
	assignee := uint(9)
	existing := makeTicket(t, 1, vo.StatusOpen, 42, nil)
	require.NoError(t, existing.AssignTo(assignee))

	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return existing, nil
		},
	}
	uc := newUpdateTicketUseCase(ticketRepo, &mockTagRepository{}, &mockUserRepository{}, &mockNotifier{})

	result, err := uc.Execute(context.Background(), UpdateTicketCommand{
		TicketID:       1,
		RequesterID:    42,
		RequesterRole:  "user",
		UpdateAssignee: true,
	})

	require.NoError(t, err)
	assert.Nil(t, result.AssigneeID)
}
