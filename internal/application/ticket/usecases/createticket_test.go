package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flowdesk/internal/domain/ticket"
	vo "flowdesk/internal/domain/ticket/valueobjects"
	"flowdesk/internal/domain/user"
	"flowdesk/internal/shared/errors"
	"flowdesk/internal/shared/logger"
)

func makeUser(t *testing.T, id uint, role user.Role, active bool) *user.User {
	t.Helper()
	now := time.Now()
	u, err := user.ReconstructUser(id, "user@example.com", "someuser", "hash", "Some User", role, active, now, now)
	require.NoError(t, err)
	return u
}

func makeTag(t *testing.T, id uint, name string) *ticket.Tag {
	t.Helper()
	tag, err := ticket.ReconstructTag(id, name, ticket.DefaultTagColor, time.Now())
	require.NoError(t, err)
	return tag
}

func makeTicket(t *testing.T, id uint, status vo.TicketStatus, creatorID uint, tagIDs []uint) *ticket.Ticket {
	t.Helper()
	now := time.Now()
	var resolvedAt *time.Time
	if status.IsTerminal() {
		resolvedAt = &now
	}
	tk, err := ticket.ReconstructTicket(
		id, "Printer down", "The office printer is not responding.",
		status, vo.PriorityMedium, creatorID, nil, tagIDs, now, now, resolvedAt,
	)
	require.NoError(t, err)
	return tk
}

func newCreateTicketUseCase(
	ticketRepo *mockTicketRepository,
	tagRepo *mockTagRepository,
	userRepo *mockUserRepository,
	notifier *mockNotifier,
) *CreateTicketUseCase {
	return NewCreateTicketUseCase(
		ticketRepo,
		tagRepo,
		userRepo,
		&mockTxManager{},
		notifier,
		logger.NewLogger(),
	)
}

func TestCreateTicket_AppliesDefaults(t *testing.T) {
	saved := false
	ticketRepo := &mockTicketRepository{
		SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			saved = true
			return tk.SetID(1)
		},
	}
	userRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, userID uint) (*user.User, error) {
			return makeUser(t, userID, user.RoleUser, true), nil
		},
	}
	notifier := &mockNotifier{}
	uc := newCreateTicketUseCase(ticketRepo, &mockTagRepository{}, userRepo, notifier)

	result, err := uc.Execute(context.Background(), CreateTicketCommand{
		Title:       "Printer down",
		Description: "The office printer is not responding.",
		CreatorID:   42,
	})

	require.NoError(t, err)
	assert.True(t, saved)
	assert.Equal(t, uint(1), result.ID)
	assert.Equal(t, "open", result.Status)
	assert.Equal(t, "medium", result.Priority)
	assert.Nil(t, result.AssigneeID)
	assert.Nil(t, result.ResolvedAt)
	assert.Empty(t, result.Tags)

	calls := notifier.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, UpdateTypeTicketCreated, calls[0].UpdateType)
	assert.Equal(t, uint(1), calls[0].TicketID)
}

func TestCreateTicket_RejectsUnknownEnums(t *testing.T) {
	tests := []struct {
		name string
		cmd  CreateTicketCommand
	}{
		{
			name: "unknown status",
			cmd:  CreateTicketCommand{Title: "t", Status: "pending", CreatorID: 1},
		},
		{
			name: "unknown priority",
			cmd:  CreateTicketCommand{Title: "t", Priority: "critical", CreatorID: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			saved := false
			ticketRepo := &mockTicketRepository{
				SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
					saved = true
					return nil
				},
			}
			notifier := &mockNotifier{}
			uc := newCreateTicketUseCase(ticketRepo, &mockTagRepository{}, &mockUserRepository{}, notifier)

			_, err := uc.Execute(context.Background(), tt.cmd)

			require.Error(t, err)
			assert.True(t, errors.IsValidation(err))
			assert.False(t, saved)
			assert.Empty(t, notifier.Calls())
		})
	}
}

func TestCreateTicket_UnknownAssignee(t *testing.T) {
	userRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, userID uint) (*user.User, error) {
			if userID == 1 {
				return makeUser(t, 1, user.RoleUser, true), nil
			}
			return nil, errors.NewNotFoundError("user not found")
		},
	}
	notifier := &mockNotifier{}
	uc := newCreateTicketUseCase(&mockTicketRepository{}, &mockTagRepository{}, userRepo, notifier)

	assignee := uint(99)
	_, err := uc.Execute(context.Background(), CreateTicketCommand{
		Title:      "Printer down",
		CreatorID:  1,
		AssigneeID: &assignee,
	})

	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
	assert.Empty(t, notifier.Calls())
}

func TestCreateTicket_InactiveCreator(t *testing.T) {
	userRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, userID uint) (*user.User, error) {
			return makeUser(t, userID, user.RoleUser, false), nil
		},
	}
	uc := newCreateTicketUseCase(&mockTicketRepository{}, &mockTagRepository{}, userRepo, &mockNotifier{})

	_, err := uc.Execute(context.Background(), CreateTicketCommand{Title: "t", CreatorID: 1})

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeForbidden, appErr.Type)
}

func TestCreateTicket_WithTags(t *testing.T) {
	var savedTagIDs []uint
	ticketRepo := &mockTicketRepository{
		SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			savedTagIDs = tk.TagIDs()
			return tk.SetID(5)
		},
	}
	tagRepo := &mockTagRepository{
		GetByIDsFunc: func(ctx context.Context, ids []uint) ([]*ticket.Tag, error) {
			return []*ticket.Tag{makeTag(t, 2, "hardware"), makeTag(t, 3, "urgent-queue")}, nil
		},
	}
	userRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, userID uint) (*user.User, error) {
			return makeUser(t, userID, user.RoleUser, true), nil
		},
	}
	uc := newCreateTicketUseCase(ticketRepo, tagRepo, userRepo, &mockNotifier{})

	result, err := uc.Execute(context.Background(), CreateTicketCommand{
		Title:     "Printer down",
		CreatorID: 1,
		TagIDs:    []uint{2, 3},
	})

	require.NoError(t, err)
	assert.Equal(t, []uint{2, 3}, savedTagIDs)
	require.Len(t, result.Tags, 2)
	assert.Equal(t, "hardware", result.Tags[0].Name)
}

func TestCreateTicket_EmbedsCreatorAndAssignee(t *testing.T) {
	ticketRepo := &mockTicketRepository{
		SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			return tk.SetID(3)
		},
	}
	userRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, userID uint) (*user.User, error) {
			return makeUser(t, userID, user.RoleUser, true), nil
		},
	}
	uc := newCreateTicketUseCase(ticketRepo, &mockTagRepository{}, userRepo, &mockNotifier{})

	assignee := uint(9)
	result, err := uc.Execute(context.Background(), CreateTicketCommand{
		Title:      "Printer down",
		CreatorID:  42,
		AssigneeID: &assignee,
	})

	require.NoError(t, err)
	assert.Equal(t, uint(42), result.Creator.ID)
	assert.Equal(t, "someuser", result.Creator.Username)
	require.NotNil(t, result.Assignee)
	assert.Equal(t, uint(9), result.Assignee.ID)
}

func TestCreateTicket_SaveFailureSkipsNotification(t *testing.T) {
	ticketRepo := &mockTicketRepository{
		SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			return errors.NewValidationError("one or more tag ids do not exist")
		},
	}
	userRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, userID uint) (*user.User, error) {
			return makeUser(t, userID, user.RoleUser, true), nil
		},
	}
	notifier := &mockNotifier{}
	uc := newCreateTicketUseCase(ticketRepo, &mockTagRepository{}, userRepo, notifier)

	_, err := uc.Execute(context.Background(), CreateTicketCommand{
		Title:     "Printer down",
		CreatorID: 1,
		TagIDs:    []uint{999},
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
	assert.Empty(t, notifier.Calls())
}

func TestCreateTicket_TerminalStatusStampsResolvedAt(t *testing.T) {
	ticketRepo := &mockTicketRepository{
		SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			return tk.SetID(8)
		},
	}
	userRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, userID uint) (*user.User, error) {
			return makeUser(t, userID, user.RoleAgent, true), nil
		},
	}
	uc := newCreateTicketUseCase(ticketRepo, &mockTagRepository{}, userRepo, &mockNotifier{})

	result, err := uc.Execute(context.Background(), CreateTicketCommand{
		Title:     "Already handled",
		Status:    "resolved",
		CreatorID: 1,
	})

	require.NoError(t, err)
	assert.Equal(t, "resolved", result.Status)
	assert.NotNil(t, result.ResolvedAt)
}
