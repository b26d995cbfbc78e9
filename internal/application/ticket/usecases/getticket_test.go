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

func newGetTicketUseCase(
	ticketRepo *mockTicketRepository,
	tagRepo *mockTagRepository,
	userRepo *mockUserRepository,
) *GetTicketUseCase {
	return NewGetTicketUseCase(ticketRepo, tagRepo, userRepo, logger.NewLogger())
}

func TestGetTicket_EmbedsUsersAndComments(t *testing.T) {
	existing := makeTicket(t, 1, vo.StatusOpen, 42, []uint{2})
	require.NoError(t, existing.AssignTo(9))

	now := time.Now()
	comment, err := ticket.ReconstructComment(10, 1, 7, "checked the cabling", false, now, now)
	require.NoError(t, err)
	existing.AttachComments([]*ticket.Comment{comment})

	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return existing, nil
		},
	}
	tagRepo := &mockTagRepository{
		GetByIDsFunc: func(ctx context.Context, ids []uint) ([]*ticket.Tag, error) {
			return []*ticket.Tag{makeTag(t, 2, "hardware")}, nil
		},
	}

	var requestedUserIDs []uint
	userRepo := &mockUserRepository{
		GetByIDsFunc: func(ctx context.Context, userIDs []uint) ([]*user.User, error) {
			requestedUserIDs = userIDs
			users := make([]*user.User, 0, len(userIDs))
			for _, id := range userIDs {
				users = append(users, makeUser(t, id, user.RoleUser, true))
			}
			return users, nil
		},
	}
	uc := newGetTicketUseCase(ticketRepo, tagRepo, userRepo)

	result, err := uc.Execute(context.Background(), GetTicketQuery{TicketID: 1})

	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{42, 9, 7}, requestedUserIDs)

	assert.Equal(t, uint(42), result.Creator.ID)
	assert.Equal(t, "someuser", result.Creator.Username)
	require.NotNil(t, result.Assignee)
	assert.Equal(t, uint(9), result.Assignee.ID)

	require.Len(t, result.Comments, 1)
	assert.Equal(t, uint(7), result.Comments[0].Author.ID)
	assert.False(t, result.Comments[0].UpdatedAt.IsZero())
}

func TestGetTicket_NotFound(t *testing.T) {
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return nil, errors.NewNotFoundError("ticket not found")
		},
	}
	uc := newGetTicketUseCase(ticketRepo, &mockTagRepository{}, &mockUserRepository{})

	_, err := uc.Execute(context.Background(), GetTicketQuery{TicketID: 404})

	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}
