package usecases

import (
	"context"
	"sync"

	"flowdesk/internal/domain/ticket"
	"flowdesk/internal/domain/user"
)

type mockTicketRepository struct {
	SaveFunc                     func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc                   func(ctx context.Context, t *ticket.Ticket) error
	DeleteFunc                   func(ctx context.Context, ticketID uint) error
	GetByIDFunc                  func(ctx context.Context, ticketID uint) (*ticket.Ticket, error)
	ListFunc                     func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error)
	AddTagLinksFunc              func(ctx context.Context, ticketID uint, tagIDs []uint) error
	RemoveTagLinksFunc           func(ctx context.Context, ticketID uint, tagIDs []uint) error
	CountCommentsByTicketIDsFunc func(ctx context.Context, ticketIDs []uint) (map[uint]int64, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, ticketID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, ticketID)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) AddTagLinks(ctx context.Context, ticketID uint, tagIDs []uint) error {
	if m.AddTagLinksFunc != nil {
		return m.AddTagLinksFunc(ctx, ticketID, tagIDs)
	}
	return nil
}

func (m *mockTicketRepository) RemoveTagLinks(ctx context.Context, ticketID uint, tagIDs []uint) error {
	if m.RemoveTagLinksFunc != nil {
		return m.RemoveTagLinksFunc(ctx, ticketID, tagIDs)
	}
	return nil
}

func (m *mockTicketRepository) CountCommentsByTicketIDs(ctx context.Context, ticketIDs []uint) (map[uint]int64, error) {
	if m.CountCommentsByTicketIDsFunc != nil {
		return m.CountCommentsByTicketIDsFunc(ctx, ticketIDs)
	}
	return map[uint]int64{}, nil
}

type mockCommentRepository struct {
	SaveFunc          func(ctx context.Context, comment *ticket.Comment) error
	GetByTicketIDFunc func(ctx context.Context, ticketID uint) ([]*ticket.Comment, error)
}

func (m *mockCommentRepository) Save(ctx context.Context, comment *ticket.Comment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, comment)
	}
	return nil
}

func (m *mockCommentRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	if m.GetByTicketIDFunc != nil {
		return m.GetByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

type mockTagRepository struct {
	SaveFunc          func(ctx context.Context, tag *ticket.Tag) error
	GetByIDsFunc      func(ctx context.Context, ids []uint) ([]*ticket.Tag, error)
	GetByTicketIDFunc func(ctx context.Context, ticketID uint) ([]*ticket.Tag, error)
	ListFunc          func(ctx context.Context) ([]*ticket.Tag, error)
}

func (m *mockTagRepository) Save(ctx context.Context, tag *ticket.Tag) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, tag)
	}
	return nil
}

func (m *mockTagRepository) GetByIDs(ctx context.Context, ids []uint) ([]*ticket.Tag, error) {
	if m.GetByIDsFunc != nil {
		return m.GetByIDsFunc(ctx, ids)
	}
	return []*ticket.Tag{}, nil
}

func (m *mockTagRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Tag, error) {
	if m.GetByTicketIDFunc != nil {
		return m.GetByTicketIDFunc(ctx, ticketID)
	}
	return []*ticket.Tag{}, nil
}

func (m *mockTagRepository) List(ctx context.Context) ([]*ticket.Tag, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []*ticket.Tag{}, nil
}

type mockUserRepository struct {
	SaveFunc          func(ctx context.Context, u *user.User) error
	GetByIDFunc       func(ctx context.Context, userID uint) (*user.User, error)
	GetByIDsFunc      func(ctx context.Context, userIDs []uint) ([]*user.User, error)
	GetByEmailFunc    func(ctx context.Context, email string) (*user.User, error)
	GetByUsernameFunc func(ctx context.Context, username string) (*user.User, error)
	ListFunc          func(ctx context.Context) ([]*user.User, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, userID uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByIDs(ctx context.Context, userIDs []uint) ([]*user.User, error) {
	if m.GetByIDsFunc != nil {
		return m.GetByIDsFunc(ctx, userIDs)
	}
	return []*user.User{}, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	if m.GetByUsernameFunc != nil {
		return m.GetByUsernameFunc(ctx, username)
	}
	return nil, nil
}

func (m *mockUserRepository) List(ctx context.Context) ([]*user.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []*user.User{}, nil
}

// mockTxManager runs the function inline, without a real transaction.
type mockTxManager struct {
	RunInTransactionFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTransactionFunc != nil {
		return m.RunInTransactionFunc(ctx, fn)
	}
	return fn(ctx)
}

type notifierCall struct {
	TicketID   uint
	UpdateType string
	Data       any
}

// mockNotifier records every update it is asked to push.
type mockNotifier struct {
	mu    sync.Mutex
	calls []notifierCall
}

func (m *mockNotifier) SendTicketUpdate(ticketID uint, updateType string, data any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, notifierCall{TicketID: ticketID, UpdateType: updateType, Data: data})
}

func (m *mockNotifier) Calls() []notifierCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]notifierCall, len(m.calls))
	copy(out, m.calls)
	return out
}
