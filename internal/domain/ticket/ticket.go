package ticket

import (
	"fmt"
	"time"

	vo "flowdesk/internal/domain/ticket/valueobjects"
)

type Ticket struct {
	id          uint
	title       string
	description string
	status      vo.TicketStatus
	priority    vo.Priority
	creatorID   uint
	assigneeID  *uint
	tagIDs      []uint
	createdAt   time.Time
	updatedAt   time.Time
	resolvedAt  *time.Time
	comments    []*Comment
}

func NewTicket(
	title string,
	description string,
	status vo.TicketStatus,
	priority vo.Priority,
	creatorID uint,
	assigneeID *uint,
) (*Ticket, error) {
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if len(description) > 5000 {
		return nil, fmt.Errorf("description exceeds maximum length of 5000 characters")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if creatorID == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}
	if assigneeID != nil && *assigneeID == 0 {
		return nil, fmt.Errorf("assignee ID cannot be zero")
	}

	now := time.Now()

	t := &Ticket{
		title:       title,
		description: description,
		status:      status,
		priority:    priority,
		creatorID:   creatorID,
		assigneeID:  assigneeID,
		tagIDs:      []uint{},
		createdAt:   now,
		updatedAt:   now,
		comments:    []*Comment{},
	}

	// A ticket created directly in a terminal status counts as resolved now.
	if status.IsTerminal() {
		t.resolvedAt = &now
	}

	return t, nil
}

func ReconstructTicket(
	id uint,
	title string,
	description string,
	status vo.TicketStatus,
	priority vo.Priority,
	creatorID uint,
	assigneeID *uint,
	tagIDs []uint,
	createdAt, updatedAt time.Time,
	resolvedAt *time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}

	if tagIDs == nil {
		tagIDs = []uint{}
	}

	return &Ticket{
		id:          id,
		title:       title,
		description: description,
		status:      status,
		priority:    priority,
		creatorID:   creatorID,
		assigneeID:  assigneeID,
		tagIDs:      tagIDs,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		resolvedAt:  resolvedAt,
		comments:    []*Comment{},
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) Title() string {
	return t.title
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

func (t *Ticket) Priority() vo.Priority {
	return t.priority
}

func (t *Ticket) CreatorID() uint {
	return t.creatorID
}

func (t *Ticket) AssigneeID() *uint {
	return t.assigneeID
}

func (t *Ticket) TagIDs() []uint {
	tagsCopy := make([]uint, len(t.tagIDs))
	copy(tagsCopy, t.tagIDs)
	return tagsCopy
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) ResolvedAt() *time.Time {
	return t.resolvedAt
}

func (t *Ticket) Comments() []*Comment {
	commentsCopy := make([]*Comment, len(t.comments))
	copy(commentsCopy, t.comments)
	return commentsCopy
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

func (t *Ticket) UpdateTitle(title string) error {
	if len(title) == 0 {
		return fmt.Errorf("title cannot be empty")
	}
	if len(title) > 200 {
		return fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	t.title = title
	t.updatedAt = time.Now()
	return nil
}

func (t *Ticket) UpdateDescription(description string) error {
	if len(description) > 5000 {
		return fmt.Errorf("description exceeds maximum length of 5000 characters")
	}
	t.description = description
	t.updatedAt = time.Now()
	return nil
}

// ChangeStatus sets the ticket status. Transitions are deliberately
// unrestricted; the first transition into a terminal status stamps the
// resolved time, and leaving a terminal status later does not clear it.
func (t *Ticket) ChangeStatus(newStatus vo.TicketStatus) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}

	if t.status == newStatus {
		return nil
	}

	t.status = newStatus
	t.updatedAt = time.Now()

	if newStatus.IsTerminal() && t.resolvedAt == nil {
		now := time.Now()
		t.resolvedAt = &now
	}

	return nil
}

func (t *Ticket) ChangePriority(newPriority vo.Priority) error {
	if !newPriority.IsValid() {
		return fmt.Errorf("invalid priority: %s", newPriority)
	}

	if t.priority == newPriority {
		return nil
	}

	t.priority = newPriority
	t.updatedAt = time.Now()
	return nil
}

func (t *Ticket) AssignTo(assigneeID uint) error {
	if assigneeID == 0 {
		return fmt.Errorf("assignee ID cannot be zero")
	}

	t.assigneeID = &assigneeID
	t.updatedAt = time.Now()
	return nil
}

func (t *Ticket) Unassign() {
	t.assigneeID = nil
	t.updatedAt = time.Now()
}

// SetTagIDs replaces the ticket's tag set. The persistence layer applies
// the corresponding link changes via ReconcileTags.
func (t *Ticket) SetTagIDs(tagIDs []uint) {
	if tagIDs == nil {
		tagIDs = []uint{}
	}
	t.tagIDs = tagIDs
	t.updatedAt = time.Now()
}

// AttachComments sets the loaded comment list during reconstruction
// without touching the update timestamp.
func (t *Ticket) AttachComments(comments []*Comment) {
	if comments == nil {
		comments = []*Comment{}
	}
	t.comments = comments
}

func (t *Ticket) AddComment(comment *Comment) error {
	if comment == nil {
		return fmt.Errorf("comment cannot be nil")
	}

	if comment.TicketID() != t.id {
		return fmt.Errorf("comment ticket ID mismatch")
	}

	t.comments = append(t.comments, comment)
	t.updatedAt = time.Now()
	return nil
}
