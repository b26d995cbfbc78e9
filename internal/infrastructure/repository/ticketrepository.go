package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"flowdesk/internal/domain/ticket"
	"flowdesk/internal/infrastructure/persistence/mappers"
	"flowdesk/internal/infrastructure/persistence/models"
	"flowdesk/internal/shared/db"
	"flowdesk/internal/shared/errors"
)

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(database *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     database,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	if err := t.SetID(model.ID); err != nil {
		return err
	}

	if tagIDs := t.TagIDs(); len(tagIDs) > 0 {
		if err := r.AddTagLinks(ctx, model.ID, tagIDs); err != nil {
			return err
		}
	}

	return nil
}

// updatedTicketColumns lists the columns Update writes. Explicit selection is
// required so cleared optional fields (assignee, description) reach the row.
var updatedTicketColumns = []string{
	"title", "description", "status", "priority", "assignee_id", "resolved_at", "updated_at",
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Select(updatedTicketColumns).
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}

	return nil
}

// Delete removes the ticket together with its comments and tag links.
// Callers wrap this in a transaction so the cascade is all-or-nothing.
func (r *TicketRepository) Delete(ctx context.Context, ticketID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.TicketModel{}, ticketID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("ticket not found")
	}

	if err := tx.Where("ticket_id = ?", ticketID).Delete(&models.CommentModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete ticket comments: %w", err)
	}

	if err := tx.Where("ticket_id = ?", ticketID).Delete(&models.TicketTagModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete ticket tag links: %w", err)
	}

	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, ticketID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("ticket not found")
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	tagIDs, err := r.tagIDsForTicket(ctx, model.ID)
	if err != nil {
		return nil, err
	}

	t, err := r.mapper.ToDomain(&model, tagIDs)
	if err != nil {
		return nil, err
	}

	if err := r.loadComments(ctx, t, model.ID); err != nil {
		return nil, err
	}

	return t, nil
}

func (r *TicketRepository) List(
	ctx context.Context,
	filter ticket.TicketFilter,
) ([]*ticket.Ticket, int64, error) {
	if filter.Offset < 0 {
		return nil, 0, errors.NewValidationError("offset cannot be negative")
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = ticket.DefaultListLimit
	}
	if limit > ticket.MaxListLimit {
		limit = ticket.MaxListLimit
	}

	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.TicketModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", filter.Priority.String())
	}
	if filter.CreatorID != nil {
		query = query.Where("creator_id = ?", *filter.CreatorID)
	}
	if filter.AssigneeID != nil {
		query = query.Where("assignee_id = ?", *filter.AssigneeID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	var rows []models.TicketModel
	if err := query.
		Order("created_at DESC").
		Offset(filter.Offset).
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	ticketIDs := make([]uint, 0, len(rows))
	for _, row := range rows {
		ticketIDs = append(ticketIDs, row.ID)
	}

	tagsByTicket, err := r.tagIDsForTickets(ctx, ticketIDs)
	if err != nil {
		return nil, 0, err
	}

	tickets := make([]*ticket.Ticket, 0, len(rows))
	for i := range rows {
		t, err := r.mapper.ToDomain(&rows[i], tagsByTicket[rows[i].ID])
		if err != nil {
			return nil, 0, err
		}
		tickets = append(tickets, t)
	}

	return tickets, total, nil
}

// AddTagLinks inserts ticket/tag join rows after verifying every tag id
// exists, so an unknown id aborts the enclosing transaction.
func (r *TicketRepository) AddTagLinks(ctx context.Context, ticketID uint, tagIDs []uint) error {
	if len(tagIDs) == 0 {
		return nil
	}

	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.Model(&models.TagModel{}).Where("id IN ?", tagIDs).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to verify tag ids: %w", err)
	}
	if count != int64(len(tagIDs)) {
		return errors.NewValidationError("one or more tag ids do not exist")
	}

	links := make([]models.TicketTagModel, 0, len(tagIDs))
	for _, tagID := range tagIDs {
		links = append(links, models.TicketTagModel{TicketID: ticketID, TagID: tagID})
	}

	if err := tx.Create(&links).Error; err != nil {
		return fmt.Errorf("failed to add tag links: %w", err)
	}
	return nil
}

func (r *TicketRepository) RemoveTagLinks(ctx context.Context, ticketID uint, tagIDs []uint) error {
	if len(tagIDs) == 0 {
		return nil
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.
		Where("ticket_id = ? AND tag_id IN ?", ticketID, tagIDs).
		Delete(&models.TicketTagModel{}).Error; err != nil {
		return fmt.Errorf("failed to remove tag links: %w", err)
	}
	return nil
}

func (r *TicketRepository) CountCommentsByTicketIDs(ctx context.Context, ticketIDs []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(ticketIDs))
	if len(ticketIDs) == 0 {
		return counts, nil
	}

	tx := db.GetTxFromContext(ctx, r.db)

	var rows []struct {
		TicketID uint
		Count    int64
	}
	if err := tx.Model(&models.CommentModel{}).
		Select("ticket_id, COUNT(*) as count").
		Where("ticket_id IN ?", ticketIDs).
		Group("ticket_id").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count comments: %w", err)
	}

	for _, row := range rows {
		counts[row.TicketID] = row.Count
	}
	return counts, nil
}

func (r *TicketRepository) tagIDsForTicket(ctx context.Context, ticketID uint) ([]uint, error) {
	byTicket, err := r.tagIDsForTickets(ctx, []uint{ticketID})
	if err != nil {
		return nil, err
	}
	return byTicket[ticketID], nil
}

func (r *TicketRepository) tagIDsForTickets(ctx context.Context, ticketIDs []uint) (map[uint][]uint, error) {
	result := make(map[uint][]uint, len(ticketIDs))
	if len(ticketIDs) == 0 {
		return result, nil
	}

	tx := db.GetTxFromContext(ctx, r.db)

	var links []models.TicketTagModel
	if err := tx.Where("ticket_id IN ?", ticketIDs).Find(&links).Error; err != nil {
		return nil, fmt.Errorf("failed to load tag links: %w", err)
	}

	for _, link := range links {
		result[link.TicketID] = append(result[link.TicketID], link.TagID)
	}
	return result, nil
}

func (r *TicketRepository) loadComments(ctx context.Context, t *ticket.Ticket, ticketID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []models.CommentModel
	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return fmt.Errorf("failed to load comments: %w", err)
	}

	comments := make([]*ticket.Comment, 0, len(rows))
	for i := range rows {
		c, err := r.mapper.CommentToDomain(&rows[i])
		if err != nil {
			return err
		}
		comments = append(comments, c)
	}

	t.AttachComments(comments)
	return nil
}
