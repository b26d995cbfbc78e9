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

type TagRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTagRepository(database *gorm.DB) *TagRepository {
	return &TagRepository{
		db:     database,
		mapper: mappers.NewTicketMapper(),
	}
}

// Save persists a new tag. Tag names are unique; a duplicate name is
// reported as a conflict before the insert is attempted.
func (r *TagRepository) Save(ctx context.Context, tag *ticket.Tag) error {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.Model(&models.TagModel{}).Where("name = ?", tag.Name()).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check tag name: %w", err)
	}
	if count > 0 {
		return errors.NewConflictError("tag name already exists")
	}

	model := r.mapper.TagToModel(tag)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save tag: %w", err)
	}

	return tag.SetID(model.ID)
}

func (r *TagRepository) GetByIDs(ctx context.Context, ids []uint) ([]*ticket.Tag, error) {
	if len(ids) == 0 {
		return []*ticket.Tag{}, nil
	}

	tx := db.GetTxFromContext(ctx, r.db)

	var rows []models.TagModel
	if err := tx.Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to find tags: %w", err)
	}

	return r.toDomainList(rows)
}

func (r *TagRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Tag, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []models.TagModel
	if err := tx.
		Joins("JOIN ticket_tags ON ticket_tags.tag_id = tags.id").
		Where("ticket_tags.ticket_id = ?", ticketID).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to find ticket tags: %w", err)
	}

	return r.toDomainList(rows)
}

func (r *TagRepository) List(ctx context.Context) ([]*ticket.Tag, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []models.TagModel
	if err := tx.Order("name ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}

	return r.toDomainList(rows)
}

func (r *TagRepository) toDomainList(rows []models.TagModel) ([]*ticket.Tag, error) {
	tags := make([]*ticket.Tag, 0, len(rows))
	for i := range rows {
		tag, err := r.mapper.TagToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, nil
}
