package usecases

import (
	"context"

	"flowdesk/internal/application/ticket/dto"
	"flowdesk/internal/domain/ticket"
	"flowdesk/internal/shared/errors"
	"flowdesk/internal/shared/logger"
)

type CreateTagCommand struct {
	Name  string
	Color string
}

type CreateTagUseCase struct {
	tagRepo ticket.TagRepository
	logger  logger.Interface
}

func NewCreateTagUseCase(tagRepo ticket.TagRepository, logger logger.Interface) *CreateTagUseCase {
	return &CreateTagUseCase{
		tagRepo: tagRepo,
		logger:  logger,
	}
}

func (uc *CreateTagUseCase) Execute(ctx context.Context, cmd CreateTagCommand) (*dto.TagDTO, error) {
	tag, err := ticket.NewTag(cmd.Name, cmd.Color)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.tagRepo.Save(ctx, tag); err != nil {
		uc.logger.Errorw("failed to save tag", "name", cmd.Name, "error", err)
		return nil, err
	}

	uc.logger.Infow("tag created successfully", "tag_id", tag.ID(), "name", tag.Name())

	result := toTagDTO(tag)
	return &result, nil
}

type ListTagsUseCase struct {
	tagRepo ticket.TagRepository
	logger  logger.Interface
}

func NewListTagsUseCase(tagRepo ticket.TagRepository, logger logger.Interface) *ListTagsUseCase {
	return &ListTagsUseCase{
		tagRepo: tagRepo,
		logger:  logger,
	}
}

func (uc *ListTagsUseCase) Execute(ctx context.Context) ([]dto.TagDTO, error) {
	tags, err := uc.tagRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list tags", "error", err)
		return nil, err
	}
	return toTagDTOs(tags), nil
}
