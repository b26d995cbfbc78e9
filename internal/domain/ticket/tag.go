package ticket

import (
	"fmt"
	"time"
)

// DefaultTagColor is the neutral gray assigned when no color is provided.
const DefaultTagColor = "#6B7280"

type Tag struct {
	id        uint
	name      string
	color     string
	createdAt time.Time
}

func NewTag(name string, color string) (*Tag, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("tag name is required")
	}
	if len(name) > 50 {
		return nil, fmt.Errorf("tag name exceeds maximum length of 50 characters")
	}
	if color == "" {
		color = DefaultTagColor
	}

	return &Tag{
		name:      name,
		color:     color,
		createdAt: time.Now(),
	}, nil
}

func ReconstructTag(id uint, name string, color string, createdAt time.Time) (*Tag, error) {
	if id == 0 {
		return nil, fmt.Errorf("tag ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("tag name is required")
	}

	return &Tag{
		id:        id,
		name:      name,
		color:     color,
		createdAt: createdAt,
	}, nil
}

func (t *Tag) ID() uint {
	return t.id
}

func (t *Tag) Name() string {
	return t.name
}

func (t *Tag) Color() string {
	return t.color
}

func (t *Tag) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Tag) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("tag ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("tag ID cannot be zero")
	}
	t.id = id
	return nil
}
