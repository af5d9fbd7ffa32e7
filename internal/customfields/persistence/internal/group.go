package internal

import (
	"time"

	"settings-server/internal/customfields/domain"
)

type FieldGroup struct {
	ID          int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	EntityType  string     `json:"entity_type" gorm:"size:50;not null;index"`
	Name        string     `json:"name" gorm:"size:100;not null"`
	DisplayName string     `json:"display_name" gorm:"size:200;not null"`
	Description string     `json:"description"`
	SortOrder   int        `json:"sort_order"`
	IsActive    bool       `json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
	CreatedBy   int64      `json:"created_by"`
	ModifiedAt  *time.Time `json:"modified_at,omitempty"`
	ModifiedBy  *int64     `json:"modified_by,omitempty"`
}

func (FieldGroup) TableName() string {
	return "custom_field_groups"
}

func (g FieldGroup) ToDomain() domain.FieldGroup {
	return domain.FieldGroup{
		ID:          domain.ID(g.ID),
		EntityType:  g.EntityType,
		Name:        g.Name,
		DisplayName: g.DisplayName,
		Description: g.Description,
		SortOrder:   g.SortOrder,
		IsActive:    g.IsActive,
		CreatedAt:   g.CreatedAt,
		CreatedBy:   domain.ActorID(g.CreatedBy),
		ModifiedAt:  g.ModifiedAt,
		ModifiedBy:  toActorPtr(g.ModifiedBy),
	}
}

func FromFieldGroup(value domain.FieldGroup) FieldGroup {
	return FieldGroup{
		ID:          int64(value.ID),
		EntityType:  value.EntityType,
		Name:        value.Name,
		DisplayName: value.DisplayName,
		Description: value.Description,
		SortOrder:   value.SortOrder,
		IsActive:    value.IsActive,
		CreatedAt:   value.CreatedAt,
		CreatedBy:   int64(value.CreatedBy),
		ModifiedAt:  value.ModifiedAt,
		ModifiedBy:  fromActorPtr(value.ModifiedBy),
	}
}

func toActorPtr(value *int64) *domain.ActorID {
	if value == nil {
		return nil
	}
	actor := domain.ActorID(*value)
	return &actor
}

func fromActorPtr(value *domain.ActorID) *int64 {
	if value == nil {
		return nil
	}
	raw := int64(*value)
	return &raw
}
