package internal

import (
	"time"

	"settings-server/internal/customfields/domain"
)

type FieldOption struct {
	ID                int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	FieldDefinitionID int64      `json:"field_definition_id" gorm:"not null;index"`
	Value             string     `json:"value" gorm:"size:100;not null"`
	DisplayText       string     `json:"display_text" gorm:"size:200;not null"`
	SortOrder         int        `json:"sort_order"`
	IsActive          bool       `json:"is_active"`
	CreatedAt         time.Time  `json:"created_at"`
	CreatedBy         int64      `json:"created_by"`
	ModifiedAt        *time.Time `json:"modified_at,omitempty"`
	ModifiedBy        *int64     `json:"modified_by,omitempty"`
}

func (FieldOption) TableName() string {
	return "custom_field_options"
}

func (o FieldOption) ToDomain() domain.FieldOption {
	return domain.FieldOption{
		ID:                domain.ID(o.ID),
		FieldDefinitionID: domain.ID(o.FieldDefinitionID),
		Value:             o.Value,
		DisplayText:       o.DisplayText,
		SortOrder:         o.SortOrder,
		IsActive:          o.IsActive,
		CreatedAt:         o.CreatedAt,
		CreatedBy:         domain.ActorID(o.CreatedBy),
		ModifiedAt:        o.ModifiedAt,
		ModifiedBy:        toActorPtr(o.ModifiedBy),
	}
}

func FromFieldOption(value domain.FieldOption) FieldOption {
	return FieldOption{
		ID:                int64(value.ID),
		FieldDefinitionID: int64(value.FieldDefinitionID),
		Value:             value.Value,
		DisplayText:       value.DisplayText,
		SortOrder:         value.SortOrder,
		IsActive:          value.IsActive,
		CreatedAt:         value.CreatedAt,
		CreatedBy:         int64(value.CreatedBy),
		ModifiedAt:        value.ModifiedAt,
		ModifiedBy:        fromActorPtr(value.ModifiedBy),
	}
}
