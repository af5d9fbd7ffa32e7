package internal

import (
	"encoding/json"
	"time"

	"settings-server/internal/customfields/domain"
)

type FieldDefinition struct {
	ID                int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	EntityType        string     `json:"entity_type" gorm:"size:50;not null;index"`
	Name              string     `json:"name" gorm:"size:100;not null"`
	DisplayName       string     `json:"display_name" gorm:"size:200;not null"`
	Description       string     `json:"description"`
	FieldType         string     `json:"field_type" gorm:"size:30;not null"`
	IsRequired        bool       `json:"is_required"`
	IsActive          bool       `json:"is_active"`
	SortOrder         int        `json:"sort_order"`
	DefaultValue      *string    `json:"default_value,omitempty"`
	MinValue          *float64   `json:"min_value,omitempty"`
	MaxValue          *float64   `json:"max_value,omitempty"`
	MaxLength         *int       `json:"max_length,omitempty"`
	ValidationPattern string     `json:"validation_pattern"`
	GeneralCodeType   *int       `json:"general_code_type,omitempty"`
	GroupID           *int64     `json:"group_id,omitempty" gorm:"index"`
	GroupName         string     `json:"group_name"`
	IsVisible         bool       `json:"is_visible"`
	CreatedAt         time.Time  `json:"created_at"`
	CreatedBy         int64      `json:"created_by"`
	ModifiedAt        *time.Time `json:"modified_at,omitempty"`
	ModifiedBy        *int64     `json:"modified_by,omitempty"`
}

func (FieldDefinition) TableName() string {
	return "custom_field_definitions"
}

func (d FieldDefinition) ToDomain() domain.FieldDefinition {
	var groupID *domain.ID
	if d.GroupID != nil {
		id := domain.ID(*d.GroupID)
		groupID = &id
	}

	return domain.FieldDefinition{
		ID:                domain.ID(d.ID),
		EntityType:        d.EntityType,
		Name:              d.Name,
		DisplayName:       d.DisplayName,
		Description:       d.Description,
		FieldType:         domain.FieldType(d.FieldType),
		IsRequired:        d.IsRequired,
		IsActive:          d.IsActive,
		SortOrder:         d.SortOrder,
		DefaultValue:      decodeDefaultValue(d.DefaultValue),
		MinValue:          d.MinValue,
		MaxValue:          d.MaxValue,
		MaxLength:         d.MaxLength,
		ValidationPattern: d.ValidationPattern,
		GeneralCodeType:   d.GeneralCodeType,
		GroupID:           groupID,
		GroupName:         d.GroupName,
		IsVisible:         d.IsVisible,
		CreatedAt:         d.CreatedAt,
		CreatedBy:         domain.ActorID(d.CreatedBy),
		ModifiedAt:        d.ModifiedAt,
		ModifiedBy:        toActorPtr(d.ModifiedBy),
	}
}

func FromFieldDefinition(value domain.FieldDefinition) FieldDefinition {
	var groupID *int64
	if value.GroupID != nil {
		id := int64(*value.GroupID)
		groupID = &id
	}

	return FieldDefinition{
		ID:                int64(value.ID),
		EntityType:        value.EntityType,
		Name:              value.Name,
		DisplayName:       value.DisplayName,
		Description:       value.Description,
		FieldType:         string(value.FieldType),
		IsRequired:        value.IsRequired,
		IsActive:          value.IsActive,
		SortOrder:         value.SortOrder,
		DefaultValue:      encodeDefaultValue(value.DefaultValue),
		MinValue:          value.MinValue,
		MaxValue:          value.MaxValue,
		MaxLength:         value.MaxLength,
		ValidationPattern: value.ValidationPattern,
		GeneralCodeType:   value.GeneralCodeType,
		GroupID:           groupID,
		GroupName:         value.GroupName,
		IsVisible:         value.IsVisible,
		CreatedAt:         value.CreatedAt,
		CreatedBy:         int64(value.CreatedBy),
		ModifiedAt:        value.ModifiedAt,
		ModifiedBy:        fromActorPtr(value.ModifiedBy),
	}
}

func encodeDefaultValue(value any) *string {
	if value == nil {
		return nil
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return nil
	}

	encoded := string(raw)
	return &encoded
}

// decodeDefaultValue reads the stored JSON form back; malformed content
// degrades to the raw string rather than failing the read.
func decodeDefaultValue(raw *string) any {
	if raw == nil || *raw == "" {
		return nil
	}

	var value any
	if err := json.Unmarshal([]byte(*raw), &value); err != nil {
		return *raw
	}

	return value
}
