package internal

import (
	"time"

	"settings-server/internal/customfields/domain"
)

// Request models
type FieldDefinitionSaveRequest struct {
	ID                int64                    `json:"id"`
	EntityType        string                   `json:"entity_type" validate:"required,min=1,max=50"`
	Name              string                   `json:"name" validate:"required,min=1,max=100"`
	DisplayName       string                   `json:"display_name" validate:"max=200"`
	Description       string                   `json:"description" validate:"max=500"`
	FieldType         string                   `json:"field_type" validate:"required"`
	IsRequired        bool                     `json:"is_required"`
	IsActive          bool                     `json:"is_active"`
	SortOrder         int                      `json:"sort_order"`
	DefaultValue      any                      `json:"default_value,omitempty"`
	MinValue          *float64                 `json:"min_value,omitempty"`
	MaxValue          *float64                 `json:"max_value,omitempty"`
	MaxLength         *int                     `json:"max_length,omitempty"`
	ValidationPattern string                   `json:"validation_pattern,omitempty"`
	GeneralCodeType   *int                     `json:"general_code_type,omitempty"`
	GroupID           *int64                   `json:"group_id,omitempty"`
	IsVisible         bool                     `json:"is_visible"`
	Options           []FieldOptionSaveRequest `json:"options,omitempty"`
}

func (r FieldDefinitionSaveRequest) ToDomain() domain.FieldDefinition {
	options := make([]domain.FieldOption, len(r.Options))
	for i, option := range r.Options {
		options[i] = option.ToDomain()
	}
	if len(options) == 0 {
		options = nil
	}

	var groupID *domain.ID
	if r.GroupID != nil {
		id := domain.ID(*r.GroupID)
		groupID = &id
	}

	return domain.FieldDefinition{
		ID:                domain.ID(r.ID),
		EntityType:        r.EntityType,
		Name:              r.Name,
		DisplayName:       r.DisplayName,
		Description:       r.Description,
		FieldType:         domain.FieldType(r.FieldType),
		IsRequired:        r.IsRequired,
		IsActive:          r.IsActive,
		SortOrder:         r.SortOrder,
		DefaultValue:      r.DefaultValue,
		MinValue:          r.MinValue,
		MaxValue:          r.MaxValue,
		MaxLength:         r.MaxLength,
		ValidationPattern: r.ValidationPattern,
		GeneralCodeType:   r.GeneralCodeType,
		GroupID:           groupID,
		IsVisible:         r.IsVisible,
		Options:           options,
	}
}

type FieldOptionSaveRequest struct {
	ID          int64  `json:"id"`
	Value       string `json:"value" validate:"required,min=1,max=100"`
	DisplayText string `json:"display_text" validate:"max=200"`
	SortOrder   int    `json:"sort_order"`
	IsActive    bool   `json:"is_active"`
}

func (r FieldOptionSaveRequest) ToDomain() domain.FieldOption {
	return domain.FieldOption{
		ID:          domain.ID(r.ID),
		Value:       r.Value,
		DisplayText: r.DisplayText,
		SortOrder:   r.SortOrder,
		IsActive:    r.IsActive,
	}
}

// Response models
type FieldDefinitionResponse struct {
	ID                int64                 `json:"id"`
	EntityType        string                `json:"entity_type"`
	Name              string                `json:"name"`
	DisplayName       string                `json:"display_name"`
	Description       string                `json:"description"`
	FieldType         string                `json:"field_type"`
	IsRequired        bool                  `json:"is_required"`
	IsActive          bool                  `json:"is_active"`
	SortOrder         int                   `json:"sort_order"`
	DefaultValue      any                   `json:"default_value,omitempty"`
	MinValue          *float64              `json:"min_value,omitempty"`
	MaxValue          *float64              `json:"max_value,omitempty"`
	MaxLength         *int                  `json:"max_length,omitempty"`
	ValidationPattern string                `json:"validation_pattern,omitempty"`
	GeneralCodeType   *int                  `json:"general_code_type,omitempty"`
	GroupID           *int64                `json:"group_id,omitempty"`
	GroupName         string                `json:"group_name,omitempty"`
	IsVisible         bool                  `json:"is_visible"`
	Options           []FieldOptionResponse `json:"options,omitempty"`
	CreatedAt         time.Time             `json:"created_at"`
	CreatedBy         int64                 `json:"created_by"`
	ModifiedAt        *time.Time            `json:"modified_at,omitempty"`
	ModifiedBy        *int64                `json:"modified_by,omitempty"`
}

type FieldOptionResponse struct {
	ID                int64      `json:"id"`
	FieldDefinitionID int64      `json:"field_definition_id"`
	Value             string     `json:"value"`
	DisplayText       string     `json:"display_text"`
	SortOrder         int        `json:"sort_order"`
	IsActive          bool       `json:"is_active"`
	CreatedAt         time.Time  `json:"created_at"`
	CreatedBy         int64      `json:"created_by"`
	ModifiedAt        *time.Time `json:"modified_at,omitempty"`
	ModifiedBy        *int64     `json:"modified_by,omitempty"`
}

type GroupedDefinitionsResponse struct {
	Group  FieldGroupResponse        `json:"group"`
	Fields []FieldDefinitionResponse `json:"fields"`
}

// Conversion functions
func ToFieldDefinitionResponse(definition domain.FieldDefinition) FieldDefinitionResponse {
	options := make([]FieldOptionResponse, len(definition.Options))
	for i, option := range definition.Options {
		options[i] = ToFieldOptionResponse(option)
	}
	if len(options) == 0 {
		options = nil
	}

	var groupID *int64
	if definition.GroupID != nil {
		id := int64(*definition.GroupID)
		groupID = &id
	}

	return FieldDefinitionResponse{
		ID:                int64(definition.ID),
		EntityType:        definition.EntityType,
		Name:              definition.Name,
		DisplayName:       definition.DisplayName,
		Description:       definition.Description,
		FieldType:         string(definition.FieldType),
		IsRequired:        definition.IsRequired,
		IsActive:          definition.IsActive,
		SortOrder:         definition.SortOrder,
		DefaultValue:      definition.DefaultValue,
		MinValue:          definition.MinValue,
		MaxValue:          definition.MaxValue,
		MaxLength:         definition.MaxLength,
		ValidationPattern: definition.ValidationPattern,
		GeneralCodeType:   definition.GeneralCodeType,
		GroupID:           groupID,
		GroupName:         definition.GroupName,
		IsVisible:         definition.IsVisible,
		Options:           options,
		CreatedAt:         definition.CreatedAt,
		CreatedBy:         int64(definition.CreatedBy),
		ModifiedAt:        definition.ModifiedAt,
		ModifiedBy:        actorPtr(definition.ModifiedBy),
	}
}

func ToFieldOptionResponse(option domain.FieldOption) FieldOptionResponse {
	return FieldOptionResponse{
		ID:                int64(option.ID),
		FieldDefinitionID: int64(option.FieldDefinitionID),
		Value:             option.Value,
		DisplayText:       option.DisplayText,
		SortOrder:         option.SortOrder,
		IsActive:          option.IsActive,
		CreatedAt:         option.CreatedAt,
		CreatedBy:         int64(option.CreatedBy),
		ModifiedAt:        option.ModifiedAt,
		ModifiedBy:        actorPtr(option.ModifiedBy),
	}
}
