package internal

import (
	"time"

	"settings-server/internal/customfields/domain"
)

// Request models
type FieldGroupSaveRequest struct {
	ID          int64  `json:"id"`
	EntityType  string `json:"entity_type" validate:"required,min=1,max=50"`
	Name        string `json:"name" validate:"required,min=1,max=100"`
	DisplayName string `json:"display_name" validate:"max=200"`
	Description string `json:"description" validate:"max=500"`
	SortOrder   int    `json:"sort_order"`
	IsActive    bool   `json:"is_active"`
}

func (r FieldGroupSaveRequest) ToDomain() domain.FieldGroup {
	return domain.FieldGroup{
		ID:          domain.ID(r.ID),
		EntityType:  r.EntityType,
		Name:        r.Name,
		DisplayName: r.DisplayName,
		Description: r.Description,
		SortOrder:   r.SortOrder,
		IsActive:    r.IsActive,
	}
}

type ReorderRequest struct {
	IDs []int64 `json:"ids" validate:"required,min=1"`
}

func (r ReorderRequest) ToIDs() []domain.ID {
	ids := make([]domain.ID, len(r.IDs))
	for i, id := range r.IDs {
		ids[i] = domain.ID(id)
	}
	return ids
}

// Response models
type NameCheckResponse struct {
	Exists bool `json:"exists"`
}

type FieldGroupResponse struct {
	ID          int64                     `json:"id"`
	EntityType  string                    `json:"entity_type"`
	Name        string                    `json:"name"`
	DisplayName string                    `json:"display_name"`
	Description string                    `json:"description"`
	SortOrder   int                       `json:"sort_order"`
	IsActive    bool                      `json:"is_active"`
	Fields      []FieldDefinitionResponse `json:"fields,omitempty"`
	CreatedAt   time.Time                 `json:"created_at"`
	CreatedBy   int64                     `json:"created_by"`
	ModifiedAt  *time.Time                `json:"modified_at,omitempty"`
	ModifiedBy  *int64                    `json:"modified_by,omitempty"`
}

// Conversion functions
func ToFieldGroupResponse(group domain.FieldGroup) FieldGroupResponse {
	fields := make([]FieldDefinitionResponse, len(group.Fields))
	for i, field := range group.Fields {
		fields[i] = ToFieldDefinitionResponse(field)
	}
	if len(fields) == 0 {
		fields = nil
	}

	return FieldGroupResponse{
		ID:          int64(group.ID),
		EntityType:  group.EntityType,
		Name:        group.Name,
		DisplayName: group.DisplayName,
		Description: group.Description,
		SortOrder:   group.SortOrder,
		IsActive:    group.IsActive,
		Fields:      fields,
		CreatedAt:   group.CreatedAt,
		CreatedBy:   int64(group.CreatedBy),
		ModifiedAt:  group.ModifiedAt,
		ModifiedBy:  actorPtr(group.ModifiedBy),
	}
}

func actorPtr(actor *domain.ActorID) *int64 {
	if actor == nil {
		return nil
	}
	raw := int64(*actor)
	return &raw
}
