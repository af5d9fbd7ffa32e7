package internal

import (
	"time"

	"settings-server/internal/customfields/domain"
	"settings-server/internal/customfields/usecases"
)

// Request models
type FieldValueWriteRequest struct {
	FieldDefinitionID int64      `json:"field_definition_id" validate:"required"`
	TextValue         *string    `json:"text_value,omitempty"`
	NumberValue       *float64   `json:"number_value,omitempty"`
	DateValue         *time.Time `json:"date_value,omitempty"`
	BooleanValue      *bool      `json:"boolean_value,omitempty"`
	SelectedOptionIDs []int64    `json:"selected_option_ids,omitempty"`
}

type FieldValueBatchRequest struct {
	Values []FieldValueWriteRequest `json:"values" validate:"required,min=1"`
}

func (r FieldValueBatchRequest) ToWrites(entityType string, entityID int64) []usecases.ValueWrite {
	writes := make([]usecases.ValueWrite, len(r.Values))
	for i, value := range r.Values {
		optionIDs := make([]domain.ID, len(value.SelectedOptionIDs))
		for j, id := range value.SelectedOptionIDs {
			optionIDs[j] = domain.ID(id)
		}
		if len(optionIDs) == 0 {
			optionIDs = nil
		}

		writes[i] = usecases.ValueWrite{
			EntityType:        entityType,
			EntityID:          entityID,
			FieldDefinitionID: domain.ID(value.FieldDefinitionID),
			Envelope: domain.ValueEnvelope{
				Text:      value.TextValue,
				Number:    value.NumberValue,
				Date:      value.DateValue,
				Boolean:   value.BooleanValue,
				OptionIDs: optionIDs,
			},
		}
	}
	return writes
}

// Response models
type FieldValueResponse struct {
	ID                int64      `json:"id"`
	EntityType        string     `json:"entity_type"`
	EntityID          int64      `json:"entity_id"`
	FieldDefinitionID int64      `json:"field_definition_id"`
	TextValue         *string    `json:"text_value,omitempty"`
	NumberValue       *float64   `json:"number_value,omitempty"`
	DateValue         *time.Time `json:"date_value,omitempty"`
	BooleanValue      *bool      `json:"boolean_value,omitempty"`
	SelectedOptionIDs []int64    `json:"selected_option_ids,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	CreatedBy         int64      `json:"created_by"`
	ModifiedAt        *time.Time `json:"modified_at,omitempty"`
	ModifiedBy        *int64     `json:"modified_by,omitempty"`
}

type FieldWithValueResponse struct {
	Definition FieldDefinitionResponse `json:"definition"`
	Value      *FieldValueResponse     `json:"value,omitempty"`
}

type GroupedValuesResponse struct {
	Group  FieldGroupResponse       `json:"group"`
	Fields []FieldWithValueResponse `json:"fields"`
}

// Conversion functions
func ToFieldValueResponse(value domain.FieldValue) FieldValueResponse {
	response := FieldValueResponse{
		ID:                int64(value.ID),
		EntityType:        value.EntityType,
		EntityID:          value.EntityID,
		FieldDefinitionID: int64(value.FieldDefinitionID),
		CreatedAt:         value.CreatedAt,
		CreatedBy:         int64(value.CreatedBy),
		ModifiedAt:        value.ModifiedAt,
		ModifiedBy:        actorPtr(value.ModifiedBy),
	}

	switch data := value.Data.(type) {
	case domain.TextData:
		text := string(data)
		response.TextValue = &text
	case domain.NumberData:
		number := float64(data)
		response.NumberValue = &number
	case domain.DateData:
		date := time.Time(data)
		response.DateValue = &date
	case domain.BooleanData:
		boolean := bool(data)
		response.BooleanValue = &boolean
	case domain.OptionSetData:
		ids := make([]int64, len(data))
		for i, id := range data {
			ids[i] = int64(id)
		}
		response.SelectedOptionIDs = ids
	}

	return response
}

func ToFieldWithValueResponse(field usecases.FieldWithValue) FieldWithValueResponse {
	response := FieldWithValueResponse{
		Definition: ToFieldDefinitionResponse(field.Definition),
	}
	if field.Value != nil {
		value := ToFieldValueResponse(*field.Value)
		response.Value = &value
	}
	return response
}
