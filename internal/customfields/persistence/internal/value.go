package internal

import (
	"encoding/json"
	"time"

	"settings-server/internal/customfields/domain"
)

type FieldValue struct {
	ID                int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	EntityType        string     `json:"entity_type" gorm:"size:50;not null;index:idx_custom_field_values_entity,priority:1"`
	EntityID          int64      `json:"entity_id" gorm:"not null;index:idx_custom_field_values_entity,priority:2"`
	FieldDefinitionID int64      `json:"field_definition_id" gorm:"not null;index"`
	TextValue         *string    `json:"text_value,omitempty"`
	NumberValue       *float64   `json:"number_value,omitempty"`
	DateValue         *time.Time `json:"date_value,omitempty"`
	BooleanValue      *bool      `json:"boolean_value,omitempty"`
	SelectedOptions   *string    `json:"selected_options,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	CreatedBy         int64      `json:"created_by"`
	ModifiedAt        *time.Time `json:"modified_at,omitempty"`
	ModifiedBy        *int64     `json:"modified_by,omitempty"`
}

func (FieldValue) TableName() string {
	return "custom_field_values"
}

func (v FieldValue) ToDomain() domain.FieldValue {
	return domain.FieldValue{
		ID:                domain.ID(v.ID),
		EntityType:        v.EntityType,
		EntityID:          v.EntityID,
		FieldDefinitionID: domain.ID(v.FieldDefinitionID),
		Data:              decodeValueData(v),
		CreatedAt:         v.CreatedAt,
		CreatedBy:         domain.ActorID(v.CreatedBy),
		ModifiedAt:        v.ModifiedAt,
		ModifiedBy:        toActorPtr(v.ModifiedBy),
	}
}

func FromFieldValue(value domain.FieldValue) FieldValue {
	row := FieldValue{
		ID:                int64(value.ID),
		EntityType:        value.EntityType,
		EntityID:          value.EntityID,
		FieldDefinitionID: int64(value.FieldDefinitionID),
		CreatedAt:         value.CreatedAt,
		CreatedBy:         int64(value.CreatedBy),
		ModifiedAt:        value.ModifiedAt,
		ModifiedBy:        fromActorPtr(value.ModifiedBy),
	}
	encodeValueData(value.Data, &row)
	return row
}

// encodeValueData writes the tagged value into its single physical
// column, leaving every other slot empty.
func encodeValueData(data domain.ValueData, row *FieldValue) {
	row.TextValue = nil
	row.NumberValue = nil
	row.DateValue = nil
	row.BooleanValue = nil
	row.SelectedOptions = nil

	switch v := data.(type) {
	case domain.TextData:
		text := string(v)
		row.TextValue = &text
	case domain.NumberData:
		number := float64(v)
		row.NumberValue = &number
	case domain.DateData:
		date := time.Time(v)
		row.DateValue = &date
	case domain.BooleanData:
		boolean := bool(v)
		row.BooleanValue = &boolean
	case domain.OptionSetData:
		row.SelectedOptions = EncodeOptionIDs([]domain.ID(v))
	}
}

// decodeValueData reads back whichever slot is populated. Only one slot
// is ever written per row, so the first hit is authoritative.
func decodeValueData(row FieldValue) domain.ValueData {
	switch {
	case row.TextValue != nil:
		return domain.TextData(*row.TextValue)
	case row.NumberValue != nil:
		return domain.NumberData(*row.NumberValue)
	case row.DateValue != nil:
		return domain.DateData(*row.DateValue)
	case row.BooleanValue != nil:
		return domain.BooleanData(*row.BooleanValue)
	case row.SelectedOptions != nil:
		return domain.OptionSetData(DecodeOptionIDs(row.SelectedOptions))
	default:
		return nil
	}
}

// EncodeOptionIDs serializes a multi-select set as a JSON int array.
// An empty set encodes to NULL, meaning "no value".
func EncodeOptionIDs(ids []domain.ID) *string {
	if len(ids) == 0 {
		return nil
	}

	raw := make([]int64, len(ids))
	for i, id := range ids {
		raw[i] = int64(id)
	}

	encoded, err := json.Marshal(raw)
	if err != nil {
		return nil
	}

	text := string(encoded)
	return &text
}

// DecodeOptionIDs reads a stored multi-select set. Malformed content
// degrades to an empty set rather than failing the read.
func DecodeOptionIDs(raw *string) []domain.ID {
	if raw == nil || *raw == "" {
		return []domain.ID{}
	}

	var decoded []int64
	if err := json.Unmarshal([]byte(*raw), &decoded); err != nil {
		return []domain.ID{}
	}

	ids := make([]domain.ID, len(decoded))
	for i, id := range decoded {
		ids[i] = domain.ID(id)
	}

	return ids
}
