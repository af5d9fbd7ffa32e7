package domain

import (
	"time"
)

type FieldType string

const (
	FieldTypeText        FieldType = "text"
	FieldTypeTextarea    FieldType = "textarea"
	FieldTypeNumber      FieldType = "number"
	FieldTypeDate        FieldType = "date"
	FieldTypeBoolean     FieldType = "boolean"
	FieldTypeSelect      FieldType = "select"
	FieldTypeMultiSelect FieldType = "multi-select"
	FieldTypeGeneralCode FieldType = "general-code"
)

// Slot maps a field type to the single physical slot that holds its
// values. Choice types share the number slot (single select stores the
// chosen option id) except multi-select, which stores an option-id set.
func (t FieldType) Slot() ValueSlot {
	switch t {
	case FieldTypeText, FieldTypeTextarea:
		return SlotText
	case FieldTypeNumber, FieldTypeSelect, FieldTypeGeneralCode:
		return SlotNumber
	case FieldTypeDate:
		return SlotDate
	case FieldTypeBoolean:
		return SlotBoolean
	case FieldTypeMultiSelect:
		return SlotOptionSet
	default:
		return SlotNone
	}
}

// FieldDefinition describes one custom field of an entity type: its
// value type, validation constraints, and group membership.
type FieldDefinition struct {
	ID                ID
	EntityType        string
	Name              string
	DisplayName       string
	Description       string
	FieldType         FieldType
	IsRequired        bool
	IsActive          bool
	SortOrder         int
	DefaultValue      any
	MinValue          *float64
	MaxValue          *float64
	MaxLength         *int
	ValidationPattern string
	GeneralCodeType   *int
	GroupID           *ID
	GroupName         string
	IsVisible         bool
	Options           []FieldOption
	CreatedAt         time.Time
	CreatedBy         ActorID
	ModifiedAt        *time.Time
	ModifiedBy        *ActorID
}

func (d *FieldDefinition) IsNew() bool {
	return d.ID.IsZero()
}

func (d *FieldDefinition) StampCreated(actor ActorID) {
	d.CreatedAt = time.Now().UTC()
	d.CreatedBy = actor
}

func (d *FieldDefinition) StampModified(actor ActorID) {
	now := time.Now().UTC()
	d.ModifiedAt = &now
	d.ModifiedBy = &actor
}

func (d *FieldDefinition) Archive(actor ActorID) {
	d.IsActive = false
	d.StampModified(actor)
}

func (d *FieldDefinition) UpdateInfo(other FieldDefinition) {
	d.EntityType = other.EntityType
	d.Name = other.Name
	d.DisplayName = other.DisplayName
	d.Description = other.Description
	d.FieldType = other.FieldType
	d.IsRequired = other.IsRequired
	d.IsActive = other.IsActive
	d.SortOrder = other.SortOrder
	d.DefaultValue = other.DefaultValue
	d.MinValue = other.MinValue
	d.MaxValue = other.MaxValue
	d.MaxLength = other.MaxLength
	d.ValidationPattern = other.ValidationPattern
	d.GeneralCodeType = other.GeneralCodeType
	d.GroupID = other.GroupID
	d.GroupName = other.GroupName
	d.IsVisible = other.IsVisible
}
