package domain

import (
	"time"
)

// ValueSlot names the physical storage slot a value occupies. Exactly
// one slot is authoritative per field type.
type ValueSlot int

const (
	SlotNone ValueSlot = iota
	SlotText
	SlotNumber
	SlotDate
	SlotBoolean
	SlotOptionSet
)

// ValueData is the tagged union of the five value shapes a custom field
// can hold. A nil ValueData means "no value stored".
type ValueData interface {
	Slot() ValueSlot
}

type TextData string

func (TextData) Slot() ValueSlot { return SlotText }

type NumberData float64

func (NumberData) Slot() ValueSlot { return SlotNumber }

type DateData time.Time

func (DateData) Slot() ValueSlot { return SlotDate }

type BooleanData bool

func (BooleanData) Slot() ValueSlot { return SlotBoolean }

// OptionSetData is the ordered set of option ids chosen for a
// multi-select field.
type OptionSetData []ID

func (OptionSetData) Slot() ValueSlot { return SlotOptionSet }

// ValueEnvelope carries every candidate slot of an incoming value
// write. The owning definition's field type decides which slot is
// authoritative; the rest are ignored.
type ValueEnvelope struct {
	Text      *string
	Number    *float64
	Date      *time.Time
	Boolean   *bool
	OptionIDs []ID
}

// SelectData picks the authoritative slot from an envelope for this
// field type. It returns nil when that slot carries no value, so an
// empty multi-select set encodes to "no value".
func (t FieldType) SelectData(env ValueEnvelope) ValueData {
	switch t.Slot() {
	case SlotText:
		if env.Text == nil {
			return nil
		}
		return TextData(*env.Text)
	case SlotNumber:
		if env.Number == nil {
			return nil
		}
		return NumberData(*env.Number)
	case SlotDate:
		if env.Date == nil {
			return nil
		}
		return DateData(*env.Date)
	case SlotBoolean:
		if env.Boolean == nil {
			return nil
		}
		return BooleanData(*env.Boolean)
	case SlotOptionSet:
		if len(env.OptionIDs) == 0 {
			return nil
		}
		return OptionSetData(env.OptionIDs)
	default:
		return nil
	}
}

// FieldValue is the single stored value of one custom field for one
// entity instance. (EntityType, EntityID, FieldDefinitionID) is the
// natural key: at most one row exists per tuple.
type FieldValue struct {
	ID                ID
	EntityType        string
	EntityID          int64
	FieldDefinitionID ID
	Data              ValueData
	CreatedAt         time.Time
	CreatedBy         ActorID
	ModifiedAt        *time.Time
	ModifiedBy        *ActorID
}

func (v *FieldValue) StampCreated(actor ActorID) {
	v.CreatedAt = time.Now().UTC()
	v.CreatedBy = actor
}

func (v *FieldValue) StampModified(actor ActorID) {
	now := time.Now().UTC()
	v.ModifiedAt = &now
	v.ModifiedBy = &actor
}

// OptionIDs returns the stored option-id set, or nil for any other
// value shape.
func (v *FieldValue) OptionIDs() []ID {
	if set, ok := v.Data.(OptionSetData); ok {
		return []ID(set)
	}
	return nil
}
