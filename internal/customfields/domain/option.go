package domain

import (
	"time"
)

// FieldOption is one selectable choice of a select, multi-select, or
// general-code field. Options exist structurally for any field type but
// only choice types consume them.
type FieldOption struct {
	ID                ID
	FieldDefinitionID ID
	Value             string
	DisplayText       string
	SortOrder         int
	IsActive          bool
	CreatedAt         time.Time
	CreatedBy         ActorID
	ModifiedAt        *time.Time
	ModifiedBy        *ActorID
}

func (o *FieldOption) IsNew() bool {
	return o.ID.IsZero()
}

func (o *FieldOption) StampCreated(actor ActorID) {
	o.CreatedAt = time.Now().UTC()
	o.CreatedBy = actor
}

func (o *FieldOption) StampModified(actor ActorID) {
	now := time.Now().UTC()
	o.ModifiedAt = &now
	o.ModifiedBy = &actor
}

func (o *FieldOption) Archive(actor ActorID) {
	o.IsActive = false
	o.StampModified(actor)
}

// UpdateInfo copies the caller-editable attributes from another option.
func (o *FieldOption) UpdateInfo(other FieldOption) {
	o.Value = other.Value
	o.DisplayText = other.DisplayText
	o.SortOrder = other.SortOrder
	o.IsActive = other.IsActive
}
