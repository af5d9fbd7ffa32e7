package domain

import (
	"time"
)

// ID identifies a persisted record. Zero means "not yet persisted" and
// turns a save into a create.
type ID int64

func (i ID) IsZero() bool {
	return i == 0
}

// ActorID identifies the acting user for audit stamping. It is an
// opaque value supplied by the identity collaborator.
type ActorID int64

// FieldGroup is a named grouping of field definitions within one entity
// type. Groups are reference data shared by every entity instance.
type FieldGroup struct {
	ID          ID
	EntityType  string
	Name        string
	DisplayName string
	Description string
	SortOrder   int
	IsActive    bool
	Fields      []FieldDefinition
	CreatedAt   time.Time
	CreatedBy   ActorID
	ModifiedAt  *time.Time
	ModifiedBy  *ActorID
}

func (g *FieldGroup) IsNew() bool {
	return g.ID.IsZero()
}

func (g *FieldGroup) StampCreated(actor ActorID) {
	g.CreatedAt = time.Now().UTC()
	g.CreatedBy = actor
}

func (g *FieldGroup) StampModified(actor ActorID) {
	now := time.Now().UTC()
	g.ModifiedAt = &now
	g.ModifiedBy = &actor
}

// Archive marks the group inactive instead of removing it. Used when a
// hard delete would orphan definitions.
func (g *FieldGroup) Archive(actor ActorID) {
	g.IsActive = false
	g.StampModified(actor)
}

// UpdateInfo copies the caller-editable attributes from another group.
func (g *FieldGroup) UpdateInfo(other FieldGroup) {
	g.EntityType = other.EntityType
	g.Name = other.Name
	g.DisplayName = other.DisplayName
	g.Description = other.Description
	g.SortOrder = other.SortOrder
	g.IsActive = other.IsActive
}
