package domain

import (
	"time"
)

// GeneralCode is a localized enumeration row. The triple
// (CodeType, CodeNumber, LanguageCode) is unique, with the language
// code compared case-insensitively.
type GeneralCode struct {
	ID               int64
	CodeType         int
	CodeNumber       int
	LanguageCode     string
	ShortDescription string
	LongDescription  string
	IsActive         bool
	OpeningRegDate   time.Time
	ClosingRegDate   *time.Time
	CreatedAt        time.Time
	ModifiedAt       *time.Time
}

func (g *GeneralCode) IsNew() bool {
	return g.ID == 0
}

func (g *GeneralCode) StampCreated() {
	g.CreatedAt = time.Now().UTC()
}

func (g *GeneralCode) StampModified() {
	now := time.Now().UTC()
	g.ModifiedAt = &now
}
