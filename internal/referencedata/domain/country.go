package domain

import (
	"time"
)

// Country is a lookup row keyed by its ISO-2 code. Both the code and
// the name are unique case-insensitively.
type Country struct {
	ID          int64
	CountryCode string
	CountryName string
	IsActive    bool
	CreatedAt   time.Time
	ModifiedAt  *time.Time
}

func (c *Country) IsNew() bool {
	return c.ID == 0
}

func (c *Country) StampCreated() {
	c.CreatedAt = time.Now().UTC()
}

func (c *Country) StampModified() {
	now := time.Now().UTC()
	c.ModifiedAt = &now
}
