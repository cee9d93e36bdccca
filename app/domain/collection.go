package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Collection is a named grouping of links owned by one user.
type Collection struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	IsPublic    bool      `json:"is_public"`
	UserID      uuid.UUID `json:"user_id"`
	LinkCount   int       `json:"link_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewCollection creates a collection with validation. Collections
// default to private.
func NewCollection(ownerID uuid.UUID, name string) (*Collection, error) {
	if ownerID == uuid.Nil {
		return nil, fmt.Errorf("owner ID is required")
	}

	if name == "" {
		return nil, fmt.Errorf("name is required")
	}

	now := time.Now()

	return &Collection{
		ID:        uuid.New(),
		Name:      name,
		UserID:    ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// OwnedBy reports whether the collection belongs to the given user.
func (c *Collection) OwnedBy(userID uuid.UUID) bool {
	return c.UserID == userID
}

// ReadableBy reports whether the given user may read the collection.
func (c *Collection) ReadableBy(userID uuid.UUID) bool {
	return c.IsPublic || c.OwnedBy(userID)
}

// CollectionUpdate carries a partial update. Nil fields are untouched.
type CollectionUpdate struct {
	Name        *string
	Description *string
	IsPublic    *bool
}

// Apply merges the update into the collection and bumps updated_at.
func (c *Collection) Apply(update CollectionUpdate) {
	if update.Name != nil {
		c.Name = *update.Name
	}
	if update.Description != nil {
		c.Description = *update.Description
	}
	if update.IsPublic != nil {
		c.IsPublic = *update.IsPublic
	}
	c.UpdatedAt = time.Now()
}
