package domain

import (
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"
)

// Link is a saved URL owned by a single user.
type Link struct {
	ID          uuid.UUID `json:"id"`
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Image       string    `json:"image,omitempty"`
	Clicks      int       `json:"clicks"`
	IsPublic    bool      `json:"is_public"`
	UserID      uuid.UUID `json:"user_id"`
	Tags        []Tag     `json:"tags,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewLink creates a link with validation. Links default to public.
func NewLink(ownerID uuid.UUID, rawURL, title string) (*Link, error) {
	if ownerID == uuid.Nil {
		return nil, fmt.Errorf("owner ID is required")
	}

	if title == "" {
		return nil, fmt.Errorf("title is required")
	}

	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("invalid link URL: %q", rawURL)
	}

	now := time.Now()

	return &Link{
		ID:        uuid.New(),
		URL:       rawURL,
		Title:     title,
		IsPublic:  true,
		UserID:    ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// OwnedBy reports whether the link belongs to the given user.
func (l *Link) OwnedBy(userID uuid.UUID) bool {
	return l.UserID == userID
}

// ReadableBy reports whether the given user may read the link. Public
// links are readable by anyone, including anonymous callers (uuid.Nil).
func (l *Link) ReadableBy(userID uuid.UUID) bool {
	return l.IsPublic || l.OwnedBy(userID)
}

// LinkUpdate carries a partial update. Nil fields are left untouched.
type LinkUpdate struct {
	URL         *string
	Title       *string
	Description *string
	Image       *string
	IsPublic    *bool
	Tags        []string
}

// Apply merges the update into the link and bumps updated_at.
func (l *Link) Apply(update LinkUpdate) {
	if update.URL != nil {
		l.URL = *update.URL
	}
	if update.Title != nil {
		l.Title = *update.Title
	}
	if update.Description != nil {
		l.Description = *update.Description
	}
	if update.Image != nil {
		l.Image = *update.Image
	}
	if update.IsPublic != nil {
		l.IsPublic = *update.IsPublic
	}
	l.UpdatedAt = time.Now()
}
