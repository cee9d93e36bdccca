package domain

import "github.com/google/uuid"

// CreateLinkRequest is the payload for saving a new link.
type CreateLinkRequest struct {
	URL         string   `json:"url" validate:"required,http_url"`
	Title       string   `json:"title" validate:"required,min=1,max=200"`
	Description string   `json:"description" validate:"omitempty,max=2000"`
	Image       string   `json:"image" validate:"omitempty,http_url"`
	IsPublic    *bool    `json:"is_public"`
	Tags        []string `json:"tags" validate:"omitempty,max=20,dive,tag_name"`
}

// UpdateLinkRequest is a partial link update. Nil fields are untouched.
type UpdateLinkRequest struct {
	URL         *string  `json:"url" validate:"omitempty,http_url"`
	Title       *string  `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string  `json:"description" validate:"omitempty,max=2000"`
	Image       *string  `json:"image" validate:"omitempty,http_url"`
	IsPublic    *bool    `json:"is_public"`
	Tags        []string `json:"tags" validate:"omitempty,max=20,dive,tag_name"`
}

// Update converts the request into a domain-level partial update.
func (r *UpdateLinkRequest) Update() LinkUpdate {
	return LinkUpdate{
		URL:         r.URL,
		Title:       r.Title,
		Description: r.Description,
		Image:       r.Image,
		IsPublic:    r.IsPublic,
		Tags:        r.Tags,
	}
}

// CreateCollectionRequest is the payload for creating a collection.
type CreateCollectionRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"omitempty,max=2000"`
	IsPublic    *bool  `json:"is_public"`
}

// UpdateCollectionRequest is a partial collection update.
type UpdateCollectionRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	IsPublic    *bool   `json:"is_public"`
}

// Update converts the request into a domain-level partial update.
func (r *UpdateCollectionRequest) Update() CollectionUpdate {
	return CollectionUpdate{
		Name:        r.Name,
		Description: r.Description,
		IsPublic:    r.IsPublic,
	}
}

// CollectionLinkRequest references a link to add to a collection.
type CollectionLinkRequest struct {
	LinkID uuid.UUID `json:"link_id" validate:"required"`
}

// UpdateProfileRequest is the payload for editing the caller's profile.
type UpdateProfileRequest struct {
	Name  string `json:"name" validate:"omitempty,max=100"`
	Bio   string `json:"bio" validate:"omitempty,max=500"`
	Image string `json:"image" validate:"omitempty,http_url"`
}

// ListOptions carries pagination for list endpoints.
type ListOptions struct {
	Limit  int
	Offset int
}

// Normalize clamps pagination to sane bounds.
func (o ListOptions) Normalize() ListOptions {
	if o.Limit <= 0 || o.Limit > 100 {
		o.Limit = 20
	}
	if o.Offset < 0 {
		o.Offset = 0
	}
	return o
}
