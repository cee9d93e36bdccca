package domain

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
)

// User represents a local user row mirroring an identity-provider identity.
// The ID always equals the identity provider's subject identifier; it is
// never generated by this service.
type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	Image     string    `json:"image,omitempty"`
	Bio       string    `json:"bio,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewUserFromIdentity builds a User from an external identity.
func NewUserFromIdentity(identity *Identity) (*User, error) {
	if identity == nil {
		return nil, fmt.Errorf("identity is required")
	}

	if identity.ID == uuid.Nil {
		return nil, fmt.Errorf("identity ID is required")
	}

	email, err := identity.PrimaryEmail()
	if err != nil {
		return nil, fmt.Errorf("identity has no usable email: %w", err)
	}

	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("invalid email format: %w", err)
	}

	now := time.Now()

	return &User{
		ID:        identity.ID,
		Email:     email,
		Name:      identity.DisplayName(),
		Image:     identity.AvatarURL,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// UpdateProfile updates the user's mutable profile fields.
func (u *User) UpdateProfile(name, bio, image string) {
	if name != "" {
		u.Name = name
	}
	if bio != "" {
		u.Bio = bio
	}
	if image != "" {
		u.Image = image
	}
	u.UpdatedAt = time.Now()
}

// UserProfile is the user-facing profile representation.
type UserProfile struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	Image     string    `json:"image,omitempty"`
	Bio       string    `json:"bio,omitempty"`
	Followers int       `json:"followers"`
	Following int       `json:"following"`
}

// RequestContext carries the authenticated caller through a request.
// User is nil when the sync reconciler failed and the request proceeds
// in a degraded state.
type RequestContext struct {
	UserID uuid.UUID
	Email  string
	Name   string
	Admin  bool
	User   *User
}

// concatName joins first and last names, tolerating either being empty.
func concatName(first, last string) string {
	return strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
}
