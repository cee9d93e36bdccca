package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLink(t *testing.T) {
	ownerID := uuid.New()

	tests := []struct {
		name      string
		ownerID   uuid.UUID
		url       string
		title     string
		expectErr bool
	}{
		{"valid link", ownerID, "https://go.dev/blog", "The Go Blog", false},
		{"missing owner", uuid.Nil, "https://go.dev", "Go", true},
		{"missing title", ownerID, "https://go.dev", "", true},
		{"url without scheme", ownerID, "go.dev/blog", "Go", true},
		{"url without host", ownerID, "https://", "Go", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			link, err := NewLink(tt.ownerID, tt.url, tt.title)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, link)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.ownerID, link.UserID)
			assert.Equal(t, tt.url, link.URL)
			assert.True(t, link.IsPublic, "links default to public")
			assert.Zero(t, link.Clicks)
		})
	}
}

func TestLink_ReadableBy(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()

	private := &Link{ID: uuid.New(), UserID: owner, IsPublic: false}
	public := &Link{ID: uuid.New(), UserID: owner, IsPublic: true}

	assert.True(t, private.ReadableBy(owner))
	assert.False(t, private.ReadableBy(stranger))
	assert.False(t, private.ReadableBy(uuid.Nil))

	assert.True(t, public.ReadableBy(owner))
	assert.True(t, public.ReadableBy(stranger))
	assert.True(t, public.ReadableBy(uuid.Nil), "anonymous readers see public links")
}

func TestLink_Apply(t *testing.T) {
	link := &Link{
		ID:        uuid.New(),
		URL:       "https://go.dev",
		Title:     "Go",
		IsPublic:  true,
		UserID:    uuid.New(),
		UpdatedAt: time.Now().Add(-time.Hour),
	}
	before := link.UpdatedAt

	title := "The Go Programming Language"
	isPublic := false
	link.Apply(LinkUpdate{Title: &title, IsPublic: &isPublic})

	assert.Equal(t, "The Go Programming Language", link.Title)
	assert.False(t, link.IsPublic)
	assert.Equal(t, "https://go.dev", link.URL, "unset fields stay untouched")
	assert.True(t, link.UpdatedAt.After(before))
}

func TestNormalizeTagNames(t *testing.T) {
	tests := []struct {
		name      string
		input     []string
		want      []string
		expectErr bool
	}{
		{"lowercased and trimmed", []string{" Go ", "WEB"}, []string{"go", "web"}, false},
		{"duplicates collapse", []string{"go", "Go", "go "}, []string{"go"}, false},
		{"empty name rejected", []string{"go", "  "}, nil, true},
		{"overlong name rejected", []string{string(make([]byte, 41))}, nil, true},
		{"empty input allowed", nil, []string{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeTagNames(tt.input)

			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
