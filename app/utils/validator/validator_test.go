package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type createLinkInput struct {
	URL   string `json:"url" validate:"required,http_url"`
	Title string `json:"title" validate:"required,min=1,max=200"`
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	tests := []struct {
		name       string
		input      createLinkInput
		expectErr  bool
		wantFields []string
	}{
		{
			name:  "valid input",
			input: createLinkInput{URL: "https://go.dev/blog", Title: "The Go Blog"},
		},
		{
			name:       "bad url and empty title reported together",
			input:      createLinkInput{URL: "not-a-url", Title: ""},
			expectErr:  true,
			wantFields: []string{"url", "title"},
		},
		{
			name:       "missing url only",
			input:      createLinkInput{Title: "The Go Blog"},
			expectErr:  true,
			wantFields: []string{"url"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.input)

			if !tt.expectErr {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			validationErr, ok := err.(*ValidationError)
			require.True(t, ok, "expected a *ValidationError, got %T", err)

			assert.Len(t, validationErr.Errors, len(tt.wantFields))
			for _, field := range tt.wantFields {
				assert.Contains(t, validationErr.Errors, field,
					"field %q should be reported by JSON name", field)
			}
		})
	}
}

func TestValidator_TagName(t *testing.T) {
	v := New()

	tests := []struct {
		name  string
		tag   string
		valid bool
	}{
		{"simple tag", "golang", true},
		{"tag with hyphen", "web-dev", true},
		{"tag with digits", "http2", true},
		{"uppercase normalized before matching", "GoLang", true},
		{"spaces rejected", "go lang", false},
		{"empty rejected", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateVar(tt.tag, "tag_name")
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestHelperValidators(t *testing.T) {
	assert.True(t, IsValidEmail("ada@example.com"))
	assert.False(t, IsValidEmail("ada@"))

	assert.True(t, IsValidURL("https://go.dev"))
	assert.False(t, IsValidURL("go.dev"))

	assert.True(t, IsValidUUID("a9f6f4e8-35a2-4a0f-9f6c-0d6d5b2c7a11"))
	assert.False(t, IsValidUUID("not-a-uuid"))
}
