package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Tag is a globally shared label. Tags are not owned per-user: any
// authenticated actor may create one, anyone may read all, none are
// ever deleted.
type Tag struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// NormalizeTagName canonicalizes a tag name for connect-or-create
// lookups so "Go" and "go " resolve to the same tag row.
func NormalizeTagName(name string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized == "" {
		return "", fmt.Errorf("tag name is empty")
	}
	if len(normalized) > 40 {
		return "", fmt.Errorf("tag name too long: %d characters", len(normalized))
	}
	return normalized, nil
}

// NormalizeTagNames canonicalizes and de-duplicates a tag name list.
func NormalizeTagNames(names []string) ([]string, error) {
	seen := make(map[string]struct{}, len(names))
	result := make([]string, 0, len(names))

	for _, name := range names {
		normalized, err := NormalizeTagName(name)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[normalized]; ok {
			continue
		}
		seen[normalized] = struct{}{}
		result = append(result, normalized)
	}

	return result, nil
}
