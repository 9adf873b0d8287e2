package dial

import (
	"fmt"

	"github.com/floos/floos/internal/domain"
)

// Mapper converts dial config entries into bookmark drafts keyed by
// category.
type Mapper struct{}

// NewMapper creates a new mapper instance
func NewMapper() *Mapper {
	return &Mapper{}
}

// MapSeeds converts a Config into per-category bookmark drafts. Categories
// without a name and entries without a URL are skipped; the store supplies
// the title fallback.
func (m *Mapper) MapSeeds(config Config) (map[string][]domain.BookmarkDraft, error) {
	seeds := make(map[string][]domain.BookmarkDraft)

	for _, category := range config {
		if category.Name == "" {
			continue
		}
		for _, entry := range category.Entries {
			if entry.URL == "" {
				continue
			}
			seeds[category.Name] = append(seeds[category.Name], domain.BookmarkDraft{
				Title: entry.Title,
				URL:   entry.URL,
			})
		}
	}

	if len(seeds) == 0 {
		return nil, fmt.Errorf("no valid dial entries found in config")
	}

	return seeds, nil
}
