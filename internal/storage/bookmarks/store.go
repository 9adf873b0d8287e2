package bookmarks

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/floos/floos/internal/domain"
	"github.com/floos/floos/internal/storage/kv"
)

// document is the canonical persisted shape: one JSON object mapping dial
// categories to ordered bookmark lists.
type document map[string][]domain.Bookmark

// Store handles per-category bookmark partitions. Every mutation is a
// full-document rewrite, which is fine at dial scale (tens of bookmarks per
// category) and keeps reads always-consistent.
type Store struct {
	sub kv.Substrate
	now func() time.Time
	mu  sync.Mutex
}

// NewStore creates a bookmark store. now may be nil (defaults to time.Now).
func NewStore(sub kv.Substrate, now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{sub: sub, now: now}
}

// List returns the category's bookmarks in insertion order, empty for
// unknown categories. Never fails.
func (s *Store) List(ctx context.Context, category string) []domain.Bookmark {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.load(ctx)[category]
	if list == nil {
		return []domain.Bookmark{}
	}
	return list
}

// All returns every category with its bookmarks (launcher queries span the
// whole dial). The returned map is a fresh load, safe for the caller to
// keep.
func (s *Store) All(ctx context.Context) map[string][]domain.Bookmark {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load(ctx)
}

// Add appends a bookmark to category, creating it implicitly on first
// insert. The title is trimmed and falls back to the URL when blank; the
// URL is stored as-is, unvalidated.
func (s *Store) Add(ctx context.Context, category string, draft domain.BookmarkDraft) (domain.Bookmark, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.load(ctx)
	now := s.now().UnixMilli()

	title := strings.TrimSpace(draft.Title)
	if title == "" {
		title = draft.URL
	}

	bookmark := domain.Bookmark{
		ID:        uuid.NewString(),
		Title:     title,
		URL:       draft.URL,
		CreatedAt: now,
		UpdatedAt: now,
	}

	doc[category] = append(doc[category], bookmark)

	if err := kv.Write(ctx, s.sub, kv.KeyBookmarks, doc); err != nil {
		return domain.Bookmark{}, err
	}
	return bookmark, nil
}

// Remove filters the category's list to exclude id and reports whether a
// removal actually occurred. Removing a non-existent id is a no-op, not an
// error; the rewrite still happens for a known category. An unknown
// category returns false without writing.
func (s *Store) Remove(ctx context.Context, category, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.load(ctx)
	list, ok := doc[category]
	if !ok {
		return false, nil
	}

	filtered := make([]domain.Bookmark, 0, len(list))
	for _, b := range list {
		if b.ID != id {
			filtered = append(filtered, b)
		}
	}
	doc[category] = filtered

	if err := kv.Write(ctx, s.sub, kv.KeyBookmarks, doc); err != nil {
		return false, err
	}
	return len(filtered) != len(list), nil
}

func (s *Store) load(ctx context.Context) document {
	doc := kv.ReadOrMigrate(ctx, s.sub, kv.KeyBookmarks, document{}, migrateLegacy)
	if doc == nil {
		return document{}
	}
	return doc
}

// migrateLegacy probes the old bookmark namespace. The shape never changed,
// only the key name, so decoding into the current document is the whole
// transform.
func migrateLegacy(ctx context.Context, sub kv.Substrate) (document, bool) {
	raw, ok, err := sub.Get(ctx, kv.LegacyKeyBookmarksFlat)
	if err != nil || !ok {
		return nil, false
	}
	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil || doc == nil {
		return nil, false
	}
	return doc, true
}
