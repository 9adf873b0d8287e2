package domain

// Bookmark represents a shortcut entry inside a named dial category.
//
// Categories are not stored entities: one comes into existence on its first
// bookmark insert and fades away when its list empties.
type Bookmark struct {
	// ─────────────────────────────
	// Identity (immutable)
	// ─────────────────────────────

	// ID is unique within its category (not globally enforced).
	ID string `json:"id"`

	// ─────────────────────────────
	// Content
	// ─────────────────────────────

	// Title is the display label. Falls back to URL when blank.
	Title string `json:"title"`

	// URL is the target. Required, stored opaque: the store performs no
	// URL validation.
	URL string `json:"url"`

	// ─────────────────────────────
	// Metadata (epoch milliseconds)
	// ─────────────────────────────

	CreatedAt int64 `json:"createdAt"`
	UpdatedAt int64 `json:"updatedAt"`
}

// BookmarkDraft is the caller-supplied portion of a new bookmark.
type BookmarkDraft struct {
	Title string
	URL   string
}
