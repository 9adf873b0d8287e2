package domain

// MemoryItem is a typed, timestamped free-form record, unrelated to tasks
// and bookmarks. Immutable once written: the memory log only inserts and
// full-scan reads, never updates in place.
type MemoryItem struct {
	// ID is the primary key of the memory log. Generated when absent.
	ID string `json:"id"`

	// Type is a caller-defined discriminator, ex: "note", "clipboard".
	Type string `json:"type"`

	// Content is the payload, opaque to the store.
	Content string `json:"content"`

	// CreatedAt is epoch milliseconds, defaulted to write time if not
	// supplied.
	CreatedAt int64 `json:"created_at"`
}
