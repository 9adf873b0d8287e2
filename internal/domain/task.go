package domain

// Task represents a user-created reminder bound to a calendar date.
//
// Tasks live in per-date partitions of a single persisted document and are
// append-only: the store offers no edit or delete, only appends and bulk
// replacement of the whole document.
type Task struct {
	// ─────────────────────────────
	// Identity (immutable)
	// ─────────────────────────────

	// ID is the canonical unique identifier, generated at creation.
	ID string `json:"id"`

	// DateKey is the ISO YYYY-MM-DD partition the task belongs to.
	// Immutable after creation.
	DateKey string `json:"dateKey,omitempty"`

	// ─────────────────────────────
	// Content
	// ─────────────────────────────

	// Subject is the display text. May be empty, never absent.
	Subject string `json:"subject"`

	// Description is free text.
	Description string `json:"description"`

	// Link is an optional URL attached to the task. Stored opaque.
	Link string `json:"link"`

	// ─────────────────────────────
	// Metadata (epoch milliseconds)
	// ─────────────────────────────

	// CreatedAt is set once at creation. A caller-supplied value is honored.
	CreatedAt int64 `json:"createdAt"`

	// UpdatedAt is stamped on every write touching the record.
	UpdatedAt int64 `json:"updatedAt"`
}

// TaskDraft is the caller-supplied portion of a new task. Missing text
// fields become empty strings on store.
type TaskDraft struct {
	Subject     string
	Description string
	Link        string

	// CreatedAt is honored when non-zero (epoch milliseconds), otherwise
	// the store stamps the current time.
	CreatedAt int64
}
