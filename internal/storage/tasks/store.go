package tasks

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/floos/floos/internal/domain"
	"github.com/floos/floos/internal/storage/kv"
)

// document is the canonical persisted shape: one JSON object mapping ISO
// date keys to ordered task lists, replaced wholesale on every write.
type document map[string][]domain.Task

// Store handles per-date task partitions on top of the key-value substrate.
// There is no in-memory cache: every call reloads the authoritative
// document, trading performance for always-consistent reads.
type Store struct {
	sub kv.Substrate
	now func() time.Time
	mu  sync.Mutex
}

// NewStore creates a task store. now may be nil (defaults to time.Now);
// the app wires the synced clock here.
func NewStore(sub kv.Substrate, now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{sub: sub, now: now}
}

// List returns the partition's tasks in insertion order. Unknown partitions
// yield an empty list. List never fails: corruption and absence both read
// as empty.
func (s *Store) List(ctx context.Context, dateKey string) []domain.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.load(ctx)[dateKey]
	if list == nil {
		return []domain.Task{}
	}
	return list
}

// Add appends a new task to the dateKey partition, creating the partition
// if needed, and persists the whole document. Persistence failures
// propagate; nothing is appended in that case from the caller's point of
// view since the next load rereads the stored document.
func (s *Store) Add(ctx context.Context, dateKey string, draft domain.TaskDraft) (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.load(ctx)
	now := s.now().UnixMilli()

	task := domain.Task{
		ID:          uuid.NewString(),
		DateKey:     dateKey,
		Subject:     draft.Subject,
		Description: draft.Description,
		Link:        draft.Link,
		CreatedAt:   draft.CreatedAt,
		UpdatedAt:   now,
	}
	if task.CreatedAt == 0 {
		task.CreatedAt = now
	}

	doc[dateKey] = append(doc[dateKey], task)

	if err := kv.Write(ctx, s.sub, kv.KeyTasks, doc); err != nil {
		return domain.Task{}, err
	}
	return task, nil
}

// HasTasks reports whether any task exists for dateKey (calendar markers).
func (s *Store) HasTasks(ctx context.Context, dateKey string) bool {
	return len(s.List(ctx, dateKey)) > 0
}

func (s *Store) load(ctx context.Context) document {
	doc := kv.ReadOrMigrate(ctx, s.sub, kv.KeyTasks, document{}, migrateLegacy)
	if doc == nil {
		return document{}
	}
	return doc
}
