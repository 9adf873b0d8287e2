package tasks

import (
	"context"
	"encoding/json"

	"github.com/floos/floos/internal/domain"
	"github.com/floos/floos/internal/storage/kv"
)

// Two task schemas predate the current flat document: an older flat store
// under a different key name, and a nested {version, tasksByDate} calendar
// document with older field spellings (title for subject, date for the
// partition key). migrateLegacy probes them newest-first and normalizes
// whichever it finds into the flat shape. A blind byte copy would make the
// nested shape read back as empty, so the probe is shape-detecting.
var legacyTaskKeys = []string{
	kv.LegacyKeyTasksFlat,
	kv.LegacyKeyCalendar,
	kv.LegacyKeyCalendarOrbit,
}

func migrateLegacy(ctx context.Context, sub kv.Substrate) (document, bool) {
	for _, key := range legacyTaskKeys {
		raw, ok, err := sub.Get(ctx, key)
		if err != nil || !ok {
			continue
		}
		if doc, ok := normalize(raw); ok {
			return doc, true
		}
	}
	return nil, false
}

// legacyTask tolerates both historical field spellings.
type legacyTask struct {
	ID          string `json:"id"`
	Subject     string `json:"subject"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
	CreatedAt   int64  `json:"createdAt"`
	UpdatedAt   int64  `json:"updatedAt"`
}

type legacyCalendar struct {
	Version     int                     `json:"version"`
	TasksByDate map[string][]legacyTask `json:"tasksByDate"`
}

// normalize detects which of the two shapes raw holds and converts it to
// the flat document. The nested probe runs first: a flat document decodes
// into legacyCalendar with a nil TasksByDate and falls through.
func normalize(raw []byte) (document, bool) {
	var nested legacyCalendar
	if err := json.Unmarshal(raw, &nested); err == nil && nested.TasksByDate != nil {
		return convert(nested.TasksByDate), true
	}

	var flat map[string][]legacyTask
	if err := json.Unmarshal(raw, &flat); err == nil && flat != nil {
		return convert(flat), true
	}

	return nil, false
}

func convert(byDate map[string][]legacyTask) document {
	doc := make(document, len(byDate))
	for dateKey, list := range byDate {
		out := make([]domain.Task, 0, len(list))
		for _, lt := range list {
			subject := lt.Subject
			if subject == "" {
				subject = lt.Title
			}
			out = append(out, domain.Task{
				ID:          lt.ID,
				DateKey:     dateKey,
				Subject:     subject,
				Description: lt.Description,
				Link:        lt.Link,
				CreatedAt:   lt.CreatedAt,
				UpdatedAt:   lt.UpdatedAt,
			})
		}
		doc[dateKey] = out
	}
	return doc
}
