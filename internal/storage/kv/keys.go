package kv

// Current document keys. Each key holds one whole JSON document that is
// read, modified in memory and rewritten in full on every mutation.
const (
	// KeyTasks maps ISO date keys to ordered task lists.
	KeyTasks = "floos:tasks:v1"
	// KeyBookmarks maps dial categories to ordered bookmark lists.
	KeyBookmarks = "floos:bookmarks:v1"
)

// Legacy namespaces, probed once when the current key has never been
// written. They are never written to or deleted going forward, which keeps
// rollback to an older release safe.
const (
	// LegacyKeyTasksFlat holds the flat per-date-key shape under its old name.
	LegacyKeyTasksFlat = "floOS_tasks_v1"
	// LegacyKeyCalendar holds the nested {version, tasksByDate} shape.
	LegacyKeyCalendar = "floOS_calendar_v1"
	// LegacyKeyCalendarOrbit is the oldest nested calendar namespace.
	LegacyKeyCalendarOrbit = "orbit_calendar_v1"
	// LegacyKeyBookmarksFlat holds bookmarks in the current shape under the
	// old key name.
	LegacyKeyBookmarksFlat = "floOS_bookmarks_v1"
)
