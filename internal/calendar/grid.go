package calendar

import (
	"fmt"
	"time"

	"github.com/floos/floos/internal/domain"
)

// Cell is one day of a month grid.
type Cell struct {
	Day      int    `json:"day"`
	DateKey  string `json:"dateKey"`
	HasTasks bool   `json:"hasTasks"`
}

// Grid is a rendered month: the number of leading blank cells (Sunday-first
// week) followed by one cell per day. Month navigation state belongs to the
// caller; the grid itself is pure.
type Grid struct {
	Year    int    `json:"year"`
	Month   int    `json:"month"` // 1-12
	Label   string `json:"label"` // ex: "January 2026"
	Leading int    `json:"leading"`
	Cells   []Cell `json:"cells"`
}

// MonthGrid builds the grid for year/month. hasTasks marks days that have
// at least one task; nil means no markers.
func MonthGrid(year int, month time.Month, hasTasks func(dateKey string) bool) Grid {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)

	grid := Grid{
		Year:    year,
		Month:   int(month),
		Label:   fmt.Sprintf("%s %d", month, year),
		Leading: int(first.Weekday()),
		Cells:   make([]Cell, 0, 31),
	}

	for day := 1; day <= DaysInMonth(year, month); day++ {
		key := domain.FormatDateKey(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
		cell := Cell{Day: day, DateKey: key}
		if hasTasks != nil {
			cell.HasTasks = hasTasks(key)
		}
		grid.Cells = append(grid.Cells, cell)
	}

	return grid
}

// DaysInMonth returns the day count, leap-aware: day 0 of the next month is
// the last day of this one.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
