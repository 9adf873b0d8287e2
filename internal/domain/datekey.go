package domain

import (
	"fmt"
	"time"
)

// DateKeyLayout is the ISO calendar date layout used as task partition key.
const DateKeyLayout = "2006-01-02"

// FormatDateKey renders t as a YYYY-MM-DD partition key.
func FormatDateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}

// ParseDateKey validates a partition key. The stores themselves treat keys
// as opaque; only the API boundary parses them.
func ParseDateKey(key string) (time.Time, error) {
	t, err := time.Parse(DateKeyLayout, key)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date key %q: %w", key, err)
	}
	return t, nil
}
