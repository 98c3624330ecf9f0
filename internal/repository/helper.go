package repository

import (
	"database/sql"
	"fmt"
	"time"
)

// ParseTime parses a stored timestamp in RFC3339 (with or without fractional seconds)
// or "2006-01-02" format and returns it in UTC.
func ParseTime(str string) (time.Time, error) {
	returnTime, err := time.Parse(time.RFC3339Nano, str)
	if err != nil {
		returnTime, err = time.Parse("2006-01-02", str)
		if err != nil {
			return time.Time{}, fmt.Errorf("failed to parse date: %w", err)
		}
	}
	return returnTime.UTC(), nil
}

// formatTime is the inverse of ParseTime. The zero time is stored as NULL.
func formatTime(t time.Time) sql.NullString {
	if t.IsZero() {
		return sql.NullString{}
	}
	return sql.NullString{String: t.UTC().Format(time.RFC3339Nano), Valid: true}
}
