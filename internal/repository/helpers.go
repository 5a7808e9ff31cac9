package repository

import (
	"fmt"
	"time"

	"github.com/alexanderramin/prazo/internal/domain"
)

// boolToInt converts a Go bool to an integer (0 or 1) for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// intToBool converts a SQLite integer (0 or 1) to a Go bool.
func intToBool(i int) bool {
	return i != 0
}

// nowUTC returns the current UTC time truncated to the second, the
// resolution RFC3339 keeps.
func nowUTC() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

// parseDate parses a stored YYYY-MM-DD column, naming the column on failure.
func parseDate(column, s string) (domain.Date, error) {
	d, err := domain.ParseDate(s)
	if err != nil {
		return domain.Date{}, fmt.Errorf("parsing %s: %w", column, err)
	}
	return d, nil
}
