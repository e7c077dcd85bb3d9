package sqlite

import (
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
)

// parseRFC3339 parses an RFC3339 formatted timestamp string.
// Returns an error if parsing fails with a descriptive message including the field name.
func parseRFC3339(value, fieldName string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", fieldName, err)
	}
	return t, nil
}

// hashRow computes the xxHash of the row cells and returns it as hex.
// Cells are joined with a unit separator so shifting text between
// columns changes the hash.
func hashRow(cells []string) string {
	h := xxhash.Sum64String(strings.Join(cells, "\x1f"))
	return fmt.Sprintf("%016x", h)
}
