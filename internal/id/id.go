// Package id converts between the 1-based task numbers shown to users and the
// 0-based positions used by managers.
package id

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatRef returns the display number for a 0-based index: 0 -> "1".
func FormatRef(index int) string {
	return strconv.Itoa(index + 1)
}

// ParseRef parses a task number like "3" or "#3" into a 0-based index.
func ParseRef(ref string) (int, error) {
	s := strings.TrimPrefix(strings.TrimSpace(ref), "#")
	if s == "" {
		return 0, fmt.Errorf("invalid task number %q: empty", ref)
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid task number %q: %w", ref, err)
	}
	if n < 1 {
		return 0, fmt.Errorf("invalid task number %q: must be 1 or greater", ref)
	}
	return n - 1, nil
}
