package report

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const runIDSuffixLength = 8

// NewRunID returns a sortable run identifier: a UTC timestamp plus a random
// suffix so runs finishing in the same second stay distinct.
func NewRunID(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:runIDSuffixLength]
	return FormatRunID(now, suffix)
}

// FormatRunID renders a run id from its parts.
func FormatRunID(now time.Time, suffix string) string {
	return now.UTC().Format("20060102T150405Z") + "-" + suffix
}
