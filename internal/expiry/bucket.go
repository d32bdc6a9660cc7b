package expiry

import (
	"fmt"
	"strings"
	"time"

	"github.com/sahilm/fuzzy"
)

// Bucket is one of the canonical note lifetimes offered for selection
type Bucket int

const (
	ThirtySeconds Bucket = iota
	ThirtyMinutes
	Hour
	Day
	Week
	Month
	SixMonths
	Year
)

// DefaultBucket is preselected for new notes
const DefaultBucket = Hour

const day = 24 * time.Hour

var bucketDefs = []struct {
	label    string
	short    string
	duration time.Duration
}{
	ThirtySeconds: {"30 seconds", "30s", 30 * time.Second},
	ThirtyMinutes: {"30 minutes", "30m", 30 * time.Minute},
	Hour:          {"1 hour", "1h", time.Hour},
	Day:           {"1 day", "1d", day},
	Week:          {"1 week", "1w", 7 * day},
	Month:         {"1 month", "1mo", 30 * day},
	SixMonths:     {"6 months", "6mo", 180 * day},
	Year:          {"1 year", "1y", 365 * day},
}

// Buckets returns every bucket in ascending order
func Buckets() []Bucket {
	all := make([]Bucket, len(bucketDefs))
	for i := range bucketDefs {
		all[i] = Bucket(i)
	}
	return all
}

func (b Bucket) valid() bool {
	return b >= ThirtySeconds && b <= Year
}

// Duration returns the fixed lifetime of the bucket
func (b Bucket) Duration() time.Duration {
	if !b.valid() {
		return 0
	}
	return bucketDefs[b].duration
}

func (b Bucket) String() string {
	if !b.valid() {
		return fmt.Sprintf("Bucket(%d)", int(b))
	}
	return bucketDefs[b].label
}

// Next returns the following bucket, wrapping around after Year
func (b Bucket) Next() Bucket {
	return Bucket((int(b) + 1) % len(bucketDefs))
}

// Prev returns the preceding bucket, wrapping around before ThirtySeconds
func (b Bucket) Prev() Bucket {
	return Bucket((int(b) + len(bucketDefs) - 1) % len(bucketDefs))
}

// ParseBucket accepts a label such as "6 months" or a compact form such as "6mo"
func ParseBucket(s string) (Bucket, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, def := range bucketDefs {
		if s == def.label || s == def.short {
			return Bucket(i), nil
		}
	}
	return 0, fmt.Errorf("unknown expiry %q", s)
}

// MatchBucket resolves a partially typed expiry to the closest label.
func MatchBucket(query string) (Bucket, error) {
	if b, err := ParseBucket(query); err == nil {
		return b, nil
	}

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return 0, fmt.Errorf("empty expiry")
	}

	labels := make([]string, len(bucketDefs))
	for i, def := range bucketDefs {
		labels[i] = def.label
	}

	matches := fuzzy.Find(query, labels)
	if len(matches) == 0 {
		return 0, fmt.Errorf("no expiry matches %q (choose one of: %s)", query, strings.Join(labels, ", "))
	}
	return Bucket(matches[0].Index), nil
}
