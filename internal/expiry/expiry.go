// Package expiry implements the expiry-sentinel policy shared by user
// subscriptions and license keys: a sentinel is either the literal
// "lifetime" (never expires) or a UTC timestamp.
package expiry

import (
	"errors"
	"strings"
	"time"
)

// Lifetime is the sentinel meaning "never expires".
const Lifetime = "lifetime"

// layout is the fixed timestamp format stored by the backend. Fractional
// seconds and a trailing zone marker may appear on the wire but carry no
// meaning and are stripped before parsing.
const layout = "2006-01-02T15:04:05"

// ErrInvalidFormat flags a sentinel that is neither "lifetime" nor a
// parsable timestamp. Such values are reported as expired (deny rather than
// allow), with this error attached for diagnostics.
var ErrInvalidFormat = errors.New("invalid expiry date format")

// IsExpired reports whether the sentinel is strictly earlier than now (in
// UTC). "lifetime" is never expired. An unparsable sentinel yields
// (true, ErrInvalidFormat).
func IsExpired(sentinel string, now time.Time) (bool, error) {
	if sentinel == Lifetime {
		return false, nil
	}

	s := strings.TrimSuffix(sentinel, "Z")
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		s = s[:dot]
	}

	t, err := time.Parse(layout, s)
	if err != nil {
		return true, ErrInvalidFormat
	}
	return t.Before(now.UTC()), nil
}

// Format renders a time in the backend's timestamp layout (UTC, no zone
// marker).
func Format(t time.Time) string {
	return t.UTC().Format(layout)
}
