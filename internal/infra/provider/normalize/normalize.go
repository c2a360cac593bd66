// Package normalize holds the pure helpers shared by the provider
// normalizers: truncation, address extraction and provider timestamps.
package normalize

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mcnijman/go-emailaddress"
)

// PreviewLimit caps subjects and body previews.
const PreviewLimit = 500

const ellipsis = "..."

// Truncate shortens s to at most max runes, replacing the tail with "..."
// when it had to cut.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= len(ellipsis) {
		return string(runes[:max])
	}

	return string(runes[:max-len(ellipsis)]) + ellipsis
}

// TruncatePtr is Truncate for optional fields. Empty input yields nil.
func TruncatePtr(s string, max int) *string {
	if s == "" {
		return nil
	}
	out := Truncate(s, max)

	return &out
}

// StringPtr returns nil for the empty string.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

// Emails extracts every distinct address from a header value such as
// `"Ann" <ann@example.com>, bob@example.com`. Order is preserved.
func Emails(header string) []string {
	if strings.TrimSpace(header) == "" {
		return []string{}
	}

	seen := map[string]bool{}
	out := []string{}

	for _, addr := range emailaddress.Find([]byte(header), false) {
		s := addr.String()
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}

	return out
}

// FirstEmail returns the first address in header, or "".
func FirstEmail(header string) string {
	emails := Emails(header)
	if len(emails) == 0 {
		return ""
	}

	return emails[0]
}

// ParseSlackTS converts a Slack "seconds.micros" timestamp to UTC time.
func ParseSlackTS(ts string) (time.Time, error) {
	secPart, fracPart, _ := strings.Cut(ts, ".")

	sec, err := strconv.ParseInt(secPart, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid slack ts %q: %w", ts, err)
	}

	var nanos int64
	if fracPart != "" {
		if len(fracPart) > 9 {
			fracPart = fracPart[:9]
		}
		fracPart += strings.Repeat("0", 9-len(fracPart))
		nanos, err = strconv.ParseInt(fracPart, 10, 64)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid slack ts %q: %w", ts, err)
		}
	}

	return time.Unix(sec, nanos).UTC(), nil
}

// FormatSlackTS renders t the way Slack expects for the oldest/latest params.
func FormatSlackTS(t time.Time) string {
	return fmt.Sprintf("%d.%06d", t.Unix(), t.Nanosecond()/int(time.Microsecond))
}

// ParseGmailInternalDate converts Gmail's epoch milliseconds to UTC time.
func ParseGmailInternalDate(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
