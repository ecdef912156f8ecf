package util

import (
	"fmt"
	"strings"
	"time"
)

// Timestamp decodes the API's created_at values, which may or may not carry
// a zone. Zoneless values are taken as UTC.
type Timestamp struct {
	time.Time
}

const DisplayLayout = "2006-01-02 15:04"

var layouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.RFC1123,
	time.RFC1123Z,
}

func ParseTimestamp(s string) (Timestamp, error) {
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return Timestamp{Time: t}, nil
		}
	}
	return Timestamp{}, fmt.Errorf("unrecognised timestamp %q", s)
}

func (ts *Timestamp) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		ts.Time = time.Time{}
		return nil
	}
	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	*ts = parsed
	return nil
}

func (ts Timestamp) MarshalJSON() ([]byte, error) {
	if ts.IsZero() {
		return []byte(`null`), nil
	}
	return []byte(`"` + ts.UTC().Format(time.RFC3339) + `"`), nil
}

// Display renders the timestamp in loc as "YYYY-MM-DD HH:MM".
func (ts Timestamp) Display(loc *time.Location) string {
	if ts.IsZero() {
		return "-"
	}
	return ts.In(loc).Format(DisplayLayout)
}

// FormatClock renders seconds as m:ss.
func FormatClock(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int(seconds + 0.5)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// FormatMegabytes renders a byte count as MB with two decimals.
func FormatMegabytes(size int64) string {
	return fmt.Sprintf("%.2f MB", float64(size)/(1024*1024))
}
