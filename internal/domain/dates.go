package domain

import (
	"fmt"
	"time"
)

// DateLayouts are the accepted textual date forms, tried in order.
var DateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseDate accepts RFC3339, "2006-01-02 15:04" or "2006-01-02". Layouts
// without a zone are interpreted in loc, or UTC when loc is nil.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range DateLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: invalid date %q (expected RFC3339, YYYY-MM-DD HH:MM or YYYY-MM-DD)", ErrInvalidArgument, s)
}
