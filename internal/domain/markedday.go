package domain

import "time"

const DefaultMarkType = "special"

var markedDayColors = map[string]string{
	"holiday": "#ff7675",
	"event":   "#74b9ff",
	"special": "#fdcb6e",
	"weekend": "#ffeaa7",
}

// MarkedDay highlights one calendar day column. Date is a DateKey.
type MarkedDay struct {
	Date  string
	Type  string
	Color string
}

// MarkedDayColor returns the fallback color for a mark type.
func MarkedDayColor(markType string) string {
	if c, ok := markedDayColors[markType]; ok {
		return c
	}
	return "#dfe6e9"
}

// DateKey formats the calendar day of t (in t's own location) as YYYY-MM-DD.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}
