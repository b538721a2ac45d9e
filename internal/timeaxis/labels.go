package timeaxis

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/gantt/internal/domain"
)

// Names holds the month and weekday tables used for header text.
type Names struct {
	MonthsShort   [12]string
	MonthsLong    [12]string
	WeekdaysShort [7]string // Sunday first
}

var english = Names{
	MonthsShort:   [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
	MonthsLong:    [12]string{"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"},
	WeekdaysShort: [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
}

var namesByLanguage = map[string]Names{
	"en": english,
	"de": {
		MonthsShort:   [12]string{"Jan", "Feb", "Mär", "Apr", "Mai", "Jun", "Jul", "Aug", "Sep", "Okt", "Nov", "Dez"},
		MonthsLong:    [12]string{"Januar", "Februar", "März", "April", "Mai", "Juni", "Juli", "August", "September", "Oktober", "November", "Dezember"},
		WeekdaysShort: [7]string{"So", "Mo", "Di", "Mi", "Do", "Fr", "Sa"},
	},
	"fr": {
		MonthsShort:   [12]string{"janv", "févr", "mars", "avr", "mai", "juin", "juil", "août", "sept", "oct", "nov", "déc"},
		MonthsLong:    [12]string{"janvier", "février", "mars", "avril", "mai", "juin", "juillet", "août", "septembre", "octobre", "novembre", "décembre"},
		WeekdaysShort: [7]string{"dim", "lun", "mar", "mer", "jeu", "ven", "sam"},
	},
	"es": {
		MonthsShort:   [12]string{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sep", "oct", "nov", "dic"},
		MonthsLong:    [12]string{"enero", "febrero", "marzo", "abril", "mayo", "junio", "julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"},
		WeekdaysShort: [7]string{"dom", "lun", "mar", "mié", "jue", "vie", "sáb"},
	},
}

// NamesFor picks the table for a BCP 47-ish locale by its language prefix
// ("de-AT" -> "de"). Unknown locales get English.
func NamesFor(locale string) Names {
	lang := strings.ToLower(locale)
	if i := strings.IndexAny(lang, "-_"); i >= 0 {
		lang = lang[:i]
	}
	if n, ok := namesByLanguage[lang]; ok {
		return n
	}
	return english
}

// WeekNumber returns the ISO-8601 week of t's calendar day: shift to the
// Thursday of the same week (Sunday counts as day 7), then count weeks from
// January 1 of that Thursday's year.
func WeekNumber(t time.Time) int {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	dayNum := int(d.Weekday())
	if dayNum == 0 {
		dayNum = 7
	}
	d = d.AddDate(0, 0, 4-dayNum)
	yearStart := time.Date(d.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	days := d.Sub(yearStart).Hours() / 24
	return int(math.Ceil((days + 1) / 7))
}

func label(mode domain.ViewMode, names Names, t time.Time) string {
	switch mode {
	case domain.ViewHour:
		return t.Format("15")
	case domain.ViewDay:
		return strconv.Itoa(t.Day())
	case domain.ViewWeek:
		return fmt.Sprintf("W%d", WeekNumber(t))
	case domain.ViewMonth:
		return names.MonthsShort[t.Month()-1]
	}
	return ""
}

func parentLabel(mode domain.ViewMode, names Names, t time.Time) string {
	switch mode {
	case domain.ViewHour:
		return fmt.Sprintf("%s, %s %d", names.WeekdaysShort[t.Weekday()], names.MonthsShort[t.Month()-1], t.Day())
	case domain.ViewDay:
		return fmt.Sprintf("%s %d", names.MonthsLong[t.Month()-1], t.Year())
	case domain.ViewMonth:
		return strconv.Itoa(t.Year())
	}
	return ""
}
