package journal

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Date identifies one calendar day. It is the key the whole journal is
// organized around: every trade belongs to exactly one Date.
type Date struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// ParseDate parses a YYYY-MM-DD string into a Date. Parsing is strict: the
// day must exist in the month.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}, nil
}

// parseDateKey parses a stored map key. It is looser than ParseDate: the day
// is range-checked but not checked against the month, so a hand-edited file
// carrying an April 31 survives a reload instead of losing its trades.
func parseDateKey(s string) (Date, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("date key %q is not YYYY-MM-DD", s)
	}
	var n [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return Date{}, fmt.Errorf("date key %q is not YYYY-MM-DD", s)
		}
		n[i] = v
	}
	d := Date{Year: n[0], Month: n[1], Day: n[2]}
	if !d.Valid() {
		return Date{}, fmt.Errorf("date key %q out of range", s)
	}
	return d, nil
}

// Today returns the current local calendar day.
func Today() Date {
	now := time.Now()
	return Date{Year: now.Year(), Month: int(now.Month()), Day: now.Day()}
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Valid reports whether d looks like a calendar day. Month and day are only
// range-checked; day-in-month legality is deliberately not enforced.
func (d Date) Valid() bool {
	return d.Year > 0 &&
		d.Month >= 1 && d.Month <= 12 &&
		d.Day >= 1 && d.Day <= 31
}

// Before orders dates by year, then month, then day.
func (d Date) Before(o Date) bool {
	if d.Year != o.Year {
		return d.Year < o.Year
	}
	if d.Month != o.Month {
		return d.Month < o.Month
	}
	return d.Day < o.Day
}
