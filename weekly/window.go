package weekly

import (
	"errors"
	"time"
)

// DateFormat is the ISO date layout used as the key for menus, order
// selections, and week starts everywhere in the system.
const DateFormat = "2006-01-02"

var ErrNotMonday = errors.New("week start must be a Monday")

// WindowStart returns the Monday anchoring the order window for a given
// day: the next Monday, or the day itself when it already is a Monday.
func WindowStart(today time.Time) time.Time {
	d := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	shift := (int(time.Monday) - int(d.Weekday()) + 7) % 7
	return d.AddDate(0, 0, shift)
}

// ParseDate validates an ISO date key.
func ParseDate(date string) (time.Time, error) {
	return time.Parse(DateFormat, date)
}

// WeekOf returns the week-start key (the Monday) of the week containing
// the given date. Empty on a malformed date.
func WeekOf(date string) string {
	t, err := time.Parse(DateFormat, date)
	if err != nil {
		return ""
	}
	shift := (int(t.Weekday()) - int(time.Monday) + 7) % 7
	return t.AddDate(0, 0, -shift).Format(DateFormat)
}

// Window is one week of the ordering calendar, anchored on its Monday.
type Window struct {
	Start time.Time
}

// At returns the initial window shown for "today".
func At(today time.Time) Window {
	return Window{Start: WindowStart(today)}
}

// Parse builds a window from a week-start string. The date must be a
// Monday — anything else means the caller computed the key wrong.
func Parse(weekStart string) (Window, error) {
	t, err := time.Parse(DateFormat, weekStart)
	if err != nil {
		return Window{}, err
	}
	if t.Weekday() != time.Monday {
		return Window{}, ErrNotMonday
	}
	return Window{Start: t}, nil
}

// Key is the canonical week-start string the window is stored under.
func (w Window) Key() string {
	return w.Start.Format(DateFormat)
}

// Days returns all seven dates of the week, Monday through Sunday.
func (w Window) Days() []string {
	return w.dates(7)
}

// Workdays returns the Monday–Friday dates of the week.
func (w Window) Workdays() []string {
	return w.dates(5)
}

func (w Window) dates(n int) []string {
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = w.Start.AddDate(0, 0, i).Format(DateFormat)
	}
	return out
}

// End returns the last date covered by n days of the window.
func (w Window) End(n int) string {
	return w.Start.AddDate(0, 0, n-1).Format(DateFormat)
}

// Next returns the following week's window.
func (w Window) Next() Window {
	return Window{Start: w.Start.AddDate(0, 0, 7)}
}

// Prev returns the previous week's window, clamped so navigation never
// goes behind the floor window.
func (w Window) Prev(floor Window) Window {
	p := Window{Start: w.Start.AddDate(0, 0, -7)}
	if p.Start.Before(floor.Start) {
		return floor
	}
	return p
}

// Before reports whether this window starts before the other one.
func (w Window) Before(other Window) bool {
	return w.Start.Before(other.Start)
}
