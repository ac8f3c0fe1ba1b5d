package notes

import "time"

// DateLayout is the anniversary date format typed and exported.
const DateLayout = "2006-01-02"

// ParseDate reads an anniversary date as local midnight.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.Local)
}

// FallsOn reports whether the anniversary lands on day's calendar date.
// Annual notes match every year; a Feb 29 date falls on Feb 28 in common
// years.
func (n Note) FallsOn(day time.Time) bool {
	if n.Category != CategoryAnniversary || n.AnniversaryDate == nil {
		return false
	}
	d := *n.AnniversaryDate
	if !n.Annual {
		y1, m1, d1 := d.Date()
		y2, m2, d2 := day.Date()
		return y1 == y2 && m1 == m2 && d1 == d2
	}
	if d.Year() > day.Year() {
		return false
	}
	month, dom := d.Month(), d.Day()
	if month == time.February && dom == 29 && !isLeap(day.Year()) {
		dom = 28
	}
	return day.Month() == month && day.Day() == dom
}

// Years is the number of whole years from the anniversary date to day.
func (n Note) Years(day time.Time) int {
	if n.AnniversaryDate == nil {
		return 0
	}
	return max(day.Year()-n.AnniversaryDate.Year(), 0)
}

// DueOn returns the anniversary notes falling on day, preserving order.
func DueOn(list []Note, day time.Time) []Note {
	var out []Note
	for _, n := range list {
		if n.FallsOn(day) {
			out = append(out, n)
		}
	}
	return out
}

func isLeap(y int) bool {
	return y%4 == 0 && (y%100 != 0 || y%400 == 0)
}
