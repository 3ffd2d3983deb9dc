package dates

import "time"

// FirstDayOfMonth returns midnight of the first day of t's month in t's
// location.
func FirstDayOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()

	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}

func EqualMonth(lhs, rhs time.Time) bool {
	ly, lm, _ := lhs.Date()
	ry, rm, _ := rhs.Date()

	return ly == ry && lm == rm
}

func DateString(t time.Time) string {
	return t.Format("2006-01-02")
}
