package services

import "time"

// DateAtLocation truncates a timestamp to midnight of its calendar day in the
// given location. Menu dates are always stored this way so that range
// comparisons never shift across a day boundary.
func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

// ISOWeekRange returns the Monday and Sunday (inclusive) of the ISO week
// containing the given date.
func ISOWeekRange(value time.Time, location *time.Location) (time.Time, time.Time) {
	day := DateAtLocation(value, location)
	weekday := int(day.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	monday := day.AddDate(0, 0, 1-weekday)
	sunday := monday.AddDate(0, 0, 6)
	return monday, sunday
}

// MonthRange returns the first and last day (inclusive) of the month
// containing the given date.
func MonthRange(value time.Time, location *time.Location) (time.Time, time.Time) {
	day := DateAtLocation(value, location)
	first := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
	last := first.AddDate(0, 1, -1)
	return first, last
}

// FormatDayMonth renders a date as dd/mm for shopping list provenance.
func FormatDayMonth(value time.Time) string {
	return value.Format("02/01")
}
