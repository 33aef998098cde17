package dateutil

import (
	"time"
)

// ISODate is the canonical date layout used across persisted records.
const ISODate = "2006-01-02"

// Age calculates the age at a given date
func Age(birthDate, atDate time.Time) int {
	age := atDate.Year() - birthDate.Year()
	if atDate.Month() < birthDate.Month() ||
		(atDate.Month() == birthDate.Month() && atDate.Day() < birthDate.Day()) {
		age--
	}
	return age
}

// WholeMonthsBetween calculates the whole-month difference between two dates.
// Only calendar months are counted; the day of month is ignored. The result is
// negative when toDate precedes fromDate.
func WholeMonthsBetween(fromDate, toDate time.Time) int {
	return (toDate.Year()-fromDate.Year())*12 + int(toDate.Month()) - int(fromDate.Month())
}

// ParseISODate parses a YYYY-MM-DD date string.
func ParseISODate(value string) (time.Time, error) {
	return time.Parse(ISODate, value)
}

// FormatISODate formats a date as YYYY-MM-DD.
func FormatISODate(date time.Time) string {
	return date.Format(ISODate)
}
