// Package calendar holds the date arithmetic behind the month view.
package calendar

import (
	"fmt"
	"time"
)

// Date is a calendar cursor. Month is zero based (0 = January).
type Date struct {
	Day   int
	Month int
	Year  int
}

// Today returns the cursor for the local date of now.
func Today(now time.Time) Date {
	return Date{Day: now.Day(), Month: int(now.Month()) - 1, Year: now.Year()}
}

// DaysInMonth returns the number of days in the cursor's month.
func (d Date) DaysInMonth() int {
	return DaysIn(d.Month+1, d.Year)
}

// Clamp keeps Day within 1..DaysInMonth.
func (d Date) Clamp() Date {
	if d.Day < 1 {
		d.Day = 1
	}
	if last := d.DaysInMonth(); d.Day > last {
		d.Day = last
	}
	return d
}

// String formats the date as DD/MM/YYYY.
func (d Date) String() string {
	return fmt.Sprintf("%02d/%02d/%d", d.Day, d.Month+1, d.Year)
}

// MonthString formats the month as MM/YYYY.
func (d Date) MonthString() string {
	return fmt.Sprintf("%02d/%d", d.Month+1, d.Year)
}

// DaysIn returns the number of days in month (1..12) of year.
func DaysIn(month, year int) int {
	switch month {
	case 4, 6, 9, 11:
		return 30
	case 2:
		if IsLeap(year) {
			return 29
		}
		return 28
	default:
		return 31
	}
}

// IsLeap reports whether year is a Gregorian leap year.
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// FirstWeekday returns the weekday (0 = Sunday) of the first day of month
// (0..11) in year, on the proleptic Gregorian calendar.
func FirstWeekday(month, year int) int {
	days := daysFromCivil(year, month+1, 1)
	// 1970-01-01 was a Thursday.
	wd := (days + 4) % 7
	if wd < 0 {
		wd += 7
	}
	return wd
}

// daysFromCivil counts days since 1970-01-01 for y-m-d (m 1..12).
func daysFromCivil(y, m, d int) int {
	if m <= 2 {
		y--
	}
	era := y / 400
	if y < 0 && y%400 != 0 {
		era--
	}
	yoe := y - era*400
	mp := m - 3
	if m <= 2 {
		mp = m + 9
	}
	doy := (153*mp+2)/5 + d - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*146097 + doe - 719468
}
