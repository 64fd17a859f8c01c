package calendar

import (
	"testing"
	"time"
)

func TestDaysIn(t *testing.T) {
	tests := []struct {
		month, year, want int
	}{
		{2, 2000, 29},
		{2, 1900, 28},
		{2, 2024, 29},
		{2, 2023, 28},
		{4, 2023, 30},
		{6, 2023, 30},
		{9, 2023, 30},
		{11, 2023, 30},
		{1, 2023, 31},
		{12, 2023, 31},
	}
	for _, tt := range tests {
		if got := DaysIn(tt.month, tt.year); got != tt.want {
			t.Errorf("DaysIn(%d, %d) = %d, want %d", tt.month, tt.year, got, tt.want)
		}
	}
}

func TestFirstWeekdayKnownDates(t *testing.T) {
	if got := FirstWeekday(0, 2024); got != 1 {
		t.Fatalf("January 2024 starts on %d, want 1 (Monday)", got)
	}
	if got := FirstWeekday(8, 2024); got != 0 {
		t.Fatalf("September 2024 starts on %d, want 0 (Sunday)", got)
	}
	if got := FirstWeekday(0, 1900); got != 1 {
		t.Fatalf("January 1900 starts on %d, want 1 (Monday)", got)
	}
}

func TestFirstWeekdayMatchesTimePackage(t *testing.T) {
	for year := 1900; year <= 2200; year++ {
		for month := 0; month < 12; month++ {
			want := int(time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC).Weekday())
			if got := FirstWeekday(month, year); got != want {
				t.Fatalf("FirstWeekday(%d, %d) = %d, want %d", month, year, got, want)
			}
		}
	}
}

func TestDaysInMatchesTimePackage(t *testing.T) {
	for year := 1900; year <= 2200; year++ {
		for month := 1; month <= 12; month++ {
			want := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
			if got := DaysIn(month, year); got != want {
				t.Fatalf("DaysIn(%d, %d) = %d, want %d", month, year, got, want)
			}
		}
	}
}

func TestDateClampAndFormat(t *testing.T) {
	d := Date{Day: 31, Month: 1, Year: 2023}.Clamp()
	if d.Day != 28 {
		t.Fatalf("expected February 2023 clamp to 28, got %d", d.Day)
	}
	if got := d.String(); got != "28/02/2023" {
		t.Fatalf("String() = %q", got)
	}
	if got := (Date{Day: 0, Month: 0, Year: 2024}).Clamp().Day; got != 1 {
		t.Fatalf("expected clamp to 1, got %d", got)
	}
	if got := d.MonthString(); got != "02/2023" {
		t.Fatalf("MonthString() = %q", got)
	}
}

func TestToday(t *testing.T) {
	now := time.Date(2024, time.March, 5, 13, 0, 0, 0, time.Local)
	if got := Today(now); got != (Date{Day: 5, Month: 2, Year: 2024}) {
		t.Fatalf("Today() = %+v", got)
	}
}
