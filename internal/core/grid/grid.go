// Package grid computes the fixed 6x7 month grid used by the calendar views.
// The grid always has exactly 42 cells so the rendered height never changes
// between months; leading and trailing cells borrow days from the adjacent
// months and are flagged as outside the displayed month
package grid

import "time"

// Cells is the fixed number of cells in a month grid (6 weeks x 7 days)
const Cells = 42

// Cell is one day square in the month grid
type Cell struct {
	Day          int  `json:"day"`
	Month        int  `json:"month"` // 0-indexed, January = 0
	Year         int  `json:"year"`
	CurrentMonth bool `json:"current_month"`
}

// Date returns the cell's calendar date at midnight UTC
func (c Cell) Date() time.Time {
	return time.Date(c.Year, time.Month(c.Month+1), c.Day, 0, 0, 0, 0, time.UTC)
}

// DaysIn returns the number of days in the given month (0-indexed)
func DaysIn(year, month int) int {
	// day zero of the next month is the last day of this one
	return time.Date(year, time.Month(month+2), 0, 0, 0, 0, 0, time.UTC).Day()
}

// Weekday returns the weekday index of day 1 of the month, 0=Sunday..6=Saturday
func Weekday(year, month int) int {
	return int(time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC).Weekday())
}

// Prev returns the month before (month, year) with explicit December rollover
func Prev(year, month int) (int, int) {
	if month == 0 {
		return year - 1, 11
	}
	return year, month - 1
}

// Next returns the month after (month, year) with explicit January rollover
func Next(year, month int) (int, int) {
	if month == 11 {
		return year + 1, 0
	}
	return year, month + 1
}

// Normalize folds any integer month into [0,11], adjusting the year.
// Callers may pass month -1 or 12 when stepping across a boundary
func Normalize(year, month int) (int, int) {
	for month < 0 {
		month += 12
		year--
	}
	for month > 11 {
		month -= 12
		year++
	}
	return year, month
}

// Month builds the 42-cell grid for (year, month). month is 0-indexed and is
// normalized first, so the function is total over any integer pair.
// Leading cells count back from the last day of the previous month, then every
// day of the target month, then forward from day 1 of the next month
func Month(year, month int) []Cell {
	year, month = Normalize(year, month)

	cells := make([]Cell, 0, Cells)

	prevYear, prevMonth := Prev(year, month)
	lead := Weekday(year, month)
	prevLast := DaysIn(prevYear, prevMonth)
	for i := lead - 1; i >= 0; i-- {
		cells = append(cells, Cell{Day: prevLast - i, Month: prevMonth, Year: prevYear})
	}

	for d := 1; d <= DaysIn(year, month); d++ {
		cells = append(cells, Cell{Day: d, Month: month, Year: year, CurrentMonth: true})
	}

	nextYear, nextMonth := Next(year, month)
	for d := 1; len(cells) < Cells; d++ {
		cells = append(cells, Cell{Day: d, Month: nextMonth, Year: nextYear})
	}

	return cells
}
