package weeks

import "time"

// FirstColumn is the index of the first week column. Column 0 holds row labels.
const FirstColumn = 1

// Column is one week-wide column of the planning chart.
type Column struct {
	Index     int
	WeekStart time.Time
	Week      int
	Month     string
}

// MonthSpan is a run of adjacent columns sharing a month label.
type MonthSpan struct {
	Month string
	First int
	Last  int
}

// Merge reports whether the span needs a merged header cell.
func (s MonthSpan) Merge() bool {
	return s.Last-s.First > 0
}

// Columns lays out the week columns for the range [start, end).
//
// The first column is start's own week and each following column is exactly
// one week later. Columns are added while start advanced by whole weeks is
// still before end, but at least one column is always produced, even when
// end is not after start.
func Columns(start, end time.Time) []Column {
	start, end = Day(start), Day(end)
	first := WeekStart(start)

	var columns []Column
	current := start
	index := FirstColumn
	for {
		weekStart := first.AddDate(0, 0, (index-FirstColumn)*daysPerWeek)
		columns = append(columns, Column{
			Index:     index,
			WeekStart: weekStart,
			Week:      WeekNumber(current),
			Month:     MonthName(current),
		})

		current = current.AddDate(0, 0, daysPerWeek)
		index++
		if !current.Before(end) {
			break
		}
	}
	return columns
}

// MonthSpans groups consecutive columns by month label, in column order.
func MonthSpans(columns []Column) []MonthSpan {
	var spans []MonthSpan
	for _, c := range columns {
		if n := len(spans); n > 0 && spans[n-1].Month == c.Month {
			spans[n-1].Last = c.Index
			continue
		}
		spans = append(spans, MonthSpan{Month: c.Month, First: c.Index, Last: c.Index})
	}
	return spans
}
