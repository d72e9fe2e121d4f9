package sheet

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"planchart/internal/planning"
	"planchart/internal/weeks"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

const (
	monthRow = 0
	weekRow  = 1
	// HeaderRows is the number of rows above the first asset row.
	HeaderRows = 2

	labelColumn = 0
)

// LegendEntry pairs a status with its legend text.
type LegendEntry struct {
	Status planning.Status
	Label  string
}

// Legend lists the legend entries in the order they are written.
var Legend = []LegendEntry{
	{planning.StatusPlanned, "Planned ticket(s)"},
	{planning.StatusOngoing, "Ongoing ticket(s)"},
	{planning.StatusCompleted, "Ended ticket(s)"},
}

const (
	legendTitle    = "Legend"
	legendFirstRow = 2
)

// ErrNotInitialized is returned when writing to a sheet before Initialize.
var ErrNotInitialized = errors.New("sheet not initialized")

// Writer renders the planning chart into one sheet of a workbook.
//
// Rows and cells are written in non-decreasing order, so the same call
// sequence also suits streaming writers.
type Writer struct {
	file    *excelize.File
	sheet   string
	palette Palette
	styles  *Styles
	widths  *columnWidths
}

// NewWriter returns a writer for the named sheet of f. The sheet must exist.
func NewWriter(f *excelize.File, sheet string, palette Palette) *Writer {
	return &Writer{
		file:    f,
		sheet:   sheet,
		palette: palette,
		widths:  newColumnWidths(),
	}
}

// Styles returns the registered styles, or nil before Initialize.
func (w *Writer) Styles() *Styles { return w.styles }

// Initialize registers the chart styles and starts tracking autoSizeColumn
// so Finalize can size it. It must be called before any row is written.
func (w *Writer) Initialize(autoSizeColumn int) error {
	w.widths.track(autoSizeColumn)

	styles, err := RegisterStyles(w.file, w.palette)
	if err != nil {
		return err
	}
	w.styles = styles

	log.Debug().Str("sheet", w.sheet).Int("autoSizeColumn", autoSizeColumn).Msg("Sheet initialized")
	return nil
}

// CreateHeader writes the month row and the week number row for [start, end).
// A month label is written in the first column of its span, and spans of more
// than one column are merged.
func (w *Writer) CreateHeader(start, end time.Time) error {
	if w.styles == nil {
		return ErrNotInitialized
	}

	columns := weeks.Columns(start, end)
	previousMonth := ""
	for _, c := range columns {
		var month any
		if c.Month != previousMonth {
			month = c.Month
		}
		previousMonth = c.Month

		if err := w.setCell(monthRow, c.Index, month, StyleDefault); err != nil {
			return err
		}
	}
	for _, c := range columns {
		if err := w.setCell(weekRow, c.Index, strconv.Itoa(c.Week), StyleDefault); err != nil {
			return err
		}
	}

	merged := 0
	for _, span := range weeks.MonthSpans(columns) {
		if !span.Merge() {
			continue
		}
		if err := w.merge(monthRow, span.First, span.Last); err != nil {
			return err
		}
		merged++
	}

	log.Debug().
		Str("sheet", w.sheet).
		Str("start", start.Format(time.DateOnly)).
		Str("end", end.Format(time.DateOnly)).
		Int("columns", len(columns)).
		Int("merged", merged).
		Msg("Header written")
	return nil
}

// WriteRow writes the status row of asset at rowNumber, counted from the
// first row below the header. Each week column is styled by the asset's
// status for that week.
func (w *Writer) WriteRow(asset planning.AssetPlanning, rowNumber int, start, end time.Time) error {
	if w.styles == nil {
		return ErrNotInitialized
	}

	row := rowNumber + HeaderRows
	if err := w.setCell(row, labelColumn, asset.Label(), StyleDefault); err != nil {
		return err
	}

	for _, c := range weeks.Columns(start, end) {
		if err := w.setCell(row, c.Index, nil, ForStatus(asset.StatusFor(c.WeekStart))); err != nil {
			return err
		}
	}
	return nil
}

// CreateLegend writes the colour key: a bold title followed by one swatch and
// label per status.
func (w *Writer) CreateLegend() error {
	if w.styles == nil {
		return ErrNotInitialized
	}

	if err := w.setCell(0, 0, legendTitle, StyleBold); err != nil {
		return err
	}
	for i, entry := range Legend {
		row := legendFirstRow + i
		if err := w.setCell(row, 0, nil, ForStatus(entry.Status)); err != nil {
			return err
		}
		if err := w.setCell(row, 1, entry.Label, StyleDefault); err != nil {
			return err
		}
	}
	return nil
}

// Finalize sizes autoSizeColumn to fit the widest value written to it.
// The column must have been passed to Initialize.
func (w *Writer) Finalize(autoSizeColumn int) error {
	width, err := w.widths.width(autoSizeColumn)
	if err != nil {
		return err
	}

	name, err := excelize.ColumnNumberToName(autoSizeColumn + 1)
	if err != nil {
		return fmt.Errorf("invalid column %d: %w", autoSizeColumn, err)
	}
	if err := w.file.SetColWidth(w.sheet, name, name, width); err != nil {
		return fmt.Errorf("failed to size column %s: %w", name, err)
	}

	log.Debug().Str("sheet", w.sheet).Str("column", name).Float64("width", width).Msg("Column auto-sized")
	return nil
}

// setCell applies style to the cell at the zero based (row, col) and writes
// value unless it is nil.
func (w *Writer) setCell(row, col int, value any, style StyleName) error {
	cell, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return fmt.Errorf("invalid cell (%d, %d): %w", row, col, err)
	}

	id, err := w.styles.ID(style)
	if err != nil {
		return err
	}
	if err := w.file.SetCellStyle(w.sheet, cell, cell, id); err != nil {
		return fmt.Errorf("failed to style %s!%s: %w", w.sheet, cell, err)
	}

	if value == nil {
		return nil
	}
	if err := w.file.SetCellValue(w.sheet, cell, value); err != nil {
		return fmt.Errorf("failed to write %s!%s: %w", w.sheet, cell, err)
	}
	if s, ok := value.(string); ok {
		w.widths.observe(col, s)
	}
	return nil
}

func (w *Writer) merge(row, firstCol, lastCol int) error {
	first, err := excelize.CoordinatesToCellName(firstCol+1, row+1)
	if err != nil {
		return fmt.Errorf("invalid cell (%d, %d): %w", row, firstCol, err)
	}
	last, err := excelize.CoordinatesToCellName(lastCol+1, row+1)
	if err != nil {
		return fmt.Errorf("invalid cell (%d, %d): %w", row, lastCol, err)
	}
	if err := w.file.MergeCell(w.sheet, first, last); err != nil {
		return fmt.Errorf("failed to merge %s!%s:%s: %w", w.sheet, first, last, err)
	}
	return nil
}
