package workbook

import (
	"fmt"
	"time"

	"planchart/internal/planning"
	"planchart/internal/sheet"
	"planchart/internal/weeks"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

const (
	PlanningSheet = "Planning"
	LegendSheet   = "Legend"

	planningAutoSizeColumn = 0
	legendAutoSizeColumn   = 1

	// DefaultWeeks is the chart length used when neither options nor the
	// document give an end date.
	DefaultWeeks = 12
)

// Options controls how a planning document is rendered. Zero values fall back
// to the document, then to defaults.
type Options struct {
	Start    time.Time
	End      time.Time
	Weeks    int
	Location *time.Location
	Palette  sheet.Palette
	Title    string
	Now      func() time.Time
}

// Result is a rendered, unsaved workbook. The caller owns File and must close it.
type Result struct {
	File  *excelize.File
	ID    string
	Start time.Time
	End   time.Time
}

// Range resolves the chart's [start, end) for doc. Dates in opts win over
// the document's, but the document's timezone wins over opts.Location.
// Without a start the chart begins in the current week in that timezone;
// without an end it runs for opts.Weeks weeks.
func Range(doc planning.Document, opts Options) (time.Time, time.Time) {
	start := firstSet(opts.Start, doc.Start)
	if start.IsZero() {
		start = weeks.FirstDayOfWeek(now(opts), location(doc, opts))
	}

	end := firstSet(opts.End, doc.End)
	if end.IsZero() {
		n := opts.Weeks
		if n <= 0 {
			n = DefaultWeeks
		}
		end = weeks.WeekStart(start).AddDate(0, 0, 7*n)
	}
	return weeks.Day(start), weeks.Day(end)
}

// Build renders doc into a new workbook with a planning sheet and a legend sheet.
func Build(doc planning.Document, opts Options) (*Result, error) {
	palette := opts.Palette
	if palette == (sheet.Palette{}) {
		palette = sheet.DefaultPalette
	}
	start, end := Range(doc, opts)
	id := uuid.NewString()

	logger := log.With().Str("workbook", id).Logger()
	logger.Info().
		Str("start", start.Format(time.DateOnly)).
		Str("end", end.Format(time.DateOnly)).
		Int("assets", len(doc.Assets)).
		Msg("Rendering planning chart")

	f := excelize.NewFile()
	if err := build(f, doc, palette, start, end); err != nil {
		_ = f.Close()
		return nil, err
	}

	created := now(opts).In(location(doc, opts))
	if err := f.SetDocProps(&excelize.DocProperties{
		Identifier: id,
		Title:      opts.Title,
		Creator:    "planchart",
		Created:    created.Format(time.RFC3339),
	}); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to set document properties: %w", err)
	}

	return &Result{File: f, ID: id, Start: start, End: end}, nil
}

func build(f *excelize.File, doc planning.Document, palette sheet.Palette, start, end time.Time) error {
	if err := f.SetSheetName(f.GetSheetName(0), PlanningSheet); err != nil {
		return fmt.Errorf("failed to name planning sheet: %w", err)
	}
	if _, err := f.NewSheet(LegendSheet); err != nil {
		return fmt.Errorf("failed to create legend sheet: %w", err)
	}

	w := sheet.NewWriter(f, PlanningSheet, palette)
	if err := w.Initialize(planningAutoSizeColumn); err != nil {
		return err
	}
	if err := w.CreateHeader(start, end); err != nil {
		return err
	}
	for i, asset := range doc.Assets {
		if err := w.WriteRow(asset, i, start, end); err != nil {
			return fmt.Errorf("asset %q: %w", asset.ID(), err)
		}
	}
	if err := w.Finalize(planningAutoSizeColumn); err != nil {
		return err
	}

	legend := sheet.NewWriter(f, LegendSheet, palette)
	if err := legend.Initialize(legendAutoSizeColumn); err != nil {
		return err
	}
	if err := legend.CreateLegend(); err != nil {
		return err
	}
	return legend.Finalize(legendAutoSizeColumn)
}

// Save renders doc and writes the workbook to path. The returned File is
// already closed.
func Save(doc planning.Document, path string, opts Options) (*Result, error) {
	res, err := Build(doc, opts)
	if err != nil {
		return nil, err
	}
	defer res.File.Close()

	if err := res.File.SaveAs(path); err != nil {
		return nil, fmt.Errorf("failed to save workbook %s: %w", path, err)
	}
	log.Info().Str("workbook", res.ID).Str("path", path).Msg("Planning chart saved")
	return res, nil
}

func firstSet(values ...time.Time) time.Time {
	for _, v := range values {
		if !v.IsZero() {
			return v
		}
	}
	return time.Time{}
}

func location(doc planning.Document, opts Options) *time.Location {
	switch {
	case doc.Location != nil:
		return doc.Location
	case opts.Location != nil:
		return opts.Location
	default:
		return time.UTC
	}
}

func now(opts Options) time.Time {
	if opts.Now != nil {
		return opts.Now()
	}
	return time.Now()
}
