package sheet

import (
	"errors"
	"fmt"
	"regexp"

	"planchart/internal/planning"

	"github.com/xuri/excelize/v2"
)

// StyleName identifies one of the chart's cell styles.
type StyleName string

const (
	StyleDefault   StyleName = "default"
	StylePlanned   StyleName = "planned"
	StyleOngoing   StyleName = "ongoing"
	StyleCompleted StyleName = "completed"
	StyleBold      StyleName = "bold"
)

// ErrStyleNotRegistered is returned when a style is looked up before it was created.
var ErrStyleNotRegistered = errors.New("style not registered")

const (
	borderThin   = 1
	patternSolid = 1
	borderColor  = "000000"
)

var hexColor = regexp.MustCompile(`^[0-9A-Fa-f]{6}$`)

// Palette holds the fill colours of the status styles as RRGGBB hex strings.
type Palette struct {
	Planned   string
	Ongoing   string
	Completed string
}

// DefaultPalette is the standard status colouring.
var DefaultPalette = Palette{
	Planned:   "B9E0F3",
	Ongoing:   "005288",
	Completed: "BECD00",
}

// Validate checks that every colour is a six digit hex value.
func (p Palette) Validate() error {
	for name, c := range map[string]string{"planned": p.Planned, "ongoing": p.Ongoing, "completed": p.Completed} {
		if !hexColor.MatchString(c) {
			return fmt.Errorf("invalid %s colour %q: expected RRGGBB", name, c)
		}
	}
	return nil
}

// Styles resolves style names to the workbook's style ids.
type Styles struct {
	ids map[StyleName]int
}

// RegisterStyles creates the chart styles in f's shared style table.
func RegisterStyles(f *excelize.File, palette Palette) (*Styles, error) {
	if err := palette.Validate(); err != nil {
		return nil, err
	}

	definitions := []struct {
		name  StyleName
		style *excelize.Style
	}{
		{StyleDefault, bordered()},
		{StylePlanned, filled(palette.Planned)},
		{StyleOngoing, filled(palette.Ongoing)},
		{StyleCompleted, filled(palette.Completed)},
		{StyleBold, bold()},
	}

	s := &Styles{ids: make(map[StyleName]int, len(definitions))}
	for _, d := range definitions {
		id, err := f.NewStyle(d.style)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s style: %w", d.name, err)
		}
		s.ids[d.name] = id
	}
	return s, nil
}

// ID returns the workbook style id registered under name.
func (s *Styles) ID(name StyleName) (int, error) {
	if s != nil {
		if id, ok := s.ids[name]; ok {
			return id, nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrStyleNotRegistered, name)
}

// ForStatus selects the style for a week's status. Anything that is not a
// known status gets the default style.
func ForStatus(status planning.Status) StyleName {
	switch status {
	case planning.StatusPlanned:
		return StylePlanned
	case planning.StatusOngoing:
		return StyleOngoing
	case planning.StatusCompleted:
		return StyleCompleted
	default:
		return StyleDefault
	}
}

func bordered() *excelize.Style {
	return &excelize.Style{
		Border: []excelize.Border{
			{Type: "top", Color: borderColor, Style: borderThin},
			{Type: "right", Color: borderColor, Style: borderThin},
			{Type: "bottom", Color: borderColor, Style: borderThin},
			{Type: "left", Color: borderColor, Style: borderThin},
		},
	}
}

func filled(color string) *excelize.Style {
	s := bordered()
	s.Fill = excelize.Fill{Type: "pattern", Pattern: patternSolid, Color: []string{color}}
	return s
}

func bold() *excelize.Style {
	s := bordered()
	s.Font = &excelize.Font{Bold: true}
	return s
}
