package sheet

import (
	"testing"

	"planchart/internal/planning"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestForStatus(t *testing.T) {
	cases := map[planning.Status]StyleName{
		planning.StatusPlanned:   StylePlanned,
		planning.StatusOngoing:   StyleOngoing,
		planning.StatusCompleted: StyleCompleted,
		planning.StatusNone:      StyleDefault,
		"completed":              StyleDefault,
		"BLOCKED":                StyleDefault,
	}
	for status, want := range cases {
		assert.Equal(t, want, ForStatus(status), "status=%q", status)
	}
}

func TestStyles_LookupByName(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	styles, err := RegisterStyles(f, DefaultPalette)
	require.NoError(t, err)

	_, err = styles.ID(StyleOngoing)
	assert.NoError(t, err)

	_, err = styles.ID("strikethrough")
	assert.ErrorIs(t, err, ErrStyleNotRegistered)

	var unregistered *Styles
	_, err = unregistered.ID(StyleDefault)
	assert.ErrorIs(t, err, ErrStyleNotRegistered)
}

func TestStyles_IndependentOfCreationOrder(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	// Styles created before ours shift the workbook's style table.
	_, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Italic: true}})
	require.NoError(t, err)

	styles, err := RegisterStyles(f, DefaultPalette)
	require.NoError(t, err)

	id, err := styles.ID(StylePlanned)
	require.NoError(t, err)
	assert.Equal(t, "B9E0F3", fillColor(t, f, id))
}

func TestPaletteValidate(t *testing.T) {
	assert.NoError(t, DefaultPalette.Validate())
	assert.NoError(t, Palette{Planned: "abcdef", Ongoing: "ABCDEF", Completed: "012345"}.Validate())

	for _, p := range []Palette{
		{Planned: "#B9E0F3", Ongoing: "005288", Completed: "BECD00"},
		{Planned: "B9E0F3", Ongoing: "0052", Completed: "BECD00"},
		{Planned: "B9E0F3", Ongoing: "005288", Completed: "BECD0G"},
		{},
	} {
		assert.Error(t, p.Validate(), "%+v", p)
	}
}
