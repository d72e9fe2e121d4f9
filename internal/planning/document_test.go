package planning

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
	_ "time/tzdata"

	"planchart/internal/weeks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jsonDocument = `{
  "start": "2023-01-01",
  "end": "2023-03-01",
  "timezone": "Europe/Amsterdam",
  "assets": [
    {"id": "PUMP-1", "name": "Pump", "weeks": {"2022-12-26": "PLANNED", "2023-01-02": "ONGOING"}},
    {"id": "VALVE-7", "weeks": {"2023-01-09": "COMPLETED", "2023-01-16": "unknown"}}
  ]
}`

const yamlDocument = `
start: "2023-01-01"
end: "2023-03-01"
assets:
  - id: PUMP-1
    name: Pump
    weeks:
      "2022-12-26": PLANNED
      "2023-01-02": ONGOING
  - id: VALVE-7
    weeks:
      "2023-01-09": COMPLETED
`

func TestDecode_JSON(t *testing.T) {
	doc, err := Decode(strings.NewReader(jsonDocument), FormatJSON)
	require.NoError(t, err)

	assert.Equal(t, weeks.Date(2023, time.January, 1), doc.Start)
	assert.Equal(t, weeks.Date(2023, time.March, 1), doc.End)
	require.NotNil(t, doc.Location)
	assert.Equal(t, "Europe/Amsterdam", doc.Location.String())

	require.Len(t, doc.Assets, 2)
	assert.Equal(t, "PUMP-1 - Pump", doc.Assets[0].Label())
	assert.Equal(t, StatusPlanned, doc.Assets[0].StatusFor(weeks.Date(2022, time.December, 26)))
	assert.Equal(t, StatusOngoing, doc.Assets[0].StatusFor(weeks.Date(2023, time.January, 2)))
	assert.Equal(t, "VALVE-7", doc.Assets[1].Label())
	assert.Equal(t, StatusCompleted, doc.Assets[1].StatusFor(weeks.Date(2023, time.January, 9)))
	assert.Equal(t, StatusNone, doc.Assets[1].StatusFor(weeks.Date(2023, time.January, 16)))
}

func TestDecode_YAML(t *testing.T) {
	doc, err := Decode(strings.NewReader(yamlDocument), FormatYAML)
	require.NoError(t, err)

	assert.Nil(t, doc.Location)
	require.Len(t, doc.Assets, 2)
	assert.Equal(t, "PUMP-1", doc.Assets[0].ID())
	assert.Equal(t, "Pump", doc.Assets[0].Name())
	assert.Equal(t, StatusOngoing, doc.Assets[0].StatusFor(weeks.Date(2023, time.January, 2)))
	assert.Equal(t, StatusCompleted, doc.Assets[1].StatusFor(weeks.Date(2023, time.January, 9)))
}

func TestDecode_RangeIsOptional(t *testing.T) {
	doc, err := Decode(strings.NewReader(`{"assets": []}`), FormatJSON)
	require.NoError(t, err)
	assert.True(t, doc.Start.IsZero())
	assert.True(t, doc.End.IsZero())
	assert.Empty(t, doc.Assets)
}

func TestDecode_Errors(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"bad start", `{"start": "01-01-2023"}`, "invalid start"},
		{"bad end", `{"end": "2023-13-01"}`, "invalid end"},
		{"bad timezone", `{"timezone": "Mars/Olympus"}`, "invalid timezone"},
		{"bad week", `{"assets": [{"id": "A", "weeks": {"next week": "PLANNED"}}]}`, "invalid week"},
		{"not json", `{`, "failed to decode json"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tc.body), FormatJSON)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	for path, want := range map[string]Format{
		"plan.json": FormatJSON,
		"plan.YAML": FormatYAML,
		"a/b.yml":   FormatYAML,
	} {
		got, err := FormatFromPath(path)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := FormatFromPath("plan.csv")
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yamlDocument), 0644))

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, doc.Assets, 2)

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
