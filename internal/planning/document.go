package planning

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a planning document on disk.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// DocumentDTO is the on-disk shape of a planning document.
type DocumentDTO struct {
	Start    string     `json:"start,omitempty" yaml:"start,omitempty"`
	End      string     `json:"end,omitempty" yaml:"end,omitempty"`
	Timezone string     `json:"timezone,omitempty" yaml:"timezone,omitempty"`
	Assets   []AssetDTO `json:"assets" yaml:"assets"`
}

// AssetDTO is one asset entry. Weeks maps a week-start date (YYYY-MM-DD) to a
// status label.
type AssetDTO struct {
	ID    string            `json:"id" yaml:"id"`
	Name  string            `json:"name,omitempty" yaml:"name,omitempty"`
	Weeks map[string]string `json:"weeks" yaml:"weeks"`
}

// Document is a decoded planning document. Start and End are zero when the
// document leaves the range to the caller. Location is nil when no timezone
// was given.
type Document struct {
	Start    time.Time
	End      time.Time
	Location *time.Location
	Assets   []AssetPlanning
}

// FormatFromPath derives the document format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported planning file extension %q", filepath.Ext(path))
	}
}

// Load reads and decodes the planning document at path.
func Load(path string) (Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return Document{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return Document{}, fmt.Errorf("failed to open planning file: %w", err)
	}
	defer f.Close()

	doc, err := Decode(f, format)
	if err != nil {
		return Document{}, fmt.Errorf("%s: %w", path, err)
	}

	log.Debug().Str("path", path).Int("assets", len(doc.Assets)).Msg("Loaded planning document")
	return doc, nil
}

// Decode reads a planning document in the given format.
func Decode(r io.Reader, format Format) (Document, error) {
	var dto DocumentDTO
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&dto); err != nil {
			return Document{}, fmt.Errorf("failed to decode json: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&dto); err != nil && err != io.EOF {
			return Document{}, fmt.Errorf("failed to decode yaml: %w", err)
		}
	default:
		return Document{}, fmt.Errorf("unsupported planning format %q", format)
	}
	return MapDocument(dto)
}

// MapDocument converts the on-disk shape into a Document.
func MapDocument(dto DocumentDTO) (Document, error) {
	var doc Document
	var err error

	if doc.Start, err = parseOptionalDate(dto.Start); err != nil {
		return Document{}, fmt.Errorf("invalid start: %w", err)
	}
	if doc.End, err = parseOptionalDate(dto.End); err != nil {
		return Document{}, fmt.Errorf("invalid end: %w", err)
	}
	if dto.Timezone != "" {
		if doc.Location, err = time.LoadLocation(dto.Timezone); err != nil {
			return Document{}, fmt.Errorf("invalid timezone %q: %w", dto.Timezone, err)
		}
	}

	doc.Assets = make([]AssetPlanning, 0, len(dto.Assets))
	for i, a := range dto.Assets {
		states := make(map[time.Time]string, len(a.Weeks))
		for week, state := range a.Weeks {
			d, err := ParseDate(week)
			if err != nil {
				return Document{}, fmt.Errorf("asset %d (%s): invalid week %q: %w", i, a.ID, week, err)
			}
			if !Status(state).Known() {
				log.Debug().Str("asset", a.ID).Str("week", week).Str("status", state).Msg("Unrecognised status will render as empty")
			}
			states[d] = state
		}
		doc.Assets = append(doc.Assets, New(a.ID, a.Name, states))
	}
	return doc, nil
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(time.DateOnly, strings.TrimSpace(s))
}

func parseOptionalDate(s string) (time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return time.Time{}, nil
	}
	return ParseDate(s)
}
