package planning

import (
	"strings"
	"time"

	"planchart/internal/weeks"
)

// Status is the state of an asset in a given week.
type Status string

const (
	StatusNone      Status = ""
	StatusPlanned   Status = "PLANNED"
	StatusOngoing   Status = "ONGOING"
	StatusCompleted Status = "COMPLETED"
)

// Known reports whether s is one of the recognised labels. Matching is exact
// and case-sensitive.
func (s Status) Known() bool {
	switch s {
	case StatusPlanned, StatusOngoing, StatusCompleted:
		return true
	}
	return false
}

// AssetPlanning is the weekly status of one asset. It is immutable once built.
type AssetPlanning struct {
	id           string
	name         string
	statePerWeek map[time.Time]Status
}

// New builds an AssetPlanning. The map keys are reduced to calendar dates and
// the map is copied, so later changes by the caller are not observed.
func New(id, name string, statePerWeek map[time.Time]string) AssetPlanning {
	states := make(map[time.Time]Status, len(statePerWeek))
	for week, state := range statePerWeek {
		states[weeks.Day(week)] = Status(state)
	}
	return AssetPlanning{id: id, name: name, statePerWeek: states}
}

func (a AssetPlanning) ID() string   { return a.id }
func (a AssetPlanning) Name() string { return a.name }

// StatusFor returns the status recorded for the week starting on weekStart.
// Missing entries and labels outside the known vocabulary yield StatusNone.
func (a AssetPlanning) StatusFor(weekStart time.Time) Status {
	s := a.statePerWeek[weeks.Day(weekStart)]
	if !s.Known() {
		return StatusNone
	}
	return s
}

// Label is the row label: the id and name joined by " - ", skipping blanks.
func (a AssetPlanning) Label() string {
	parts := make([]string, 0, 2)
	for _, p := range []string{a.id, a.name} {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " - ")
}
