// Package profile defines the runner profile supplied by the surrounding
// application and the day/experience enums shared by the engine packages.
package profile

import "time"

// Experience classifies how long someone has been running consistently.
type Experience string

const (
	Beginner     Experience = "beginner"
	Intermediate Experience = "intermediate"
	Advanced     Experience = "advanced"
)

// DayType is the kind of session scheduled on a calendar day.
type DayType string

const (
	DayTempo     DayType = "tempo"
	DayIntervals DayType = "intervals"
	DayHills     DayType = "hills"
	DayLongRun   DayType = "long_run"
	DayEasy      DayType = "easy"
	DayRest      DayType = "rest"
	DayRestOrXT  DayType = "rest_or_xt"
	DayBike      DayType = "bike"
	DayBrick     DayType = "brick"
)

// IsHard reports whether the day carries a hard training stimulus.
// Hard days must never land on consecutive calendar days.
func (d DayType) IsHard() bool {
	return d == DayTempo || d == DayIntervals || d == DayHills
}

// Equipment lists the cross-training gear a runner owns or has access to.
type Equipment struct {
	StandUpBike    bool `json:"standUpBike"`
	StationaryBike bool `json:"stationaryBike"`
	Elliptical     bool `json:"elliptical"`
	Rower          bool `json:"rower"`
	Pool           bool `json:"pool"`
	SwimAccess     bool `json:"swimAccess"`
}

// Any reports whether at least one piece of equipment is owned.
func (e Equipment) Any() bool {
	return e.StandUpBike || e.StationaryBike || e.Elliptical || e.Rower || e.Pool || e.SwimAccess
}

// Profile is everything the engine needs to know about one runner.
// It arrives from the surrounding application (onboarding, session) and is
// never mutated by the engine.
type Profile struct {
	Experience      Experience     `json:"experience"`
	RunsPerWeek     int            `json:"runsPerWeek"`
	AvailableDays   []time.Weekday `json:"availableDays"`
	HardDays        []time.Weekday `json:"hardDays"`
	LongRunDay      time.Weekday   `json:"longRunDay"`
	Equipment       Equipment      `json:"equipment"`
	StandUpBikeType string         `json:"standUpBikeType,omitempty"` // e.g. "cyclete", "elliptigo"
	XTPreference    int            `json:"xtPreference"`              // 0-100, appetite for cross-training
	GoalDistance    string         `json:"goalDistance"`
	GoalTime        string         `json:"goalTime"`
}

// Available reports whether the runner can train on the given weekday.
func (p Profile) Available(d time.Weekday) bool {
	for _, a := range p.AvailableDays {
		if a == d {
			return true
		}
	}
	return false
}

// HardDayAllowed reports whether a hard session may be scheduled on d.
func (p Profile) HardDayAllowed(d time.Weekday) bool {
	for _, h := range p.HardDays {
		if h == d {
			return true
		}
	}
	return false
}
