// Package plan generates multi-week periodized training plans: phases by
// elapsed-week fraction, hard sessions rotated across weeks under
// day-availability constraints, and a step-back week on a periodic cadence.
package plan

import (
	"time"

	"github.com/google/uuid"

	"github.com/briangreenhill/paceplan/pace"
	"github.com/briangreenhill/paceplan/prescribe"
	"github.com/briangreenhill/paceplan/profile"
)

// Phase is the macro-cycle stage a week belongs to.
type Phase string

const (
	PhaseBase  Phase = "base"
	PhaseBuild Phase = "build"
	PhasePeak  Phase = "peak"
	PhaseTaper Phase = "taper"
)

// DayEntry is one calendar day of a training week.
type DayEntry struct {
	Day               time.Weekday       `json:"day"`
	Type              profile.DayType    `json:"type"`
	Workout           *prescribe.Workout `json:"workout,omitempty"`
	Focus             string             `json:"focus,omitempty"`
	EquipmentSpecific bool               `json:"equipmentSpecific,omitempty"`
	SwapReason        string             `json:"swapReason,omitempty"`
}

// Week is one training week of seven day entries, Sunday through Saturday.
type Week struct {
	WeekNumber   int        `json:"weekNumber"`
	Phase        Phase      `json:"phase"`
	TotalMileage float64    `json:"totalMileage"`
	IsStepBack   bool       `json:"isStepBack"`
	Workouts     []DayEntry `json:"workouts"`
}

// Entry returns the week's entry for a weekday.
func (w *Week) Entry(d time.Weekday) *DayEntry {
	for i := range w.Workouts {
		if w.Workouts[i].Day == d {
			return &w.Workouts[i]
		}
	}
	return nil
}

// TrainingPlan is the full schedule handed to the surrounding application.
// The engine only ever mutates it through an alternative swap; persistence
// belongs to the storage collaborator.
type TrainingPlan struct {
	ID             uuid.UUID        `json:"id"`
	Overview       string           `json:"planOverview"`
	TrainingPaces  *pace.Profile    `json:"trainingPaces"`
	TrackIntervals pace.TrackSplits `json:"trackIntervals"`
	Weeks          []Week           `json:"weeks"`
	CurrentWeek    int              `json:"currentWeek"`
	GoalDistance   pace.Distance    `json:"goalDistance"`
	GoalTime       string           `json:"goalTime"`
	CreatedAt      time.Time        `json:"createdAt"`
}

// WeekByNumber returns the 1-based week, or nil when out of range.
func (p *TrainingPlan) WeekByNumber(n int) *Week {
	if n < 1 || n > len(p.Weeks) {
		return nil
	}
	return &p.Weeks[n-1]
}
