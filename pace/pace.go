// Package pace turns a race goal (distance + finish time) into a full set
// of training paces. Paces come from a static reference table per distance;
// goals between table rows are linearly interpolated, goals outside the
// table are rejected.
package pace

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Distance is a supported race distance.
type Distance string

const (
	FiveK    Distance = "5K"
	TenK     Distance = "10K"
	Half     Distance = "Half Marathon"
	Marathon Distance = "Marathon"
)

// Miles returns the distance in miles, or 0 for an unknown distance.
func (d Distance) Miles() float64 {
	switch d {
	case FiveK:
		return 3.107
	case TenK:
		return 6.214
	case Half:
		return 13.109
	case Marathon:
		return 26.219
	}
	return 0
}

// DefaultPlanWeeks is how long a typical plan for the distance runs.
func (d Distance) DefaultPlanWeeks() int {
	switch d {
	case Marathon:
		return 16
	case Half:
		return 12
	case TenK:
		return 10
	default:
		return 8
	}
}

// ParseDistance maps common spellings onto a Distance.
func ParseDistance(s string) (Distance, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "5k", "5000", "5000m":
		return FiveK, nil
	case "10k", "10000", "10000m":
		return TenK, nil
	case "half", "half marathon", "half-marathon", "21k", "13.1":
		return Half, nil
	case "marathon", "full", "42k", "26.2":
		return Marathon, nil
	}
	return "", fmt.Errorf("unknown race distance %q", s)
}

// Pace is a single training pace in seconds per mile plus its display form.
type Pace struct {
	SecondsPerMile float64 `json:"secondsPerMile"`
	Pace           string  `json:"pace"` // "8:35/mi"
}

// Range is a pace window, e.g. the easy zone.
type Range struct {
	MinSeconds float64 `json:"minSecondsPerMile"`
	MaxSeconds float64 `json:"maxSecondsPerMile"`
	Pace       string  `json:"pace"` // "9:10-10:10/mi"
}

// Split is one track repetition target.
type Split struct {
	Seconds float64 `json:"seconds"`
	Time    string  `json:"time"` // "1:45"
}

// TrackSplits are interval targets for the common repetition lengths.
type TrackSplits struct {
	M400  Split `json:"m400"`
	M800  Split `json:"m800"`
	M1600 Split `json:"m1600"`
}

// Profile is the complete pace prescription for one goal. It is derived
// once per goal and never mutated; identical inputs always produce
// identical profiles.
type Profile struct {
	Distance     Distance    `json:"distance"`
	GoalTime     string      `json:"goalTime"`
	Easy         Range       `json:"easy"`
	MarathonPace Pace        `json:"marathon"`
	Threshold    Pace        `json:"threshold"`
	Interval     Pace        `json:"interval"`
	Race         Pace        `json:"race"`
	TrackSplits  TrackSplits `json:"trackSplits"`
	Interpolated bool        `json:"interpolated"`
	LowerGoal    string      `json:"lowerGoal,omitempty"`
	UpperGoal    string      `json:"upperGoal,omitempty"`
}

// OutOfRangeError reports a goal time outside the reference table. The
// message carries the valid range so the caller can show it directly.
type OutOfRangeError struct {
	Distance Distance
	GoalTime string
	Fastest  string
	Slowest  string
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("goal time %s for %s is outside the supported range %s-%s",
		e.GoalTime, e.Distance, e.Fastest, e.Slowest)
}

// FromGoal resolves a goal into a Profile. An exact table match returns
// that row verbatim with Interpolated=false; a goal strictly between two
// rows returns every pace linearly interpolated with Interpolated=true and
// the bounding goal times filled in.
func FromGoal(distance Distance, goalTime string) (*Profile, error) {
	rows, ok := tables[distance]
	if !ok {
		return nil, fmt.Errorf("unknown race distance %q", distance)
	}
	goal, err := ParseClock(goalTime)
	if err != nil {
		return nil, fmt.Errorf("parsing goal time: %w", err)
	}
	first, last := rows[0], rows[len(rows)-1]
	if goal < first.goalSec || goal > last.goalSec {
		return nil, &OutOfRangeError{
			Distance: distance,
			GoalTime: goalTime,
			Fastest:  FormatClock(first.goalSec),
			Slowest:  FormatClock(last.goalSec),
		}
	}
	for i, r := range rows {
		if r.goalSec == goal {
			return buildProfile(distance, goalTime, r), nil
		}
		if r.goalSec > goal {
			lo, hi := rows[i-1], r
			frac := float64(goal-lo.goalSec) / float64(hi.goalSec-lo.goalSec)
			p := buildProfile(distance, goalTime, lerpRow(lo, hi, frac))
			p.Interpolated = true
			p.LowerGoal = FormatClock(lo.goalSec)
			p.UpperGoal = FormatClock(hi.goalSec)
			return p, nil
		}
	}
	// Unreachable: the bounds check above covers goal == last.goalSec.
	return buildProfile(distance, goalTime, last), nil
}

func buildProfile(distance Distance, goalTime string, r row) *Profile {
	return &Profile{
		Distance:     distance,
		GoalTime:     goalTime,
		Easy:         newRange(r.easyMin, r.easyMax),
		MarathonPace: newPace(r.marathon),
		Threshold:    newPace(r.threshold),
		Interval:     newPace(r.interval),
		Race:         newPace(r.race),
		TrackSplits: TrackSplits{
			M400:  newSplit(r.split400),
			M800:  newSplit(r.split800),
			M1600: newSplit(r.split1600),
		},
	}
}

func lerpRow(lo, hi row, frac float64) row {
	l := func(a, b float64) float64 { return a + frac*(b-a) }
	return row{
		goalSec:   lo.goalSec, // unused on interpolated rows
		easyMin:   l(lo.easyMin, hi.easyMin),
		easyMax:   l(lo.easyMax, hi.easyMax),
		marathon:  l(lo.marathon, hi.marathon),
		threshold: l(lo.threshold, hi.threshold),
		interval:  l(lo.interval, hi.interval),
		race:      l(lo.race, hi.race),
		split400:  l(lo.split400, hi.split400),
		split800:  l(lo.split800, hi.split800),
		split1600: l(lo.split1600, hi.split1600),
	}
}

func newPace(sec float64) Pace {
	return Pace{SecondsPerMile: sec, Pace: FormatPace(sec)}
}

func newRange(min, max float64) Range {
	return Range{
		MinSeconds: min,
		MaxSeconds: max,
		Pace:       fmt.Sprintf("%s-%s/mi", formatMinSec(min), formatMinSec(max)),
	}
}

func newSplit(sec float64) Split {
	return Split{Seconds: sec, Time: formatMinSec(sec)}
}

// FormatPace renders seconds-per-mile as "M:SS/mi".
func FormatPace(secPerMile float64) string {
	return formatMinSec(secPerMile) + "/mi"
}

func formatMinSec(sec float64) string {
	s := int(math.Round(sec))
	return fmt.Sprintf("%d:%02d", s/60, s%60)
}

// FormatClock renders seconds as "H:MM:SS", or "MM:SS" under an hour.
func FormatClock(sec int) string {
	h := sec / 3600
	m := (sec % 3600) / 60
	s := sec % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}

// ParseClock accepts "H:MM:SS" or "MM:SS" and returns total seconds.
func ParseClock(s string) (int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("invalid time %q, want H:MM:SS or MM:SS", s)
	}
	total := 0
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("invalid time %q, want H:MM:SS or MM:SS", s)
		}
		total = total*60 + n
	}
	if total <= 0 {
		return 0, fmt.Errorf("invalid time %q, want H:MM:SS or MM:SS", s)
	}
	return total, nil
}
