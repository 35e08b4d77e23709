package plan

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/briangreenhill/paceplan/library"
	"github.com/briangreenhill/paceplan/pace"
	"github.com/briangreenhill/paceplan/prescribe"
	"github.com/briangreenhill/paceplan/profile"
)

// hardRotation orders the quality-session types cycled across weeks.
var hardRotation = []profile.DayType{profile.DayTempo, profile.DayIntervals, profile.DayHills}

// Generate builds the full periodized plan for one runner. A bad goal time
// surfaces the pace table's range error; a single day's prescription
// failure is absorbed with a plain easy run so one bad template never
// invalidates the plan.
func Generate(p profile.Profile) (*TrainingPlan, error) {
	dist, err := pace.ParseDistance(p.GoalDistance)
	if err != nil {
		return nil, err
	}
	paces, err := pace.FromGoal(dist, p.GoalTime)
	if err != nil {
		return nil, err
	}
	if len(p.AvailableDays) == 0 {
		return nil, fmt.Errorf("profile has no available training days")
	}
	if !p.Available(p.LongRunDay) {
		return nil, fmt.Errorf("long run day %s is not among the available days", p.LongRunDay)
	}

	totalWeeks := dist.DefaultPlanWeeks()
	startMiles, peakMiles := mileageBounds(dist, p.Experience)
	hardDays := pickHardDays(p)

	tp := &TrainingPlan{
		ID:             uuid.New(),
		TrainingPaces:  paces,
		TrackIntervals: paces.TrackSplits,
		CurrentWeek:    1,
		GoalDistance:   dist,
		GoalTime:       p.GoalTime,
		CreatedAt:      time.Now().UTC(),
	}

	for week := 1; week <= totalWeeks; week++ {
		phase := phaseFor(week, totalWeeks)
		stepBack := isStepBack(week, phase, p.Experience)
		mileage := weeklyMileage(week, totalWeeks, startMiles, peakMiles, stepBack)
		w := buildWeek(p, paces, week, totalWeeks, phase, stepBack, mileage, hardDays)
		tp.Weeks = append(tp.Weeks, w)
	}

	tp.Overview = fmt.Sprintf(
		"%d-week %s plan targeting %s: %d weeks of base, building through week %d, peaking, then tapering into race day. Long runs on %s.",
		totalWeeks, dist, p.GoalTime, baseWeeks(totalWeeks), lastBuildWeek(totalWeeks), p.LongRunDay)
	return tp, nil
}

func buildWeek(p profile.Profile, paces *pace.Profile, week, totalWeeks int,
	phase Phase, stepBack bool, mileage float64, hardDays []time.Weekday) Week {

	w := Week{WeekNumber: week, Phase: phase, TotalMileage: mileage, IsStepBack: stepBack}

	hardCount := hardSessionCount(p.Experience, phase, stepBack, week, totalWeeks)
	if hardCount > len(hardDays) {
		hardCount = len(hardDays)
	}

	longMiles := longRunMiles(mileage, p.GoalDistance)
	easyDays := 0
	for _, d := range p.AvailableDays {
		if d != p.LongRunDay && !containsDay(hardDays[:hardCount], d) {
			easyDays++
		}
	}
	easyMiles := easyRunMiles(mileage, longMiles, hardCount, easyDays)

	// Long run and quality sessions count against the weekly run budget;
	// once it is spent, remaining available days become rest days.
	runDays := 1 + hardCount

	xtAssigned := false
	for d := time.Sunday; d <= time.Saturday; d++ {
		entry := DayEntry{Day: d, Type: profile.DayRest, Focus: "recovery"}
		switch {
		case d == p.LongRunDay:
			entry.Type = profile.DayLongRun
			entry.Focus = "endurance"
			entry.Workout = longRunWorkout(paces, week, totalWeeks, phase, stepBack, longMiles)
		case containsDay(hardDays[:hardCount], d):
			i := indexOfDay(hardDays[:hardCount], d)
			entry.Type = hardRotation[(week-1+i)%len(hardRotation)]
			entry.Focus = hardFocus(entry.Type)
			entry.Workout = hardWorkout(entry.Type, paces, week, totalWeeks, easyMiles)
		case p.Available(d):
			if !xtAssigned && p.Equipment.Any() && p.XTPreference >= 50 {
				xtAssigned = true
				entry = crossTrainingDay(d, p, paces, week, totalWeeks)
				break
			}
			if p.RunsPerWeek > 0 && runDays >= p.RunsPerWeek {
				break
			}
			runDays++
			entry.Type = profile.DayEasy
			entry.Focus = "aerobic maintenance"
			entry.Workout = easyRun(easyMiles, paces, week, totalWeeks)
		default:
			if p.Equipment.Any() && !xtAssigned && p.XTPreference >= 80 {
				// Highly cross-training-inclined runners get the option
				// even on an off day.
				entry.Type = profile.DayRestOrXT
				entry.Focus = "recovery or light cross-training"
			}
		}
		w.Workouts = append(w.Workouts, entry)
	}
	return w
}

// crossTrainingDay swaps one easy day for equipment work.
func crossTrainingDay(d time.Weekday, p profile.Profile, paces *pace.Profile, week, totalWeeks int) DayEntry {
	entry := DayEntry{Day: d, EquipmentSpecific: true}
	var m library.Modality
	switch {
	case p.Equipment.StandUpBike:
		entry.Type = profile.DayBike
		entry.Focus = "non-impact aerobic volume"
		m = library.StandUpBike
	case p.Equipment.StationaryBike:
		entry.Type = profile.DayRestOrXT
		entry.Focus = "non-impact aerobic volume"
		m = library.StationaryBike
	case p.Equipment.Elliptical:
		entry.Type = profile.DayRestOrXT
		entry.Focus = "non-impact aerobic volume"
		m = library.Elliptical
	case p.Equipment.Rower:
		entry.Type = profile.DayRestOrXT
		entry.Focus = "whole-body aerobic work"
		m = library.Rowing
	default:
		entry.Type = profile.DayRestOrXT
		entry.Focus = "non-impact aerobic volume"
		m = library.Pool
	}
	cat, err := library.Get(m)
	if err != nil {
		entry.Workout = easyRun(4, paces, week, totalWeeks)
		return entry
	}
	ws := cat.ByCategory("easy")
	if len(ws) == 0 {
		entry.Workout = easyRun(4, paces, week, totalWeeks)
		return entry
	}
	tpl := ws[(week-1)%len(ws)]
	w, err := prescribe.Compile(cat, tpl.Name, prescribe.Options{Paces: paces, Week: week, TotalWeeks: totalWeeks})
	if err != nil {
		entry.Workout = easyRun(4, paces, week, totalWeeks)
		return entry
	}
	entry.Workout = w
	return entry
}

func longRunWorkout(paces *pace.Profile, week, totalWeeks int, phase Phase, stepBack bool, miles float64) *prescribe.Workout {
	cat, err := library.Get(library.LongRun)
	if err != nil {
		return easyRun(miles, paces, week, totalWeeks)
	}
	category := "steady"
	switch {
	case stepBack || phase == PhaseTaper:
		category = "recovery"
	case phase == PhaseBuild:
		category = "progression"
	case phase == PhasePeak:
		category = "race_specific"
	}
	ws := cat.ByCategory(category)
	if len(ws) == 0 {
		return easyRun(miles, paces, week, totalWeeks)
	}
	tpl := ws[(week-1)%len(ws)]
	w, err := prescribe.Compile(cat, tpl.Name, prescribe.Options{
		Paces:              paces,
		Week:               week,
		TotalWeeks:         totalWeeks,
		DistanceMiles:      miles,
		PaceSecondsPerMile: (paces.Easy.MinSeconds + paces.Easy.MaxSeconds) / 2,
	})
	if err != nil {
		return easyRun(miles, paces, week, totalWeeks)
	}
	return w
}

func hardWorkout(t profile.DayType, paces *pace.Profile, week, totalWeeks int, fallbackMiles float64) *prescribe.Workout {
	var m library.Modality
	switch t {
	case profile.DayTempo:
		m = library.Tempo
	case profile.DayIntervals:
		m = library.Intervals
	default:
		m = library.Hills
	}
	cat, err := library.Get(m)
	if err != nil {
		return easyRun(fallbackMiles, paces, week, totalWeeks)
	}
	cats := cat.Categories()
	ws := cat.ByCategory(cats[(week-1)%len(cats)])
	if len(ws) == 0 {
		return easyRun(fallbackMiles, paces, week, totalWeeks)
	}
	tpl := ws[(week-1)%len(ws)]
	w, err := prescribe.Compile(cat, tpl.Name, prescribe.Options{Paces: paces, Week: week, TotalWeeks: totalWeeks})
	if err != nil {
		return easyRun(fallbackMiles, paces, week, totalWeeks)
	}
	return w
}

// easyRun is the safe default prescription: it can never fail.
func easyRun(miles float64, paces *pace.Profile, week, totalWeeks int) *prescribe.Workout {
	if miles < 3 {
		miles = 3
	}
	tpl := library.Template{
		Name:      "Easy Run",
		Category:  "easy",
		Intensity: "conversational",
		Structure: fmt.Sprintf("%.0f miles at easy pace", miles),
		Duration:  "30-60 min",
		Benefits:  "Aerobic maintenance between quality sessions.",
		Source:    "standard aerobic training",
	}
	var sec float64
	if paces != nil {
		sec = (paces.Easy.MinSeconds + paces.Easy.MaxSeconds) / 2
	}
	return prescribe.FromTemplate("", tpl, prescribe.Options{
		Paces:              paces,
		Week:               week,
		TotalWeeks:         totalWeeks,
		DistanceMiles:      miles,
		PaceSecondsPerMile: sec,
	})
}

// pickHardDays selects the weekdays eligible for quality sessions: days
// the profile declares hard first, topped up from the remaining available
// days, never the long-run day and never two adjacent days.
func pickHardDays(p profile.Profile) []time.Weekday {
	var picked []time.Weekday
	consider := func(d time.Weekday) {
		if d == p.LongRunDay || !p.Available(d) || containsDay(picked, d) {
			return
		}
		for _, q := range picked {
			if adjacentDays(d, q) {
				return
			}
		}
		picked = append(picked, d)
	}
	for d := time.Sunday; d <= time.Saturday; d++ {
		if p.HardDayAllowed(d) {
			consider(d)
		}
	}
	for d := time.Sunday; d <= time.Saturday; d++ {
		if len(picked) >= 2 {
			break
		}
		consider(d)
	}
	return picked
}

// adjacentDays treats the week circularly: Saturday and Sunday touch.
func adjacentDays(a, b time.Weekday) bool {
	diff := (int(a) - int(b) + 7) % 7
	return diff == 1 || diff == 6
}

func containsDay(days []time.Weekday, d time.Weekday) bool {
	return indexOfDay(days, d) >= 0
}

func indexOfDay(days []time.Weekday, d time.Weekday) int {
	for i, x := range days {
		if x == d {
			return i
		}
	}
	return -1
}

func hardSessionCount(exp profile.Experience, phase Phase, stepBack bool, week, totalWeeks int) int {
	if stepBack || week == totalWeeks {
		return 0
	}
	if phase == PhaseTaper {
		return 1
	}
	if exp == profile.Beginner {
		return 1
	}
	return 2
}

func phaseFor(week, totalWeeks int) Phase {
	if week >= taperStart(totalWeeks) {
		return PhaseTaper
	}
	frac := float64(week) / float64(totalWeeks)
	switch {
	case frac <= 0.35:
		return PhaseBase
	case frac <= 0.70:
		return PhaseBuild
	default:
		return PhasePeak
	}
}

func taperStart(totalWeeks int) int {
	return int(math.Floor(0.875*float64(totalWeeks))) + 1
}

func baseWeeks(totalWeeks int) int {
	return int(math.Floor(0.35 * float64(totalWeeks)))
}

func lastBuildWeek(totalWeeks int) int {
	return int(math.Floor(0.70 * float64(totalWeeks)))
}

func isStepBack(week int, phase Phase, exp profile.Experience) bool {
	if phase != PhaseBase && phase != PhaseBuild {
		return false
	}
	cadence := 4
	if exp == profile.Beginner {
		cadence = 3
	}
	return week%cadence == 0
}

// weeklyMileage ramps linearly from the starting volume to the peak across
// base and build, holds the peak, then decreases strictly through taper.
// Step-back weeks take 80% of their target.
func weeklyMileage(week, totalWeeks int, start, peak float64, stepBack bool) float64 {
	ramp := lastBuildWeek(totalWeeks)
	ts := taperStart(totalWeeks)

	var target float64
	switch {
	case week >= ts:
		factors := taperFactors(totalWeeks - ts + 1)
		target = peak * factors[week-ts]
	case week >= ramp:
		target = peak
	case ramp > 1:
		target = start + (peak-start)*float64(week-1)/float64(ramp-1)
	default:
		target = peak
	}
	if stepBack {
		target *= 0.8
	}
	return math.Round(target)
}

func taperFactors(weeks int) []float64 {
	switch weeks {
	case 1:
		return []float64{0.6}
	case 2:
		return []float64{0.75, 0.55}
	default:
		return []float64{0.8, 0.65, 0.5}
	}
}

func mileageBounds(d pace.Distance, exp profile.Experience) (start, peak float64) {
	type bounds struct{ start, peak float64 }
	table := map[pace.Distance]map[profile.Experience]bounds{
		pace.Marathon: {
			profile.Beginner:     {25, 40},
			profile.Intermediate: {30, 50},
			profile.Advanced:     {40, 60},
		},
		pace.Half: {
			profile.Beginner:     {20, 32},
			profile.Intermediate: {25, 40},
			profile.Advanced:     {30, 48},
		},
		pace.TenK: {
			profile.Beginner:     {15, 26},
			profile.Intermediate: {20, 32},
			profile.Advanced:     {25, 40},
		},
		pace.FiveK: {
			profile.Beginner:     {12, 22},
			profile.Intermediate: {15, 26},
			profile.Advanced:     {20, 32},
		},
	}
	b, ok := table[d][exp]
	if !ok {
		b = table[d][profile.Intermediate]
	}
	return b.start, b.peak
}

func longRunMiles(weekly float64, goalDistance string) float64 {
	miles := math.Round(weekly * 0.35)
	max := 12.0
	if dist, err := pace.ParseDistance(goalDistance); err == nil {
		switch dist {
		case pace.Marathon:
			max = 20
		case pace.Half:
			max = 14
		case pace.TenK:
			max = 10
		default:
			max = 8
		}
	}
	if miles > max {
		return max
	}
	if miles < 5 {
		return 5
	}
	return miles
}

func easyRunMiles(weekly, longMiles float64, hardCount, easyDays int) float64 {
	if easyDays <= 0 {
		return 4
	}
	remaining := weekly - longMiles - float64(hardCount)*6
	per := math.Round(remaining / float64(easyDays))
	if per < 3 {
		return 3
	}
	if per > 10 {
		return 10
	}
	return per
}

func hardFocus(t profile.DayType) string {
	switch t {
	case profile.DayTempo:
		return "lactate threshold"
	case profile.DayIntervals:
		return "VO2max and economy"
	default:
		return "strength and power"
	}
}
