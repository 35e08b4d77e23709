// Package alternatives produces the "something else" menu for a scheduled
// day: ordered, equipment- and context-aware substitutions grouped into
// categories. One category failing to build never suppresses the others.
package alternatives

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/briangreenhill/paceplan/equivalency"
	"github.com/briangreenhill/paceplan/library"
	"github.com/briangreenhill/paceplan/pace"
	"github.com/briangreenhill/paceplan/plan"
	"github.com/briangreenhill/paceplan/prescribe"
	"github.com/briangreenhill/paceplan/profile"
)

// Mode says whether the chosen alternative replaces the scheduled workout
// or is added alongside it.
type Mode string

const (
	ModeReplace Mode = "replace"
	ModeAdd     Mode = "add"
)

// Situational reasons a runner asks for a quick adaptation.
const (
	ReasonNoTrack         = "no_track"
	ReasonTooHot          = "too_hot"
	ReasonTimeConstrained = "time_constrained"
	ReasonNoHills         = "no_hills"
)

// Options tunes alternative generation.
type Options struct {
	Mode           Mode
	Reason         string // one of the Reason constants, optional
	ExtremeWeather bool
}

// Category is one titled group of alternatives.
type Category struct {
	Title       string              `json:"title"`
	Description string              `json:"description,omitempty"`
	Workouts    []prescribe.Workout `json:"workouts"`
}

// Generate builds the ordered category set for a scheduled day. Every
// category is built independently; a failure inside one is swallowed and
// that category is omitted or served by a generic stand-in.
func Generate(day plan.DayEntry, p profile.Profile, opts Options) []Category {
	if day.Type == profile.DayRest || day.Type == profile.DayRestOrXT {
		return restDayCategories(day, p)
	}

	paces := dayPaces(day)
	stim := equivalency.StimulusForType(day.Type)
	var cats []Category

	add := func(c Category, err error) {
		if err != nil || len(c.Workouts) == 0 {
			return
		}
		cats = append(cats, c)
	}

	// Add-alongside mode drops the replacement menus and keeps only the
	// categories that stack onto the scheduled session.
	if opts.Mode != ModeAdd {
		add(sameIntensity(day, paces))
		add(easierOptions(day, paces))
	}
	add(harderOptions(day, paces))

	if p.Equipment.StandUpBike {
		add(bikeSwap(day, p, stim))
	}
	if opts.Reason != "" {
		add(quickAdaptation(day, paces, opts.Reason))
	}
	if opts.ExtremeWeather {
		add(weatherOptions(p, stim))
	}
	if p.Equipment.StandUpBike && day.Workout != nil && day.Workout.DurationMinutes >= 40 {
		add(brickOption(day, p))
	}
	add(crossTraining(p, stim))

	if len(cats) == 0 {
		// Never hand back an empty menu.
		cats = append(cats, Category{
			Title:       "Keep It Simple",
			Description: "When nothing else fits, this always does.",
			Workouts:    []prescribe.Workout{genericEasy(paces)},
		})
	}
	return cats
}

// Apply swaps the chosen alternative into the day entry, keeping the
// cross-training metadata the display layer depends on and recording the
// category title as the replacement reason.
func Apply(day *plan.DayEntry, categoryTitle string, w prescribe.Workout) {
	if day.Workout != nil && w.Paces == nil {
		w.Paces = day.Workout.Paces
	}
	day.Workout = &w
	day.SwapReason = categoryTitle
	if w.Equipment != "" {
		day.EquipmentSpecific = true
	}
}

func dayPaces(day plan.DayEntry) *pace.Profile {
	if day.Workout != nil {
		return day.Workout.Paces
	}
	return nil
}

// sameIntensity offers other templates of the same category from the
// library the scheduled workout came from.
func sameIntensity(day plan.DayEntry, paces *pace.Profile) (Category, error) {
	if day.Workout == nil {
		return Category{}, fmt.Errorf("no scheduled workout")
	}
	cat, err := library.Get(day.Workout.Modality)
	if err != nil {
		return Category{}, err
	}
	var out []prescribe.Workout
	for _, tpl := range cat.ByCategory(day.Workout.Category) {
		if strings.HasPrefix(day.Workout.Name, tpl.Name) {
			continue // the scheduled workout itself
		}
		out = append(out, *prescribe.FromTemplate(cat.Modality(), tpl, prescribe.Options{Paces: paces}))
		if len(out) == 3 {
			break
		}
	}
	return Category{
		Title:       "Same Stimulus, Different Flavor",
		Description: "Equivalent sessions from the same family.",
		Workouts:    out,
	}, nil
}

func easierOptions(day plan.DayEntry, paces *pace.Profile) (Category, error) {
	var out []prescribe.Workout
	if day.Workout != nil {
		shorter := *day.Workout
		shorter.Name = "Shortened: " + shorter.Name
		shorter.DurationMinutes = shorter.DurationMinutes * 2 / 3
		shorter.Duration = fmt.Sprintf("%.0f min", shorter.DurationMinutes)
		shorter.SafetyNotes = nil
		out = append(out, shorter)
	}
	out = append(out, genericEasy(paces), restEntry())
	return Category{
		Title:       "Take It Easier",
		Description: "Shorten it, slow it down, or bank the rest.",
		Workouts:    out,
	}, nil
}

func harderOptions(day plan.DayEntry, paces *pace.Profile) (Category, error) {
	var out []prescribe.Workout
	if speed, err := library.Get(library.Intervals); err == nil {
		for _, tpl := range speed.ByCategory("speed") {
			out = append(out, *prescribe.FromTemplate(library.Intervals, tpl, prescribe.Options{Paces: paces}))
			if len(out) == 1 {
				break
			}
		}
	}
	if hills, err := library.Get(library.Hills); err == nil {
		if ws := hills.ByCategory("repeats"); len(ws) > 0 {
			out = append(out, *prescribe.FromTemplate(library.Hills, ws[0], prescribe.Options{Paces: paces}))
		}
	}
	return Category{
		Title:       "Add Some Spice",
		Description: "Speed or hill insertions for a day you feel great.",
		Workouts:    out,
	}, nil
}

// bikeSwap is the stand-up-bike equivalent of the scheduled session, titled
// with the owner's bike ("Switch to Cyclete").
func bikeSwap(day plan.DayEntry, p profile.Profile, stim equivalency.Stimulus) (Category, error) {
	ws, err := equivalency.Convert(stim, library.StandUpBike, p.Equipment)
	if err != nil {
		return Category{}, err
	}
	var out []prescribe.Workout
	for _, tpl := range ws {
		out = append(out, *prescribe.FromTemplate(library.StandUpBike, tpl, prescribe.Options{}))
	}
	desc := "Same stimulus, no impact."
	if day.Workout != nil && day.Workout.DurationMinutes > 0 {
		desc = fmt.Sprintf("Ride about %.0f min to match today's %.0f-minute run.",
			equivalency.RideMinutes(day.Workout.DurationMinutes, stim), day.Workout.DurationMinutes)
	}
	return Category{
		Title:       "Switch to " + bikeName(p.StandUpBikeType),
		Description: desc,
		Workouts:    out,
	}, nil
}

// quickAdaptation serves a hard-coded fix for a named constraint. These are
// deliberately generic so they can never fail to build.
func quickAdaptation(day plan.DayEntry, paces *pace.Profile, reason string) (Category, error) {
	switch reason {
	case ReasonNoTrack:
		c := Category{Title: "No Track? No Problem", Description: "Effort-based intervals work anywhere."}
		if cat, err := library.Get(library.Intervals); err == nil {
			for _, tpl := range cat.ByCategory("fartlek") {
				c.Workouts = append(c.Workouts, *prescribe.FromTemplate(library.Intervals, tpl, prescribe.Options{Paces: paces}))
				if len(c.Workouts) == 2 {
					break
				}
			}
		}
		if len(c.Workouts) == 0 {
			c.Workouts = []prescribe.Workout{genericFartlek(paces)}
		}
		return c, nil
	case ReasonTooHot:
		return Category{
			Title:       "Beat the Heat",
			Description: "Move the session indoors or to the coolest hour.",
			Workouts: []prescribe.Workout{
				{
					Name:      "Pre-Dawn Version",
					Intensity: "as scheduled",
					Duration:  scheduledDuration(day),
					Structure: "Run the scheduled session before sunrise, one step slower per mile, extra fluids.",
					Benefits:  "Keeps the stimulus while cutting the heat stress.",
				},
				{
					Name:      "Treadmill Version",
					Intensity: "as scheduled",
					Duration:  scheduledDuration(day),
					Structure: "Scheduled session on a treadmill at 1% incline.",
					Benefits:  "Same work, climate controlled.",
				},
			},
		}, nil
	case ReasonTimeConstrained:
		return Category{
			Title:       "Short on Time",
			Description: "Keep the sharpest part of the session.",
			Workouts: []prescribe.Workout{
				{
					Name:      "Condensed Quality",
					Intensity: "hard",
					Duration:  "25-30 min",
					Structure: "5 min warmup, 15 min of the scheduled session's core work, 5 min cooldown.",
					Benefits:  "Most of the stimulus in half the window.",
				},
				genericEasy(paces),
			},
		}, nil
	case ReasonNoHills:
		return Category{
			Title:       "Flatland Hills",
			Description: "Hill stimulus without a hill.",
			Workouts: []prescribe.Workout{
				{
					Name:      "Treadmill Incline Repeats",
					Intensity: "hard",
					Duration:  "40-50 min",
					Structure: "15 min warmup, 8 x 90 sec at 6-8% incline with 2 min flat recovery, 10 min cooldown.",
					Benefits:  "Replicates hill strength work to the percent grade.",
				},
				{
					Name:      "Stair Repeats",
					Intensity: "hard",
					Duration:  "30-40 min",
					Structure: "10 min warmup, 10 x 30-45 sec stair climbs with walk-down recovery, 10 min cooldown.",
					Benefits:  "Power and posture work on any stadium or stairwell.",
				},
			},
		}, nil
	}
	return Category{}, fmt.Errorf("unknown adaptation reason %q", reason)
}

func weatherOptions(p profile.Profile, stim equivalency.Stimulus) (Category, error) {
	c := Category{
		Title:       "Extreme Weather Options",
		Description: "Indoor equivalents for a day you should not be outside.",
	}
	for _, m := range []library.Modality{library.StationaryBike, library.Elliptical, library.Pool} {
		ws, err := equivalency.Convert(stim, m, p.Equipment)
		if err != nil {
			continue // unowned equipment is simply not applicable
		}
		if len(ws) > 0 {
			c.Workouts = append(c.Workouts, *prescribe.FromTemplate(m, ws[0], prescribe.Options{}))
		}
	}
	if len(c.Workouts) == 0 {
		c.Workouts = []prescribe.Workout{
			{
				Name:      "Treadmill Session",
				Intensity: "as scheduled",
				Duration:  "30-60 min",
				Structure: "Scheduled session moved onto a treadmill.",
				Benefits:  "The plan survives the forecast.",
			},
		}
	}
	return c, nil
}

func brickOption(day plan.DayEntry, p profile.Profile) (Category, error) {
	stim := equivalency.StimulusForType(day.Type)
	runPart := day.Workout.DurationMinutes / 2
	ridePart := equivalency.RideMinutes(day.Workout.DurationMinutes-runPart, stim)
	return Category{
		Title:       "Brick It",
		Description: "Split the session between running and riding.",
		Workouts: []prescribe.Workout{
			{
				Name:      fmt.Sprintf("Run + %s Brick", bikeName(p.StandUpBikeType)),
				Intensity: "as scheduled",
				Duration:  fmt.Sprintf("%.0f min", runPart+ridePart),
				Structure: fmt.Sprintf("Run %.0f min of the scheduled session, then ride %.0f min at matching effort.",
					runPart, ridePart),
				Benefits:  "Full stimulus with half the impact.",
				Equipment: "stand-up bike",
			},
		},
	}, nil
}

func crossTraining(p profile.Profile, stim equivalency.Stimulus) (Category, error) {
	c := Category{
		Title:       "Cross-Training Instead",
		Description: "Matched sessions on your equipment.",
	}
	for _, m := range equivalency.OwnedModalities(p.Equipment) {
		ws, err := equivalency.Convert(stim, m, p.Equipment)
		if err != nil || len(ws) == 0 {
			continue
		}
		c.Workouts = append(c.Workouts, *prescribe.FromTemplate(m, ws[0], prescribe.Options{}))
		if len(c.Workouts) == 3 {
			break
		}
	}
	return c, nil
}

// restDayCategories is the dedicated set for rest and rest-or-cross-train
// days; the generic menu would only tempt people into training.
func restDayCategories(day plan.DayEntry, p profile.Profile) []Category {
	cats := []Category{
		{
			Title:       "Gentle Movement",
			Description: "Active recovery that costs nothing.",
			Workouts: []prescribe.Workout{
				{
					Name:      "Recovery Walk",
					Intensity: "very easy",
					Duration:  "20-40 min",
					Structure: "20-40 min of brisk walking, ideally somewhere green.",
					Benefits:  "Blood flow and fresh air without training stress.",
				},
				{
					Name:      "Mobility Session",
					Intensity: "very easy",
					Duration:  "15-25 min",
					Structure: "15-25 min of hips, calves and ankles: lunges, leg swings, calf raises, couch stretch.",
					Benefits:  "The maintenance work hard weeks never leave room for.",
				},
			},
		},
	}

	if day.Type == profile.DayRestOrXT && p.Equipment.Any() {
		c := Category{
			Title:       "Optional Cross-Training",
			Description: "Light equipment work if you feel like moving.",
		}
		for _, m := range equivalency.OwnedModalities(p.Equipment) {
			ws, err := equivalency.Convert(equivalency.Recovery, m, p.Equipment)
			if err != nil || len(ws) == 0 {
				continue
			}
			c.Workouts = append(c.Workouts, *prescribe.FromTemplate(m, ws[0], prescribe.Options{}))
			if len(c.Workouts) == 2 {
				break
			}
		}
		if len(c.Workouts) > 0 {
			cats = append(cats, c)
		}
	}

	cats = append(cats, Category{
		Title:       "Full Rest",
		Description: "Adaptation happens on the couch, not the road.",
		Workouts:    []prescribe.Workout{restEntry()},
	})
	return cats
}

func genericEasy(paces *pace.Profile) prescribe.Workout {
	w := prescribe.Workout{
		Name:      "Easy Run",
		Category:  "easy",
		Intensity: "conversational",
		Duration:  "30-45 min",
		Structure: "30-45 min at easy pace, fully conversational.",
		Benefits:  "Aerobic maintenance with no recovery cost.",
	}
	if paces != nil {
		w.Structure = prescribe.InjectPaces(w.Structure, paces)
		w.Paces = paces
	}
	return w
}

func genericFartlek(paces *pace.Profile) prescribe.Workout {
	w := prescribe.Workout{
		Name:      "Road Fartlek",
		Category:  "fartlek",
		Intensity: "hard",
		Duration:  "40 min",
		Structure: "10 min warmup, 10 x 1 min hard with 1 min jog, 10 min cooldown.",
		Benefits:  "Interval stimulus with nothing but a watch.",
	}
	if paces != nil {
		w.Paces = paces
	}
	return w
}

func restEntry() prescribe.Workout {
	return prescribe.Workout{
		Name:      "Rest Day",
		Intensity: "none",
		Duration:  "all day",
		Structure: "No training. Sleep, eat, hydrate.",
		Benefits:  "Recovery is where fitness is actually built.",
	}
}

func scheduledDuration(day plan.DayEntry) string {
	if day.Workout != nil && day.Workout.Duration != "" {
		return day.Workout.Duration
	}
	return "30-60 min"
}

// bikeName renders a stand-up bike type for display: "cyclete" -> "Cyclete".
func bikeName(t string) string {
	t = strings.TrimSpace(t)
	if t == "" {
		return "Stand-Up Bike"
	}
	r := []rune(t)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
