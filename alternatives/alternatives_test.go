package alternatives

import (
	"strings"
	"testing"
	"time"

	"github.com/briangreenhill/paceplan/library"
	"github.com/briangreenhill/paceplan/pace"
	"github.com/briangreenhill/paceplan/plan"
	"github.com/briangreenhill/paceplan/prescribe"
	"github.com/briangreenhill/paceplan/profile"
)

func testPaces(t *testing.T) *pace.Profile {
	t.Helper()
	p, err := pace.FromGoal(pace.Marathon, "4:00:00")
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func scheduledDay(t *testing.T, dt profile.DayType, modality library.Modality, name string) plan.DayEntry {
	t.Helper()
	cat, err := library.Get(modality)
	if err != nil {
		t.Fatal(err)
	}
	w, err := prescribe.Compile(cat, name, prescribe.Options{Paces: testPaces(t), Week: 5, TotalWeeks: 16})
	if err != nil {
		t.Fatal(err)
	}
	return plan.DayEntry{Day: time.Tuesday, Type: dt, Workout: w}
}

func titles(cats []Category) []string {
	out := make([]string, len(cats))
	for i, c := range cats {
		out[i] = c.Title
	}
	return out
}

func hasTitle(cats []Category, title string) bool {
	for _, c := range cats {
		if c.Title == title {
			return true
		}
	}
	return false
}

func TestGenerateNeverEmpty(t *testing.T) {
	days := []plan.DayEntry{
		scheduledDay(t, profile.DayTempo, library.Tempo, "Classic Tempo Run"),
		scheduledDay(t, profile.DayIntervals, library.Intervals, "800m Repeats"),
		scheduledDay(t, profile.DayHills, library.Hills, "Short Hill Repeats"),
		scheduledDay(t, profile.DayLongRun, library.LongRun, "Classic Long Run"),
		{Day: time.Friday, Type: profile.DayEasy},
		{Day: time.Monday, Type: profile.DayRest},
		{Day: time.Friday, Type: profile.DayRestOrXT},
		{Day: time.Wednesday, Type: profile.DayBike},
		{Day: time.Saturday, Type: profile.DayBrick},
	}
	for _, day := range days {
		cats := Generate(day, profile.Profile{}, Options{})
		if len(cats) == 0 {
			t.Errorf("%s day: no alternative categories", day.Type)
			continue
		}
		for _, c := range cats {
			if c.Title == "" {
				t.Errorf("%s day: category with empty title", day.Type)
			}
			if len(c.Workouts) == 0 {
				t.Errorf("%s day: category %q has no workouts", day.Type, c.Title)
			}
		}
	}
}

func TestGenerateBikeSwapUsesBikeName(t *testing.T) {
	day := scheduledDay(t, profile.DayTempo, library.Tempo, "Classic Tempo Run")
	p := profile.Profile{
		Equipment:       profile.Equipment{StandUpBike: true},
		StandUpBikeType: "cyclete",
	}
	cats := Generate(day, p, Options{})
	if !hasTitle(cats, "Switch to Cyclete") {
		t.Fatalf("no 'Switch to Cyclete' category, got %v", titles(cats))
	}
	for _, c := range cats {
		if c.Title != "Switch to Cyclete" {
			continue
		}
		if !strings.Contains(c.Description, "min") {
			t.Errorf("bike swap description should carry the matched ride time, got %q", c.Description)
		}
		for _, w := range c.Workouts {
			if w.Modality != library.StandUpBike {
				t.Errorf("bike swap offered %s workout %q", w.Modality, w.Name)
			}
		}
	}
}

func TestGenerateBikeNameFallback(t *testing.T) {
	day := scheduledDay(t, profile.DayTempo, library.Tempo, "Classic Tempo Run")
	p := profile.Profile{Equipment: profile.Equipment{StandUpBike: true}}
	cats := Generate(day, p, Options{})
	if !hasTitle(cats, "Switch to Stand-Up Bike") {
		t.Errorf("unnamed bike should fall back to generic title, got %v", titles(cats))
	}
}

func TestGenerateRestDay(t *testing.T) {
	day := plan.DayEntry{Day: time.Monday, Type: profile.DayRest}
	cats := Generate(day, profile.Profile{}, Options{})
	for _, want := range []string{"Gentle Movement", "Full Rest"} {
		if !hasTitle(cats, want) {
			t.Errorf("rest day missing %q, got %v", want, titles(cats))
		}
	}
	if hasTitle(cats, "Optional Cross-Training") {
		t.Error("rest day without equipment should not offer cross-training")
	}

	day.Type = profile.DayRestOrXT
	p := profile.Profile{Equipment: profile.Equipment{Rower: true}}
	cats = Generate(day, p, Options{})
	if !hasTitle(cats, "Optional Cross-Training") {
		t.Errorf("rest-or-xt day with a rower should offer cross-training, got %v", titles(cats))
	}
}

func TestGenerateQuickAdaptations(t *testing.T) {
	day := scheduledDay(t, profile.DayIntervals, library.Intervals, "800m Repeats")
	tests := []struct {
		reason string
		title  string
	}{
		{ReasonNoTrack, "No Track? No Problem"},
		{ReasonTooHot, "Beat the Heat"},
		{ReasonTimeConstrained, "Short on Time"},
		{ReasonNoHills, "Flatland Hills"},
	}
	for _, tt := range tests {
		cats := Generate(day, profile.Profile{}, Options{Reason: tt.reason})
		if !hasTitle(cats, tt.title) {
			t.Errorf("reason %s: missing %q, got %v", tt.reason, tt.title, titles(cats))
		}
	}
	// An unknown reason is swallowed, not surfaced.
	cats := Generate(day, profile.Profile{}, Options{Reason: "solar_flare"})
	if len(cats) == 0 {
		t.Error("unknown reason suppressed the whole menu")
	}
}

func TestGenerateExtremeWeather(t *testing.T) {
	day := scheduledDay(t, profile.DayTempo, library.Tempo, "Classic Tempo Run")

	// No equipment: the treadmill stand-in must still appear.
	cats := Generate(day, profile.Profile{}, Options{ExtremeWeather: true})
	found := false
	for _, c := range cats {
		if c.Title != "Extreme Weather Options" {
			continue
		}
		found = true
		if len(c.Workouts) != 1 || c.Workouts[0].Name != "Treadmill Session" {
			t.Errorf("no-equipment weather options = %+v, want treadmill stand-in", c.Workouts)
		}
	}
	if !found {
		t.Fatalf("missing weather category, got %v", titles(cats))
	}

	p := profile.Profile{Equipment: profile.Equipment{StationaryBike: true, Pool: true}}
	cats = Generate(day, p, Options{ExtremeWeather: true})
	for _, c := range cats {
		if c.Title != "Extreme Weather Options" {
			continue
		}
		if len(c.Workouts) < 2 {
			t.Errorf("bike+pool owner got %d indoor options, want 2", len(c.Workouts))
		}
	}
}

func TestGenerateBrickGating(t *testing.T) {
	day := scheduledDay(t, profile.DayTempo, library.Tempo, "Classic Tempo Run")
	if day.Workout.DurationMinutes < 40 {
		t.Fatalf("fixture too short for a brick: %.0f min", day.Workout.DurationMinutes)
	}

	p := profile.Profile{Equipment: profile.Equipment{StandUpBike: true}}
	if cats := Generate(day, p, Options{}); !hasTitle(cats, "Brick It") {
		t.Errorf("long session + bike should offer a brick, got %v", titles(cats))
	}
	if cats := Generate(day, profile.Profile{}, Options{}); hasTitle(cats, "Brick It") {
		t.Error("brick offered without a stand-up bike")
	}

	short := day
	w := *day.Workout
	w.DurationMinutes = 30
	short.Workout = &w
	if cats := Generate(short, p, Options{}); hasTitle(cats, "Brick It") {
		t.Error("brick offered for a 30-minute session")
	}
}

func TestGenerateAddMode(t *testing.T) {
	day := scheduledDay(t, profile.DayTempo, library.Tempo, "Classic Tempo Run")
	cats := Generate(day, profile.Profile{}, Options{Mode: ModeAdd})
	if hasTitle(cats, "Same Stimulus, Different Flavor") || hasTitle(cats, "Take It Easier") {
		t.Errorf("add mode should drop replacement menus, got %v", titles(cats))
	}
	if !hasTitle(cats, "Add Some Spice") {
		t.Errorf("add mode should keep stackable categories, got %v", titles(cats))
	}
}

func TestGenerateSameIntensityExcludesScheduled(t *testing.T) {
	day := scheduledDay(t, profile.DayTempo, library.Tempo, "Classic Tempo Run")
	cats := Generate(day, profile.Profile{}, Options{})
	for _, c := range cats {
		if c.Title != "Same Stimulus, Different Flavor" {
			continue
		}
		for _, w := range c.Workouts {
			if strings.HasPrefix(w.Name, "Classic Tempo Run") {
				t.Errorf("scheduled workout %q offered as its own alternative", w.Name)
			}
		}
	}
}

func TestApply(t *testing.T) {
	day := scheduledDay(t, profile.DayTempo, library.Tempo, "Classic Tempo Run")
	orig := day.Workout
	replacement := prescribe.Workout{
		Name:      "Steady Ride",
		Modality:  library.StandUpBike,
		Duration:  "60 min",
		Equipment: "stand-up bike",
	}

	Apply(&day, "Switch to Cyclete", replacement)

	if day.Workout == orig {
		t.Fatal("Apply did not replace the workout")
	}
	if day.Workout.Name != "Steady Ride" {
		t.Errorf("Workout.Name = %q", day.Workout.Name)
	}
	if day.SwapReason != "Switch to Cyclete" {
		t.Errorf("SwapReason = %q", day.SwapReason)
	}
	if !day.EquipmentSpecific {
		t.Error("equipment-bound replacement should mark the day equipment-specific")
	}
	if day.Workout.Paces != orig.Paces {
		t.Error("Apply should carry the scheduled paces onto the replacement")
	}
}

func TestApplyWithoutEquipment(t *testing.T) {
	day := scheduledDay(t, profile.DayIntervals, library.Intervals, "800m Repeats")
	Apply(&day, "Take It Easier", genericEasy(testPaces(t)))
	if day.EquipmentSpecific {
		t.Error("plain run replacement should not mark the day equipment-specific")
	}
	if day.SwapReason != "Take It Easier" {
		t.Errorf("SwapReason = %q", day.SwapReason)
	}
}
