package equivalency

import (
	"errors"
	"testing"

	"github.com/briangreenhill/paceplan/library"
	"github.com/briangreenhill/paceplan/profile"
)

var allEquipment = profile.Equipment{
	StandUpBike:    true,
	StationaryBike: true,
	Elliptical:     true,
	Rower:          true,
	Pool:           true,
	SwimAccess:     true,
}

func TestStimulusForType(t *testing.T) {
	tests := []struct {
		in   profile.DayType
		want Stimulus
	}{
		{profile.DayTempo, TempoWork},
		{profile.DayIntervals, Intervals},
		{profile.DayHills, HillWork},
		{profile.DayLongRun, Long},
		{profile.DayEasy, Easy},
		{profile.DayRest, Recovery},
		{profile.DayRestOrXT, Recovery},
		{profile.DayBike, Easy},
	}
	for _, tt := range tests {
		if got := StimulusForType(tt.in); got != tt.want {
			t.Errorf("StimulusForType(%s) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestConvertEveryStimulusEveryModality(t *testing.T) {
	stims := []Stimulus{Easy, TempoWork, Intervals, Long, HillWork, Recovery}
	for _, m := range library.CrossTraining {
		for _, s := range stims {
			ws, err := Convert(s, m, allEquipment)
			if err != nil {
				t.Errorf("Convert(%s, %s) error: %v", s, m, err)
				continue
			}
			if len(ws) == 0 || len(ws) > 2 {
				t.Errorf("Convert(%s, %s) returned %d templates, want 1-2", s, m, len(ws))
			}
			for _, w := range ws {
				if w.Duration == "" || w.Intensity == "" {
					t.Errorf("Convert(%s, %s): blank fields not defaulted: %+v", s, m, w)
				}
			}
		}
	}
}

func TestConvertHillsLandsOnIntervals(t *testing.T) {
	ws, err := Convert(HillWork, library.Elliptical, allEquipment)
	if err != nil {
		t.Fatal(err)
	}
	for _, w := range ws {
		if w.Category != "intervals" {
			t.Errorf("hill stimulus mapped to category %q, want intervals", w.Category)
		}
	}
}

func TestConvertMissingEquipment(t *testing.T) {
	_, err := Convert(Easy, library.StandUpBike, profile.Equipment{})
	var me *MissingEquipmentError
	if !errors.As(err, &me) {
		t.Errorf("Convert without equipment returned %v, want MissingEquipmentError", err)
	}
	if me != nil && me.Modality != library.StandUpBike {
		t.Errorf("error names modality %s", me.Modality)
	}
}

func TestOwnedSwimViaPool(t *testing.T) {
	if !Owned(profile.Equipment{Pool: true}, library.Swim) {
		t.Error("pool access should cover swim workouts")
	}
	if Owned(profile.Equipment{}, library.Swim) {
		t.Error("swim should require pool or swim access")
	}
	if !Owned(profile.Equipment{}, library.Tempo) {
		t.Error("running modalities never require equipment")
	}
}

func TestRideMinutesRatios(t *testing.T) {
	if got := RideMinutes(30, Easy); got != 60 {
		t.Errorf("easy 30 run min = %.1f ride min, want 60", got)
	}
	if got := RideMinutes(30, TempoWork); got != 75 {
		t.Errorf("tempo 30 run min = %.1f ride min, want 75", got)
	}
	if got := RideMinutes(20, Intervals); got != 50 {
		t.Errorf("interval 20 run min = %.1f ride min, want 50", got)
	}
}

func TestRunEquivalentMiles(t *testing.T) {
	if got := RunEquivalentMiles(30); got != 10 {
		t.Errorf("30 bike miles = %.1f run miles, want 10", got)
	}
}

func TestNormalizedMiles(t *testing.T) {
	// 120 easy ride minutes deflate to 60 run minutes; at 600 sec/mi
	// (10:00/mi) that is 6 normalized miles.
	if got := NormalizedMiles(120, Easy, 600); got != 6 {
		t.Errorf("NormalizedMiles = %.2f, want 6", got)
	}
	// Same normalized count must come out whatever the intensity mix:
	// 150 tempo ride minutes also deflate to 60 run minutes.
	if got := NormalizedMiles(150, TempoWork, 600); got != 6 {
		t.Errorf("NormalizedMiles tempo = %.2f, want 6", got)
	}
	if got := NormalizedMiles(60, Easy, 0); got != 0 {
		t.Errorf("zero pace should yield 0, got %.2f", got)
	}
}

func TestOwnedModalities(t *testing.T) {
	mods := OwnedModalities(profile.Equipment{Rower: true, Pool: true})
	want := map[library.Modality]bool{library.Rowing: true, library.Pool: true, library.Swim: true}
	if len(mods) != len(want) {
		t.Fatalf("OwnedModalities = %v", mods)
	}
	for _, m := range mods {
		if !want[m] {
			t.Errorf("unexpected modality %s", m)
		}
	}
}
