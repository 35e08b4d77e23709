// Package equivalency maps running stimulus onto cross-training modalities
// using fixed, documented conversion ratios. Ratios are never estimated per
// call: two athletes covering the same normalized-mile count receive the
// same physiological load regardless of modality or intensity.
package equivalency

import (
	"fmt"

	"github.com/briangreenhill/paceplan/library"
	"github.com/briangreenhill/paceplan/profile"
)

// Stimulus is the physiological training-effect bucket of a session,
// independent of modality.
type Stimulus string

const (
	Easy      Stimulus = "easy"
	TempoWork Stimulus = "tempo"
	Intervals Stimulus = "intervals"
	Long      Stimulus = "long"
	HillWork  Stimulus = "hills"
	Recovery  Stimulus = "recovery"
)

// Fixed conversion ratios.
const (
	// Stand-up bike minutes per running minute. Easy riding transfers
	// about half the load per minute; quality segments transfer less
	// still, so they need the larger multiplier.
	easyRideFactor    = 2.0
	qualityRideFactor = 2.5

	// Approximate bike miles per running mile.
	bikeMilesPerRunMile = 3.0
)

// MissingEquipmentError reports a conversion aimed at equipment the runner
// does not own. Callers treat it as "not applicable" and skip silently.
type MissingEquipmentError struct {
	Modality library.Modality
}

func (e *MissingEquipmentError) Error() string {
	return fmt.Sprintf("no %s equipment on the runner's profile", e.Modality)
}

// StimulusForType buckets a scheduled day type.
func StimulusForType(t profile.DayType) Stimulus {
	switch t {
	case profile.DayTempo:
		return TempoWork
	case profile.DayIntervals:
		return Intervals
	case profile.DayHills:
		return HillWork
	case profile.DayLongRun:
		return Long
	case profile.DayRest, profile.DayRestOrXT:
		return Recovery
	default:
		return Easy
	}
}

// Owned reports whether the profile's equipment covers a modality.
// Running modalities are always covered.
func Owned(eq profile.Equipment, m library.Modality) bool {
	switch m {
	case library.StandUpBike:
		return eq.StandUpBike
	case library.StationaryBike:
		return eq.StationaryBike
	case library.Elliptical:
		return eq.Elliptical
	case library.Rowing:
		return eq.Rower
	case library.Pool:
		return eq.Pool
	case library.Swim:
		return eq.Pool || eq.SwimAccess
	}
	return true
}

// OwnedModalities returns the cross-training modalities the profile can use,
// in library order.
func OwnedModalities(eq profile.Equipment) []library.Modality {
	var out []library.Modality
	for _, m := range library.CrossTraining {
		if Owned(eq, m) {
			out = append(out, m)
		}
	}
	return out
}

// categoryFor maps a stimulus onto a cross-training catalog category.
// Hill stimulus has no direct cross-training analogue, so it lands on the
// modality's interval work.
func categoryFor(s Stimulus) string {
	switch s {
	case HillWork:
		return "intervals"
	case Long:
		return "long"
	case TempoWork:
		return "tempo"
	case Intervals:
		return "intervals"
	case Recovery:
		return "recovery"
	default:
		return "easy"
	}
}

// Convert returns up to two templates from the target modality matching the
// stimulus, falling back tempo -> easy -> first non-empty category when the
// mapped category is missing. Blank duration or intensity fields are filled
// with defaults so every returned template renders.
func Convert(s Stimulus, target library.Modality, eq profile.Equipment) ([]library.Template, error) {
	if !Owned(eq, target) {
		return nil, &MissingEquipmentError{Modality: target}
	}
	cat, err := library.Get(target)
	if err != nil {
		return nil, err
	}

	ws := cat.ByCategory(categoryFor(s))
	if len(ws) == 0 {
		ws = cat.ByCategory("tempo")
	}
	if len(ws) == 0 {
		ws = cat.ByCategory("easy")
	}
	if len(ws) == 0 {
		for _, code := range cat.Categories() {
			if templates := cat.ByCategory(code); len(templates) > 0 {
				ws = templates
				break
			}
		}
	}
	if len(ws) == 0 {
		return nil, fmt.Errorf("the %s catalog has no templates at all", target)
	}

	if len(ws) > 2 {
		ws = ws[:2]
	}
	for i := range ws {
		if ws[i].Duration == "" {
			ws[i].Duration = "30-45 min"
		}
		if ws[i].Intensity == "" {
			ws[i].Intensity = "moderate"
		}
	}
	return ws, nil
}

// RideMinutes converts running minutes into stand-up bike minutes for the
// given stimulus: 2.0x for easy-pace work, 2.5x for marathon- and
// threshold-pace work.
func RideMinutes(runMinutes float64, s Stimulus) float64 {
	return runMinutes * rideFactor(s)
}

// RunEquivalentMiles converts bike miles to running miles at the fixed
// 3:1 ratio.
func RunEquivalentMiles(bikeMiles float64) float64 {
	return bikeMiles / bikeMilesPerRunMile
}

// NormalizedMiles expresses a ride as equivalent running mileage: ride
// minutes are deflated by the stimulus factor, then divided by the
// runner's pace for the stimulus.
func NormalizedMiles(rideMinutes float64, s Stimulus, secondsPerMile float64) float64 {
	if secondsPerMile <= 0 {
		return 0
	}
	runMinutes := rideMinutes / rideFactor(s)
	return runMinutes * 60 / secondsPerMile
}

func rideFactor(s Stimulus) float64 {
	switch s {
	case TempoWork, Intervals, HillWork:
		return qualityRideFactor
	default:
		return easyRideFactor
	}
}
