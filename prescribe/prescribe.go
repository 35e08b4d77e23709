// Package prescribe compiles a vague catalog template into one concrete,
// pace-annotated workout for a specific runner and week.
package prescribe

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/briangreenhill/paceplan/library"
	"github.com/briangreenhill/paceplan/pace"
	"github.com/briangreenhill/paceplan/structure"
)

// Options carries everything beyond the template that shapes a
// prescription. All fields are optional.
type Options struct {
	Paces      *pace.Profile // enables pace annotation
	Week       int           // with TotalWeeks, biases range resolution
	TotalWeeks int
	// DistanceMiles with PaceSecondsPerMile computes the duration
	// directly, overriding the template's duration range.
	DistanceMiles      float64
	PaceSecondsPerMile float64
	ExtraNotes         []string
}

// Workout is a fully specified training session: every range resolved,
// paces injected, duration concrete.
type Workout struct {
	Name            string           `json:"name"`
	Modality        library.Modality `json:"modality"`
	Category        string           `json:"category"`
	Intensity       string           `json:"intensity"`
	Duration        string           `json:"duration"`
	DurationMinutes float64          `json:"durationMinutes"`
	Structure       string           `json:"structure"`
	Benefits        string           `json:"benefits"`
	Source          string           `json:"source"`
	Equipment       string           `json:"equipment,omitempty"`
	Paces           *pace.Profile    `json:"paces,omitempty"`
	SafetyNotes     []string         `json:"safetyNotes,omitempty"`
}

// Compile resolves a workout name in the catalog (exact first, then
// substring) and builds its prescription. A lookup miss surfaces the
// catalog's NotFoundError; callers choose their own fallback.
func Compile(cat *library.Catalog, name string, opts Options) (*Workout, error) {
	tpl, err := cat.Find(name)
	if err != nil {
		return nil, err
	}
	return FromTemplate(cat.Modality(), tpl, opts), nil
}

// FromTemplate builds a prescription from a template already in hand.
func FromTemplate(m library.Modality, tpl library.Template, opts Options) *Workout {
	resolve := func(s string) string {
		if opts.Week > 0 && opts.TotalWeeks > 0 {
			return structure.ResolveForWeek(s, opts.Week, opts.TotalWeeks)
		}
		return structure.Resolve(s)
	}

	w := &Workout{
		Name:      tpl.Name,
		Modality:  m,
		Category:  tpl.Category,
		Intensity: tpl.Intensity,
		Duration:  resolve(tpl.Duration),
		Structure: resolve(tpl.Structure),
		Benefits:  tpl.Benefits,
		Source:    tpl.Source,
		Equipment: tpl.Equipment,
		Paces:     opts.Paces,
	}

	// Explicit precedence: a caller-supplied distance and pace beat the
	// template's duration range.
	if opts.DistanceMiles > 0 && opts.PaceSecondsPerMile > 0 {
		mins := opts.DistanceMiles * opts.PaceSecondsPerMile / 60
		w.DurationMinutes = math.Round(mins)
		w.Duration = fmt.Sprintf("%.0f min", w.DurationMinutes)
	} else if mins, ok := library.DurationMinutes(w.Duration); ok {
		w.DurationMinutes = mins
	}

	if opts.Paces != nil {
		w.Structure = InjectPaces(w.Structure, opts.Paces)
		w.Benefits = InjectPaces(w.Benefits, opts.Paces)
		w.Name = annotateName(w.Name, m, tpl.Category, opts.Paces)
	}

	w.SafetyNotes = append(safetyNotes(m), opts.ExtraNotes...)
	return w
}

// zone keywords in template prose, each paired with the profile field that
// annotates it. 5K and 10K pace are served by the nearest trained zones.
var injections = []struct {
	re   *regexp.Regexp
	pick func(p *pace.Profile) string
}{
	{regexp.MustCompile(`(?i)easy pace( ?\()?`), func(p *pace.Profile) string { return p.Easy.Pace }},
	{regexp.MustCompile(`(?i)marathon pace( ?\()?`), func(p *pace.Profile) string { return p.MarathonPace.Pace }},
	{regexp.MustCompile(`(?i)threshold pace( ?\()?`), func(p *pace.Profile) string { return p.Threshold.Pace }},
	{regexp.MustCompile(`(?i)interval pace( ?\()?`), func(p *pace.Profile) string { return p.Interval.Pace }},
	{regexp.MustCompile(`(?i)goal pace( ?\()?`), func(p *pace.Profile) string { return p.Race.Pace }},
	{regexp.MustCompile(`(?i)5K pace( ?\()?`), func(p *pace.Profile) string { return p.Interval.Pace }},
	{regexp.MustCompile(`(?i)10K pace( ?\()?`), func(p *pace.Profile) string { return p.Threshold.Pace }},
	{regexp.MustCompile(`\b400m( ?\()?`), func(p *pace.Profile) string { return p.TrackSplits.M400.Time }},
	{regexp.MustCompile(`\b800m( ?\()?`), func(p *pace.Profile) string { return p.TrackSplits.M800.Time }},
	{regexp.MustCompile(`\b1600m( ?\()?`), func(p *pace.Profile) string { return p.TrackSplits.M1600.Time }},
}

// InjectPaces annotates zone keywords and track distances with the
// runner's numbers: "threshold pace" becomes "threshold pace (8:38/mi)".
// A keyword already followed by an opening parenthesis is left alone, which
// keeps the substitution idempotent, even on text that coincidentally
// carries a literal annotation.
func InjectPaces(s string, p *pace.Profile) string {
	for _, inj := range injections {
		val := inj.pick(p)
		s = inj.re.ReplaceAllStringFunc(s, func(match string) string {
			if strings.HasSuffix(match, "(") {
				return match
			}
			return fmt.Sprintf("%s (%s)", match, val)
		})
	}
	return s
}

// annotateName appends the session's anchor pace to the workout name.
func annotateName(name string, m library.Modality, category string, p *pace.Profile) string {
	if strings.Contains(name, "(") {
		return name
	}
	var anchor string
	switch m {
	case library.Tempo:
		anchor = p.Threshold.Pace
	case library.Intervals:
		anchor = p.Interval.Pace
	case library.LongRun:
		anchor = p.Easy.Pace
	case library.Hills:
		anchor = p.Interval.Pace + " effort"
	default:
		// Cross-training names carry no running pace.
		return name
	}
	if category == "race_pace" || category == "race_specific" {
		anchor = p.Race.Pace
	}
	return fmt.Sprintf("%s (%s)", name, anchor)
}

func safetyNotes(m library.Modality) []string {
	switch m {
	case library.Intervals:
		return []string{"Cut the session short if form breaks down; the last reps matter least."}
	case library.Hills:
		return []string{"Run the descents in control; the downhill is where hill days cause injuries."}
	case library.LongRun:
		return []string{"Take fuel and fluids for anything beyond 90 minutes."}
	case library.Tempo:
		return []string{"Comfortably hard means you could speak a sentence, not hold a conversation."}
	case library.Swim, library.Pool:
		return []string{"Never swim or pool-run alone in an unsupervised facility."}
	default:
		return nil
	}
}
