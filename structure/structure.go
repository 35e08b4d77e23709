// Package structure resolves vague numeric ranges inside workout structure
// strings ("4-6 x 3-8 min") into single concrete values, optionally biased
// by how far into a plan the athlete is. Resolution is idempotent: a string
// with no remaining ranges passes through unchanged.
package structure

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// Each rule pairs one range pattern with its resolver and is applied once
// per pass, in order. Patterns capture a one-character prefix guard so a
// pace token like "8:30-9:00" is never read as a range (no lookbehind in
// Go regexp).
type rule struct {
	re    *regexp.Regexp
	apply func(m []string, progress *float64) string
}

const prefix = `(?i)(^|[^:\d])`

var rules = []rule{
	// Combined rep and duration range: "4-6 x 3-8 min".
	{
		re: regexp.MustCompile(prefix + `(\d+)-(\d+)\s*x\s*(\d+)-(\d+)\s*(minutes|minute|min|seconds|second|sec)\b`),
		apply: func(m []string, p *float64) string {
			reps := resolve(m[2], m[3], p)
			dur := resolve(m[4], m[5], p)
			return fmt.Sprintf("%s%d x %d %s", m[1], reps, dur, m[6])
		},
	},
	// Rep count range: "4-6 x".
	{
		re: regexp.MustCompile(prefix + `(\d+)-(\d+)\s*x`),
		apply: func(m []string, p *float64) string {
			return fmt.Sprintf("%s%d x", m[1], resolve(m[2], m[3], p))
		},
	},
	// Recovery window: "1-2 min recovery". Short windows read better in
	// seconds, so a range whose midpoint is two minutes or less is
	// resolved on a seconds scale.
	{
		re: regexp.MustCompile(prefix + `(\d+)-(\d+)\s*(?:minutes|minute|min)\s+(recovery|rest|jog|walk)\b`),
		apply: func(m []string, p *float64) string {
			lo, _ := strconv.Atoi(m[2])
			hi, _ := strconv.Atoi(m[3])
			if float64(lo+hi)/2 <= 2 {
				sec := resolve(strconv.Itoa(lo*60), strconv.Itoa(hi*60), p)
				return fmt.Sprintf("%s%d sec %s", m[1], sec, m[4])
			}
			return fmt.Sprintf("%s%d min %s", m[1], resolve(m[2], m[3], p), m[4])
		},
	},
	// Duration range in hours: "2-3 hours". Resolved on a minutes scale so
	// a plan-progressed value can land between whole hours.
	{
		re: regexp.MustCompile(prefix + `(\d+)-(\d+)\s*(hours|hour|hr)\b`),
		apply: func(m []string, p *float64) string {
			lo, _ := strconv.Atoi(m[2])
			hi, _ := strconv.Atoi(m[3])
			return fmt.Sprintf("%s%d min", m[1], resolve(strconv.Itoa(lo*60), strconv.Itoa(hi*60), p))
		},
	},
	// Duration range in minutes: "15-20 min".
	{
		re: regexp.MustCompile(prefix + `(\d+)-(\d+)\s*(minutes|minute|min)\b`),
		apply: func(m []string, p *float64) string {
			return fmt.Sprintf("%s%d %s", m[1], resolve(m[2], m[3], p), m[4])
		},
	},
	// Duration range in seconds: "30-60 sec".
	{
		re: regexp.MustCompile(prefix + `(\d+)-(\d+)\s*(seconds|second|sec)\b`),
		apply: func(m []string, p *float64) string {
			return fmt.Sprintf("%s%d %s", m[1], resolve(m[2], m[3], p), m[4])
		},
	},
	// Distance range in miles: "5-7 miles".
	{
		re: regexp.MustCompile(prefix + `(\d+)-(\d+)\s*(miles|mile|mi)\b`),
		apply: func(m []string, p *float64) string {
			return fmt.Sprintf("%s%d %s", m[1], resolve(m[2], m[3], p), m[4])
		},
	},
	// Distance range in kilometers: "5-8 km".
	{
		re: regexp.MustCompile(prefix + `(\d+)-(\d+)\s*(km)\b`),
		apply: func(m []string, p *float64) string {
			return fmt.Sprintf("%s%d %s", m[1], resolve(m[2], m[3], p), m[4])
		},
	},
	// Distance range in meters: "400-800m".
	{
		re: regexp.MustCompile(prefix + `(\d+)-(\d+)\s*(m)\b`),
		apply: func(m []string, p *float64) string {
			return fmt.Sprintf("%s%d%s", m[1], resolve(m[2], m[3], p), m[4])
		},
	},
}

// Resolve replaces every numeric range in s with its midpoint.
func Resolve(s string) string {
	return apply(s, nil)
}

// ResolveForWeek replaces every numeric range in s with a value biased by
// plan position: early weeks sit near the lower bound, later weeks approach
// the upper bound, reaching it once 75% of the plan has elapsed.
func ResolveForWeek(s string, week, totalWeeks int) string {
	if week <= 0 || totalWeeks <= 0 {
		return Resolve(s)
	}
	p := math.Min(1, float64(week)/(float64(totalWeeks)*0.75))
	return apply(s, &p)
}

func apply(s string, progress *float64) string {
	for _, r := range rules {
		s = r.re.ReplaceAllStringFunc(s, func(match string) string {
			m := r.re.FindStringSubmatch(match)
			if m == nil {
				return match
			}
			return r.apply(m, progress)
		})
	}
	return s
}

func resolve(loStr, hiStr string, progress *float64) int {
	lo, _ := strconv.Atoi(loStr)
	hi, _ := strconv.Atoi(hiStr)
	if hi < lo {
		lo, hi = hi, lo
	}
	if progress == nil {
		return int(math.Round(float64(lo+hi) / 2))
	}
	return int(math.Round(float64(lo) + *progress*float64(hi-lo)))
}
