// Package library holds the static workout catalogs, one per training
// modality. Catalog data lives in embedded YAML documents, parsed once at
// startup into immutable in-memory tables; every accessor reads shared data
// and allocates its own result, so concurrent callers need no locking.
package library

import (
	"embed"
	"fmt"
	"math/rand"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed catalogs/*.yaml
var catalogFS embed.FS

// Modality identifies one workout catalog.
type Modality string

const (
	Tempo          Modality = "tempo"
	Intervals      Modality = "intervals"
	Hills          Modality = "hills"
	LongRun        Modality = "longrun"
	StandUpBike    Modality = "standupbike"
	Pool           Modality = "pool"
	Elliptical     Modality = "elliptical"
	Rowing         Modality = "rowing"
	Swim           Modality = "swim"
	StationaryBike Modality = "stationarybike"
)

// Running lists the run-based modalities in rotation order.
var Running = []Modality{Tempo, Intervals, Hills, LongRun}

// CrossTraining lists the non-running modalities.
var CrossTraining = []Modality{StandUpBike, Pool, Elliptical, Rowing, Swim, StationaryBike}

// Template is one immutable catalog entry. Structure and duration strings
// may contain numeric ranges ("4-6 x 3-8 min") that the structure package
// resolves at prescription time.
type Template struct {
	Name      string `yaml:"name" json:"name"`
	Category  string `yaml:"-" json:"category"`
	Intensity string `yaml:"intensity" json:"intensity"`
	Duration  string `yaml:"duration" json:"duration"`
	Structure string `yaml:"structure" json:"structure"`
	Benefits  string `yaml:"benefits" json:"benefits"`
	Source    string `yaml:"source" json:"source"`
	Equipment string `yaml:"equipment,omitempty" json:"equipment,omitempty"`
}

// NotFoundError reports a template name with no catalog match.
type NotFoundError struct {
	Modality Modality
	Name     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no workout named %q in the %s catalog", e.Name, e.Modality)
}

// Catalog is the read surface over one modality's templates.
type Catalog struct {
	modality   Modality
	order      []string
	byCategory map[string][]Template
}

type catalogDoc struct {
	Modality   string `yaml:"modality"`
	Categories []struct {
		Code     string     `yaml:"code"`
		Workouts []Template `yaml:"workouts"`
	} `yaml:"categories"`
}

var catalogs = map[Modality]*Catalog{}

func init() {
	entries, err := catalogFS.ReadDir("catalogs")
	if err != nil {
		panic(fmt.Sprintf("library: reading embedded catalogs: %v", err))
	}
	for _, e := range entries {
		raw, err := catalogFS.ReadFile("catalogs/" + e.Name())
		if err != nil {
			panic(fmt.Sprintf("library: reading %s: %v", e.Name(), err))
		}
		var doc catalogDoc
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			panic(fmt.Sprintf("library: parsing %s: %v", e.Name(), err))
		}
		c := &Catalog{
			modality:   Modality(doc.Modality),
			byCategory: make(map[string][]Template),
		}
		for _, cat := range doc.Categories {
			ws := make([]Template, len(cat.Workouts))
			for i, w := range cat.Workouts {
				w.Category = cat.Code
				ws[i] = w
			}
			c.order = append(c.order, cat.Code)
			c.byCategory[cat.Code] = ws
		}
		catalogs[c.modality] = c
	}
}

// Get returns the catalog for a modality.
func Get(m Modality) (*Catalog, error) {
	c, ok := catalogs[m]
	if !ok {
		return nil, fmt.Errorf("no catalog for modality %q", m)
	}
	return c, nil
}

// MustGet is Get for modalities known at compile time.
func MustGet(m Modality) *Catalog {
	c, err := Get(m)
	if err != nil {
		panic(err)
	}
	return c
}

// Modality returns the catalog's modality.
func (c *Catalog) Modality() Modality { return c.modality }

// Categories returns the category codes in catalog order.
func (c *Catalog) Categories() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// ByCategory returns a copy of the templates in a category, in catalog
// order. Unknown categories yield an empty slice.
func (c *Catalog) ByCategory(category string) []Template {
	src := c.byCategory[category]
	out := make([]Template, len(src))
	copy(out, src)
	return out
}

// All returns every template in the catalog, category by category.
func (c *Catalog) All() []Template {
	var out []Template
	for _, cat := range c.order {
		out = append(out, c.byCategory[cat]...)
	}
	return out
}

// Random returns a uniformly chosen template from a category.
func (c *Catalog) Random(category string) (Template, error) {
	ws := c.byCategory[category]
	if len(ws) == 0 {
		return Template{}, fmt.Errorf("category %q of the %s catalog is empty", category, c.modality)
	}
	return ws[rand.Intn(len(ws))], nil
}

// Search returns templates whose name, structure, benefits, or source
// contains the query, case-insensitively, in catalog order.
func (c *Catalog) Search(query string) []Template {
	q := strings.ToLower(query)
	var out []Template
	for _, w := range c.All() {
		if strings.Contains(strings.ToLower(w.Name), q) ||
			strings.Contains(strings.ToLower(w.Structure), q) ||
			strings.Contains(strings.ToLower(w.Benefits), q) ||
			strings.Contains(strings.ToLower(w.Source), q) {
			out = append(out, w)
		}
	}
	return out
}

// ByDuration returns the template in a category whose duration midpoint is
// closest to targetMinutes. Ties go to the earlier catalog entry.
func (c *Catalog) ByDuration(category string, targetMinutes int) (Template, error) {
	ws := c.byCategory[category]
	if len(ws) == 0 {
		return Template{}, fmt.Errorf("category %q of the %s catalog is empty", category, c.modality)
	}
	best := -1
	bestDiff := 0.0
	for i, w := range ws {
		mins, ok := DurationMinutes(w.Duration)
		if !ok {
			continue
		}
		diff := mins - float64(targetMinutes)
		if diff < 0 {
			diff = -diff
		}
		if best == -1 || diff < bestDiff {
			best, bestDiff = i, diff
		}
	}
	if best == -1 {
		return Template{}, fmt.Errorf("category %q of the %s catalog has no parseable durations", category, c.modality)
	}
	return ws[best], nil
}

// Find resolves a workout name to its template: exact match first, then
// case-insensitive substring, first hit in catalog order winning.
func (c *Catalog) Find(name string) (Template, error) {
	for _, w := range c.All() {
		if w.Name == name {
			return w, nil
		}
	}
	q := strings.ToLower(name)
	for _, w := range c.All() {
		if strings.Contains(strings.ToLower(w.Name), q) {
			return w, nil
		}
	}
	return Template{}, &NotFoundError{Modality: c.modality, Name: name}
}

var durationRe = regexp.MustCompile(`(\d+)(?:\s*-\s*(\d+))?\s*(min|minutes|hr|hour|hours)`)

// DurationMinutes parses a duration range string ("40-50 min", "1 hour")
// into its midpoint in minutes.
func DurationMinutes(s string) (float64, bool) {
	m := durationRe.FindStringSubmatch(strings.ToLower(s))
	if m == nil {
		return 0, false
	}
	lo, _ := strconv.ParseFloat(m[1], 64)
	hi := lo
	if m[2] != "" {
		hi, _ = strconv.ParseFloat(m[2], 64)
	}
	mid := (lo + hi) / 2
	if strings.HasPrefix(m[3], "h") {
		mid *= 60
	}
	return mid, true
}

// Modalities returns every loaded modality, sorted for stable iteration.
func Modalities() []Modality {
	out := make([]Modality, 0, len(catalogs))
	for m := range catalogs {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
