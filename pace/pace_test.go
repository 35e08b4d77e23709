package pace

import (
	"errors"
	"testing"
)

func TestFromGoalExactRow(t *testing.T) {
	p, err := FromGoal(Marathon, "4:00:00")
	if err != nil {
		t.Fatalf("FromGoal returned error: %v", err)
	}
	if p.Interpolated {
		t.Error("exact table row should not be interpolated")
	}
	if p.MarathonPace.SecondsPerMile != 549 {
		t.Errorf("marathon pace = %.0f, want 549", p.MarathonPace.SecondsPerMile)
	}
	if p.MarathonPace.Pace != "9:09/mi" {
		t.Errorf("marathon pace display = %s, want 9:09/mi", p.MarathonPace.Pace)
	}
	if p.Easy.MinSeconds != 594 || p.Easy.MaxSeconds != 654 {
		t.Errorf("easy range = %.0f-%.0f, want 594-654", p.Easy.MinSeconds, p.Easy.MaxSeconds)
	}
	if p.TrackSplits.M400.Seconds != 117 {
		t.Errorf("400m split = %.0f, want 117", p.TrackSplits.M400.Seconds)
	}
	if p.LowerGoal != "" || p.UpperGoal != "" {
		t.Errorf("exact match should not carry bounding goals, got %q/%q", p.LowerGoal, p.UpperGoal)
	}
}

func TestFromGoalInterpolation(t *testing.T) {
	lo, err := FromGoal(Marathon, "3:30:00")
	if err != nil {
		t.Fatal(err)
	}
	hi, err := FromGoal(Marathon, "4:00:00")
	if err != nil {
		t.Fatal(err)
	}
	mid, err := FromGoal(Marathon, "3:45:00")
	if err != nil {
		t.Fatal(err)
	}
	if !mid.Interpolated {
		t.Error("3:45:00 should be interpolated")
	}
	if mid.LowerGoal != "3:30:00" || mid.UpperGoal != "4:00:00" {
		t.Errorf("bounding goals = %s/%s, want 3:30:00/4:00:00", mid.LowerGoal, mid.UpperGoal)
	}

	between := func(name string, l, m, h float64) {
		if !(l < m && m < h) {
			t.Errorf("%s = %.1f not strictly between %.1f and %.1f", name, m, l, h)
		}
	}
	between("marathon", lo.MarathonPace.SecondsPerMile, mid.MarathonPace.SecondsPerMile, hi.MarathonPace.SecondsPerMile)
	between("threshold", lo.Threshold.SecondsPerMile, mid.Threshold.SecondsPerMile, hi.Threshold.SecondsPerMile)
	between("interval", lo.Interval.SecondsPerMile, mid.Interval.SecondsPerMile, hi.Interval.SecondsPerMile)
	between("race", lo.Race.SecondsPerMile, mid.Race.SecondsPerMile, hi.Race.SecondsPerMile)
	between("easy min", lo.Easy.MinSeconds, mid.Easy.MinSeconds, hi.Easy.MinSeconds)
	between("easy max", lo.Easy.MaxSeconds, mid.Easy.MaxSeconds, hi.Easy.MaxSeconds)
	between("400m", lo.TrackSplits.M400.Seconds, mid.TrackSplits.M400.Seconds, hi.TrackSplits.M400.Seconds)
	between("1600m", lo.TrackSplits.M1600.Seconds, mid.TrackSplits.M1600.Seconds, hi.TrackSplits.M1600.Seconds)
}

func TestFromGoalDeterministic(t *testing.T) {
	a, err := FromGoal(Half, "1:52:30")
	if err != nil {
		t.Fatal(err)
	}
	b, err := FromGoal(Half, "1:52:30")
	if err != nil {
		t.Fatal(err)
	}
	if *a != *b {
		t.Error("identical inputs produced different profiles")
	}
}

func TestFromGoalOutOfRange(t *testing.T) {
	tests := []struct {
		distance Distance
		goal     string
	}{
		{Marathon, "2:30:00"}, // faster than table
		{Marathon, "6:00:00"}, // slower than table
		{FiveK, "14:00"},
		{FiveK, "45:00"},
		{TenK, "30:00"},
		{Half, "3:30:00"},
	}
	for _, tt := range tests {
		_, err := FromGoal(tt.distance, tt.goal)
		var oor *OutOfRangeError
		if !errors.As(err, &oor) {
			t.Errorf("FromGoal(%s, %s) error = %v, want OutOfRangeError", tt.distance, tt.goal, err)
			continue
		}
		if oor.Fastest == "" || oor.Slowest == "" {
			t.Errorf("OutOfRangeError for %s %s missing range bounds: %v", tt.distance, tt.goal, oor)
		}
	}
}

func TestTableMonotonic(t *testing.T) {
	for dist, rows := range tables {
		for i := 1; i < len(rows); i++ {
			prev, cur := rows[i-1], rows[i]
			if cur.goalSec <= prev.goalSec {
				t.Errorf("%s row %d: goal times not increasing", dist, i)
			}
			if cur.marathon <= prev.marathon || cur.threshold <= prev.threshold ||
				cur.interval <= prev.interval || cur.race <= prev.race ||
				cur.easyMin <= prev.easyMin || cur.easyMax <= prev.easyMax {
				t.Errorf("%s row %d: paces not increasing with goal time", dist, i)
			}
		}
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"4:00:00", 14400, false},
		{"45:30", 2730, false},
		{"1:52:30", 6750, false},
		{" 20:00 ", 1200, false},
		{"4", 0, true},
		{"1:2:3:4", 0, true},
		{"ab:cd", 0, true},
		{"00:00", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseClock(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseClock(%q) expected error, got %d", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseClock(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseClock(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestFormatPace(t *testing.T) {
	tests := []struct {
		sec      float64
		expected string
	}{
		{549, "9:09/mi"},
		{600, "10:00/mi"},
		{359.6, "6:00/mi"},
		{65, "1:05/mi"},
	}
	for _, tt := range tests {
		if got := FormatPace(tt.sec); got != tt.expected {
			t.Errorf("FormatPace(%.1f) = %s, want %s", tt.sec, got, tt.expected)
		}
	}
}

func TestParseDistance(t *testing.T) {
	tests := []struct {
		in   string
		want Distance
	}{
		{"5k", FiveK},
		{"10K", TenK},
		{"half marathon", Half},
		{"Marathon", Marathon},
		{"26.2", Marathon},
	}
	for _, tt := range tests {
		got, err := ParseDistance(tt.in)
		if err != nil {
			t.Errorf("ParseDistance(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDistance(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
	if _, err := ParseDistance("50 miles"); err == nil {
		t.Error("ParseDistance should reject unsupported distances")
	}
}
