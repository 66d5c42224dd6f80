package schedule

import "testing"

func TestNextInterval_AdvancesOneStep(t *testing.T) {
	cases := []struct {
		in   int
		want int
	}{
		{1, 3},
		{3, 5},
		{5, 10},
		{10, 25},
		{25, 100},
		{100, 100}, // ceiling, not wraparound
	}
	for _, c := range cases {
		if got := NextInterval(c.in); got != c.want {
			t.Errorf("NextInterval(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestNormalizeInterval_MembersPassThrough(t *testing.T) {
	for _, v := range Intervals {
		got, changed := NormalizeInterval(v)
		if got != v || changed {
			t.Errorf("NormalizeInterval(%d) = (%d, %v), want (%d, false)", v, got, changed, v)
		}
	}
}

func TestNormalizeInterval_ClampsToNearestLower(t *testing.T) {
	cases := []struct {
		in   int
		want int
	}{
		{0, 1},
		{-7, 1},
		{2, 1},
		{4, 3},
		{7, 5},
		{11, 10},
		{99, 25},
		{101, 100},
		{5000, 100},
	}
	for _, c := range cases {
		got, changed := NormalizeInterval(c.in)
		if got != c.want {
			t.Errorf("NormalizeInterval(%d) = %d, want %d", c.in, got, c.want)
		}
		if !changed {
			t.Errorf("NormalizeInterval(%d) reported no change", c.in)
		}
	}
}

func TestNextInterval_NonMemberAdvancesFromNormalized(t *testing.T) {
	// 7 normalizes to 5; the step after 5 is 10.
	if got := NextInterval(7); got != 10 {
		t.Errorf("NextInterval(7) = %d, want 10", got)
	}
}
