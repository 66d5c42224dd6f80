package schedule

// Intervals is the fixed repetition-interval vocabulary, in slots.
// An entry's interval advances one step per perfect completion and
// holds at the last value (ceiling, not wraparound).
var Intervals = []int{1, 3, 5, 10, 25, 100}

// MaxInterval is the ceiling of the interval vocabulary.
const MaxInterval = 100

// NextInterval returns the interval one step after k in the fixed
// vocabulary. At or above the ceiling it returns MaxInterval.
func NextInterval(k int) int {
	for i, v := range Intervals {
		if v == k {
			if i == len(Intervals)-1 {
				return MaxInterval
			}
			return Intervals[i+1]
		}
	}
	// k is not a member; callers normalize before advancing, but be
	// safe and advance from the nearest lower member.
	n, _ := NormalizeInterval(k)
	return NextInterval(n)
}

// NormalizeInterval clamps k to the nearest lower member of the
// vocabulary. Values below the first member map to it. The second
// return reports whether k had to be changed, which callers surface
// as a corrupt-interval warning.
func NormalizeInterval(k int) (int, bool) {
	normalized := Intervals[0]
	for _, v := range Intervals {
		if v == k {
			return k, false
		}
		if v < k {
			normalized = v
		}
	}
	return normalized, true
}
