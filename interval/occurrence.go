package interval

import "math"

// ActiveAt reports whether an obstacle whose first occurrence is the closed
// interval base=[s,e] and whose repeat period is rec.Seconds() is active at
// time t. P=0 (rec==None) degenerates to a single, non-repeating
// occurrence. For P>0, k = floor((t-s)/P) selects the candidate
// occurrence; k<0 means t precedes every occurrence and the obstacle is
// simply inactive, never an error.
func ActiveAt(base Interval, rec Recurrence, t float64) bool {
	p := rec.Seconds()
	if p == 0 {
		return base.Contains(t)
	}

	k := math.Floor((t - base.L) / p)
	if k < 0 {
		return false
	}

	occ := base.Shift(k * p)

	return occ.Contains(t)
}

// ActiveDuring reports whether the occurrence family of base/rec overlaps
// the query interval q. For P>0, a q lying wholly before the first
// occurrence (k_lo and k_hi both negative) is inactive. Otherwise, when a
// repetition boundary falls inside q (k_hi > k_lo), occurrence k_hi starts
// inside q and the result is true; else only occurrence k_lo is tested.
func ActiveDuring(base Interval, rec Recurrence, q Interval) bool {
	p := rec.Seconds()
	if p == 0 {
		return base.Overlaps(q)
	}

	kLo := math.Floor((q.L - base.L) / p)
	kHi := math.Floor((q.R - base.L) / p)

	if kLo < 0 && kHi < 0 {
		return false
	}
	if kHi > kLo {
		return true
	}

	k := kLo
	if k < 0 {
		k = kHi
	}

	return base.Shift(k * p).Overlaps(q)
}

// Occurrences returns every shifted occurrence of base/rec whose interval
// overlaps q, in ascending order of k. Used by the environment package's
// free-interval sweep to enumerate start/end events for a dynamic obstacle
// over the planning horizon.
func Occurrences(base Interval, rec Recurrence, q Interval) []Interval {
	p := rec.Seconds()
	if p == 0 {
		if base.Overlaps(q) {
			return []Interval{base}
		}

		return nil
	}

	kLo := math.Floor((q.L - base.L) / p)
	kHi := math.Floor((q.R - base.L) / p)
	if kLo < 0 {
		kLo = 0
	}
	if kHi < kLo {
		return nil
	}

	var out []Interval
	for k := kLo; k <= kHi; k++ {
		occ := base.Shift(k * p)
		if occ.Overlaps(q) {
			out = append(out, occ)
		}
	}

	return out
}
