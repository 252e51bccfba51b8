// Package obstacle models a single workspace obstacle: a geometric
// footprint, a safety radius, and an optional periodic active interval.
package obstacle

import (
	"errors"
	"math"

	"github.com/timeaware/taprm/geometry"
	"github.com/timeaware/taprm/interval"
)

// Sentinel errors for obstacle construction.
var (
	// ErrNegativeRadius indicates a negative safety radius was supplied.
	ErrNegativeRadius = errors.New("obstacle: radius must be non-negative")
	// ErrOccurrenceExceedsPeriod indicates the active interval's length
	// exceeds its own recurrence period.
	ErrOccurrenceExceedsPeriod = errors.New("obstacle: occurrence length exceeds recurrence period")
)

// Obstacle pairs a geometric Shape with a safety radius and an optional
// periodic active window. A nil Interval means permanently active.
type Obstacle struct {
	ID         int
	Shape      geometry.Shape
	Radius     float64
	Interval   *interval.Interval
	Recurrence interval.Recurrence
}

// New builds an Obstacle, validating the radius and, when both an interval
// and a recurring period are given, that one occurrence fits inside its
// period.
func New(id int, shape geometry.Shape, radius float64, iv *interval.Interval, rec interval.Recurrence) (Obstacle, error) {
	if radius < 0 {
		return Obstacle{}, ErrNegativeRadius
	}
	if iv != nil && rec != interval.None && iv.Length() > rec.Seconds() {
		return Obstacle{}, ErrOccurrenceExceedsPeriod
	}

	return Obstacle{ID: id, Shape: shape, Radius: radius, Interval: iv, Recurrence: rec}, nil
}

// IsActiveAt reports whether the obstacle is active at time t. An obstacle
// with no Interval is always active; otherwise activity follows
// interval.ActiveAt over the obstacle's base interval and recurrence. A
// query that precedes every occurrence reports inactive rather than
// failing.
func (o Obstacle) IsActiveAt(t float64) bool {
	if o.Interval == nil {
		return true
	}

	return interval.ActiveAt(*o.Interval, o.Recurrence, t)
}

// IsActiveDuring reports whether any occurrence of the obstacle overlaps q.
func (o Obstacle) IsActiveDuring(q interval.Interval) bool {
	if o.Interval == nil {
		return true
	}

	return interval.ActiveDuring(*o.Interval, o.Recurrence, q)
}

// Occurrences returns every occurrence interval of the obstacle that
// overlaps q. A permanently-active obstacle (nil Interval) returns q
// itself, since it is active for the whole query window.
func (o Obstacle) Occurrences(q interval.Interval) []interval.Interval {
	if o.Interval == nil {
		return []interval.Interval{q}
	}

	return interval.Occurrences(*o.Interval, o.Recurrence, q)
}

// ActiveOccurrence returns the occurrence of the obstacle's active interval
// that contains q.L, or, failing that, the earliest occurrence overlapping
// q. Used by environment classification to decide whether a single
// occurrence already covers the whole query window. The second return
// value is false if no occurrence overlaps q at all.
func (o Obstacle) ActiveOccurrence(q interval.Interval) (interval.Interval, bool) {
	if o.Interval == nil {
		return q, true
	}

	base := *o.Interval
	p := o.Recurrence.Seconds()
	if p == 0 {
		return base, base.Overlaps(q)
	}

	k := math.Floor((q.L - base.L) / p)
	if k < 0 {
		k = 0
	}
	if occ := base.Shift(k * p); occ.Overlaps(q) {
		return occ, true
	}

	occs := interval.Occurrences(base, o.Recurrence, q)
	if len(occs) == 0 {
		return interval.Interval{}, false
	}

	return occs[0], true
}

// Static returns a copy of the obstacle with its interval and recurrence
// stripped, used when environment classification determines the obstacle
// is effectively static over the query window.
func (o Obstacle) Static() Obstacle {
	return Obstacle{ID: o.ID, Shape: o.Shape, Radius: o.Radius, Interval: nil, Recurrence: interval.None}
}
