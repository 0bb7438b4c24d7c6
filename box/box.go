// Package box provides the two-dimensional bounding box used in stream
// headers.
//
// A Box is either valid, in which case it has a minimum and maximum
// corner, or invalid, meaning it has no extent at all. The zero value is
// an invalid box. Invalid boxes behave as the identity element under
// Extend, which makes it safe to fold any number of boxes, valid or not,
// into an accumulator that starts out as the zero value.
package box

import (
	"math"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
)

// Box is a bounding box in longitude/latitude (x/y) order.
//
// Box is a plain value. Copying it copies the extent.
type Box struct {
	bound orb.Bound
	valid bool
}

// New returns the box with the given corners. The corners are normalised
// so that min is below and to the left of max. If any coordinate is NaN
// the result is invalid.
func New(min, max orb.Point) Box {
	if hasNaN(min) || hasNaN(max) {
		return Box{}
	}
	return Box{
		bound: orb.Bound{
			Min: orb.Point{math.Min(min[0], max[0]), math.Min(min[1], max[1])},
			Max: orb.Point{math.Max(min[0], max[0]), math.Max(min[1], max[1])},
		},
		valid: true,
	}
}

// FromBound converts an orb bound. Empty orb bounds (min greater than
// max on either axis) become invalid boxes.
func FromBound(b orb.Bound) Box {
	if b.IsEmpty() {
		return Box{}
	}
	return New(b.Min, b.Max)
}

// Of returns the bounding box of g. A nil or empty geometry has an
// invalid bounding box.
func Of(g orb.Geometry) Box {
	if g == nil {
		return Box{}
	}
	return FromBound(g.Bound())
}

func (b Box) Valid() bool {
	return b.valid
}

// Min returns the bottom-left corner, or the zero point if b is invalid.
func (b Box) Min() orb.Point {
	if !b.valid {
		return orb.Point{}
	}
	return b.bound.Min
}

// Max returns the top-right corner, or the zero point if b is invalid.
func (b Box) Max() orb.Point {
	if !b.valid {
		return orb.Point{}
	}
	return b.bound.Max
}

// Bound returns b as an orb bound. An invalid box maps to the zero bound,
// so check Valid first.
func (b Box) Bound() orb.Bound {
	if !b.valid {
		return orb.Bound{}
	}
	return b.bound
}

// Extend grows b in place to also cover other and returns b.
//
// Extending by an invalid box leaves b unchanged. Extending an invalid
// box by a valid one makes b exactly equal to other.
func (b *Box) Extend(other Box) *Box {
	switch {
	case !other.valid:
	case !b.valid:
		*b = other
	default:
		b.bound = b.bound.Union(other.bound)
	}
	return b
}

// ExtendPoint grows b in place to also cover p and returns b. Points with
// a NaN coordinate are ignored.
func (b *Box) ExtendPoint(p orb.Point) *Box {
	switch {
	case hasNaN(p):
	case !b.valid:
		*b = Box{bound: orb.Bound{Min: p, Max: p}, valid: true}
	default:
		b.bound = b.bound.Extend(p)
	}
	return b
}

// Contains reports whether p lies inside b or on its edge. An invalid box
// contains nothing.
func (b Box) Contains(p orb.Point) bool {
	return b.valid && b.bound.Contains(p)
}

// Size returns the area of b in square degrees.
func (b Box) Size() float64 {
	if !b.valid {
		return 0
	}
	return (b.bound.Max[0] - b.bound.Min[0]) * (b.bound.Max[1] - b.bound.Min[1])
}

// Equal reports whether b and other have the same extent. All invalid
// boxes are equal to each other.
func (b Box) Equal(other Box) bool {
	if !b.valid || !other.valid {
		return b.valid == other.valid
	}
	return b.bound == other.bound
}

func (b Box) String() string {
	if !b.valid {
		return "(undefined)"
	}
	var sb strings.Builder
	sb.WriteByte('(')
	for i, v := range [4]float64{b.bound.Min[0], b.bound.Min[1], b.bound.Max[0], b.bound.Max[1]} {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
	}
	sb.WriteByte(')')
	return sb.String()
}

func hasNaN(p orb.Point) bool {
	return math.IsNaN(p[0]) || math.IsNaN(p[1])
}
