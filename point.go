package pointscan

import (
	"fmt"
	"math"
	"strings"
)

// Number bounds the component types a Point can carry.
type Number interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

// Point is a fixed-dimension tuple of numeric components. The dimension is
// fixed at construction and never changes afterward; the zero point of a given
// dimension has all components zero.
type Point[T Number] struct {
	comps []T
}

// New returns the zero point of the given dimension. It panics when dim < 1.
func New[T Number](dim int) Point[T] {
	if dim < 1 {
		panic(fmt.Sprintf("pointscan: invalid dimension %d", dim))
	}
	return Point[T]{comps: make([]T, dim)}
}

// Make builds a point from its components. It panics when no components are
// given.
func Make[T Number](comps ...T) Point[T] {
	if len(comps) < 1 {
		panic("pointscan: point needs at least one component")
	}
	p := Point[T]{comps: make([]T, len(comps))}
	copy(p.comps, comps)
	return p
}

// Dim reports the dimension of the point.
func (p Point[T]) Dim() int { return len(p.comps) }

// Components returns a copy of the component slice.
func (p Point[T]) Components() []T {
	out := make([]T, len(p.comps))
	copy(out, p.comps)
	return out
}

// Distance returns the Euclidean distance between p and q. The sum of squares
// accumulates in float64 even for integral T, so large integer components do
// not overflow before the square root. It panics when the dimensions differ.
func (p Point[T]) Distance(q Point[T]) float64 {
	if len(p.comps) != len(q.comps) {
		panic(fmt.Sprintf("pointscan: dimension mismatch (%d vs %d)", len(p.comps), len(q.comps)))
	}
	var sum float64
	for i := range p.comps {
		d := float64(p.comps[i]) - float64(q.comps[i])
		sum += d * d
	}
	return math.Sqrt(sum)
}

// Magnitude returns the distance from the zero point of the same dimension.
func (p Point[T]) Magnitude() float64 {
	var sum float64
	for _, c := range p.comps {
		f := float64(c)
		sum += f * f
	}
	return math.Sqrt(sum)
}

// Greater reports whether p is strictly further from the origin than q.
// Equal-magnitude points are not greater in either direction, so Greater is
// sufficient for maximum tracking only, not for sorting.
func (p Point[T]) Greater(q Point[T]) bool {
	return p.Magnitude() > q.Magnitude()
}

// Equal reports component-wise equality of same-dimension points.
func (p Point[T]) Equal(q Point[T]) bool {
	if len(p.comps) != len(q.comps) {
		return false
	}
	for i := range p.comps {
		if p.comps[i] != q.comps[i] {
			return false
		}
	}
	return true
}

// String renders the canonical text form "( c0 c1 ... cN-1 )". A point
// rendered this way parses back to an equal point.
func (p Point[T]) String() string {
	var b strings.Builder
	b.WriteString("( ")
	for _, c := range p.comps {
		fmt.Fprintf(&b, "%v ", c)
	}
	b.WriteString(")")
	return b.String()
}
