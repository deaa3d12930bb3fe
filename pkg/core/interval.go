package core

import "math"

// Interval is a closed (for Contains) / open (for Surrounds) range [Min, Max].
type Interval struct {
	Min, Max float64
}

// Empty is the interval that contains nothing.
var Empty = Interval{Min: math.Inf(1), Max: math.Inf(-1)}

// Universe is the interval that contains everything.
var Universe = Interval{Min: math.Inf(-1), Max: math.Inf(1)}

// NewInterval creates an interval [min, max].
func NewInterval(min, max float64) Interval {
	return Interval{Min: min, Max: max}
}

// Size returns Max - Min.
func (iv Interval) Size() float64 {
	return iv.Max - iv.Min
}

// Contains reports whether x lies in the closed interval [Min, Max].
func (iv Interval) Contains(x float64) bool {
	return iv.Min <= x && x <= iv.Max
}

// Surrounds reports whether x lies in the open interval (Min, Max).
func (iv Interval) Surrounds(x float64) bool {
	return iv.Min < x && x < iv.Max
}

// Clamp returns x clamped into [Min, Max].
func (iv Interval) Clamp(x float64) float64 {
	if x < iv.Min {
		return iv.Min
	}
	if x > iv.Max {
		return iv.Max
	}
	return x
}

// Expand returns an interval padded by delta/2 on each side.
func (iv Interval) Expand(delta float64) Interval {
	padding := delta / 2
	return Interval{Min: iv.Min - padding, Max: iv.Max + padding}
}

// UnionInterval returns the smallest interval containing both a and b.
func UnionInterval(a, b Interval) Interval {
	return Interval{Min: math.Min(a.Min, b.Min), Max: math.Max(a.Max, b.Max)}
}

// Translate returns the interval shifted by delta.
func (iv Interval) Translate(delta float64) Interval {
	return Interval{Min: iv.Min + delta, Max: iv.Max + delta}
}
