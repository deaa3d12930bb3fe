package core

import "math"

// Angle carries a value in radians so that APIs taking angular parameters
// (vfov, defocus_angle, rotation) never mix degrees and radians by accident.
type Angle struct {
	radians float64
}

// Radians wraps a value already expressed in radians.
func Radians(r float64) Angle {
	return Angle{radians: r}
}

// Degrees wraps a value expressed in degrees, converting to radians.
func Degrees(d float64) Angle {
	return Angle{radians: d * math.Pi / 180.0}
}

// Radians returns the angle's value in radians.
func (a Angle) Radians() float64 {
	return a.radians
}

// Degrees returns the angle's value in degrees.
func (a Angle) Degrees() float64 {
	return a.radians * 180.0 / math.Pi
}
