package coords

import "math"

// epsilon is the gap between 1 and the next float64. It is added before
// rounding so values like 1.005, stored as 1.00499999..., round up.
const epsilon = 2.220446049250313e-16

// RoundFloat rounds v to precision decimals, half away from zero, after
// nudging v by epsilon away from zero.
func RoundFloat(v float64, precision int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	p := math.Pow(10, float64(precision))
	return unsignedZero(math.Round((v+math.Copysign(epsilon, v))*p) / p)
}

// unsignedZero maps -0 to 0 so it never prints as "-0".
func unsignedZero(v float64) float64 {
	if v == 0 {
		return 0
	}
	return v
}

// Round applies RoundFloat to both components.
func Round(w WorldCoordinate, precision int) WorldCoordinate {
	return WorldCoordinate{
		X: RoundFloat(w.X, precision),
		Y: RoundFloat(w.Y, precision),
	}
}
