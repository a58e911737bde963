package lesson

import "math"

// RotationPeriod is the number of milliseconds in one full turn of the
// triangle.
const RotationPeriod = 10000

// Angle returns the rotation in degrees after elapsedMillis milliseconds
// for a turn lasting periodMillis. Whole milliseconds are reduced modulo the
// period before scaling, so the result lies in [0, 360). A zero period
// yields zero.
func Angle(elapsedMillis, periodMillis uint64) float32 {
	if periodMillis == 0 {
		return 0
	}
	step := float32(360) / float32(periodMillis)
	a := step * float32(elapsedMillis%periodMillis)
	if a >= 360 {
		// float32 rounding near the end of very long periods
		return math.Nextafter32(360, 0)
	}
	return a
}
