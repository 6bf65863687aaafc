package game

// agingDrift returns the passive stat drift for a character who has just
// turned newAge. Deltas are fractional; they are summed with any event
// effects and truncated once per age-up.
func agingDrift(newAge int) map[string]float64 {
	drift := map[string]float64{}
	if newAge > 50 {
		drift["health"] = -1
	}
	if newAge > 40 {
		drift["looks"] = -0.5
	}
	if newAge > 25 {
		drift["smarts"] = 0.2
	}
	return drift
}
