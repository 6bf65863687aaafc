package game

// ClampPercent bounds a percentile stat to [0,100]. Every stat mutation in
// the engine routes through this before the value is considered final.
func ClampPercent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// ClampMoney bounds currency and follower counts to [0,∞).
func ClampMoney(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

// truncateDelta converts an accumulated fractional stat delta to the integer
// actually applied. Truncation is toward zero, per call: a lone -0.5 looks
// drift applies as 0, while an event delta of -10 passes through unchanged.
func truncateDelta(f float64) int {
	return int(f)
}
