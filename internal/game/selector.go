package game

import "life-sim-game/backend/internal/models"

// PickEvent selects at most one life event for a character of the given age.
// Events whose age range excludes the age are filtered out first; the rest
// are drawn by relative weight. With an empty eligible set no event fires.
//
// The walk accumulates weights in catalog order and returns the first event
// whose running sum reaches the draw (r <= sum). With equal weights this
// slightly favors earlier-listed events at the boundary; the tie-break is
// part of the observable contract and exercised by seeded tests.
func PickEvent(rng Rand, events []models.LifeEvent, age int) *models.LifeEvent {
	eligible := make([]models.LifeEvent, 0, len(events))
	for _, ev := range events {
		if ev.AgeRange.Contains(age) {
			eligible = append(eligible, ev)
		}
	}
	if len(eligible) == 0 {
		return nil
	}

	total := 0
	for _, ev := range eligible {
		total += ev.Probability
	}

	r := rng.Float64() * float64(total)

	sum := 0.0
	for i := range eligible {
		sum += float64(eligible[i].Probability)
		if r <= sum {
			return &eligible[i]
		}
	}

	// Rounding should never exhaust the walk, but keep the draw total.
	return &eligible[0]
}
