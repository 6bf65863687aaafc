package game

import (
	"life-sim-game/backend/internal/models"
	"life-sim-game/backend/pkg/errors"
)

// Precondition failures the engine can report. Checks always run before any
// mutation, so a rejected operation leaves the snapshot untouched.
var (
	ErrNotEmployed        = errors.NewPreconditionError("NOT_EMPLOYED", "This action requires a job")
	ErrAlreadyEmployed    = errors.NewPreconditionError("ALREADY_EMPLOYED", "Quit your current job before taking a new one")
	ErrTooYoung           = errors.NewPreconditionError("TOO_YOUNG", "Too young for this career")
	ErrRequirementsNotMet = errors.NewPreconditionError("REQUIREMENTS_NOT_MET", "Stat requirements for this career are not met")
	ErrInsufficientFunds  = errors.NewPreconditionError("INSUFFICIENT_FUNDS", "Not enough money for this activity")
)

// Engine holds the life-progression rules. It is pure over its input
// snapshots; the only state it carries is the randomness source.
type Engine struct {
	rng Rand
}

// New creates an engine around the given randomness source.
func New(rng Rand) *Engine {
	return &Engine{rng: rng}
}

// AgeUp advances the character by one year: at most one random life event
// fires, passive aging drift applies, and an employed character collects a
// year of salary and experience. The input snapshot is not mutated.
func (e *Engine) AgeUp(c models.Character, events []models.LifeEvent) (models.Character, *models.LifeEvent) {
	newAge := c.Age + 1
	fired := PickEvent(e.rng, events, newAge)
	return e.resolveAgeUp(c, newAge, fired), fired
}

// AgeUpWithEvent is AgeUp with a forced event (or none when nil), bypassing
// the random draw. Scenario tests rely on it.
func (e *Engine) AgeUpWithEvent(c models.Character, fired *models.LifeEvent) (models.Character, *models.LifeEvent) {
	return e.resolveAgeUp(c, c.Age+1, fired), fired
}

func (e *Engine) resolveAgeUp(c models.Character, newAge int, fired *models.LifeEvent) models.Character {
	delta := map[string]float64{}
	if fired != nil {
		for stat, d := range fired.StatEffects {
			delta[stat] += float64(d)
		}
		c.LifeEvents = append(c.LifeEvents, fired.Description)
	}
	for stat, d := range agingDrift(newAge) {
		delta[stat] += d
	}

	c.Age = newAge
	c.Happiness = ClampPercent(c.Happiness + truncateDelta(delta["happiness"]))
	c.Health = ClampPercent(c.Health + truncateDelta(delta["health"]))
	c.Smarts = ClampPercent(c.Smarts + truncateDelta(delta["smarts"]))
	c.Looks = ClampPercent(c.Looks + truncateDelta(delta["looks"]))
	c.Fame = ClampPercent(c.Fame + truncateDelta(delta["fame"]))

	// Salary pays out yearly; the balance is never clamped here since
	// age-up can only add to it.
	if c.Employed() && c.Salary > 0 {
		c.BankBalance += c.Salary
	}
	if c.Employed() {
		c.WorkExperience++
	}

	return c
}

// DoActivity spends money and applies the activity's stat deltas. The funds
// check runs before any mutation; no partial debit ever occurs.
func (e *Engine) DoActivity(c models.Character, cost int, effects models.StatMap) (models.Character, error) {
	if c.BankBalance < cost {
		return c, ErrInsufficientFunds
	}
	c.BankBalance -= cost
	c.Happiness = ClampPercent(c.Happiness + effects["happiness"])
	c.Health = ClampPercent(c.Health + effects["health"])
	c.Smarts = ClampPercent(c.Smarts + effects["smarts"])
	c.Looks = ClampPercent(c.Looks + effects["looks"])
	c.Fame = ClampPercent(c.Fame + effects["fame"])
	return c, nil
}

// RollStartingStats produces randomized creation stats in the original
// ranges: happiness/health 50-89, smarts/looks 40-79.
func (e *Engine) RollStartingStats() (happiness, health, smarts, looks int) {
	return e.rng.Intn(40) + 50, e.rng.Intn(40) + 50, e.rng.Intn(40) + 40, e.rng.Intn(40) + 40
}

// RollStartingBalance produces a random starting bank balance of 1000-5999.
func (e *Engine) RollStartingBalance() int {
	return e.rng.Intn(5000) + 1000
}
