package game

import "life-sim-game/backend/internal/models"

// Employment is a two-state machine: applying (or any other hiring path)
// moves Unemployed -> Employed, quitting moves back. Work, WorkHard and
// AskForPromotion are only legal while Employed; Apply only while
// Unemployed. Illegal actions are rejected uniformly here instead of being
// scattered across per-endpoint checks.

// Work puts in a normal year's shift: a 10% salary bonus lands in the bank,
// experience grows by one and happiness ticks up.
func (e *Engine) Work(c models.Character) (models.Character, error) {
	if !c.Employed() {
		return c, ErrNotEmployed
	}
	c.BankBalance += c.Salary / 10
	c.WorkExperience++
	c.Happiness = ClampPercent(c.Happiness + 5)
	return c, nil
}

// WorkHard grinds for reputation: a random 10-24 gain, capped at 100.
func (e *Engine) WorkHard(c models.Character) (models.Character, error) {
	if !c.Employed() {
		return c, ErrNotEmployed
	}
	gain := e.rng.Intn(15) + 10
	c.JobReputation = ClampPercent(c.JobReputation + gain)
	c.Happiness = ClampPercent(c.Happiness + 5)
	return c, nil
}

// AskForPromotion rolls against a reputation-derived chance, capped at 0.8.
// Success trades 20 reputation for a 20% raise; failure costs 10 reputation
// and some happiness.
func (e *Engine) AskForPromotion(c models.Character) (models.Character, bool, error) {
	if !c.Employed() {
		return c, false, ErrNotEmployed
	}
	chance := float64(c.JobReputation) / 100
	if chance > 0.8 {
		chance = 0.8
	}
	if e.rng.Float64() < chance {
		c.Salary += c.Salary / 5
		c.JobReputation = ClampPercent(c.JobReputation - 20)
		c.Happiness = ClampPercent(c.Happiness + 15)
		return c, true, nil
	}
	c.JobReputation = ClampPercent(c.JobReputation - 10)
	c.Happiness = ClampPercent(c.Happiness - 5)
	return c, false, nil
}

// Quit resigns from the current job. Salary stops and reputation resets,
// but the freedom feels good.
func (e *Engine) Quit(c models.Character) (models.Character, error) {
	if !c.Employed() {
		return c, ErrNotEmployed
	}
	c.CurrentJob = nil
	c.Salary = 0
	c.JobReputation = 0
	c.Happiness = ClampPercent(c.Happiness + 10)
	return c, nil
}

// Apply takes the given career if the character is unemployed, old enough
// and meets every stat requirement. Experience restarts at zero.
func (e *Engine) Apply(c models.Character, career models.Career) (models.Character, error) {
	if c.Employed() {
		return c, ErrAlreadyEmployed
	}
	if c.Age < career.MinAge {
		return c, ErrTooYoung
	}
	for stat, required := range career.Requirements {
		if c.Stat(stat) < required {
			return c, ErrRequirementsNotMet
		}
	}
	name := career.Name
	c.CurrentJob = &name
	c.Salary = career.BaseSalary
	c.WorkExperience = 0
	return c, nil
}
