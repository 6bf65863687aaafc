package game

import (
	"testing"

	"life-sim-game/backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRand replays scripted values so branch outcomes can be forced.
type fakeRand struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (f *fakeRand) Float64() float64 {
	v := f.floats[f.fi]
	f.fi++
	return v
}

func (f *fakeRand) Intn(n int) int {
	v := f.ints[f.ii]
	f.ii++
	return v % n
}

func strPtr(s string) *string { return &s }

func baseCharacter() models.Character {
	return models.Character{
		Name:        "Alex",
		Age:         24,
		Gender:      "female",
		Country:     "USA",
		Talent:      models.TalentNormal,
		BankBalance: 1000,
		Happiness:   70,
		Health:      60,
		Smarts:      50,
		Looks:       55,
		Fame:        0,
		IsAlive:     true,
	}
}

func TestClampPercent(t *testing.T) {
	assert.Equal(t, 0, ClampPercent(-5))
	assert.Equal(t, 0, ClampPercent(0))
	assert.Equal(t, 42, ClampPercent(42))
	assert.Equal(t, 100, ClampPercent(100))
	assert.Equal(t, 100, ClampPercent(250))
}

func TestClampMoney(t *testing.T) {
	assert.Equal(t, 0, ClampMoney(-1))
	assert.Equal(t, 1000, ClampMoney(1000))
}

func TestPickEventAgeFiltering(t *testing.T) {
	events := []models.LifeEvent{
		{Title: "Adult Event", AgeRange: &models.AgeRange{Min: 16, Max: 80}, Probability: 50},
	}

	rng := NewRand(1)
	assert.Nil(t, PickEvent(rng, events, 15), "below the range nothing may fire")
	assert.Nil(t, PickEvent(rng, events, 81), "above the range nothing may fire")

	require.NotNil(t, PickEvent(rng, events, 16))
	require.NotNil(t, PickEvent(rng, events, 80))
}

func TestPickEventNilRangeAlwaysEligible(t *testing.T) {
	events := []models.LifeEvent{{Title: "Any Age", Probability: 10}}
	got := PickEvent(NewRand(7), events, 3)
	require.NotNil(t, got)
	assert.Equal(t, "Any Age", got.Title)
}

func TestPickEventEmptyCatalog(t *testing.T) {
	assert.Nil(t, PickEvent(NewRand(1), nil, 30))
}

func TestPickEventTieBreakBoundary(t *testing.T) {
	events := []models.LifeEvent{
		{Title: "first", Probability: 25},
		{Title: "second", Probability: 50},
		{Title: "third", Probability: 25},
	}

	// r lands exactly on the first running sum: r <= sum keeps the
	// earlier-listed event.
	rng := &fakeRand{floats: []float64{0.25}}
	got := PickEvent(rng, events, 30)
	require.NotNil(t, got)
	assert.Equal(t, "first", got.Title)

	// Just past the boundary the walk moves on.
	rng = &fakeRand{floats: []float64{0.250001}}
	got = PickEvent(rng, events, 30)
	require.NotNil(t, got)
	assert.Equal(t, "second", got.Title)

	// A draw of zero also resolves to the first event.
	rng = &fakeRand{floats: []float64{0}}
	got = PickEvent(rng, events, 30)
	require.NotNil(t, got)
	assert.Equal(t, "first", got.Title)
}

func TestPickEventWeightDistribution(t *testing.T) {
	events := []models.LifeEvent{
		{Title: "a", Probability: 30},
		{Title: "b", Probability: 40},
		{Title: "c", Probability: 20},
	}

	const trials = 100000
	counts := map[string]int{}
	rng := NewRand(42)
	for i := 0; i < trials; i++ {
		ev := PickEvent(rng, events, 30)
		require.NotNil(t, ev)
		counts[ev.Title]++
	}

	assert.InDelta(t, 30.0/90, float64(counts["a"])/trials, 0.01)
	assert.InDelta(t, 40.0/90, float64(counts["b"])/trials, 0.01)
	assert.InDelta(t, 20.0/90, float64(counts["c"])/trials, 0.01)
}

func TestAgeUpNoJobWithForcedEvent(t *testing.T) {
	c := baseCharacter()
	illness := &models.LifeEvent{
		Type:        "health",
		Title:       "Minor Illness",
		Description: "You caught a cold and felt unwell.",
		StatEffects: models.StatMap{"health": -10, "happiness": -5},
		Probability: 40,
	}

	engine := New(NewRand(1))
	got, fired := engine.AgeUpWithEvent(c, illness)

	require.NotNil(t, fired)
	assert.Equal(t, 25, got.Age)
	assert.Equal(t, 50, got.Health)
	assert.Equal(t, 65, got.Happiness)
	assert.Equal(t, 55, got.Looks)
	assert.Equal(t, 50, got.Smarts)
	assert.Equal(t, 1000, got.BankBalance, "no salary without a job")
	assert.Equal(t, 0, got.WorkExperience, "experience frozen while unemployed")
	require.Len(t, got.LifeEvents, 1)
	assert.Equal(t, "You caught a cold and felt unwell.", got.LifeEvents[0])

	// The input snapshot is untouched.
	assert.Equal(t, 24, c.Age)
	assert.Empty(t, c.LifeEvents)
}

func TestAgeUpEmployedWithAgingDrift(t *testing.T) {
	c := baseCharacter()
	c.Age = 50
	c.Health = 80
	c.Looks = 50
	c.CurrentJob = strPtr("Doctor")
	c.Salary = 120000
	c.BankBalance = 5000
	c.WorkExperience = 3

	engine := New(NewRand(1))
	got, _ := engine.AgeUpWithEvent(c, nil)

	assert.Equal(t, 51, got.Age)
	assert.Equal(t, 79, got.Health, "health drifts down past 50")
	assert.Equal(t, 50, got.Looks, "-0.5 looks drift truncates to zero")
	assert.Equal(t, 125000, got.BankBalance)
	assert.Equal(t, 4, got.WorkExperience)
	assert.Empty(t, got.LifeEvents)
}

func TestAgeUpIncrementsAgeByExactlyOne(t *testing.T) {
	c := baseCharacter()
	engine := New(NewRand(3))
	events := DefaultLifeEvents()

	for i := 0; i < 60; i++ {
		prev := c.Age
		prevEvents := len(c.LifeEvents)
		c, _ = engine.AgeUp(c, events)
		assert.Equal(t, prev+1, c.Age)
		assert.GreaterOrEqual(t, len(c.LifeEvents), prevEvents, "life log is append-only")
	}
}

func TestAgeUpClampInvariantUnderExtremeEvents(t *testing.T) {
	c := baseCharacter()
	brutal := []models.LifeEvent{
		{Title: "Catastrophe", Description: "Everything went wrong.", StatEffects: models.StatMap{"health": -500, "happiness": -500, "smarts": -500, "looks": -500, "fame": -500}, Probability: 10},
	}
	generous := []models.LifeEvent{
		{Title: "Jackpot", Description: "Everything went right.", StatEffects: models.StatMap{"health": 500, "happiness": 500, "smarts": 500, "looks": 500, "fame": 500}, Probability: 10},
	}

	engine := New(NewRand(9))
	low, _ := engine.AgeUp(c, brutal)
	for _, v := range []int{low.Happiness, low.Health, low.Smarts, low.Looks, low.Fame} {
		assert.GreaterOrEqual(t, v, 0)
	}

	high, _ := engine.AgeUp(c, generous)
	for _, v := range []int{high.Happiness, high.Health, high.Smarts, high.Looks, high.Fame} {
		assert.LessOrEqual(t, v, 100)
	}
}

func TestWorkRequiresJob(t *testing.T) {
	engine := New(NewRand(1))
	c := baseCharacter()

	_, err := engine.Work(c)
	assert.ErrorIs(t, err, ErrNotEmployed)

	c.CurrentJob = strPtr("Teacher")
	c.Salary = 40000
	got, err := engine.Work(c)
	require.NoError(t, err)
	assert.Equal(t, 1000+4000, got.BankBalance, "10% salary bonus")
	assert.Equal(t, 1, got.WorkExperience)
	assert.Equal(t, 75, got.Happiness)
}

func TestWorkHardReputationGainRange(t *testing.T) {
	c := baseCharacter()
	c.CurrentJob = strPtr("Teacher")
	c.JobReputation = 0

	engine := New(NewRand(5))
	for i := 0; i < 200; i++ {
		got, err := engine.WorkHard(c)
		require.NoError(t, err)
		gain := got.JobReputation - c.JobReputation
		assert.GreaterOrEqual(t, gain, 10)
		assert.Less(t, gain, 25)
	}

	// The cap holds even at high reputation.
	c.JobReputation = 95
	got, err := engine.WorkHard(c)
	require.NoError(t, err)
	assert.Equal(t, 100, got.JobReputation)
}

func TestAskForPromotionSuccess(t *testing.T) {
	c := baseCharacter()
	c.CurrentJob = strPtr("Software Engineer")
	c.JobReputation = 60
	c.Salary = 50000
	c.Happiness = 70

	// 0.1 < min(0.8, 0.6) so the roll succeeds.
	engine := New(&fakeRand{floats: []float64{0.1}})
	got, promoted, err := engine.AskForPromotion(c)
	require.NoError(t, err)
	assert.True(t, promoted)
	assert.Equal(t, 60000, got.Salary)
	assert.Equal(t, 40, got.JobReputation)
	assert.Equal(t, 85, got.Happiness)
}

func TestAskForPromotionFailure(t *testing.T) {
	c := baseCharacter()
	c.CurrentJob = strPtr("Software Engineer")
	c.JobReputation = 60
	c.Salary = 50000
	c.Happiness = 70

	engine := New(&fakeRand{floats: []float64{0.9}})
	got, promoted, err := engine.AskForPromotion(c)
	require.NoError(t, err)
	assert.False(t, promoted)
	assert.Equal(t, 50000, got.Salary)
	assert.Equal(t, 50, got.JobReputation)
	assert.Equal(t, 65, got.Happiness)
}

func TestAskForPromotionChanceIsCapped(t *testing.T) {
	c := baseCharacter()
	c.CurrentJob = strPtr("Doctor")
	c.JobReputation = 100
	c.Salary = 100000

	// Even at full reputation a 0.85 roll fails the capped 0.8 chance.
	engine := New(&fakeRand{floats: []float64{0.85}})
	got, promoted, err := engine.AskForPromotion(c)
	require.NoError(t, err)
	assert.False(t, promoted)
	assert.Equal(t, 90, got.JobReputation)
}

func TestQuit(t *testing.T) {
	engine := New(NewRand(1))

	_, err := engine.Quit(baseCharacter())
	assert.ErrorIs(t, err, ErrNotEmployed)

	c := baseCharacter()
	c.CurrentJob = strPtr("TV Actor")
	c.Salary = 50000
	c.JobReputation = 35

	got, err := engine.Quit(c)
	require.NoError(t, err)
	assert.Nil(t, got.CurrentJob)
	assert.Equal(t, 0, got.Salary)
	assert.Equal(t, 0, got.JobReputation)
	assert.Equal(t, 80, got.Happiness)
}

func TestApplyEligibility(t *testing.T) {
	engine := New(NewRand(1))
	doctor := models.Career{Name: "Doctor", MinAge: 26, BaseSalary: 120000, Requirements: models.StatMap{"smarts": 90}}

	c := baseCharacter()
	c.Age = 30
	c.Smarts = 95
	c.WorkExperience = 7

	got, err := engine.Apply(c, doctor)
	require.NoError(t, err)
	require.NotNil(t, got.CurrentJob)
	assert.Equal(t, "Doctor", *got.CurrentJob)
	assert.Equal(t, 120000, got.Salary)
	assert.Equal(t, 0, got.WorkExperience, "experience restarts with a new job")

	// Too young.
	young := baseCharacter()
	young.Age = 20
	young.Smarts = 95
	_, err = engine.Apply(young, doctor)
	assert.ErrorIs(t, err, ErrTooYoung)

	// Stats below the bar.
	dim := baseCharacter()
	dim.Age = 30
	dim.Smarts = 50
	_, err = engine.Apply(dim, doctor)
	assert.ErrorIs(t, err, ErrRequirementsNotMet)

	// Already employed.
	busy := baseCharacter()
	busy.Age = 30
	busy.Smarts = 95
	busy.CurrentJob = strPtr("Teacher")
	_, err = engine.Apply(busy, doctor)
	assert.ErrorIs(t, err, ErrAlreadyEmployed)
}

func TestDoActivity(t *testing.T) {
	engine := New(NewRand(1))

	c := baseCharacter()
	c.BankBalance = 40
	got, err := engine.DoActivity(c, 50, models.StatMap{"happiness": 10})
	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Equal(t, 40, got.BankBalance, "rejected activity leaves the balance alone")
	assert.Equal(t, c.Happiness, got.Happiness)

	c.BankBalance = 200
	got, err = engine.DoActivity(c, 50, models.StatMap{"happiness": 10, "looks": 5})
	require.NoError(t, err)
	assert.Equal(t, 150, got.BankBalance)
	assert.Equal(t, 80, got.Happiness)
	assert.Equal(t, 60, got.Looks)
}

func TestRollStartingStatsRanges(t *testing.T) {
	engine := New(NewRand(11))
	for i := 0; i < 500; i++ {
		happiness, health, smarts, looks := engine.RollStartingStats()
		assert.GreaterOrEqual(t, happiness, 50)
		assert.Less(t, happiness, 90)
		assert.GreaterOrEqual(t, health, 50)
		assert.Less(t, health, 90)
		assert.GreaterOrEqual(t, smarts, 40)
		assert.Less(t, smarts, 80)
		assert.GreaterOrEqual(t, looks, 40)
		assert.Less(t, looks, 80)

		balance := engine.RollStartingBalance()
		assert.GreaterOrEqual(t, balance, 1000)
		assert.Less(t, balance, 6000)
	}
}

func TestDefaultCatalogsAreStable(t *testing.T) {
	first := DefaultLifeEvents()
	second := DefaultLifeEvents()
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Title, second[i].Title)
		assert.Positive(t, first[i].Probability)
	}

	careers := DefaultCareers()
	assert.Len(t, careers, 6)
	for _, career := range careers {
		assert.Positive(t, career.BaseSalary)
	}
}
