package game

import "life-sim-game/backend/internal/models"

// DefaultLifeEvents returns the built-in life event catalog, in definition
// order. The selector's tie-break depends on this order staying stable.
func DefaultLifeEvents() []models.LifeEvent {
	return []models.LifeEvent{
		{
			Type:        "family",
			Title:       "New Family Member",
			Description: "A family member had a baby!",
			AgeRange:    &models.AgeRange{Min: 16, Max: 80},
			StatEffects: models.StatMap{"happiness": 10},
			Probability: 30,
		},
		{
			Type:        "health",
			Title:       "Minor Illness",
			Description: "You caught a cold and felt unwell.",
			AgeRange:    &models.AgeRange{Min: 5, Max: 100},
			StatEffects: models.StatMap{"health": -10, "happiness": -5},
			Probability: 40,
		},
		{
			Type:        "financial",
			Title:       "Found Money",
			Description: "You found some money on the street!",
			AgeRange:    &models.AgeRange{Min: 10, Max: 100},
			StatEffects: models.StatMap{"happiness": 5},
			Probability: 20,
		},
		{
			Type:        "education",
			Title:       "Academic Achievement",
			Description: "You excelled in your studies!",
			AgeRange:    &models.AgeRange{Min: 6, Max: 25},
			StatEffects: models.StatMap{"smarts": 10, "happiness": 5},
			Probability: 25,
		},
		{
			Type:        "social",
			Title:       "Made a Friend",
			Description: "You made a new friend at school/work.",
			AgeRange:    &models.AgeRange{Min: 5, Max: 100},
			StatEffects: models.StatMap{"happiness": 8},
			Probability: 35,
		},
	}
}

// DefaultCareers returns the built-in career catalog.
func DefaultCareers() []models.Career {
	return []models.Career{
		{Name: "TV Actor", Category: "Entertainment", MinAge: 18, BaseSalary: 50000, Requirements: models.StatMap{"looks": 70, "fame": 20}},
		{Name: "Software Engineer", Category: "Technology", MinAge: 22, BaseSalary: 80000, Requirements: models.StatMap{"smarts": 80}},
		{Name: "Doctor", Category: "Medical", MinAge: 26, BaseSalary: 120000, Requirements: models.StatMap{"smarts": 90}},
		{Name: "Teacher", Category: "Education", MinAge: 22, BaseSalary: 40000, Requirements: models.StatMap{"smarts": 60}},
		{Name: "Police Officer", Category: "Public Service", MinAge: 21, BaseSalary: 50000, Requirements: models.StatMap{"health": 70}},
		{Name: "Restaurant Worker", Category: "Service", MinAge: 16, BaseSalary: 25000, Requirements: models.StatMap{}},
	}
}
