package models

// LifeEvent is a catalog entry describing one random event that can fire
// during an age-up. Probability is a relative weight among the events
// eligible at the character's age, not a 0-1 chance.
type LifeEvent struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	Type        string    `json:"type" gorm:"not null;index"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description" gorm:"not null"`
	AgeRange    *AgeRange `json:"age_range,omitempty" gorm:"type:text"`
	StatEffects StatMap   `json:"stat_effects" gorm:"type:text"`
	Probability int       `json:"probability" gorm:"not null;default:50"`
}

// Career is a catalog entry describing a job a character can apply for.
type Career struct {
	ID           uint    `json:"id" gorm:"primarykey"`
	Name         string  `json:"name" gorm:"not null"`
	Category     string  `json:"category" gorm:"not null;index"`
	MinAge       int     `json:"min_age" gorm:"not null;default:16"`
	MinEducation *string `json:"min_education,omitempty"`
	BaseSalary   int     `json:"base_salary" gorm:"not null"`
	Requirements StatMap `json:"requirements" gorm:"type:text"`
}
