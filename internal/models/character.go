package models

import (
	"time"
)

// Talent values a character can be created with.
const (
	TalentNormal = "normal"
	TalentFamous = "famous"
)

// Character is the persisted life-sim character record. Every game operation
// reads a snapshot of this row, derives a new one and writes it back whole.
type Character struct {
	ID         uint   `json:"id" gorm:"primarykey"`
	SaveCodeID *uint  `json:"save_code_id,omitempty" gorm:"index"`
	Name       string `json:"name" gorm:"not null"`
	Age        int    `json:"age" gorm:"not null;default:0"`
	Gender     string `json:"gender" gorm:"not null"`
	Country    string `json:"country" gorm:"not null"`
	Talent     string `json:"talent" gorm:"not null;default:normal"`

	BankBalance int `json:"bank_balance" gorm:"not null;default:0"`

	// Percentile stats, kept in [0,100] by the game engine.
	Happiness int `json:"happiness" gorm:"not null;default:50"`
	Health    int `json:"health" gorm:"not null;default:50"`
	Smarts    int `json:"smarts" gorm:"not null;default:50"`
	Looks     int `json:"looks" gorm:"not null;default:50"`
	Fame      int `json:"fame" gorm:"not null;default:0"`

	CurrentJob     *string `json:"current_job,omitempty"`
	JobReputation  int     `json:"job_reputation" gorm:"default:0"`
	Salary         int     `json:"salary" gorm:"default:0"`
	WorkExperience int     `json:"work_experience" gorm:"default:0"`

	YoutubeFollowers int `json:"youtube_followers" gorm:"default:0"`
	TiktokFollowers  int `json:"tiktok_followers" gorm:"default:0"`

	IsAlive    bool       `json:"is_alive" gorm:"not null;default:true"`
	LifeEvents StringList `json:"life_events" gorm:"type:text"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Employed reports whether the character currently holds a job.
func (c *Character) Employed() bool {
	return c.CurrentJob != nil && *c.CurrentJob != ""
}

// Stat returns the named percentile stat. Unknown names return 0, which
// makes them trivially fail any career requirement.
func (c *Character) Stat(name string) int {
	switch name {
	case "happiness":
		return c.Happiness
	case "health":
		return c.Health
	case "smarts":
		return c.Smarts
	case "looks":
		return c.Looks
	case "fame":
		return c.Fame
	default:
		return 0
	}
}

// CreateCharacterRequest is the payload for creating a new character.
// Starting stats are optional; zero values mean "roll them for me".
type CreateCharacterRequest struct {
	Name     string `json:"name" binding:"required"`
	Gender   string `json:"gender" binding:"required"`
	Country  string `json:"country" binding:"required"`
	Talent   string `json:"talent" binding:"required,oneof=normal famous"`
	SaveCode string `json:"save_code,omitempty"`

	Happiness int `json:"happiness,omitempty"`
	Health    int `json:"health,omitempty"`
	Smarts    int `json:"smarts,omitempty"`
	Looks     int `json:"looks,omitempty"`
}

// UpdateCharacterRequest carries a partial character update. Pointer fields
// distinguish "absent" from zero.
type UpdateCharacterRequest struct {
	Name             *string `json:"name,omitempty"`
	BankBalance      *int    `json:"bank_balance,omitempty"`
	Happiness        *int    `json:"happiness,omitempty"`
	Health           *int    `json:"health,omitempty"`
	Smarts           *int    `json:"smarts,omitempty"`
	Looks            *int    `json:"looks,omitempty"`
	Fame             *int    `json:"fame,omitempty"`
	YoutubeFollowers *int    `json:"youtube_followers,omitempty"`
	TiktokFollowers  *int    `json:"tiktok_followers,omitempty"`
	IsAlive          *bool   `json:"is_alive,omitempty"`
}

// AgeUpResponse pairs the refreshed character with the life event that
// fired during the age-up, if any.
type AgeUpResponse struct {
	Character *Character `json:"character"`
	LifeEvent *LifeEvent `json:"life_event,omitempty"`
}
