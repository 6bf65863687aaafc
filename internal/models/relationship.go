package models

// Relationship type tags.
const (
	RelationParent  = "parent"
	RelationSibling = "sibling"
	RelationSpouse  = "spouse"
	RelationChild   = "child"
	RelationFriend  = "friend"
)

// Relationship links a character to one person in their life. The score is
// a 0-100 relationship quality, mutated only by relationship-directed
// actions, never by the age-up engine.
type Relationship struct {
	ID          uint   `json:"id" gorm:"primarykey"`
	CharacterID uint   `json:"character_id" gorm:"not null;index"`
	Name        string `json:"name" gorm:"not null"`
	Type        string `json:"type" gorm:"not null"`
	Score       int    `json:"relationship" gorm:"column:relationship;not null;default:50"`
	Age         *int   `json:"age,omitempty"`
	IsAlive     bool   `json:"is_alive" gorm:"not null;default:true"`
}
