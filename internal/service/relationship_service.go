package service

import (
	"fmt"

	"life-sim-game/backend/internal/game"
	"life-sim-game/backend/internal/models"
	"life-sim-game/backend/internal/repository"
	"life-sim-game/backend/pkg/errors"
)

var familyNames = []struct{ First, Last string }{
	{"John", "Smith"},
	{"Mary", "Johnson"},
	{"Michael", "Williams"},
	{"Patricia", "Brown"},
	{"Robert", "Jones"},
	{"Jennifer", "Garcia"},
}

// RelationshipService manages the people in a character's life. Family is
// seeded at creation; the age-up engine never touches these rows.
type RelationshipService struct {
	relationships repository.RelationshipRepository
	characters    repository.CharacterRepository
	rng           game.Rand
}

func NewRelationshipService(relationships repository.RelationshipRepository, characters repository.CharacterRepository, rng game.Rand) *RelationshipService {
	return &RelationshipService{relationships: relationships, characters: characters, rng: rng}
}

// ListForCharacter returns the character's relationships.
func (s *RelationshipService) ListForCharacter(characterID uint) ([]models.Relationship, error) {
	if _, err := s.characters.GetByID(characterID); err != nil {
		if err == repository.ErrNotFound {
			return nil, errors.NewNotFoundError("CHARACTER_NOT_FOUND", "Character not found")
		}
		return nil, err
	}
	return s.relationships.GetByCharacterID(characterID)
}

// SeedInitialFamily creates two parents, plus a sibling half the time.
func (s *RelationshipService) SeedInitialFamily(characterID uint) error {
	for _, relType := range []string{models.RelationParent, models.RelationParent} {
		age := 40 + s.rng.Intn(15)
		rel := models.Relationship{
			CharacterID: characterID,
			Name:        s.randomName(),
			Type:        relType,
			Score:       70 + s.rng.Intn(30),
			Age:         &age,
			IsAlive:     true,
		}
		if err := s.relationships.Create(&rel); err != nil {
			return err
		}
	}

	if s.rng.Float64() > 0.5 {
		age := 10 + s.rng.Intn(30)
		sibling := models.Relationship{
			CharacterID: characterID,
			Name:        s.randomName(),
			Type:        models.RelationSibling,
			Score:       50 + s.rng.Intn(40),
			Age:         &age,
			IsAlive:     true,
		}
		if err := s.relationships.Create(&sibling); err != nil {
			return err
		}
	}
	return nil
}

// RemoveForCharacter deletes every relationship tied to a character; called
// when the character is deleted.
func (s *RelationshipService) RemoveForCharacter(characterID uint) error {
	return s.relationships.DeleteByCharacterID(characterID)
}

func (s *RelationshipService) randomName() string {
	n := familyNames[s.rng.Intn(len(familyNames))]
	return fmt.Sprintf("%s %s", n.First, n.Last)
}
