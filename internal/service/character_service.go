package service

import (
	"life-sim-game/backend/internal/game"
	"life-sim-game/backend/internal/models"
	"life-sim-game/backend/internal/repository"
	"life-sim-game/backend/pkg/errors"
	"life-sim-game/backend/pkg/logger"
)

// Career actions a character can take through the API.
const (
	ActionWork      = "work"
	ActionWorkHard  = "work_hard"
	ActionPromotion = "promotion"
	ActionQuit      = "quit"
	ActionApply     = "apply"
)

// SnapshotCache caches character snapshots between reads. Implementations
// must tolerate misses; the database stays the source of truth.
type SnapshotCache interface {
	GetCharacter(id uint) (*models.Character, bool)
	SetCharacter(character *models.Character)
	Invalidate(id uint)
}

// LifeEventNotifier pushes age-up results to live subscribers.
type LifeEventNotifier interface {
	NotifyAgeUp(characterID uint, age int, event *models.LifeEvent)
}

// GameMetrics counts engine-level outcomes for observability.
type GameMetrics interface {
	AgeUp(eventFired bool)
	CareerAction(action string)
}

// CharacterService drives the whole character lifecycle: creation, reads,
// the yearly age-up, career actions, activities and deletion. All game
// rules live in the engine; this layer loads snapshots, invokes the engine
// and persists the result.
type CharacterService struct {
	characters    repository.CharacterRepository
	saveCodes     repository.SaveCodeRepository
	catalog       *CatalogService
	relationships *RelationshipService
	engine        *game.Engine
	snapshots     SnapshotCache
	notifier      LifeEventNotifier
	metrics       GameMetrics
	log           *logger.Logger
}

func NewCharacterService(
	characters repository.CharacterRepository,
	saveCodes repository.SaveCodeRepository,
	catalog *CatalogService,
	relationships *RelationshipService,
	engine *game.Engine,
	log *logger.Logger,
) *CharacterService {
	return &CharacterService{
		characters:    characters,
		saveCodes:     saveCodes,
		catalog:       catalog,
		relationships: relationships,
		engine:        engine,
		log:           log,
	}
}

// WithSnapshotCache attaches an optional snapshot cache.
func (s *CharacterService) WithSnapshotCache(cache SnapshotCache) *CharacterService {
	s.snapshots = cache
	return s
}

// WithNotifier attaches an optional live event notifier.
func (s *CharacterService) WithNotifier(notifier LifeEventNotifier) *CharacterService {
	s.notifier = notifier
	return s
}

// WithMetrics attaches optional game metrics.
func (s *CharacterService) WithMetrics(metrics GameMetrics) *CharacterService {
	s.metrics = metrics
	return s
}

// CreateCharacter builds a newborn character from the request. Stats left
// at zero are rolled; employment and social fields start empty; a famous
// talent starts with 10 fame. The initial family is seeded alongside.
func (s *CharacterService) CreateCharacter(req *models.CreateCharacterRequest) (*models.Character, error) {
	happiness, health, smarts, looks := req.Happiness, req.Health, req.Smarts, req.Looks
	if happiness == 0 && health == 0 && smarts == 0 && looks == 0 {
		happiness, health, smarts, looks = s.engine.RollStartingStats()
	}

	fame := 0
	if req.Talent == models.TalentFamous {
		fame = 10
	}

	character := &models.Character{
		Name:        req.Name,
		Age:         0,
		Gender:      req.Gender,
		Country:     req.Country,
		Talent:      req.Talent,
		BankBalance: s.engine.RollStartingBalance(),
		Happiness:   game.ClampPercent(happiness),
		Health:      game.ClampPercent(health),
		Smarts:      game.ClampPercent(smarts),
		Looks:       game.ClampPercent(looks),
		Fame:        fame,
		IsAlive:     true,
		LifeEvents:  models.StringList{},
	}

	if req.SaveCode != "" {
		saveCode, err := s.saveCodes.GetByCode(req.SaveCode)
		if err == repository.ErrNotFound {
			return nil, errors.NewNotFoundError("SAVE_CODE_NOT_FOUND", "Save code not found")
		}
		if err != nil {
			return nil, err
		}
		character.SaveCodeID = &saveCode.ID
	}

	if err := s.characters.Create(character); err != nil {
		return nil, err
	}

	if err := s.relationships.SeedInitialFamily(character.ID); err != nil {
		s.log.LogError(err, "Failed to seed initial family", "character_id", character.ID)
	}

	s.log.Info("Character created", "character_id", character.ID, "name", character.Name, "talent", character.Talent)
	return character, nil
}

// GetCharacter loads one character, via the snapshot cache when possible.
func (s *CharacterService) GetCharacter(id uint) (*models.Character, error) {
	if s.snapshots != nil {
		if character, ok := s.snapshots.GetCharacter(id); ok {
			return character, nil
		}
	}

	character, err := s.characters.GetByID(id)
	if err == repository.ErrNotFound {
		return nil, errors.NewNotFoundError("CHARACTER_NOT_FOUND", "Character not found")
	}
	if err != nil {
		return nil, err
	}

	if s.snapshots != nil {
		s.snapshots.SetCharacter(character)
	}
	return character, nil
}

// ListCharacters returns every character.
func (s *CharacterService) ListCharacters() ([]models.Character, error) {
	return s.characters.GetAll()
}

// ListCharactersForSaveCode returns the characters stored under one save slot.
func (s *CharacterService) ListCharactersForSaveCode(saveCodeID uint) ([]models.Character, error) {
	return s.characters.GetBySaveCodeID(saveCodeID)
}

// UpdateCharacter applies a partial update. Percentile stats are clamped on
// the way in so a patch can never break the invariant.
func (s *CharacterService) UpdateCharacter(id uint, req *models.UpdateCharacterRequest) (*models.Character, error) {
	character, err := s.GetCharacter(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		character.Name = *req.Name
	}
	if req.BankBalance != nil {
		character.BankBalance = game.ClampMoney(*req.BankBalance)
	}
	if req.Happiness != nil {
		character.Happiness = game.ClampPercent(*req.Happiness)
	}
	if req.Health != nil {
		character.Health = game.ClampPercent(*req.Health)
	}
	if req.Smarts != nil {
		character.Smarts = game.ClampPercent(*req.Smarts)
	}
	if req.Looks != nil {
		character.Looks = game.ClampPercent(*req.Looks)
	}
	if req.Fame != nil {
		character.Fame = game.ClampPercent(*req.Fame)
	}
	if req.YoutubeFollowers != nil {
		character.YoutubeFollowers = game.ClampMoney(*req.YoutubeFollowers)
	}
	if req.TiktokFollowers != nil {
		character.TiktokFollowers = game.ClampMoney(*req.TiktokFollowers)
	}
	if req.IsAlive != nil {
		character.IsAlive = *req.IsAlive
	}

	if err := s.save(character); err != nil {
		return nil, err
	}
	return character, nil
}

// DeleteCharacter removes a character and their relationships. Deletion is
// unconditional and irreversible.
func (s *CharacterService) DeleteCharacter(id uint) (bool, error) {
	deleted, err := s.characters.Delete(id)
	if err != nil || !deleted {
		return deleted, err
	}
	if err := s.relationships.RemoveForCharacter(id); err != nil {
		s.log.LogError(err, "Failed to delete relationships", "character_id", id)
	}
	if s.snapshots != nil {
		s.snapshots.Invalidate(id)
	}
	s.log.Info("Character deleted", "character_id", id)
	return true, nil
}

// AgeUp advances the character one year through the engine and persists
// the new snapshot.
func (s *CharacterService) AgeUp(id uint) (*models.AgeUpResponse, error) {
	character, err := s.GetCharacter(id)
	if err != nil {
		return nil, err
	}

	events, err := s.catalog.LifeEvents()
	if err != nil {
		return nil, err
	}

	updated, fired := s.engine.AgeUp(*character, events)
	if err := s.save(&updated); err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.AgeUp(fired != nil)
	}
	if s.notifier != nil {
		s.notifier.NotifyAgeUp(updated.ID, updated.Age, fired)
	}

	s.log.Info("Character aged up", "character_id", id, "age", updated.Age, "event_fired", fired != nil)
	return &models.AgeUpResponse{Character: &updated, LifeEvent: fired}, nil
}

// CareerAction dispatches one career operation. Precondition failures pass
// through from the engine untouched; the snapshot is only saved on success.
// A promotion reports whether the roll succeeded so clients do not have to
// infer the outcome from the salary.
func (s *CharacterService) CareerAction(id uint, action string, careerID uint) (*models.CareerActionResponse, error) {
	character, err := s.GetCharacter(id)
	if err != nil {
		return nil, err
	}

	var updated models.Character
	var promoted *bool
	switch action {
	case ActionWork:
		updated, err = s.engine.Work(*character)
	case ActionWorkHard:
		updated, err = s.engine.WorkHard(*character)
	case ActionPromotion:
		var success bool
		updated, success, err = s.engine.AskForPromotion(*character)
		if err == nil {
			promoted = &success
		}
	case ActionQuit:
		updated, err = s.engine.Quit(*character)
	case ActionApply:
		var career *models.Career
		career, err = s.catalog.CareerByID(careerID)
		if err != nil {
			return nil, err
		}
		updated, err = s.engine.Apply(*character, *career)
	default:
		return nil, errors.NewValidationError("Unknown career action: " + action)
	}
	if err != nil {
		return nil, err
	}

	if err := s.save(&updated); err != nil {
		return nil, err
	}
	if s.metrics != nil {
		s.metrics.CareerAction(action)
	}
	return &models.CareerActionResponse{Character: &updated, Promoted: promoted}, nil
}

// DoActivity spends money on an activity and applies its stat effects.
func (s *CharacterService) DoActivity(id uint, cost int, effects models.StatMap) (*models.Character, error) {
	if cost < 0 {
		return nil, errors.NewValidationError("Activity cost cannot be negative")
	}

	character, err := s.GetCharacter(id)
	if err != nil {
		return nil, err
	}

	updated, err := s.engine.DoActivity(*character, cost, effects)
	if err != nil {
		return nil, err
	}

	if err := s.save(&updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *CharacterService) save(character *models.Character) error {
	if err := s.characters.Update(character); err != nil {
		return err
	}
	if s.snapshots != nil {
		s.snapshots.Invalidate(character.ID)
	}
	return nil
}
