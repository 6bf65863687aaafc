package repository

import (
	"sync"

	"life-sim-game/backend/internal/models"
)

// In-memory repositories backing tests and local development. They mirror
// the behavior of the GORM implementations, including ErrNotFound semantics.

type MemoryCharacterRepository struct {
	mu     sync.Mutex
	rows   map[uint]models.Character
	nextID uint
}

func NewMemoryCharacterRepository() *MemoryCharacterRepository {
	return &MemoryCharacterRepository{rows: map[uint]models.Character{}, nextID: 1}
}

func (r *MemoryCharacterRepository) Create(character *models.Character) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	character.ID = r.nextID
	r.nextID++
	r.rows[character.ID] = *character
	return nil
}

func (r *MemoryCharacterRepository) GetByID(id uint) (*models.Character, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &row, nil
}

func (r *MemoryCharacterRepository) GetAll() ([]models.Character, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Character, 0, len(r.rows))
	for id := uint(1); id < r.nextID; id++ {
		if row, ok := r.rows[id]; ok {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *MemoryCharacterRepository) GetBySaveCodeID(saveCodeID uint) ([]models.Character, error) {
	all, _ := r.GetAll()
	out := []models.Character{}
	for _, row := range all {
		if row.SaveCodeID != nil && *row.SaveCodeID == saveCodeID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *MemoryCharacterRepository) Update(character *models.Character) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[character.ID]; !ok {
		return ErrNotFound
	}
	r.rows[character.ID] = *character
	return nil
}

func (r *MemoryCharacterRepository) Delete(id uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return false, nil
	}
	delete(r.rows, id)
	return true, nil
}

type MemoryLifeEventRepository struct {
	mu     sync.Mutex
	rows   []models.LifeEvent
	nextID uint
}

func NewMemoryLifeEventRepository() *MemoryLifeEventRepository {
	return &MemoryLifeEventRepository{nextID: 1}
}

func (r *MemoryLifeEventRepository) GetAll() ([]models.LifeEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.LifeEvent, len(r.rows))
	copy(out, r.rows)
	return out, nil
}

func (r *MemoryLifeEventRepository) GetByType(eventType string) ([]models.LifeEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.LifeEvent{}
	for _, row := range r.rows {
		if row.Type == eventType {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *MemoryLifeEventRepository) Count() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.rows)), nil
}

func (r *MemoryLifeEventRepository) CreateBatch(events []models.LifeEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ev := range events {
		ev.ID = r.nextID
		r.nextID++
		r.rows = append(r.rows, ev)
	}
	return nil
}

type MemoryCareerRepository struct {
	mu     sync.Mutex
	rows   []models.Career
	nextID uint
}

func NewMemoryCareerRepository() *MemoryCareerRepository {
	return &MemoryCareerRepository{nextID: 1}
}

func (r *MemoryCareerRepository) GetAll() ([]models.Career, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Career, len(r.rows))
	copy(out, r.rows)
	return out, nil
}

func (r *MemoryCareerRepository) GetByID(id uint) (*models.Career, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range r.rows {
		if row.ID == id {
			career := row
			return &career, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryCareerRepository) GetByCategory(category string) ([]models.Career, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Career{}
	for _, row := range r.rows {
		if row.Category == category {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *MemoryCareerRepository) Count() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.rows)), nil
}

func (r *MemoryCareerRepository) CreateBatch(careers []models.Career) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, career := range careers {
		career.ID = r.nextID
		r.nextID++
		r.rows = append(r.rows, career)
	}
	return nil
}

type MemoryRelationshipRepository struct {
	mu     sync.Mutex
	rows   []models.Relationship
	nextID uint
}

func NewMemoryRelationshipRepository() *MemoryRelationshipRepository {
	return &MemoryRelationshipRepository{nextID: 1}
}

func (r *MemoryRelationshipRepository) Create(relationship *models.Relationship) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	relationship.ID = r.nextID
	r.nextID++
	r.rows = append(r.rows, *relationship)
	return nil
}

func (r *MemoryRelationshipRepository) GetByCharacterID(characterID uint) ([]models.Relationship, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Relationship{}
	for _, row := range r.rows {
		if row.CharacterID == characterID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *MemoryRelationshipRepository) Update(relationship *models.Relationship) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, row := range r.rows {
		if row.ID == relationship.ID {
			r.rows[i] = *relationship
			return nil
		}
	}
	return ErrNotFound
}

func (r *MemoryRelationshipRepository) GetByID(id uint) (*models.Relationship, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range r.rows {
		if row.ID == id {
			rel := row
			return &rel, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryRelationshipRepository) DeleteByCharacterID(characterID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.rows[:0]
	for _, row := range r.rows {
		if row.CharacterID != characterID {
			kept = append(kept, row)
		}
	}
	r.rows = kept
	return nil
}

type MemorySaveCodeRepository struct {
	mu     sync.Mutex
	rows   map[string]models.SaveCode
	nextID uint
}

func NewMemorySaveCodeRepository() *MemorySaveCodeRepository {
	return &MemorySaveCodeRepository{rows: map[string]models.SaveCode{}, nextID: 1}
}

func (r *MemorySaveCodeRepository) Create(saveCode *models.SaveCode) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	saveCode.ID = r.nextID
	r.nextID++
	r.rows[saveCode.Code] = *saveCode
	return nil
}

func (r *MemorySaveCodeRepository) GetByCode(code string) (*models.SaveCode, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[code]
	if !ok {
		return nil, ErrNotFound
	}
	return &row, nil
}
