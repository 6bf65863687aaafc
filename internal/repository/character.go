package repository

import (
	"errors"

	"life-sim-game/backend/internal/models"

	"gorm.io/gorm"
)

// ErrNotFound is returned by repositories when a row does not exist.
var ErrNotFound = errors.New("record not found")

type CharacterRepository interface {
	Create(character *models.Character) error
	GetByID(id uint) (*models.Character, error)
	GetAll() ([]models.Character, error)
	GetBySaveCodeID(saveCodeID uint) ([]models.Character, error)
	Update(character *models.Character) error
	Delete(id uint) (bool, error)
}

type GormCharacterRepository struct {
	db *gorm.DB
}

func NewGormCharacterRepository(db *gorm.DB) *GormCharacterRepository {
	return &GormCharacterRepository{db: db}
}

func (r *GormCharacterRepository) Create(character *models.Character) error {
	return r.db.Create(character).Error
}

func (r *GormCharacterRepository) GetByID(id uint) (*models.Character, error) {
	var character models.Character
	err := r.db.First(&character, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &character, nil
}

func (r *GormCharacterRepository) GetAll() ([]models.Character, error) {
	var characters []models.Character
	err := r.db.Find(&characters).Error
	if characters == nil {
		characters = []models.Character{}
	}
	return characters, err
}

func (r *GormCharacterRepository) GetBySaveCodeID(saveCodeID uint) ([]models.Character, error) {
	var characters []models.Character
	err := r.db.Where("save_code_id = ?", saveCodeID).Find(&characters).Error
	if characters == nil {
		characters = []models.Character{}
	}
	return characters, err
}

func (r *GormCharacterRepository) Update(character *models.Character) error {
	return r.db.Save(character).Error
}

func (r *GormCharacterRepository) Delete(id uint) (bool, error) {
	result := r.db.Delete(&models.Character{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
