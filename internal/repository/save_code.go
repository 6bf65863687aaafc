package repository

import (
	"errors"

	"life-sim-game/backend/internal/models"

	"gorm.io/gorm"
)

type SaveCodeRepository interface {
	Create(saveCode *models.SaveCode) error
	GetByCode(code string) (*models.SaveCode, error)
}

type GormSaveCodeRepository struct {
	db *gorm.DB
}

func NewGormSaveCodeRepository(db *gorm.DB) *GormSaveCodeRepository {
	return &GormSaveCodeRepository{db: db}
}

func (r *GormSaveCodeRepository) Create(saveCode *models.SaveCode) error {
	return r.db.Create(saveCode).Error
}

func (r *GormSaveCodeRepository) GetByCode(code string) (*models.SaveCode, error) {
	var saveCode models.SaveCode
	err := r.db.Where("code = ?", code).First(&saveCode).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &saveCode, nil
}
