package repository

import (
	"errors"

	"life-sim-game/backend/internal/models"

	"gorm.io/gorm"
)

type LifeEventRepository interface {
	GetAll() ([]models.LifeEvent, error)
	GetByType(eventType string) ([]models.LifeEvent, error)
	Count() (int64, error)
	CreateBatch(events []models.LifeEvent) error
}

type CareerRepository interface {
	GetAll() ([]models.Career, error)
	GetByID(id uint) (*models.Career, error)
	GetByCategory(category string) ([]models.Career, error)
	Count() (int64, error)
	CreateBatch(careers []models.Career) error
}

type GormLifeEventRepository struct {
	db *gorm.DB
}

func NewGormLifeEventRepository(db *gorm.DB) *GormLifeEventRepository {
	return &GormLifeEventRepository{db: db}
}

func (r *GormLifeEventRepository) GetAll() ([]models.LifeEvent, error) {
	var events []models.LifeEvent
	// Definition order doubles as selection order, so keep it stable.
	err := r.db.Order("id").Find(&events).Error
	if events == nil {
		events = []models.LifeEvent{}
	}
	return events, err
}

func (r *GormLifeEventRepository) GetByType(eventType string) ([]models.LifeEvent, error) {
	var events []models.LifeEvent
	err := r.db.Where("type = ?", eventType).Order("id").Find(&events).Error
	if events == nil {
		events = []models.LifeEvent{}
	}
	return events, err
}

func (r *GormLifeEventRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.LifeEvent{}).Count(&count).Error
	return count, err
}

func (r *GormLifeEventRepository) CreateBatch(events []models.LifeEvent) error {
	if len(events) == 0 {
		return nil
	}
	return r.db.Create(&events).Error
}

type GormCareerRepository struct {
	db *gorm.DB
}

func NewGormCareerRepository(db *gorm.DB) *GormCareerRepository {
	return &GormCareerRepository{db: db}
}

func (r *GormCareerRepository) GetAll() ([]models.Career, error) {
	var careers []models.Career
	err := r.db.Order("id").Find(&careers).Error
	if careers == nil {
		careers = []models.Career{}
	}
	return careers, err
}

func (r *GormCareerRepository) GetByID(id uint) (*models.Career, error) {
	var career models.Career
	err := r.db.First(&career, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &career, nil
}

func (r *GormCareerRepository) GetByCategory(category string) ([]models.Career, error) {
	var careers []models.Career
	err := r.db.Where("category = ?", category).Order("id").Find(&careers).Error
	if careers == nil {
		careers = []models.Career{}
	}
	return careers, err
}

func (r *GormCareerRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Career{}).Count(&count).Error
	return count, err
}

func (r *GormCareerRepository) CreateBatch(careers []models.Career) error {
	if len(careers) == 0 {
		return nil
	}
	return r.db.Create(&careers).Error
}
