package repository

import (
	"errors"

	"life-sim-game/backend/internal/models"

	"gorm.io/gorm"
)

type RelationshipRepository interface {
	Create(relationship *models.Relationship) error
	GetByCharacterID(characterID uint) ([]models.Relationship, error)
	Update(relationship *models.Relationship) error
	GetByID(id uint) (*models.Relationship, error)
	DeleteByCharacterID(characterID uint) error
}

type GormRelationshipRepository struct {
	db *gorm.DB
}

func NewGormRelationshipRepository(db *gorm.DB) *GormRelationshipRepository {
	return &GormRelationshipRepository{db: db}
}

func (r *GormRelationshipRepository) Create(relationship *models.Relationship) error {
	return r.db.Create(relationship).Error
}

func (r *GormRelationshipRepository) GetByCharacterID(characterID uint) ([]models.Relationship, error) {
	var relationships []models.Relationship
	err := r.db.Where("character_id = ?", characterID).Order("id").Find(&relationships).Error
	if relationships == nil {
		relationships = []models.Relationship{}
	}
	return relationships, err
}

func (r *GormRelationshipRepository) Update(relationship *models.Relationship) error {
	return r.db.Save(relationship).Error
}

func (r *GormRelationshipRepository) GetByID(id uint) (*models.Relationship, error) {
	var relationship models.Relationship
	err := r.db.First(&relationship, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &relationship, nil
}

func (r *GormRelationshipRepository) DeleteByCharacterID(characterID uint) error {
	return r.db.Where("character_id = ?", characterID).Delete(&models.Relationship{}).Error
}
