package service

import (
	"life-sim-game/backend/internal/game"
	"life-sim-game/backend/internal/models"
	"life-sim-game/backend/internal/repository"
	"life-sim-game/backend/pkg/cache"
	"life-sim-game/backend/pkg/errors"
	"life-sim-game/backend/pkg/logger"
)

const (
	cacheKeyLifeEvents = "catalog:life_events"
	cacheKeyCareers    = "catalog:careers"
)

// CatalogService owns the read-only life-event and career reference data.
// The tables are seeded once from the built-in defaults and treated as
// immutable afterwards, so reads are cached aggressively.
type CatalogService struct {
	events  repository.LifeEventRepository
	careers repository.CareerRepository
	cache   *cache.Cache
	log     *logger.Logger
}

func NewCatalogService(events repository.LifeEventRepository, careers repository.CareerRepository, c *cache.Cache, log *logger.Logger) *CatalogService {
	return &CatalogService{events: events, careers: careers, cache: c, log: log}
}

// Seed inserts the default catalogs when the tables are empty. Running it
// again is a no-op, so restarts never duplicate rows.
func (s *CatalogService) Seed() error {
	eventCount, err := s.events.Count()
	if err != nil {
		return err
	}
	if eventCount == 0 {
		if err := s.events.CreateBatch(game.DefaultLifeEvents()); err != nil {
			return err
		}
		s.log.Info("Seeded life event catalog", "events", len(game.DefaultLifeEvents()))
	}

	careerCount, err := s.careers.Count()
	if err != nil {
		return err
	}
	if careerCount == 0 {
		if err := s.careers.CreateBatch(game.DefaultCareers()); err != nil {
			return err
		}
		s.log.Info("Seeded career catalog", "careers", len(game.DefaultCareers()))
	}

	s.cache.Delete(cacheKeyLifeEvents)
	s.cache.Delete(cacheKeyCareers)
	return nil
}

// LifeEvents returns the full event catalog in definition order.
func (s *CatalogService) LifeEvents() ([]models.LifeEvent, error) {
	if cached, ok := s.cache.Get(cacheKeyLifeEvents); ok {
		return cached.([]models.LifeEvent), nil
	}
	events, err := s.events.GetAll()
	if err != nil {
		return nil, err
	}
	s.cache.Set(cacheKeyLifeEvents, events)
	return events, nil
}

func (s *CatalogService) LifeEventsByType(eventType string) ([]models.LifeEvent, error) {
	return s.events.GetByType(eventType)
}

// Careers returns the full career catalog.
func (s *CatalogService) Careers() ([]models.Career, error) {
	if cached, ok := s.cache.Get(cacheKeyCareers); ok {
		return cached.([]models.Career), nil
	}
	careers, err := s.careers.GetAll()
	if err != nil {
		return nil, err
	}
	s.cache.Set(cacheKeyCareers, careers)
	return careers, nil
}

func (s *CatalogService) CareersByCategory(category string) ([]models.Career, error) {
	return s.careers.GetByCategory(category)
}

func (s *CatalogService) CareerByID(id uint) (*models.Career, error) {
	career, err := s.careers.GetByID(id)
	if err == repository.ErrNotFound {
		return nil, errors.NewNotFoundError("CAREER_NOT_FOUND", "Career not found")
	}
	return career, err
}
