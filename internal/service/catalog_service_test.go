package service

import (
	"testing"
	"time"

	"life-sim-game/backend/internal/repository"
	"life-sim-game/backend/pkg/cache"
	"life-sim-game/backend/pkg/errors"
	"life-sim-game/backend/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogService(t *testing.T) *CatalogService {
	t.Helper()
	log := logger.New(logger.Config{Level: "error"})
	events := repository.NewMemoryLifeEventRepository()
	careers := repository.NewMemoryCareerRepository()
	return NewCatalogService(events, careers, cache.NewCacheWithOptions(time.Minute, time.Minute, 100), log)
}

func TestSeedIsIdempotent(t *testing.T) {
	svc := newCatalogService(t)

	require.NoError(t, svc.Seed())
	first, err := svc.LifeEvents()
	require.NoError(t, err)
	firstCareers, err := svc.Careers()
	require.NoError(t, err)

	require.NoError(t, svc.Seed())
	second, err := svc.LifeEvents()
	require.NoError(t, err)
	secondCareers, err := svc.Careers()
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, firstCareers, secondCareers)
	assert.Len(t, second, 5)
	assert.Len(t, secondCareers, 6)
}

func TestLifeEventCatalogContents(t *testing.T) {
	svc := newCatalogService(t)
	require.NoError(t, svc.Seed())

	events, err := svc.LifeEvents()
	require.NoError(t, err)

	titles := make([]string, 0, len(events))
	for _, e := range events {
		titles = append(titles, e.Title)
	}
	assert.Contains(t, titles, "Minor Illness")
	assert.Contains(t, titles, "New Family Member")

	for _, e := range events {
		assert.Positive(t, e.Probability, "event %q must carry a positive weight", e.Title)
	}
}

func TestCareersByCategory(t *testing.T) {
	svc := newCatalogService(t)
	require.NoError(t, svc.Seed())

	medical, err := svc.CareersByCategory("Medical")
	require.NoError(t, err)
	require.Len(t, medical, 1)
	assert.Equal(t, "Doctor", medical[0].Name)
	assert.Equal(t, 120000, medical[0].BaseSalary)
}

func TestCareerByIDNotFound(t *testing.T) {
	svc := newCatalogService(t)
	require.NoError(t, svc.Seed())

	_, err := svc.CareerByID(999)
	require.Error(t, err)
	assert.Equal(t, "CAREER_NOT_FOUND", errors.GetErrorCode(err))
}
