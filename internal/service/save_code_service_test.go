package service

import (
	"testing"
	"time"

	"life-sim-game/backend/internal/models"
	"life-sim-game/backend/internal/repository"
	"life-sim-game/backend/pkg/errors"
	"life-sim-game/backend/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSaveCodeService() (*SaveCodeService, *repository.MemoryCharacterRepository, *jwt.Service) {
	saveCodes := repository.NewMemorySaveCodeRepository()
	characters := repository.NewMemoryCharacterRepository()
	tokens := jwt.NewService("test-secret", time.Hour)
	return NewSaveCodeService(saveCodes, characters, tokens), characters, tokens
}

func TestCreateSaveCodeIssuesToken(t *testing.T) {
	svc, _, tokens := newSaveCodeService()

	resp, err := svc.CreateSaveCode("1234")
	require.NoError(t, err)
	require.NotNil(t, resp.SaveCode)
	assert.Equal(t, "1234", resp.SaveCode.Code)
	require.NotEmpty(t, resp.Token)

	claims, err := tokens.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.SaveCode.ID, claims.SaveCodeID)
	assert.Equal(t, "1234", claims.SaveCode)
}

func TestCreateSaveCodeRejectsMalformedCodes(t *testing.T) {
	svc, _, _ := newSaveCodeService()

	for _, code := range []string{"", "123", "12345", "12a4", "abcd", "12 4"} {
		_, err := svc.CreateSaveCode(code)
		require.Error(t, err, "code %q", code)
		assert.Equal(t, "VALIDATION_ERROR", errors.GetErrorCode(err))
	}
}

func TestCreateSaveCodeConflict(t *testing.T) {
	svc, _, _ := newSaveCodeService()

	_, err := svc.CreateSaveCode("4321")
	require.NoError(t, err)

	_, err = svc.CreateSaveCode("4321")
	require.Error(t, err)
	assert.Equal(t, "SAVE_CODE_EXISTS", errors.GetErrorCode(err))
}

func TestGetSaveCodeReturnsFreshToken(t *testing.T) {
	svc, _, tokens := newSaveCodeService()

	created, err := svc.CreateSaveCode("7777")
	require.NoError(t, err)

	resumed, err := svc.GetSaveCode("7777")
	require.NoError(t, err)
	assert.Equal(t, created.SaveCode.ID, resumed.SaveCode.ID)

	claims, err := tokens.ValidateToken(resumed.Token)
	require.NoError(t, err)
	assert.Equal(t, "7777", claims.SaveCode)

	_, err = svc.GetSaveCode("0000")
	require.Error(t, err)
	assert.Equal(t, "SAVE_CODE_NOT_FOUND", errors.GetErrorCode(err))
}

func TestCharactersForCodeScopesBySlot(t *testing.T) {
	svc, characters, _ := newSaveCodeService()

	created, err := svc.CreateSaveCode("2468")
	require.NoError(t, err)
	other, err := svc.CreateSaveCode("1357")
	require.NoError(t, err)

	mine := &models.Character{Name: "Mine", SaveCodeID: &created.SaveCode.ID, IsAlive: true}
	theirs := &models.Character{Name: "Theirs", SaveCodeID: &other.SaveCode.ID, IsAlive: true}
	orphan := &models.Character{Name: "Orphan", IsAlive: true}
	require.NoError(t, characters.Create(mine))
	require.NoError(t, characters.Create(theirs))
	require.NoError(t, characters.Create(orphan))

	found, err := svc.CharactersForCode("2468")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Mine", found[0].Name)
}
