package service

import (
	"regexp"

	"life-sim-game/backend/internal/models"
	"life-sim-game/backend/internal/repository"
	"life-sim-game/backend/pkg/errors"
	"life-sim-game/backend/pkg/jwt"
)

var saveCodePattern = regexp.MustCompile(`^\d{4}$`)

// SaveCodeService manages the 4-digit codes that partition characters into
// save slots and hands out session tokens scoped to one code.
type SaveCodeService struct {
	saveCodes  repository.SaveCodeRepository
	characters repository.CharacterRepository
	tokens     *jwt.Service
}

func NewSaveCodeService(saveCodes repository.SaveCodeRepository, characters repository.CharacterRepository, tokens *jwt.Service) *SaveCodeService {
	return &SaveCodeService{saveCodes: saveCodes, characters: characters, tokens: tokens}
}

// CreateSaveCode registers a new code and returns it with a session token.
func (s *SaveCodeService) CreateSaveCode(code string) (*models.SaveCodeResponse, error) {
	if !saveCodePattern.MatchString(code) {
		return nil, errors.NewValidationError("Save code must be a 4-digit number")
	}

	if _, err := s.saveCodes.GetByCode(code); err == nil {
		return nil, errors.NewConflictError("SAVE_CODE_EXISTS", "Save code is already taken")
	} else if err != repository.ErrNotFound {
		return nil, err
	}

	saveCode := &models.SaveCode{Code: code}
	if err := s.saveCodes.Create(saveCode); err != nil {
		return nil, err
	}

	token, err := s.tokens.GenerateToken(saveCode.ID, saveCode.Code)
	if err != nil {
		return nil, err
	}
	return &models.SaveCodeResponse{SaveCode: saveCode, Token: token}, nil
}

// GetSaveCode looks up a code, also issuing a fresh session token so a
// returning player can resume.
func (s *SaveCodeService) GetSaveCode(code string) (*models.SaveCodeResponse, error) {
	saveCode, err := s.saveCodes.GetByCode(code)
	if err == repository.ErrNotFound {
		return nil, errors.NewNotFoundError("SAVE_CODE_NOT_FOUND", "Save code not found")
	}
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.GenerateToken(saveCode.ID, saveCode.Code)
	if err != nil {
		return nil, err
	}
	return &models.SaveCodeResponse{SaveCode: saveCode, Token: token}, nil
}

// CharactersForCode lists every character saved under the code.
func (s *SaveCodeService) CharactersForCode(code string) ([]models.Character, error) {
	saveCode, err := s.saveCodes.GetByCode(code)
	if err == repository.ErrNotFound {
		return nil, errors.NewNotFoundError("SAVE_CODE_NOT_FOUND", "Save code not found")
	}
	if err != nil {
		return nil, err
	}
	return s.characters.GetBySaveCodeID(saveCode.ID)
}
