package api

import (
	"net/http"
	"strconv"

	"life-sim-game/backend/internal/models"
	"life-sim-game/backend/internal/service"
	"life-sim-game/backend/internal/ws"
	"life-sim-game/backend/pkg/errors"

	"github.com/gin-gonic/gin"
)

// CharacterHandler exposes the character lifecycle over HTTP.
type CharacterHandler struct {
	service       *service.CharacterService
	relationships *service.RelationshipService
	hub           *ws.Hub
}

func NewCharacterHandler(service *service.CharacterService, relationships *service.RelationshipService, hub *ws.Hub) *CharacterHandler {
	return &CharacterHandler{service: service, relationships: relationships, hub: hub}
}

func characterID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.Error(errors.NewValidationError("Character id must be a positive integer"))
		return 0, false
	}
	return uint(id), true
}

// sessionScope returns the save slot bound to the request's session token,
// when one was presented.
func sessionScope(c *gin.Context) (uint, bool) {
	v, ok := c.Get("saveCodeId")
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// inScope rejects the request when the session token is bound to a
// different save slot than the character. Characters without a slot stay
// reachable from any session.
func inScope(c *gin.Context, character *models.Character) bool {
	scope, ok := sessionScope(c)
	if !ok {
		return true
	}
	if character.SaveCodeID != nil && *character.SaveCodeID != scope {
		c.Error(errors.NewForbiddenError("SAVE_CODE_MISMATCH", "Character belongs to a different save slot"))
		return false
	}
	return true
}

// authorize loads the character and checks the session scope before a
// mutation. Anonymous requests skip the lookup.
func (h *CharacterHandler) authorize(c *gin.Context, id uint) bool {
	if _, ok := sessionScope(c); !ok {
		return true
	}
	character, err := h.service.GetCharacter(id)
	if err != nil {
		c.Error(err)
		return false
	}
	return inScope(c, character)
}

func (h *CharacterHandler) CreateCharacter(c *gin.Context) {
	var req models.CreateCharacterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(errors.NewValidationError(err.Error()))
		return
	}

	character, err := h.service.CreateCharacter(&req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, character)
}

func (h *CharacterHandler) GetCharacter(c *gin.Context) {
	id, ok := characterID(c)
	if !ok {
		return
	}

	character, err := h.service.GetCharacter(id)
	if err != nil {
		c.Error(err)
		return
	}
	if !inScope(c, character) {
		return
	}

	c.JSON(http.StatusOK, character)
}

// ListCharacters returns every character, or only the session's save slot
// when a token was presented.
func (h *CharacterHandler) ListCharacters(c *gin.Context) {
	var characters []models.Character
	var err error
	if scope, ok := sessionScope(c); ok {
		characters, err = h.service.ListCharactersForSaveCode(scope)
	} else {
		characters, err = h.service.ListCharacters()
	}
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, characters)
}

func (h *CharacterHandler) UpdateCharacter(c *gin.Context) {
	id, ok := characterID(c)
	if !ok {
		return
	}

	if !h.authorize(c, id) {
		return
	}

	var req models.UpdateCharacterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(errors.NewValidationError(err.Error()))
		return
	}

	character, err := h.service.UpdateCharacter(id, &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, character)
}

func (h *CharacterHandler) DeleteCharacter(c *gin.Context) {
	id, ok := characterID(c)
	if !ok {
		return
	}

	if !h.authorize(c, id) {
		return
	}

	deleted, err := h.service.DeleteCharacter(id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": deleted})
}

// AgeUp advances the character one year and returns the new snapshot
// plus the life event that fired, if any.
func (h *CharacterHandler) AgeUp(c *gin.Context) {
	id, ok := characterID(c)
	if !ok {
		return
	}

	if !h.authorize(c, id) {
		return
	}

	result, err := h.service.AgeUp(id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *CharacterHandler) CareerAction(c *gin.Context) {
	id, ok := characterID(c)
	if !ok {
		return
	}

	if !h.authorize(c, id) {
		return
	}

	var req models.CareerActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.service.CareerAction(id, req.Action, req.CareerID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *CharacterHandler) DoActivity(c *gin.Context) {
	id, ok := characterID(c)
	if !ok {
		return
	}

	if !h.authorize(c, id) {
		return
	}

	var req models.ActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(errors.NewValidationError(err.Error()))
		return
	}

	character, err := h.service.DoActivity(id, req.Cost, req.Effects)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, character)
}

func (h *CharacterHandler) ListRelationships(c *gin.Context) {
	id, ok := characterID(c)
	if !ok {
		return
	}

	if !h.authorize(c, id) {
		return
	}

	relationships, err := h.relationships.ListForCharacter(id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, relationships)
}

// LiveEvents upgrades the request to a WebSocket subscription for the
// character's age-up feed.
func (h *CharacterHandler) LiveEvents(c *gin.Context) {
	id, ok := characterID(c)
	if !ok {
		return
	}

	character, err := h.service.GetCharacter(id)
	if err != nil {
		c.Error(err)
		return
	}
	if !inScope(c, character) {
		return
	}

	h.hub.Serve(c, id)
}
