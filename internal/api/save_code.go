package api

import (
	"net/http"

	"life-sim-game/backend/internal/models"
	"life-sim-game/backend/internal/service"
	"life-sim-game/backend/pkg/errors"

	"github.com/gin-gonic/gin"
)

// SaveCodeHandler manages the 4-digit save slots players use to resume
// their games.
type SaveCodeHandler struct {
	service *service.SaveCodeService
}

func NewSaveCodeHandler(service *service.SaveCodeService) *SaveCodeHandler {
	return &SaveCodeHandler{service: service}
}

func (h *SaveCodeHandler) CreateSaveCode(c *gin.Context) {
	var req models.CreateSaveCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(errors.NewValidationError(err.Error()))
		return
	}

	resp, err := h.service.CreateSaveCode(req.Code)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetSaveCode resumes a save slot, returning the record and a fresh
// session token.
func (h *SaveCodeHandler) GetSaveCode(c *gin.Context) {
	resp, err := h.service.GetSaveCode(c.Param("code"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListCharacters returns the characters stored under a save slot. The
// session token must have been issued for that same slot.
func (h *SaveCodeHandler) ListCharacters(c *gin.Context) {
	if c.GetString("saveCode") != c.Param("code") {
		c.Error(errors.NewForbiddenError("SAVE_CODE_MISMATCH", "Session token was issued for a different save code"))
		return
	}

	characters, err := h.service.CharactersForCode(c.Param("code"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, characters)
}
