package api

import (
	"net/http"

	"life-sim-game/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the read-only life event and career catalogs.
type CatalogHandler struct {
	service *service.CatalogService
}

func NewCatalogHandler(service *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

func (h *CatalogHandler) ListLifeEvents(c *gin.Context) {
	if eventType := c.Query("type"); eventType != "" {
		events, err := h.service.LifeEventsByType(eventType)
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, events)
		return
	}

	events, err := h.service.LifeEvents()
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, events)
}

func (h *CatalogHandler) ListCareers(c *gin.Context) {
	if category := c.Query("category"); category != "" {
		careers, err := h.service.CareersByCategory(category)
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, careers)
		return
	}

	careers, err := h.service.Careers()
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, careers)
}
