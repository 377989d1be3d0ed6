package analytics

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// POST /admin/analytics/recompute
func (h *Handler) Recompute(c *gin.Context) {
	var req struct {
		City     string `json:"city"`
		Category string `json:"category"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	if req.City == "" || req.Category == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "city and category required"})
		return
	}

	if err := h.service.RecomputeSnapshot(
		c.Request.Context(),
		req.City,
		req.Category,
	); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// GET /market/insights
func (h *Handler) Get(c *gin.Context) {
	city := c.Query("city")
	category := c.Query("category")

	if city == "" || category == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "city and category required",
		})
		return
	}

	snapshot, err := h.service.GetSnapshot(
		c.Request.Context(),
		city,
		category,
	)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "no data available",
		})
		return
	}

	c.JSON(http.StatusOK, snapshot)
}
