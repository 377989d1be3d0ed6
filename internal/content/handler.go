package content

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// ADMIN: queue content generation for a listing
// --------------------------------------------------
func (h *Handler) Generate(c *gin.Context) {
	var req struct {
		ListingID string `json:"listing_id"`
		Kind      string `json:"kind"`
	}

	if err := c.ShouldBindJSON(&req); err != nil || req.ListingID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	gc, err := h.service.Enqueue(c.Request.Context(), req.ListingID, req.Kind)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusAccepted, gc)
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid content id"})
		return
	}

	gc, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "content not found"})
		return
	}

	c.JSON(http.StatusOK, gc)
}

func (h *Handler) ListByListing(c *gin.Context) {
	listingID := c.Param("id")

	contents, err := h.service.ListByListing(c.Request.Context(), listingID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch contents"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"contents": contents})
}
