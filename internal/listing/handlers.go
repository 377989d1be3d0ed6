package listing

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

type listingRequest struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	City            string   `json:"city"`
	District        string   `json:"district"`
	Category        string   `json:"category"`
	TransactionType string   `json:"transaction_type"`
	Price           float64  `json:"price"`
	Currency        string   `json:"currency"`
	Lat             *float64 `json:"lat"`
	Lng             *float64 `json:"lng"`
}

func (req *listingRequest) toListing() *Listing {
	l := &Listing{
		Title:           req.Title,
		Description:     req.Description,
		City:            req.City,
		District:        req.District,
		Category:        req.Category,
		TransactionType: req.TransactionType,
		Price:           req.Price,
		Currency:        req.Currency,
	}
	if req.Lat != nil && req.Lng != nil {
		l.Coordinates = &Coordinates{Lat: *req.Lat, Lng: *req.Lng}
	}
	return l
}

// --------------------------------------------------
// ADMIN: Create listing
// --------------------------------------------------
func (h *Handler) Create(c *gin.Context) {
	var req listingRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	created, err := h.service.Create(c.Request.Context(), req.toListing())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// --------------------------------------------------
// ADMIN: Update listing
// --------------------------------------------------
func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")

	existing, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "listing not found"})
		return
	}

	var req listingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	updated := req.toListing()
	updated.ID = id
	updated.Slug = existing.Slug
	updated.Source = existing.Source
	updated.Status = existing.Status

	if err := h.service.Update(c.Request.Context(), updated); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// --------------------------------------------------
// ADMIN: Delete listing
// --------------------------------------------------
func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "listing not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "listing deleted"})
}

// --------------------------------------------------
// PUBLIC: List listings
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	filter := ListFilter{
		City:            c.Query("city"),
		Category:        c.Query("category"),
		TransactionType: c.Query("transaction_type"),
		Status:          "active",
	}

	if rawLimit := c.Query("limit"); rawLimit != "" {
		limit, err := strconv.Atoi(rawLimit)
		if err != nil || limit < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		filter.Limit = limit
	}

	listings, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch listings"})
		return
	}

	c.JSON(http.StatusOK, listings)
}

// --------------------------------------------------
// PUBLIC: Listing detail by slug
// --------------------------------------------------
func (h *Handler) GetBySlug(c *gin.Context) {
	l, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "listing not found"})
		return
	}

	c.JSON(http.StatusOK, l)
}

// --------------------------------------------------
// ADMIN: POST /admin/listings/:id/images
// --------------------------------------------------
func (h *Handler) UploadImages(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil || form.File["images"] == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "images are required"})
		return
	}

	if err := h.service.UploadImages(
		c.Request.Context(),
		c.Param("id"),
		form.File["images"],
	); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "images uploaded successfully",
	})
}
