package mapcluster

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	source PointSource
	cache  *resultCache
}

func NewHandler(source PointSource) *Handler {
	return &Handler{
		source: source,
		cache:  newResultCache(DefaultTTL),
	}
}

type clustersPayload struct {
	Clusters  []Cluster `json:"clusters"`
	Timestamp string    `json:"timestamp"`
}

type listingsPayload struct {
	Data      []MapMarker `json:"data"`
	Stats     MarkerStats `json:"stats"`
	Timestamp string      `json:"timestamp"`
}

func nowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// --------------------------------------------------
// GET /api/map/clusters
// --------------------------------------------------
func (h *Handler) Clusters(c *gin.Context) {
	params, err := ParseClusterParams(c.Request.URL.Query())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrInvalidParams.Error()})
		return
	}

	key := clusterCacheKey(params)

	if !params.NoCache {
		if cached, ok := h.cache.Get(key); ok {
			payload := cached.(clustersPayload)
			c.JSON(http.StatusOK, gin.H{
				"clusters":  payload.Clusters,
				"cached":    true,
				"timestamp": payload.Timestamp,
			})
			return
		}
	}

	points, err := h.source.FetchPoints(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch listings"})
		return
	}

	candidates := FilterPoints(points, &params.Box, params.Category, params.MinPrice, params.MaxPrice)
	clusters := BuildClusters(candidates, EffectiveGridSize(params))

	payload := clustersPayload{
		Clusters:  clusters,
		Timestamp: nowISO(),
	}

	if !params.NoCache {
		h.cache.Set(key, payload)
	}

	c.JSON(http.StatusOK, gin.H{
		"clusters":  payload.Clusters,
		"cached":    false,
		"timestamp": payload.Timestamp,
	})
}

// --------------------------------------------------
// GET /api/map/listings
// --------------------------------------------------
func (h *Handler) Listings(c *gin.Context) {
	params, err := ParseListingParams(c.Request.URL.Query())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrInvalidParams.Error()})
		return
	}

	key := listingCacheKey(params)

	if !params.NoCache {
		if cached, ok := h.cache.Get(key); ok {
			payload := cached.(listingsPayload)
			c.JSON(http.StatusOK, gin.H{
				"data":      payload.Data,
				"stats":     payload.Stats,
				"cached":    true,
				"timestamp": payload.Timestamp,
			})
			return
		}
	}

	points, err := h.source.FetchPoints(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch listings"})
		return
	}

	candidates := FilterPoints(points, params.Box, params.Category, params.MinPrice, params.MaxPrice)
	if params.Limit > 0 && len(candidates) > params.Limit {
		candidates = candidates[:params.Limit]
	}

	markers := make([]MapMarker, 0, len(candidates))
	var stats MarkerStats
	for _, p := range candidates {
		markers = append(markers, MapMarker{
			ID:              p.ID,
			Position:        p.Position,
			Title:           p.Title,
			Price:           p.Price,
			Type:            p.Category,
			TransactionType: p.TransactionType,
			Slug:            p.Slug,
			Source:          p.Source,
		})

		stats.Total++
		switch p.TransactionType {
		case "sale":
			stats.Sale++
		case "rent":
			stats.Rent++
		}
	}

	payload := listingsPayload{
		Data:      markers,
		Stats:     stats,
		Timestamp: nowISO(),
	}

	if !params.NoCache {
		h.cache.Set(key, payload)
	}

	c.JSON(http.StatusOK, gin.H{
		"data":      payload.Data,
		"stats":     payload.Stats,
		"cached":    false,
		"timestamp": payload.Timestamp,
	})
}
