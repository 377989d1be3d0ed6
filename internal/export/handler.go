package export

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"emlakk/internal/listing"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// ADMIN: download the listing dataset
// --------------------------------------------------
func (h *Handler) Download(c *gin.Context) {
	filter := listing.ListFilter{
		City:            c.Query("city"),
		Category:        c.Query("category"),
		TransactionType: c.Query("transaction_type"),
		Status:          c.Query("status"),
	}

	name := Filename(time.Now().UTC())

	c.Header("Content-Type", "application/zstd")
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)

	count, err := h.service.WriteDataset(c.Request.Context(), c.Writer, filter)
	if err != nil {
		// headers are already out; log and abort the stream
		log.Println("export failed:", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	log.Printf("EXPORT_DONE file=%s listings=%d", name, count)
}
