package analytics

import (
	"context"
	"log"

	"github.com/robfig/cron/v3"
)

// StartScheduler refreshes market snapshots hourly.
func StartScheduler(service *Service) *cron.Cron {
	c := cron.New()

	_, err := c.AddFunc("0 * * * *", func() {
		log.Println("[MARKET] Scheduled snapshot recompute running")
		if err := service.RecomputeAll(context.Background()); err != nil {
			log.Println("[MARKET] Scheduled recompute failed:", err)
		}
	})
	if err != nil {
		log.Println("Error scheduling market recompute:", err)
	}

	c.Start()
	return c
}
