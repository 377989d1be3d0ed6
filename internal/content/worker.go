package content

import (
	"context"
	"log"
	"time"
)

// StartWorker polls for pending generation jobs in the background.
func StartWorker(service *Service) {
	go func() {
		log.Println("content worker started")
		for {
			if err := service.ProcessOne(context.Background()); err != nil {
				log.Println("content worker error:", err)
			}
			time.Sleep(10 * time.Second)
		}
	}()
}
