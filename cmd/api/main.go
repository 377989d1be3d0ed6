package main

import (
	"context"
	"log"
	"os"
	"time"

	"emlakk/internal/analytics"
	"emlakk/internal/appointment"
	"emlakk/internal/auth"
	"emlakk/internal/content"
	"emlakk/internal/db"
	"emlakk/internal/export"
	"emlakk/internal/listing"
	"emlakk/internal/llm"
	"emlakk/internal/mapcluster"
	"emlakk/internal/message"
	"emlakk/internal/middleware"
	"emlakk/internal/storage"
	"emlakk/internal/valuation"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
		"GEMINI_API_KEY",
		"GEMINI_MODEL",
		"R2_ACCESS_KEY",
		"R2_SECRET_KEY",
		"R2_BUCKET_NAME",
		"R2_ENDPOINT",
		"R2_PUBLIC_BASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── STORAGE ─────────────────────────
	r2Client, err := storage.NewR2Client(context.Background())
	if err != nil {
		log.Fatal("❌ R2 init failed:", err)
	}

	// ───────────────────────── AUTH ─────────────────────────
	userRepo := auth.NewPostgresUserRepository(pgDB)
	authService := auth.NewService(userRepo)
	authHandler := auth.NewHandler(authService)

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
	}

	// ───────────────────────── CORE REPOS ─────────────────────────
	listingRepo := listing.NewPostgresRepository(pgDB)
	valuationRepo := valuation.NewRepository(pgDB)
	appointmentRepo := appointment.NewRepository(pgDB)
	messageRepo := message.NewRepository(pgDB)
	analyticsRepo := analytics.NewRepository(pgDB)
	contentRepo := content.NewRepository(pgDB)

	// ───────────────────────── SERVICES ─────────────────────────
	listingService := listing.NewService(listingRepo, r2Client)
	valuationService := valuation.NewService(valuationRepo, analyticsRepo)
	appointmentService := appointment.NewService(appointmentRepo)
	messageService := message.NewService(messageRepo)
	analyticsService := analytics.NewService(pgDB)
	exportService := export.NewService(listingRepo)

	llmClient := llm.NewGeminiClient()
	contentService := content.NewService(contentRepo, listingRepo, llmClient)

	// ───────────────────────── HANDLERS ─────────────────────────
	listingHandler := listing.NewHandler(listingService)
	mapHandler := mapcluster.NewHandler(mapcluster.NewListingSource(listingRepo))
	valuationHandler := valuation.NewHandler(valuationService)
	appointmentHandler := appointment.NewHandler(appointmentService)
	messageHandler := message.NewHandler(messageService)
	analyticsHandler := analytics.NewHandler(analyticsService)
	contentHandler := content.NewHandler(contentService)
	exportHandler := export.NewHandler(exportService)

	// ───────────────────────── PUBLIC ROUTES ─────────────────────────
	api := r.Group("/api")
	{
		api.GET("/map/clusters", mapHandler.Clusters)
		api.GET("/map/listings", mapHandler.Listings)
	}

	r.GET("/listings", listingHandler.List)
	r.GET("/listings/:slug", listingHandler.GetBySlug)
	r.GET("/market/insights", analyticsHandler.Get)

	r.POST("/valuations", valuationHandler.Create)
	r.POST("/appointments", appointmentHandler.Create)
	r.POST("/messages", messageHandler.Create)

	// ───────────────────────── ADMIN ROUTES ─────────────────────────
	admin := r.Group("/admin")
	admin.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole(auth.RoleAdmin),
	)
	{
		// Staff accounts (only admins may assign roles)
		admin.POST("/users", authHandler.CreateUser)

		// Listings
		admin.POST("/listings", listingHandler.Create)
		admin.PUT("/listings/:id", listingHandler.Update)
		admin.DELETE("/listings/:id", listingHandler.Delete)
		admin.POST("/listings/:id/images", listingHandler.UploadImages)

		// Valuation inbox
		admin.GET("/valuations", valuationHandler.List)
		admin.PATCH("/valuations/:id/status", valuationHandler.UpdateStatus)
		admin.GET("/valuations/:id/estimate", valuationHandler.Estimate)

		// Appointments
		admin.GET("/appointments", appointmentHandler.List)
		admin.POST("/appointments/:id/confirm", appointmentHandler.Confirm)
		admin.POST("/appointments/:id/cancel", appointmentHandler.Cancel)

		// Contact inbox
		admin.GET("/messages", messageHandler.List)
		admin.POST("/messages/:id/read", messageHandler.MarkRead)

		// Market analytics (manual fallback)
		admin.POST("/analytics/recompute", analyticsHandler.Recompute)

		// Generated content
		admin.POST("/contents", contentHandler.Generate)
		admin.GET("/contents/:id", contentHandler.Get)
		admin.GET("/listings/:id/contents", contentHandler.ListByListing)

		// Dataset export
		admin.GET("/export/listings", exportHandler.Download)
	}

	// ───────────────────────── BACKGROUND WORK ─────────────────────────
	scheduler := analytics.StartScheduler(analyticsService)
	defer scheduler.Stop()

	content.StartWorker(contentService)

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── START ─────────────────────────
	log.Println("🚀 API running at http://localhost:8000")
	r.Run(":8000")
}
