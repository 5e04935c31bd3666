// api/main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"sitebeacon/api/database"
	"sitebeacon/api/handlers"
	"sitebeacon/api/ingest"
	"sitebeacon/api/middleware"
	"sitebeacon/api/store"
)

func main() {
	// Load .env file at the very start
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found or error loading .env: %v", err)
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	secret := os.Getenv("SECRET")
	if secret == "" {
		log.Fatal("SECRET environment variable is required (signs continuation tokens)")
	}

	visitSalt := os.Getenv("VISIT_SALT")
	if visitSalt == "" {
		visitSalt = secret
	}

	// --- Initialize PostgreSQL Database (websites, sessions, session data) ---
	dbClient, err := database.NewPostgresDB()
	if err != nil {
		log.Fatalf("Failed to initialize PostgreSQL database: %v", err)
	}
	defer dbClient.Close()

	// --- Initialize ClickHouse Database (event fact rows) ---
	chClient, err := database.NewClickHouseDB()
	if err != nil {
		log.Fatalf("Failed to initialize ClickHouse database: %v", err)
	}
	defer chClient.Close()

	// --- Initialize Stores ---
	websiteStore := store.NewWebsiteStore(dbClient.DB)
	eventStore := store.NewEventStore(chClient)
	identityStore := store.NewIdentityStore(dbClient.DB)

	// In clickhouse storage mode sessions are never written eagerly; the
	// event table itself answers session lookups.
	var sessionStore ingest.SessionStore = store.NewSessionStore(dbClient.DB)
	if os.Getenv("STORAGE_MODE") == "clickhouse" {
		sessionStore = store.NewClickHouseSessionStore(chClient)
		log.Println("Storage mode: clickhouse (eager session creation disabled)")
	}

	cfg := ingest.Config{
		Secret:              []byte(secret),
		VisitSalt:           visitSalt,
		DisableBotCheck:     os.Getenv("DISABLE_BOT_CHECK") == "true",
		RemoveTrailingSlash: os.Getenv("REMOVE_TRAILING_SLASH") == "true",
	}

	service := ingest.NewService(
		cfg,
		websiteStore,
		sessionStore,
		eventStore,
		identityStore,
		ingest.UserAgentBotClassifier{},
		ingest.NewIPBlockList(os.Getenv("IGNORE_IP")),
		ingest.HeaderClientResolver{},
	)

	sendHandlers := handlers.NewSendHandlers(service)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	api := r.Group("/api")
	{
		api.POST("/send", sendHandlers.Send)
		api.GET("/heartbeat", sendHandlers.Heartbeat)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		log.Printf("Beacon API server starting on http://localhost:%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Beacon API server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}
