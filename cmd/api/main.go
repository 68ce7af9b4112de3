package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"recruitment/interview-assistant/internal/config"
	"recruitment/interview-assistant/internal/handlers"
	"recruitment/interview-assistant/internal/repositories"
	"recruitment/interview-assistant/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	roleRepo := repositories.NewRoleRepository(db)
	candidateRepo := repositories.NewCandidateRepository(db)
	log.Println("✅ Repositories initialized successfully")

	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	llmService, err := services.NewLLMService(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize LLM provider: %v", err)
	}
	log.Printf("✅ LLM provider initialized (%s)", cfg.LLM.Provider)

	openaiService := services.NewOpenAIService(cfg.OpenAI, cfg.Transcription, cfg.LLM.Temperature)
	transcriber := services.NewTranscriptionService(storageService, openaiService)
	log.Printf("✅ Transcription initialized (%s, language %s)", cfg.Transcription.Model, cfg.Transcription.Language)

	cvIndex := initCVIndex(cfg)

	interviewService := services.NewInterviewService(roleRepo, candidateRepo, llmService, cvIndex, cfg.LLM.MaxTokens)
	reportRenderer := services.NewReportRenderer(cfg.Report.MaxScoreMode)
	log.Println("✅ Services initialized successfully")

	app := fiber.New(fiber.Config{
		AppName:      "Interview Assistant API",
		ReadTimeout:  5 * time.Minute,
		WriteTimeout: 5 * time.Minute,
		BodyLimit:    int(cfg.Storage.MaxFileSize) + 1024*1024,
		ErrorHandler: handlers.ErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	handlers.RegisterRoutes(app, &handlers.Handlers{
		Roles:      handlers.NewRoleHandler(interviewService),
		Candidates: handlers.NewCandidateHandler(interviewService),
		Interview: handlers.NewInterviewHandler(
			interviewService,
			services.NewDocumentExtractor(),
			transcriber,
			cfg.Storage.MaxFileSize,
		),
		Reports: handlers.NewReportHandler(interviewService, reportRenderer),
	})
	log.Println("✅ Handlers initialized")

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initCVIndex returns nil when Qdrant or the embedding model is not
// configured; the rest of the API works without it.
func initCVIndex(cfg *config.Config) services.CVIndex {
	if !cfg.VectorIndexEnabled() {
		log.Println("ℹ️  CV search disabled (QDRANT_URL or GEMINI_API_KEY not set)")
		return nil
	}

	embedder, err := services.NewGeminiService(cfg.Gemini, cfg.LLM.Temperature)
	if err != nil {
		log.Printf("⚠️  CV search disabled: %v", err)
		return nil
	}

	store, err := services.NewQdrantService(cfg.Qdrant.URL, cfg.Qdrant.APIKey, cfg.Qdrant.Collection, services.EmbeddingDimensions)
	if err != nil {
		log.Printf("⚠️  CV search disabled: %v", err)
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := store.InitCollection(ctx); err != nil {
		log.Printf("⚠️  CV search disabled: %v", err)
		return nil
	}

	log.Println("✅ CV search initialized")
	return services.NewCVIndex(embedder, store, services.NewTextChunker(0, 0))
}
