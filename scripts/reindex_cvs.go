package main

import (
	"context"
	"log"
	"os"
	"strings"

	"recruitment/interview-assistant/internal/config"
	"recruitment/interview-assistant/internal/repositories"
	"recruitment/interview-assistant/internal/services"
)

// Rebuilds the CV search index from the candidates table.
func main() {
	log.Println("🚀 Starting CV reindex...")

	cfg := config.Load()
	if !cfg.VectorIndexEnabled() {
		log.Fatal("❌ QDRANT_URL and GEMINI_API_KEY must be set")
	}

	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	geminiService, err := services.NewGeminiService(cfg.Gemini, cfg.LLM.Temperature)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini: %v", err)
	}

	store, err := services.NewQdrantService(cfg.Qdrant.URL, cfg.Qdrant.APIKey, cfg.Qdrant.Collection, services.EmbeddingDimensions)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Qdrant: %v", err)
	}

	ctx := context.Background()
	if err := store.InitCollection(ctx); err != nil {
		log.Fatalf("❌ Failed to initialize collection: %v", err)
	}

	index := services.NewCVIndex(geminiService, store, services.NewTextChunker(0, 0))

	candidates, err := repositories.NewCandidateRepository(db).FindAll()
	if err != nil {
		log.Fatalf("❌ Failed to load candidates: %v", err)
	}

	successCount, skipCount, failCount := 0, 0, 0
	for _, c := range candidates {
		if strings.TrimSpace(c.CVText) == "" {
			skipCount++
			continue
		}

		if err := index.IndexCV(ctx, c.ID, c.CVText); err != nil {
			log.Printf("   ❌ Candidate %d: %v", c.ID, err)
			failCount++
			continue
		}
		successCount++
	}

	log.Println(strings.Repeat("=", 60))
	log.Printf("📊 Reindex Summary:")
	log.Printf("   ✅ Indexed: %d candidates", successCount)
	log.Printf("   ⏭️  Skipped (no CV): %d candidates", skipCount)
	log.Printf("   ❌ Failed: %d candidates", failCount)
	log.Println(strings.Repeat("=", 60))

	if failCount > 0 {
		os.Exit(1)
	}
}
