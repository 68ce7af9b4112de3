package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"recruitment/interview-assistant/internal/models"
)

const (
	defaultSearchLimit = 10
	maxSearchLimit     = 50
	excerptChars       = 300
)

// CVIndex makes stored CVs searchable by meaning. It is optional: the
// interview pipeline works without one.
type CVIndex interface {
	IndexCV(ctx context.Context, candidateID uint, cvText string) error
	Search(ctx context.Context, query string, limit int) ([]models.CandidateSearchHit, error)
	Remove(ctx context.Context, candidateID uint) error
}

type cvIndex struct {
	embedder Embedder
	store    VectorStore
	chunker  TextChunker
}

func NewCVIndex(embedder Embedder, store VectorStore, chunker TextChunker) CVIndex {
	return &cvIndex{
		embedder: embedder,
		store:    store,
		chunker:  chunker,
	}
}

func (ci *cvIndex) IndexCV(ctx context.Context, candidateID uint, cvText string) error {
	if err := ci.store.DeleteCandidate(ctx, candidateID); err != nil {
		return err
	}

	passages := ci.chunker.Chunk(cvText)
	if len(passages) == 0 {
		return nil
	}

	embeddings := make([][]float32, len(passages))
	for i, p := range passages {
		vec, err := ci.embedder.GenerateEmbedding(ctx, p)
		if err != nil {
			return fmt.Errorf("failed to embed passage %d: %w", i+1, err)
		}
		embeddings[i] = vec
	}

	if err := ci.store.UpsertPassages(ctx, candidateID, passages, embeddings); err != nil {
		return err
	}

	log.Printf("📚 Indexed CV for candidate %d (%d passages)", candidateID, len(passages))
	return nil
}

// Search returns at most one hit per candidate, best passage first.
func (ci *cvIndex) Search(ctx context.Context, query string, limit int) ([]models.CandidateSearchHit, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, NewValidationError("q", "search query is required")
	}
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}

	vec, err := ci.embedder.GenerateEmbedding(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	passages, err := ci.store.Search(ctx, vec, limit*4)
	if err != nil {
		return nil, err
	}

	hits := make([]models.CandidateSearchHit, 0, limit)
	seen := make(map[uint]bool)
	for _, p := range passages {
		if seen[p.CandidateID] {
			continue
		}
		seen[p.CandidateID] = true
		hits = append(hits, models.CandidateSearchHit{
			CandidateID: p.CandidateID,
			Score:       p.Score,
			Excerpt:     truncateRunes(p.Text, excerptChars),
		})
		if len(hits) == limit {
			break
		}
	}

	return hits, nil
}

func (ci *cvIndex) Remove(ctx context.Context, candidateID uint) error {
	return ci.store.DeleteCandidate(ctx, candidateID)
}
