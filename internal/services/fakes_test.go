package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"recruitment/interview-assistant/internal/config"
	"recruitment/interview-assistant/internal/models"
)

// fakeLLM replays canned responses in order and records the prompts it saw.
type fakeLLM struct {
	mu        sync.Mutex
	responses []string
	err       error
	prompts   []string
	maxTokens []int32
}

func (f *fakeLLM) GenerateText(ctx context.Context, prompt string, maxTokens int32) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.prompts = append(f.prompts, prompt)
	f.maxTokens = append(f.maxTokens, maxTokens)
	if f.err != nil {
		return "", f.err
	}
	if len(f.responses) == 0 {
		return "", errors.New("no canned response")
	}
	resp := f.responses[0]
	f.responses = f.responses[1:]
	return resp, nil
}

type fakeSpeechToText struct {
	text     string
	err      error
	sawPath  string
	sawBytes int
}

func (f *fakeSpeechToText) TranscribeFile(ctx context.Context, path string) (string, error) {
	f.sawPath = path
	if n, err := readFileSize(path); err == nil {
		f.sawBytes = n
	}
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

type fakeCVIndex struct {
	indexed map[uint]string
	removed []uint
}

func newFakeCVIndex() *fakeCVIndex {
	return &fakeCVIndex{indexed: make(map[uint]string)}
}

func (f *fakeCVIndex) IndexCV(ctx context.Context, candidateID uint, cvText string) error {
	f.indexed[candidateID] = cvText
	return nil
}

func (f *fakeCVIndex) Search(ctx context.Context, query string, limit int) ([]models.CandidateSearchHit, error) {
	var hits []models.CandidateSearchHit
	for id := range f.indexed {
		hits = append(hits, models.CandidateSearchHit{CandidateID: id, Score: 1})
	}
	return hits, nil
}

func (f *fakeCVIndex) Remove(ctx context.Context, candidateID uint) error {
	f.removed = append(f.removed, candidateID)
	delete(f.indexed, candidateID)
	return nil
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := config.Migrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}
