package services

import (
	"context"
	"fmt"
	"io"
	"log"
)

// SpeechToText is the external ASR provider. It reads audio from a local path.
type SpeechToText interface {
	TranscribeFile(ctx context.Context, path string) (string, error)
}

type TranscriptionService interface {
	Transcribe(ctx context.Context, audio io.Reader, filename string) (string, error)
}

type transcriptionService struct {
	storage  StorageService
	provider SpeechToText
}

func NewTranscriptionService(storage StorageService, provider SpeechToText) TranscriptionService {
	return &transcriptionService{
		storage:  storage,
		provider: provider,
	}
}

// Transcribe spools the audio to a temporary file which is removed before
// returning, whether or not the provider call succeeds.
func (t *transcriptionService) Transcribe(ctx context.Context, audio io.Reader, filename string) (string, error) {
	tmpName, tmpPath, err := t.storage.SaveFile(audio, filename, "audio")
	if err != nil {
		return "", &TranscriptionError{Err: fmt.Errorf("failed to store audio: %w", err)}
	}
	defer func() {
		if err := t.storage.DeleteFile(tmpName); err != nil {
			log.Printf("⚠️  Failed to remove temporary audio %s: %v", tmpName, err)
		}
	}()

	log.Printf("🎙️  Transcribing %s...", filename)

	text, err := t.provider.TranscribeFile(ctx, tmpPath)
	if err != nil {
		log.Printf("❌ Transcription failed: %v", err)
		return "", &TranscriptionError{Err: err}
	}

	log.Printf("✅ Transcription received: %d characters", len(text))
	return text, nil
}
