package services

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// AudioExtensions are the containers the speech-to-text provider accepts.
var AudioExtensions = map[string]bool{
	".mp3":  true,
	".mp4":  true,
	".mpeg": true,
	".mpga": true,
	".m4a":  true,
	".wav":  true,
	".webm": true,
	".ogg":  true,
	".flac": true,
}

const defaultAudioExtension = ".mp3"

// StorageService holds uploaded files on local disk for the duration of a request.
type StorageService interface {
	SaveFile(src io.Reader, originalName, fileType string) (string, string, error)
	GetFilePath(filename string) string
	DeleteFile(filename string) error
	EnsureUploadDir() error
}

type storageService struct {
	uploadPath string
}

func NewStorageService(uploadPath string) StorageService {
	return &storageService{
		uploadPath: uploadPath,
	}
}

func (s *storageService) EnsureUploadDir() error {
	if err := os.MkdirAll(s.uploadPath, 0755); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}

	return nil
}

// SaveFile copies src to a uniquely named file and returns its name and path.
// Unknown audio extensions are stored as .mp3.
func (s *storageService) SaveFile(src io.Reader, originalName, fileType string) (string, string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if !AudioExtensions[ext] {
		ext = defaultAudioExtension
	}

	uniqueFilename := fmt.Sprintf("%s_%s%s", fileType, uuid.New().String(), ext)
	filePath := filepath.Join(s.uploadPath, uniqueFilename)

	dst, err := os.Create(filePath)
	if err != nil {
		return "", "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(filePath)
		return "", "", fmt.Errorf("failed to save file: %w", err)
	}

	return uniqueFilename, filePath, nil
}

func (s *storageService) GetFilePath(filename string) string {
	return filepath.Join(s.uploadPath, filename)
}

func (s *storageService) DeleteFile(filename string) error {
	filePath := s.GetFilePath(filename)
	if err := os.Remove(filePath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
