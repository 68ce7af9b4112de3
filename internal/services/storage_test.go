package services

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func readFileSize(path string) (int, error) {
	data, err := os.ReadFile(path)
	return len(data), err
}

func TestStorageSaveAndDelete(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "audio")
	storage := NewStorageService(dir)
	if err := storage.EnsureUploadDir(); err != nil {
		t.Fatalf("EnsureUploadDir failed: %v", err)
	}

	name, path, err := storage.SaveFile(strings.NewReader("RIFF...."), "Interview.WAV", "audio")
	if err != nil {
		t.Fatalf("SaveFile failed: %v", err)
	}
	if !strings.HasSuffix(name, ".wav") {
		t.Errorf("expected .wav extension, got %s", name)
	}
	if path != storage.GetFilePath(name) {
		t.Errorf("path mismatch: %s vs %s", path, storage.GetFilePath(name))
	}
	if size, err := readFileSize(path); err != nil || size != 8 {
		t.Errorf("expected 8 bytes on disk, got %d (%v)", size, err)
	}

	if err := storage.DeleteFile(name); err != nil {
		t.Fatalf("DeleteFile failed: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("file should be gone after delete")
	}
	if err := storage.DeleteFile(name); err != nil {
		t.Errorf("deleting a missing file should be a no-op, got %v", err)
	}
}

func TestStorageUnknownExtensionDefaultsToMP3(t *testing.T) {
	storage := NewStorageService(t.TempDir())

	name, _, err := storage.SaveFile(strings.NewReader("x"), "blob", "audio")
	if err != nil {
		t.Fatalf("SaveFile failed: %v", err)
	}
	if filepath.Ext(name) != ".mp3" {
		t.Errorf("expected .mp3, got %s", name)
	}
}
