package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server        ServerConfig
	Database      DatabaseConfig
	LLM           LLMConfig
	Gemini        GeminiConfig
	OpenAI        OpenAIConfig
	Transcription TranscriptionConfig
	Qdrant        QdrantConfig
	Storage       StorageConfig
	Report        ReportConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type DatabaseConfig struct {
	Driver   string
	Path     string
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

// LLMConfig selects which provider answers prompts.
type LLMConfig struct {
	Provider    string
	Temperature float32
	MaxTokens   int32
}

type GeminiConfig struct {
	APIKey     string
	Model      string
	EmbedModel string
}

type OpenAIConfig struct {
	APIKey    string
	ChatModel string
}

type TranscriptionConfig struct {
	Model    string
	Language string
}

type QdrantConfig struct {
	URL        string
	APIKey     string
	Collection string
}

type StorageConfig struct {
	UploadPath  string
	MaxFileSize int64
}

type ReportConfig struct {
	MaxScoreMode string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "5000"),
			Env:  getEnv("ENV", "development"),
		},
		Database: DatabaseConfig{
			Driver:   getEnv("DB_DRIVER", "sqlite"),
			Path:     getEnv("DB_PATH", "./rekrytering.db"),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "interview_assistant"),
		},
		LLM: LLMConfig{
			Provider:    getEnv("LLM_PROVIDER", "gemini"),
			Temperature: getEnvAsFloat32("LLM_TEMPERATURE", 0.3),
			MaxTokens:   int32(getEnvAsInt("LLM_MAX_TOKENS", 4000)),
		},
		Gemini: GeminiConfig{
			APIKey:     getEnv("GEMINI_API_KEY", ""),
			Model:      getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
			EmbedModel: getEnv("GEMINI_EMBED_MODEL", "text-embedding-004"),
		},
		OpenAI: OpenAIConfig{
			APIKey:    getEnv("OPENAI_API_KEY", ""),
			ChatModel: getEnv("OPENAI_CHAT_MODEL", "gpt-4o"),
		},
		Transcription: TranscriptionConfig{
			Model:    getEnv("OPENAI_TRANSCRIPTION_MODEL", "whisper-1"),
			Language: getEnv("TRANSCRIPTION_LANGUAGE", "sv"),
		},
		Qdrant: QdrantConfig{
			URL:        getEnv("QDRANT_URL", ""),
			APIKey:     getEnv("QDRANT_API_KEY", ""),
			Collection: getEnv("QDRANT_COLLECTION", "candidate_cvs"),
		},
		Storage: StorageConfig{
			UploadPath:  getEnv("UPLOAD_PATH", filepath.Join(os.TempDir(), "recruit-audio")),
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 26214400),
		},
		Report: ReportConfig{
			MaxScoreMode: getEnv("REPORT_MAX_SCORE_MODE", "dynamic"),
		},
	}
}

func (c *Config) GetDatabaseDSN() string {
	if c.Database.Driver == "postgres" {
		return fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			c.Database.Host,
			c.Database.Port,
			c.Database.User,
			c.Database.Password,
			c.Database.DBName,
		)
	}
	return c.Database.Path
}

// VectorIndexEnabled reports whether CV search has somewhere to store embeddings.
func (c *Config) VectorIndexEnabled() bool {
	return c.Qdrant.URL != "" && c.Gemini.APIKey != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 32); err == nil {
		return float32(value)
	}
	return defaultValue
}
