package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	LLM       LLMConfig
	Storage   StorageConfig
	Screening ScreeningConfig
	OCR       OCRConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

// LLMConfig carries the completion endpoint credentials and the fixed
// sampling parameters. There is no process-wide secret state; the analyzer
// receives this at construction.
type LLMConfig struct {
	Provider     string
	GroqAPIKey   string
	GeminiAPIKey string
	Model        string
	BaseURL      string
	Temperature  float64
	MaxTokens    int64
	TopP         float64
}

type StorageConfig struct {
	TmpDir      string
	MaxFileSize int64
}

type ScreeningConfig struct {
	Concurrency int
}

type OCRConfig struct {
	Enabled   bool
	Languages string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
			Env:  getEnv("ENV", "development"),
		},
		LLM: LLMConfig{
			Provider:     getEnv("LLM_PROVIDER", "groq"),
			GroqAPIKey:   getEnv("GROQ_API_KEY", ""),
			GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
			Model:        getEnv("LLM_MODEL", ""),
			BaseURL:      getEnv("LLM_BASE_URL", "https://api.groq.com/openai/v1"),
			Temperature:  getEnvAsFloat("LLM_TEMPERATURE", 0.6),
			MaxTokens:    getEnvAsInt64("LLM_MAX_TOKENS", 4096),
			TopP:         getEnvAsFloat("LLM_TOP_P", 0.95),
		},
		Storage: StorageConfig{
			TmpDir:      getEnv("TMP_DIR", os.TempDir()),
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 10485760),
		},
		Screening: ScreeningConfig{
			Concurrency: getEnvAsInt("SCREEN_CONCURRENCY", 3),
		},
		OCR: OCRConfig{
			Enabled:   getEnvAsBool("OCR_ENABLED", true),
			Languages: getEnv("OCR_LANGUAGES", "eng"),
		},
	}
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

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}
