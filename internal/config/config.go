package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Catalog  CatalogConfig
	Search   SearchConfig
	Keys     APIKeys
	Ai       AIConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	ClientURL          string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
}

type DatabaseConfig struct {
	Connection string
}

type CatalogConfig struct {
	// Source selects where the snapshot loads from: "file" or "postgres".
	Source      string
	SnapshotDir string
}

type SearchConfig struct {
	RetrieveK    int
	RerankK      int
	LambdaHybrid float64
	LambdaText   float64
	ImgWeight    float64
	TextWeight   float64
	ExtractBatch int
}

type APIKeys struct {
	GoogleGemini string
	Jina         string
	Voyage       string
	TurnTopic    string // search-turn activity topic
}

type AIConfig struct {
	LLMProvider   string // "gemini" or "ollama"
	LLMModel      string
	OllamaBaseURL string
	EmbedBaseURL  string
	EmbedModel    string
	RerankBaseURL string
	RerankModel   string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			ClientURL:          getEnv("CLIENT_URL", "http://localhost:5173"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log.csv"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Catalog: CatalogConfig{
			Source:      getEnv("CATALOG_SOURCE", "file"),
			SnapshotDir: getEnv("CATALOG_SNAPSHOT_DIR", "./snapshot"),
		},
		Search: SearchConfig{
			RetrieveK:    getEnvAsInt("SEARCH_RETRIEVE_K", 200),
			RerankK:      getEnvAsInt("SEARCH_RERANK_K", 50),
			LambdaHybrid: getEnvAsFloat("SEARCH_LAMBDA_HYBRID", 0.5),
			LambdaText:   getEnvAsFloat("SEARCH_LAMBDA_TEXT", 0.6),
			ImgWeight:    getEnvAsFloat("SEARCH_IMG_WEIGHT", 0.3),
			TextWeight:   getEnvAsFloat("SEARCH_TEXT_WEIGHT", 0.7),
			ExtractBatch: getEnvAsInt("SEARCH_EXTRACT_BATCH", 10),
		},
		Keys: APIKeys{
			GoogleGemini: getEnv("GOOGLE_GEMINI_API_KEY", ""),
			Jina:         getEnv("JINA_API_KEY", ""),
			Voyage:       getEnv("VOYAGE_API_KEY", ""),
			TurnTopic:    getEnv("SEARCH_TURN_TOPIC_NAME", "SEARCH_TURN_COMPLETED"),
		},
		Ai: AIConfig{
			LLMProvider:   getEnv("LLM_PROVIDER", "gemini"),
			LLMModel:      getEnv("LLM_MODEL", "gemini-2.0-flash"),
			OllamaBaseURL: getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			EmbedBaseURL:  getEnv("EMBED_BASE_URL", "https://api.jina.ai"),
			EmbedModel:    getEnv("EMBED_MODEL", "jina-clip-v1"),
			RerankBaseURL: getEnv("RERANK_BASE_URL", "https://api.voyageai.com"),
			RerankModel:   getEnv("RERANK_MODEL", "rerank-2"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}
