package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port              string
	DatabaseURL       string
	PineconeAPIKey    string
	PineconeIndexName string
	OpenAIAPIKey      string
	GroqAPIKey        string
	AnthropicAPIKey   string
	TavilyAPIKey      string
	LLMProvider       string
	LLMModel          string
	LLMBaseURL        string
	KnowledgeBaseDir  string
	EnrichChunks      bool
}

// Load reads configuration from the environment, with a .env file as an
// optional source. Missing optional keys fall back to defaults.
func Load() *Config {
	godotenv.Load()

	return &Config{
		Port:              getEnv("PORT", "8080"),
		DatabaseURL:       os.Getenv("DB_URL"),
		PineconeAPIKey:    os.Getenv("PINECONE_API_KEY"),
		PineconeIndexName: getEnv("PINECONE_INDEX_NAME", "studybuddy-docs-index"),
		OpenAIAPIKey:      os.Getenv("OPENAI_API_KEY"),
		GroqAPIKey:        os.Getenv("GROQ_API_KEY"),
		AnthropicAPIKey:   os.Getenv("ANTHROPIC_API_KEY"),
		TavilyAPIKey:      os.Getenv("TAVILY_API_KEY"),
		LLMProvider:       getEnv("LLM_PROVIDER", "groq"),
		LLMModel:          os.Getenv("LLM_MODEL"),
		LLMBaseURL:        os.Getenv("LLM_BASE_URL"),
		KnowledgeBaseDir:  getEnv("KNOWLEDGE_BASE_DIR", "knowledge-base"),
		EnrichChunks:      getEnv("ENRICH_CHUNKS", "false") == "true",
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
