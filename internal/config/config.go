package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	TelegramToken string
	QuestionsFile string
	GistID        string
	GithubToken   string
}

func Load() *Config {
	// A missing .env file is fine, the environment may be set directly.
	_ = godotenv.Load()

	return &Config{
		TelegramToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		QuestionsFile: getEnv("QUIZ_QUESTIONS_FILE", "questions.yaml"),
		GistID:        os.Getenv("GITHUB_GIST_ID"),
		GithubToken:   os.Getenv("GITHUB_TOKEN"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
