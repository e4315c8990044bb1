package main

import (
	"log"

	"github.com/PoluyanbIch/QuizChatBot/internal/config"
	"github.com/PoluyanbIch/QuizChatBot/internal/service"
	"github.com/PoluyanbIch/QuizChatBot/internal/telegram"
)

func main() {
	cfg := config.Load()
	if cfg.TelegramToken == "" {
		log.Fatal("TELEGRAM_BOT_TOKEN environment variable is required")
	}

	questions := service.LoadQuizBank(cfg.QuestionsFile)
	sessions := service.NewMemorySessionStore()

	quiz, err := service.NewQuizService(questions, sessions)
	if err != nil {
		log.Fatal(err)
	}

	// Automatically picks Gist or in-memory storage
	leaderboard := service.NewLeaderboard(cfg.GistID, cfg.GithubToken)

	bot, err := telegram.NewBot(cfg.TelegramToken, quiz, sessions, leaderboard)
	if err != nil {
		log.Fatal(err)
	}

	log.Println("🤖 Bot is starting...")
	bot.Start()
}
