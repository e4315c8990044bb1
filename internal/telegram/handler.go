package telegram

import (
	"fmt"
	"log"
	"strings"

	"github.com/PoluyanbIch/QuizChatBot/internal/service"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const answerCallbackPrefix = "answer:"

// Bot relays chat messages into quiz turns. All quiz logic lives in the
// service layer; this layer only loads the session, runs one turn and sends
// each returned string as one chat message.
type Bot struct {
	api         *tgbotapi.BotAPI
	quiz        *service.QuizService
	sessions    service.SessionStore
	leaderboard service.Leaderboard
}

func NewBot(token string, quiz *service.QuizService, sessions service.SessionStore, leaderboard service.Leaderboard) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	return &Bot{
		api:         api,
		quiz:        quiz,
		sessions:    sessions,
		leaderboard: leaderboard,
	}, nil
}

func (b *Bot) Start() {
	log.Printf("Authorised on account: %s", b.api.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	for update := range updates {
		if update.Message != nil {
			b.handleMessage(update.Message)
		}
		if update.CallbackQuery != nil {
			b.handleCallback(update.CallbackQuery)
		}
	}
}

func (b *Bot) handleMessage(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	if message.IsCommand() {
		switch message.Command() {
		case "start":
			b.sendMainMenu(chatID)
		case "quiz":
			b.startQuiz(chatID, message.From)
		case "leaderboard":
			b.sendLeaderboard(chatID)
		default:
			b.sendMessage(chatID, "Unknown command. Try /quiz")
		}
		return
	}

	// Any plain text is an answer attempt for the current question.
	b.runTurn(chatID, message.From, message.Text)
}

func (b *Bot) handleCallback(callback *tgbotapi.CallbackQuery) {
	chatID := callback.Message.Chat.ID
	data := callback.Data

	callbackConfig := tgbotapi.NewCallback(callback.ID, "")
	if _, err := b.api.Request(callbackConfig); err != nil {
		log.Printf("Error answering callback: %v", err)
	}

	switch {
	case data == "start_quiz":
		b.startQuiz(chatID, callback.From)
	case strings.HasPrefix(data, answerCallbackPrefix):
		b.runTurn(chatID, callback.From, strings.TrimPrefix(data, answerCallbackPrefix))
	case data == "leaderboard":
		b.sendLeaderboard(chatID)
	case data == "back_to_menu":
		b.sendMainMenu(chatID)
	default:
		b.sendMessage(chatID, "Unknown command. Try /quiz")
	}
}

// startQuiz throws away any previous progress for the chat and runs the
// opening turn, which greets the user and asks the first question.
func (b *Bot) startQuiz(chatID int64, user *tgbotapi.User) {
	if err := b.sessions.Save(service.NewQuizSession(chatID)); err != nil {
		log.Printf("Error resetting session for chat %d: %v", chatID, err)
		return
	}
	b.runTurn(chatID, user, "")
}

// runTurn executes one conversation turn against the chat's session and
// relays the replies. When the turn finishes the quiz, the result goes to
// the leaderboard.
func (b *Bot) runTurn(chatID int64, user *tgbotapi.User, text string) {
	session, err := b.sessions.Load(chatID)
	if err != nil {
		log.Printf("Error loading session for chat %d: %v", chatID, err)
		return
	}
	wasCompleted := session.State == service.StateCompleted

	replies := b.quiz.GenerateBotResponses(text, session)

	for i, reply := range replies {
		msg := tgbotapi.NewMessage(chatID, reply)
		if i == len(replies)-1 {
			b.attachKeyboard(&msg, session)
		}
		if _, err := b.api.Send(msg); err != nil {
			log.Printf("Error sending reply: %v", err)
		}
	}

	if !wasCompleted && session.State == service.StateCompleted && user != nil {
		b.recordResult(chatID, user, session)
	}
}

// attachKeyboard adds the current question's options as buttons, or the
// after-quiz menu once the session is completed.
func (b *Bot) attachKeyboard(msg *tgbotapi.MessageConfig, session *service.QuizSession) {
	switch session.State {
	case service.StateInProgress:
		question, ok := b.quiz.QuestionAt(session.CurrentQuestionID)
		if !ok {
			return
		}
		var rows [][]tgbotapi.InlineKeyboardButton
		for _, option := range question.Options {
			button := tgbotapi.NewInlineKeyboardButtonData(option, answerCallbackPrefix+option)
			rows = append(rows, tgbotapi.NewInlineKeyboardRow(button))
		}
		msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
	case service.StateCompleted:
		msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("🎯 Play again", "start_quiz"),
				tgbotapi.NewInlineKeyboardButtonData("🏆 Leaderboard", "leaderboard"),
			),
		)
	}
}

func (b *Bot) recordResult(chatID int64, user *tgbotapi.User, session *service.QuizSession) {
	isNewBest := b.leaderboard.AddResult(
		user.ID,
		user.UserName,
		user.FirstName,
		session.CorrectCount(),
		b.quiz.QuestionCount(),
	)
	if !isNewBest {
		return
	}

	position, _ := b.leaderboard.GetUserPosition(user.ID)
	if position != -1 {
		b.sendMessage(chatID, fmt.Sprintf("🎉 New personal best! You are #%d on the leaderboard.", position))
	}
}

func (b *Bot) sendMainMenu(chatID int64) {
	msg := tgbotapi.NewMessage(chatID, "📋 *Main menu*")
	msg.ParseMode = "Markdown"

	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🎯 Start quiz", "start_quiz"),
			tgbotapi.NewInlineKeyboardButtonData("🏆 Leaderboard", "leaderboard"),
		),
	)
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Error sending main menu: %v", err)
	}
}

func (b *Bot) sendLeaderboard(chatID int64) {
	top := b.leaderboard.GetTop(10)

	if len(top) == 0 {
		b.sendMessage(chatID, "🏆 Leaderboard\n\nNo results yet. Be the first! 🎯")
		return
	}

	var sb strings.Builder
	sb.WriteString("🏆 Top 10 players\n\n")
	for i, entry := range top {
		name := entry.FirstName
		if entry.Username != "" {
			name = "@" + entry.Username
		}

		medal := "🔸"
		switch i {
		case 0:
			medal = "🥇"
		case 1:
			medal = "🥈"
		case 2:
			medal = "🥉"
		}

		fmt.Fprintf(&sb, "%s %d. %s - %.2f%% (%d/%d)\n   📅 %s\n\n",
			medal, i+1, name, entry.Percentage, entry.Correct, entry.Total, entry.Date)
	}

	msg := tgbotapi.NewMessage(chatID, sb.String())
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🎯 Start quiz", "start_quiz"),
			tgbotapi.NewInlineKeyboardButtonData("📋 Main menu", "back_to_menu"),
		),
	)
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Error sending leaderboard: %v", err)
	}
}

func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Error sending msg: %v", err)
	}
}
