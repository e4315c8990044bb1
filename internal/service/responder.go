package service

import "fmt"

// BotWelcomeMessage opens every new quiz conversation.
const BotWelcomeMessage = "👋 Welcome to the quiz! Answer each question by sending one of the listed options."

// QuizService runs the whole conversation: it validates answers, walks the
// question bank in order and produces the final score report. The bank is
// immutable after construction.
type QuizService struct {
	questions []Question
	store     SessionStore
}

// NewQuizService rejects a malformed bank up front so every later turn can
// trust it: the bank must be non-empty and each answer must be one of its
// question's own options.
func NewQuizService(questions []Question, store SessionStore) (*QuizService, error) {
	if len(questions) == 0 {
		return nil, fmt.Errorf("question bank is empty")
	}
	for i, question := range questions {
		if err := validateQuestion(question); err != nil {
			return nil, fmt.Errorf("question %d: %w", i, err)
		}
	}

	return &QuizService{questions: questions, store: store}, nil
}

func (s *QuizService) QuestionCount() int {
	return len(s.questions)
}

// QuestionAt returns the bank entry for a question id.
func (s *QuizService) QuestionAt(id int) (Question, bool) {
	if id < 0 || id >= len(s.questions) {
		return Question{}, false
	}
	return s.questions[id], true
}

// GenerateBotResponses runs one conversation turn: it records the answer to
// the outstanding question (if any), then either asks the next question or
// closes the quiz with the score report. The returned strings are the bot's
// reply, one chat message each.
func (s *QuizService) GenerateBotResponses(message string, session *QuizSession) []string {
	var responses []string

	if session.State == StateNotStarted {
		// Nothing to record on first contact, greet and start asking.
		responses = append(responses, BotWelcomeMessage)
	} else if err := s.RecordCurrentAnswer(message, session); err != nil {
		// The error text is the entire reply; the session stays on the
		// same question.
		return []string{err.Error()}
	}

	nextQuestion, nextID := s.GetNextQuestion(session)
	if nextID == CompletedQuestionID {
		responses = append(responses, s.GenerateFinalResponse(session))
		session.State = StateCompleted
	} else {
		responses = append(responses, nextQuestion)
		session.State = StateInProgress
	}
	session.CurrentQuestionID = nextID

	if err := s.store.Save(session); err != nil {
		fmt.Printf("Error saving session for user %d: %v\n", session.UserID, err)
	}

	return responses
}
