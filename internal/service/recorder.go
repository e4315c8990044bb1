package service

import (
	"errors"
	"slices"
	"strings"
)

// Answer-recording failure kinds. The error text is exactly what the bot
// replies with.
var (
	ErrNoCurrentQuestion = errors.New("No current question to answer.")
	ErrInvalidQuestionID = errors.New("Invalid question ID.")
)

// InvalidAnswerError reports a submission that is not one of the current
// question's options.
type InvalidAnswerError struct {
	Options []string
}

func (e *InvalidAnswerError) Error() string {
	return "Invalid answer. Please choose one of the following: " + strings.Join(e.Options, ", ")
}

// RecordCurrentAnswer validates the submitted answer against the question the
// session is currently on, stores the result and commits the session. On any
// failure the session is left untouched and nothing is persisted.
func (s *QuizService) RecordCurrentAnswer(answer string, session *QuizSession) error {
	if session.State == StateNotStarted {
		return ErrNoCurrentQuestion
	}

	// Guard against ids the sequencer never produced, including the
	// completed sentinel.
	id := session.CurrentQuestionID
	if id < 0 || id >= len(s.questions) {
		return ErrInvalidQuestionID
	}

	question := s.questions[id]
	if !slices.Contains(question.Options, answer) {
		return &InvalidAnswerError{Options: question.Options}
	}

	session.setAnswer(AnswerRecord{
		QuestionID: id,
		Answer:     answer,
		IsCorrect:  answer == question.Answer,
	})
	return s.store.Save(session)
}
