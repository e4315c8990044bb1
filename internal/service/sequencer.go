package service

import (
	"fmt"
	"strings"
)

// GetNextQuestion picks the question that follows the session's current one
// and formats it for the user. It returns ("", CompletedQuestionID) when the
// bank is exhausted. It never touches the session.
func (s *QuizService) GetNextQuestion(session *QuizSession) (string, int) {
	nextID := 0
	switch session.State {
	case StateInProgress:
		nextID = session.CurrentQuestionID + 1
	case StateCompleted:
		return "", CompletedQuestionID
	}

	if nextID >= len(s.questions) {
		return "", CompletedQuestionID
	}
	return formatQuestion(s.questions[nextID]), nextID
}

func formatQuestion(q Question) string {
	var b strings.Builder
	b.WriteString(q.QuestionText)
	b.WriteString("\nOptions:")
	for i, option := range q.Options {
		fmt.Fprintf(&b, "\n%d. %s", i+1, option)
	}
	return b.String()
}
