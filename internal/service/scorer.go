package service

import (
	"fmt"
	"strings"
)

// ScorePercentage is the share of correct answers out of total, in percent.
func ScorePercentage(correct, total int) float64 {
	return float64(correct) / float64(total) * 100
}

// GenerateFinalResponse builds the end-of-quiz report: the overall score
// followed by a per-question breakdown in the order the answers were
// recorded.
func (s *QuizService) GenerateFinalResponse(session *QuizSession) string {
	total := len(s.questions)
	correct := session.CorrectCount()

	var b strings.Builder
	fmt.Fprintf(&b, "You answered %d out of %d questions correctly.\n", correct, total)
	fmt.Fprintf(&b, "Your score: %.2f%%\n\n", ScorePercentage(correct, total))

	b.WriteString("Here's a breakdown of your answers:\n")
	for _, rec := range session.Answers {
		question := s.questions[rec.QuestionID]
		fmt.Fprintf(&b, "Q%d: %s\n", rec.QuestionID+1, question.QuestionText)
		fmt.Fprintf(&b, "Your Answer: %s\n", rec.Answer)
		fmt.Fprintf(&b, "Correct Answer: %s\n", question.Answer)
		if rec.IsCorrect {
			b.WriteString("Result: ✅ Correct\n\n")
		} else {
			b.WriteString("Result: ❌ Incorrect\n\n")
		}
	}

	return b.String()
}
