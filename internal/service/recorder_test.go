package service

import (
	"errors"
	"testing"
)

func TestRecordCurrentAnswer_NoCurrentQuestion(t *testing.T) {
	t.Parallel()

	quiz, _ := newTestQuiz(t, scenarioBank())
	session := NewQuizSession(1)

	err := quiz.RecordCurrentAnswer("4", session)
	if !errors.Is(err, ErrNoCurrentQuestion) {
		t.Fatalf("err = %v, want ErrNoCurrentQuestion", err)
	}
	if len(session.Answers) != 0 {
		t.Fatalf("session mutated on failure")
	}
}

func TestRecordCurrentAnswer_CompletedSentinelRejected(t *testing.T) {
	t.Parallel()

	quiz, _ := newTestQuiz(t, scenarioBank())
	session := NewQuizSession(1)
	session.State = StateCompleted
	session.CurrentQuestionID = CompletedQuestionID

	err := quiz.RecordCurrentAnswer("4", session)
	if !errors.Is(err, ErrInvalidQuestionID) {
		t.Fatalf("err = %v, want ErrInvalidQuestionID", err)
	}
}

func TestRecordCurrentAnswer_OutOfBoundsID(t *testing.T) {
	t.Parallel()

	quiz, _ := newTestQuiz(t, scenarioBank())
	session := NewQuizSession(1)
	session.State = StateInProgress
	session.CurrentQuestionID = 99

	if err := quiz.RecordCurrentAnswer("4", session); !errors.Is(err, ErrInvalidQuestionID) {
		t.Fatalf("err = %v, want ErrInvalidQuestionID", err)
	}
}

func TestRecordCurrentAnswer_InvalidAnswerEnumeratesOptions(t *testing.T) {
	t.Parallel()

	quiz, store := newTestQuiz(t, scenarioBank())
	session := NewQuizSession(1)
	session.State = StateInProgress
	session.CurrentQuestionID = 0

	err := quiz.RecordCurrentAnswer("six", session)

	var invalid *InvalidAnswerError
	if !errors.As(err, &invalid) {
		t.Fatalf("err = %v, want *InvalidAnswerError", err)
	}
	want := "Invalid answer. Please choose one of the following: 3, 4, 5"
	if err.Error() != want {
		t.Fatalf("message = %q, want %q", err.Error(), want)
	}
	if len(session.Answers) != 0 {
		t.Fatalf("session mutated on invalid answer")
	}
	if committed, _ := store.Load(1); len(committed.Answers) != 0 {
		t.Fatalf("invalid answer was persisted")
	}
}

func TestRecordCurrentAnswer_ExactMatchOnly(t *testing.T) {
	t.Parallel()

	quiz, _ := newTestQuiz(t, scenarioBank())

	// No trimming, no case folding.
	tests := []struct {
		answer     string
		questionID int
	}{
		{" 4", 0},
		{"4 ", 0},
		{"paris", 1},
		{"PARIS", 1},
	}

	for _, tt := range tests {
		session := NewQuizSession(1)
		session.State = StateInProgress
		session.CurrentQuestionID = tt.questionID

		var invalid *InvalidAnswerError
		if err := quiz.RecordCurrentAnswer(tt.answer, session); !errors.As(err, &invalid) {
			t.Fatalf("answer %q: err = %v, want *InvalidAnswerError", tt.answer, err)
		}
	}
}

func TestRecordCurrentAnswer_SuccessPersists(t *testing.T) {
	t.Parallel()

	quiz, store := newTestQuiz(t, scenarioBank())
	session := NewQuizSession(5)
	session.State = StateInProgress
	session.CurrentQuestionID = 1

	if err := quiz.RecordCurrentAnswer("London", session); err != nil {
		t.Fatalf("RecordCurrentAnswer error = %v", err)
	}

	rec, ok := session.AnswerFor(1)
	if !ok || rec.Answer != "London" || rec.IsCorrect {
		t.Fatalf("record = %+v, ok=%v", rec, ok)
	}

	committed, _ := store.Load(5)
	if _, ok := committed.AnswerFor(1); !ok {
		t.Fatalf("successful answer was not committed")
	}
}

func TestRecordCurrentAnswer_ReanswerOverwritesInPlace(t *testing.T) {
	t.Parallel()

	quiz, _ := newTestQuiz(t, scenarioBank())
	session := NewQuizSession(1)
	session.State = StateInProgress
	session.CurrentQuestionID = 0

	if err := quiz.RecordCurrentAnswer("4", session); err != nil {
		t.Fatalf("first answer error = %v", err)
	}
	if err := quiz.RecordCurrentAnswer("3", session); err != nil {
		t.Fatalf("second answer error = %v", err)
	}

	if len(session.Answers) != 1 {
		t.Fatalf("answers = %d, want 1 after overwrite", len(session.Answers))
	}
	if rec := session.Answers[0]; rec.Answer != "3" || rec.IsCorrect {
		t.Fatalf("record = %+v, want overwritten incorrect answer", rec)
	}
}
