package service

// Question is a single quiz bank entry. Options hold the literal answers the
// user may submit; Answer must be one of them.
type Question struct {
	QuestionText string   `yaml:"question_text"`
	Options      []string `yaml:"options"`
	Answer       string   `yaml:"answer"`
}

// AnswerRecord stores the validated answer to one question.
type AnswerRecord struct {
	QuestionID int
	Answer     string
	IsCorrect  bool
}

// ProgressState tags where a session is in the quiz flow.
type ProgressState int

const (
	StateNotStarted ProgressState = iota
	StateInProgress
	StateCompleted
)

// CompletedQuestionID is written into a session once the bank is exhausted.
const CompletedQuestionID = -1

// QuizSession carries one user's progress through the question bank.
// CurrentQuestionID is only a valid bank index while State is
// StateInProgress.
type QuizSession struct {
	UserID            int64
	State             ProgressState
	CurrentQuestionID int
	Answers           []AnswerRecord
}

func NewQuizSession(userID int64) *QuizSession {
	return &QuizSession{UserID: userID, State: StateNotStarted}
}

// AnswerFor returns the recorded answer for a question id, if any.
func (s *QuizSession) AnswerFor(questionID int) (AnswerRecord, bool) {
	for _, rec := range s.Answers {
		if rec.QuestionID == questionID {
			return rec, true
		}
	}
	return AnswerRecord{}, false
}

// setAnswer overwrites an existing record for the same question in place,
// keeping the original recording order, or appends a new one.
func (s *QuizSession) setAnswer(rec AnswerRecord) {
	for i := range s.Answers {
		if s.Answers[i].QuestionID == rec.QuestionID {
			s.Answers[i] = rec
			return
		}
	}
	s.Answers = append(s.Answers, rec)
}

func (s *QuizSession) CorrectCount() int {
	count := 0
	for _, rec := range s.Answers {
		if rec.IsCorrect {
			count++
		}
	}
	return count
}

// Clone returns an independent copy of the session.
func (s *QuizSession) Clone() *QuizSession {
	copied := *s
	copied.Answers = make([]AnswerRecord, len(s.Answers))
	copy(copied.Answers, s.Answers)
	return &copied
}
