package service

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// ParseQuizBank decodes a YAML question list and validates every entry.
func ParseQuizBank(data []byte) ([]Question, error) {
	var questions []Question
	if err := yaml.Unmarshal(data, &questions); err != nil {
		return nil, fmt.Errorf("failed to parse question bank: %w", err)
	}

	if len(questions) == 0 {
		return nil, fmt.Errorf("no questions found in bank")
	}

	for i, question := range questions {
		if err := validateQuestion(question); err != nil {
			return nil, fmt.Errorf("question %d: %w", i, err)
		}
	}

	return questions, nil
}

func validateQuestion(q Question) error {
	if q.QuestionText == "" {
		return fmt.Errorf("question text cannot be empty")
	}
	if len(q.Options) == 0 {
		return fmt.Errorf("question has no options")
	}
	if !slices.Contains(q.Options, q.Answer) {
		return fmt.Errorf("answer %q is not among the options", q.Answer)
	}
	return nil
}

// LoadQuizBank reads questions from a YAML file or returns the built-in
// questions when the file is missing or malformed.
func LoadQuizBank(filename string) []Question {
	data, err := os.ReadFile(filename)
	if err == nil {
		questions, parseErr := ParseQuizBank(data)
		if parseErr == nil {
			fmt.Printf("Successfully loaded %d questions from %s\n", len(questions), filename)
			return questions
		}
		err = parseErr
	}

	fmt.Printf("Warning: Failed to load questions from %s: %v\n", filename, err)
	fmt.Println("Using default questions...")
	return DefaultQuizQuestions()
}

// DefaultQuizQuestions returns the built-in Python quiz.
func DefaultQuizQuestions() []Question {
	return []Question{
		{
			QuestionText: "Which keyword defines a function in Python?",
			Options:      []string{"func", "def", "lambda"},
			Answer:       "def",
		},
		{
			QuestionText: "Which of these is an immutable sequence type?",
			Options:      []string{"list", "dict", "tuple"},
			Answer:       "tuple",
		},
		{
			QuestionText: "What does len(\"quiz\") return?",
			Options:      []string{"3", "4", "5"},
			Answer:       "4",
		},
	}
}
