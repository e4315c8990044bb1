package service

import "testing"

func TestMemorySessionStore_LoadReturnsFreshSession(t *testing.T) {
	t.Parallel()

	store := NewMemorySessionStore()

	session, err := store.Load(42)
	if err != nil {
		t.Fatalf("Load error = %v", err)
	}
	if session.UserID != 42 || session.State != StateNotStarted {
		t.Fatalf("session = %+v, want fresh NotStarted session", session)
	}
}

func TestMemorySessionStore_MutationsInvisibleUntilSave(t *testing.T) {
	t.Parallel()

	store := NewMemorySessionStore()

	session, _ := store.Load(1)
	session.State = StateInProgress
	session.CurrentQuestionID = 0

	// Not saved yet: a second load must not see the change.
	reloaded, _ := store.Load(1)
	if reloaded.State != StateNotStarted {
		t.Fatalf("unsaved mutation leaked into the store")
	}

	if err := store.Save(session); err != nil {
		t.Fatalf("Save error = %v", err)
	}
	reloaded, _ = store.Load(1)
	if reloaded.State != StateInProgress || reloaded.CurrentQuestionID != 0 {
		t.Fatalf("saved session = %+v, want committed state", reloaded)
	}
}

func TestMemorySessionStore_SaveIsIdempotent(t *testing.T) {
	t.Parallel()

	store := NewMemorySessionStore()

	session, _ := store.Load(1)
	session.State = StateInProgress
	session.setAnswer(AnswerRecord{QuestionID: 0, Answer: "4", IsCorrect: true})

	if err := store.Save(session); err != nil {
		t.Fatalf("Save error = %v", err)
	}
	if err := store.Save(session); err != nil {
		t.Fatalf("second Save error = %v", err)
	}

	reloaded, _ := store.Load(1)
	if len(reloaded.Answers) != 1 || reloaded.State != StateInProgress {
		t.Fatalf("repeated save changed committed state: %+v", reloaded)
	}
}

func TestMemorySessionStore_LoadedCopyIsIndependent(t *testing.T) {
	t.Parallel()

	store := NewMemorySessionStore()

	session, _ := store.Load(1)
	session.State = StateInProgress
	session.setAnswer(AnswerRecord{QuestionID: 0, Answer: "4", IsCorrect: true})
	store.Save(session)

	first, _ := store.Load(1)
	first.Answers[0].Answer = "corrupted"

	second, _ := store.Load(1)
	if second.Answers[0].Answer != "4" {
		t.Fatalf("loaded copy shares backing storage with the store")
	}
}
