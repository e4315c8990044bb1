package service

import "sync"

// SessionStore persists quiz sessions between turns. Mutations to a loaded
// session are not visible to later Loads until Save commits them.
type SessionStore interface {
	Load(userID int64) (*QuizSession, error)
	Save(session *QuizSession) error
}

// MemorySessionStore keeps committed sessions in memory (lost on restart).
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[int64]*QuizSession
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[int64]*QuizSession)}
}

// Load returns a working copy of the committed session for the user, or a
// fresh session if none exists yet.
func (ms *MemorySessionStore) Load(userID int64) (*QuizSession, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	if session, ok := ms.sessions[userID]; ok {
		return session.Clone(), nil
	}
	return NewQuizSession(userID), nil
}

// Save commits the session. Saving again without intervening mutation leaves
// the committed state unchanged.
func (ms *MemorySessionStore) Save(session *QuizSession) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	ms.sessions[session.UserID] = session.Clone()
	return nil
}
