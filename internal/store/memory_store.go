package store

import (
	"context"
	"sync"

	"github.com/rachitsingh/baatein/backend/internal/model/chat"
	"github.com/rachitsingh/baatein/backend/internal/model/profile"
)

// MemoryStore keeps profiles and transcripts in-process. Used when no
// Postgres DSN or Redis address is configured, and in tests.
type MemoryStore struct {
	mu          sync.RWMutex
	profiles    map[string]profile.Profile
	transcripts map[transcriptKey][]chat.Message
}

type transcriptKey struct {
	email     string
	personaID int
}

// NewMemoryStore initializes an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		profiles:    make(map[string]profile.Profile),
		transcripts: make(map[transcriptKey][]chat.Message),
	}
}

// CreateProfile inserts the record, rejecting a duplicate email.
func (m *MemoryStore) CreateProfile(_ context.Context, p profile.Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.profiles[p.Email]; exists {
		return ErrProfileExists
	}
	m.profiles[p.Email] = p
	return nil
}

// GetProfile looks up a profile by email.
func (m *MemoryStore) GetProfile(_ context.Context, email string) (profile.Profile, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.profiles[email]
	return p, ok, nil
}

// HasProfile reports whether an onboarding record exists for the email.
func (m *MemoryStore) HasProfile(_ context.Context, email string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.profiles[email]
	return ok, nil
}

// AppendTurns appends messages to the (email, persona) transcript.
func (m *MemoryStore) AppendTurns(_ context.Context, email string, personaID int, msgs ...chat.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := transcriptKey{email: email, personaID: personaID}
	m.transcripts[key] = append(m.transcripts[key], msgs...)
	return nil
}

// LoadTranscript returns the stored log in append order.
func (m *MemoryStore) LoadTranscript(_ context.Context, email string, personaID int) ([]chat.Message, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	msgs := m.transcripts[transcriptKey{email: email, personaID: personaID}]
	copied := make([]chat.Message, len(msgs))
	copy(copied, msgs)
	return copied, nil
}
