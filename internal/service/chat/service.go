package chat

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rachitsingh/baatein/backend/internal/model/chat"
	"github.com/rachitsingh/baatein/backend/internal/model/persona"
	"github.com/rachitsingh/baatein/backend/internal/service/ai"
	"github.com/rachitsingh/baatein/backend/internal/store"
)

var (
	ErrPersonaNotFound = errors.New("persona not found")
	ErrMessageRequired = errors.New("message is required")
)

// Service runs one chat turn: resolve the persona, assemble the
// payload, call the completion service, and record the turn.
type Service struct {
	personas    persona.Store
	generator   ai.Generator
	transcripts store.TranscriptStore
}

// NewService wires the chat dependencies. transcripts may be nil when
// server-side continuity is disabled.
func NewService(personas persona.Store, generator ai.Generator, transcripts store.TranscriptStore) *Service {
	return &Service{personas: personas, generator: generator, transcripts: transcripts}
}

// Exchange performs a single blocking request/reply round trip. The
// history slice is the client-held per-persona log and is not mutated.
func (s *Service) Exchange(ctx context.Context, email string, personaID int, message string, history []chat.Message) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", ErrMessageRequired
	}

	p, ok := s.personas.FindByID(personaID)
	if !ok {
		return "", ErrPersonaNotFound
	}

	contents := ai.BuildContents(p.Template, history, message)
	reply, err := s.generator.GenerateReply(ctx, contents)
	if err != nil {
		return "", err
	}

	s.recordTurns(ctx, email, personaID, message, reply)
	return reply, nil
}

// Transcript returns the server-held log for the persona. Empty when
// no transcript store is configured.
func (s *Service) Transcript(ctx context.Context, email string, personaID int) ([]chat.Message, error) {
	if _, ok := s.personas.FindByID(personaID); !ok {
		return nil, ErrPersonaNotFound
	}
	if s.transcripts == nil {
		return nil, nil
	}
	return s.transcripts.LoadTranscript(ctx, email, personaID)
}

// recordTurns appends both sides of the exchange to the server-side
// transcript. Best-effort: a transcript failure never fails the chat.
func (s *Service) recordTurns(ctx context.Context, email string, personaID int, message, reply string) {
	if s.transcripts == nil {
		return
	}

	now := time.Now().UTC()
	err := s.transcripts.AppendTurns(ctx, email, personaID,
		chat.Message{ID: uuid.NewString(), Content: message, Sender: chat.SenderUser, Timestamp: now},
		chat.Message{ID: uuid.NewString(), Content: reply, Sender: chat.SenderBot, Timestamp: now},
	)
	if err != nil {
		log.Printf("[chat] failed to record transcript for persona=%d: %v", personaID, err)
	}
}
