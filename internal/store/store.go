package store

import (
	"context"
	"errors"

	"github.com/rachitsingh/baatein/backend/internal/model/chat"
	"github.com/rachitsingh/baatein/backend/internal/model/profile"
)

// ErrProfileExists is the decided failure for a duplicate onboarding
// submission. It is never retried.
var ErrProfileExists = errors.New("profile already exists")

// ProfileStore persists onboarding records keyed by email.
type ProfileStore interface {
	// CreateProfile inserts exactly one record per email and returns
	// ErrProfileExists when the uniqueness constraint rejects a second
	// concurrent or repeated submission.
	CreateProfile(ctx context.Context, p profile.Profile) error
	GetProfile(ctx context.Context, email string) (profile.Profile, bool, error)
	HasProfile(ctx context.Context, email string) (bool, error)
}

// TranscriptStore keeps the server-side copy of per-user-per-persona
// conversation logs. Append order is the only ordering signal.
type TranscriptStore interface {
	AppendTurns(ctx context.Context, email string, personaID int, msgs ...chat.Message) error
	LoadTranscript(ctx context.Context, email string, personaID int) ([]chat.Message, error)
}
