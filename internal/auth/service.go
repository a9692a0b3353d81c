package auth

import (
	"context"
	"fmt"

	"github.com/rachitsingh/baatein/backend/internal/store"
)

// SessionResult is the outcome of a sign-in exchange. IsNewUser is an
// explicit field computed from profile existence at sign-in time, so
// clients route fresh accounts to onboarding.
type SessionResult struct {
	Token     string `json:"token"`
	Email     string `json:"email"`
	IsNewUser bool   `json:"isNewUser"`
}

// Service exchanges third-party identity tokens for API sessions.
type Service struct {
	verifier IdentityVerifier
	tokens   *SessionTokens
	profiles store.ProfileStore
}

// NewService wires the sign-in dependencies.
func NewService(verifier IdentityVerifier, tokens *SessionTokens, profiles store.ProfileStore) *Service {
	return &Service{verifier: verifier, tokens: tokens, profiles: profiles}
}

// SignIn verifies the identity token, computes the new-user flag, and
// issues an API session token.
func (s *Service) SignIn(ctx context.Context, idToken string) (SessionResult, error) {
	email, err := s.verifier.VerifyEmail(idToken)
	if err != nil {
		return SessionResult{}, err
	}

	exists, err := s.profiles.HasProfile(ctx, email)
	if err != nil {
		return SessionResult{}, fmt.Errorf("check profile: %w", err)
	}

	token, err := s.tokens.Issue(email)
	if err != nil {
		return SessionResult{}, err
	}

	return SessionResult{Token: token, Email: email, IsNewUser: !exists}, nil
}
