package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rachitsingh/baatein/backend/internal/auth"
	"github.com/rachitsingh/baatein/backend/internal/handler"
	"github.com/rachitsingh/baatein/backend/internal/model/persona"
	"github.com/rachitsingh/baatein/backend/internal/service/ai"
	chatservice "github.com/rachitsingh/baatein/backend/internal/service/chat"
	"github.com/rachitsingh/baatein/backend/internal/store"
)

type fakeGenerator struct {
	reply string
	err   error
}

func (f *fakeGenerator) GenerateReply(context.Context, []ai.Content) (string, error) {
	return f.reply, f.err
}

func newTestServer(t *testing.T, gen ai.Generator) *httptest.Server {
	t.Helper()

	memory := store.NewMemoryStore()
	personas := persona.NewMemoryStore(persona.Seed())
	tokens := auth.NewSessionTokens("test-secret", time.Hour)
	authSvc := auth.NewService(auth.InsecureEmailVerifier{}, tokens, memory)

	var chatSvc *chatservice.Service
	if gen != nil {
		chatSvc = chatservice.NewService(personas, gen, memory)
	}

	srv := httptest.NewServer(handler.NewRouter(personas, memory, authSvc, tokens, chatSvc))
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url, token string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	decoded := map[string]any{}
	_ = json.NewDecoder(resp.Body).Decode(&decoded)
	return resp, decoded
}

func signIn(t *testing.T, srv *httptest.Server, email string) (string, bool) {
	t.Helper()

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/auth/session", "", map[string]string{"idToken": email})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("sign-in expected 200, got %d", resp.StatusCode)
	}
	token, _ := body["token"].(string)
	if token == "" {
		t.Fatal("sign-in returned no token")
	}
	isNew, _ := body["isNewUser"].(bool)
	return token, isNew
}

func onboard(t *testing.T, srv *httptest.Server, token, gender string) {
	t.Helper()

	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/api/auth", token, map[string]string{
		"username": "tester",
		"gender":   gender,
		"dob":      "2000-01-15",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("onboarding expected 201, got %d", resp.StatusCode)
	}
}

func personaIDs(t *testing.T, srv *httptest.Server, token string) map[int]bool {
	t.Helper()

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/api/personas", token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("personas expected 200, got %d", resp.StatusCode)
	}
	items, _ := body["personas"].([]any)
	ids := make(map[int]bool, len(items))
	for _, item := range items {
		entry, _ := item.(map[string]any)
		id, _ := entry["id"].(float64)
		ids[int(id)] = true
	}
	return ids
}

func TestPersonasRequireSession(t *testing.T) {
	srv := newTestServer(t, nil)

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/api/personas", "", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
	if _, leaked := body["personas"]; leaked {
		t.Fatal("unauthenticated response must not carry persona data")
	}
}

func TestSignInOnboardingFlow(t *testing.T) {
	srv := newTestServer(t, nil)

	token, isNew := signIn(t, srv, "flow@example.com")
	if !isNew {
		t.Fatal("first sign-in must flag a new user")
	}

	// No profile yet: persona fetch answers 404.
	resp, _ := doJSON(t, http.MethodGet, srv.URL+"/api/personas", token, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("pre-onboarding personas expected 404, got %d", resp.StatusCode)
	}

	onboard(t, srv, token, "male")

	// Duplicate onboarding is a decided failure.
	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/auth", token, map[string]string{
		"username": "tester",
		"gender":   "male",
		"dob":      "2000-01-15",
	})
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("duplicate onboarding expected 409, got %d", resp.StatusCode)
	}
	if success, _ := body["success"].(bool); success {
		t.Fatal("duplicate onboarding must report success:false")
	}

	if _, isNew := signIn(t, srv, "flow@example.com"); isNew {
		t.Fatal("sign-in after onboarding must not flag a new user")
	}
}

func TestPersonaFilterByGender(t *testing.T) {
	srv := newTestServer(t, nil)

	maleToken, _ := signIn(t, srv, "him@example.com")
	onboard(t, srv, maleToken, "male")
	maleIDs := personaIDs(t, srv, maleToken)
	if maleIDs[persona.BoyfriendID] {
		t.Fatal("male user must not see the boyfriend persona")
	}
	if !maleIDs[persona.GirlfriendID] {
		t.Fatal("male user should see the girlfriend persona")
	}

	femaleToken, _ := signIn(t, srv, "her@example.com")
	onboard(t, srv, femaleToken, "female")
	femaleIDs := personaIDs(t, srv, femaleToken)
	if femaleIDs[persona.GirlfriendID] {
		t.Fatal("female user must not see the girlfriend persona")
	}
	if !femaleIDs[persona.BoyfriendID] {
		t.Fatal("female user should see the boyfriend persona")
	}
}

func TestOnboardingValidation(t *testing.T) {
	srv := newTestServer(t, nil)
	token, _ := signIn(t, srv, "v@example.com")

	cases := []struct {
		name string
		body map[string]string
	}{
		{"email mismatch", map[string]string{"email": "other@example.com", "username": "u", "gender": "male", "dob": "2000-01-15"}},
		{"missing username", map[string]string{"gender": "male", "dob": "2000-01-15"}},
		{"bad gender", map[string]string{"username": "u", "gender": "robot", "dob": "2000-01-15"}},
		{"bad dob", map[string]string{"username": "u", "gender": "male", "dob": "15/01/2000"}},
	}
	for _, tc := range cases {
		resp, _ := doJSON(t, http.MethodPost, srv.URL+"/api/auth", token, tc.body)
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", tc.name, resp.StatusCode)
		}
	}
}

func TestChatExchange(t *testing.T) {
	srv := newTestServer(t, &fakeGenerator{reply: "hmm… theek hoon"})
	token, _ := signIn(t, srv, "chat@example.com")
	onboard(t, srv, token, "male")

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/chat", token, map[string]any{
		"message": "how are you",
		"botId":   3,
		"chatHistory": []map[string]string{
			{"sender": "user", "content": "hi"},
			{"sender": "bot", "content": "hey"},
		},
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("chat expected 200, got %d", resp.StatusCode)
	}
	if body["reply"] != "hmm… theek hoon" {
		t.Fatalf("unexpected reply: %v", body["reply"])
	}

	// Both turns of the exchange land in the server transcript.
	resp, body = doJSON(t, http.MethodGet, srv.URL+"/api/chat/history?botId=3", token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("history expected 200, got %d", resp.StatusCode)
	}
	messages, _ := body["messages"].([]any)
	if len(messages) != 2 {
		t.Fatalf("expected 2 transcript turns, got %d", len(messages))
	}
}

func TestChatUpstreamFailureKinds(t *testing.T) {
	cases := []struct {
		name     string
		genErr   error
		wantCode int
		wantKind string
	}{
		{"no content", ai.ErrNoContent, http.StatusBadGateway, "no_content"},
		{"unavailable", ai.ErrUnavailable, http.StatusBadGateway, "unavailable"},
		{"invalid request", &ai.APIError{Status: 400, Message: "bad"}, http.StatusBadRequest, "invalid_request"},
	}

	for _, tc := range cases {
		srv := newTestServer(t, &fakeGenerator{err: tc.genErr})
		token, _ := signIn(t, srv, fmt.Sprintf("%s@example.com", tc.wantKind))
		onboard(t, srv, token, "female")

		resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/chat", token, map[string]any{
			"message": "hello",
			"botId":   3,
		})
		if resp.StatusCode != tc.wantCode {
			t.Fatalf("%s: expected %d, got %d", tc.name, tc.wantCode, resp.StatusCode)
		}
		if body["kind"] != tc.wantKind {
			t.Fatalf("%s: expected kind %q, got %v", tc.name, tc.wantKind, body["kind"])
		}
		if _, hasReply := body["reply"]; hasReply {
			t.Fatalf("%s: failure must not carry a reply field", tc.name)
		}
	}
}

func TestChatUnknownPersona(t *testing.T) {
	srv := newTestServer(t, &fakeGenerator{reply: "x"})
	token, _ := signIn(t, srv, "lost@example.com")
	onboard(t, srv, token, "male")

	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/api/chat", token, map[string]any{
		"message": "hello",
		"botId":   42,
	})
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestChatWithoutCompletionService(t *testing.T) {
	srv := newTestServer(t, nil)
	token, _ := signIn(t, srv, "off@example.com")
	onboard(t, srv, token, "male")

	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/api/chat", token, map[string]any{
		"message": "hello",
		"botId":   3,
	})
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", resp.StatusCode)
	}
}
