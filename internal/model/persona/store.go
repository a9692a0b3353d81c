package persona

import "github.com/rachitsingh/baatein/backend/internal/model/profile"

// Store exposes read-only persona retrieval for HTTP handlers.
type Store interface {
	List() []Persona
	FindByID(id int) (Persona, bool)
	ListForGender(g profile.Gender) []Persona
}

// MemoryStore implements Store over an immutable slice seeded at
// process start.
type MemoryStore struct {
	items []Persona
	byID  map[int]Persona
}

// NewMemoryStore returns a MemoryStore preloaded with the supplied personas.
func NewMemoryStore(items []Persona) *MemoryStore {
	byID := make(map[int]Persona, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}
	return &MemoryStore{items: append([]Persona(nil), items...), byID: byID}
}

// List returns the full persona roster.
func (s *MemoryStore) List() []Persona {
	return append([]Persona(nil), s.items...)
}

// FindByID looks up a persona by identifier.
func (s *MemoryStore) FindByID(id int) (Persona, bool) {
	p, ok := s.byID[id]
	return p, ok
}

// ListForGender returns the roster minus the one partner persona that
// does not fit the user's stored gender: male users never see the
// boyfriend persona, everyone else never sees the girlfriend persona.
// Unrecognized gender values deliberately take the non-male branch.
func (s *MemoryStore) ListForGender(g profile.Gender) []Persona {
	excluded := GirlfriendID
	if g == profile.GenderMale {
		excluded = BoyfriendID
	}

	out := make([]Persona, 0, len(s.items)-1)
	for _, item := range s.items {
		if item.ID == excluded {
			continue
		}
		out = append(out, item)
	}
	return out
}
