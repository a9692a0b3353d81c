package persona_test

import (
	"testing"

	"github.com/rachitsingh/baatein/backend/internal/model/persona"
	"github.com/rachitsingh/baatein/backend/internal/model/profile"
)

func TestStoreFindByID(t *testing.T) {
	store := persona.NewMemoryStore(persona.Seed())

	p, ok := store.FindByID(3)
	if !ok {
		t.Fatal("expected persona 3 to exist")
	}
	if p.Name != "Rahul" {
		t.Fatalf("unexpected persona name: got %s", p.Name)
	}

	if _, ok := store.FindByID(99); ok {
		t.Fatal("expected persona 99 to be missing")
	}
}

func TestListForGenderMaleHidesBoyfriend(t *testing.T) {
	store := persona.NewMemoryStore(persona.Seed())

	visible := store.ListForGender(profile.GenderMale)
	if len(visible) != len(persona.Seed())-1 {
		t.Fatalf("expected exactly one persona hidden, got %d of %d", len(visible), len(persona.Seed()))
	}
	for _, p := range visible {
		if p.ID == persona.BoyfriendID {
			t.Fatal("male user should not see the boyfriend persona")
		}
	}
}

func TestListForGenderOthersHideGirlfriend(t *testing.T) {
	store := persona.NewMemoryStore(persona.Seed())

	// Unrecognized values take the non-male branch by design.
	for _, g := range []profile.Gender{profile.GenderFemale, "", "unknown"} {
		visible := store.ListForGender(g)
		if len(visible) != len(persona.Seed())-1 {
			t.Fatalf("gender %q: expected exactly one persona hidden, got %d", g, len(visible))
		}
		for _, p := range visible {
			if p.ID == persona.GirlfriendID {
				t.Fatalf("gender %q should not see the girlfriend persona", g)
			}
		}
	}
}

func TestCardOmitsTemplate(t *testing.T) {
	store := persona.NewMemoryStore(persona.Seed())

	p, _ := store.FindByID(persona.GirlfriendID)
	card := p.Card()
	if card.ID != p.ID || card.Name != p.Name || card.Tagline != p.Tagline {
		t.Fatal("card lost persona metadata")
	}
}
