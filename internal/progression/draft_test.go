package progression

import (
	"testing"

	"hordebreak/server/internal/content"
	"hordebreak/server/internal/sim"
)

func draftCatalog() []content.UpgradeDefinition {
	return content.DefaultCatalog().UpgradeCatalog()
}

func TestDraftValidity(t *testing.T) {
	catalog := draftCatalog()
	s := NewState()
	s.markOwned("whetstone")
	s.markOwned("soulreaver-pact") // locks the weapon-evolution group
	rng := sim.NewRNG(sim.DefaultSeed)

	for round := 0; round < 50; round++ {
		draft := s.BuildDraft(catalog, rng, DefaultDraftSize)
		if len(draft) == 0 {
			t.Fatalf("draft round %d came back empty", round)
		}
		seen := make(map[string]bool)
		for _, def := range draft {
			if seen[def.ID] {
				t.Fatalf("draft offered duplicate %s", def.ID)
			}
			seen[def.ID] = true
			if s.Owns(def.ID) {
				t.Fatalf("draft offered already-owned %s", def.ID)
			}
			for _, prereq := range def.Prerequisites {
				if !s.Owns(prereq) {
					t.Fatalf("draft offered %s with unmet prerequisite %s", def.ID, prereq)
				}
			}
			if def.ExclusiveGroup == "weapon-evolution" {
				t.Fatalf("draft offered %s from a locked exclusivity group", def.ID)
			}
		}
	}
}

func TestDraftDeterministicForSeed(t *testing.T) {
	catalog := draftCatalog()
	a := NewState()
	b := NewState()
	rngA := sim.NewRNG(42)
	rngB := sim.NewRNG(42)
	for round := 0; round < 10; round++ {
		draftA := a.BuildDraft(catalog, rngA, DefaultDraftSize)
		draftB := b.BuildDraft(catalog, rngB, DefaultDraftSize)
		if len(draftA) != len(draftB) {
			t.Fatalf("draft sizes diverged in round %d", round)
		}
		for i := range draftA {
			if draftA[i].ID != draftB[i].ID {
				t.Fatalf("round %d position %d: %s vs %s", round, i, draftA[i].ID, draftB[i].ID)
			}
		}
	}
}

func TestDraftAvoidsRecentOffers(t *testing.T) {
	catalog := draftCatalog()
	s := NewState()
	rng := sim.NewRNG(7)

	first := s.BuildDraft(catalog, rng, DefaultDraftSize)
	second := s.BuildDraft(catalog, rng, DefaultDraftSize)
	firstIDs := make(map[string]bool)
	for _, def := range first {
		firstIDs[def.ID] = true
	}
	for _, def := range second {
		if firstIDs[def.ID] {
			t.Fatalf("upgrade %s re-offered immediately after the previous draft", def.ID)
		}
	}
}

func TestDraftRecencyYieldsWhenPoolSmall(t *testing.T) {
	// With only three eligible upgrades, recency filtering must not starve
	// the draft.
	small := []content.UpgradeDefinition{
		{ID: "a", Rarity: content.RarityCommon},
		{ID: "b", Rarity: content.RarityCommon},
		{ID: "c", Rarity: content.RarityCommon},
	}
	s := NewState()
	rng := sim.NewRNG(3)
	s.BuildDraft(small, rng, 3)
	again := s.BuildDraft(small, rng, 3)
	if len(again) != 3 {
		t.Fatalf("small pool must still fill the draft, got %d options", len(again))
	}
}

func TestChooseConsumesPendingDraft(t *testing.T) {
	s := NewState()
	s.GrantXP(10)
	if s.PendingDrafts != 1 {
		t.Fatalf("expected a pending draft")
	}
	s.Choose(content.UpgradeDefinition{ID: "whetstone"})
	if s.PendingDrafts != 0 {
		t.Fatalf("choose must consume the pending draft")
	}
	if !s.Owns("whetstone") {
		t.Fatalf("chosen upgrade must be owned")
	}
}

func TestDiscardedOptionsRemainEligible(t *testing.T) {
	catalog := draftCatalog()
	s := NewState()
	rng := sim.NewRNG(9)
	draft := s.BuildDraft(catalog, rng, DefaultDraftSize)
	s.Choose(draft[0])

	// The discarded ids must come back once the recency window has moved on.
	discarded := map[string]bool{draft[1].ID: true, draft[2].ID: true}
	seen := false
	for round := 0; round < 30 && !seen; round++ {
		for _, def := range s.BuildDraft(catalog, rng, DefaultDraftSize) {
			if discarded[def.ID] {
				seen = true
			}
		}
	}
	if !seen {
		t.Fatalf("discarded options never reappeared in later drafts")
	}
}
