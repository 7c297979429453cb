package progression

import (
	"hordebreak/server/internal/content"
	"hordebreak/server/internal/sim"
)

// DefaultDraftSize is the number of options offered per draft.
const DefaultDraftSize = 3

// BuildDraft assembles one upgrade draft: candidates the player does not own,
// whose prerequisites are all owned, and whose exclusivity group is not
// locked by an owned sibling; weighted by rarity and drawn without
// replacement from the RNG stream. Recently offered ids are skipped unless
// that would starve the draft.
func (s *State) BuildDraft(catalog []content.UpgradeDefinition, rng *sim.RNG, count int) []content.UpgradeDefinition {
	if s == nil || rng == nil {
		return nil
	}
	if count <= 0 {
		count = DefaultDraftSize
	}

	lockedGroups := make(map[string]bool)
	for _, def := range catalog {
		if def.ExclusiveGroup != "" && s.Owns(def.ID) {
			lockedGroups[def.ExclusiveGroup] = true
		}
	}

	eligible := make([]content.UpgradeDefinition, 0, len(catalog))
	for _, def := range catalog {
		if s.eligible(def, lockedGroups) {
			eligible = append(eligible, def)
		}
	}

	// Prefer candidates outside the recency window; fall back to the full
	// eligible pool when filtering would leave the draft short.
	fresh := make([]content.UpgradeDefinition, 0, len(eligible))
	for _, def := range eligible {
		if !s.recency.contains(def.ID) {
			fresh = append(fresh, def)
		}
	}
	pool := fresh
	if len(pool) < count {
		pool = eligible
	}

	offered := weightedSample(pool, rng, count)
	for _, def := range offered {
		s.recency.remember(def.ID)
	}
	return offered
}

// Choose records the selected upgrade. The discarded options remain eligible
// for future drafts unless a prerequisite or exclusivity rule says otherwise.
func (s *State) Choose(def content.UpgradeDefinition) {
	if s == nil {
		return
	}
	s.markOwned(def.ID)
	if s.PendingDrafts > 0 {
		s.PendingDrafts--
	}
}

func (s *State) eligible(def content.UpgradeDefinition, lockedGroups map[string]bool) bool {
	if s.Owns(def.ID) {
		return false
	}
	for _, prereq := range def.Prerequisites {
		if !s.Owns(prereq) {
			return false
		}
	}
	if def.ExclusiveGroup != "" && lockedGroups[def.ExclusiveGroup] {
		return false
	}
	return true
}

// weightedSample draws up to count distinct entries, each draw weighted by
// rarity, removing the winner before the next draw.
func weightedSample(pool []content.UpgradeDefinition, rng *sim.RNG, count int) []content.UpgradeDefinition {
	if len(pool) == 0 {
		return nil
	}
	remaining := make([]content.UpgradeDefinition, len(pool))
	copy(remaining, pool)

	if count > len(remaining) {
		count = len(remaining)
	}
	picked := make([]content.UpgradeDefinition, 0, count)
	for len(picked) < count {
		total := 0.0
		for _, def := range remaining {
			total += def.Rarity.Weight()
		}
		if total <= 0 {
			break
		}
		roll := rng.Next() * total
		index := len(remaining) - 1
		for i, def := range remaining {
			roll -= def.Rarity.Weight()
			if roll < 0 {
				index = i
				break
			}
		}
		picked = append(picked, remaining[index])
		remaining = append(remaining[:index], remaining[index+1:]...)
	}
	return picked
}
