// Package progression tracks experience, leveling, and upgrade drafting for
// a single run.
package progression

import "math"

const (
	// Level thresholds grow by a fixed multiplicative+additive rule.
	thresholdGrowth   = 1.35
	thresholdAddition = 2
	initialThreshold  = 10
)

// State is the run-long progression record.
type State struct {
	Level    int
	XP       int
	XPToNext int

	// PendingDrafts counts level-ups whose draft has not been served yet.
	// Multiple level-ups from one large pickup stack drafts back to back.
	PendingDrafts int

	owned    map[string]bool
	ownedIDs []string
	recency  recencyRing
}

// NewState starts a run at level 1.
func NewState() *State {
	return &State{
		Level:    1,
		XPToNext: initialThreshold,
		owned:    make(map[string]bool),
	}
}

// NextThreshold applies the growth rule to the current threshold.
func NextThreshold(current int) int {
	return int(math.Round(float64(current)*thresholdGrowth + thresholdAddition))
}

// GrantXP accumulates experience and returns the number of levels gained.
// Excess experience carries over across thresholds.
func (s *State) GrantXP(amount int) int {
	if s == nil || amount <= 0 {
		return 0
	}
	s.XP += amount
	levels := 0
	for s.XP >= s.XPToNext {
		s.XP -= s.XPToNext
		s.XPToNext = NextThreshold(s.XPToNext)
		s.Level++
		s.PendingDrafts++
		levels++
	}
	return levels
}

// Owns reports whether the upgrade has been chosen this run.
func (s *State) Owns(id string) bool {
	return s != nil && s.owned[id]
}

// Owned returns the chosen upgrade ids in pick order.
func (s *State) Owned() []string {
	if s == nil {
		return nil
	}
	return s.ownedIDs
}

func (s *State) markOwned(id string) {
	if s == nil || id == "" || s.owned[id] {
		return
	}
	s.owned[id] = true
	s.ownedIDs = append(s.ownedIDs, id)
}

// recencyRing is a bounded ring of recently offered upgrade ids, used to
// avoid immediately re-offering the same candidates draft after draft.
type recencyRing struct {
	ids  [recencyCap]string
	next int
	size int
}

// recencyCap holds the last two drafts' offers at the default draft size.
const recencyCap = 6

func (r *recencyRing) remember(id string) {
	if id == "" {
		return
	}
	r.ids[r.next] = id
	r.next = (r.next + 1) % recencyCap
	if r.size < recencyCap {
		r.size++
	}
}

func (r *recencyRing) contains(id string) bool {
	for i := 0; i < r.size; i++ {
		if r.ids[i] == id {
			return true
		}
	}
	return false
}
