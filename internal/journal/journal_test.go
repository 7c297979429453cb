package journal

import "testing"

func TestJournalDrainClearsBuffer(t *testing.T) {
	j := New(8)
	j.Append(Event{Type: EventLevelUp, Value: 2})
	j.Append(Event{Type: EventDamageApplied, Amount: 5})

	events := j.Drain()
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].Type != EventLevelUp || events[1].Type != EventDamageApplied {
		t.Fatalf("drain must preserve append order: %+v", events)
	}
	if j.Len() != 0 {
		t.Fatalf("drain must clear the buffer")
	}
	if again := j.Drain(); again != nil {
		t.Fatalf("second drain should return nil, got %v", again)
	}
}

func TestJournalDropsOldestWhenFull(t *testing.T) {
	j := New(3)
	for i := 0; i < 5; i++ {
		j.Append(Event{Type: EventDamageApplied, Amount: float64(i)})
	}
	if j.Dropped() != 2 {
		t.Fatalf("expected 2 dropped events, got %d", j.Dropped())
	}
	events := j.Drain()
	if len(events) != 3 {
		t.Fatalf("expected 3 retained events, got %d", len(events))
	}
	if events[0].Amount != 2 || events[2].Amount != 4 {
		t.Fatalf("oldest entries should be dropped first: %+v", events)
	}
}
