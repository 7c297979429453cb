package sinks

import (
	"context"
	"sync"

	"hordebreak/server/logging"
)

// MemorySink retains events in memory for test assertions.
type MemorySink struct {
	mu     sync.Mutex
	events []logging.Event
}

// NewMemorySink returns an empty in-memory sink.
func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

// Write implements logging.Sink.
func (s *MemorySink) Write(event logging.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

// Close implements logging.Sink.
func (s *MemorySink) Close(context.Context) error {
	return nil
}

// Events returns a copy of everything written so far.
func (s *MemorySink) Events() []logging.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]logging.Event(nil), s.events...)
}
