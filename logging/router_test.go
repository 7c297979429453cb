package logging_test

import (
	"context"
	"testing"
	"time"

	"hordebreak/server/logging"
	"hordebreak/server/logging/sinks"
)

func fixedClock(t time.Time) logging.Clock {
	return logging.ClockFunc(func() time.Time { return t })
}

func TestRouterDeliversToSinks(t *testing.T) {
	sink := sinks.NewMemorySink()
	cfg := logging.DefaultConfig()
	router := logging.NewRouter(fixedClock(time.Unix(100, 0)), cfg, []logging.NamedSink{{Name: "memory", Sink: sink}})

	router.Publish(context.Background(), logging.Event{
		Type:     "combat.damage",
		Step:     7,
		Severity: logging.SeverityInfo,
	})
	if err := router.Close(context.Background()); err != nil {
		t.Fatalf("close router: %v", err)
	}

	events := sink.Events()
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Step != 7 {
		t.Fatalf("expected step 7, got %d", events[0].Step)
	}
	if !events[0].Time.Equal(time.Unix(100, 0)) {
		t.Fatalf("expected clock timestamp, got %v", events[0].Time)
	}
}

func TestRouterFiltersBySeverity(t *testing.T) {
	sink := sinks.NewMemorySink()
	cfg := logging.DefaultConfig()
	cfg.MinimumSeverity = logging.SeverityWarn
	router := logging.NewRouter(nil, cfg, []logging.NamedSink{{Name: "memory", Sink: sink}})

	router.Publish(context.Background(), logging.Event{Type: "a", Severity: logging.SeverityInfo})
	router.Publish(context.Background(), logging.Event{Type: "b", Severity: logging.SeverityError})
	if err := router.Close(context.Background()); err != nil {
		t.Fatalf("close router: %v", err)
	}

	events := sink.Events()
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Type != "b" {
		t.Fatalf("expected the error event to pass the filter, got %q", events[0].Type)
	}
}

func TestRouterAttachesStaticFields(t *testing.T) {
	sink := sinks.NewMemorySink()
	cfg := logging.DefaultConfig()
	cfg.Fields = map[string]any{"run": "test-run"}
	router := logging.NewRouter(nil, cfg, []logging.NamedSink{{Name: "memory", Sink: sink}})

	router.Publish(context.Background(), logging.Event{Type: "a", Severity: logging.SeverityInfo})
	if err := router.Close(context.Background()); err != nil {
		t.Fatalf("close router: %v", err)
	}

	events := sink.Events()
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Extra["run"] != "test-run" {
		t.Fatalf("expected static field to be merged, got %v", events[0].Extra)
	}
}

func TestRouterCountsDropsWhenSaturated(t *testing.T) {
	// A closed router never dispatches, so fill the queue directly by using
	// a tiny buffer and a sink that is never drained before Close.
	cfg := logging.DefaultConfig()
	cfg.BufferSize = 1
	cfg.DropWarnInterval = 0
	block := make(chan struct{})
	sink := blockingSink{release: block}
	router := logging.NewRouter(nil, cfg, []logging.NamedSink{{Name: "slow", Sink: sink}})

	for i := 0; i < 64; i++ {
		router.Publish(context.Background(), logging.Event{Type: "x", Severity: logging.SeverityInfo})
	}
	close(block)
	if err := router.Close(context.Background()); err != nil {
		t.Fatalf("close router: %v", err)
	}

	events, dropped := router.Stats()
	if events+dropped != 64 {
		t.Fatalf("expected 64 accounted events, got %d routed + %d dropped", events, dropped)
	}
	if dropped == 0 {
		t.Fatalf("expected saturation drops with buffer size 1")
	}
}

type blockingSink struct {
	release chan struct{}
}

func (s blockingSink) Write(logging.Event) error {
	<-s.release
	return nil
}

func (s blockingSink) Close(context.Context) error { return nil }
