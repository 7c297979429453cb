package logging

import (
	"context"
	"log"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

// Clock abstracts wall time so tests can pin event timestamps.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function into a Clock.
type ClockFunc func() time.Time

// Now implements Clock.
func (f ClockFunc) Now() time.Time {
	return f()
}

// Sink consumes routed events.
type Sink interface {
	Write(Event) error
	Close(context.Context) error
}

// NamedSink pairs a sink with its registry name.
type NamedSink struct {
	Name string
	Sink Sink
}

// Router fans events out to sinks through a bounded queue. Publishing never
// blocks: when the queue is full the event is counted as dropped.
type Router struct {
	cfg         Config
	queue       chan Event
	sinks       []NamedSink
	clock       Clock
	fallback    *log.Logger
	cancel      context.CancelFunc
	closed      atomic.Bool
	minSeverity Severity
	fields      map[string]any
	wg          sync.WaitGroup

	eventsTotal  atomic.Uint64
	droppedTotal atomic.Uint64
	lastDropLog  atomic.Int64
}

// NewRouter starts a router dispatching to the provided sinks.
func NewRouter(clock Clock, cfg Config, sinks []NamedSink) *Router {
	if clock == nil {
		clock = ClockFunc(time.Now)
	}
	bufferSize := cfg.BufferSize
	if bufferSize <= 0 {
		bufferSize = 512
	}
	ctx, cancel := context.WithCancel(context.Background())
	r := &Router{
		cfg:         cfg,
		queue:       make(chan Event, bufferSize),
		sinks:       sinks,
		clock:       clock,
		fallback:    log.New(os.Stderr, "[logging] ", log.LstdFlags),
		cancel:      cancel,
		minSeverity: cfg.MinimumSeverity,
		fields:      cfg.CloneFields(),
	}
	r.wg.Add(1)
	go r.dispatch(ctx)
	return r
}

// Publish implements Publisher.
func (r *Router) Publish(_ context.Context, event Event) {
	if r == nil || r.closed.Load() {
		return
	}
	if event.Severity < r.minSeverity {
		return
	}
	if event.Time.IsZero() {
		event.Time = r.clock.Now()
	}
	if len(r.fields) > 0 {
		if event.Extra == nil {
			event.Extra = make(map[string]any, len(r.fields))
		}
		for k, v := range r.fields {
			if _, exists := event.Extra[k]; !exists {
				event.Extra[k] = v
			}
		}
	}
	select {
	case r.queue <- event:
		r.eventsTotal.Add(1)
	default:
		r.recordDrop()
	}
}

// Stats reports routed and dropped event counts.
func (r *Router) Stats() (events, dropped uint64) {
	if r == nil {
		return 0, 0
	}
	return r.eventsTotal.Load(), r.droppedTotal.Load()
}

// Close flushes the queue and closes every sink.
func (r *Router) Close(ctx context.Context) error {
	if r == nil || !r.closed.CompareAndSwap(false, true) {
		return nil
	}
	close(r.queue)
	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		r.cancel()
		<-done
	}
	var firstErr error
	for _, named := range r.sinks {
		if err := named.Sink.Close(ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (r *Router) dispatch(ctx context.Context) {
	defer r.wg.Done()
	for {
		select {
		case event, ok := <-r.queue:
			if !ok {
				return
			}
			r.write(event)
		case <-ctx.Done():
			// Drain whatever is already queued, then stop.
			for {
				select {
				case event, ok := <-r.queue:
					if !ok {
						return
					}
					r.write(event)
				default:
					return
				}
			}
		}
	}
}

func (r *Router) write(event Event) {
	for _, named := range r.sinks {
		if err := named.Sink.Write(event); err != nil {
			r.fallback.Printf("sink %s rejected event %s: %v", named.Name, event.Type, err)
		}
	}
}

func (r *Router) recordDrop() {
	dropped := r.droppedTotal.Add(1)
	interval := r.cfg.DropWarnInterval
	if interval <= 0 {
		return
	}
	now := r.clock.Now().UnixNano()
	last := r.lastDropLog.Load()
	if now-last >= int64(interval) && r.lastDropLog.CompareAndSwap(last, now) {
		r.fallback.Printf("event queue saturated, %d events dropped so far", dropped)
	}
}
