// Package telemetry defines the narrow logging and metrics surfaces the
// server components depend on, so tests can swap in fakes.
package telemetry

import (
	"log"
	"sync"
	"sync/atomic"
)

// Logger exposes the logging capabilities required by server components.
type Logger interface {
	Printf(format string, args ...any)
}

// LoggerFunc adapts functions into the Logger interface.
type LoggerFunc func(format string, args ...any)

// Printf implements Logger for LoggerFunc.
func (f LoggerFunc) Printf(format string, args ...any) {
	if f == nil {
		return
	}
	f(format, args...)
}

// WrapLogger adapts a standard library logger to the Logger interface.
func WrapLogger(logger *log.Logger) Logger {
	return &loggerAdapter{logger: logger}
}

type loggerAdapter struct {
	logger *log.Logger
}

func (l *loggerAdapter) Printf(format string, args ...any) {
	if l == nil || l.logger == nil {
		return
	}
	l.logger.Printf(format, args...)
}

// Metrics exposes the counters the hub and world report into.
type Metrics interface {
	Add(key string, delta uint64)
	Store(key string, value uint64)
}

// Counters is a concurrency-safe in-memory Metrics implementation.
type Counters struct {
	mu     sync.RWMutex
	values map[string]*atomic.Uint64
}

// NewCounters returns an empty counter set.
func NewCounters() *Counters {
	return &Counters{values: make(map[string]*atomic.Uint64)}
}

// Add implements Metrics.
func (c *Counters) Add(key string, delta uint64) {
	if c == nil {
		return
	}
	c.counter(key).Add(delta)
}

// Store implements Metrics.
func (c *Counters) Store(key string, value uint64) {
	if c == nil {
		return
	}
	c.counter(key).Store(value)
}

// Load returns the current value for key, zero when absent.
func (c *Counters) Load(key string) uint64 {
	if c == nil {
		return 0
	}
	c.mu.RLock()
	counter, ok := c.values[key]
	c.mu.RUnlock()
	if !ok {
		return 0
	}
	return counter.Load()
}

// Snapshot copies every counter into a plain map.
func (c *Counters) Snapshot() map[string]uint64 {
	if c == nil {
		return nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	snapshot := make(map[string]uint64, len(c.values))
	for key, counter := range c.values {
		snapshot[key] = counter.Load()
	}
	return snapshot
}

func (c *Counters) counter(key string) *atomic.Uint64 {
	c.mu.RLock()
	counter, ok := c.values[key]
	c.mu.RUnlock()
	if ok {
		return counter
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if counter, ok = c.values[key]; ok {
		return counter
	}
	counter = &atomic.Uint64{}
	c.values[key] = counter
	return counter
}

// NopMetrics discards every report.
func NopMetrics() Metrics {
	return nopMetrics{}
}

type nopMetrics struct{}

func (nopMetrics) Add(string, uint64)   {}
func (nopMetrics) Store(string, uint64) {}
