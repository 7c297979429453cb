// Package sinks provides the bundled logging sink implementations.
package sinks

import (
	"context"
	"fmt"
	"io"
	"strings"

	charmlog "github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"hordebreak/server/logging"
)

// ConsoleSink renders events as human-readable console lines.
type ConsoleSink struct {
	logger *charmlog.Logger
}

// NewConsoleSink writes formatted events to w.
func NewConsoleSink(w io.Writer, cfg logging.ConsoleConfig) *ConsoleSink {
	logger := charmlog.NewWithOptions(w, charmlog.Options{
		ReportTimestamp: true,
	})
	if !cfg.UseColor {
		logger.SetColorProfile(termenv.Ascii)
	}
	return &ConsoleSink{logger: logger}
}

// Write implements logging.Sink.
func (s *ConsoleSink) Write(event logging.Event) error {
	if s == nil || s.logger == nil {
		return nil
	}
	keyvals := []any{
		"step", event.Step,
		"actor", formatEntity(event.Actor),
	}
	if targets := formatTargets(event.Targets); targets != "" {
		keyvals = append(keyvals, "targets", targets)
	}
	if event.Payload != nil {
		keyvals = append(keyvals, "payload", event.Payload)
	}
	message := string(event.Type)
	switch event.Severity {
	case logging.SeverityDebug:
		s.logger.Debug(message, keyvals...)
	case logging.SeverityWarn:
		s.logger.Warn(message, keyvals...)
	case logging.SeverityError:
		s.logger.Error(message, keyvals...)
	default:
		s.logger.Info(message, keyvals...)
	}
	return nil
}

// Close implements logging.Sink.
func (s *ConsoleSink) Close(context.Context) error {
	return nil
}

func formatEntity(ref logging.EntityRef) string {
	if ref.ID == "" {
		return string(ref.Kind)
	}
	if ref.Kind == "" {
		return ref.ID
	}
	return fmt.Sprintf("%s:%s", ref.Kind, ref.ID)
}

func formatTargets(targets []logging.EntityRef) string {
	if len(targets) == 0 {
		return ""
	}
	parts := make([]string, 0, len(targets))
	for _, target := range targets {
		parts = append(parts, formatEntity(target))
	}
	return strings.Join(parts, ",")
}
