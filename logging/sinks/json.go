package sinks

import (
	"bufio"
	"context"
	"encoding/json"
	"os"
	"sync"

	"hordebreak/server/logging"
)

// JSONSink appends events as newline-delimited JSON, flushing in batches.
type JSONSink struct {
	mu      sync.Mutex
	file    *os.File
	writer  *bufio.Writer
	pending int
	batch   int
}

// NewJSONSink opens (or creates) the NDJSON file at cfg.FilePath.
func NewJSONSink(cfg logging.JSONConfig) (*JSONSink, error) {
	file, err := os.OpenFile(cfg.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	batch := cfg.MaxBatch
	if batch <= 0 {
		batch = 32
	}
	return &JSONSink{
		file:   file,
		writer: bufio.NewWriter(file),
		batch:  batch,
	}, nil
}

// Write implements logging.Sink.
func (s *JSONSink) Write(event logging.Event) error {
	if s == nil {
		return nil
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.writer.Write(payload); err != nil {
		return err
	}
	if err := s.writer.WriteByte('\n'); err != nil {
		return err
	}
	s.pending++
	if s.pending >= s.batch {
		s.pending = 0
		return s.writer.Flush()
	}
	return nil
}

// Close implements logging.Sink.
func (s *JSONSink) Close(context.Context) error {
	if s == nil || s.file == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.writer.Flush(); err != nil {
		s.file.Close()
		return err
	}
	return s.file.Close()
}
