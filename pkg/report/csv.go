package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"

	"ssh-sweep/pkg/model"
)

// csvHeader is the fixed record schema, in order.
var csvHeader = []string{"timestamp", "host", "user", "port", "status", "message"}

// CSVSink appends one record per result to a file. encoding/csv does the
// quoting, so quotes and commas inside messages survive a round trip.
// Writes are mutex-serialized because results arrive from concurrent
// workers.
type CSVSink struct {
	mu sync.Mutex
	f  *os.File
	w  *csv.Writer
}

// NewCSVSink creates (or truncates) path and writes the header row. Called
// only after the host list has loaded, so a failed run precondition leaves
// no output file behind.
func NewCSVSink(path string) (*CSVSink, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create output: %w", err)
	}
	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		f.Close()
		return nil, fmt.Errorf("write header: %w", err)
	}
	return &CSVSink{f: f, w: w}, nil
}

// Write appends one result record and flushes it to disk.
func (s *CSVSink) Write(r model.Result) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	record := []string{
		r.Timestamp.Format(time.RFC3339),
		r.Host,
		r.User,
		strconv.Itoa(r.Port),
		string(r.Status),
		r.Message,
	}
	if err := s.w.Write(record); err != nil {
		return err
	}
	s.w.Flush()
	return s.w.Error()
}

// Close flushes buffered records and closes the file.
func (s *CSVSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.w.Flush()
	if err := s.w.Error(); err != nil {
		s.f.Close()
		return err
	}
	return s.f.Close()
}
