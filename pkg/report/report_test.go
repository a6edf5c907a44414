package report

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"ssh-sweep/pkg/model"
	"ssh-sweep/pkg/runner"
)

func TestRenderTableListsEveryKind(t *testing.T) {
	snap := runner.Snapshot{
		Counts: map[model.ErrorKind]int{model.KindOK: 1},
		Results: []model.Result{
			{Host: "web1", Port: 22, Status: model.KindOK, Message: "OK"},
		},
		Total: 1,
	}
	var buf bytes.Buffer
	RenderTable(&buf, snap)
	out := buf.String()

	for _, kind := range model.Kinds {
		if !strings.Contains(out, string(kind)) {
			t.Errorf("summary missing kind %s:\n%s", kind, out)
		}
	}
	for _, col := range []string{"HOST", "PORT", "STATUS", "MESSAGE"} {
		if !strings.Contains(out, col) {
			t.Errorf("header missing column %s", col)
		}
	}
}

func TestCSVSinkRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	sink, err := NewCSVSink(path)
	if err != nil {
		t.Fatalf("NewCSVSink: %v", err)
	}

	msg := `He said "hi", twice`
	res := model.Result{
		Timestamp: time.Date(2026, 8, 23, 12, 0, 0, 0, time.FixedZone("", 2*3600)),
		Host:      "web1",
		User:      "ops",
		Port:      2222,
		Status:    model.KindUnknown,
		Message:   msg,
	}
	if err := sink.Write(res); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := sink.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want header + 1", len(records))
	}
	row := records[1]
	if row[1] != "web1" || row[2] != "ops" || row[3] != "2222" || row[4] != "UNKNOWN" {
		t.Errorf("unexpected row: %v", row)
	}
	if row[5] != msg {
		t.Errorf("message did not round-trip: %q", row[5])
	}
	if _, err := time.Parse(time.RFC3339, row[0]); err != nil {
		t.Errorf("timestamp %q not RFC3339: %v", row[0], err)
	}
}

func TestCSVSinkConcurrentWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	sink, err := NewCSVSink(path)
	if err != nil {
		t.Fatal(err)
	}
	done := make(chan struct{})
	const writers, each = 8, 25
	for w := 0; w < writers; w++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for i := 0; i < each; i++ {
				_ = sink.Write(model.Result{
					Timestamp: time.Now(),
					Host:      "h",
					Port:      22,
					Status:    model.KindOK,
					Message:   "ok, fine",
				})
			}
		}()
	}
	for w := 0; w < writers; w++ {
		<-done
	}
	if err := sink.Close(); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("interleaved or truncated records: %v", err)
	}
	if len(records) != writers*each+1 {
		t.Errorf("got %d records, want %d", len(records), writers*each+1)
	}
}
