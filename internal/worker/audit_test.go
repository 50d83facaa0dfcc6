package worker

import (
	"bufio"
	"os"
	"path/filepath"
	"testing"

	"shekelbot/internal/amqp"
)

func TestAuditWriter(t *testing.T) {
	t.Run("appends one line per event", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "audit.jsonl")
		w, err := NewAuditWriter(path, nil)
		if err != nil {
			t.Fatalf("NewAuditWriter() error = %v", err)
		}
		defer w.Close()

		if err := w.HandleEvent(amqp.NewExpenseRecorded(1, "קפה", 1200, "אוכל")); err != nil {
			t.Fatalf("HandleEvent() error = %v", err)
		}
		if err := w.HandleEvent(amqp.NewExpenseDeleted("קפה", 1200)); err != nil {
			t.Fatalf("HandleEvent() error = %v", err)
		}

		f, err := os.Open(path)
		if err != nil {
			t.Fatalf("open audit log: %v", err)
		}
		defer f.Close()

		var lines []string
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		if len(lines) != 2 {
			t.Fatalf("audit log has %d lines, want 2", len(lines))
		}

		first, err := amqp.ExpenseEventFromJSON([]byte(lines[0]))
		if err != nil {
			t.Fatalf("parse first record: %v", err)
		}
		if first.Type != amqp.EventExpenseRecorded || first.ID != 1 {
			t.Errorf("first record = %+v, want recorded event with id 1", first)
		}

		second, err := amqp.ExpenseEventFromJSON([]byte(lines[1]))
		if err != nil {
			t.Fatalf("parse second record: %v", err)
		}
		if second.Type != amqp.EventExpenseDeleted {
			t.Errorf("second record type = %q, want %q", second.Type, amqp.EventExpenseDeleted)
		}
	})

	t.Run("creates parent directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "dir", "audit.jsonl")
		w, err := NewAuditWriter(path, nil)
		if err != nil {
			t.Fatalf("NewAuditWriter() error = %v", err)
		}
		w.Close()

		if _, err := os.Stat(path); err != nil {
			t.Errorf("audit log file not created: %v", err)
		}
	})

	t.Run("reopening appends instead of truncating", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "audit.jsonl")

		w, err := NewAuditWriter(path, nil)
		if err != nil {
			t.Fatalf("NewAuditWriter() error = %v", err)
		}
		if err := w.HandleEvent(amqp.NewExpenseRecorded(1, "קפה", 1200, "אוכל")); err != nil {
			t.Fatalf("HandleEvent() error = %v", err)
		}
		w.Close()

		w, err = NewAuditWriter(path, nil)
		if err != nil {
			t.Fatalf("NewAuditWriter() reopen error = %v", err)
		}
		if err := w.HandleEvent(amqp.NewExpenseRecorded(2, "מונית", 4000, "תחבורה")); err != nil {
			t.Fatalf("HandleEvent() error = %v", err)
		}
		w.Close()

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read audit log: %v", err)
		}
		lines := 0
		for _, b := range data {
			if b == '\n' {
				lines++
			}
		}
		if lines != 2 {
			t.Errorf("audit log has %d lines, want 2", lines)
		}
	})
}
