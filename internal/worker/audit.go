// Package worker consumes expense events and appends them to the audit log.
package worker

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"shekelbot/internal/amqp"
	applog "shekelbot/internal/log"
)

// AuditWriter appends one JSON line per expense event to a log file.
// Lines are written whole under a mutex, so concurrent handlers cannot
// interleave records.
type AuditWriter struct {
	mu     sync.Mutex
	file   *os.File
	logger *applog.Logger
}

func NewAuditWriter(path string, logger *applog.Logger) (*AuditWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create audit directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open audit log: %w", err)
	}

	if logger == nil {
		logger = applog.New(applog.DefaultConfig()).WithComponent(applog.ComponentWorker)
	}

	return &AuditWriter{file: file, logger: logger}, nil
}

// HandleEvent appends a single event. Returning an error requeues the
// delivery, so a full disk does not silently drop audit records.
func (w *AuditWriter) HandleEvent(ev *amqp.ExpenseEvent) error {
	line, err := ev.ToJSON()
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if _, err := w.file.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("append audit record: %w", err)
	}

	w.logger.Info("Audit record written",
		"type", ev.Type,
		applog.FieldExpenseName, ev.Name,
		applog.FieldAmountCents, ev.AmountCents)

	return nil
}

func (w *AuditWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.file.Close()
}
