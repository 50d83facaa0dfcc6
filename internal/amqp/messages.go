package amqp

import (
	"encoding/json"
	"time"
)

// Event types carried on the expense events queue.
const (
	EventExpenseRecorded = "expense.recorded"
	EventExpenseDeleted  = "expense.deleted"
)

// ExpenseEvent is the audit record emitted after a successful mutation.
// ID and Category are only set for recorded events; deletions identify
// the row by its (name, amount) match the same way the command did.
type ExpenseEvent struct {
	Type        string    `json:"type"`
	ID          int64     `json:"id,omitempty"`
	Name        string    `json:"name"`
	AmountCents int64     `json:"amount_cents"`
	Category    string    `json:"category,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// NewExpenseRecorded creates an event for a freshly stored expense.
func NewExpenseRecorded(id int64, name string, amountCents int64, category string) *ExpenseEvent {
	return &ExpenseEvent{
		Type:        EventExpenseRecorded,
		ID:          id,
		Name:        name,
		AmountCents: amountCents,
		Category:    category,
		Timestamp:   time.Now(),
	}
}

// NewExpenseDeleted creates an event for a deleted expense.
func NewExpenseDeleted(name string, amountCents int64) *ExpenseEvent {
	return &ExpenseEvent{
		Type:        EventExpenseDeleted,
		Name:        name,
		AmountCents: amountCents,
		Timestamp:   time.Now(),
	}
}

// ToJSON converts the event to JSON bytes
func (e *ExpenseEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// ExpenseEventFromJSON creates an event from JSON bytes
func ExpenseEventFromJSON(data []byte) (*ExpenseEvent, error) {
	var ev ExpenseEvent
	if err := json.Unmarshal(data, &ev); err != nil {
		return nil, err
	}
	return &ev, nil
}
