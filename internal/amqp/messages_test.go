package amqp

import (
	"testing"
	"time"
)

func TestNewExpenseRecorded(t *testing.T) {
	ev := NewExpenseRecorded(42, "פלאפל", 2550, "אוכל")

	if ev.Type != EventExpenseRecorded {
		t.Errorf("NewExpenseRecorded() Type = %v, want %v", ev.Type, EventExpenseRecorded)
	}
	if ev.ID != 42 {
		t.Errorf("NewExpenseRecorded() ID = %v, want 42", ev.ID)
	}
	if ev.Name != "פלאפל" {
		t.Errorf("NewExpenseRecorded() Name = %v, want פלאפל", ev.Name)
	}
	if ev.AmountCents != 2550 {
		t.Errorf("NewExpenseRecorded() AmountCents = %v, want 2550", ev.AmountCents)
	}
	if ev.Category != "אוכל" {
		t.Errorf("NewExpenseRecorded() Category = %v, want אוכל", ev.Category)
	}
	if ev.Timestamp.IsZero() {
		t.Error("NewExpenseRecorded() Timestamp should not be zero")
	}
	if time.Since(ev.Timestamp) > time.Second {
		t.Error("NewExpenseRecorded() Timestamp should be recent")
	}
}

func TestNewExpenseDeleted(t *testing.T) {
	ev := NewExpenseDeleted("מונית", 4000)

	if ev.Type != EventExpenseDeleted {
		t.Errorf("NewExpenseDeleted() Type = %v, want %v", ev.Type, EventExpenseDeleted)
	}
	if ev.ID != 0 {
		t.Errorf("NewExpenseDeleted() ID = %v, want 0", ev.ID)
	}
	if ev.Category != "" {
		t.Errorf("NewExpenseDeleted() Category = %v, want empty", ev.Category)
	}
	if ev.Name != "מונית" {
		t.Errorf("NewExpenseDeleted() Name = %v, want מונית", ev.Name)
	}
	if ev.AmountCents != 4000 {
		t.Errorf("NewExpenseDeleted() AmountCents = %v, want 4000", ev.AmountCents)
	}
}

func TestExpenseEvent_JSON(t *testing.T) {
	timestamp := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	ev := &ExpenseEvent{
		Type:        EventExpenseRecorded,
		ID:          7,
		Name:        "קפה",
		AmountCents: 1200,
		Category:    "אוכל",
		Timestamp:   timestamp,
	}

	jsonBytes, err := ev.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}

	parsed, err := ExpenseEventFromJSON(jsonBytes)
	if err != nil {
		t.Fatalf("ExpenseEventFromJSON() error = %v", err)
	}

	if parsed.Type != ev.Type {
		t.Errorf("Parsed Type = %v, want %v", parsed.Type, ev.Type)
	}
	if parsed.ID != ev.ID {
		t.Errorf("Parsed ID = %v, want %v", parsed.ID, ev.ID)
	}
	if parsed.Name != ev.Name {
		t.Errorf("Parsed Name = %v, want %v", parsed.Name, ev.Name)
	}
	if parsed.AmountCents != ev.AmountCents {
		t.Errorf("Parsed AmountCents = %v, want %v", parsed.AmountCents, ev.AmountCents)
	}
	if !parsed.Timestamp.Equal(ev.Timestamp) {
		t.Errorf("Parsed Timestamp = %v, want %v", parsed.Timestamp, ev.Timestamp)
	}
}

func TestExpenseEventFromJSON_Invalid(t *testing.T) {
	invalidJSON := []byte(`{"amount_cents": "not_a_number"}`)

	_, err := ExpenseEventFromJSON(invalidJSON)
	if err == nil {
		t.Error("ExpenseEventFromJSON() should fail with invalid JSON")
	}
}
