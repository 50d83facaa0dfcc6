package core

import (
	"errors"
	"testing"
)

func TestParseAmountToCents(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{"integer", "12", 1200, false},
		{"one decimal", "12.5", 1250, false},
		{"two decimals", "12.34", 1234, false},
		{"comma separator", "12,34", 1234, false},
		{"third decimal rounds up", "12.346", 1235, false},
		{"third decimal rounds down", "12.344", 1234, false},
		{"negative", "-3", -300, false},
		{"negative with decimals", "-3.75", -375, false},
		{"explicit plus", "+7.25", 725, false},
		{"leading dot", ".5", 50, false},
		{"trailing dot", "12.", 1200, false},
		{"zero", "0", 0, false},
		{"surrounding whitespace", " 42.10 ", 4210, false},
		{"empty", "", 0, true},
		{"lone dot", ".", 0, true},
		{"lone minus", "-", 0, true},
		{"lone plus", "+", 0, true},
		{"sign with dot only", "-.", 0, true},
		{"not a number", "abc", 0, true},
		{"digits with letters", "12a", 0, true},
		{"two separators", "1.2.3", 0, true},
		{"exponent", "1e5", 0, true},
		{"infinity", "inf", 0, true},
		{"overflow", "92233720368547759", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmountToCents(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseAmountToCents(%q) error = nil, want error", tt.input)
				}
				if !errors.Is(err, ErrInvalidAmount) {
					t.Errorf("ParseAmountToCents(%q) error = %v, want ErrInvalidAmount", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAmountToCents(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseAmountToCents(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestMoney_Shekels(t *testing.T) {
	tests := []struct {
		name  string
		cents int64
		want  string
	}{
		{"round amount", 1200, "₪12.00"},
		{"with cents", 1250, "₪12.50"},
		{"single cent", 1, "₪0.01"},
		{"zero", 0, "₪0.00"},
		{"negative", -1250, "₪-12.50"},
		{"large", 123456789, "₪1234567.89"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Money{Cents: tt.cents}.Shekels()
			if got != tt.want {
				t.Errorf("Money{%d}.Shekels() = %q, want %q", tt.cents, got, tt.want)
			}
		})
	}
}

func TestExpense_Validate(t *testing.T) {
	tests := []struct {
		name    string
		expense Expense
		wantErr error
	}{
		{"valid", Expense{Name: "קפה", Amount: Money{Cents: 1200}, Category: "אוכל"}, nil},
		{"empty name", Expense{Name: "  ", Category: "אוכל"}, ErrEmptyName},
		{"empty category", Expense{Name: "קפה", Category: ""}, ErrEmptyCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.expense.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
