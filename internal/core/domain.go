package core

import (
	"errors"
	"strings"
	"time"
)

type (
	Money struct {
		Cents int64
	}

	Category struct {
		ID   int64
		Name string
	}

	// Expense carries the category as a text copy taken at classification
	// time. Deleting a category never touches existing expense rows.
	Expense struct {
		ID        int64
		Name      string
		Amount    Money
		Category  string
		CreatedAt time.Time
	}

	// CategoryTotal is one aggregation bucket of a monthly summary.
	CategoryTotal struct {
		Category string
		Total    Money
	}

	MonthSummary struct {
		Year   int
		Month  time.Month
		Totals []CategoryTotal
	}
)

var (
	ErrInvalidAmount = errors.New("invalid amount")
	ErrEmptyName     = errors.New("empty name")
	ErrEmptyCategory = errors.New("empty category")

	ErrCategoryExists   = errors.New("category already exists")
	ErrCategoryNotFound = errors.New("category not found")
	ErrExpenseNotFound  = errors.New("expense not found")
)

func (e Expense) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(e.Category) == "" {
		return ErrEmptyCategory
	}
	return nil
}

// Empty reports whether the summary has no buckets at all.
func (s MonthSummary) Empty() bool {
	return len(s.Totals) == 0
}
