// Package bot parses inbound chat messages, dispatches them against the
// stores and the classifier, and formats the reply text.
package bot

import (
	"errors"
	"strings"
	"unicode"

	"shekelbot/internal/core"
)

// Command keywords. Prefix matching runs on the lowercased message, so
// the keywords are effectively case-insensitive.
const (
	kwExpense        = "הוצאה"
	kwSummary        = "סיכום"
	kwListCategories = "רשימת קטגוריות"
	kwAddCategory    = "הוספת קטגוריה"
	kwDeleteCategory = "מחיקת קטגוריה"
	// Trailing separator keeps a bare "מחיקה" from matching.
	kwDeleteExpense = "מחיקה "
)

// Kind identifies which handler processes a message.
type Kind int

const (
	KindHelp Kind = iota
	KindAddExpense
	KindSummary
	KindListCategories
	KindAddCategory
	KindDeleteCategory
	KindDeleteExpense
)

// Command is a fully parsed inbound message. Name holds the expense name
// for expense commands and the category name for category commands.
type Command struct {
	Kind   Kind
	Name   string
	Amount core.Money
}

var (
	// ErrBadFormat reports a message that does not satisfy a command's
	// token-count contract.
	ErrBadFormat = errors.New("bad command format")
	// ErrBadAmount reports an amount token that is not a valid decimal.
	ErrBadAmount = errors.New("bad amount")
)

// Parse classifies a single inbound message. It is stateless: every call
// starts from scratch with no conversation memory.
//
// Dispatch order: known keyword prefix first; otherwise digit-free text
// asks for help; otherwise the whole text is treated as an implicit
// expense entry. On a parse failure the returned Command still carries
// the Kind, so the caller can pick the matching usage hint.
func Parse(text string) (Command, error) {
	msg := strings.TrimSpace(text)
	lower := strings.ToLower(msg)

	if !hasCommandPrefix(lower) {
		if !containsDigit(msg) {
			return Command{Kind: KindHelp}, nil
		}
		msg = kwExpense + " " + msg
		lower = strings.ToLower(msg)
	}

	switch {
	case strings.HasPrefix(lower, kwExpense):
		return parseExpense(msg, KindAddExpense)
	case strings.HasPrefix(lower, kwSummary):
		return Command{Kind: KindSummary}, nil
	case strings.HasPrefix(lower, kwListCategories):
		return Command{Kind: KindListCategories}, nil
	case strings.HasPrefix(lower, kwAddCategory):
		return parseCategory(msg, KindAddCategory)
	case strings.HasPrefix(lower, kwDeleteCategory):
		return parseCategory(msg, KindDeleteCategory)
	case strings.HasPrefix(lower, kwDeleteExpense):
		return parseExpense(msg, KindDeleteExpense)
	}

	return Command{Kind: KindHelp}, nil
}

func hasCommandPrefix(lower string) bool {
	for _, kw := range []string{kwExpense, kwSummary, kwListCategories, kwAddCategory, kwDeleteCategory, kwDeleteExpense} {
		if strings.HasPrefix(lower, kw) {
			return true
		}
	}
	return false
}

func containsDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// parseExpense handles both expense entry and expense deletion: the last
// token is the amount, everything between the keyword and the amount is
// the name.
func parseExpense(msg string, kind Kind) (Command, error) {
	parts := strings.Fields(msg)
	if len(parts) < 3 {
		return Command{Kind: kind}, ErrBadFormat
	}

	cents, err := core.ParseAmountToCents(parts[len(parts)-1])
	if err != nil {
		return Command{Kind: kind}, ErrBadAmount
	}

	return Command{
		Kind:   kind,
		Name:   strings.Join(parts[1:len(parts)-1], " "),
		Amount: core.Money{Cents: cents},
	}, nil
}

// parseCategory handles the two-word category commands: every token after
// the keyword, rejoined with single spaces, is the category name.
func parseCategory(msg string, kind Kind) (Command, error) {
	parts := strings.Fields(msg)
	if len(parts) < 3 {
		return Command{Kind: kind}, ErrBadFormat
	}

	return Command{
		Kind: kind,
		Name: strings.Join(parts[2:], " "),
	}, nil
}
