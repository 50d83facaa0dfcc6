package bot

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"shekelbot/internal/classify"
	"shekelbot/internal/core"
)

// Store is the persistence surface the dispatcher needs.
type Store interface {
	ListCategories(ctx context.Context) ([]core.Category, error)
	AddCategory(ctx context.Context, name string) error
	DeleteCategory(ctx context.Context, name string) error
	AddExpense(ctx context.Context, e core.Expense) (core.Expense, error)
	SumByCategory(ctx context.Context, year int, month time.Month) (core.MonthSummary, error)
	DeleteLatestMatching(ctx context.Context, name string, amount core.Money) error
}

// EventPublisher emits audit events after successful mutations. A nil
// publisher disables events; a publish failure never fails the command.
type EventPublisher interface {
	PublishExpenseRecorded(ctx context.Context, id int64, name string, amountCents int64, category string) error
	PublishExpenseDeleted(ctx context.Context, name string, amountCents int64) error
}

// Handler dispatches parsed commands. All dependencies are injected;
// the handler keeps no request-scoped state between messages.
type Handler struct {
	store      Store
	classifier classify.Classifier
	events     EventPublisher
}

func NewHandler(store Store, classifier classify.Classifier, events EventPublisher) *Handler {
	return &Handler{
		store:      store,
		classifier: classifier,
		events:     events,
	}
}

// Handle processes one inbound message to completion and returns the
// reply text. Every failure is converted to a literal reply here; nothing
// propagates to the transport as an error.
func (h *Handler) Handle(ctx context.Context, text string) string {
	cmd, err := Parse(text)
	if err != nil {
		return parseErrorReply(cmd.Kind, err)
	}

	switch cmd.Kind {
	case KindAddExpense:
		return h.addExpense(ctx, cmd)
	case KindSummary:
		return h.summary(ctx)
	case KindListCategories:
		return h.listCategories(ctx)
	case KindAddCategory:
		return h.addCategory(ctx, cmd.Name)
	case KindDeleteCategory:
		return h.deleteCategory(ctx, cmd.Name)
	case KindDeleteExpense:
		return h.deleteExpense(ctx, cmd)
	default:
		return helpReply()
	}
}

func parseErrorReply(kind Kind, err error) string {
	badAmount := errors.Is(err, ErrBadAmount)
	switch kind {
	case KindAddExpense:
		if badAmount {
			return expenseAmountReply()
		}
		return expenseFormatReply()
	case KindAddCategory:
		return addCategoryFormatReply()
	case KindDeleteCategory:
		return deleteCategoryFormatReply()
	case KindDeleteExpense:
		if badAmount {
			return deleteExpenseAmountReply()
		}
		return deleteExpenseFormatReply()
	default:
		return helpReply()
	}
}

func (h *Handler) addExpense(ctx context.Context, cmd Command) string {
	categories, err := h.store.ListCategories(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "List categories failed", "error", err)
		return saveFailedReply()
	}
	if len(categories) == 0 {
		return noCategoriesReply()
	}

	labels := make([]string, len(categories))
	for i, c := range categories {
		labels[i] = c.Name
	}

	category, err := h.classifier.Classify(ctx, cmd.Name, labels)
	if err != nil {
		slog.ErrorContext(ctx, "Classification failed", "error", err, "name", cmd.Name)
		return classifyFailedReply()
	}

	saved, err := h.store.AddExpense(ctx, core.Expense{
		Name:     cmd.Name,
		Amount:   cmd.Amount,
		Category: category,
	})
	if err != nil {
		slog.ErrorContext(ctx, "Save expense failed", "error", err, "name", cmd.Name)
		return saveFailedReply()
	}

	h.publishRecorded(ctx, saved.ID, cmd, category)

	return expenseSavedReply(cmd.Name, cmd.Amount, category)
}

func (h *Handler) summary(ctx context.Context) string {
	now := time.Now()
	summary, err := h.store.SumByCategory(ctx, now.Year(), now.Month())
	if err != nil {
		slog.ErrorContext(ctx, "Month summary failed", "error", err)
		return temporaryErrorReply()
	}
	return summaryReply(now.Month(), summary)
}

func (h *Handler) listCategories(ctx context.Context) string {
	categories, err := h.store.ListCategories(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "List categories failed", "error", err)
		return temporaryErrorReply()
	}
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = c.Name
	}
	return categoriesReply(names)
}

func (h *Handler) addCategory(ctx context.Context, name string) string {
	err := h.store.AddCategory(ctx, name)
	if errors.Is(err, core.ErrCategoryExists) {
		return categoryExistsReply(name)
	}
	if err != nil {
		slog.ErrorContext(ctx, "Add category failed", "error", err, "name", name)
		return temporaryErrorReply()
	}
	return categoryAddedReply(name)
}

func (h *Handler) deleteCategory(ctx context.Context, name string) string {
	err := h.store.DeleteCategory(ctx, name)
	if errors.Is(err, core.ErrCategoryNotFound) {
		return categoryNotFoundReply(name)
	}
	if err != nil {
		slog.ErrorContext(ctx, "Delete category failed", "error", err, "name", name)
		return temporaryErrorReply()
	}
	return categoryDeletedReply(name)
}

func (h *Handler) deleteExpense(ctx context.Context, cmd Command) string {
	err := h.store.DeleteLatestMatching(ctx, cmd.Name, cmd.Amount)
	if errors.Is(err, core.ErrExpenseNotFound) {
		return expenseNoMatchReply(cmd.Name, cmd.Amount)
	}
	if err != nil {
		slog.ErrorContext(ctx, "Delete expense failed", "error", err, "name", cmd.Name)
		return temporaryErrorReply()
	}

	h.publishDeleted(ctx, cmd)

	return expenseDeletedReply(cmd.Name, cmd.Amount)
}

func (h *Handler) publishRecorded(ctx context.Context, id int64, cmd Command, category string) {
	if h.events == nil {
		return
	}
	if err := h.events.PublishExpenseRecorded(ctx, id, cmd.Name, cmd.Amount.Cents, category); err != nil {
		slog.ErrorContext(ctx, "Publish expense recorded event failed", "error", err, "id", id)
	}
}

func (h *Handler) publishDeleted(ctx context.Context, cmd Command) {
	if h.events == nil {
		return
	}
	if err := h.events.PublishExpenseDeleted(ctx, cmd.Name, cmd.Amount.Cents); err != nil {
		slog.ErrorContext(ctx, "Publish expense deleted event failed", "error", err, "name", cmd.Name)
	}
}
