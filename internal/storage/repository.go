package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"shekelbot/internal/core"

	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// DefaultCategories is the seed set inserted when the categories table is
// empty at startup.
var DefaultCategories = []string{"אוכל", "תחבורה", "בידור", "מכולת", "חשבונות", "אחר"}

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	repo := &SQLiteRepository{db: db}

	if err := repo.seedDefaultCategories(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("seed default categories: %w", err)
	}

	return repo, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// seedDefaultCategories inserts the default set, but only when the table
// is completely empty. A user who deleted everything gets the defaults
// back on the next restart.
func (r *SQLiteRepository) seedDefaultCategories(ctx context.Context) error {
	count, err := r.CategoryCount(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, name := range DefaultCategories {
		if _, err := r.db.ExecContext(ctx, `INSERT INTO categories (name) VALUES (?)`, name); err != nil {
			return fmt.Errorf("insert default category %q: %w", name, err)
		}
	}

	slog.InfoContext(ctx, "Seeded default categories", "count", len(DefaultCategories))
	return nil
}

// ListCategories returns all categories in insertion order.
func (r *SQLiteRepository) ListCategories(ctx context.Context) ([]core.Category, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM categories ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	var categories []core.Category
	for rows.Next() {
		var c core.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}

	return categories, nil
}

// AddCategory inserts a new category. Duplicate names are rejected by the
// UNIQUE constraint; when two requests race, the database decides which
// one wins and the loser gets core.ErrCategoryExists.
func (r *SQLiteRepository) AddCategory(ctx context.Context, name string) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO categories (name) VALUES (?)`, name)
	if err != nil {
		if isUniqueViolation(err) {
			return core.ErrCategoryExists
		}
		return fmt.Errorf("insert category: %w", err)
	}

	slog.InfoContext(ctx, "Category added", "name", name)
	return nil
}

// DeleteCategory removes the category with that exact name. Expenses
// already tagged with the name keep their denormalized copy.
func (r *SQLiteRepository) DeleteCategory(ctx context.Context, name string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return core.ErrCategoryNotFound
	}

	slog.InfoContext(ctx, "Category deleted", "name", name)
	return nil
}

// CategoryCount returns the number of stored categories.
func (r *SQLiteRepository) CategoryCount(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM categories`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count categories: %w", err)
	}
	return count, nil
}

// AddExpense validates and inserts an expense row, then returns it with
// the id and database-assigned created_at filled in.
func (r *SQLiteRepository) AddExpense(ctx context.Context, e core.Expense) (core.Expense, error) {
	if err := e.Validate(); err != nil {
		return core.Expense{}, err
	}

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO expenses (name, amount_cents, category) VALUES (?, ?, ?)`,
		e.Name, e.Amount.Cents, e.Category)
	if err != nil {
		return core.Expense{}, fmt.Errorf("insert expense: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return core.Expense{}, fmt.Errorf("last insert id: %w", err)
	}
	e.ID = id

	var createdAt string
	if err := r.db.QueryRowContext(ctx,
		`SELECT created_at FROM expenses WHERE id = ?`, id).Scan(&createdAt); err != nil {
		return core.Expense{}, fmt.Errorf("read created_at: %w", err)
	}
	// datetime('now') writes UTC wall-clock text.
	e.CreatedAt, err = time.Parse("2006-01-02 15:04:05", createdAt)
	if err != nil {
		return core.Expense{}, fmt.Errorf("parse created_at: %w", err)
	}

	slog.InfoContext(ctx, "Expense saved",
		"id", e.ID,
		"name", e.Name,
		"amount_cents", e.Amount.Cents,
		"category", e.Category)

	return e, nil
}

// SumByCategory aggregates expense amounts for one calendar month,
// grouped by the denormalized category text.
func (r *SQLiteRepository) SumByCategory(ctx context.Context, year int, month time.Month) (core.MonthSummary, error) {
	summary := core.MonthSummary{Year: year, Month: month}

	yearMonth := fmt.Sprintf("%04d-%02d", year, int(month))
	rows, err := r.db.QueryContext(ctx,
		`SELECT category, SUM(amount_cents)
		 FROM expenses
		 WHERE strftime('%Y-%m', created_at) = ?
		 GROUP BY category
		 ORDER BY category`,
		yearMonth)
	if err != nil {
		return summary, fmt.Errorf("query month totals: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var ct core.CategoryTotal
		if err := rows.Scan(&ct.Category, &ct.Total.Cents); err != nil {
			return summary, fmt.Errorf("scan month total: %w", err)
		}
		summary.Totals = append(summary.Totals, ct)
	}
	if err := rows.Err(); err != nil {
		return summary, fmt.Errorf("iterate month totals: %w", err)
	}

	return summary, nil
}

// DeleteLatestMatching removes the single most recent expense with an
// exact name and amount match. Ties on created_at fall to the highest id.
// The subquery keeps select-and-delete in one statement, so two racing
// deletes of the same row cannot both report success.
func (r *SQLiteRepository) DeleteLatestMatching(ctx context.Context, name string, amount core.Money) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM expenses
		 WHERE id = (
			SELECT id FROM expenses
			WHERE name = ? AND amount_cents = ?
			ORDER BY created_at DESC, id DESC
			LIMIT 1
		 )`,
		name, amount.Cents)
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return core.ErrExpenseNotFound
	}

	slog.InfoContext(ctx, "Expense deleted",
		"name", name,
		"amount_cents", amount.Cents)

	return nil
}

func isUniqueViolation(err error) bool {
	var serr *sqlite.Error
	return errors.As(err, &serr) && serr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE
}
