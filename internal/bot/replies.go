package bot

import (
	"fmt"
	"strings"
	"time"

	"shekelbot/internal/core"
)

// Reply vocabulary. The literals are part of the bot's interface; every
// outcome maps to exactly one of these shapes.

func helpReply() string {
	return "שלום! השתמש בפקודות הבאות:\n" +
		"- הוצאה <שם> <סכום>\n" +
		"- סיכום\n" +
		"- רשימת קטגוריות\n" +
		"- הוספת קטגוריה <שם הקטגוריה>\n" +
		"- מחיקת קטגוריה <שם הקטגוריה>\n" +
		"- מחיקה <שם> <סכום> (למחיקת הוצאה)"
}

func expenseSavedReply(name string, amount core.Money, category string) string {
	return fmt.Sprintf("✅ הוצאה נרשמה:\nשם: '%s'\nסכום: %s\nקטגוריה: %s", name, amount.Shekels(), category)
}

func expenseFormatReply() string {
	return "⚠️ נא להשתמש בפורמט: הוצאה <שם> <סכום>"
}

func expenseAmountReply() string {
	return "⚠️ שגיאה בעיבוד ההוצאה. ודא שהסכום הוא מספר תקין."
}

func classifyFailedReply() string {
	return "⚠️ שגיאה בסיווג ההוצאה. נסה שוב מאוחר יותר."
}

func saveFailedReply() string {
	return "⚠️ שגיאה בשמירת ההוצאה. נסה שוב מאוחר יותר."
}

func noCategoriesReply() string {
	return "⚠️ אין קטגוריות מוגדרות. הוסף קטגוריה לפני רישום הוצאה."
}

func temporaryErrorReply() string {
	return "⚠️ שגיאה זמנית. נסה שוב מאוחר יותר."
}

func summaryReply(month time.Month, summary core.MonthSummary) string {
	if summary.Empty() {
		return fmt.Sprintf("אין הוצאות רשומות עבור %s עדיין.", month)
	}
	lines := make([]string, 0, len(summary.Totals))
	for _, ct := range summary.Totals {
		lines = append(lines, fmt.Sprintf("%s: %s", ct.Category, ct.Total.Shekels()))
	}
	return fmt.Sprintf("📊 סיכום חודשי עבור %s:\n%s", month, strings.Join(lines, "\n"))
}

func categoriesReply(names []string) string {
	if len(names) == 0 {
		return "לא נמצאו קטגוריות."
	}
	return "📚 קטגוריות:\n" + strings.Join(names, "\n")
}

func categoryAddedReply(name string) string {
	return fmt.Sprintf("✅ קטגוריה '%s' נוספה.", name)
}

func categoryExistsReply(name string) string {
	return fmt.Sprintf("⚠️ קטגוריה '%s' כבר קיימת.", name)
}

func addCategoryFormatReply() string {
	return "⚠️ נא להשתמש בפורמט: הוספת קטגוריה <שם הקטגוריה>"
}

func categoryDeletedReply(name string) string {
	return fmt.Sprintf("✅ קטגוריה '%s' נמחקה.", name)
}

func categoryNotFoundReply(name string) string {
	return fmt.Sprintf("⚠️ קטגוריה '%s' לא נמצאה.", name)
}

func deleteCategoryFormatReply() string {
	return "⚠️ נא להשתמש בפורמט: מחיקת קטגוריה <שם הקטגוריה>"
}

func expenseDeletedReply(name string, amount core.Money) string {
	return fmt.Sprintf("✅ הוצאה '%s' בסכום %s נמחקה.", name, amount.Shekels())
}

func expenseNoMatchReply(name string, amount core.Money) string {
	return fmt.Sprintf("⚠️ לא נמצאה הוצאה תואמת בשם '%s' עם סכום %s.", name, amount.Shekels())
}

func deleteExpenseFormatReply() string {
	return "⚠️ נא להשתמש בפורמט: מחיקה <שם> <סכום>"
}

func deleteExpenseAmountReply() string {
	return "⚠️ נא לספק מספר תקין עבור הסכום."
}
