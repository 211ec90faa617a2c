package services

import (
	"sort"

	"financehub/internal/models"

	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// Summarize computes the per-type totals of a transaction sequence.
// Net balance is income minus expenses, computed with exact decimal
// arithmetic.
func Summarize(transactions []models.Transaction) models.TransactionSummary {
	summary := models.TransactionSummary{
		IncomeTotal:  decimal.Zero,
		ExpenseTotal: decimal.Zero,
		SavingsTotal: decimal.Zero,
	}

	for i := range transactions {
		txn := &transactions[i]
		switch txn.TransactionType {
		case models.TransactionTypeIncome:
			summary.IncomeTotal = summary.IncomeTotal.Add(txn.Amount)
		case models.TransactionTypeExpense:
			summary.ExpenseTotal = summary.ExpenseTotal.Add(txn.Amount)
		case models.TransactionTypeSavings:
			summary.SavingsTotal = summary.SavingsTotal.Add(txn.Amount)
		}
	}

	summary.NetBalance = summary.IncomeTotal.Sub(summary.ExpenseTotal)
	return summary
}

// ExpenseBreakdown computes per-category totals and percentage shares over
// the expense-type transactions in the sequence. Entries are ordered by
// total descending; equal totals keep the order the categories were first
// encountered in. No expenses yields an empty slice, never a division fault.
func ExpenseBreakdown(transactions []models.Transaction) []models.CategoryBreakdownEntry {
	entries := make([]models.CategoryBreakdownEntry, 0)
	index := make(map[string]int)
	expenseTotal := decimal.Zero

	for i := range transactions {
		txn := &transactions[i]
		if !txn.IsExpense() {
			continue
		}

		key := ""
		if txn.CategoryID != nil {
			key = txn.CategoryID.String()
		}

		pos, seen := index[key]
		if !seen {
			entry := models.CategoryBreakdownEntry{
				CategoryID: txn.CategoryID,
				Name:       txn.CategoryName(),
				Color:      models.DefaultCategoryColor,
				Total:      decimal.Zero,
			}
			if entry.Name == "" {
				entry.Name = "Uncategorized"
			}
			if txn.Category != nil && txn.Category.Color != "" {
				entry.Color = txn.Category.Color
			}
			entries = append(entries, entry)
			pos = len(entries) - 1
			index[key] = pos
		}

		entries[pos].Total = entries[pos].Total.Add(txn.Amount)
		entries[pos].TransactionCount++
		expenseTotal = expenseTotal.Add(txn.Amount)
	}

	if len(entries) == 0 {
		return entries
	}

	if expenseTotal.IsPositive() {
		for i := range entries {
			entries[i].PercentOfExpense = entries[i].Total.
				Mul(oneHundred).
				Div(expenseTotal).
				InexactFloat64()
		}
	}

	// Stable sort keeps first-encountered order for equal totals.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Total.GreaterThan(entries[j].Total)
	})

	return entries
}

// BreakdownFromTotals converts repository-level category totals into
// breakdown entries with percentage shares, preserving the given order.
func BreakdownFromTotals(totals []models.CategoryTotal) []models.CategoryBreakdownEntry {
	expenseTotal := decimal.Zero
	for i := range totals {
		expenseTotal = expenseTotal.Add(totals[i].Total)
	}

	entries := make([]models.CategoryBreakdownEntry, 0, len(totals))
	for i := range totals {
		entry := models.CategoryBreakdownEntry{
			CategoryID: totals[i].CategoryID,
			Name:       totals[i].Name,
			Color:      totals[i].Color,
			Total:      totals[i].Total,
		}
		if entry.Name == "" {
			entry.Name = "Uncategorized"
		}
		if entry.Color == "" {
			entry.Color = models.DefaultCategoryColor
		}
		if expenseTotal.IsPositive() {
			entry.PercentOfExpense = entry.Total.Mul(oneHundred).Div(expenseTotal).InexactFloat64()
		}
		entries = append(entries, entry)
	}

	return entries
}
