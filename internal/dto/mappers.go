package dto

import "financehub/internal/models"

// NewTransactionResponse maps a transaction model onto its wire shape.
func NewTransactionResponse(txn *models.Transaction) TransactionResponse {
	resp := TransactionResponse{
		ID:              txn.ID,
		Title:           txn.Title,
		Description:     txn.Description,
		Amount:          txn.Amount.StringFixed(2),
		TransactionType: string(txn.TransactionType),
		Date:            txn.Date,
	}
	if txn.Category != nil {
		resp.Category = &CategoryRef{
			ID:    txn.Category.ID,
			Name:  txn.Category.Name,
			Color: txn.Category.Color,
		}
	}
	return resp
}

// NewTransactionResponses maps a transaction slice onto wire shapes,
// preserving order.
func NewTransactionResponses(txns []models.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, 0, len(txns))
	for i := range txns {
		responses = append(responses, NewTransactionResponse(&txns[i]))
	}
	return responses
}

// NewSummaryResponse maps aggregate totals onto their wire shape.
func NewSummaryResponse(summary models.TransactionSummary) SummaryResponse {
	return SummaryResponse{
		IncomeTotal:  summary.IncomeTotal.StringFixed(2),
		ExpenseTotal: summary.ExpenseTotal.StringFixed(2),
		SavingsTotal: summary.SavingsTotal.StringFixed(2),
		NetBalance:   summary.NetBalance.StringFixed(2),
	}
}

// NewBreakdownResponses maps expense-by-category entries onto wire shapes.
func NewBreakdownResponses(entries []models.CategoryBreakdownEntry) []CategoryBreakdownResponse {
	responses := make([]CategoryBreakdownResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, CategoryBreakdownResponse{
			CategoryID:       entry.CategoryID,
			Name:             entry.Name,
			Color:            entry.Color,
			Total:            entry.Total.StringFixed(2),
			PercentOfExpense: entry.PercentOfExpense,
		})
	}
	return responses
}
