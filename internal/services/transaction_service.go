package services

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"financehub/internal/dto"
	"financehub/internal/models"
	"financehub/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrCategoryNotFound = errors.New("category not found")
	ErrProfileNotFound  = errors.New("profile not found")
)

// transactionService implements TransactionServiceInterface
type transactionService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	categoryRepo    repositories.CategoryRepositoryInterface
	profileRepo     repositories.ProfileRepositoryInterface
	filterEngine    *FilterEngine
	logger          *slog.Logger
}

// NewTransactionService creates a transaction service backed by the given repositories
func NewTransactionService(
	transactionRepo repositories.TransactionRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	profileRepo repositories.ProfileRepositoryInterface,
	logger *slog.Logger,
) TransactionServiceInterface {
	return &transactionService{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		profileRepo:     profileRepo,
		filterEngine:    NewFilterEngine(),
		logger:          logger,
	}
}

// CreateTransaction validates the request, resolves the category, and stores
// the transaction together with its signed effect on cash on hand: income
// adds the amount, expenses and savings subtract it.
func (s *transactionService) CreateTransaction(userID uuid.UUID, req *dto.CreateTransactionRequest) (*models.Transaction, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(req.Amount))
	if err != nil || !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if !models.IsValidTransactionType(req.TransactionType) {
		return nil, models.ErrInvalidTransactionType
	}

	txn := &models.Transaction{
		UserID:          userID,
		Title:           strings.TrimSpace(req.Title),
		Description:     strings.TrimSpace(req.Description),
		Amount:          amount,
		TransactionType: req.TransactionType,
		Date:            time.Now().UTC(),
	}

	if req.Date != "" {
		date, err := parseDateInput(req.Date)
		if err != nil {
			return nil, err
		}
		txn.Date = date
	}

	if req.CategoryID != "" {
		categoryID, err := uuid.Parse(req.CategoryID)
		if err != nil {
			return nil, ErrCategoryNotFound
		}
		category, err := s.categoryRepo.GetByID(categoryID)
		if err != nil || category.UserID != userID {
			return nil, ErrCategoryNotFound
		}
		txn.CategoryID = &category.ID
		txn.Category = category
	}

	if err := s.transactionRepo.CreateWithBalanceEffect(txn, txn.BalanceEffect()); err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, ErrProfileNotFound
		}
		s.logger.Error("failed to create transaction", "user_id", userID, "error", err)
		return nil, err
	}

	s.logger.Info("transaction created",
		"user_id", userID,
		"transaction_id", txn.ID,
		"type", txn.TransactionType,
		"amount", txn.Amount.String())

	return txn, nil
}

// ListTransactions loads the user's snapshot, applies the filter criteria,
// and returns one page of results with the summary and expense breakdown of
// the whole filtered working set, not just the visible page.
func (s *transactionService) ListTransactions(userID uuid.UUID, params dto.FilterParams, now time.Time) (*dto.ListTransactionsResponse, error) {
	snapshot, err := s.transactionRepo.GetAllByUserID(userID)
	if err != nil {
		s.logger.Error("failed to load transaction snapshot", "user_id", userID, "error", err)
		return nil, err
	}

	criteria := CriteriaFromParams(params).Normalize()
	filtered := s.filterEngine.Apply(snapshot, criteria, now)

	summary := Summarize(filtered)
	breakdown := ExpenseBreakdown(filtered)
	page := Paginate(filtered, criteria.Page)
	window := PageWindow(page.Number, page.TotalPages)

	controls := make([]dto.PageControl, 0, len(window))
	for _, token := range window {
		controls = append(controls, dto.PageControl{Page: token.Page, Ellipsis: token.Ellipsis})
	}

	return &dto.ListTransactionsResponse{
		Transactions: dto.NewTransactionResponses(page.Items),
		Summary:      dto.NewSummaryResponse(summary),
		Breakdown:    dto.NewBreakdownResponses(breakdown),
		Pagination: dto.PaginationInfo{
			Page:       page.Number,
			PageSize:   page.Size,
			TotalPages: page.TotalPages,
			TotalItems: page.TotalItems,
			Window:     controls,
		},
		Sort: criteria.SortString(),
	}, nil
}

// FilteredTransactions applies the filter criteria and returns the whole
// working set without pagination.
func (s *transactionService) FilteredTransactions(userID uuid.UUID, params dto.FilterParams, now time.Time) ([]models.Transaction, error) {
	snapshot, err := s.transactionRepo.GetAllByUserID(userID)
	if err != nil {
		return nil, err
	}
	criteria := CriteriaFromParams(params).Normalize()
	return s.filterEngine.Apply(snapshot, criteria, now), nil
}

// AddCashOnHand records an income transaction against the user's "other"
// category and returns the transaction alongside the refreshed profile.
func (s *transactionService) AddCashOnHand(userID uuid.UUID, amount decimal.Decimal) (*models.Transaction, *models.Profile, error) {
	if !amount.IsPositive() {
		return nil, nil, ErrInvalidAmount
	}

	category, err := s.categoryRepo.GetOrCreateByType(userID, models.CategoryTypeOther, "Other", models.DefaultCategoryColor)
	if err != nil {
		return nil, nil, err
	}

	txn := &models.Transaction{
		UserID:          userID,
		Title:           "Cash top-up",
		Amount:          amount,
		TransactionType: models.TransactionTypeIncome,
		CategoryID:      &category.ID,
		Category:        category,
		Date:            time.Now().UTC(),
	}

	if err := s.transactionRepo.CreateWithBalanceEffect(txn, txn.BalanceEffect()); err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, nil, ErrProfileNotFound
		}
		return nil, nil, err
	}

	profile, err := s.profileRepo.GetByUserID(userID)
	if err != nil {
		return nil, nil, err
	}

	s.logger.Info("cash on hand topped up",
		"user_id", userID,
		"amount", amount.String(),
		"new_balance", profile.CashOnHand.String())

	return txn, profile, nil
}

// CriteriaFromParams maps raw query-string inputs onto filter criteria.
// Malformed numeric, date, and identifier values are treated as absent
// filters rather than request errors.
func CriteriaFromParams(params dto.FilterParams) models.FilterCriteria {
	criteria := models.DefaultFilterCriteria()

	criteria.Preset = models.DatePreset(strings.TrimSpace(params.Preset))
	if from, err := parseDateInput(params.From); err == nil && params.From != "" {
		criteria.FromDate = &from
	}
	if to, err := parseDateInput(params.To); err == nil && params.To != "" {
		criteria.ToDate = &to
	}

	if models.IsValidTransactionType(params.Type) {
		criteria.Type = params.Type
	}
	if categoryID, err := uuid.Parse(params.Category); err == nil {
		criteria.CategoryID = &categoryID
	}

	criteria.MinAmount = ParseAmountFilter(params.MinAmount)
	criteria.MaxAmount = ParseAmountFilter(params.MaxAmount)
	criteria.Search = strings.TrimSpace(params.Search)

	if key, dir, ok := parseSortParam(params.Sort); ok {
		criteria.SortKey = key
		criteria.SortDir = dir
	}
	if page, err := strconv.Atoi(params.Page); err == nil && page > 0 {
		criteria.Page = page
	}

	return criteria
}

func parseSortParam(raw string) (models.SortKey, models.SortDirection, bool) {
	raw = strings.TrimSpace(strings.ToLower(raw))
	if raw == "" {
		return "", "", false
	}

	key, dir, _ := strings.Cut(raw, ":")
	switch models.SortKey(key) {
	case models.SortByDate, models.SortByAmount, models.SortByCategory, models.SortByType:
	default:
		return "", "", false
	}

	direction := models.SortAsc
	if models.SortKey(key) == models.SortByDate {
		direction = models.SortDesc
	}
	switch models.SortDirection(dir) {
	case models.SortAsc, models.SortDesc:
		direction = models.SortDirection(dir)
	}

	return models.SortKey(key), direction, true
}

func parseDateInput(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if date, err := time.Parse("2006-01-02", raw); err == nil {
		return date.UTC(), nil
	}
	date, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, err
	}
	return date.UTC(), nil
}
