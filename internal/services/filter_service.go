package services

import (
	"sort"
	"strings"
	"time"

	"financehub/internal/models"

	"github.com/shopspring/decimal"
)

// FilterEngine is a pure transformation over an in-memory transaction
// snapshot: given criteria it produces the matching transactions in the
// requested order without touching the input slice. All clock-relative
// behavior is driven by the explicit now parameter.
type FilterEngine struct{}

// NewFilterEngine creates a new filter engine
func NewFilterEngine() *FilterEngine {
	return &FilterEngine{}
}

// Apply returns the transactions from snapshot that satisfy every active
// predicate in criteria, sorted by the criteria's sort key. The result is
// always a subset of the snapshot and applying the same criteria again
// returns an equal sequence.
func (e *FilterEngine) Apply(snapshot []models.Transaction, criteria models.FilterCriteria, now time.Time) []models.Transaction {
	criteria = criteria.Normalize()

	rangeStart, rangeEnd, dateActive := ResolvePresetRange(criteria.Preset, criteria.FromDate, criteria.ToDate, now)

	filtered := make([]models.Transaction, 0, len(snapshot))
	for i := range snapshot {
		txn := &snapshot[i]

		if dateActive && !inDateRange(txn.Date, rangeStart, rangeEnd) {
			continue
		}
		if criteria.Type != "" && txn.TransactionType != criteria.Type {
			continue
		}
		if criteria.CategoryID != nil {
			if txn.CategoryID == nil || *txn.CategoryID != *criteria.CategoryID {
				continue
			}
		}
		if criteria.MinAmount != nil && txn.Amount.LessThan(*criteria.MinAmount) {
			continue
		}
		if criteria.MaxAmount != nil && txn.Amount.GreaterThan(*criteria.MaxAmount) {
			continue
		}
		if criteria.Search != "" && !matchesSearch(txn, criteria.Search) {
			continue
		}

		filtered = append(filtered, snapshot[i])
	}

	sortTransactions(filtered, criteria.SortKey, criteria.SortDir)

	return filtered
}

// ResolvePresetRange resolves a date preset (or custom from/to pair) to a
// concrete closed interval. The third return value is false when no date
// constraint is active. A custom "to" date is extended to the end of its
// day so same-day ranges are inclusive.
func ResolvePresetRange(preset models.DatePreset, from, to *time.Time, now time.Time) (time.Time, time.Time, bool) {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch preset {
	case models.PresetToday:
		return midnight, now, true

	case models.PresetThisWeek:
		// ISO week: Monday is day 1 regardless of locale.
		weekday := int(now.Weekday())
		if weekday == 0 {
			weekday = 7
		}
		monday := midnight.AddDate(0, 0, -(weekday - 1))
		return monday, now, true

	case models.PresetThisMonth:
		firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return firstOfMonth, now, true

	case models.PresetLastMonth:
		firstOfThisMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		firstOfLastMonth := firstOfThisMonth.AddDate(0, -1, 0)
		lastDay := endOfDay(firstOfThisMonth.AddDate(0, 0, -1))
		return firstOfLastMonth, lastDay, true

	case models.PresetThisYear:
		firstOfYear := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		return firstOfYear, now, true

	case models.PresetCustom, models.PresetNone:
		if from == nil && to == nil {
			return time.Time{}, time.Time{}, false
		}

		start := time.Time{}
		if from != nil {
			start = *from
		}
		// A missing bound leaves that side of the range open.
		end := openEnded
		if to != nil {
			end = endOfDay(*to)
		}
		return start, end, true

	default:
		return time.Time{}, time.Time{}, false
	}
}

// ParseAmountFilter parses a user-supplied amount boundary. Malformed input
// is treated as absent, never as an error or an exclude-all filter.
func ParseAmountFilter(raw string) *decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return nil
	}
	return &value
}

// openEnded stands in for an absent upper bound in a custom range.
var openEnded = time.Date(9999, time.December, 31, 23, 59, 59, 0, time.UTC)

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}

func inDateRange(date, start, end time.Time) bool {
	return !date.Before(start) && !date.After(end)
}

func matchesSearch(txn *models.Transaction, search string) bool {
	needle := strings.ToLower(search)
	if strings.Contains(strings.ToLower(txn.Title), needle) {
		return true
	}
	// An absent description never matches.
	if txn.Description == "" {
		return false
	}
	return strings.Contains(strings.ToLower(txn.Description), needle)
}

// sortTransactions orders the slice by the given key. The sort is stable and
// descending order reverses the comparator, not the input, so ties keep
// their original relative order either way.
func sortTransactions(transactions []models.Transaction, key models.SortKey, dir models.SortDirection) {
	compare := comparatorFor(key)
	descending := dir == models.SortDesc

	sort.SliceStable(transactions, func(i, j int) bool {
		cmp := compare(&transactions[i], &transactions[j])
		if cmp == 0 {
			return false
		}
		if descending {
			return cmp > 0
		}
		return cmp < 0
	})
}

func comparatorFor(key models.SortKey) func(a, b *models.Transaction) int {
	switch key {
	case models.SortByAmount:
		return func(a, b *models.Transaction) int {
			return a.Amount.Cmp(b.Amount)
		}
	case models.SortByCategory:
		return func(a, b *models.Transaction) int {
			return compareFold(a.CategoryName(), b.CategoryName())
		}
	case models.SortByType:
		return func(a, b *models.Transaction) int {
			return compareFold(a.TransactionType, b.TransactionType)
		}
	default: // models.SortByDate
		return func(a, b *models.Transaction) int {
			if a.Date.Before(b.Date) {
				return -1
			}
			if a.Date.After(b.Date) {
				return 1
			}
			return 0
		}
	}
}

func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}
