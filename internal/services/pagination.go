package services

import (
	"errors"

	"financehub/internal/models"
)

// DefaultPageSize is the fixed page size of transaction listings.
const DefaultPageSize = 50

// ErrInvalidPageSize is returned when a caller supplies a non-positive page size.
var ErrInvalidPageSize = errors.New("page size must be positive")

// TransactionPage is one page of a transaction sequence. An empty input
// sequence yields Number == 0 and TotalPages == 0, which is distinct from a
// clamped out-of-range request against a non-empty sequence.
type TransactionPage struct {
	Items      []models.Transaction `json:"items"`
	Number     int                  `json:"number"`
	Size       int                  `json:"size"`
	TotalPages int                  `json:"total_pages"`
	TotalItems int                  `json:"total_items"`
}

// IsEmpty reports whether the page comes from an empty sequence.
func (p TransactionPage) IsEmpty() bool {
	return p.TotalItems == 0
}

// Paginate slices the sequence into DefaultPageSize-sized pages and returns
// the requested 1-based page. Out-of-range page numbers are clamped into
// [1, total pages], never an error.
func Paginate(items []models.Transaction, page int) TransactionPage {
	result, _ := PaginateWithSize(items, page, DefaultPageSize)
	return result
}

// PaginateWithSize is Paginate with a caller-chosen page size. A
// non-positive size is rejected rather than guessed at.
func PaginateWithSize(items []models.Transaction, page, size int) (TransactionPage, error) {
	if size <= 0 {
		return TransactionPage{}, ErrInvalidPageSize
	}

	total := len(items)
	totalPages := (total + size - 1) / size

	if total == 0 {
		return TransactionPage{
			Items:      []models.Transaction{},
			Number:     0,
			Size:       size,
			TotalPages: 0,
			TotalItems: 0,
		}, nil
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * size
	end := start + size
	if end > total {
		end = total
	}

	return TransactionPage{
		Items:      items[start:end],
		Number:     page,
		Size:       size,
		TotalPages: totalPages,
		TotalItems: total,
	}, nil
}

// PageToken is one entry of a rendered page control: either a concrete page
// number or an ellipsis standing in for a collapsed run of pages.
type PageToken struct {
	Page     int  `json:"page,omitempty"`
	Ellipsis bool `json:"ellipsis,omitempty"`
}

// PageWindow computes the page-control window for the current page: the
// first and last pages always appear, pages within two of the current page
// appear, and every other run collapses to a single ellipsis marker.
func PageWindow(current, total int) []PageToken {
	if total <= 0 {
		return []PageToken{}
	}
	if current < 1 {
		current = 1
	}
	if current > total {
		current = total
	}

	tokens := make([]PageToken, 0, total)
	inGap := false

	for page := 1; page <= total; page++ {
		show := page == 1 || page == total || abs(page-current) <= 2
		if show {
			tokens = append(tokens, PageToken{Page: page})
			inGap = false
			continue
		}
		if !inGap {
			tokens = append(tokens, PageToken{Ellipsis: true})
			inGap = true
		}
	}

	return tokens
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
