package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DatePreset is a named, clock-relative date range shortcut.
type DatePreset string

const (
	PresetNone      DatePreset = ""
	PresetToday     DatePreset = "today"
	PresetThisWeek  DatePreset = "this_week"
	PresetThisMonth DatePreset = "this_month"
	PresetLastMonth DatePreset = "last_month"
	PresetThisYear  DatePreset = "this_year"
	PresetCustom    DatePreset = "custom"
)

// SortKey identifies the field a transaction listing is ordered by.
type SortKey string

const (
	SortByDate     SortKey = "date"
	SortByAmount   SortKey = "amount"
	SortByCategory SortKey = "category"
	SortByType     SortKey = "type"
)

// SortDirection represents sort order.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// FilterCriteria describes one view over the transaction snapshot. An unset
// field imposes no constraint; all active predicates are combined with AND.
// Pointer fields distinguish "not set" from zero values.
type FilterCriteria struct {
	Preset     DatePreset
	FromDate   *time.Time
	ToDate     *time.Time
	Type       string
	CategoryID *uuid.UUID
	MinAmount  *decimal.Decimal
	MaxAmount  *decimal.Decimal
	Search     string
	SortKey    SortKey
	SortDir    SortDirection
	Page       int
}

// DefaultFilterCriteria returns the criteria used before the user touches any
// control: everything shown, newest first, first page.
func DefaultFilterCriteria() FilterCriteria {
	return FilterCriteria{
		SortKey: SortByDate,
		SortDir: SortDesc,
		Page:    1,
	}
}

// Normalize fills in defaults for unset sort and page fields.
func (c FilterCriteria) Normalize() FilterCriteria {
	if c.SortKey == "" {
		c.SortKey = SortByDate
	}
	if c.SortDir != SortAsc && c.SortDir != SortDesc {
		if c.SortKey == SortByDate {
			c.SortDir = SortDesc
		} else {
			c.SortDir = SortAsc
		}
	}
	if c.Page < 1 {
		c.Page = 1
	}
	return c
}

// WithPage returns a copy of the criteria pointed at the given page. This is
// the only mutation that preserves the page; changing any filter field goes
// through the setters below, which reset it.
func (c FilterCriteria) WithPage(page int) FilterCriteria {
	c.Page = page
	return c
}

// WithSearch returns a copy with the search text replaced and the page reset.
func (c FilterCriteria) WithSearch(search string) FilterCriteria {
	c.Search = search
	c.Page = 1
	return c
}

// WithType returns a copy with the type filter replaced and the page reset.
func (c FilterCriteria) WithType(transactionType string) FilterCriteria {
	c.Type = transactionType
	c.Page = 1
	return c
}

// WithSort returns a copy with the sort order replaced and the page reset.
func (c FilterCriteria) WithSort(key SortKey, dir SortDirection) FilterCriteria {
	c.SortKey = key
	c.SortDir = dir
	c.Page = 1
	return c
}

// SortString returns the sort as a string (e.g. "date:desc").
func (c FilterCriteria) SortString() string {
	return string(c.SortKey) + ":" + string(c.SortDir)
}
