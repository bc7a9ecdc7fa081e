package main

import (
	"strconv"
	"time"

	"gorm.io/gorm"
)

// listFilter describes which records qualify for a list query. Empty fields
// impose no constraint. From/To are inclusive bounds on the canonical date.
type listFilter struct {
	From     string
	To       string
	Category string
	Source   string
}

// buildListFilter normalizes raw query parameters into a filter descriptor.
// from/to accept either an ISO string or epoch milliseconds; both end up as
// ISO strings so they compare against stored dates in one representation.
func buildListFilter(from, to, category, source string) listFilter {
	return listFilter{
		From:     coerceDateParam(from),
		To:       coerceDateParam(to),
		Category: category,
		Source:   source,
	}
}

// coerceDateParam converts an epoch-milliseconds parameter to ISO-8601 and
// passes string instants through unchanged.
func coerceDateParam(s string) string {
	if s == "" {
		return ""
	}
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.UnixMilli(ms).UTC().Format(isoLayout)
	}
	return s
}

// apply appends the filter's conditions to a query. Ordering is left to the
// query site.
func (f listFilter) apply(q *gorm.DB) *gorm.DB {
	if f.From != "" {
		q = q.Where("date >= ?", f.From)
	}
	if f.To != "" {
		q = q.Where("date <= ?", f.To)
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Source != "" {
		q = q.Where("source = ?", f.Source)
	}
	return q
}
