// Package catalog filters and sorts the small in-memory collections served by
// the marketplace: products, equipment listings and service calls.
//
// A pipeline run is pure: the input slice is never reordered and the same
// inputs always yield the same output.
package catalog

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// All is the sentinel meaning "no filter" for string criteria.
const All = "all"

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Predicate reports whether an item is kept. A nil Predicate is inactive.
type Predicate[T any] func(T) bool

// IsActive reports whether a string criterion differs from its sentinels.
func IsActive(v string) bool {
	v = strings.TrimSpace(v)
	return v != "" && !strings.EqualFold(v, All)
}

// Filter keeps the items satisfying every non-nil predicate.
func Filter[T any](items []T, preds ...Predicate[T]) []T {
	out := make([]T, 0, len(items))
next:
	for _, it := range items {
		for _, p := range preds {
			if p != nil && !p(it) {
				continue next
			}
		}
		out = append(out, it)
	}
	return out
}

// SortBy returns a sorted copy of items ordered by key.
func SortBy[T any, K cmp.Ordered](items []T, key func(T) K, order SortOrder) []T {
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b T) int {
		c := cmp.Compare(key(a), key(b))
		if order == SortDesc {
			return -c
		}
		return c
	})
	return out
}

// TextMatch is a case-insensitive substring match over one or more fields.
// Only a blank query is inactive; "all" is searched like any other text.
func TextMatch[T any](query string, fields ...func(T) string) Predicate[T] {
	needle := fold(strings.TrimSpace(query))
	if needle == "" {
		return nil
	}
	return func(it T) bool {
		for _, f := range fields {
			if strings.Contains(fold(f(it)), needle) {
				return true
			}
		}
		return false
	}
}

// Equals matches a string field exactly, ignoring case.
func Equals[T any](want string, field func(T) string) Predicate[T] {
	if !IsActive(want) {
		return nil
	}
	want = strings.TrimSpace(want)
	return func(it T) bool {
		return strings.EqualFold(field(it), want)
	}
}

// InRange matches a numeric field against the inclusive range r.
func InRange[T any](r Range, field func(T) float64) Predicate[T] {
	if !r.Active() {
		return nil
	}
	return func(it T) bool {
		return r.Contains(field(it))
	}
}

// Range is an inclusive numeric interval; unset bounds are open.
type Range struct {
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	HasMin bool    `json:"has_min"`
	HasMax bool    `json:"has_max"`
}

func Between(min, max float64) Range {
	return Range{Min: min, Max: max, HasMin: true, HasMax: true}
}

func (r Range) Active() bool {
	return r.HasMin || r.HasMax
}

func (r Range) Contains(v float64) bool {
	if r.HasMin && v < r.Min {
		return false
	}
	if r.HasMax && v > r.Max {
		return false
	}
	return true
}

func fold(s string) string {
	return cases.Fold().String(s)
}
