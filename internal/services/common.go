package services

import (
	"errors"
	"net/url"

	"gorm.io/gorm"

	"github.com/projectdesk/projectdesk/internal/apperror"
	"github.com/projectdesk/projectdesk/internal/query"
)

// ListOptions carries the raw list inputs from the handler layer. Filter is
// the full query parameter set; the builders ignore what they do not know.
type ListOptions struct {
	Limit   int
	Offset  int
	Sort    string
	Fields  string
	Include string
	Filter  url.Values
}

// clampLimit bounds the page size to [1, 100] with a default of 10.
func clampLimit(limit int) int {
	if limit <= 0 {
		return 10
	}
	if limit > 100 {
		return 100
	}
	return limit
}

func clampOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}

// pickAllowed copies only allow-listed keys out of a request body. Anything
// else, including immutable fields, is silently dropped.
func pickAllowed(data map[string]any, allowed []string) map[string]any {
	picked := make(map[string]any)
	for _, field := range allowed {
		if v, ok := data[field]; ok {
			picked[field] = v
		}
	}
	return picked
}

// normalizeDates converts incoming date strings on the named fields into
// time values so they persist correctly regardless of driver.
func normalizeDates(data map[string]any, fields ...string) error {
	for _, field := range fields {
		v, ok := data[field]
		if !ok || v == nil {
			continue
		}
		s, ok := v.(string)
		if !ok {
			continue
		}
		t, ok := query.ParseDate(s)
		if !ok {
			return apperror.Validation("Invalid %s format (YYYY-MM-DD)", field)
		}
		data[field] = t
	}
	return nil
}

// intFromAny extracts an integer from a JSON-decoded value.
func intFromAny(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	case int64:
		return int(n), true
	}
	return 0, false
}

func isDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
