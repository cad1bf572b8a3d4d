package query

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Condition is one WHERE fragment; all conditions combine with logical AND.
type Condition struct {
	Expr string
	Args []any
}

// BuildConditions translates raw query parameters into predicates against the
// schema's filterable fields. Unrecognized keys and malformed values are
// dropped silently; this never fails.
func BuildConditions(s *Schema, params url.Values) []Condition {
	var conds []Condition

	for _, f := range s.Filters {
		raw, ok := firstValue(params, f.Param)
		if !ok {
			continue
		}

		col := fmt.Sprintf("%s.%s", s.Table, f.Column)

		switch f.Kind {
		case KindInt:
			n, err := strconv.Atoi(strings.TrimSpace(raw))
			if err != nil {
				continue
			}
			conds = append(conds, Condition{Expr: col + " = ?", Args: []any{n}})
		case KindIntSet:
			ids := parseIntSet(params[f.Param])
			if len(ids) == 0 {
				continue
			}
			conds = append(conds, Condition{Expr: col + " IN ?", Args: []any{ids}})
		case KindText:
			if raw == "" {
				continue
			}
			pattern := "%" + strings.ToLower(raw) + "%"
			conds = append(conds, Condition{Expr: "LOWER(" + col + ") LIKE ?", Args: []any{pattern}})
		case KindExact:
			if raw == "" {
				continue
			}
			conds = append(conds, Condition{Expr: col + " = ?", Args: []any{raw}})
		case KindBool:
			switch strings.ToLower(strings.TrimSpace(raw)) {
			case "true":
				conds = append(conds, Condition{Expr: col + " = ?", Args: []any{true}})
			case "false":
				conds = append(conds, Condition{Expr: col + " = ?", Args: []any{false}})
			}
		}
	}

	for _, r := range s.DateRanges {
		from, hasFrom := parseDateParam(params, r.FromParam)
		to, hasTo := parseDateParam(params, r.ToParam)
		if !hasFrom && !hasTo {
			continue
		}

		col := fmt.Sprintf("%s.%s", s.Table, r.Column)

		// Extend the upper bound to the last instant of its calendar day so
		// a date-only "to" value includes the whole day.
		if hasTo {
			to = to.Add(24*time.Hour - time.Millisecond)
		}

		switch {
		case hasFrom && hasTo:
			conds = append(conds, Condition{Expr: col + " BETWEEN ? AND ?", Args: []any{from, to}})
		case hasFrom:
			conds = append(conds, Condition{Expr: col + " >= ?", Args: []any{from}})
		default:
			conds = append(conds, Condition{Expr: col + " <= ?", Args: []any{to}})
		}
	}

	return conds
}

func firstValue(params url.Values, key string) (string, bool) {
	vs, ok := params[key]
	if !ok || len(vs) == 0 {
		return "", false
	}
	return vs[0], true
}

// parseIntSet flattens repeated and comma-separated values into a list of
// integers, dropping entries that do not parse.
func parseIntSet(values []string) []int {
	var ids []int
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			n, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				continue
			}
			ids = append(ids, n)
		}
	}
	return ids
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// ParseDate parses a date-only or timestamp string.
func ParseDate(raw string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func parseDateParam(params url.Values, key string) (time.Time, bool) {
	raw, ok := firstValue(params, key)
	if !ok || raw == "" {
		return time.Time{}, false
	}
	return ParseDate(raw)
}
