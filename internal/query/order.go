package query

import (
	"strings"

	"github.com/projectdesk/projectdesk/internal/apperror"
)

// BuildOrder translates a comma-separated "field" / "field:direction" sort
// specification into an ordered column list. Unlike filtering, sort problems
// are hard failures surfaced as 400s.
func BuildOrder(s *Schema, sort string) ([]Order, error) {
	if strings.TrimSpace(sort) == "" {
		return []Order{{Column: s.CreatedCol, Direction: "desc"}}, nil
	}

	var orders []Order
	for _, token := range strings.Split(sort, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		field := token
		direction := "asc"
		if idx := strings.Index(token, ":"); idx >= 0 {
			field = token[:idx]
			direction = token[idx+1:]
		}
		direction = strings.ToLower(direction)

		if direction != "asc" && direction != "desc" {
			return nil, apperror.Validation("Invalid sort order")
		}
		if !s.hasAttribute(field) {
			return nil, apperror.Validation("Invalid sort field")
		}

		orders = append(orders, Order{Column: field, Direction: direction})
	}

	if len(orders) == 0 {
		orders = append(orders, Order{Column: s.CreatedCol, Direction: "desc"})
	}

	return orders, nil
}
