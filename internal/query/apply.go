package query

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/projectdesk/projectdesk/internal/models"
)

// ApplyConditions ANDs the built predicates onto the query.
func ApplyConditions(tx *gorm.DB, conds []Condition) *gorm.DB {
	for _, c := range conds {
		tx = tx.Where(c.Expr, c.Args...)
	}
	return tx
}

// ApplyOrder appends the sort columns, table-qualified so joined tables
// cannot shadow them.
func ApplyOrder(tx *gorm.DB, s *Schema, orders []Order) *gorm.DB {
	for _, o := range orders {
		tx = tx.Order(fmt.Sprintf("%s.%s %s", s.Table, o.Column, strings.ToUpper(o.Direction)))
	}
	return tx
}

// SelectColumns resolves the SELECT list for a projected fetch. A nil fields
// list means no restriction. Otherwise the requested fields are widened with
// the foreign keys the includes resolve through (Preload cannot load a
// belongs-to association whose FK was projected away) and, under a distinct
// selection, with the sort columns — postgres rejects a DISTINCT query whose
// ORDER BY expressions are missing from the select list. ShapeRow strips the
// widening back out of the response.
func SelectColumns(s *Schema, fields []string, incs []Include, orders []Order, distinct bool) []string {
	if fields == nil {
		return nil
	}

	cols := make([]string, len(fields))
	copy(cols, fields)
	have := make(map[string]bool, len(cols))
	for _, c := range cols {
		have[c] = true
	}

	for _, inc := range incs {
		fk := inc.Relation.FKColumn
		if fk == "" || inc.Relation.Association == "" || have[fk] {
			continue
		}
		have[fk] = true
		cols = append(cols, fk)
	}

	if distinct {
		for _, o := range orders {
			if have[o.Column] {
				continue
			}
			have[o.Column] = true
			cols = append(cols, o.Column)
		}
	}

	return cols
}

// ApplyProjection sets the selected columns. With a required join in play the
// selection turns distinct to avoid duplicate parent rows.
func ApplyProjection(tx *gorm.DB, s *Schema, cols []string, distinct bool) *gorm.DB {
	var qualified []string
	if cols == nil {
		qualified = []string{s.Table + ".*"}
	} else {
		qualified = make([]string, 0, len(cols))
		for _, c := range cols {
			qualified = append(qualified, s.Table+"."+c)
		}
	}

	if distinct {
		args := make([]any, 0, len(qualified))
		for _, c := range qualified {
			args = append(args, c)
		}
		return tx.Distinct(args...)
	}
	if cols != nil {
		return tx.Select(qualified)
	}
	return tx
}

// ApplyRequiredJoins adds the inner joins (and their equality conditions) for
// required directives. Used by both the count and the fetch query.
func ApplyRequiredJoins(tx *gorm.DB, incs []Include) *gorm.DB {
	for _, inc := range incs {
		if !inc.Required || inc.Relation.JoinExpr == "" {
			continue
		}
		tx = tx.Joins(inc.Relation.JoinExpr).Where(inc.Relation.JoinColumn+" = ?", inc.AssigneeID)
	}
	return tx
}

// ApplyPreloads registers the eager loads. Person-backed relations are
// restricted to the public Person columns; a required assignee include is
// additionally scoped to the filtered assignee so the loaded rows mirror the
// join.
func ApplyPreloads(tx *gorm.DB, incs []Include) *gorm.DB {
	for _, inc := range incs {
		rel := inc.Relation
		if rel.Association == "" {
			continue
		}
		switch {
		case inc.Required && rel.Person:
			assigneeID := inc.AssigneeID
			tx = tx.Preload(rel.Association, func(db *gorm.DB) *gorm.DB {
				return db.Select(models.PersonPublicColumns).Where("people.employee_id = ?", assigneeID)
			})
		case rel.Person:
			tx = tx.Preload(rel.Association, func(db *gorm.DB) *gorm.DB {
				return db.Select(models.PersonPublicColumns)
			})
		default:
			tx = tx.Preload(rel.Association)
		}
	}
	return tx
}

// CountDistinct counts parent rows keyed on the primary key, reflecting any
// required joins without duplicate-row inflation.
func CountDistinct(tx *gorm.DB, s *Schema) *gorm.DB {
	return tx.Distinct(fmt.Sprintf("%s.%s", s.Table, s.PrimaryKey))
}
