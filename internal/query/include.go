package query

import (
	"net/url"
	"strconv"
	"strings"
)

// BuildIncludes translates a comma-separated relation list into eager-load
// directives. Unknown tokens are dropped silently. The active filter set is
// consulted so the assignee filter can force a required include: filtering
// tasks by assigned_user_id only works through the Assignees join, so that
// include is synthesized (or merged into an explicitly requested one) with an
// inner join and the equality condition attached.
func BuildIncludes(s *Schema, include string, filter url.Values) []Include {
	var incs []Include
	seen := make(map[string]bool)

	for _, token := range strings.Split(include, ",") {
		key := strings.ToLower(strings.TrimSpace(token))
		if key == "" || seen[key] {
			continue
		}
		rel, ok := s.Relations[key]
		if !ok {
			continue
		}
		seen[key] = true
		incs = append(incs, Include{Relation: rel})
	}

	if filter != nil {
		if raw := filter.Get("assigned_user_id"); raw != "" {
			if id, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil {
				incs = forceAssignee(s, incs, id)
			}
		}
	}

	return incs
}

// forceAssignee merges the filter condition into an existing assignees
// include, or appends one. The merged include is always a required inner
// join and keeps the Person column restriction.
func forceAssignee(s *Schema, incs []Include, assigneeID int) []Include {
	rel, ok := s.Relations["assignees"]
	if !ok || rel.Association == "" {
		return incs
	}

	for i := range incs {
		if incs[i].Relation.Name == rel.Name {
			incs[i].Required = true
			incs[i].AssigneeID = assigneeID
			return incs
		}
	}

	return append(incs, Include{Relation: rel, Required: true, AssigneeID: assigneeID})
}

// HasRequired reports whether any directive demands an inner join, which
// forces distinct-row counting keyed on the primary key.
func HasRequired(incs []Include) bool {
	for _, inc := range incs {
		if inc.Required {
			return true
		}
	}
	return false
}

// IncludeAliases returns the result aliases the directives will surface,
// used to keep included associations visible under a field projection.
func IncludeAliases(incs []Include) []string {
	var aliases []string
	for _, inc := range incs {
		if inc.Relation.Association == "" {
			continue
		}
		aliases = append(aliases, inc.Relation.Alias)
	}
	return aliases
}
