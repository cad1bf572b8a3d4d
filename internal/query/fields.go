package query

import "strings"

// BuildFields validates a requested projection against the schema's attribute
// set. Unknown names are dropped; when nothing valid remains the projection
// falls back to all attributes (nil). The primary key is always included so
// identity stays resolvable downstream.
func BuildFields(s *Schema, fields string) []string {
	if strings.TrimSpace(fields) == "" {
		return nil
	}

	var valid []string
	for _, f := range strings.Split(fields, ",") {
		f = strings.TrimSpace(f)
		if f == "" || !s.hasAttribute(f) {
			continue
		}
		valid = append(valid, f)
	}

	if len(valid) == 0 {
		return nil
	}

	for _, f := range valid {
		if f == s.PrimaryKey {
			return valid
		}
	}
	return append(valid, s.PrimaryKey)
}
