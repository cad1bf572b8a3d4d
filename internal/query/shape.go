package query

import "encoding/json"

// ShapeRow serializes a fetched row to a map whose keys are exactly the
// projected attributes plus any include aliases. With no projection the full
// attribute map comes back unchanged. Associations that were not loaded are
// absent via omitempty, so no filtering is needed in the unprojected case.
func ShapeRow(row any, fields []string, aliases []string) (map[string]any, error) {
	b, err := json.Marshal(row)
	if err != nil {
		return nil, err
	}

	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}

	if fields == nil {
		return m, nil
	}

	keep := make(map[string]bool, len(fields)+len(aliases))
	for _, f := range fields {
		keep[f] = true
	}
	for _, a := range aliases {
		keep[a] = true
	}
	for k := range m {
		if !keep[k] {
			delete(m, k)
		}
	}
	return m, nil
}
