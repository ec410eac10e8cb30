// Package csvdata reads the flat seed files that predate the managed
// database. Two column-mapping strategies coexist: the startups file maps
// columns strictly by position, the members file by header name.
package csvdata

import (
	"encoding/csv"
	"io"
	"strings"
)

// PositionalRows reads raw CSV and returns every row as a positional
// value slice. Rows may be ragged; callers index defensively.
func PositionalRows(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	return cr.ReadAll()
}

// HeaderNamedRows reads raw CSV treating the first row as a header and
// maps each subsequent row's values to the header names by position.
// Files with fewer than two rows yield no records.
func HeaderNamedRows(r io.Reader) ([]map[string]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, nil
	}

	header := rows[0]
	out := make([]map[string]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := make(map[string]string, len(header))
		for i, name := range header {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			if i < len(row) {
				rec[name] = row[i]
			} else {
				rec[name] = ""
			}
		}
		out = append(out, rec)
	}
	return out, nil
}

// col returns the value at index i or "" for short rows.
func col(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
