package ingest

import (
	"strings"
)

// Result counts what happened to each row of an uploaded file.
type Result struct {
	Processed int `json:"processed"`
	Skipped   int `json:"skipped"`
	Errors    int `json:"errors"`
}

func (r Result) Total() int {
	return r.Processed + r.Skipped + r.Errors
}

// cleanHeader trims each column name and strips the UTF-8 BOM that Excel
// prepends to the first cell. Returns a column-name → index map.
func cleanHeader(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimPrefix(name, "\uFEFF")
		cols[strings.TrimSpace(name)] = i
	}
	return cols
}

func field(row []string, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
