package Importer

import (
	"strconv"
	"strings"
)

// String resolves a field by trying each header alias in order and
// returning the first non-missing value. Spreadsheet authors are not
// consistent about casing or accents, so every field carries its known
// variants.
func (r Row) String(aliases ...string) (string, bool) {
	for _, alias := range aliases {
		if v, ok := r[alias]; ok {
			return v, true
		}
	}
	return "", false
}

// Float resolves a numeric field. A value that does not parse as a number
// is absent, not zero; callers apply explicit defaults where the category
// defines one.
func (r Row) Float(aliases ...string) (float64, bool) {
	v, ok := r.String(aliases...)
	if !ok {
		return 0, false
	}
	f, err := parseNumber(v)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Int resolves an integer field, tolerating values written as floats
// ("2020.0" is a year too).
func (r Row) Int(aliases ...string) (int, bool) {
	f, ok := r.Float(aliases...)
	if !ok {
		return 0, false
	}
	return int(f), true
}

// parseNumber parses a cell value regardless of the author's decimal
// separator. "1,234.56" and "1234,56" both come out as 1234.56.
func parseNumber(v string) (float64, error) {
	v = strings.TrimSpace(v)
	v = strings.ReplaceAll(v, " ", "")
	if strings.Contains(v, ",") {
		if strings.Contains(v, ".") {
			// comma is the thousands separator
			v = strings.ReplaceAll(v, ",", "")
		} else {
			v = strings.ReplaceAll(v, ",", ".")
		}
	}
	return strconv.ParseFloat(v, 64)
}
