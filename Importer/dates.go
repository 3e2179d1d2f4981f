package Importer

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Excel serial day 0 is 1899-12-30; the Unix epoch falls on serial 25569.
const excelEpochOffset = 25569

// ParseCellDate normalizes a cell value into a timestamp. Three shapes
// are accepted:
//
//   - a DD/MM/YYYY string (day-month-year only, never month first),
//     which becomes midnight UTC of that date
//   - a numeric Excel date serial, converted via whole days against the
//     25569 epoch offset
//   - anything else (empty, garbage) yields nil
//
// Only call this on cells known to hold dates: plain counts in the serial
// range will happily come back as timestamps.
func ParseCellDate(v string) *time.Time {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}

	if strings.Contains(v, "/") {
		parts := strings.Split(v, "/")
		if len(parts) != 3 {
			return nil
		}
		d, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
		m, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
		y, err3 := strconv.Atoi(strings.TrimSpace(parts[2]))
		if err1 != nil || err2 != nil || err3 != nil {
			return nil
		}
		if m < 1 || m > 12 || d < 1 || d > 31 {
			return nil
		}
		t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
		return &t
	}

	if serial, err := strconv.ParseFloat(v, 64); err == nil {
		days := math.Floor(serial - excelEpochOffset)
		t := time.Unix(int64(days)*86400, 0).UTC()
		return &t
	}

	return nil
}

// FechaISO renders a normalized date the way the rest of the system
// stores dates, or "" for nil.
func FechaISO(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

// DiasRestantes counts whole days from today until the given date.
// Negative means already expired.
func DiasRestantes(t time.Time) int {
	hoy := time.Now().UTC().Truncate(24 * time.Hour)
	return int(t.Sub(hoy).Hours() / 24)
}
