package Importer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCellDateSerial(t *testing.T) {
	// 45292 is 2024-01-01 in Excel's serial scheme
	got := ParseCellDate("45292")
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), *got)
}

func TestParseCellDateSerialFraction(t *testing.T) {
	// the time-of-day fraction is discarded
	got := ParseCellDate("45292.75")
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), *got)
}

func TestParseCellDateDDMMYYYY(t *testing.T) {
	got := ParseCellDate("15/01/2024")
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), *got)
}

func TestParseCellDateDayMonthOrder(t *testing.T) {
	// day always comes first, never the month
	got := ParseCellDate("02/03/2024")
	require.NotNil(t, got)
	assert.Equal(t, time.March, got.Month())
	assert.Equal(t, 2, got.Day())
}

func TestParseCellDateInvalid(t *testing.T) {
	casos := []string{"", "   ", "no es fecha", "32/01/2024", "15/13/2024", "1/2", "a/b/c"}
	for _, c := range casos {
		assert.Nil(t, ParseCellDate(c), "entrada %q", c)
	}
}

func TestFechaISO(t *testing.T) {
	fecha := time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-06-05", FechaISO(&fecha))
	assert.Equal(t, "", FechaISO(nil))
}

func TestDiasRestantes(t *testing.T) {
	futuro := time.Now().UTC().AddDate(0, 0, 10)
	dias := DiasRestantes(futuro)
	assert.InDelta(t, 10, dias, 1)

	pasado := time.Now().UTC().AddDate(0, 0, -5)
	assert.Less(t, DiasRestantes(pasado), 0)
}
