package Importer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// libroDePrueba builds an in-memory workbook from rows of cells, starting
// at A1.
func libroDePrueba(t *testing.T, sheet string, filas [][]interface{}) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	_, err := f.NewSheet(sheet)
	require.NoError(t, err)
	f.DeleteSheet("Sheet1")

	for i, fila := range filas {
		for j, valor := range fila {
			celda, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, celda, valor))
		}
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return buf.Bytes()
}

func TestReadSheet(t *testing.T) {
	data := libroDePrueba(t, "Equipos", [][]interface{}{
		{"Código", "Tipo", "Horómetro"},
		{"EXC-001", "EXCAVADORA", 1500.5},
		{"EXC-002", "EXCAVADORA", 2000},
	})

	rows, err := ReadSheet(data, "Equipos", 0)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "EXC-001", rows[0]["Código"])
	assert.Equal(t, "EXCAVADORA", rows[0]["Tipo"])
}

func TestReadSheetHeaderOffset(t *testing.T) {
	data := libroDePrueba(t, "BD MAQUINARIA", [][]interface{}{
		{"CONTROL DE MAQUINARIA"},
		{},
		{"CODIGO", "TIPO"},
		{"EXC-001", "EXCAVADORA"},
	})

	rows, err := ReadSheet(data, "BD MAQUINARIA", 2)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "EXC-001", rows[0]["CODIGO"])
}

func TestReadSheetMissingSheetIsNotError(t *testing.T) {
	data := libroDePrueba(t, "Equipos", [][]interface{}{
		{"Código"},
		{"EXC-001"},
	})

	rows, err := ReadSheet(data, "CONTROL SOAT", 0)
	require.NoError(t, err)
	assert.Nil(t, rows)
}

func TestReadSheetSkipsEmptyRows(t *testing.T) {
	data := libroDePrueba(t, "Equipos", [][]interface{}{
		{"Código", "Tipo"},
		{"EXC-001", "EXCAVADORA"},
		{"", ""},
		{"EXC-002", "RODILLO"},
	})

	rows, err := ReadSheet(data, "Equipos", 0)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestReadSheetCorruptFile(t *testing.T) {
	_, err := ReadSheet([]byte("esto no es un xlsx"), "Equipos", 0)
	assert.Error(t, err)
}

func TestReadFirstSheet(t *testing.T) {
	data := libroDePrueba(t, "Cualquiera", [][]interface{}{
		{"Código"},
		{"EXC-001"},
	})

	rows, err := ReadFirstSheet(data)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "EXC-001", rows[0]["Código"])
}
