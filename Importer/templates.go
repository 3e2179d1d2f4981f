package Importer

import (
	"bytes"
	"errors"

	"github.com/xuri/excelize/v2"
)

// Import categories as they appear in URLs and template filenames.
const (
	CategoriaEquipos        = "equipos"
	CategoriaSoat           = "soat"
	CategoriaRevisiones     = "revisiones"
	CategoriaMantenimientos = "mantenimientos"
)

var ErrCategoriaDesconocida = errors.New("categoría de importación desconocida")

type plantilla struct {
	hoja     string
	cabecera []string
	ejemplo  []interface{}
}

var plantillas = map[string]plantilla{
	CategoriaEquipos: {
		hoja:     "Equipos",
		cabecera: []string{"Código", "Tipo", "Marca", "Modelo", "Serie", "Placa", "Año", "Horómetro", "Tarifa"},
		ejemplo:  []interface{}{"EXC-001", "EXCAVADORA", "CATERPILLAR", "320D", "CAT320D001", "ABC-123", 2020, 1500.5, 180.0},
	},
	CategoriaSoat: {
		hoja:     "SOAT",
		cabecera: []string{"Código Equipo", "Número Póliza", "Aseguradora", "Fecha Inicio", "Fecha Vencimiento", "Monto"},
		ejemplo:  []interface{}{"EXC-001", "POL-2024-001", "RIMAC", "01/01/2024", "01/01/2025", 450.0},
	},
	CategoriaRevisiones: {
		hoja:     "Revisiones Técnicas",
		cabecera: []string{"Código Equipo", "Número Certificado", "Taller", "Fecha Revisión", "Fecha Vencimiento", "Resultado", "Costo"},
		ejemplo:  []interface{}{"EXC-001", "CERT-2024-001", "TECSUP", "15/01/2024", "15/01/2025", "aprobado", 120.0},
	},
	CategoriaMantenimientos: {
		hoja:     "Mantenimientos",
		cabecera: []string{"Código Equipo", "Tipo", "Descripción", "Fecha Programada", "Costo", "Proveedor"},
		ejemplo:  []interface{}{"EXC-001", "preventivo", "Cambio de aceite y filtros", "20/02/2024", 850.0, "FERREYROS"},
	},
}

// GenerateTemplate builds the downloadable workbook for one category: a
// bold header row plus one example row users overwrite with their data.
func GenerateTemplate(categoria string) ([]byte, error) {
	p, ok := plantillas[categoria]
	if !ok {
		return nil, ErrCategoriaDesconocida
	}

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(p.hoja)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	estilo, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"4472C4"}},
	})
	if err != nil {
		return nil, err
	}

	for i, titulo := range p.cabecera {
		celda, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(p.hoja, celda, titulo); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(p.hoja, celda, celda, estilo); err != nil {
			return nil, err
		}
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(p.hoja, col, col, 20); err != nil {
			return nil, err
		}
	}
	for i, valor := range p.ejemplo {
		celda, err := excelize.CoordinatesToCellName(i+1, 2)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(p.hoja, celda, valor); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
