package Importer

import (
	"bytes"
	"testing"
	"time"

	"Maquinaria/Models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// libroDeControl builds a bulk control workbook with the four known
// sheets, two title rows above each header row.
func libroDeControl(t *testing.T, hojas map[string][][]interface{}) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for nombre, filas := range hojas {
		_, err := f.NewSheet(nombre)
		require.NoError(t, err)
		for i, fila := range filas {
			for j, valor := range fila {
				celda, err := excelize.CoordinatesToCellName(j+1, i+1)
				require.NoError(t, err)
				require.NoError(t, f.SetCellValue(nombre, celda, valor))
			}
		}
	}
	f.DeleteSheet("Sheet1")

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return buf.Bytes()
}

func TestRunControlImport(t *testing.T) {
	db := dbDePrueba(t)
	require.NoError(t, db.Create(&Models.Empresa{RUC: "20100000001", RazonSocial: "JORGE CONSTRUCCIONES SAC"}).Error)

	venc := time.Now().UTC().AddDate(0, 0, 20).Format("02/01/2006")

	data := libroDeControl(t, map[string][][]interface{}{
		SheetMaquinaria: {
			{"CONTROL DE MAQUINARIA"},
			{},
			{"CODIGO", "TIPO", "HORAS ACTUALES", "EMPRESA", "ESTADO", "TRAMO"},
			{"EXC-001", "EXCAVADORA", 1500.5, "JORGE", "OPERATIVO", "KM 12"},
			{"ROD-002", "RODILLO", 800, "CUSMA", "OPERATIVO", "KM 30"},
		},
		SheetSoat: {
			{"CONTROL SOAT"},
			{},
			{"CODIGO", "PLACA/SERIE", "FECHA VENCIMIENTO"},
			{"EXC-001", "ABC-123", venc},
		},
		SheetRevisiones: {
			{"REVISIONES TECNICAS"},
			{},
			{"CODIGO", "FECHA VENCIMIENTO"},
			{"EXC-001", venc},
		},
		SheetMantenimientos: {
			{"CONTROL MANTENIMIENTOS"},
			{},
			{"CODIGO", "MANTENIMIENTO", "MANTENIMIENTO PROX", "HORA ACTUAL", "OPERADOR"},
			{"EXC-001", 1400, 1900, 1550, "J. PEREZ"},
		},
	})

	lg := NewImportLog()
	res, err := RunControlImport(db, data, lg)
	require.NoError(t, err)

	assert.Equal(t, 2, res.Equipos.Importados)
	assert.Equal(t, 1, res.Soat.Importados)
	assert.Equal(t, 1, res.Revisiones.Importados)
	assert.Equal(t, 1, res.Mantenimientos.Importados)
	assert.NotEmpty(t, res.Log)

	// equipment inserted by the run resolves for the later sheets
	var soat Models.Soat
	require.NoError(t, db.First(&soat).Error)
	var equipo Models.Equipo
	require.NoError(t, db.Where("codigo = ?", "EXC-001").First(&equipo).Error)
	assert.Equal(t, equipo.ID, soat.EquipoID)

	// company assignment happened during the equipment pass
	require.NotNil(t, equipo.EmpresaID)

	// the maintenance sheet raised the hour-meter past the BD MAQUINARIA value
	assert.InDelta(t, 1550, equipo.HorometroActual, 0.001)

	// SOAT expiring within 30 days produced an alert
	var alertas int64
	db.Model(&Models.Alerta{}).Where("tipo = ?", Models.AlertaSoat).Count(&alertas)
	assert.EqualValues(t, 1, alertas)
}

func TestRunControlImportEsIdempotente(t *testing.T) {
	db := dbDePrueba(t)
	require.NoError(t, db.Create(&Models.Empresa{RUC: "20100000001", RazonSocial: "JORGE CONSTRUCCIONES SAC"}).Error)

	venc := time.Now().UTC().AddDate(1, 0, 0).Format("02/01/2006")
	data := libroDeControl(t, map[string][][]interface{}{
		SheetMaquinaria: {
			{"CONTROL DE MAQUINARIA"},
			{},
			{"CODIGO", "TIPO", "HORAS ACTUALES"},
			{"EXC-001", "EXCAVADORA", 1500},
		},
		SheetSoat: {
			{"CONTROL SOAT"},
			{},
			{"CODIGO", "FECHA VENCIMIENTO"},
			{"EXC-001", venc},
		},
	})

	_, err := RunControlImport(db, data, NewImportLog())
	require.NoError(t, err)
	res, err := RunControlImport(db, data, NewImportLog())
	require.NoError(t, err)

	assert.Equal(t, 1, res.Equipos.Importados, "el equipo se actualiza, no se duplica")
	assert.Equal(t, 1, res.Soat.Omitidos, "el SOAT repetido se omite")

	var equipos, soats int64
	db.Model(&Models.Equipo{}).Count(&equipos)
	db.Model(&Models.Soat{}).Count(&soats)
	assert.EqualValues(t, 1, equipos)
	assert.EqualValues(t, 1, soats)
}

func TestRunControlImportHojasFaltantes(t *testing.T) {
	db := dbDePrueba(t)

	data := libroDeControl(t, map[string][][]interface{}{
		SheetMaquinaria: {
			{"CONTROL DE MAQUINARIA"},
			{},
			{"CODIGO", "TIPO"},
			{"EXC-001", "EXCAVADORA"},
		},
	})

	res, err := RunControlImport(db, data, NewImportLog())
	require.NoError(t, err, "las hojas ausentes no son un error")
	assert.Equal(t, 1, res.Equipos.Importados)
	assert.Equal(t, 0, res.Soat.Leidos)
}

func TestRunCategoryImportEquipos(t *testing.T) {
	db := dbDePrueba(t)

	data := libroDePrueba(t, "Equipos", [][]interface{}{
		{"Código", "Tipo", "Horómetro"},
		{"EXC-001", "EXCAVADORA", 1200},
		{"ROD-002", "", 300},
		{"EXC-001", "EXCAVADORA", 1350},
	})

	lg := NewImportLog()
	st, err := RunCategoryImport(db, CategoriaEquipos, data, lg)
	require.NoError(t, err)

	assert.Equal(t, 3, st.Leidos)
	assert.Equal(t, 2, st.Validos, "la fila sin tipo se rechaza")
	assert.Equal(t, 2, st.Importados)

	// the duplicated code collapses into one record with the later reading
	var count int64
	db.Model(&Models.Equipo{}).Count(&count)
	assert.EqualValues(t, 1, count)

	var equipo Models.Equipo
	require.NoError(t, db.Where("codigo = ?", "EXC-001").First(&equipo).Error)
	assert.InDelta(t, 1350, equipo.HorometroActual, 0.001)

	rechazoLogueado := false
	for _, e := range lg.Snapshot() {
		if e.Message == `Equipo "ROD-002": Tipo requerido` {
			rechazoLogueado = true
		}
	}
	assert.True(t, rechazoLogueado, "el rechazo aparece en el log con su motivo")
}

func TestRunCategoryImportCategoriaDesconocida(t *testing.T) {
	db := dbDePrueba(t)
	data := libroDePrueba(t, "X", [][]interface{}{{"A"}, {"1"}})

	_, err := RunCategoryImport(db, "camiones", data, NewImportLog())
	assert.ErrorIs(t, err, ErrCategoriaDesconocida)
}
