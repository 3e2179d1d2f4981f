package Importer

import (
	"testing"

	"Maquinaria/Models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func refDePrueba() *RefData {
	ref := &RefData{
		porCodigo: map[string]*EquipoRef{},
		porPlaca:  map[string]*EquipoRef{},
	}
	ref.AddEquipo(EquipoRef{ID: 1, Codigo: "EXC-001", Placa: "ABC-123", Horometro: 1500})
	return ref
}

func TestParseEquipoRow(t *testing.T) {
	row := Row{
		"Código":    "EXC-001",
		"Tipo":      "EXCAVADORA",
		"Marca":     "CATERPILLAR",
		"Horómetro": "1500.5",
		"Año":       "2020",
	}
	e := ParseEquipoRow(row)
	assert.Equal(t, "EXC-001", e.Codigo)
	assert.Equal(t, "EXCAVADORA", e.Tipo)
	assert.InDelta(t, 1500.5, e.Horometro, 0.001)
	assert.Equal(t, 2020, e.Anio)
}

func TestEquipoRowValidate(t *testing.T) {
	e := EquipoRow{Codigo: "EXC-001", Tipo: "EXCAVADORA"}
	e.Validate()
	assert.True(t, e.Valid)

	sinCodigo := EquipoRow{Tipo: "EXCAVADORA"}
	sinCodigo.Validate()
	assert.False(t, sinCodigo.Valid)
	assert.Equal(t, "Código requerido", sinCodigo.Error)

	sinTipo := EquipoRow{Codigo: "EXC-002"}
	sinTipo.Validate()
	assert.False(t, sinTipo.Valid)
	assert.Equal(t, "Tipo requerido", sinTipo.Error)
}

func TestParseControlEquipoRowDefaults(t *testing.T) {
	row := Row{"CODIGO": "EXC-009", "ESTADO": "OPERATIVO"}
	e := ParseControlEquipoRow(row)
	assert.Equal(t, "DESCONOCIDO", e.Tipo)
	assert.Equal(t, "CATERPILLAR", e.Marca)
	assert.Equal(t, Models.EstadoOperativo, e.Estado)
	assert.True(t, e.AsignarEmpresa)

	enTaller := ParseControlEquipoRow(Row{"CODIGO": "EXC-010", "ESTADO": "PARADO"})
	assert.Equal(t, Models.EstadoEnMantenimiento, enTaller.Estado)
}

func TestSoatRowValidate(t *testing.T) {
	ref := refDePrueba()

	row := Row{
		"Código Equipo":     "EXC-001",
		"Número Póliza":     "POL-001",
		"Aseguradora":       "RIMAC",
		"Fecha Inicio":      "01/01/2024",
		"Fecha Vencimiento": "01/01/2025",
	}
	s := ParseSoatRow(row)
	s.Validate(ref)
	require.True(t, s.Valid)
	assert.Equal(t, uint(1), s.EquipoID)

	desconocido := ParseSoatRow(Row{"Código Equipo": "NO-EXISTE", "Número Póliza": "P", "Aseguradora": "A"})
	desconocido.Validate(ref)
	assert.False(t, desconocido.Valid)
	assert.Equal(t, "Equipo no encontrado", desconocido.Error)

	sinFechas := ParseSoatRow(Row{"Código Equipo": "EXC-001", "Número Póliza": "P", "Aseguradora": "A"})
	sinFechas.Validate(ref)
	assert.False(t, sinFechas.Valid)
	assert.Equal(t, "Fechas requeridas", sinFechas.Error)
}

func TestSoatRowResolvesByPlaca(t *testing.T) {
	ref := refDePrueba()
	s := ParseSoatRow(Row{
		"Código Equipo":     "abc-123",
		"Número Póliza":     "POL-002",
		"Aseguradora":       "MAPFRE",
		"Fecha Inicio":      "01/01/2024",
		"Fecha Vencimiento": "01/01/2025",
	})
	s.Validate(ref)
	require.True(t, s.Valid)
	assert.Equal(t, uint(1), s.EquipoID)
}

func TestParseControlSoatRowPlaceholders(t *testing.T) {
	s := ParseControlSoatRow(Row{"CODIGO": "EXC-001", "FECHA VENCIMIENTO": "45292"})
	assert.Equal(t, "S/N", s.NumeroPoliza)
	assert.Equal(t, "NO ESPECIFICADO", s.Aseguradora)
	require.NotNil(t, s.FechaInicio)
	require.NotNil(t, s.FechaVencimiento)
	assert.Equal(t, "2024-01-01", FechaISO(s.FechaVencimiento))
}

func TestRevisionRowValidate(t *testing.T) {
	ref := refDePrueba()

	rv := ParseRevisionRow(Row{
		"Código Equipo":     "EXC-001",
		"Fecha Revisión":    "15/01/2024",
		"Fecha Vencimiento": "15/01/2025",
	})
	rv.Validate(ref)
	assert.True(t, rv.Valid)
	assert.Equal(t, Models.RevisionAprobada, rv.Resultado)

	sinFechas := ParseRevisionRow(Row{"Código Equipo": "EXC-001"})
	sinFechas.Validate(ref)
	assert.False(t, sinFechas.Valid)
	assert.Equal(t, "Fechas requeridas", sinFechas.Error)
}

func TestMantenimientoRowValidate(t *testing.T) {
	ref := refDePrueba()

	m := ParseMantenimientoRow(Row{
		"Código Equipo": "EXC-001",
		"Descripción":   "Cambio de aceite",
	})
	m.Validate(ref)
	assert.True(t, m.Valid)
	assert.Equal(t, Models.MantenimientoPreventivo, m.Tipo)

	sinDescripcion := ParseMantenimientoRow(Row{"Código Equipo": "EXC-001"})
	sinDescripcion.Validate(ref)
	assert.False(t, sinDescripcion.Valid)
	assert.Equal(t, "Descripción requerida", sinDescripcion.Error)
}

func TestControlMantenimientoRowValidate(t *testing.T) {
	ref := refDePrueba()

	m := ParseControlMantenimientoRow(Row{
		"CODIGO":        "EXC-001",
		"MANTENIMIENTO": "1400",
		"HORA ACTUAL":   "1550",
		"OPERADOR":      "J. PEREZ",
	})
	m.Validate(ref)
	require.True(t, m.Valid)
	assert.InDelta(t, 1400, m.UltimoMantenimiento, 0.001)
	assert.InDelta(t, 1550, m.HoraActual, 0.001)

	sinHorometro := ParseControlMantenimientoRow(Row{"CODIGO": "EXC-001"})
	sinHorometro.Validate(ref)
	assert.False(t, sinHorometro.Valid)
	assert.Equal(t, "Horómetro de mantenimiento requerido", sinHorometro.Error)
}
