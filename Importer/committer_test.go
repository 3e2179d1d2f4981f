package Importer

import (
	"strings"
	"testing"
	"time"

	"Maquinaria/Models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func committerDePrueba(t *testing.T, db *gorm.DB) (*Committer, *ImportLog) {
	t.Helper()
	ref, err := LoadRefData(db)
	require.NoError(t, err)
	lg := NewImportLog()
	return NewCommitter(db, ref, lg), lg
}

func equipoValido(codigo string, horometro float64) EquipoRow {
	e := EquipoRow{Codigo: codigo, Tipo: "EXCAVADORA", Marca: "CATERPILLAR", Horometro: horometro}
	e.Validate()
	return e
}

func TestCommitEquiposInsertaYActualiza(t *testing.T) {
	db := dbDePrueba(t)
	com, _ := committerDePrueba(t, db)

	st := com.CommitEquipos([]EquipoRow{equipoValido("EXC-001", 1500)})
	assert.Equal(t, 1, st.Importados)

	// same code again: overwrite, not a duplicate
	fila := equipoValido("EXC-001", 1600)
	fila.Modelo = "320D"
	st = com.CommitEquipos([]EquipoRow{fila})
	assert.Equal(t, 1, st.Importados)

	var count int64
	db.Model(&Models.Equipo{}).Count(&count)
	assert.EqualValues(t, 1, count)

	var equipo Models.Equipo
	require.NoError(t, db.Where("codigo = ?", "EXC-001").First(&equipo).Error)
	assert.Equal(t, "320D", equipo.Modelo)
	assert.InDelta(t, 1600, equipo.HorometroActual, 0.001)
}

func TestCommitEquiposHorometroNoRetrocede(t *testing.T) {
	db := dbDePrueba(t)
	com, lg := committerDePrueba(t, db)

	com.CommitEquipos([]EquipoRow{equipoValido("EXC-001", 2000)})
	com.CommitEquipos([]EquipoRow{equipoValido("EXC-001", 1200)})

	var equipo Models.Equipo
	require.NoError(t, db.Where("codigo = ?", "EXC-001").First(&equipo).Error)
	assert.InDelta(t, 2000, equipo.HorometroActual, 0.001, "la lectura menor no pisa la registrada")
	assert.Greater(t, lg.Len(), 0, "la decisión queda en el log")
}

func TestCommitEquiposFilaInvalida(t *testing.T) {
	db := dbDePrueba(t)
	com, lg := committerDePrueba(t, db)

	invalida := EquipoRow{Codigo: "EXC-002"}
	invalida.Validate()

	st := com.CommitEquipos([]EquipoRow{invalida, equipoValido("EXC-003", 100)})
	assert.Equal(t, 2, st.Leidos)
	assert.Equal(t, 1, st.Validos)
	assert.Equal(t, 1, st.Importados)
	assert.Greater(t, lg.Len(), 0)
}

func TestCommitEquiposAsignaEmpresaConFallback(t *testing.T) {
	db := dbDePrueba(t)
	require.NoError(t, db.Create(&Models.Empresa{RUC: "20100000001", RazonSocial: "JORGE CONSTRUCCIONES SAC"}).Error)
	require.NoError(t, db.Create(&Models.Empresa{RUC: "20100000002", RazonSocial: "TRANSPORTES DEL SUR EIRL"}).Error)
	com, lg := committerDePrueba(t, db)

	fila := equipoValido("EXC-001", 100)
	fila.AsignarEmpresa = true
	fila.Empresa = "EMPRESA FANTASMA"
	com.CommitEquipos([]EquipoRow{fila})

	var equipo Models.Equipo
	require.NoError(t, db.Where("codigo = ?", "EXC-001").First(&equipo).Error)
	require.NotNil(t, equipo.EmpresaID)
	assert.EqualValues(t, 1, *equipo.EmpresaID, "sin coincidencia se asigna la primera empresa")

	fallbackLogueado := false
	for _, entry := range lg.Snapshot() {
		if strings.Contains(entry.Message, "empresa por defecto") {
			fallbackLogueado = true
		}
	}
	assert.True(t, fallbackLogueado, "el fallback queda registrado en el log")
}

func soatValido(t *testing.T, ref *RefData, codigo string, venc time.Time) SoatRow {
	t.Helper()
	inicio := venc.AddDate(-1, 0, 0)
	s := SoatRow{
		EquipoCodigo:     codigo,
		NumeroPoliza:     "POL-001",
		Aseguradora:      "RIMAC",
		FechaInicio:      &inicio,
		FechaVencimiento: &venc,
	}
	s.Validate(ref)
	require.True(t, s.Valid)
	return s
}

func TestCommitSoatDeduplica(t *testing.T) {
	db := dbDePrueba(t)
	require.NoError(t, db.Create(&Models.Equipo{Codigo: "EXC-001", Tipo: "EXCAVADORA", Activo: true}).Error)
	com, _ := committerDePrueba(t, db)

	venc := time.Now().UTC().AddDate(0, 6, 0)
	st := com.CommitSoat([]SoatRow{soatValido(t, com.Ref, "EXC-001", venc)})
	assert.Equal(t, 1, st.Importados)

	st = com.CommitSoat([]SoatRow{soatValido(t, com.Ref, "EXC-001", venc)})
	assert.Equal(t, 0, st.Importados)
	assert.Equal(t, 1, st.Omitidos)

	var count int64
	db.Model(&Models.Soat{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestCommitSoatGeneraAlertaProximaAVencer(t *testing.T) {
	db := dbDePrueba(t)
	require.NoError(t, db.Create(&Models.Equipo{Codigo: "EXC-001", Tipo: "EXCAVADORA", Activo: true}).Error)
	com, _ := committerDePrueba(t, db)

	venc := time.Now().UTC().AddDate(0, 0, 10)
	com.CommitSoat([]SoatRow{soatValido(t, com.Ref, "EXC-001", venc)})

	var alertas []Models.Alerta
	db.Where("tipo = ?", Models.AlertaSoat).Find(&alertas)
	require.Len(t, alertas, 1)
	assert.Equal(t, Models.PrioridadUrgente, alertas[0].Prioridad)
}

func TestCommitSoatSinAlertaLejana(t *testing.T) {
	db := dbDePrueba(t)
	require.NoError(t, db.Create(&Models.Equipo{Codigo: "EXC-001", Tipo: "EXCAVADORA", Activo: true}).Error)
	com, _ := committerDePrueba(t, db)

	venc := time.Now().UTC().AddDate(0, 0, 90)
	com.CommitSoat([]SoatRow{soatValido(t, com.Ref, "EXC-001", venc)})

	var count int64
	db.Model(&Models.Alerta{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestCommitControlMantenimientos(t *testing.T) {
	db := dbDePrueba(t)
	require.NoError(t, db.Create(&Models.Equipo{Codigo: "EXC-001", Tipo: "EXCAVADORA", HorometroActual: 1000, Activo: true}).Error)
	com, _ := committerDePrueba(t, db)

	prox := 1900.0
	fila := ControlMantenimientoRow{
		EquipoCodigo:         "EXC-001",
		UltimoMantenimiento:  1400,
		TieneUltimo:          true,
		ProximoMantenimiento: &prox,
		HoraActual:           1550,
		Operador:             "J. PEREZ",
	}
	fila.Validate(com.Ref)
	require.True(t, fila.Valid)

	st := com.CommitControlMantenimientos([]ControlMantenimientoRow{fila})
	assert.Equal(t, 1, st.Importados)

	// the machine's hour-meter rises to the reported reading
	var equipo Models.Equipo
	require.NoError(t, db.Where("codigo = ?", "EXC-001").First(&equipo).Error)
	assert.InDelta(t, 1550, equipo.HorometroActual, 0.001)

	var mant Models.Mantenimiento
	require.NoError(t, db.Where("equipo_id = ?", equipo.ID).First(&mant).Error)
	assert.Equal(t, Models.MantenimientoCompletado, mant.Estado)
	require.NotNil(t, mant.HorometroMantenimiento)
	assert.InDelta(t, 1400, *mant.HorometroMantenimiento, 0.001)

	// re-running the same row inserts nothing new
	st = com.CommitControlMantenimientos([]ControlMantenimientoRow{fila})
	assert.Equal(t, 0, st.Importados)
	assert.Equal(t, 1, st.Omitidos)
}

func TestCommitControlMantenimientosHorometroNoRetrocede(t *testing.T) {
	db := dbDePrueba(t)
	require.NoError(t, db.Create(&Models.Equipo{Codigo: "EXC-001", Tipo: "EXCAVADORA", HorometroActual: 2000, Activo: true}).Error)
	com, _ := committerDePrueba(t, db)

	fila := ControlMantenimientoRow{
		EquipoCodigo:        "EXC-001",
		UltimoMantenimiento: 1400,
		TieneUltimo:         true,
		HoraActual:          1550,
	}
	fila.Validate(com.Ref)
	com.CommitControlMantenimientos([]ControlMantenimientoRow{fila})

	var equipo Models.Equipo
	require.NoError(t, db.Where("codigo = ?", "EXC-001").First(&equipo).Error)
	assert.InDelta(t, 2000, equipo.HorometroActual, 0.001)
}
