package CronJobs

import (
	"testing"
	"time"

	"Maquinaria/Models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func dbDePrueba(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, Models.Migrate(db))
	return db
}

func fechaEnDias(dias int) string {
	return time.Now().UTC().AddDate(0, 0, dias).Format("2006-01-02")
}

func TestRevisarVencimientosSoat(t *testing.T) {
	db := dbDePrueba(t)
	equipo := Models.Equipo{Codigo: "EXC-001", Tipo: "EXCAVADORA", Activo: true}
	require.NoError(t, db.Create(&equipo).Error)
	require.NoError(t, db.Create(&Models.Soat{
		EquipoID:         equipo.ID,
		NumeroPoliza:     "POL-001",
		FechaVencimiento: fechaEnDias(10),
		Activo:           true,
	}).Error)

	creadas, err := RevisarVencimientos(db)
	require.NoError(t, err)
	assert.Equal(t, 1, creadas)

	var alerta Models.Alerta
	require.NoError(t, db.Where("tipo = ?", Models.AlertaSoat).First(&alerta).Error)
	assert.Equal(t, equipo.ID, alerta.EquipoID)
	assert.Equal(t, Models.PrioridadUrgente, alerta.Prioridad)
}

func TestRevisarVencimientosNoDuplica(t *testing.T) {
	db := dbDePrueba(t)
	equipo := Models.Equipo{Codigo: "EXC-001", Tipo: "EXCAVADORA", Activo: true}
	require.NoError(t, db.Create(&equipo).Error)
	require.NoError(t, db.Create(&Models.Soat{
		EquipoID:         equipo.ID,
		FechaVencimiento: fechaEnDias(10),
		Activo:           true,
	}).Error)

	_, err := RevisarVencimientos(db)
	require.NoError(t, err)
	creadas, err := RevisarVencimientos(db)
	require.NoError(t, err)
	assert.Equal(t, 0, creadas, "la segunda pasada no crea nada")

	var count int64
	db.Model(&Models.Alerta{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestRevisarVencimientosFueraDeVentana(t *testing.T) {
	db := dbDePrueba(t)
	equipo := Models.Equipo{Codigo: "EXC-001", Tipo: "EXCAVADORA", Activo: true}
	require.NoError(t, db.Create(&equipo).Error)
	require.NoError(t, db.Create(&Models.Soat{
		EquipoID:         equipo.ID,
		FechaVencimiento: fechaEnDias(90),
		Activo:           true,
	}).Error)

	creadas, err := RevisarVencimientos(db)
	require.NoError(t, err)
	assert.Equal(t, 0, creadas)
}

func TestRevisarVencimientosMantenimientoPendiente(t *testing.T) {
	db := dbDePrueba(t)
	equipo := Models.Equipo{Codigo: "EXC-001", Tipo: "EXCAVADORA", Activo: true}
	require.NoError(t, db.Create(&equipo).Error)
	require.NoError(t, db.Create(&Models.Mantenimiento{
		EquipoID:        equipo.ID,
		Descripcion:     "Cambio de aceite",
		FechaProgramada: fechaEnDias(5),
		Estado:          Models.MantenimientoPendiente,
	}).Error)
	// completed jobs never alert
	require.NoError(t, db.Create(&Models.Mantenimiento{
		EquipoID:        equipo.ID,
		Descripcion:     "Ya ejecutado",
		FechaProgramada: fechaEnDias(3),
		Estado:          Models.MantenimientoCompletado,
	}).Error)

	creadas, err := RevisarVencimientos(db)
	require.NoError(t, err)
	assert.Equal(t, 1, creadas)

	var alerta Models.Alerta
	require.NoError(t, db.Where("tipo = ?", Models.AlertaMantenimiento).First(&alerta).Error)
	assert.Equal(t, Models.PrioridadUrgente, alerta.Prioridad)
}

func TestCrearSiFaltaConBaseCaida(t *testing.T) {
	db := dbDePrueba(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	// a failed existence check must not read as "no hay alerta"
	alerta := Models.Alerta{Tipo: Models.AlertaSoat, EquipoID: 1, ReferenciaID: 1}
	assert.False(t, crearSiFalta(db, &alerta))
}

func TestRevisarVencimientosRevisionTecnica(t *testing.T) {
	db := dbDePrueba(t)
	equipo := Models.Equipo{Codigo: "EXC-001", Tipo: "EXCAVADORA", Activo: true}
	require.NoError(t, db.Create(&equipo).Error)
	require.NoError(t, db.Create(&Models.RevisionTecnica{
		EquipoID:         equipo.ID,
		FechaVencimiento: fechaEnDias(12),
		Resultado:        Models.RevisionAprobada,
	}).Error)

	creadas, err := RevisarVencimientos(db)
	require.NoError(t, err)
	assert.Equal(t, 1, creadas)

	var alerta Models.Alerta
	require.NoError(t, db.Where("tipo = ?", Models.AlertaRevision).First(&alerta).Error)
	assert.Equal(t, Models.PrioridadAlta, alerta.Prioridad)
}
