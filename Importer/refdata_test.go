package Importer

import (
	"testing"

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

func TestLoadRefData(t *testing.T) {
	db := dbDePrueba(t)
	require.NoError(t, db.Create(&Models.Empresa{RUC: "20100000001", RazonSocial: "JORGE CONSTRUCCIONES SAC"}).Error)
	require.NoError(t, db.Create(&Models.Equipo{Codigo: "EXC-001", Tipo: "EXCAVADORA", Placa: "ABC-123", HorometroActual: 1500, Activo: true}).Error)
	require.NoError(t, db.Create(&Models.Equipo{Codigo: "EXC-099", Tipo: "EXCAVADORA", Activo: false}).Error)

	ref, err := LoadRefData(db)
	require.NoError(t, err)

	assert.NotNil(t, ref.FindEquipo("EXC-001"))
	assert.NotNil(t, ref.FindEquipo("exc-001"), "la búsqueda no distingue mayúsculas")
	assert.NotNil(t, ref.FindEquipo("ABC-123"), "resuelve también por placa")
	assert.Nil(t, ref.FindEquipo("EXC-099"), "los equipos inactivos no se cargan")
	assert.Equal(t, 1, ref.Empresas())
}

func TestResolveEmpresaPorFragmento(t *testing.T) {
	ref := &RefData{empresas: []EmpresaRef{
		{ID: 1, RazonSocial: "JORGE CONSTRUCCIONES SAC"},
		{ID: 2, RazonSocial: "TRANSPORTES DEL SUR EIRL"},
	}}

	id, matched := ref.ResolveEmpresa("constructora jorge")
	require.NotNil(t, id)
	assert.True(t, matched)
	assert.Equal(t, uint(1), *id)

	id, matched = ref.ResolveEmpresa("transportes lima")
	require.NotNil(t, id)
	assert.True(t, matched)
	assert.Equal(t, uint(2), *id)
}

func TestResolveEmpresaAlias(t *testing.T) {
	ref := &RefData{empresas: []EmpresaRef{
		{ID: 1, RazonSocial: "JORGE CONSTRUCCIONES SAC"},
		{ID: 2, RazonSocial: "TRANSPORTES DEL SUR EIRL"},
	}}

	id, matched := ref.ResolveEmpresa("CUSMA")
	require.NotNil(t, id)
	assert.True(t, matched)
	assert.Equal(t, uint(1), *id)
}

func TestResolveEmpresaNombrePropio(t *testing.T) {
	ref := &RefData{empresas: []EmpresaRef{
		{ID: 1, RazonSocial: "TRANSPORTES DEL SUR EIRL"},
		{ID: 2, RazonSocial: "JOMEX MAQUINARIAS SAC"},
		{ID: 3, RazonSocial: "JLMX NORTE SAC"},
	}}

	// JOMEX and JLMX resolve to their own companies, not to the first
	// registered one
	id, matched := ref.ResolveEmpresa("JOMEX")
	require.NotNil(t, id)
	assert.True(t, matched)
	assert.Equal(t, uint(2), *id)

	id, matched = ref.ResolveEmpresa("Equipos JLMX")
	require.NotNil(t, id)
	assert.True(t, matched)
	assert.Equal(t, uint(3), *id)
}

func TestResolveEmpresaFallback(t *testing.T) {
	ref := &RefData{empresas: []EmpresaRef{
		{ID: 7, RazonSocial: "JORGE CONSTRUCCIONES SAC"},
		{ID: 8, RazonSocial: "TRANSPORTES DEL SUR EIRL"},
	}}

	// unknown names fall back to the first registered company,
	// reported as unmatched so the caller can log it
	id, matched := ref.ResolveEmpresa("EMPRESA FANTASMA")
	require.NotNil(t, id)
	assert.False(t, matched)
	assert.Equal(t, uint(7), *id)
}

func TestResolveEmpresaIgnoresShortWords(t *testing.T) {
	ref := &RefData{empresas: []EmpresaRef{
		{ID: 1, RazonSocial: "SAC DEL SUR"},
		{ID: 2, RazonSocial: "MAQUINARIAS ANDINAS SA"},
	}}

	// "SAC", "DEL" and "SUR" are too short to count as fragments
	id, matched := ref.ResolveEmpresa("maquinarias del norte")
	require.NotNil(t, id)
	assert.True(t, matched)
	assert.Equal(t, uint(2), *id)
}

func TestResolveEmpresaSinEmpresas(t *testing.T) {
	ref := &RefData{}
	id, matched := ref.ResolveEmpresa("cualquiera")
	assert.Nil(t, id)
	assert.False(t, matched)
}
