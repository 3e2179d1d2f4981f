package Importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTemplate(t *testing.T) {
	for _, categoria := range []string{CategoriaEquipos, CategoriaSoat, CategoriaRevisiones, CategoriaMantenimientos} {
		data, err := GenerateTemplate(categoria)
		require.NoError(t, err, "categoría %s", categoria)
		require.NotEmpty(t, data)

		// the template round-trips through the reader with its example row
		rows, err := ReadFirstSheet(data)
		require.NoError(t, err, "categoría %s", categoria)
		require.Len(t, rows, 1, "categoría %s", categoria)
	}
}

func TestGenerateTemplateEquiposEjemplo(t *testing.T) {
	data, err := GenerateTemplate(CategoriaEquipos)
	require.NoError(t, err)

	rows, err := ReadFirstSheet(data)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	e := ParseEquipoRow(rows[0])
	e.Validate()
	assert.True(t, e.Valid, "la fila de ejemplo pasa la validación")
	assert.Equal(t, "EXC-001", e.Codigo)
}

func TestGenerateTemplateCategoriaDesconocida(t *testing.T) {
	_, err := GenerateTemplate("camiones")
	assert.ErrorIs(t, err, ErrCategoriaDesconocida)
}
