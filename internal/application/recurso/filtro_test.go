package recurso_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/comercio-admin/internal/application/recurso"
)

// ──────────────────────────────────────────────────────────────────────────────
// Búsqueda local: insensible a mayúsculas y acentos, subcadena sobre varios
// campos, y término vacío que no filtra nada.
// ──────────────────────────────────────────────────────────────────────────────

func TestCoincide_IgnoraMayusculasYAcentos(t *testing.T) {
	assert.True(t, recurso.Coincide("jose", "José Pérez"))
	assert.True(t, recurso.Coincide("JOSÉ", "jose perez"))
	assert.True(t, recurso.Coincide("perez", "José Pérez"))
	assert.True(t, recurso.Coincide("camión", "Camion de reparto"))
	assert.False(t, recurso.Coincide("maria", "José Pérez"))
}

func TestCoincide_BuscaEnTodosLosCampos(t *testing.T) {
	campos := []string{"Ana Gómez", "ana@correo.com", "0999999999"}
	assert.True(t, recurso.Coincide("correo.com", campos...))
	assert.True(t, recurso.Coincide("0999", campos...))
	assert.False(t, recurso.Coincide("xyz", campos...))
}

func TestCoincide_TerminoVacioCoincideSiempre(t *testing.T) {
	assert.True(t, recurso.Coincide(""))
	assert.True(t, recurso.Coincide("", "cualquier cosa"))
	assert.True(t, recurso.Coincide("   ", "cualquier cosa"))
}
