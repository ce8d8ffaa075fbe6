package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/comercio-admin/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Predicados de sesión: EsSA es un chequeo de identidad (username), EsOwner de
// rol; la pantalla de mayor privilegio exige las dos cosas a la vez.
// ──────────────────────────────────────────────────────────────────────────────

func sesionDe(username string, rol entity.Rol) entity.Sesion {
	return entity.Sesion{
		Token:   "tok-123",
		Usuario: entity.Usuario{Username: username, DbRole: rol},
	}
}

func TestSesion_ValorCeroNoAutenticada(t *testing.T) {
	var s entity.Sesion
	assert.False(t, s.Autenticada())
	assert.False(t, s.EsOwner())
	assert.False(t, s.PuedeLeer())
	assert.Equal(t, entity.AreaAdmin, s.Area())
}

func TestSesion_EsSA_IgnoraMayusculasYEspacios(t *testing.T) {
	casos := map[string]bool{
		"sa":     true,
		"SA":     true,
		"Sa":     true,
		"  sa  ": true,
		"sara":   false,
		"admin":  false,
		"":       false,
	}
	for username, esperado := range casos {
		s := sesionDe(username, entity.RolOwner)
		assert.Equal(t, esperado, s.EsSA(), "username %q", username)
	}
}

func TestSesion_OwnerSinSerSA_NoEsSA(t *testing.T) {
	// db_owner con otro username: tiene todos los permisos de datos pero no
	// es el superadministrador.
	s := sesionDe("gerente", entity.RolOwner)
	assert.True(t, s.EsOwner())
	assert.False(t, s.EsSA())
	assert.Equal(t, entity.AreaAdmin, s.Area())
}

func TestSesion_SASinSerOwner_NoPasaElDoblePredicado(t *testing.T) {
	s := sesionDe("sa", entity.RolLectura)
	assert.True(t, s.EsSA())
	assert.False(t, s.EsOwner())
	assert.Equal(t, entity.AreaSA, s.Area())
}

func TestSesion_PermisosPorRol(t *testing.T) {
	casos := []struct {
		rol     entity.Rol
		lee     bool
		escribe bool
		esOwner bool
	}{
		{entity.RolOwner, true, true, true},
		{entity.RolEscritura, true, true, false},
		{entity.RolLectura, true, false, false},
		{entity.RolPublico, false, false, false},
		{entity.RolNinguno, false, false, false},
	}
	for _, c := range casos {
		s := sesionDe("operador", c.rol)
		assert.Equal(t, c.lee, s.PuedeLeer(), "rol %s", c.rol)
		assert.Equal(t, c.escribe, s.PuedeEscribir(), "rol %s", c.rol)
		assert.Equal(t, c.esOwner, s.EsOwner(), "rol %s", c.rol)
	}
}

func TestParseRol_DesconocidoCaeANinguno(t *testing.T) {
	assert.Equal(t, entity.RolOwner, entity.ParseRol("db_owner"))
	assert.Equal(t, entity.RolEscritura, entity.ParseRol("db_datawriter"))
	assert.Equal(t, entity.RolLectura, entity.ParseRol("db_datareader"))
	assert.Equal(t, entity.RolPublico, entity.ParseRol("public"))
	assert.Equal(t, entity.RolNinguno, entity.ParseRol("sysadmin"))
	assert.Equal(t, entity.RolNinguno, entity.ParseRol(""))
}
