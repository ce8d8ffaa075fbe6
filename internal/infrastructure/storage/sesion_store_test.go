package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/comercio-admin/internal/domain/entity"
	"github.com/jhoicas/comercio-admin/internal/infrastructure/storage"
)

func TestSesionStore_GuardarYLeer(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewSesionStore(dir, nil)
	require.NoError(t, err)

	sesion := entity.Sesion{
		Token:   "tok-abc",
		Usuario: entity.Usuario{Username: "gerente", DbRole: entity.RolEscritura},
	}
	require.NoError(t, store.Guardar(sesion))

	leida := store.Actual()
	assert.Equal(t, sesion, leida)
	assert.True(t, leida.Autenticada())
}

func TestSesionStore_SinArchivoEsSinSesion(t *testing.T) {
	store, err := storage.NewSesionStore(t.TempDir(), nil)
	require.NoError(t, err)

	assert.False(t, store.Actual().Autenticada())
}

func TestSesionStore_ArchivoCorruptoEsSinSesion(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewSesionStore(dir, nil)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "sesion.json"), []byte("{no es json"), 0o600))
	assert.False(t, store.Actual().Autenticada())
}

func TestSesionStore_LimpiarBorraTokenYUsuarioJuntos(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewSesionStore(dir, nil)
	require.NoError(t, err)

	require.NoError(t, store.Guardar(entity.Sesion{
		Token:   "tok",
		Usuario: entity.Usuario{Username: "sa", DbRole: entity.RolOwner},
	}))
	require.NoError(t, store.Limpiar())

	limpia := store.Actual()
	assert.Empty(t, limpia.Token)
	assert.Empty(t, limpia.Usuario.Username)
}

func TestSesionStore_LimpiarSinSesionNoFalla(t *testing.T) {
	store, err := storage.NewSesionStore(t.TempDir(), nil)
	require.NoError(t, err)

	assert.NoError(t, store.Limpiar())
}
