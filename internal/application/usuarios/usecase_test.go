package usuarios_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/comercio-admin/internal/application/dto"
	"github.com/jhoicas/comercio-admin/internal/application/usuarios"
	"github.com/jhoicas/comercio-admin/internal/domain"
	"github.com/jhoicas/comercio-admin/internal/domain/entity"
)

type sesionesFake struct {
	sesion entity.Sesion
}

func (f *sesionesFake) Guardar(s entity.Sesion) error { f.sesion = s; return nil }
func (f *sesionesFake) Actual() entity.Sesion         { return f.sesion }
func (f *sesionesFake) Limpiar() error                { f.sesion = entity.Sesion{}; return nil }

type usuariosAPIFake struct {
	mensaje   string
	err       error
	ultimoRol entity.Rol
}

func (f *usuariosAPIFake) CrearLogin(_ context.Context, _, _, _ string, rol entity.Rol) (string, error) {
	f.ultimoRol = rol
	return f.mensaje, f.err
}

func sesionOwner() *sesionesFake {
	return &sesionesFake{sesion: entity.Sesion{
		Token:   "tok-sa",
		Usuario: entity.Usuario{Username: "sa", DbRole: entity.RolOwner},
	}}
}

func TestCrearLogin_ExigeSesion(t *testing.T) {
	uc := usuarios.NewUseCase(&usuariosAPIFake{}, &sesionesFake{})

	_, err := uc.CrearLogin(context.Background(), dto.CrearLoginRequest{Username: "nuevo", Password: "x", DbRole: "db_datareader"})
	assert.ErrorIs(t, err, domain.ErrSesionAusente)
}

func TestCrearLogin_ValidaCredenciales(t *testing.T) {
	uc := usuarios.NewUseCase(&usuariosAPIFake{}, sesionOwner())

	casos := []dto.CrearLoginRequest{
		{Username: "  ", Password: "x", DbRole: "db_datareader"},
		{Username: "nuevo", Password: "", DbRole: "db_datareader"},
	}
	for _, in := range casos {
		_, err := uc.CrearLogin(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
	}
}

func TestCrearLogin_SoloRolesAsignables(t *testing.T) {
	uc := usuarios.NewUseCase(&usuariosAPIFake{}, sesionOwner())

	// "public" y cualquier rol desconocido quedan fuera del selector.
	for _, rol := range []string{"public", "sysadmin", ""} {
		_, err := uc.CrearLogin(context.Background(), dto.CrearLoginRequest{Username: "nuevo", Password: "x", DbRole: rol})
		assert.ErrorIs(t, err, domain.ErrEntradaInvalida, "rol %q", rol)
	}
}

func TestCrearLogin_DelegaYDevuelveElMensajeDelServidor(t *testing.T) {
	api := &usuariosAPIFake{mensaje: "Login creado correctamente"}
	uc := usuarios.NewUseCase(api, sesionOwner())

	out, err := uc.CrearLogin(context.Background(), dto.CrearLoginRequest{Username: "nuevo", Password: "x", DbRole: "db_datawriter"})
	require.NoError(t, err)

	assert.Equal(t, "Login creado correctamente", out.Mensaje)
	assert.Equal(t, entity.RolEscritura, api.ultimoRol)
}

func TestCrearLogin_MensajeDeCortesiaSiElServidorCalla(t *testing.T) {
	uc := usuarios.NewUseCase(&usuariosAPIFake{}, sesionOwner())

	out, err := uc.CrearLogin(context.Background(), dto.CrearLoginRequest{Username: "nuevo", Password: "x", DbRole: "db_owner"})
	require.NoError(t, err)
	assert.Equal(t, "Creado", out.Mensaje)
}

func TestRoles_DescribeLosTresRoles(t *testing.T) {
	uc := usuarios.NewUseCase(&usuariosAPIFake{}, sesionOwner())

	roles := uc.Roles()
	require.Len(t, roles, 3)
	assert.Equal(t, "db_datareader", roles[0].Rol)
	assert.Equal(t, "db_datawriter", roles[1].Rol)
	assert.Equal(t, "db_owner", roles[2].Rol)
}
