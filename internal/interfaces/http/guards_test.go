package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/comercio-admin/internal/domain/entity"
	apphttp "github.com/jhoicas/comercio-admin/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Guards de navegación: cada ruta protegida redirige según el estado de la
// sesión. Se prueban con una app Fiber mínima y peticiones reales.
// ──────────────────────────────────────────────────────────────────────────────

type sesionesFake struct {
	sesion entity.Sesion
}

func (f *sesionesFake) Guardar(s entity.Sesion) error { f.sesion = s; return nil }
func (f *sesionesFake) Actual() entity.Sesion         { return f.sesion }
func (f *sesionesFake) Limpiar() error                { f.sesion = entity.Sesion{}; return nil }

func sesionDe(username string, rol entity.Rol) *sesionesFake {
	return &sesionesFake{sesion: entity.Sesion{
		Token:   "tok",
		Usuario: entity.Usuario{Username: username, DbRole: rol},
	}}
}

func ok(c *fiber.Ctx) error { return c.SendString("ok") }

func hacer(t *testing.T, app *fiber.App, ruta string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, ruta, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func esperarRedireccion(t *testing.T, resp *http.Response, destino string) {
	t.Helper()
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, destino, resp.Header.Get("Location"))
}

func TestRequireAuth(t *testing.T) {
	t.Run("sin sesión redirige al login", func(t *testing.T) {
		app := fiber.New()
		app.Get("/home-admin", apphttp.RequireAuth(&sesionesFake{}), ok)

		esperarRedireccion(t, hacer(t, app, "/home-admin"), "/login")
	})

	t.Run("con sesión deja pasar", func(t *testing.T) {
		app := fiber.New()
		app.Get("/home-admin", apphttp.RequireAuth(sesionDe("gerente", entity.RolLectura)), ok)

		resp := hacer(t, app, "/home-admin")
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}

func TestRoleRoute_SiempreRedirige(t *testing.T) {
	casos := []struct {
		nombre   string
		sesiones *sesionesFake
		destino  string
	}{
		{"sin sesión al login", &sesionesFake{}, "/login"},
		{"sa a su área", sesionDe("sa", entity.RolOwner), "/sa/cliente"},
		{"SA en mayúsculas también", sesionDe("SA", entity.RolOwner), "/sa/cliente"},
		{"cualquier otro al área admin", sesionDe("gerente", entity.RolOwner), "/admin/cliente"},
	}
	for _, caso := range casos {
		t.Run(caso.nombre, func(t *testing.T) {
			app := fiber.New()
			app.Get("/cliente", apphttp.RoleRoute(caso.sesiones, "cliente"), ok)

			esperarRedireccion(t, hacer(t, app, "/cliente"), caso.destino)
		})
	}
}

func TestOwnerOnly_ExigeLasDosCondiciones(t *testing.T) {
	casos := []struct {
		nombre   string
		sesiones *sesionesFake
		destino  string // vacío: pasa al handler
	}{
		{"sin sesión al login", &sesionesFake{}, "/login"},
		{"owner sin ser sa vuelve al home admin", sesionDe("gerente", entity.RolOwner), "/home-admin"},
		{"sa sin ser owner vuelve al home admin", sesionDe("sa", entity.RolLectura), "/home-admin"},
		{"owner y sa pasa", sesionDe("sa", entity.RolOwner), ""},
	}
	for _, caso := range casos {
		t.Run(caso.nombre, func(t *testing.T) {
			app := fiber.New()
			app.Get("/home-sa", apphttp.OwnerOnly(caso.sesiones), ok)

			resp := hacer(t, app, "/home-sa")
			if caso.destino == "" {
				assert.Equal(t, fiber.StatusOK, resp.StatusCode)
				return
			}
			esperarRedireccion(t, resp, caso.destino)
		})
	}
}

func TestNotSA_DevuelveAlSAASuHome(t *testing.T) {
	app := fiber.New()
	app.Get("/admin/cliente", apphttp.NotSA(sesionDe("sa", entity.RolOwner)), ok)
	esperarRedireccion(t, hacer(t, app, "/admin/cliente"), "/home-sa")

	app2 := fiber.New()
	app2.Get("/admin/cliente", apphttp.NotSA(sesionDe("gerente", entity.RolEscritura)), ok)
	assert.Equal(t, fiber.StatusOK, hacer(t, app2, "/admin/cliente").StatusCode)
}
