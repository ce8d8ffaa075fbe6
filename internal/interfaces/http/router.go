package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/comercio-admin/internal/application/auth"
	"github.com/jhoicas/comercio-admin/internal/application/bitacora"
	"github.com/jhoicas/comercio-admin/internal/application/recurso"
	"github.com/jhoicas/comercio-admin/internal/application/usuarios"
	"github.com/jhoicas/comercio-admin/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Sesiones   repository.SesionRepository
	AuthUC     *auth.UseCase
	BitacoraUC *bitacora.UseCase
	ClienteUC  *recurso.ClienteUseCase
	VendedorUC *recurso.VendedorUseCase
	ProductoUC *recurso.ProductoUseCase
	PedidoUC   *recurso.PedidoUseCase
	UsuariosUC *usuarios.UseCase
}

// Router registra la superficie completa de rutas: autenticación, las dos
// pantallas de inicio, las rutas genéricas de recurso (siempre redirigen al
// área de la sesión) y los grupos /admin y /sa con sus guards.
func Router(app *fiber.App, deps RouterDeps) {
	authHandler := NewAuthHandler(deps.AuthUC)
	homeHandler := NewHomeHandler(deps.AuthUC, deps.BitacoraUC)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Autenticación
	app.Get("/login", authHandler.Pantalla)
	app.Post("/login", authHandler.Login)
	app.Post("/logout", authHandler.Logout)
	app.Get("/sesion", authHandler.Sesion)

	// Pantallas de inicio
	app.Get("/home-admin", RequireAuth(deps.Sesiones), homeHandler.Admin)
	app.Get("/home-sa", RequireAuth(deps.Sesiones), OwnerOnly(deps.Sesiones), homeHandler.SA)

	// Rutas genéricas: el guard decide el área y redirige siempre.
	for _, r := range []string{"cliente", "vendedor", "producto", "pedido"} {
		app.Get("/"+r, RoleRoute(deps.Sesiones, r))
	}

	// Área admin: vetada para el usuario sa.
	admin := app.Group("/admin", RequireAuth(deps.Sesiones), NotSA(deps.Sesiones))
	montarRecursos(admin, deps)

	// Área sa: las mismas pantallas más la gestión de usuarios.
	sa := app.Group("/sa", RequireAuth(deps.Sesiones))
	montarRecursos(sa, deps)

	usuariosHandler := NewUsuariosHandler(deps.UsuariosUC)
	usuariosGroup := sa.Group("/usuarios", OwnerOnly(deps.Sesiones))
	usuariosGroup.Get("/roles", usuariosHandler.Roles)
	usuariosGroup.Post("/", usuariosHandler.CrearLogin)
}

// montarRecursos registra los cuatro recursos bajo un área. Ambas áreas
// comparten handlers; solo cambian los guards del grupo.
func montarRecursos(area fiber.Router, deps RouterDeps) {
	clienteHandler := NewClienteHandler(deps.ClienteUC)
	clientes := area.Group("/cliente")
	clientes.Get("/", clienteHandler.Listar)
	clientes.Post("/", clienteHandler.Crear)
	clientes.Get("/:id/confirmacion", clienteHandler.Confirmacion)
	clientes.Put("/:id", clienteHandler.Actualizar)
	clientes.Delete("/:id", clienteHandler.Eliminar)

	vendedorHandler := NewVendedorHandler(deps.VendedorUC)
	vendedores := area.Group("/vendedor")
	vendedores.Get("/", vendedorHandler.Listar)
	vendedores.Post("/", vendedorHandler.Crear)
	vendedores.Get("/:id/confirmacion", vendedorHandler.Confirmacion)
	vendedores.Put("/:id", vendedorHandler.Actualizar)
	vendedores.Delete("/:id", vendedorHandler.Eliminar)

	productoHandler := NewProductoHandler(deps.ProductoUC)
	productos := area.Group("/producto")
	productos.Get("/", productoHandler.Listar)
	productos.Post("/", productoHandler.Crear)
	productos.Get("/:id/confirmacion", productoHandler.Confirmacion)
	productos.Put("/:id", productoHandler.Actualizar)
	productos.Delete("/:id", productoHandler.Eliminar)

	pedidoHandler := NewPedidoHandler(deps.PedidoUC)
	pedidos := area.Group("/pedido")
	pedidos.Get("/", pedidoHandler.Listar)
	pedidos.Get("/catalogos", pedidoHandler.Catalogos)
	pedidos.Post("/totales", pedidoHandler.Totales)
	pedidos.Post("/", pedidoHandler.Crear)
	pedidos.Get("/:id/detalle", pedidoHandler.Detalle)
	pedidos.Get("/:id/confirmacion", pedidoHandler.Confirmacion)
	pedidos.Put("/:id", pedidoHandler.Actualizar)
	pedidos.Delete("/:id", pedidoHandler.Eliminar)
}
