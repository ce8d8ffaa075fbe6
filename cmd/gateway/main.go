package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/comercio-admin/internal/application/auth"
	"github.com/jhoicas/comercio-admin/internal/application/bitacora"
	"github.com/jhoicas/comercio-admin/internal/application/recurso"
	"github.com/jhoicas/comercio-admin/internal/application/usuarios"
	"github.com/jhoicas/comercio-admin/internal/infrastructure/api"
	"github.com/jhoicas/comercio-admin/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/comercio-admin/internal/interfaces/http"
	"github.com/jhoicas/comercio-admin/pkg/config"
	"github.com/jhoicas/comercio-admin/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("api", cfg.API.BaseURL).
		Msg("iniciando gateway")

	// Estado local: sesión y bitácora de actividad, ambos en STATE_DIR.
	sesiones, err := storage.NewSesionStore(cfg.State.Dir, log)
	if err != nil {
		log.Fatal().Err(err).Msg("almacén de sesión")
	}
	actividades, err := storage.NewActividadStore(cfg.State.Dir, log)
	if err != nil {
		log.Fatal().Err(err).Msg("almacén de actividad")
	}
	defer actividades.Cerrar()

	cliente := api.NewClient(cfg.API.BaseURL, time.Duration(cfg.API.TimeoutSeconds)*time.Second, log)
	authAPI := api.NewAuthAPI(cliente)
	clienteAPI := api.NewClienteAPI(cliente)
	vendedorAPI := api.NewVendedorAPI(cliente)
	productoAPI := api.NewProductoAPI(cliente)
	pedidoAPI := api.NewPedidoAPI(cliente)

	authUC := auth.NewUseCase(authAPI, sesiones)
	bitacoraUC := bitacora.NewUseCase(actividades)
	clienteUC := recurso.NewClienteUseCase(clienteAPI, sesiones, actividades)
	vendedorUC := recurso.NewVendedorUseCase(vendedorAPI, sesiones, actividades)
	productoUC := recurso.NewProductoUseCase(productoAPI, sesiones, actividades)
	pedidoUC := recurso.NewPedidoUseCase(pedidoAPI, clienteAPI, vendedorAPI, productoAPI, sesiones, actividades)
	usuariosUC := usuarios.NewUseCase(authAPI, sesiones)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Comercio Admin Gateway",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		Sesiones:   sesiones,
		AuthUC:     authUC,
		BitacoraUC: bitacoraUC,
		ClienteUC:  clienteUC,
		VendedorUC: vendedorUC,
		ProductoUC: productoUC,
		PedidoUC:   pedidoUC,
		UsuariosUC: usuariosUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("gateway detenido")
}
