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
	"github.com/shopspring/decimal"

	appcarrito "github.com/jhoicas/tienda-crochet/internal/application/carrito"
	"github.com/jhoicas/tienda-crochet/internal/application/sesion"
	"github.com/jhoicas/tienda-crochet/internal/domain/seguridad"
	"github.com/jhoicas/tienda-crochet/internal/infrastructure/almacen"
	"github.com/jhoicas/tienda-crochet/internal/infrastructure/catalogo"
	"github.com/jhoicas/tienda-crochet/internal/infrastructure/notificar"
	httpRouter "github.com/jhoicas/tienda-crochet/internal/interfaces/http"
	"github.com/jhoicas/tienda-crochet/pkg/config"
	"github.com/jhoicas/tienda-crochet/pkg/logger"
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
		Msg("iniciando aplicación")

	// Catálogo estático: se carga una sola vez. Su ausencia no es fatal —
	// el carrito debe funcionar contra la disponibilidad ya persistida.
	cat, err := catalogo.CargarArchivo(cfg.Almacen.CatalogoPath)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar catálogo")
	}
	if cat.Vacio() {
		log.Warn().Str("path", cfg.Almacen.CatalogoPath).
			Msg("catálogo vacío o ausente; solo operaciones de carrito")
	}

	precioMinimo, err := decimal.NewFromString(cfg.Seguridad.PrecioMinimo)
	if err != nil {
		log.Fatal().Err(err).Msg("precio mínimo inválido")
	}
	reglas := seguridad.NuevasReglas(
		precioMinimo,
		cfg.Seguridad.CantidadMinima,
		cfg.Seguridad.CantidadMaxima,
		cfg.Seguridad.IDsPermitidos,
	)
	validador := seguridad.NuevoValidador(reglas, log.Componente("validador"))

	store := almacen.Nuevo(cfg.Almacen.DataDir, log.Componente("almacen"))
	notificador := notificar.NuevoNotificadorLog(log.Componente("notificador"))
	sinc := appcarrito.NuevoSincronizador(cat, store, store, log.Componente("sincronizador"))
	carritoUC := appcarrito.NuevoUseCase(validador, sinc, store, cat, notificador, log.Componente("carrito"))
	registro := sesion.NuevoRegistro(cfg.Sesion.TTL(), log.Componente("sesiones"))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	vigilante := appcarrito.NuevoVigilante(registro, carritoUC, cfg.Vigilante.Intervalo(), log.Componente("vigilante"))
	go vigilante.Ejecutar(ctx)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Tienda Crochet API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CarritoUC:    carritoUC,
		Catalogo:     cat,
		Registro:     registro,
		CookieNombre: cfg.Sesion.CookieNombre,
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
	cancel() // detiene el vigilante

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
