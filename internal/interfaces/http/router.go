package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-crochet/internal/application/carrito"
	"github.com/jhoicas/tienda-crochet/internal/application/sesion"
	"github.com/jhoicas/tienda-crochet/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CarritoUC    *carrito.UseCase
	Catalogo     repository.CatalogoRepository
	Registro     *sesion.Registro
	CookieNombre string
}

// Router registra las rutas de la API. Todas las rutas pasan por el
// middleware de sesión: cada visitante opera sobre sus propios blobs.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", SesionMiddleware(deps.Registro, deps.CarritoUC, deps.CookieNombre))

	catalogoHandler := NewCatalogoHandler(deps.Catalogo, deps.CarritoUC)
	catalogos := api.Group("/catalogo")
	catalogos.Get("/", catalogoHandler.Listar)
	catalogos.Get("/:id", catalogoHandler.PorID)

	carritoHandler := NewCarritoHandler(deps.CarritoUC)
	carritos := api.Group("/carrito")
	carritos.Get("/", carritoHandler.Ver)
	carritos.Delete("/", carritoHandler.Vaciar)
	carritos.Get("/numerito", carritoHandler.Numerito)
	carritos.Post("/items/:id", carritoHandler.Agregar)
	carritos.Delete("/items/:id", carritoHandler.Eliminar)

	api.Get("/disponibilidad", carritoHandler.Disponibilidad)
}
