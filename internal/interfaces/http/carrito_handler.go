package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-crochet/internal/application/carrito"
	"github.com/jhoicas/tienda-crochet/internal/application/dto"
	"github.com/jhoicas/tienda-crochet/internal/domain/entity"
)

// CarritoHandler maneja las peticiones HTTP del carrito de la sesión.
type CarritoHandler struct {
	uc *carrito.UseCase
}

// NewCarritoHandler construye el handler.
func NewCarritoHandler(uc *carrito.UseCase) *CarritoHandler {
	return &CarritoHandler{uc: uc}
}

// confirmadorHTTP adapta el puerto de confirmación bloqueante al mundo
// request/response: la respuesta ya viene decidida en el cuerpo de la
// petición.
type confirmadorHTTP struct {
	respuesta bool
}

func (f confirmadorHTTP) Confirmar(ctx context.Context, mensaje string) (bool, error) {
	return f.respuesta, nil
}

// Ver godoc
// @Summary      Ver el carrito
// @Tags         carrito
// @Produce      json
// @Success      200  {object}  dto.CarritoResponse
// @Router       /api/carrito [get]
func (h *CarritoHandler) Ver(c *fiber.Ctx) error {
	out, err := h.uc.Ver(GetSesion(c))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Agregar godoc
// @Summary      Agregar una unidad de un producto al carrito
// @Tags         carrito
// @Produce      json
// @Param        id  path  string  true  "ID del producto"
// @Success      200  {object}  dto.CarritoResponse
// @Failure      409  {object}  dto.ErrorResponse  "AGOTADO o LIMITE_CANTIDAD"
// @Router       /api/carrito/items/{id} [post]
func (h *CarritoHandler) Agregar(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.Agregar(c.Context(), GetSesion(c), id)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Eliminar godoc
// @Summary      Eliminar un producto del carrito
// @Tags         carrito
// @Produce      json
// @Param        id        path   string  true   "ID del producto"
// @Param        cantidad  query  int     false  "Cantidad a acreditar (por defecto, todo el item)"
// @Success      200  {object}  dto.CarritoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/carrito/items/{id} [delete]
func (h *CarritoHandler) Eliminar(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "MISSING_ID", Message: "id es requerido"})
	}
	cantidad := c.QueryInt("cantidad", 0)
	out, err := h.uc.Eliminar(c.Context(), GetSesion(c), id, cantidad)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Vaciar godoc
// @Summary      Vaciar el carrito (requiere confirmación explícita)
// @Tags         carrito
// @Accept       json
// @Produce      json
// @Param        body  body  dto.VaciarCarritoRequest  true  "confirmar debe ser true"
// @Success      200  {object}  dto.CarritoResponse
// @Failure      428  {object}  dto.ErrorResponse  "CONFIRMACION_REQUERIDA"
// @Router       /api/carrito [delete]
func (h *CarritoHandler) Vaciar(c *fiber.Ctx) error {
	var in dto.VaciarCarritoRequest
	// Cuerpo ausente equivale a no confirmar, no a un error.
	_ = c.BodyParser(&in)
	out, err := h.uc.Vaciar(c.Context(), GetSesion(c), confirmadorHTTP{respuesta: in.Confirmar})
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Numerito godoc
// @Summary      Contador de unidades en el carrito (insignia)
// @Tags         carrito
// @Produce      json
// @Success      200  {object}  dto.NumeritoResponse
// @Router       /api/carrito/numerito [get]
func (h *CarritoHandler) Numerito(c *fiber.Ctx) error {
	out, err := h.uc.Ver(GetSesion(c))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.NumeritoResponse{Numerito: out.Numerito})
}

// Disponibilidad godoc
// @Summary      Caché cruda de disponibilidad de la sesión
// @Tags         carrito
// @Produce      json
// @Success      200  {object}  dto.DisponibilidadResponse
// @Router       /api/disponibilidad [get]
func (h *CarritoHandler) Disponibilidad(c *fiber.Ctx) error {
	entradas, err := h.uc.Disponibilidad(GetSesion(c))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(aDisponibilidadResponse(entradas))
}

func aDisponibilidadResponse(entradas []entity.Disponibilidad) dto.DisponibilidadResponse {
	items := make([]dto.DisponibilidadEntrada, 0, len(entradas))
	for _, e := range entradas {
		items = append(items, dto.DisponibilidadEntrada{ID: e.ID, Disponible: e.Disponible})
	}
	return dto.DisponibilidadResponse{Items: items}
}
