package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-crochet/internal/application/dto"
	"github.com/jhoicas/tienda-crochet/internal/domain"
)

func errorInterno(err error) dto.ErrorResponse {
	return dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()}
}

// responderError mapea los errores de dominio a códigos HTTP. Los rechazos
// del carrito (agotado, límite) son conflictos con el estado actual; la
// confirmación ausente es una precondición del cliente.
func responderError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrProductoAgotado):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code: "AGOTADO", Message: "Lo sentimos, este producto no está disponible en este momento"})
	case errors.Is(err, domain.ErrLimiteCantidad):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code: "LIMITE_CANTIDAD", Message: "Límite máximo alcanzado"})
	case errors.Is(err, domain.ErrNoEncontrado):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrConfirmacionRequerida):
		return c.Status(fiber.StatusPreconditionRequired).JSON(dto.ErrorResponse{
			Code: "CONFIRMACION_REQUERIDA", Message: "se requiere confirmar el vaciado del carrito"})
	case errors.Is(err, domain.ErrEntradaInvalida):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(errorInterno(err))
	}
}
