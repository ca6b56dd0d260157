package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-crochet/internal/application/carrito"
	"github.com/jhoicas/tienda-crochet/internal/application/sesion"
)

const localSesion = "sesion"

// SesionMiddleware resuelve la sesión del visitante desde la cookie,
// creándola si hace falta, y la deja en Locals. Al abrir una sesión en el
// registro se ejecuta la re-validación de apertura (el gancho de carga de
// página: sanear + sincronizar).
func SesionMiddleware(registro *sesion.Registro, uc *carrito.UseCase, cookieNombre string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Cookies(cookieNombre)
		ses, nueva := registro.Abrir(id)
		if nueva {
			if _, err := uc.Revalidar(ses); err != nil {
				return c.Status(fiber.StatusInternalServerError).
					JSON(errorInterno(err))
			}
		}
		if ses.ID != id {
			c.Cookie(&fiber.Cookie{
				Name:     cookieNombre,
				Value:    ses.ID,
				HTTPOnly: true,
				SameSite: "Lax",
			})
		}
		c.Locals(localSesion, ses)
		return c.Next()
	}
}

// GetSesion devuelve la sesión del request (puesta por SesionMiddleware).
func GetSesion(c *fiber.Ctx) *sesion.Sesion {
	ses, _ := c.Locals(localSesion).(*sesion.Sesion)
	return ses
}
