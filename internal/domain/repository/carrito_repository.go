package repository

import "github.com/jhoicas/tienda-crochet/internal/domain/entity"

// CarritoRepository define el puerto de persistencia del carrito de una
// sesión (la clave fija "productos-en-carrito"). Leer nunca falla por
// contenido ausente o corrupto: degrada a lista vacía.
type CarritoRepository interface {
	LeerCarrito(sesionID string) ([]entity.ItemCarrito, error)
	GuardarCarrito(sesionID string, items []entity.ItemCarrito) error
}
