// Package seguridad valida y sanea los items persistidos del carrito.
//
// El carrito vive en un blob JSON que el cliente puede editar a mano, así
// que estas reglas son una salvaguarda de experiencia de usuario contra
// datos corruptos o manipulados — no son un control de acceso: cualquiera
// con acceso al almacén puede seguir forjando valores dentro de la lista
// permitida y los límites numéricos.
package seguridad

import (
	"github.com/shopspring/decimal"
)

// Reglas define los límites aceptados para un item del carrito.
type Reglas struct {
	PrecioMinimo   decimal.Decimal
	CantidadMinima int
	CantidadMaxima int
	IDsPermitidos  map[string]struct{}
}

// IDsPorDefecto es la lista fija de productos que la tienda acepta.
var IDsPorDefecto = []string{
	"llavero-01", "llavero-02", "llavero-03", "llavero-04",
	"llavero-05", "llavero-06", "llavero-07", "llavero-08",
	"personaje-01", "personaje-02", "personaje-03", "personaje-04",
	"personaje-05", "personaje-06", "personaje-07",
	"objeto-01", "objeto-02", "objeto-03", "objeto-04", "objeto-05",
}

// NuevasReglas construye las reglas a partir de los límites y la lista
// permitida. Una lista vacía se reemplaza por IDsPorDefecto.
func NuevasReglas(precioMinimo decimal.Decimal, cantidadMinima, cantidadMaxima int, ids []string) Reglas {
	if len(ids) == 0 {
		ids = IDsPorDefecto
	}
	permitidos := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		permitidos[id] = struct{}{}
	}
	return Reglas{
		PrecioMinimo:   precioMinimo,
		CantidadMinima: cantidadMinima,
		CantidadMaxima: cantidadMaxima,
		IDsPermitidos:  permitidos,
	}
}

// ReglasPorDefecto son los límites de la tienda: precio mínimo 10,
// cantidad entre 1 y 10, lista permitida fija de 20 productos.
func ReglasPorDefecto() Reglas {
	return NuevasReglas(decimal.NewFromInt(10), 1, 10, nil)
}

// Permitido indica si el ID pertenece a la lista permitida.
func (r Reglas) Permitido(id string) bool {
	_, ok := r.IDsPermitidos[id]
	return ok
}
