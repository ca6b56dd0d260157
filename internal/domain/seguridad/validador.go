package seguridad

import (
	"github.com/rs/zerolog"

	"github.com/jhoicas/tienda-crochet/internal/domain/entity"
)

// Validador aplica las Reglas sobre items del carrito. El único efecto
// secundario es un log de diagnóstico cuando rechaza un item.
type Validador struct {
	reglas Reglas
	log    zerolog.Logger
}

// NuevoValidador construye el validador.
func NuevoValidador(reglas Reglas, log zerolog.Logger) *Validador {
	return &Validador{reglas: reglas, log: log}
}

// Reglas devuelve las reglas activas.
func (v *Validador) Reglas() Reglas { return v.reglas }

// EsValido verifica que el item cumpla precio mínimo, cantidad dentro de
// límites e ID en la lista permitida.
func (v *Validador) EsValido(item entity.ItemCarrito) bool {
	if item.Precio.LessThan(v.reglas.PrecioMinimo) {
		v.log.Warn().Str("id", item.ID).Str("precio", item.Precio.String()).
			Msg("intento de manipulación: precio por debajo del mínimo")
		return false
	}
	if item.Cantidad < v.reglas.CantidadMinima || item.Cantidad > v.reglas.CantidadMaxima {
		v.log.Warn().Str("id", item.ID).Int("cantidad", item.Cantidad).
			Msg("intento de manipulación: cantidad fuera de límites")
		return false
	}
	if !v.reglas.Permitido(item.ID) {
		v.log.Warn().Str("id", item.ID).
			Msg("intento de manipulación: id fuera de la lista permitida")
		return false
	}
	return true
}

// Sanitizar repara el carrito persistido: los items con ID fuera de la
// lista permitida se descartan (irrecuperables), y en los demás el precio
// sube hasta el mínimo y la cantidad se recorta al rango permitido
// (desvíos numéricos recuperables). Es idempotente y nunca alarga la
// lista. No persiste nada; eso es responsabilidad del que llama.
func (v *Validador) Sanitizar(items []entity.ItemCarrito) []entity.ItemCarrito {
	saneados := make([]entity.ItemCarrito, 0, len(items))
	for _, item := range items {
		if v.EsValido(item) {
			saneados = append(saneados, item)
			continue
		}
		// EsValido ya dejó el diagnóstico; aquí decidimos si se recupera.
		if !v.reglas.Permitido(item.ID) {
			continue
		}
		if item.Precio.LessThan(v.reglas.PrecioMinimo) {
			item.Precio = v.reglas.PrecioMinimo
		}
		if item.Cantidad < v.reglas.CantidadMinima {
			item.Cantidad = v.reglas.CantidadMinima
		}
		if item.Cantidad > v.reglas.CantidadMaxima {
			item.Cantidad = v.reglas.CantidadMaxima
		}
		saneados = append(saneados, item)
	}
	return saneados
}
