package carrito

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jhoicas/tienda-crochet/internal/domain/entity"
	"github.com/jhoicas/tienda-crochet/internal/domain/repository"
)

// Sincronizador reconstruye la caché de disponibilidad de una sesión a
// partir del catálogo y del carrito. Siempre es un recálculo completo,
// nunca un parche incremental: la caché es desechable por diseño.
//
// Ninguno de sus métodos toma el candado de la sesión; el que llama debe
// sostenerlo alrededor de la secuencia completa de lecturas y escrituras.
type Sincronizador struct {
	catalogo       repository.CatalogoRepository
	carrito        repository.CarritoRepository
	disponibilidad repository.DisponibilidadRepository
	log            zerolog.Logger
}

// NuevoSincronizador construye el sincronizador.
func NuevoSincronizador(
	catalogo repository.CatalogoRepository,
	carrito repository.CarritoRepository,
	disponibilidad repository.DisponibilidadRepository,
	log zerolog.Logger,
) *Sincronizador {
	return &Sincronizador{
		catalogo:       catalogo,
		carrito:        carrito,
		disponibilidad: disponibilidad,
		log:            log,
	}
}

// Sincronizar recalcula y persiste la disponibilidad de la sesión:
//
//  1. Si la caché está vacía y el catálogo no, se siembra con los pares
//     {id, disponible} del catálogo.
//  2. Para cada entrada: si el producto está en el carrito,
//     disponible = max(0, stock original − cantidad); si no está,
//     disponible = stock original. Si el catálogo ya no conoce el ID
//     (entrada obsoleta), la entrada queda intacta — nunca es un error.
//
// El cálculo es determinista: dos llamadas seguidas sin cambios en el
// carrito producen el mismo resultado.
func (s *Sincronizador) Sincronizar(sesionID string) ([]entity.Disponibilidad, error) {
	entradas, err := s.disponibilidad.LeerDisponibilidad(sesionID)
	if err != nil {
		return nil, fmt.Errorf("leer disponibilidad: %w", err)
	}

	if len(entradas) == 0 && !s.catalogo.Vacio() {
		for _, p := range s.catalogo.Todos() {
			entradas = append(entradas, entity.Disponibilidad{ID: p.ID, Disponible: p.Disponible})
		}
	}

	items, err := s.carrito.LeerCarrito(sesionID)
	if err != nil {
		return nil, fmt.Errorf("leer carrito: %w", err)
	}
	enCarrito := make(map[string]int, len(items))
	for _, it := range items {
		enCarrito[it.ID] = it.Cantidad
	}

	for i := range entradas {
		original, ok := s.catalogo.PorID(entradas[i].ID)
		if !ok {
			// Entrada obsoleta: el catálogo ya no conoce el ID. Se deja tal cual.
			s.log.Debug().Str("id", entradas[i].ID).Msg("id sin producto en el catálogo; se conserva")
			continue
		}
		if cantidad, reservado := enCarrito[entradas[i].ID]; reservado {
			entradas[i].Disponible = max(0, original.Disponible-cantidad)
		} else {
			entradas[i].Disponible = original.Disponible
		}
	}

	if err := s.disponibilidad.GuardarDisponibilidad(sesionID, entradas); err != nil {
		return nil, fmt.Errorf("guardar disponibilidad: %w", err)
	}
	return entradas, nil
}

// Restaurar acredita a la disponibilidad la cantidad que sale del carrito,
// acotada por el stock original:
//
//	disponible = min(original, original − cantidadEnCarrito + cantidadRetirada)
//
// La cota superior protege contra acreditar de más si la caché venía
// corrupta. Si el catálogo no conoce el ID, no hay stock original contra
// el cual acreditar y la operación es un no-op.
func (s *Sincronizador) Restaurar(sesionID, id string, cantidad int) error {
	entradas, err := s.disponibilidad.LeerDisponibilidad(sesionID)
	if err != nil {
		return fmt.Errorf("leer disponibilidad: %w", err)
	}
	idx := -1
	for i := range entradas {
		if entradas[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}
	original, ok := s.catalogo.PorID(id)
	if !ok {
		return nil
	}

	items, err := s.carrito.LeerCarrito(sesionID)
	if err != nil {
		return fmt.Errorf("leer carrito: %w", err)
	}
	enCarrito := 0
	for _, it := range items {
		if it.ID == id {
			enCarrito = it.Cantidad
			break
		}
	}

	entradas[idx].Disponible = min(original.Disponible, original.Disponible-enCarrito+cantidad)
	if err := s.disponibilidad.GuardarDisponibilidad(sesionID, entradas); err != nil {
		return fmt.Errorf("guardar disponibilidad: %w", err)
	}
	return nil
}
