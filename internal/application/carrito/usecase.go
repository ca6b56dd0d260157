// Package carrito implementa las operaciones del carrito de la tienda:
// agregar, eliminar, vaciar, total y numerito, junto con el saneamiento y
// la sincronización de disponibilidad que las rodean.
package carrito

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jhoicas/tienda-crochet/internal/application/dto"
	"github.com/jhoicas/tienda-crochet/internal/application/ports"
	"github.com/jhoicas/tienda-crochet/internal/application/sesion"
	"github.com/jhoicas/tienda-crochet/internal/domain"
	"github.com/jhoicas/tienda-crochet/internal/domain/entity"
	"github.com/jhoicas/tienda-crochet/internal/domain/repository"
	"github.com/jhoicas/tienda-crochet/internal/domain/seguridad"
)

// UseCase casos de uso del carrito. Cada operación toma el candado de la
// sesión durante toda su secuencia de lecturas y escrituras sobre las dos
// claves persistidas, el equivalente de la serialización que el navegador
// daba gratis con su único hilo.
type UseCase struct {
	validador   *seguridad.Validador
	sinc        *Sincronizador
	carrito     repository.CarritoRepository
	catalogo    repository.CatalogoRepository
	notificador ports.Notificador
	log         zerolog.Logger
}

// NuevoUseCase construye el caso de uso.
func NuevoUseCase(
	validador *seguridad.Validador,
	sinc *Sincronizador,
	carrito repository.CarritoRepository,
	catalogo repository.CatalogoRepository,
	notificador ports.Notificador,
	log zerolog.Logger,
) *UseCase {
	return &UseCase{
		validador:   validador,
		sinc:        sinc,
		carrito:     carrito,
		catalogo:    catalogo,
		notificador: notificador,
		log:         log,
	}
}

// sanear lee el carrito, lo filtra y acota con el validador y persiste el
// resultado. Avisa si el saneamiento retiró items (el alerta de seguridad
// de la tienda). Debe llamarse con el candado de la sesión tomado.
func (uc *UseCase) sanear(sesionID string) ([]entity.ItemCarrito, error) {
	items, err := uc.carrito.LeerCarrito(sesionID)
	if err != nil {
		return nil, fmt.Errorf("leer carrito: %w", err)
	}
	saneados := uc.validador.Sanitizar(items)
	if retirados := len(items) - len(saneados); retirados > 0 {
		uc.notificador.Notificar(ports.EventoSaneamiento,
			fmt.Sprintf("Se retiraron %d productos inválidos del carrito", retirados))
	}
	if err := uc.carrito.GuardarCarrito(sesionID, saneados); err != nil {
		return nil, fmt.Errorf("guardar carrito: %w", err)
	}
	return saneados, nil
}

// Revalidar ejecuta saneamiento + sincronización sobre la sesión. Es el
// gancho de apertura de sesión y el cuerpo del barrido del vigilante.
func (uc *UseCase) Revalidar(ses *sesion.Sesion) ([]entity.ItemCarrito, error) {
	ses.Bloquear()
	defer ses.Desbloquear()

	items, err := uc.sanear(ses.ID)
	if err != nil {
		return nil, err
	}
	if _, err := uc.sinc.Sincronizar(ses.ID); err != nil {
		return nil, err
	}
	return items, nil
}

// Ver devuelve la vista completa del carrito (items, total, numerito),
// saneando y sincronizando antes, como hacía la página del carrito en
// cada render.
func (uc *UseCase) Ver(ses *sesion.Sesion) (*dto.CarritoResponse, error) {
	ses.Bloquear()
	defer ses.Desbloquear()

	items, err := uc.sanear(ses.ID)
	if err != nil {
		return nil, err
	}
	if _, err := uc.sinc.Sincronizar(ses.ID); err != nil {
		return nil, err
	}
	return aCarritoResponse(items, ""), nil
}

// Agregar mete una unidad del producto al carrito. Rechaza con
// ErrProductoAgotado si la disponibilidad calculada es cero o la entrada
// no existe, y con ErrLimiteCantidad si sumar una unidad excedería el
// máximo; en ambos casos el estado queda intacto.
func (uc *UseCase) Agregar(ctx context.Context, ses *sesion.Sesion, id string) (*dto.CarritoResponse, error) {
	ses.Bloquear()
	defer ses.Desbloquear()

	items, err := uc.sanear(ses.ID)
	if err != nil {
		return nil, err
	}
	entradas, err := uc.sinc.Sincronizar(ses.ID)
	if err != nil {
		return nil, err
	}

	disponible, existe := buscarDisponibilidad(entradas, id)
	if !existe || disponible <= 0 {
		uc.notificador.Notificar(ports.EventoAgotado,
			"Lo sentimos, este producto no está disponible en este momento")
		return nil, domain.ErrProductoAgotado
	}

	if idx := buscarItem(items, id); idx >= 0 {
		if items[idx].Cantidad >= uc.validador.Reglas().CantidadMaxima {
			uc.notificador.Notificar(ports.EventoLimite, "Límite máximo alcanzado")
			return nil, domain.ErrLimiteCantidad
		}
		items[idx].Cantidad++
	} else {
		producto, ok := uc.catalogo.PorID(id)
		if !ok {
			// Disponibilidad sin producto en el catálogo: no hay de dónde
			// copiar el item, se trata como agotado.
			uc.notificador.Notificar(ports.EventoAgotado,
				"Lo sentimos, este producto no está disponible en este momento")
			return nil, domain.ErrProductoAgotado
		}
		items = append(items, entity.ItemCarrito{Producto: *producto, Cantidad: 1})
	}

	if err := uc.carrito.GuardarCarrito(ses.ID, items); err != nil {
		return nil, fmt.Errorf("guardar carrito: %w", err)
	}
	if _, err := uc.sinc.Sincronizar(ses.ID); err != nil {
		return nil, err
	}

	uc.notificador.Notificar(ports.EventoAgregado, "Producto agregado")
	return aCarritoResponse(items, "Producto agregado"), nil
}

// Eliminar saca el item completo del carrito, acreditando antes la
// cantidad retirada a la disponibilidad. cantidad <= 0 o mayor que lo que
// hay en el carrito significa "todo el item" (el único camino que la
// tienda ejercía).
func (uc *UseCase) Eliminar(ctx context.Context, ses *sesion.Sesion, id string, cantidad int) (*dto.CarritoResponse, error) {
	ses.Bloquear()
	defer ses.Desbloquear()

	items, err := uc.sanear(ses.ID)
	if err != nil {
		return nil, err
	}
	idx := buscarItem(items, id)
	if idx < 0 {
		return nil, domain.ErrNoEncontrado
	}
	if cantidad <= 0 || cantidad > items[idx].Cantidad {
		cantidad = items[idx].Cantidad
	}

	if err := uc.sinc.Restaurar(ses.ID, id, cantidad); err != nil {
		return nil, err
	}

	items = append(items[:idx], items[idx+1:]...)
	if err := uc.carrito.GuardarCarrito(ses.ID, items); err != nil {
		return nil, fmt.Errorf("guardar carrito: %w", err)
	}
	if _, err := uc.sinc.Sincronizar(ses.ID); err != nil {
		return nil, err
	}

	uc.notificador.Notificar(ports.EventoEliminado, "Producto eliminado")
	return aCarritoResponse(items, "Producto eliminado"), nil
}

// Vaciar elimina todos los items del carrito previa confirmación del
// usuario (el diálogo modal de la tienda). Sin confirmación devuelve
// ErrConfirmacionRequerida sin tocar el estado.
func (uc *UseCase) Vaciar(ctx context.Context, ses *sesion.Sesion, confirmador ports.Confirmador) (*dto.CarritoResponse, error) {
	ses.Bloquear()
	defer ses.Desbloquear()

	items, err := uc.sanear(ses.ID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return aCarritoResponse(nil, ""), nil
	}

	ok, err := confirmador.Confirmar(ctx, "Se eliminarán todos los productos del carrito")
	if err != nil {
		return nil, fmt.Errorf("confirmar vaciado: %w", err)
	}
	if !ok {
		return nil, domain.ErrConfirmacionRequerida
	}

	for _, it := range items {
		if err := uc.sinc.Restaurar(ses.ID, it.ID, it.Cantidad); err != nil {
			return nil, err
		}
	}
	if err := uc.carrito.GuardarCarrito(ses.ID, nil); err != nil {
		return nil, fmt.Errorf("guardar carrito: %w", err)
	}
	if _, err := uc.sinc.Sincronizar(ses.ID); err != nil {
		return nil, err
	}

	uc.notificador.Notificar(ports.EventoCarritoVacio, "Todos los productos han sido eliminados")
	return aCarritoResponse(nil, "Todos los productos han sido eliminados"), nil
}

// Disponibilidad devuelve la caché cruda de la sesión, sincronizada.
func (uc *UseCase) Disponibilidad(ses *sesion.Sesion) ([]entity.Disponibilidad, error) {
	ses.Bloquear()
	defer ses.Desbloquear()

	if _, err := uc.sanear(ses.ID); err != nil {
		return nil, err
	}
	return uc.sinc.Sincronizar(ses.ID)
}

func buscarItem(items []entity.ItemCarrito, id string) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}

func buscarDisponibilidad(entradas []entity.Disponibilidad, id string) (int, bool) {
	for _, e := range entradas {
		if e.ID == id {
			return e.Disponible, true
		}
	}
	return 0, false
}

func aCarritoResponse(items []entity.ItemCarrito, aviso string) *dto.CarritoResponse {
	out := make([]dto.ItemCarritoResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.ItemCarritoResponse{
			ID:       it.ID,
			Titulo:   it.Titulo,
			Precio:   it.Precio,
			Imagen:   it.Imagen,
			Cantidad: it.Cantidad,
			Subtotal: it.Subtotal(),
		})
	}
	return &dto.CarritoResponse{
		Items:    out,
		Total:    entity.TotalCarrito(items),
		Numerito: entity.Numerito(items),
		Aviso:    aviso,
	}
}
