package ports

import "context"

// Evento clasifica las notificaciones transitorias hacia el usuario
// (el papel que cumplía el toast en la tienda).
type Evento string

const (
	EventoAgregado     Evento = "producto_agregado"
	EventoEliminado    Evento = "producto_eliminado"
	EventoLimite       Evento = "limite_alcanzado"
	EventoAgotado      Evento = "producto_agotado"
	EventoCarritoVacio Evento = "carrito_vaciado"
	EventoSaneamiento  Evento = "carrito_saneado"
)

// Notificador define el puerto de salida para avisos no bloqueantes.
// Cualquier adaptador (log, websocket, mock de test) debe implementar
// esta interfaz; la aplicación solo conoce el contrato.
type Notificador interface {
	Notificar(evento Evento, mensaje string)
}

// Confirmador define el puerto para confirmaciones bloqueantes (el papel
// del diálogo modal al vaciar el carrito). La aplicación pregunta con un
// mensaje y espera un booleano.
type Confirmador interface {
	Confirmar(ctx context.Context, mensaje string) (bool, error)
}
