// Package notificar contiene los adaptadores de los puertos de aviso al
// usuario. La tienda original usaba un toast y un modal; aquí el aviso
// viaja en la respuesta HTTP y este adaptador deja además el rastro en el
// log estructurado.
package notificar

import (
	"github.com/rs/zerolog"

	"github.com/jhoicas/tienda-crochet/internal/application/ports"
)

var _ ports.Notificador = (*NotificadorLog)(nil)

// NotificadorLog emite las notificaciones transitorias por el log.
type NotificadorLog struct {
	log zerolog.Logger
}

// NuevoNotificadorLog construye el adaptador.
func NuevoNotificadorLog(log zerolog.Logger) *NotificadorLog {
	return &NotificadorLog{log: log}
}

// Notificar registra el evento. Los eventos de rechazo y saneamiento van
// a warn; el resto a info.
func (n *NotificadorLog) Notificar(evento ports.Evento, mensaje string) {
	ev := n.log.Info()
	switch evento {
	case ports.EventoAgotado, ports.EventoLimite, ports.EventoSaneamiento:
		ev = n.log.Warn()
	}
	ev.Str("evento", string(evento)).Msg(mensaje)
}
