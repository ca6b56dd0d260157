package repository

import "github.com/jhoicas/tienda-crochet/internal/domain/entity"

// DisponibilidadRepository define el puerto de persistencia de la caché
// derivada de disponibilidad (la clave fija "productos-disponibilidad").
// Solo el sincronizador escribe aquí.
type DisponibilidadRepository interface {
	LeerDisponibilidad(sesionID string) ([]entity.Disponibilidad, error)
	GuardarDisponibilidad(sesionID string, entradas []entity.Disponibilidad) error
}
