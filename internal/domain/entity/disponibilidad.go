package entity

// Disponibilidad es el stock restante visible de un producto: el stock
// original del catálogo menos lo reservado en el carrito, nunca negativo.
// Es una caché derivada y persistida; se reconstruye completa en cada
// sincronización y nunca es autoritativa por sí misma.
type Disponibilidad struct {
	ID         string `json:"id"`
	Disponible int    `json:"disponible"`
}
