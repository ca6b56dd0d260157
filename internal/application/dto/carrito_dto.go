package dto

import "github.com/shopspring/decimal"

// ItemCarritoResponse un item del carrito con su subtotal.
type ItemCarritoResponse struct {
	ID       string          `json:"id"`
	Titulo   string          `json:"titulo"`
	Precio   decimal.Decimal `json:"precio"`
	Imagen   string          `json:"imagen"`
	Cantidad int             `json:"cantidad"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// CarritoResponse la vista completa del carrito: items, total y el
// contador visible (numerito). Aviso lleva el mensaje transitorio que la
// tienda mostraba como toast.
type CarritoResponse struct {
	Items    []ItemCarritoResponse `json:"items"`
	Total    decimal.Decimal       `json:"total"`
	Numerito int                   `json:"numerito"`
	Aviso    string                `json:"aviso,omitempty"`
}

// VaciarCarritoRequest entrada para vaciar el carrito; Confirmar sustituye
// al diálogo modal de confirmación.
type VaciarCarritoRequest struct {
	Confirmar bool `json:"confirmar"`
}

// NumeritoResponse el contador del carrito para la insignia.
type NumeritoResponse struct {
	Numerito int `json:"numerito"`
}

// DisponibilidadResponse la caché cruda de disponibilidad de la sesión.
type DisponibilidadResponse struct {
	Items []DisponibilidadEntrada `json:"items"`
}

// DisponibilidadEntrada stock restante visible de un producto.
type DisponibilidadEntrada struct {
	ID         string `json:"id"`
	Disponible int    `json:"disponible"`
}
