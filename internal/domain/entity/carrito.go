package entity

import "github.com/shopspring/decimal"

// ItemCarrito es un producto dentro del carrito: una copia del producto del
// catálogo más la cantidad elegida. La identidad es el ID; el carrito guarda
// a lo sumo un item por ID.
type ItemCarrito struct {
	Producto
	Cantidad int `json:"cantidad"` // entre CantidadMinima y CantidadMaxima
}

// Subtotal es precio × cantidad.
func (i ItemCarrito) Subtotal() decimal.Decimal {
	return i.Precio.Mul(decimal.NewFromInt(int64(i.Cantidad)))
}

// TotalCarrito suma los subtotales de los items. Función pura.
func TotalCarrito(items []ItemCarrito) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Subtotal())
	}
	return total
}

// Numerito suma las cantidades de los items (el contador visible del
// carrito). Función pura.
func Numerito(items []ItemCarrito) int {
	n := 0
	for _, it := range items {
		n += it.Cantidad
	}
	return n
}
