package entity

import "github.com/shopspring/decimal"

// Categoria agrupa productos en la tienda (llaveros, personajes, objetos).
type Categoria struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre,omitempty"`
}

// Producto representa un artículo del catálogo estático. El catálogo es la
// única fuente de verdad para el precio y el stock original (Disponible);
// todo lo demás se deriva de él.
type Producto struct {
	ID         string          `json:"id"`
	Titulo     string          `json:"titulo"`
	Precio     decimal.Decimal `json:"precio"`
	Imagen     string          `json:"imagen"`
	Categoria  Categoria       `json:"categoria"`
	Disponible int             `json:"disponible"` // stock original, no negativo
}
