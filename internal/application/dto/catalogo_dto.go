package dto

import "github.com/shopspring/decimal"

// CategoriaResponse categoría de un producto.
type CategoriaResponse struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre,omitempty"`
}

// ProductoCatalogoResponse un producto del listado, ya cruzado con la
// disponibilidad de la sesión (la vista que pintaba la página principal).
type ProductoCatalogoResponse struct {
	ID         string            `json:"id"`
	Titulo     string            `json:"titulo"`
	Precio     decimal.Decimal   `json:"precio"`
	Imagen     string            `json:"imagen"`
	Categoria  CategoriaResponse `json:"categoria"`
	Disponible int               `json:"disponible"`
	Agotado    bool              `json:"agotado"`
}

// CatalogoResponse listado de productos.
type CatalogoResponse struct {
	Items []ProductoCatalogoResponse `json:"items"`
	Total int                        `json:"total"`
}
