package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-crochet/internal/application/carrito"
	"github.com/jhoicas/tienda-crochet/internal/application/dto"
	"github.com/jhoicas/tienda-crochet/internal/domain/entity"
	"github.com/jhoicas/tienda-crochet/internal/domain/repository"
)

// CatalogoHandler maneja el listado de productos: el catálogo estático
// cruzado con la disponibilidad de la sesión, que es lo que pintaba la
// página principal de la tienda.
type CatalogoHandler struct {
	catalogo repository.CatalogoRepository
	uc       *carrito.UseCase
}

// NewCatalogoHandler construye el handler.
func NewCatalogoHandler(catalogo repository.CatalogoRepository, uc *carrito.UseCase) *CatalogoHandler {
	return &CatalogoHandler{catalogo: catalogo, uc: uc}
}

// Listar godoc
// @Summary      Listar productos con su disponibilidad
// @Tags         catalogo
// @Produce      json
// @Param        categoria  query  string  false  "Filtrar por ID de categoría"
// @Success      200  {object}  dto.CatalogoResponse
// @Router       /api/catalogo [get]
func (h *CatalogoHandler) Listar(c *fiber.Ctx) error {
	productos := h.catalogo.Todos()
	if categoria := c.Query("categoria"); categoria != "" && categoria != "todos" {
		productos = h.catalogo.PorCategoria(categoria)
	}

	entradas, err := h.uc.Disponibilidad(GetSesion(c))
	if err != nil {
		return responderError(c, err)
	}
	porID := make(map[string]int, len(entradas))
	for _, e := range entradas {
		porID[e.ID] = e.Disponible
	}

	items := make([]dto.ProductoCatalogoResponse, 0, len(productos))
	for _, p := range productos {
		items = append(items, aProductoCatalogo(p, porID))
	}
	return c.JSON(dto.CatalogoResponse{Items: items, Total: len(items)})
}

// PorID godoc
// @Summary      Obtener un producto con su disponibilidad
// @Tags         catalogo
// @Produce      json
// @Param        id  path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductoCatalogoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/catalogo/{id} [get]
func (h *CatalogoHandler) PorID(c *fiber.Ctx) error {
	p, ok := h.catalogo.PorID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	entradas, err := h.uc.Disponibilidad(GetSesion(c))
	if err != nil {
		return responderError(c, err)
	}
	porID := make(map[string]int, len(entradas))
	for _, e := range entradas {
		porID[e.ID] = e.Disponible
	}
	out := aProductoCatalogo(*p, porID)
	return c.JSON(out)
}

// aProductoCatalogo cruza el producto con la disponibilidad de la sesión;
// sin entrada en la caché se muestra el stock original del catálogo.
func aProductoCatalogo(p entity.Producto, disponiblePorID map[string]int) dto.ProductoCatalogoResponse {
	disponible, ok := disponiblePorID[p.ID]
	if !ok {
		disponible = p.Disponible
	}
	return dto.ProductoCatalogoResponse{
		ID:     p.ID,
		Titulo: p.Titulo,
		Precio: p.Precio,
		Imagen: p.Imagen,
		Categoria: dto.CategoriaResponse{
			ID:     p.Categoria.ID,
			Nombre: p.Categoria.Nombre,
		},
		Disponible: disponible,
		Agotado:    disponible <= 0,
	}
}
