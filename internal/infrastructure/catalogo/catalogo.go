// Package catalogo carga el catálogo estático de productos. Se lee una
// sola vez al arrancar (el equivalente del fetch de la página de listado)
// y queda como una vista inmutable indexada por ID. La ausencia del
// archivo no es un error: la página del carrito debe funcionar sin
// catálogo, reconciliando solo contra la disponibilidad ya persistida.
package catalogo

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jhoicas/tienda-crochet/internal/domain/entity"
	"github.com/jhoicas/tienda-crochet/internal/domain/repository"
)

var _ repository.CatalogoRepository = (*Catalogo)(nil)

// Catalogo vista inmutable del catálogo, indexada por ID.
type Catalogo struct {
	productos []entity.Producto
	porID     map[string]entity.Producto
}

// NuevoDesdeProductos construye el catálogo desde una lista en memoria.
func NuevoDesdeProductos(productos []entity.Producto) *Catalogo {
	porID := make(map[string]entity.Producto, len(productos))
	for _, p := range productos {
		porID[p.ID] = p
	}
	copia := make([]entity.Producto, len(productos))
	copy(copia, productos)
	return &Catalogo{productos: copia, porID: porID}
}

// CargarArchivo lee el catálogo desde un archivo JSON. Si el archivo no
// existe devuelve un catálogo vacío sin error; un JSON malformado o un
// producto con stock negativo sí es error (el catálogo es la fuente de
// verdad y no se degrada en silencio).
func CargarArchivo(path string) (*Catalogo, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NuevoDesdeProductos(nil), nil
		}
		return nil, fmt.Errorf("leer catálogo %s: %w", path, err)
	}
	var productos []entity.Producto
	if err := json.Unmarshal(b, &productos); err != nil {
		return nil, fmt.Errorf("decodificar catálogo %s: %w", path, err)
	}
	for _, p := range productos {
		if p.ID == "" || p.Disponible < 0 {
			return nil, fmt.Errorf("catálogo %s: producto inválido (id=%q, disponible=%d)",
				path, p.ID, p.Disponible)
		}
	}
	return NuevoDesdeProductos(productos), nil
}

// Todos devuelve los productos del catálogo.
func (c *Catalogo) Todos() []entity.Producto {
	out := make([]entity.Producto, len(c.productos))
	copy(out, c.productos)
	return out
}

// PorID busca un producto por su ID.
func (c *Catalogo) PorID(id string) (*entity.Producto, bool) {
	p, ok := c.porID[id]
	if !ok {
		return nil, false
	}
	return &p, true
}

// PorCategoria filtra los productos por el ID de su categoría.
func (c *Catalogo) PorCategoria(categoriaID string) []entity.Producto {
	var out []entity.Producto
	for _, p := range c.productos {
		if p.Categoria.ID == categoriaID {
			out = append(out, p)
		}
	}
	return out
}

// Vacio indica si el catálogo no tiene productos.
func (c *Catalogo) Vacio() bool {
	return len(c.productos) == 0
}
