package repository

import "github.com/jhoicas/tienda-crochet/internal/domain/entity"

// CatalogoRepository define el puerto de lectura del catálogo estático.
// El catálogo puede estar vacío (el archivo aún no se cargó o no existe);
// los consumidores deben tolerarlo sin fallar.
type CatalogoRepository interface {
	Todos() []entity.Producto
	PorID(id string) (*entity.Producto, bool)
	PorCategoria(categoriaID string) []entity.Producto
	Vacio() bool
}
