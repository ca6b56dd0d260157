// seed genera el catálogo estático data/productos.json con los productos
// de la tienda (los veinte IDs de la lista permitida).
//
// Uso: go run ./cmd/seed [ruta/productos.json]
// Por defecto escribe data/productos.json.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-crochet/internal/domain/entity"
)

func producto(id, titulo, categoriaID, categoriaNombre string, precio int64, disponible int) entity.Producto {
	return entity.Producto{
		ID:         id,
		Titulo:     titulo,
		Precio:     decimal.NewFromInt(precio),
		Imagen:     fmt.Sprintf("img/%s.jpg", id),
		Categoria:  entity.Categoria{ID: categoriaID, Nombre: categoriaNombre},
		Disponible: disponible,
	}
}

func main() {
	path := filepath.Join("data", "productos.json")
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	productos := []entity.Producto{
		producto("llavero-01", "Llavero Osito", "llaveros", "Llaveros", 15, 5),
		producto("llavero-02", "Llavero Conejito", "llaveros", "Llaveros", 15, 8),
		producto("llavero-03", "Llavero Ranita", "llaveros", "Llaveros", 15, 6),
		producto("llavero-04", "Llavero Gatito", "llaveros", "Llaveros", 18, 4),
		producto("llavero-05", "Llavero Pulpito", "llaveros", "Llaveros", 18, 7),
		producto("llavero-06", "Llavero Abejita", "llaveros", "Llaveros", 15, 9),
		producto("llavero-07", "Llavero Dinosaurio", "llaveros", "Llaveros", 20, 3),
		producto("llavero-08", "Llavero Tortuguita", "llaveros", "Llaveros", 18, 5),
		producto("personaje-01", "Amigurumi Zorro", "personajes", "Personajes", 45, 3),
		producto("personaje-02", "Amigurumi Axolote", "personajes", "Personajes", 50, 2),
		producto("personaje-03", "Amigurumi Panda", "personajes", "Personajes", 48, 4),
		producto("personaje-04", "Amigurumi Unicornio", "personajes", "Personajes", 55, 2),
		producto("personaje-05", "Amigurumi Búho", "personajes", "Personajes", 45, 5),
		producto("personaje-06", "Amigurumi León", "personajes", "Personajes", 52, 3),
		producto("personaje-07", "Amigurumi Ballena", "personajes", "Personajes", 50, 4),
		producto("objeto-01", "Posavasos Flor", "objetos", "Objetos", 12, 10),
		producto("objeto-02", "Portamacetas Colgante", "objetos", "Objetos", 25, 6),
		producto("objeto-03", "Cesta Organizadora", "objetos", "Objetos", 35, 4),
		producto("objeto-04", "Funda para Taza", "objetos", "Objetos", 14, 8),
		producto("objeto-05", "Atrapasueños", "objetos", "Objetos", 30, 5),
	}

	b, err := json.MarshalIndent(productos, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Serializar catálogo: %v\n", err)
		os.Exit(1)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Crear directorio: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir catálogo: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Catálogo escrito: %s (%d productos)\n", path, len(productos))
}
