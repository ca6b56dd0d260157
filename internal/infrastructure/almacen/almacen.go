// Package almacen persiste los blobs por sesión en disco: un directorio
// por sesión con las dos claves fijas como archivos JSON planos. Los
// archivos son deliberadamente editables a mano — la capa de seguridad
// existe precisamente porque este almacén no es confiable.
package almacen

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/jhoicas/tienda-crochet/internal/domain/entity"
	"github.com/jhoicas/tienda-crochet/internal/domain/repository"
)

// Nombres de archivo de las dos claves persistidas.
const (
	ArchivoCarrito        = "productos-en-carrito.json"
	ArchivoDisponibilidad = "productos-disponibilidad.json"
)

var (
	_ repository.CarritoRepository        = (*Almacen)(nil)
	_ repository.DisponibilidadRepository = (*Almacen)(nil)
)

// Almacen implementa los puertos de carrito y disponibilidad sobre el
// sistema de archivos.
type Almacen struct {
	root string
	log  zerolog.Logger
}

// Nuevo construye el almacén con raíz en root.
func Nuevo(root string, log zerolog.Logger) *Almacen {
	return &Almacen{root: filepath.Clean(root), log: log}
}

func (a *Almacen) sesionDir(sesionID string) string {
	return filepath.Join(a.root, "sesiones", sesionID)
}

// LeerCarrito devuelve los items del carrito de la sesión. Archivo ausente
// o corrupto degrada a lista vacía con un log de diagnóstico, nunca a error.
func (a *Almacen) LeerCarrito(sesionID string) ([]entity.ItemCarrito, error) {
	var items []entity.ItemCarrito
	a.leerClave(sesionID, ArchivoCarrito, &items)
	return items, nil
}

// GuardarCarrito persiste los items del carrito de la sesión.
func (a *Almacen) GuardarCarrito(sesionID string, items []entity.ItemCarrito) error {
	if items == nil {
		items = []entity.ItemCarrito{}
	}
	return a.guardarClave(sesionID, ArchivoCarrito, items)
}

// LeerDisponibilidad devuelve la caché de disponibilidad de la sesión.
// Misma degradación que LeerCarrito.
func (a *Almacen) LeerDisponibilidad(sesionID string) ([]entity.Disponibilidad, error) {
	var entradas []entity.Disponibilidad
	a.leerClave(sesionID, ArchivoDisponibilidad, &entradas)
	return entradas, nil
}

// GuardarDisponibilidad persiste la caché de disponibilidad de la sesión.
func (a *Almacen) GuardarDisponibilidad(sesionID string, entradas []entity.Disponibilidad) error {
	if entradas == nil {
		entradas = []entity.Disponibilidad{}
	}
	return a.guardarClave(sesionID, ArchivoDisponibilidad, entradas)
}

func (a *Almacen) leerClave(sesionID, archivo string, out any) {
	path := filepath.Join(a.sesionDir(sesionID), archivo)
	b, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			a.log.Warn().Err(err).Str("clave", archivo).Str("sesion", sesionID).
				Msg("no se pudo leer el blob; se asume vacío")
		}
		return
	}
	if err := json.Unmarshal(b, out); err != nil {
		a.log.Warn().Err(err).Str("clave", archivo).Str("sesion", sesionID).
			Msg("blob corrupto; se asume vacío")
	}
}

func (a *Almacen) guardarClave(sesionID, archivo string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", archivo, err)
	}
	path := filepath.Join(a.sesionDir(sesionID), archivo)
	if err := atomicWriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("guardar %s: %w", archivo, err)
	}
	return nil
}
