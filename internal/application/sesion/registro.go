// Package sesion administra las sesiones de visitante. Cada sesión juega
// el papel que jugaba un navegador en la tienda original: un par de blobs
// propios en disco y un candado que serializa toda operación sobre ellos
// (el equivalente del run loop de un solo hilo del navegador).
package sesion

import (
	"sync"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"
)

// Sesion una sesión de visitante viva. El mutex cubre las dos claves
// persistidas de la sesión: toda operación que lea o escriba carrito y
// disponibilidad debe ejecutarse bajo él.
type Sesion struct {
	ID       string
	CreadaEn time.Time

	mu sync.Mutex
}

// Bloquear toma el candado de la sesión.
func (s *Sesion) Bloquear() { s.mu.Lock() }

// Desbloquear libera el candado de la sesión.
func (s *Sesion) Desbloquear() { s.mu.Unlock() }

// Registro lleva las sesiones activas con expiración por inactividad.
// La expiración solo saca la sesión del barrido del vigilante; los blobs
// en disco sobreviven y la misma cookie la reabre.
type Registro struct {
	cache *gocache.Cache
	ttl   time.Duration
	log   zerolog.Logger

	mu sync.Mutex // serializa Abrir para no duplicar sesiones por ID
}

// NuevoRegistro construye el registro con el TTL dado.
func NuevoRegistro(ttl time.Duration, log zerolog.Logger) *Registro {
	return &Registro{
		cache: gocache.New(ttl, time.Minute),
		ttl:   ttl,
		log:   log,
	}
}

// Abrir devuelve la sesión del ID dado, creándola si no existe o si el ID
// está vacío o no es un UUID válido (cookie ausente o manipulada).
// Devuelve también si la sesión es nueva en el registro.
func (r *Registro) Abrir(id string) (*Sesion, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := uuid.Parse(id); err != nil {
		id = uuid.NewString()
	}
	if v, ok := r.cache.Get(id); ok {
		ses := v.(*Sesion)
		r.cache.Set(id, ses, r.ttl) // refresca la expiración
		return ses, false
	}
	ses := &Sesion{ID: id, CreadaEn: time.Now()}
	r.cache.Set(id, ses, r.ttl)
	r.log.Debug().Str("sesion", id).Msg("sesión abierta")
	return ses, true
}

// Activas devuelve las sesiones vivas en este momento (las que barre el
// vigilante).
func (r *Registro) Activas() []*Sesion {
	items := r.cache.Items()
	out := make([]*Sesion, 0, len(items))
	for _, it := range items {
		if ses, ok := it.Object.(*Sesion); ok {
			out = append(out, ses)
		}
	}
	return out
}
