package carrito

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/tienda-crochet/internal/application/sesion"
)

// Vigilante re-valida periódicamente todas las sesiones activas
// (saneamiento + sincronización), la protección en tiempo real contra
// ediciones de los blobs por fuera de la API. Las mutaciones ya
// re-sincronizan por su cuenta; el barrido solo cubre lo que la API no ve.
type Vigilante struct {
	registro  *sesion.Registro
	uc        *UseCase
	intervalo time.Duration
	log       zerolog.Logger
}

// NuevoVigilante construye el vigilante.
func NuevoVigilante(registro *sesion.Registro, uc *UseCase, intervalo time.Duration, log zerolog.Logger) *Vigilante {
	return &Vigilante{registro: registro, uc: uc, intervalo: intervalo, log: log}
}

// Ejecutar corre el barrido cada intervalo hasta que el contexto se
// cancele. Pensado para una goroutine propia desde main.
func (v *Vigilante) Ejecutar(ctx context.Context) {
	v.log.Info().Dur("intervalo", v.intervalo).Msg("vigilante iniciado")
	ticker := time.NewTicker(v.intervalo)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			v.log.Info().Msg("vigilante detenido")
			return
		case <-ticker.C:
			v.Barrido()
		}
	}
}

// Barrido re-valida cada sesión activa. Un fallo en una sesión se
// registra y no interrumpe el resto del barrido.
func (v *Vigilante) Barrido() {
	for _, ses := range v.registro.Activas() {
		if _, err := v.uc.Revalidar(ses); err != nil {
			v.log.Error().Err(err).Str("sesion", ses.ID).Msg("re-validación fallida")
		}
	}
}
