package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde
// env y opcionalmente archivo).
type Config struct {
	App       AppConfig
	HTTP      HTTPConfig
	Almacen   AlmacenConfig
	Seguridad SeguridadConfig
	Vigilante VigilanteConfig
	Sesion    SesionConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// AlmacenConfig rutas del almacén en disco y del catálogo estático.
type AlmacenConfig struct {
	DataDir      string // raíz de los blobs por sesión
	CatalogoPath string // archivo JSON del catálogo; puede no existir
}

// SeguridadConfig límites del validador del carrito. PrecioMinimo se lee
// como string para construir un decimal exacto.
type SeguridadConfig struct {
	PrecioMinimo   string
	CantidadMinima int
	CantidadMaxima int
	IDsPermitidos  []string // vacío = lista fija por defecto
}

// VigilanteConfig intervalo del barrido periódico de re-validación.
type VigilanteConfig struct {
	IntervaloSeg int
}

// Intervalo devuelve el intervalo como duración.
func (c VigilanteConfig) Intervalo() time.Duration {
	return time.Duration(c.IntervaloSeg) * time.Second
}

// SesionConfig expiración del registro de sesiones activas. Los blobs en
// disco sobreviven a la expiración; solo sale la sesión del barrido.
type SesionConfig struct {
	TTLMin       int
	CookieNombre string
}

// TTL devuelve la expiración como duración.
func (c SesionConfig) TTL() time.Duration {
	return time.Duration(c.TTLMin) * time.Minute
}

// Load lee la configuración desde variables de entorno (y opcionalmente
// desde archivo). Las env vars tienen prioridad. Nombres esperados:
// APP_ENV, HTTP_PORT, DATA_DIR, SEGURIDAD_PRECIO_MINIMO, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "tienda-crochet"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Almacen: AlmacenConfig{
			DataDir:      getString(v, "DATA_DIR", "./data"),
			CatalogoPath: getString(v, "CATALOGO_PATH", "./data/productos.json"),
		},
		Seguridad: SeguridadConfig{
			PrecioMinimo:   getString(v, "SEGURIDAD_PRECIO_MINIMO", "10"),
			CantidadMinima: getInt(v, "SEGURIDAD_CANTIDAD_MINIMA", 1),
			CantidadMaxima: getInt(v, "SEGURIDAD_CANTIDAD_MAXIMA", 10),
			IDsPermitidos:  getStringSlice(v, "SEGURIDAD_IDS_PERMITIDOS"),
		},
		Vigilante: VigilanteConfig{
			IntervaloSeg: getInt(v, "VIGILANTE_INTERVALO_SEG", 3),
		},
		Sesion: SesionConfig{
			TTLMin:       getInt(v, "SESION_TTL_MIN", 30),
			CookieNombre: getString(v, "SESION_COOKIE", "sesion_id"),
		},
	}

	if cfg.Seguridad.CantidadMinima < 1 || cfg.Seguridad.CantidadMaxima < cfg.Seguridad.CantidadMinima {
		return nil, fmt.Errorf("límites de cantidad inválidos: [%d, %d]",
			cfg.Seguridad.CantidadMinima, cfg.Seguridad.CantidadMaxima)
	}
	if cfg.Vigilante.IntervaloSeg <= 0 {
		return nil, fmt.Errorf("intervalo del vigilante inválido: %d", cfg.Vigilante.IntervaloSeg)
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

// getStringSlice acepta tanto listas nativas como valores separados por
// coma (forma habitual en env vars).
func getStringSlice(v *viper.Viper, key string) []string {
	if !v.IsSet(key) {
		return nil
	}
	if s := v.GetStringSlice(key); len(s) > 1 {
		return s
	}
	raw := strings.TrimSpace(v.GetString(key))
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
