package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-crochet/internal/application/carrito"
	"github.com/jhoicas/tienda-crochet/internal/application/ports"
	"github.com/jhoicas/tienda-crochet/internal/application/sesion"
	"github.com/jhoicas/tienda-crochet/internal/domain/entity"
	"github.com/jhoicas/tienda-crochet/internal/domain/seguridad"
	"github.com/jhoicas/tienda-crochet/internal/infrastructure/almacen"
	"github.com/jhoicas/tienda-crochet/internal/infrastructure/catalogo"
	apphttp "github.com/jhoicas/tienda-crochet/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const cookieSesion = "sesion_id"

type notificadorNulo struct{}

func (notificadorNulo) Notificar(ports.Evento, string) {}

func productoPrueba(id string, precio int64, disponible int) entity.Producto {
	return entity.Producto{
		ID:         id,
		Titulo:     "Producto " + id,
		Precio:     decimal.NewFromInt(precio),
		Categoria:  entity.Categoria{ID: "llaveros"},
		Disponible: disponible,
	}
}

// buildTestApp construye una aplicación Fiber con el router real sobre un
// almacén temporal.
func buildTestApp(t *testing.T, productos []entity.Producto) *fiber.App {
	t.Helper()

	store := almacen.Nuevo(t.TempDir(), zerolog.Nop())
	cat := catalogo.NuevoDesdeProductos(productos)
	validador := seguridad.NuevoValidador(seguridad.ReglasPorDefecto(), zerolog.Nop())
	sinc := carrito.NuevoSincronizador(cat, store, store, zerolog.Nop())
	uc := carrito.NuevoUseCase(validador, sinc, store, cat, notificadorNulo{}, zerolog.Nop())
	registro := sesion.NuevoRegistro(time.Minute, zerolog.Nop())

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		CarritoUC:    uc,
		Catalogo:     cat,
		Registro:     registro,
		CookieNombre: cookieSesion,
	})
	return app
}

// doRequest lanza una petición y devuelve la respuesta, propagando la
// cookie de sesión si se entrega una.
func doRequest(t *testing.T, app *fiber.App, method, target, cookie, body string) *http.Response {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: cookieSesion, Value: cookie})
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func sesionDe(t *testing.T, resp *http.Response) string {
	t.Helper()
	for _, c := range resp.Cookies() {
		if c.Name == cookieSesion {
			return c.Value
		}
	}
	t.Fatal("la respuesta no trae cookie de sesión")
	return ""
}

func decodificar[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

type carritoJSON struct {
	Items []struct {
		ID       string `json:"id"`
		Cantidad int    `json:"cantidad"`
		Subtotal string `json:"subtotal"`
	} `json:"items"`
	Total    string `json:"total"`
	Numerito int    `json:"numerito"`
	Aviso    string `json:"aviso"`
}

type errorJSON struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ──────────────────────────────────────────────────────────────────────────────
// Carrito
// ──────────────────────────────────────────────────────────────────────────────

func TestCarrito_AgregarYVer(t *testing.T) {
	app := buildTestApp(t, []entity.Producto{productoPrueba("llavero-01", 15, 5)})

	resp := doRequest(t, app, http.MethodPost, "/api/carrito/items/llavero-01", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	ses := sesionDe(t, resp)

	out := decodificar[carritoJSON](t, resp)
	require.Len(t, out.Items, 1)
	assert.Equal(t, 1, out.Items[0].Cantidad)
	assert.Equal(t, "Producto agregado", out.Aviso)

	resp = doRequest(t, app, http.MethodGet, "/api/carrito", ses, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out = decodificar[carritoJSON](t, resp)
	assert.Equal(t, 1, out.Numerito)
	assert.Equal(t, "15", out.Total)
}

func TestCarrito_AgotadoDevuelve409(t *testing.T) {
	app := buildTestApp(t, []entity.Producto{productoPrueba("llavero-01", 15, 0)})

	resp := doRequest(t, app, http.MethodPost, "/api/carrito/items/llavero-01", "", "")
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "AGOTADO", decodificar[errorJSON](t, resp).Code)
}

func TestCarrito_EliminarRestaura(t *testing.T) {
	app := buildTestApp(t, []entity.Producto{productoPrueba("llavero-01", 15, 5)})

	resp := doRequest(t, app, http.MethodPost, "/api/carrito/items/llavero-01", "", "")
	ses := sesionDe(t, resp)
	resp.Body.Close()

	resp = doRequest(t, app, http.MethodDelete, "/api/carrito/items/llavero-01", ses, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decodificar[carritoJSON](t, resp)
	assert.Empty(t, out.Items)

	resp = doRequest(t, app, http.MethodGet, "/api/disponibilidad", ses, "")
	disp := decodificar[struct {
		Items []struct {
			ID         string `json:"id"`
			Disponible int    `json:"disponible"`
		} `json:"items"`
	}](t, resp)
	require.Len(t, disp.Items, 1)
	assert.Equal(t, 5, disp.Items[0].Disponible)
}

func TestCarrito_EliminarInexistenteDevuelve404(t *testing.T) {
	app := buildTestApp(t, []entity.Producto{productoPrueba("llavero-01", 15, 5)})

	resp := doRequest(t, app, http.MethodDelete, "/api/carrito/items/llavero-01", "", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// Vaciar sin confirmar es 428; con confirmar: true procede.
func TestCarrito_VaciarExigeConfirmacion(t *testing.T) {
	app := buildTestApp(t, []entity.Producto{productoPrueba("llavero-01", 15, 5)})

	resp := doRequest(t, app, http.MethodPost, "/api/carrito/items/llavero-01", "", "")
	ses := sesionDe(t, resp)
	resp.Body.Close()

	resp = doRequest(t, app, http.MethodDelete, "/api/carrito", ses, `{"confirmar": false}`)
	require.Equal(t, http.StatusPreconditionRequired, resp.StatusCode)
	assert.Equal(t, "CONFIRMACION_REQUERIDA", decodificar[errorJSON](t, resp).Code)

	resp = doRequest(t, app, http.MethodDelete, "/api/carrito", ses, `{"confirmar": true}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decodificar[carritoJSON](t, resp)
	assert.Empty(t, out.Items)
}

func TestCarrito_Numerito(t *testing.T) {
	app := buildTestApp(t, []entity.Producto{productoPrueba("llavero-01", 15, 5)})

	resp := doRequest(t, app, http.MethodPost, "/api/carrito/items/llavero-01", "", "")
	ses := sesionDe(t, resp)
	resp.Body.Close()
	resp = doRequest(t, app, http.MethodPost, "/api/carrito/items/llavero-01", ses, "")
	resp.Body.Close()

	resp = doRequest(t, app, http.MethodGet, "/api/carrito/numerito", ses, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decodificar[struct {
		Numerito int `json:"numerito"`
	}](t, resp)
	assert.Equal(t, 2, out.Numerito)
}

// Sesiones distintas no comparten carrito.
func TestCarrito_SesionesIndependientes(t *testing.T) {
	app := buildTestApp(t, []entity.Producto{productoPrueba("llavero-01", 15, 5)})

	resp := doRequest(t, app, http.MethodPost, "/api/carrito/items/llavero-01", "", "")
	resp.Body.Close()

	resp = doRequest(t, app, http.MethodGet, "/api/carrito", "", "")
	out := decodificar[carritoJSON](t, resp)
	assert.Equal(t, 0, out.Numerito, "la segunda sesión arranca con carrito vacío")
}

// ──────────────────────────────────────────────────────────────────────────────
// Catálogo
// ──────────────────────────────────────────────────────────────────────────────

type catalogoJSON struct {
	Items []struct {
		ID         string `json:"id"`
		Disponible int    `json:"disponible"`
		Agotado    bool   `json:"agotado"`
	} `json:"items"`
	Total int `json:"total"`
}

func TestCatalogo_ListarConDisponibilidad(t *testing.T) {
	app := buildTestApp(t, []entity.Producto{
		productoPrueba("llavero-01", 15, 5),
		productoPrueba("objeto-01", 12, 0),
	})

	resp := doRequest(t, app, http.MethodGet, "/api/catalogo", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decodificar[catalogoJSON](t, resp)

	require.Equal(t, 2, out.Total)
	assert.False(t, out.Items[0].Agotado)
	assert.True(t, out.Items[1].Agotado, "stock cero se presenta como agotado")
}

// La disponibilidad del listado refleja lo reservado por la sesión.
func TestCatalogo_ListadoRestaLoDelCarrito(t *testing.T) {
	app := buildTestApp(t, []entity.Producto{productoPrueba("llavero-01", 15, 5)})

	resp := doRequest(t, app, http.MethodPost, "/api/carrito/items/llavero-01", "", "")
	ses := sesionDe(t, resp)
	resp.Body.Close()

	resp = doRequest(t, app, http.MethodGet, "/api/catalogo", ses, "")
	out := decodificar[catalogoJSON](t, resp)
	require.Equal(t, 1, out.Total)
	assert.Equal(t, 4, out.Items[0].Disponible)
}

func TestCatalogo_FiltroPorCategoria(t *testing.T) {
	productos := []entity.Producto{
		productoPrueba("llavero-01", 15, 5),
		{
			ID: "personaje-01", Titulo: "Amigurumi Zorro",
			Precio:    decimal.NewFromInt(45),
			Categoria: entity.Categoria{ID: "personajes"}, Disponible: 3,
		},
	}
	app := buildTestApp(t, productos)

	resp := doRequest(t, app, http.MethodGet, "/api/catalogo?categoria=personajes", "", "")
	out := decodificar[catalogoJSON](t, resp)
	require.Equal(t, 1, out.Total)
	assert.Equal(t, "personaje-01", out.Items[0].ID)

	resp = doRequest(t, app, http.MethodGet, "/api/catalogo?categoria=todos", "", "")
	out = decodificar[catalogoJSON](t, resp)
	assert.Equal(t, 2, out.Total, "todos equivale a sin filtro")
}

func TestCatalogo_PorIDInexistente(t *testing.T) {
	app := buildTestApp(t, []entity.Producto{productoPrueba("llavero-01", 15, 5)})

	resp := doRequest(t, app, http.MethodGet, "/api/catalogo/fantasma-01", "", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
