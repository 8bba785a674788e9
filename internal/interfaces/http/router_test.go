package http

import (
	"bytes"
	"encoding/json"
	"io"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pedidos-sync/internal/application/dto"
	"github.com/jhoicas/pedidos-sync/pkg/logger"
)

func appDePrueba() (*fiber.App, *State) {
	state := NewState()
	SeedDemo(state)
	app := fiber.New()
	Router(app, RouterDeps{State: state, Log: logger.Nop()})
	return app, state
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*stdhttp.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	return resp, raw
}

// adquirir abre un pedido para el par responsable/área y devuelve su id.
func adquirir(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp, raw := doJSON(t, app, fiber.MethodPost, "/request/acquire",
		dto.AcquireRequestRequest{EmployeeID: "emp-marta", AreaID: "area-cocina"})
	require.Equal(t, stdhttp.StatusOK, resp.StatusCode)
	var out dto.AcquireRequestResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	require.NotEmpty(t, out.ID)
	return out.ID
}

// ──────────────────────────────────────────────────────────────────────────────
// Catálogo y selectores
// ──────────────────────────────────────────────────────────────────────────────

func TestCatalog_DevuelveCategoriasOrdenadas(t *testing.T) {
	app, _ := appDePrueba()

	resp, raw := doJSON(t, app, fiber.MethodGet, "/catalog", nil)
	require.Equal(t, stdhttp.StatusOK, resp.StatusCode)

	var out dto.CatalogResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	require.Len(t, out.Categories, 3)
	assert.Equal(t, "Secos", out.Categories[0].Denomination)
	assert.Len(t, out.Products["cat-secos"], 3)
}

func TestAreas_YResponsablesPorArea(t *testing.T) {
	app, _ := appDePrueba()

	resp, raw := doJSON(t, app, fiber.MethodGet, "/areas", nil)
	require.Equal(t, stdhttp.StatusOK, resp.StatusCode)
	var areas []dto.AreaDTO
	require.NoError(t, json.Unmarshal(raw, &areas))
	require.Len(t, areas, 2)

	resp, raw = doJSON(t, app, fiber.MethodGet, "/areas/area-cocina/employees", nil)
	require.Equal(t, stdhttp.StatusOK, resp.StatusCode)
	var employees []dto.EmployeeDTO
	require.NoError(t, json.Unmarshal(raw, &employees))
	assert.Len(t, employees, 2)

	// área desconocida: lista vacía, no error
	resp, raw = doJSON(t, app, fiber.MethodGet, "/areas/area-fantasma/employees", nil)
	require.Equal(t, stdhttp.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(raw, &employees))
	assert.Empty(t, employees)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ciclo de pedido
// ──────────────────────────────────────────────────────────────────────────────

// El mismo par responsable/área reutiliza el pedido abierto en vez de crear otro.
func TestAcquire_ReutilizaElPedidoAbierto(t *testing.T) {
	app, _ := appDePrueba()
	primero := adquirir(t, app)
	segundo := adquirir(t, app)
	assert.Equal(t, primero, segundo)
}

func TestAcquire_ValidaElCuerpo(t *testing.T) {
	app, _ := appDePrueba()
	resp, raw := doJSON(t, app, fiber.MethodPost, "/request/acquire",
		dto.AcquireRequestRequest{EmployeeID: "emp-marta"})
	require.Equal(t, stdhttp.StatusBadRequest, resp.StatusCode)
	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, "VALIDATION", out.Code)
}

func TestSync_GuardaYSavedLoDevuelve(t *testing.T) {
	app, _ := appDePrueba()
	requestID := adquirir(t, app)

	body := dto.SyncRequest{
		Items: []dto.LineItemDTO{
			{ID: "prod-harina", Name: "Harina", UnitOfMeasure: "mass", Quantity: "2", Key: "prod-harina-1"},
			{ID: "prod-leche", Name: "Leche", UnitOfMeasure: "volume", Quantity: "1.5", Key: "prod-leche-1"},
		},
		RequestID: requestID,
		AreaID:    "area-cocina",
	}
	resp, _ := doJSON(t, app, fiber.MethodPost, "/cart/sync/request", body)
	require.Equal(t, stdhttp.StatusOK, resp.StatusCode)

	resp, raw := doJSON(t, app, fiber.MethodGet, "/cart/saved/request/"+requestID, nil)
	require.Equal(t, stdhttp.StatusOK, resp.StatusCode)
	var items []dto.LineItemDTO
	require.NoError(t, json.Unmarshal(raw, &items))
	require.Len(t, items, 2)
	assert.Equal(t, "2", items[0].Quantity)
}

// Cada sync reemplaza el carrito completo: última escritura gana.
func TestSync_UltimaEscrituraGana(t *testing.T) {
	app, _ := appDePrueba()
	requestID := adquirir(t, app)

	doJSON(t, app, fiber.MethodPost, "/cart/sync/request", dto.SyncRequest{
		Items:     []dto.LineItemDTO{{ID: "prod-harina", Quantity: "2"}, {ID: "prod-arroz", Quantity: "1"}},
		RequestID: requestID,
	})
	doJSON(t, app, fiber.MethodPost, "/cart/sync/request", dto.SyncRequest{
		Items:     []dto.LineItemDTO{{ID: "prod-harina", Quantity: "5"}},
		RequestID: requestID,
	})

	_, raw := doJSON(t, app, fiber.MethodGet, "/cart/saved/request/"+requestID, nil)
	var items []dto.LineItemDTO
	require.NoError(t, json.Unmarshal(raw, &items))
	require.Len(t, items, 1)
	assert.Equal(t, "5", items[0].Quantity)
}

func TestSync_SinRequestIdEsValidacion(t *testing.T) {
	app, _ := appDePrueba()
	resp, raw := doJSON(t, app, fiber.MethodPost, "/cart/sync/request",
		dto.SyncRequest{Items: []dto.LineItemDTO{{ID: "prod-harina", Quantity: "1"}}})
	require.Equal(t, stdhttp.StatusBadRequest, resp.StatusCode)
	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, "VALIDATION", out.Code)
}

// Un pedido desconocido en Saved devuelve lista vacía: el terminal lo trata
// como carrito nuevo.
func TestSaved_PedidoDesconocidoDevuelveVacio(t *testing.T) {
	app, _ := appDePrueba()
	resp, raw := doJSON(t, app, fiber.MethodGet, "/cart/saved/request/req-fantasma", nil)
	require.Equal(t, stdhttp.StatusOK, resp.StatusCode)
	var items []dto.LineItemDTO
	require.NoError(t, json.Unmarshal(raw, &items))
	assert.Empty(t, items)
}

// En checkout el carrito hereda lo sincronizado desde el local y adjunta la
// existencia conocida de cada producto.
func TestSaved_CheckoutAdjuntaStock(t *testing.T) {
	app, _ := appDePrueba()
	requestID := adquirir(t, app)

	doJSON(t, app, fiber.MethodPost, "/cart/sync/request", dto.SyncRequest{
		Items:     []dto.LineItemDTO{{ID: "prod-harina", Name: "Harina", Quantity: "2"}},
		RequestID: requestID,
	})

	_, raw := doJSON(t, app, fiber.MethodGet, "/cart/saved/checkout/"+requestID, nil)
	var items []dto.LineItemDTO
	require.NoError(t, json.Unmarshal(raw, &items))
	require.Len(t, items, 1)
	require.NotNil(t, items[0].Stock)
	assert.EqualValues(t, 40, *items[0].Stock)
}

func TestActivate_PublicaEnLaListaActiva(t *testing.T) {
	app, _ := appDePrueba()
	requestID := adquirir(t, app)

	doJSON(t, app, fiber.MethodPost, "/cart/sync/request", dto.SyncRequest{
		Items:     []dto.LineItemDTO{{ID: "prod-harina", Quantity: "2"}, {ID: "prod-arroz", Quantity: "1"}},
		RequestID: requestID,
	})

	// antes de activar no aparece
	_, raw := doJSON(t, app, fiber.MethodGet, "/request/active", nil)
	var list []dto.ActiveRequestDTO
	require.NoError(t, json.Unmarshal(raw, &list))
	assert.Empty(t, list)

	resp, _ := doJSON(t, app, fiber.MethodPost, "/request/activate/"+requestID, nil)
	require.Equal(t, stdhttp.StatusOK, resp.StatusCode)

	_, raw = doJSON(t, app, fiber.MethodGet, "/request/active", nil)
	require.NoError(t, json.Unmarshal(raw, &list))
	require.Len(t, list, 1)
	assert.Equal(t, requestID, list[0].ID)
	assert.Equal(t, "Cocina", list[0].AreaName)
	assert.Equal(t, "marta", list[0].EmployeeName)
	assert.Equal(t, 2, list[0].ProductCount)
}

// La salida exige que el pedido esté en bodega; despachar lo saca de la lista.
func TestMove_ExigePedidoActivado(t *testing.T) {
	app, _ := appDePrueba()
	requestID := adquirir(t, app)

	resp, raw := doJSON(t, app, fiber.MethodPost, "/request/move/"+requestID, nil)
	require.Equal(t, stdhttp.StatusConflict, resp.StatusCode)
	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, "CONFLICT", out.Code)

	doJSON(t, app, fiber.MethodPost, "/request/activate/"+requestID, nil)
	resp, _ = doJSON(t, app, fiber.MethodPost, "/request/move/"+requestID, nil)
	require.Equal(t, stdhttp.StatusOK, resp.StatusCode)

	_, raw = doJSON(t, app, fiber.MethodGet, "/request/active", nil)
	var list []dto.ActiveRequestDTO
	require.NoError(t, json.Unmarshal(raw, &list))
	assert.Empty(t, list)
}

func TestMove_PedidoDesconocido(t *testing.T) {
	app, _ := appDePrueba()
	resp, raw := doJSON(t, app, fiber.MethodPost, "/request/move/req-fantasma", nil)
	require.Equal(t, stdhttp.StatusNotFound, resp.StatusCode)
	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, "NOT_FOUND", out.Code)
}
