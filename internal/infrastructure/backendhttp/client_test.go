package backendhttp_test

import (
	"net"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pedidos-sync/internal/domain"
	"github.com/jhoicas/pedidos-sync/internal/domain/entity"
	"github.com/jhoicas/pedidos-sync/internal/infrastructure/backendhttp"
	simhttp "github.com/jhoicas/pedidos-sync/internal/interfaces/http"
	"github.com/jhoicas/pedidos-sync/pkg/logger"
)

// simulador levanta el backend simulado en un puerto efímero y devuelve un
// cliente apuntándole.
func simulador(t *testing.T) *backendhttp.Client {
	t.Helper()

	state := simhttp.NewState()
	simhttp.SeedDemo(state)
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	simhttp.Router(app, simhttp.RouterDeps{State: state, Log: logger.Nop()})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go app.Listener(ln)
	t.Cleanup(func() { app.Shutdown() })

	return backendhttp.New("http://"+ln.Addr().String(), 5*time.Second)
}

func TestClient_GetCatalog(t *testing.T) {
	c := simulador(t)

	categories, products, err := c.GetCatalog()
	require.NoError(t, err)
	require.Len(t, categories, 3)
	assert.Equal(t, "Secos", categories[0].Denomination)
	assert.Len(t, products["cat-bebidas"], 2)
}

func TestClient_AreasYEmployees(t *testing.T) {
	c := simulador(t)

	areas, err := c.Areas()
	require.NoError(t, err)
	require.Len(t, areas, 2)

	employees, err := c.Employees("area-barra")
	require.NoError(t, err)
	require.Len(t, employees, 1)
	assert.Equal(t, "lucia", employees[0].Username)
}

// El viaje completo del carrito: adquirir, sincronizar y releer lo guardado.
func TestClient_SyncYGetSaved(t *testing.T) {
	c := simulador(t)

	requestID, err := c.AcquireRequest("emp-marta", "area-cocina")
	require.NoError(t, err)
	require.NotEmpty(t, requestID)

	items := []entity.LineItem{
		{ID: "prod-harina", Name: "Harina", UnitOfMeasure: "mass", Quantity: "2", Key: "prod-harina-1", AddedAt: 1},
		{ID: "prod-leche", Name: "Leche", UnitOfMeasure: "volume", Quantity: "1.5", Key: "prod-leche-2", AddedAt: 2},
	}
	require.NoError(t, c.Sync("request", items, requestID, "area-cocina"))

	saved, err := c.GetSaved("request", requestID)
	require.NoError(t, err)
	require.Len(t, saved, 2)
	assert.Equal(t, "prod-harina", saved[0].ID)
	assert.Equal(t, "2", saved[0].Quantity)
}

func TestClient_CicloDeActivacion(t *testing.T) {
	c := simulador(t)

	requestID, err := c.AcquireRequest("emp-lucia", "area-barra")
	require.NoError(t, err)
	require.NoError(t, c.Sync("request",
		[]entity.LineItem{{ID: "prod-gaseosa", Quantity: "6"}}, requestID, "area-barra"))

	// mover antes de activar falla como error de red (el backend responde 409)
	assert.ErrorIs(t, c.MakeMovement(requestID), domain.ErrNetwork)

	require.NoError(t, c.Activate(requestID))
	active, err := c.Active()
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Barra", active[0].AreaName)
	assert.Equal(t, 1, active[0].ProductCount)

	require.NoError(t, c.MakeMovement(requestID))
	active, err = c.Active()
	require.NoError(t, err)
	assert.Empty(t, active)
}

// Sin servidor escuchando, todo puerto devuelve ErrNetwork.
func TestClient_ServidorCaido(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	c := backendhttp.New("http://"+addr, time.Second)
	_, _, err = c.GetCatalog()
	assert.ErrorIs(t, err, domain.ErrNetwork)
}
