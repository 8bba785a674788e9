// Package backendhttp implementa los puertos hacia el backend de registro
// sobre HTTP/JSON usando el cliente (Agent) de Fiber.
package backendhttp

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pedidos-sync/internal/application/dto"
	"github.com/jhoicas/pedidos-sync/internal/domain"
	"github.com/jhoicas/pedidos-sync/internal/domain/entity"
)

const defaultTimeout = 10 * time.Second

// Client implementa port.CatalogGateway, port.CartGateway y
// port.RequestGateway contra una URL base. Cualquier fallo de transporte o
// estado no-2xx se envuelve en domain.ErrNetwork.
type Client struct {
	baseURL string
	timeout time.Duration
}

// New construye el cliente. timeout cero toma 10 s.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{baseURL: baseURL, timeout: timeout}
}

// do emite una petición JSON y decodifica la respuesta en out (si no es nil).
func (c *Client) do(method, path string, in, out any) error {
	a := fiber.AcquireAgent()
	defer fiber.ReleaseAgent(a)

	req := a.Request()
	req.Header.SetMethod(method)
	req.SetRequestURI(c.baseURL + path)
	if in != nil {
		a.JSON(in)
	}
	if err := a.Parse(); err != nil {
		return fmt.Errorf("%w: %s %s: %v", domain.ErrNetwork, method, path, err)
	}
	code, body, errs := a.Timeout(c.timeout).Bytes()
	if len(errs) > 0 {
		return fmt.Errorf("%w: %s %s: %v", domain.ErrNetwork, method, path, errs[0])
	}
	if code < 200 || code > 299 {
		return fmt.Errorf("%w: %s %s: estado %d", domain.ErrNetwork, method, path, code)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: %s %s: respuesta ilegible: %v", domain.ErrNetwork, method, path, err)
	}
	return nil
}

// GetCatalog implementa port.CatalogGateway.
func (c *Client) GetCatalog() ([]entity.Category, map[string][]entity.CatalogEntry, error) {
	var resp dto.CatalogResponse
	if err := c.do(fiber.MethodGet, "/catalog", nil, &resp); err != nil {
		return nil, nil, err
	}
	categories, products := resp.ToIndexData()
	return categories, products, nil
}

// GetSaved implementa port.CartGateway.
func (c *Client) GetSaved(scope, scopeID string) ([]entity.LineItem, error) {
	var items []dto.LineItemDTO
	path := fmt.Sprintf("/cart/saved/%s/%s", scope, scopeID)
	if err := c.do(fiber.MethodGet, path, nil, &items); err != nil {
		return nil, err
	}
	return dto.ToLineItems(items), nil
}

// Sync implementa port.CartGateway: una llamada con el contenido completo.
func (c *Client) Sync(scope string, items []entity.LineItem, requestID, areaID string) error {
	payload := dto.SyncRequest{
		Items:     dto.FromLineItems(items),
		RequestID: requestID,
		AreaID:    areaID,
	}
	return c.do(fiber.MethodPost, "/cart/sync/"+scope, payload, nil)
}

// Areas implementa port.RequestGateway.
func (c *Client) Areas() ([]entity.Area, error) {
	var list []dto.AreaDTO
	if err := c.do(fiber.MethodGet, "/areas", nil, &list); err != nil {
		return nil, err
	}
	out := make([]entity.Area, 0, len(list))
	for _, a := range list {
		out = append(out, entity.Area{ID: a.ID, Name: a.Name})
	}
	return out, nil
}

// Employees implementa port.RequestGateway.
func (c *Client) Employees(areaID string) ([]entity.Employee, error) {
	var list []dto.EmployeeDTO
	if err := c.do(fiber.MethodGet, "/areas/"+areaID+"/employees", nil, &list); err != nil {
		return nil, err
	}
	out := make([]entity.Employee, 0, len(list))
	for _, e := range list {
		out = append(out, entity.Employee{ID: e.ID, Username: e.Username})
	}
	return out, nil
}

// AcquireRequest implementa port.RequestGateway.
func (c *Client) AcquireRequest(employeeID, areaID string) (string, error) {
	var resp dto.AcquireRequestResponse
	payload := dto.AcquireRequestRequest{EmployeeID: employeeID, AreaID: areaID}
	if err := c.do(fiber.MethodPost, "/request/acquire", payload, &resp); err != nil {
		return "", err
	}
	return resp.ID, nil
}

// Active implementa port.RequestGateway.
func (c *Client) Active() ([]entity.ActiveRequest, error) {
	var list []dto.ActiveRequestDTO
	if err := c.do(fiber.MethodGet, "/request/active", nil, &list); err != nil {
		return nil, err
	}
	out := make([]entity.ActiveRequest, 0, len(list))
	for _, r := range list {
		out = append(out, r.ToEntity())
	}
	return out, nil
}

// Activate implementa port.RequestGateway.
func (c *Client) Activate(requestID string) error {
	return c.do(fiber.MethodPost, "/request/activate/"+requestID, nil, nil)
}

// MakeMovement implementa port.RequestGateway.
func (c *Client) MakeMovement(requestID string) error {
	return c.do(fiber.MethodPost, "/request/move/"+requestID, nil, nil)
}
