// Package http implementa el simulador del backend de registro: los mismos
// endpoints que el servicio real, sobre estado en memoria. Sirve para
// desarrollo del terminal y para las pruebas de integración del cliente.
package http

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/pedidos-sync/internal/application/dto"
	"github.com/jhoicas/pedidos-sync/internal/domain"
	"github.com/jhoicas/pedidos-sync/internal/domain/entity"
)

// Estados del ciclo de vida de un pedido en el simulador.
const (
	requestOpen       = "open"       // en construcción desde el local
	requestWarehouse  = "warehouse"  // activado: visible en la lista de bodega
	requestDispatched = "dispatched" // con salida registrada hacia el área
)

type requestState struct {
	ID         string
	AreaID     string
	EmployeeID string
	Status     string
	CreatedAt  time.Time
	Carts      map[string][]dto.LineItemDTO // última sincronización por ámbito
}

// State es el backend en memoria del simulador.
type State struct {
	mu         sync.RWMutex
	areas      []entity.Area
	employees  map[string][]entity.Employee
	categories []entity.Category
	products   map[string][]entity.CatalogEntry
	stock      map[string]int64 // existencia por producto; se adjunta en checkout
	requests   map[string]*requestState
	openByPair map[string]string // employeeID|areaID -> requestID abierto
	now        func() time.Time
}

// NewState crea el estado vacío.
func NewState() *State {
	return &State{
		employees:  make(map[string][]entity.Employee),
		products:   make(map[string][]entity.CatalogEntry),
		stock:      make(map[string]int64),
		requests:   make(map[string]*requestState),
		openByPair: make(map[string]string),
		now:        time.Now,
	}
}

// Seed carga los datos maestros del simulador.
func (st *State) Seed(areas []entity.Area, employees map[string][]entity.Employee,
	categories []entity.Category, products map[string][]entity.CatalogEntry, stock map[string]int64) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.areas = areas
	st.employees = employees
	st.categories = categories
	st.products = products
	if stock != nil {
		st.stock = stock
	}
}

// Catalog devuelve categorías y productos.
func (st *State) Catalog() ([]entity.Category, map[string][]entity.CatalogEntry) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.categories, st.products
}

// Areas devuelve los locales.
func (st *State) Areas() []entity.Area {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.areas
}

// Employees devuelve los responsables del área.
func (st *State) Employees(areaID string) []entity.Employee {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.employees[areaID]
}

// Acquire devuelve el pedido abierto para el par responsable/área, creándolo
// si no existe.
func (st *State) Acquire(employeeID, areaID string) string {
	st.mu.Lock()
	defer st.mu.Unlock()
	pair := employeeID + "|" + areaID
	if id, ok := st.openByPair[pair]; ok {
		if r, exists := st.requests[id]; exists && r.Status == requestOpen {
			return id
		}
	}
	id := uuid.New().String()
	st.requests[id] = &requestState{
		ID:         id,
		AreaID:     areaID,
		EmployeeID: employeeID,
		Status:     requestOpen,
		CreatedAt:  st.now(),
		Carts:      make(map[string][]dto.LineItemDTO),
	}
	st.openByPair[pair] = id
	return id
}

// SaveCart reemplaza el carrito del ámbito para el pedido dado (última
// escritura gana).
func (st *State) SaveCart(scope, requestID string, items []dto.LineItemDTO) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	r, ok := st.requests[requestID]
	if !ok {
		return domain.ErrNotFound
	}
	r.Carts[scope] = items
	return nil
}

// SavedCart devuelve el último carrito sincronizado del ámbito. En checkout
// adjunta la existencia conocida de cada producto.
func (st *State) SavedCart(scope, requestID string) ([]dto.LineItemDTO, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	r, ok := st.requests[requestID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	items := r.Carts[scope]
	if scope == "checkout" && len(items) == 0 {
		// bodega revisa lo pedido desde el local
		items = r.Carts["request"]
	}
	out := make([]dto.LineItemDTO, len(items))
	copy(out, items)
	if scope == "checkout" {
		for i := range out {
			id := out[i].ID
			if id == "" {
				id = out[i].ProductID
			}
			if qty, ok := st.stock[id]; ok {
				stock := qty
				out[i].Stock = &stock
			}
		}
	}
	return out, nil
}

// Activate pasa el pedido a bodega.
func (st *State) Activate(requestID string) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	r, ok := st.requests[requestID]
	if !ok {
		return domain.ErrNotFound
	}
	r.Status = requestWarehouse
	return nil
}

// Move registra la salida del pedido hacia el área. Solo pedidos ya en
// bodega pueden salir.
func (st *State) Move(requestID string) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	r, ok := st.requests[requestID]
	if !ok {
		return domain.ErrNotFound
	}
	if r.Status != requestWarehouse {
		return domain.ErrActionFailed
	}
	r.Status = requestDispatched
	return nil
}

// ActiveList devuelve los pedidos visibles en bodega (activados y sin
// despachar), con el conteo de la última sincronización del local.
func (st *State) ActiveList() []entity.ActiveRequest {
	st.mu.RLock()
	defer st.mu.RUnlock()
	out := make([]entity.ActiveRequest, 0, len(st.requests))
	for _, r := range st.requests {
		if r.Status != requestWarehouse {
			continue
		}
		out = append(out, entity.ActiveRequest{
			ID:           r.ID,
			AreaID:       r.AreaID,
			AreaName:     st.areaName(r.AreaID),
			EmployeeName: st.employeeName(r.AreaID, r.EmployeeID),
			ProductCount: len(r.Carts["request"]),
			CreatedAt:    r.CreatedAt,
		})
	}
	return out
}

func (st *State) areaName(areaID string) string {
	for _, a := range st.areas {
		if a.ID == areaID {
			return a.Name
		}
	}
	return ""
}

func (st *State) employeeName(areaID, employeeID string) string {
	for _, e := range st.employees[areaID] {
		if e.ID == employeeID {
			return e.Username
		}
	}
	return ""
}
