package dto

import (
	"time"

	"github.com/jhoicas/pedidos-sync/internal/domain/entity"
)

// LineItemDTO línea de carrito en el cable. El backend histórico a veces
// devuelve productId en lugar de id y omite la marca de inserción; ToEntity
// normaliza ambos casos.
type LineItemDTO struct {
	ID            string `json:"id,omitempty"`
	ProductID     string `json:"productId,omitempty"`
	Name          string `json:"name"`
	UnitOfMeasure string `json:"unitOfMeasure"`
	Quantity      string `json:"quantity"`
	Stock         *int64 `json:"stock,omitempty"`
	Key           string `json:"key,omitempty"`
	AddedAt       int64  `json:"addedAt,omitempty"`
}

// ToEntity convierte la línea del cable a entidad de dominio.
func (d LineItemDTO) ToEntity() entity.LineItem {
	id := d.ID
	if id == "" {
		id = d.ProductID
	}
	return entity.LineItem{
		ID:            id,
		Name:          d.Name,
		UnitOfMeasure: d.UnitOfMeasure,
		Quantity:      d.Quantity,
		Stock:         d.Stock,
		Key:           d.Key,
		AddedAt:       d.AddedAt,
	}
}

// FromLineItem convierte la entidad a su forma de cable.
func FromLineItem(li entity.LineItem) LineItemDTO {
	return LineItemDTO{
		ID:            li.ID,
		Name:          li.Name,
		UnitOfMeasure: li.UnitOfMeasure,
		Quantity:      li.Quantity,
		Stock:         li.Stock,
		Key:           li.Key,
		AddedAt:       li.AddedAt,
	}
}

// FromLineItems convierte la lista completa.
func FromLineItems(items []entity.LineItem) []LineItemDTO {
	out := make([]LineItemDTO, 0, len(items))
	for _, li := range items {
		out = append(out, FromLineItem(li))
	}
	return out
}

// ToLineItems convierte la lista del cable a entidades.
func ToLineItems(items []LineItemDTO) []entity.LineItem {
	out := make([]entity.LineItem, 0, len(items))
	for _, d := range items {
		out = append(out, d.ToEntity())
	}
	return out
}

// SyncRequest cuerpo de POST /cart/sync/{scope}: el contenido completo del
// carrito más los identificadores persistidos en el dispositivo.
type SyncRequest struct {
	Items     []LineItemDTO `json:"items"`
	RequestID string        `json:"requestId"`
	AreaID    string        `json:"areaId"`
}

// AckResponse acuse simple de las operaciones de escritura.
type AckResponse struct {
	Status string `json:"status"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// CategoryDTO categoría del catálogo.
type CategoryDTO struct {
	ID           string `json:"id"`
	Denomination string `json:"denomination"`
}

// CatalogEntryDTO producto comprable.
type CatalogEntryDTO struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	UnitOfMeasure string `json:"unitOfMeasure"`
	CategoryID    string `json:"categoryId"`
}

// CatalogResponse respuesta de GET /catalog: categorías ordenadas y productos
// agrupados por id de categoría.
type CatalogResponse struct {
	Categories []CategoryDTO                `json:"categories"`
	Products   map[string][]CatalogEntryDTO `json:"products"`
}

// ToIndexData convierte la respuesta de catálogo a entidades de dominio.
func (r CatalogResponse) ToIndexData() ([]entity.Category, map[string][]entity.CatalogEntry) {
	categories := make([]entity.Category, 0, len(r.Categories))
	for _, c := range r.Categories {
		categories = append(categories, entity.Category{ID: c.ID, Denomination: c.Denomination})
	}
	products := make(map[string][]entity.CatalogEntry, len(r.Products))
	for catID, entries := range r.Products {
		list := make([]entity.CatalogEntry, 0, len(entries))
		for _, e := range entries {
			list = append(list, entity.CatalogEntry{
				ID:            e.ID,
				Name:          e.Name,
				UnitOfMeasure: e.UnitOfMeasure,
				CategoryID:    e.CategoryID,
			})
		}
		products[catID] = list
	}
	return categories, products
}

// FromCatalog arma la respuesta de catálogo desde entidades.
func FromCatalog(categories []entity.Category, products map[string][]entity.CatalogEntry) CatalogResponse {
	resp := CatalogResponse{
		Categories: make([]CategoryDTO, 0, len(categories)),
		Products:   make(map[string][]CatalogEntryDTO, len(products)),
	}
	for _, c := range categories {
		resp.Categories = append(resp.Categories, CategoryDTO{ID: c.ID, Denomination: c.Denomination})
	}
	for catID, entries := range products {
		list := make([]CatalogEntryDTO, 0, len(entries))
		for _, e := range entries {
			list = append(list, CatalogEntryDTO{
				ID:            e.ID,
				Name:          e.Name,
				UnitOfMeasure: e.UnitOfMeasure,
				CategoryID:    e.CategoryID,
			})
		}
		resp.Products[catID] = list
	}
	return resp
}

// AreaDTO local disponible.
type AreaDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// EmployeeDTO responsable de un área.
type EmployeeDTO struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// AcquireRequestRequest cuerpo de POST /request/acquire.
type AcquireRequestRequest struct {
	EmployeeID string `json:"employeeId"`
	AreaID     string `json:"areaId"`
}

// AcquireRequestResponse id del pedido abierto para el par responsable/área.
type AcquireRequestResponse struct {
	ID string `json:"id"`
}

// ActiveRequestDTO pedido activo visible desde bodega.
type ActiveRequestDTO struct {
	ID           string    `json:"id"`
	AreaID       string    `json:"areaId"`
	AreaName     string    `json:"areaName"`
	EmployeeName string    `json:"employeeName"`
	ProductCount int       `json:"productCount"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ToEntity convierte el pedido activo a entidad.
func (d ActiveRequestDTO) ToEntity() entity.ActiveRequest {
	return entity.ActiveRequest{
		ID:           d.ID,
		AreaID:       d.AreaID,
		AreaName:     d.AreaName,
		EmployeeName: d.EmployeeName,
		ProductCount: d.ProductCount,
		CreatedAt:    d.CreatedAt,
	}
}

// FromActiveRequest convierte la entidad a su forma de cable.
func FromActiveRequest(r entity.ActiveRequest) ActiveRequestDTO {
	return ActiveRequestDTO{
		ID:           r.ID,
		AreaID:       r.AreaID,
		AreaName:     r.AreaName,
		EmployeeName: r.EmployeeName,
		ProductCount: r.ProductCount,
		CreatedAt:    r.CreatedAt,
	}
}
