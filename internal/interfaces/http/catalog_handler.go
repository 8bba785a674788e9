package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pedidos-sync/internal/application/dto"
)

// CatalogHandler sirve el catálogo de productos comprables.
type CatalogHandler struct {
	state *State
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(state *State) *CatalogHandler {
	return &CatalogHandler{state: state}
}

// Get devuelve categorías en orden de presentación y productos por categoría.
func (h *CatalogHandler) Get(c *fiber.Ctx) error {
	categories, products := h.state.Catalog()
	return c.JSON(dto.FromCatalog(categories, products))
}
