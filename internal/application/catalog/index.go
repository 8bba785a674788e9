// Package catalog expone el snapshot de solo lectura de productos comprables
// agrupados por categoría, cargado una vez por sesión desde el backend.
package catalog

import (
	"github.com/jhoicas/pedidos-sync/internal/domain"
	"github.com/jhoicas/pedidos-sync/internal/domain/entity"
	"github.com/jhoicas/pedidos-sync/internal/domain/port"
)

// Index es inmutable tras su construcción; la categoría seleccionada es
// estado de interfaz ajeno a este núcleo.
type Index struct {
	categories []entity.Category
	products   map[string][]entity.CatalogEntry
}

// New construye el índice a partir de los datos ya cargados.
func New(categories []entity.Category, products map[string][]entity.CatalogEntry) *Index {
	if products == nil {
		products = map[string][]entity.CatalogEntry{}
	}
	return &Index{categories: categories, products: products}
}

// Empty devuelve un índice sin categorías ni productos ("nada disponible
// todavía"): el estado al que degrada una carga fallida.
func Empty() *Index {
	return New(nil, nil)
}

// Load obtiene el catálogo del colaborador backend. Ante fallo devuelve el
// índice vacío junto con el error; la carga no se reintenta sola.
func Load(gw port.CatalogGateway) (*Index, error) {
	categories, products, err := gw.GetCatalog()
	if err != nil {
		return Empty(), err
	}
	return New(categories, products), nil
}

// Categories devuelve las categorías en el orden de presentación del backend.
func (ix *Index) Categories() []entity.Category {
	out := make([]entity.Category, len(ix.categories))
	copy(out, ix.categories)
	return out
}

// ProductsIn devuelve los productos de la categoría; vacío si no existe.
func (ix *Index) ProductsIn(categoryID string) []entity.CatalogEntry {
	src := ix.products[categoryID]
	out := make([]entity.CatalogEntry, len(src))
	copy(out, src)
	return out
}

// Find busca un producto por id en todo el catálogo.
func (ix *Index) Find(catalogID string) (entity.CatalogEntry, error) {
	for _, entries := range ix.products {
		for _, e := range entries {
			if e.ID == catalogID {
				return e, nil
			}
		}
	}
	return entity.CatalogEntry{}, domain.ErrNotFound
}
