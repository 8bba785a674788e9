package entity

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// LineItem representa una línea del pedido en construcción: un producto del
// catálogo más la cantidad solicitada. Quantity se guarda como texto tal cual
// lo escribió el usuario (entero o hasta dos decimales); la validación vive en
// el almacén del carrito.
type LineItem struct {
	ID            string // id del producto en el catálogo (único por carrito)
	Name          string
	UnitOfMeasure string // mass, units, volume, distance
	Quantity      string // decimal como texto
	Stock         *int64 // existencia reportada por bodega; nil si no aplica
	Key           string // identificador único de la línea: "<id>-<epoch ms>"
	AddedAt       int64  // epoch ms de inserción; define el orden "insertion"
}

// QuantityValue devuelve la cantidad como decimal. Texto vacío o ilegible
// cuenta como cero.
func (li LineItem) QuantityValue() decimal.Decimal {
	d, err := decimal.NewFromString(li.Quantity)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ExceedsStock indica si la cantidad pedida supera la existencia en bodega.
// Es solo informativo: el carrito nunca rechaza una cantidad por stock.
func (li LineItem) ExceedsStock() bool {
	if li.Stock == nil {
		return false
	}
	return li.QuantityValue().GreaterThan(decimal.NewFromInt(*li.Stock))
}

// Label devuelve la representación de lista: "2x Harina (kg)".
func (li LineItem) Label() string {
	return fmt.Sprintf("%sx %s (%s)", li.QuantityValue().String(), li.Name, UnitAbbrev(li.UnitOfMeasure))
}
