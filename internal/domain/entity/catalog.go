package entity

// Category agrupa productos del catálogo. El orden de llegada del backend es
// el orden de presentación.
type Category struct {
	ID           string
	Denomination string
}

// CatalogEntry es un producto comprable del catálogo. Inmutable durante la
// sesión: lo posee en exclusiva el índice de catálogo.
type CatalogEntry struct {
	ID            string
	Name          string
	UnitOfMeasure string
	CategoryID    string
}

// unidades estándar mostradas junto al nombre del producto
var unitAbbrevs = map[string]string{
	"mass":     "kg",
	"units":    "u",
	"volume":   "mL",
	"distance": "cm",
}

// UnitAbbrev devuelve la abreviatura de la unidad de medida ("kg", "u", ...).
// Unidades desconocidas se devuelven tal cual.
func UnitAbbrev(unit string) string {
	if abbr, ok := unitAbbrevs[unit]; ok {
		return abbr
	}
	return unit
}
