package cart

import "regexp"

// Regla canónica de cantidad: entero o hasta dos decimales. La variante de
// bodega que solo admitía enteros era deriva entre copias del mismo
// componente; aquí rige una sola regla.
var quantityPattern = regexp.MustCompile(`^\d*\.?\d{0,2}$`)

// ValidQuantity acepta texto vacío o un numeral con hasta dos decimales.
// Nunca acepta negativos: el patrón no admite signo.
func ValidQuantity(text string) bool {
	return text == "" || quantityPattern.MatchString(text)
}
