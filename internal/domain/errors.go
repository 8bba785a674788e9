package domain

import "errors"

// Errores de dominio (sin dependencias externas).
//
// ErrInvalidQuantity se maneja localmente y nunca se refleja en el estado de
// sincronización. ErrNetwork envuelve cualquier fallo de transporte con el
// backend. ErrActionFailed marca acciones puntuales (activar, dar salida) que
// se reportan al usuario y no se reintentan.
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrInvalidQuantity = errors.New("cantidad inválida")
	ErrNetwork         = errors.New("error de comunicación con el backend")
	ErrActionFailed    = errors.New("la acción no pudo completarse")
	ErrNoRequest       = errors.New("no hay pedido activo seleccionado")
	ErrSessionClosed   = errors.New("la sesión ya fue cerrada")
)
