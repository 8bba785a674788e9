package cart

import (
	"fmt"

	"github.com/jhoicas/pedidos-sync/internal/domain"
)

// PlaceholderStyle controla el texto guía del campo de cantidad durante la
// revisión de líneas.
type PlaceholderStyle int

const (
	// PlaceholderQuantity muestra solo la cantidad vigente.
	PlaceholderQuantity PlaceholderStyle = iota
	// PlaceholderQuantityStock muestra "pedido / stock" (pantalla de
	// checkout en bodega).
	PlaceholderQuantityStock
)

// EditSession es la máquina de estados de revisión secuencial: abrir línea →
// editar cantidad → confirmar → avanzar a la siguiente. Opera directamente
// sobre el Store y nunca habla con la red.
//
// Estados: Idle y Editing(targetKey, snapshotIndex, inputBuffer, placeholder).
// La sesión captura el orden del carrito al abrirse; avanzar más allá de la
// última línea regresa a la primera (la variante que deshabilitaba el avance
// en la última línea era deriva, no diseño).
//
// Se maneja desde la misma ruta cooperativa que el resto de acciones de
// usuario; no es segura para uso concurrente desde varias goroutines.
type EditSession struct {
	store *Store
	style PlaceholderStyle

	editing     bool
	keys        []string // snapshot ordenado de claves al abrir
	index       int      // posición dentro del snapshot
	targetKey   string
	buffer      string
	placeholder string // cantidad vigente de la línea objetivo (texto crudo)
}

// NewEditSession crea una sesión en estado Idle sobre el carrito dado.
func NewEditSession(store *Store, style PlaceholderStyle) *EditSession {
	return &EditSession{store: store, style: style}
}

// Editing indica si hay una línea bajo revisión.
func (es *EditSession) Editing() bool { return es.editing }

// Target devuelve la clave de la línea bajo revisión.
func (es *EditSession) Target() string { return es.targetKey }

// Buffer devuelve el texto pendiente de confirmar.
func (es *EditSession) Buffer() string { return es.buffer }

// Placeholder devuelve el texto guía para mostrar: la cantidad vigente o, en
// estilo checkout, la cantidad junto con la existencia en bodega.
func (es *EditSession) Placeholder() string {
	if es.style == PlaceholderQuantityStock {
		if li, ok := es.store.Get(es.targetKey); ok && li.Stock != nil {
			return fmt.Sprintf("%s / stock %d", es.placeholder, *li.Stock)
		}
	}
	return es.placeholder
}

// Open pasa de Idle a Editing sobre la línea con la clave dada: captura el
// snapshot ordenado del carrito en este instante, ubica la línea en él, fija
// el placeholder a su cantidad vigente y limpia el buffer.
func (es *EditSession) Open(key string, mode OrderMode) error {
	items := es.store.List(mode)
	for i, li := range items {
		if li.Key != key {
			continue
		}
		es.keys = make([]string, len(items))
		for j, it := range items {
			es.keys[j] = it.Key
		}
		es.editing = true
		es.index = i
		es.targetKey = key
		es.placeholder = li.Quantity
		es.buffer = ""
		return nil
	}
	return domain.ErrNotFound
}

// Input intenta reemplazar el buffer. La aceptación delega en la misma regla
// de cantidad del carrito; texto rechazado deja el buffer como estaba y no
// produce transición alguna.
func (es *EditSession) Input(text string) bool {
	if !es.editing || !ValidQuantity(text) {
		return false
	}
	es.buffer = text
	return true
}

// Commit escribe el buffer (o el placeholder si el buffer está vacío) en el
// carrito y deja el placeholder en el valor confirmado. Confirmar con buffer
// vacío es idempotente: reproduce la cantidad previa sin cambio observable.
func (es *EditSession) Commit() error {
	if !es.editing {
		return domain.ErrSessionClosed
	}
	value := es.buffer
	if value == "" {
		value = es.placeholder
	}
	if err := es.store.SetQuantity(es.targetKey, value); err != nil {
		return err
	}
	es.placeholder = value
	es.buffer = ""
	return nil
}

// Advance confirma la línea actual y pasa a la siguiente del snapshot, con
// vuelta al inicio tras la última. Líneas eliminadas desde que se abrió la
// sesión se saltan; si ya no queda ninguna, la sesión vuelve a Idle.
func (es *EditSession) Advance() error {
	if !es.editing {
		return domain.ErrSessionClosed
	}
	if err := es.Commit(); err != nil && err != domain.ErrNotFound {
		return err
	}
	for range es.keys {
		es.index = (es.index + 1) % len(es.keys)
		key := es.keys[es.index]
		li, ok := es.store.Get(key)
		if !ok {
			continue
		}
		es.targetKey = key
		es.placeholder = li.Quantity
		es.buffer = ""
		return nil
	}
	es.Close()
	return nil
}

// Close descarta el buffer y vuelve a Idle sin más escrituras.
func (es *EditSession) Close() {
	es.editing = false
	es.keys = nil
	es.index = 0
	es.targetKey = ""
	es.buffer = ""
	es.placeholder = ""
}
