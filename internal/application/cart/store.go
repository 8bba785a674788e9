// Package cart implementa el carrito local del terminal: la colección
// ordenada de líneas que el usuario construye y la sesión de revisión de
// cantidades. Es la única fuente de verdad de lo que se sincroniza.
package cart

import (
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jhoicas/pedidos-sync/internal/domain"
	"github.com/jhoicas/pedidos-sync/internal/domain/entity"
)

// OrderMode selecciona el orden de presentación de las líneas.
type OrderMode string

const (
	OrderInsertion    OrderMode = "insertion"    // ascendente por momento de inserción
	OrderAlphabetical OrderMode = "alphabetical" // por nombre, sin distinguir mayúsculas
)

// Store mantiene las líneas del pedido en memoria. Todas las mutaciones son
// atómicas entre sí y notifican a los suscriptores (señal "dirty") fuera del
// candado. Exactamente una línea por id de producto.
type Store struct {
	mu      sync.Mutex
	byKey   map[string]*entity.LineItem
	keyByID map[string]string // id de producto -> key de línea
	lastSeq int64             // último epoch ms asignado; garantiza monotonía
	subs    map[int]func()
	nextSub int

	collator *collate.Collator
	now      func() time.Time
}

// NewStore crea un carrito vacío. El orden alfabético usa colación española
// ignorando mayúsculas/minúsculas.
func NewStore() *Store {
	return &Store{
		byKey:    make(map[string]*entity.LineItem),
		keyByID:  make(map[string]string),
		subs:     make(map[int]func()),
		collator: collate.New(language.Spanish, collate.IgnoreCase),
		now:      time.Now,
	}
}

// Subscribe registra un observador que se invoca tras cada mutación. Devuelve
// la función para darse de baja. Los observadores se llaman fuera del candado:
// pueden leer el carrito con seguridad.
func (s *Store) Subscribe(fn func()) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *Store) notifyLocked() []func() {
	fns := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	return fns
}

func runAll(fns []func()) {
	for _, fn := range fns {
		fn()
	}
}

// nextSeq devuelve un epoch ms estrictamente creciente aunque dos inserciones
// caigan en el mismo milisegundo.
func (s *Store) nextSeq() int64 {
	seq := s.now().UnixMilli()
	if seq <= s.lastSeq {
		seq = s.lastSeq + 1
	}
	s.lastSeq = seq
	return seq
}

// Load reemplaza la colección completa; se usa una sola vez al abrir la
// pantalla con lo guardado en el backend. Normaliza lo que llega: claves
// ausentes se derivan del id, y las líneas sin marca de inserción reciben la
// hora actual.
func (s *Store) Load(items []entity.LineItem) {
	s.mu.Lock()
	s.byKey = make(map[string]*entity.LineItem, len(items))
	s.keyByID = make(map[string]string, len(items))
	for _, it := range items {
		if it.ID == "" {
			continue
		}
		if _, dup := s.keyByID[it.ID]; dup {
			continue // una línea por producto
		}
		if it.AddedAt == 0 {
			it.AddedAt = s.nextSeq()
		} else if it.AddedAt > s.lastSeq {
			s.lastSeq = it.AddedAt
		}
		if it.Key == "" {
			it.Key = lineKey(it.ID, it.AddedAt)
		}
		li := it
		s.byKey[li.Key] = &li
		s.keyByID[li.ID] = li.Key
	}
	fns := s.notifyLocked()
	s.mu.Unlock()
	runAll(fns)
}

// AddOrIncrement agrega el producto al carrito con cantidad "1" o, si ya
// existe su línea, suma 1 a la cantidad vigente.
func (s *Store) AddOrIncrement(entry entity.CatalogEntry) {
	s.mu.Lock()
	if key, ok := s.keyByID[entry.ID]; ok {
		li := s.byKey[key]
		li.Quantity = li.QuantityValue().Add(decimal.NewFromInt(1)).String()
	} else {
		seq := s.nextSeq()
		li := &entity.LineItem{
			ID:            entry.ID,
			Name:          entry.Name,
			UnitOfMeasure: entry.UnitOfMeasure,
			Quantity:      "1",
			Key:           lineKey(entry.ID, seq),
			AddedAt:       seq,
		}
		s.byKey[li.Key] = li
		s.keyByID[li.ID] = li.Key
	}
	fns := s.notifyLocked()
	s.mu.Unlock()
	runAll(fns)
}

// SetQuantity sobreescribe la cantidad de la línea tal cual, si el texto pasa
// la regla de validación. Al rechazar no muta nada y devuelve
// domain.ErrInvalidQuantity; el texto pendiente del llamador queda intacto.
// No hay tope por stock: el exceso es solo advertencia visual.
func (s *Store) SetQuantity(key, text string) error {
	if !ValidQuantity(text) {
		return domain.ErrInvalidQuantity
	}
	s.mu.Lock()
	li, ok := s.byKey[key]
	if !ok {
		s.mu.Unlock()
		return domain.ErrNotFound
	}
	li.Quantity = text
	fns := s.notifyLocked()
	s.mu.Unlock()
	runAll(fns)
	return nil
}

// Remove elimina la línea. Idempotente: no es error que la clave no exista,
// y en ese caso no se notifica nada.
func (s *Store) Remove(key string) {
	s.mu.Lock()
	li, ok := s.byKey[key]
	if !ok {
		s.mu.Unlock()
		return
	}
	delete(s.byKey, key)
	delete(s.keyByID, li.ID)
	fns := s.notifyLocked()
	s.mu.Unlock()
	runAll(fns)
}

// Get devuelve una copia de la línea por clave.
func (s *Store) Get(key string) (entity.LineItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	li, ok := s.byKey[key]
	if !ok {
		return entity.LineItem{}, false
	}
	return *li, true
}

// Len devuelve el número de líneas.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.byKey)
}

// List produce las líneas en el orden pedido. La ordenación es pura: trabaja
// sobre copias y no altera el orden almacenado.
func (s *Store) List(mode OrderMode) []entity.LineItem {
	s.mu.Lock()
	out := make([]entity.LineItem, 0, len(s.byKey))
	for _, li := range s.byKey {
		out = append(out, *li)
	}
	s.mu.Unlock()

	switch mode {
	case OrderAlphabetical:
		sort.SliceStable(out, func(i, j int) bool {
			if c := s.collator.CompareString(out[i].Name, out[j].Name); c != 0 {
				return c < 0
			}
			return out[i].AddedAt < out[j].AddedAt
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].AddedAt < out[j].AddedAt
		})
	}
	return out
}

func lineKey(id string, epochMS int64) string {
	return id + "-" + strconv.FormatInt(epochMS, 10)
}
