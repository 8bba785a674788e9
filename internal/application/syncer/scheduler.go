// Package syncer empuja el contenido vigente del carrito al backend de
// registro tras un periodo de silencio, con reintento automático ante fallo.
// Coalesce ráfagas de ediciones en una sola llamada: semántica "última
// escritura gana, entregada eventualmente".
package syncer

import (
	"sync"
	"time"

	"github.com/jhoicas/pedidos-sync/internal/domain/entity"
	"github.com/jhoicas/pedidos-sync/internal/domain/port"
	"github.com/jhoicas/pedidos-sync/pkg/logger"
)

// Status es el estado de sincronización visible para la interfaz. Lo posee y
// muta únicamente el Scheduler.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusPending Status = "pending"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Snapshot entrega el contenido vigente del carrito en el momento de la
// llamada, no una copia tomada al programar el temporizador.
type Snapshot func() []entity.LineItem

// Config parámetros del planificador.
type Config struct {
	Scope       string        // request | checkout: selecciona endpoint y clave persistida
	QuietPeriod time.Duration // silencio tras la última mutación antes de sincronizar
	RetryDelay  time.Duration // espera fija entre reintentos tras un fallo
}

const (
	defaultQuietPeriod = 1200 * time.Millisecond
	defaultRetryDelay  = 5 * time.Second
)

// Scheduler observa el carrito (vía MarkDirty) y emite como mucho una llamada
// de sincronización en vuelo. Una señal dirty durante una llamada en vuelo no
// genera una segunda: se pliega en el siguiente intento al resolverse la
// actual. Ambos temporizadores (debounce y reintento) se cancelan en Close
// para que ningún disparo alcance una sesión ya desechada.
type Scheduler struct {
	cfg      Config
	gw       port.CartGateway
	settings port.SettingsStore
	snapshot Snapshot
	log      *logger.Logger

	mu       sync.Mutex
	status   Status
	onStatus func(Status)
	debounce *time.Timer
	retry    *time.Timer
	inFlight bool
	dirty    bool
	closed   bool
}

// New construye el planificador. Valores cero en QuietPeriod/RetryDelay
// toman los de referencia (1200 ms / 5 s).
func New(cfg Config, gw port.CartGateway, settings port.SettingsStore, snapshot Snapshot, log *logger.Logger) *Scheduler {
	if cfg.QuietPeriod <= 0 {
		cfg.QuietPeriod = defaultQuietPeriod
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = defaultRetryDelay
	}
	return &Scheduler{
		cfg:      cfg,
		gw:       gw,
		settings: settings,
		snapshot: snapshot,
		log:      log,
		status:   StatusIdle,
	}
}

// OnStatus registra el observador de cambios de estado (para el indicador de
// la interfaz). Se invoca fuera del candado interno.
func (s *Scheduler) OnStatus(fn func(Status)) {
	s.mu.Lock()
	s.onStatus = fn
	s.mu.Unlock()
}

// Status devuelve el estado actual.
func (s *Scheduler) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// MarkDirty señala que el carrito cambió. Reinicia (no acumula) el
// temporizador de silencio.
func (s *Scheduler) MarkDirty() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	if s.debounce != nil {
		s.debounce.Stop()
	}
	s.debounce = time.AfterFunc(s.cfg.QuietPeriod, s.fire)
}

// fire vence el periodo de silencio (o el de reintento). Si hay una llamada
// en vuelo solo deja la marca dirty; si no, pasa a pending y lanza el intento.
func (s *Scheduler) fire() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	if s.inFlight {
		s.dirty = true
		s.mu.Unlock()
		return
	}
	s.inFlight = true
	notify := s.setStatusLocked(StatusPending)
	s.mu.Unlock()
	notify()
	go s.attempt()
}

// attempt serializa el contenido vigente del carrito junto con el pedido y el
// área activos y emite una única llamada. La finalización solo lee estado; la
// mutación del carrito ocurre siempre en la ruta iniciada por el usuario.
func (s *Scheduler) attempt() {
	items := s.snapshot()
	requestID, _ := s.settings.Get(port.KeyRequestID)
	areaID, _ := s.settings.Get(port.KeyAreaID)

	err := s.gw.Sync(s.cfg.Scope, items, requestID, areaID)

	s.mu.Lock()
	s.inFlight = false
	if s.closed {
		s.mu.Unlock()
		return
	}
	if err != nil {
		s.log.Warn().Err(err).
			Str("scope", s.cfg.Scope).
			Str("request_id", requestID).
			Int("items", len(items)).
			Msg("sincronización fallida; se reintentará")
		notify := s.setStatusLocked(StatusError)
		if s.retry != nil {
			s.retry.Stop()
		}
		s.retry = time.AfterFunc(s.cfg.RetryDelay, s.fire)
		s.mu.Unlock()
		notify()
		return
	}
	s.log.Debug().
		Str("scope", s.cfg.Scope).
		Str("request_id", requestID).
		Int("items", len(items)).
		Msg("carrito sincronizado")
	notify := s.setStatusLocked(StatusSuccess)
	if s.dirty {
		// ediciones llegadas durante el vuelo: se pliegan en un nuevo ciclo
		s.dirty = false
		if s.debounce != nil {
			s.debounce.Stop()
		}
		s.debounce = time.AfterFunc(s.cfg.QuietPeriod, s.fire)
	}
	s.mu.Unlock()
	notify()
}

// setStatusLocked cambia el estado y devuelve la notificación a ejecutar
// fuera del candado.
func (s *Scheduler) setStatusLocked(st Status) func() {
	s.status = st
	fn := s.onStatus
	if fn == nil {
		return func() {}
	}
	return func() { fn(st) }
}

// Close cancela ambos temporizadores y descarta señales futuras. Tras Close
// no se emite ninguna llamada nueva; una llamada ya en vuelo se ignora al
// completarse.
func (s *Scheduler) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	if s.debounce != nil {
		s.debounce.Stop()
		s.debounce = nil
	}
	if s.retry != nil {
		s.retry.Stop()
		s.retry = nil
	}
}
