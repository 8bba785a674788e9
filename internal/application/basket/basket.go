// Package basket arma el trío carrito / planificador de sincronización /
// sesión de edición con el alcance de una pantalla de pedido, con teardown
// explícito. Sustituye al antiguo estado global de pantalla: cada pantalla
// construye su Basket y lo cierra al desmontarse.
package basket

import (
	"time"

	"github.com/jhoicas/pedidos-sync/internal/application/cart"
	"github.com/jhoicas/pedidos-sync/internal/application/catalog"
	"github.com/jhoicas/pedidos-sync/internal/application/syncer"
	"github.com/jhoicas/pedidos-sync/internal/domain/entity"
	"github.com/jhoicas/pedidos-sync/internal/domain/port"
	"github.com/jhoicas/pedidos-sync/pkg/logger"
)

// Ámbitos de carrito soportados.
const (
	ScopeRequest  = "request"  // pedido inicial desde el local
	ScopeCheckout = "checkout" // revisión en bodega (muestra stock)
)

// Config parámetros de la pantalla.
type Config struct {
	Scope       string
	QuietPeriod time.Duration
	RetryDelay  time.Duration
}

// Deps colaboradores externos del Basket.
type Deps struct {
	Catalog  port.CatalogGateway
	Cart     port.CartGateway
	Settings port.SettingsStore
	Log      *logger.Logger
}

// Basket posee el carrito de una sesión de pantalla y su sincronización.
type Basket struct {
	cfg  Config
	deps Deps

	store       *cart.Store
	sched       *syncer.Scheduler
	session     *cart.EditSession
	index       *catalog.Index
	unsubscribe func()
}

// New construye el trío y suscribe el planificador a las mutaciones del
// carrito. El payload de sincronización usa siempre el orden de inserción.
func New(cfg Config, deps Deps) *Basket {
	if cfg.Scope == "" {
		cfg.Scope = ScopeRequest
	}
	store := cart.NewStore()
	sched := syncer.New(syncer.Config{
		Scope:       cfg.Scope,
		QuietPeriod: cfg.QuietPeriod,
		RetryDelay:  cfg.RetryDelay,
	}, deps.Cart, deps.Settings, func() []entity.LineItem {
		return store.List(cart.OrderInsertion)
	}, deps.Log)

	style := cart.PlaceholderQuantity
	if cfg.Scope == ScopeCheckout {
		style = cart.PlaceholderQuantityStock
	}

	b := &Basket{
		cfg:     cfg,
		deps:    deps,
		store:   store,
		sched:   sched,
		session: cart.NewEditSession(store, style),
		index:   catalog.Empty(),
	}
	b.unsubscribe = store.Subscribe(sched.MarkDirty)
	return b
}

// Load carga el catálogo y las líneas guardadas del backend. Ambas cargas
// degradan a vacío ante fallo: la pantalla arranca con "nada disponible
// todavía" y no se reintenta sola.
func (b *Basket) Load() {
	ix, err := catalog.Load(b.deps.Catalog)
	if err != nil {
		b.deps.Log.Warn().Err(err).Msg("carga de catálogo fallida; se usa catálogo vacío")
	}
	b.index = ix

	scopeID, _ := b.deps.Settings.Get(port.KeyRequestID)
	saved, err := b.deps.Cart.GetSaved(b.cfg.Scope, scopeID)
	if err != nil {
		b.deps.Log.Warn().Err(err).
			Str("scope", b.cfg.Scope).
			Msg("carga de líneas guardadas fallida; carrito vacío")
		return
	}
	b.store.Load(saved)
}

// Add agrega (o incrementa) el producto del catálogo con el id dado.
func (b *Basket) Add(catalogID string) error {
	entry, err := b.index.Find(catalogID)
	if err != nil {
		return err
	}
	b.store.AddOrIncrement(entry)
	return nil
}

// Store da acceso al carrito.
func (b *Basket) Store() *cart.Store { return b.store }

// Scheduler da acceso al planificador (estado de sincronización).
func (b *Basket) Scheduler() *syncer.Scheduler { return b.sched }

// Session da acceso a la sesión de revisión de cantidades.
func (b *Basket) Session() *cart.EditSession { return b.session }

// Index da acceso al catálogo cargado.
func (b *Basket) Index() *catalog.Index { return b.index }

// Close desuscribe el planificador y cancela sus dos temporizadores. Ningún
// disparo pendiente alcanza una pantalla ya desmontada.
func (b *Basket) Close() {
	if b.unsubscribe != nil {
		b.unsubscribe()
		b.unsubscribe = nil
	}
	b.session.Close()
	b.sched.Close()
}
