// Package port define los puertos hacia los colaboradores externos del motor
// de sincronización (DIP): el backend de registro y el almacén de estado
// persistido del dispositivo.
package port

import "github.com/jhoicas/pedidos-sync/internal/domain/entity"

// Claves del almacén de estado persistido del dispositivo.
const (
	KeyRequestID     = "requestId"
	KeyAreaID        = "selectedAreaId"
	KeyResponsibleID = "selectedResponsibleId"
)

// CatalogGateway carga el catálogo de productos una vez por sesión.
type CatalogGateway interface {
	// GetCatalog devuelve las categorías en orden de presentación y los
	// productos agrupados por id de categoría.
	GetCatalog() ([]entity.Category, map[string][]entity.CatalogEntry, error)
}

// CartGateway lee y sincroniza el carrito contra el backend de registro.
type CartGateway interface {
	// GetSaved devuelve las líneas guardadas para el ámbito dado (initial
	// request o checkout de bodega). scopeID es el requestId activo.
	GetSaved(scope, scopeID string) ([]entity.LineItem, error)
	// Sync envía el contenido completo y vigente del carrito. Última
	// escritura gana; el backend descarta lo anterior.
	Sync(scope string, items []entity.LineItem, requestID, areaID string) error
}

// RequestGateway gestiona el ciclo de vida del pedido y los datos de los
// selectores de área/responsable.
type RequestGateway interface {
	Areas() ([]entity.Area, error)
	Employees(areaID string) ([]entity.Employee, error)
	// AcquireRequest crea (o recupera) el pedido abierto para el par
	// responsable/área y devuelve su id.
	AcquireRequest(employeeID, areaID string) (string, error)
	Active() ([]entity.ActiveRequest, error)
	// Activate finaliza el pedido y lo envía a bodega.
	Activate(requestID string) error
	// MakeMovement registra la salida del pedido hacia el área.
	MakeMovement(requestID string) error
}

// SettingsStore es el almacén clave-valor de cadenas del dispositivo. Sin
// garantías transaccionales: última escritura gana. Get devuelve cadena vacía
// sin error cuando la clave no existe.
type SettingsStore interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Remove(key string) error
}
