package usecase

import (
	"fmt"

	"github.com/jhoicas/pedidos-sync/internal/domain"
	"github.com/jhoicas/pedidos-sync/internal/domain/entity"
	"github.com/jhoicas/pedidos-sync/internal/domain/port"
	"github.com/jhoicas/pedidos-sync/pkg/logger"
)

// RequestUseCase maneja el ciclo de vida del pedido activo: listado, selección
// para checkout y las acciones puntuales de activar y dar salida.
type RequestUseCase struct {
	gw       port.RequestGateway
	settings port.SettingsStore
	log      *logger.Logger
}

// NewRequestUseCase construye el caso de uso.
func NewRequestUseCase(gw port.RequestGateway, settings port.SettingsStore, log *logger.Logger) *RequestUseCase {
	return &RequestUseCase{gw: gw, settings: settings, log: log}
}

// Active lista los pedidos activos. Ante fallo de red degrada a lista vacía
// ("nada disponible todavía") y no reintenta.
func (uc *RequestUseCase) Active() []entity.ActiveRequest {
	list, err := uc.gw.Active()
	if err != nil {
		uc.log.Warn().Err(err).Msg("listado de pedidos activos fallido")
		return []entity.ActiveRequest{}
	}
	return list
}

// Select persiste el pedido y el área elegidos para la pantalla de checkout.
func (uc *RequestUseCase) Select(requestID, areaID string) error {
	if err := uc.settings.Set(port.KeyRequestID, requestID); err != nil {
		return err
	}
	return uc.settings.Set(port.KeyAreaID, areaID)
}

// Activate finaliza el pedido activo y lo envía a bodega. El fallo se reporta
// tal cual al usuario en el punto de acción; no hay reintento automático.
func (uc *RequestUseCase) Activate() error {
	requestID, _ := uc.settings.Get(port.KeyRequestID)
	if requestID == "" {
		return domain.ErrNoRequest
	}
	if err := uc.gw.Activate(requestID); err != nil {
		return fmt.Errorf("%w: activar pedido %s: %v", domain.ErrActionFailed, requestID, err)
	}
	uc.log.Info().Str("request_id", requestID).Msg("pedido enviado a bodega")
	return nil
}

// MakeMovement registra la salida del pedido activo hacia el área. Mismo
// tratamiento de error que Activate.
func (uc *RequestUseCase) MakeMovement() error {
	requestID, _ := uc.settings.Get(port.KeyRequestID)
	if requestID == "" {
		return domain.ErrNoRequest
	}
	if err := uc.gw.MakeMovement(requestID); err != nil {
		return fmt.Errorf("%w: dar salida al pedido %s: %v", domain.ErrActionFailed, requestID, err)
	}
	uc.log.Info().Str("request_id", requestID).Msg("salida del pedido registrada")
	return nil
}
