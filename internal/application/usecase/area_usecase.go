package usecase

import (
	"github.com/jhoicas/pedidos-sync/internal/domain/entity"
	"github.com/jhoicas/pedidos-sync/internal/domain/port"
	"github.com/jhoicas/pedidos-sync/pkg/logger"
)

// AreaUseCase alimenta los selectores de local y responsable y persiste las
// selecciones en el dispositivo.
type AreaUseCase struct {
	gw       port.RequestGateway
	settings port.SettingsStore
	log      *logger.Logger
}

// NewAreaUseCase construye el caso de uso.
func NewAreaUseCase(gw port.RequestGateway, settings port.SettingsStore, log *logger.Logger) *AreaUseCase {
	return &AreaUseCase{gw: gw, settings: settings, log: log}
}

// Areas lista los locales disponibles. Degrada a vacío ante fallo.
func (uc *AreaUseCase) Areas() []entity.Area {
	areas, err := uc.gw.Areas()
	if err != nil {
		uc.log.Warn().Err(err).Msg("listado de áreas fallido")
		return []entity.Area{}
	}
	return areas
}

// Employees lista los responsables del área. Degrada a vacío ante fallo.
func (uc *AreaUseCase) Employees(areaID string) []entity.Employee {
	employees, err := uc.gw.Employees(areaID)
	if err != nil {
		uc.log.Warn().Err(err).Str("area_id", areaID).Msg("listado de responsables fallido")
		return []entity.Employee{}
	}
	return employees
}

// SelectArea persiste el área elegida y descarta el responsable anterior:
// cambiar de local obliga a volver a elegir responsable.
func (uc *AreaUseCase) SelectArea(areaID string) error {
	if err := uc.settings.Set(port.KeyAreaID, areaID); err != nil {
		return err
	}
	return uc.settings.Remove(port.KeyResponsibleID)
}

// SelectResponsible persiste el responsable y adquiere del backend el id del
// pedido abierto para el par responsable/área, dejándolo en el dispositivo
// como pedido activo.
func (uc *AreaUseCase) SelectResponsible(employeeID string) error {
	if err := uc.settings.Set(port.KeyResponsibleID, employeeID); err != nil {
		return err
	}
	areaID, _ := uc.settings.Get(port.KeyAreaID)
	requestID, err := uc.gw.AcquireRequest(employeeID, areaID)
	if err != nil {
		uc.log.Warn().Err(err).
			Str("employee_id", employeeID).
			Str("area_id", areaID).
			Msg("no se pudo adquirir el id de pedido")
		return err
	}
	return uc.settings.Set(port.KeyRequestID, requestID)
}
