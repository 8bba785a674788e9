package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pedidos-sync/internal/application/dto"
	"github.com/jhoicas/pedidos-sync/internal/domain"
	"github.com/jhoicas/pedidos-sync/pkg/logger"
)

// RequestHandler maneja el ciclo de vida del pedido y los datos de los
// selectores.
type RequestHandler struct {
	state *State
	log   *logger.Logger
}

// NewRequestHandler construye el handler.
func NewRequestHandler(state *State, log *logger.Logger) *RequestHandler {
	return &RequestHandler{state: state, log: log}
}

// Areas lista los locales disponibles.
func (h *RequestHandler) Areas(c *fiber.Ctx) error {
	areas := h.state.Areas()
	out := make([]dto.AreaDTO, 0, len(areas))
	for _, a := range areas {
		out = append(out, dto.AreaDTO{ID: a.ID, Name: a.Name})
	}
	return c.JSON(out)
}

// Employees lista los responsables del área.
func (h *RequestHandler) Employees(c *fiber.Ctx) error {
	areaID := c.Params("areaId")
	if areaID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "areaId es requerido"})
	}
	employees := h.state.Employees(areaID)
	out := make([]dto.EmployeeDTO, 0, len(employees))
	for _, e := range employees {
		out = append(out, dto.EmployeeDTO{ID: e.ID, Username: e.Username})
	}
	return c.JSON(out)
}

// Acquire devuelve el pedido abierto para el par responsable/área, creándolo
// si hace falta.
func (h *RequestHandler) Acquire(c *fiber.Ctx) error {
	var in dto.AcquireRequestRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.EmployeeID == "" || in.AreaID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "employeeId y areaId son requeridos"})
	}
	id := h.state.Acquire(in.EmployeeID, in.AreaID)
	h.log.Info().Str("request_id", id).Str("area_id", in.AreaID).Msg("pedido adquirido")
	return c.JSON(dto.AcquireRequestResponse{ID: id})
}

// Active lista los pedidos activados pendientes en bodega.
func (h *RequestHandler) Active(c *fiber.Ctx) error {
	list := h.state.ActiveList()
	out := make([]dto.ActiveRequestDTO, 0, len(list))
	for _, r := range list {
		out = append(out, dto.FromActiveRequest(r))
	}
	return c.JSON(out)
}

// Activate finaliza el pedido y lo deja visible para bodega.
func (h *RequestHandler) Activate(c *fiber.Ctx) error {
	requestID := c.Params("requestId")
	if err := h.state.Activate(requestID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "pedido no encontrado"})
	}
	h.log.Info().Str("request_id", requestID).Msg("pedido activado")
	return c.JSON(dto.AckResponse{Status: "ok"})
}

// Move registra la salida del pedido hacia el área.
func (h *RequestHandler) Move(c *fiber.Ctx) error {
	requestID := c.Params("requestId")
	err := h.state.Move(requestID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "pedido no encontrado"})
	case errors.Is(err, domain.ErrActionFailed):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "el pedido no está en bodega"})
	case err != nil:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	h.log.Info().Str("request_id", requestID).Msg("salida registrada")
	return c.JSON(dto.AckResponse{Status: "ok"})
}
