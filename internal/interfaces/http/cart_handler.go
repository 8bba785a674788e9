package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/jhoicas/pedidos-sync/internal/application/dto"
	"github.com/jhoicas/pedidos-sync/pkg/logger"
)

// CartHandler maneja las peticiones de carrito del terminal.
type CartHandler struct {
	state *State
	log   *logger.Logger
}

// NewCartHandler construye el handler.
func NewCartHandler(state *State, log *logger.Logger) *CartHandler {
	return &CartHandler{state: state, log: log}
}

// Saved devuelve las líneas guardadas para el ámbito y pedido dados. Un
// pedido desconocido devuelve lista vacía: el terminal lo trata como carrito
// nuevo, no como fallo.
func (h *CartHandler) Saved(c *fiber.Ctx) error {
	scope := c.Params("scope")
	scopeID := c.Params("scopeId")
	if scope == "" || scopeID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "scope y scopeId son requeridos"})
	}
	items, err := h.state.SavedCart(scope, scopeID)
	if err != nil {
		return c.JSON([]dto.LineItemDTO{})
	}
	return c.JSON(items)
}

// Sync reemplaza el carrito completo del pedido: última escritura gana, los
// estados intermedios nunca viajan por separado.
func (h *CartHandler) Sync(c *fiber.Ctx) error {
	// Los valores de c.Params apuntan a un búfer que fiber reutiliza entre
	// peticiones; hay que copiarlos antes de guardarlos en el estado.
	scope := utils.CopyString(c.Params("scope"))
	var in dto.SyncRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.RequestID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "requestId es requerido"})
	}
	if err := h.state.SaveCart(scope, in.RequestID, in.Items); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "pedido no encontrado"})
	}
	h.log.Debug().
		Str("scope", scope).
		Str("request_id", in.RequestID).
		Int("items", len(in.Items)).
		Msg("carrito recibido")
	return c.JSON(dto.AckResponse{Status: "ok"})
}
