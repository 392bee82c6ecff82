package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tponsmiquel/almacen/internal/application/dto"
	"github.com/tponsmiquel/almacen/internal/application/orders"
	"github.com/tponsmiquel/almacen/internal/application/usecase"
	"github.com/tponsmiquel/almacen/internal/domain"
)

// StatusAuthorized mensaje de estado al autorizar un pedido.
const StatusAuthorized = "Pedido autorizado"

// ExitHandler maneja las peticiones HTTP para Exit (protegido): CRUD de salidas
// sueltas, alta de pedidos múltiples y autorización de pedidos.
type ExitHandler struct {
	uc          *usecase.ExitUseCase
	submitBatch *orders.SubmitBatchUseCase
	authorize   *orders.AuthorizeOrderUseCase
}

// NewExitHandler construye el handler.
func NewExitHandler(
	uc *usecase.ExitUseCase,
	submitBatch *orders.SubmitBatchUseCase,
	authorize *orders.AuthorizeOrderUseCase,
) *ExitHandler {
	return &ExitHandler{uc: uc, submitBatch: submitBatch, authorize: authorize}
}

// Create godoc
// @Summary      Registrar salida individual
// @Tags         exits
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateExitRequest  true  "article, client, quantity, date"
// @Success      201   {object}  dto.ExitResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/exits [post]
func (h *ExitHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateExitRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "article, client, quantity positiva y date (YYYY-MM-DD) son requeridos"})
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "artículo o cliente no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// CreateMultiple godoc
// @Summary      Crear pedido múltiple y notificar para autorización
// @Description  Crea una salida sin autorizar por cada línea bien formada del pedido
// @Description  (las líneas sin artículo o sin cantidad se omiten) y envía el correo
// @Description  con el detalle y el histórico por año de los artículos pedidos.
// @Tags         exits
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBatchExitRequest  true  "client, date, articles"
// @Success      201   {object}  dto.BatchExitResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/exits/create_multiple [post]
func (h *ExitHandler) CreateMultiple(c *fiber.Ctx) error {
	var in dto.CreateBatchExitRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.submitBatch.Submit(c.UserContext(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "client, date (YYYY-MM-DD) y articles son requeridos"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "artículo o cliente no encontrado"})
		case errors.Is(err, domain.ErrDispatch):
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "DISPATCH_FAILED", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Authorize godoc
// @Summary      Autorizar pedido
// @Description  Autoriza todas las salidas que comparten cliente y fecha con la indicada.
// @Tags         exits
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de una salida del pedido"
// @Success      200  {object}  dto.AuthorizeExitResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/exits/{id}/authorize [get]
func (h *ExitHandler) Authorize(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	n, err := h.authorize.Authorize(c.UserContext(), id)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "salida no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.AuthorizeExitResponse{Status: StatusAuthorized, Authorized: n})
}

// GetByID godoc
// @Summary      Obtener salida por ID
// @Tags         exits
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la salida"
// @Success      200  {object}  dto.ExitResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/exits/{id} [get]
func (h *ExitHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "salida no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar salidas
// @Tags         exits
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {array}  dto.ExitResponse
// @Router       /api/exits [get]
func (h *ExitHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	out, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar salida
// @Description  La autorización es monótona: una salida autorizada no vuelve a pendiente.
// @Tags         exits
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la salida"
// @Param        body  body  dto.UpdateExitRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.ExitResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/exits/{id} [put]
func (h *ExitHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateExitRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "article, client, quantity positiva y date (YYYY-MM-DD) son requeridos"})
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "salida, artículo o cliente no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar salida
// @Tags         exits
// @Security     Bearer
// @Param        id  path  string  true  "ID de la salida"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/exits/{id} [delete]
func (h *ExitHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(id); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "salida no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
