package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/subguard-api/internal/application/dto"
	"github.com/jhoicas/subguard-api/internal/application/usecase"
	"github.com/jhoicas/subguard-api/internal/domain"
	"github.com/jhoicas/subguard-api/internal/domain/entity"
	"github.com/jhoicas/subguard-api/internal/domain/registry"
	"github.com/jhoicas/subguard-api/internal/domain/renewal"
)

// AssetHandler CRUD del registro, operaciones en lote y renovación rápida.
type AssetHandler struct {
	uc   *usecase.AssetUseCase
	seed func() []entity.Asset
}

// NewAssetHandler construye el handler. seed provee el registro de demostración
// que restaura POST /api/assets/reset.
func NewAssetHandler(uc *usecase.AssetUseCase, seed func() []entity.Asset) *AssetHandler {
	return &AssetHandler{uc: uc, seed: seed}
}

// parseListQuery lee view, search, status, department y sort de la query string.
func parseListQuery(c *fiber.Ctx) (registry.Query, error) {
	var q dto.AssetListQuery
	if err := c.QueryParser(&q); err != nil {
		return registry.Query{}, err
	}
	return registry.Query{
		View:       q.View,
		Search:     q.Search,
		Status:     q.Status,
		Department: q.Department,
		SortBy:     q.SortBy,
	}, nil
}

// List godoc
// @Summary      Listar activos de una vista
// @Tags         assets
// @Security     Bearer
// @Produce      json
// @Param        view        query  string  false  "overview, registry, licenses, hardware, finops, risk, calendar, vendors"
// @Param        search      query  string  false  "búsqueda en nombre, categoría, responsable y proveedor"
// @Param        status      query  string  false  "estado o All"
// @Param        department  query  string  false  "departamento o All"
// @Param        sort        query  string  false  "name, amount, date"
// @Success      200  {array}   entity.Asset
// @Router       /api/assets [get]
func (h *AssetHandler) List(c *fiber.Ctx) error {
	q, err := parseListQuery(c)
	if err != nil {
		return invalidBody(c)
	}
	list, err := h.uc.List(c.UserContext(), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// GetByID godoc
// @Summary      Obtener activo por ID
// @Tags         assets
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Asset ID"
// @Success      200  {object}  entity.Asset
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/assets/{id} [get]
func (h *AssetHandler) GetByID(c *fiber.Ctx) error {
	a, err := h.uc.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(a)
}

// Create godoc
// @Summary      Registrar activo
// @Tags         assets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AssetRequest  true  "activo"
// @Success      201   {object}  entity.Asset
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/assets [post]
func (h *AssetHandler) Create(c *fiber.Ctx) error {
	var in dto.AssetRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	a, err := h.uc.Create(c.UserContext(), GetActor(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(a)
}

// Update godoc
// @Summary      Editar activo (reemplazo completo)
// @Tags         assets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string            true  "Asset ID"
// @Param        body  body  dto.AssetRequest  true  "activo"
// @Success      200   {object}  entity.Asset
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/assets/{id} [put]
func (h *AssetHandler) Update(c *fiber.Ctx) error {
	var in dto.AssetRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	a, err := h.uc.Update(c.UserContext(), GetActor(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(a)
}

// Delete godoc
// @Summary      Dar de baja un activo
// @Tags         assets
// @Security     Bearer
// @Param        id   path  string  true  "Asset ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/assets/{id} [delete]
func (h *AssetHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), GetActor(c), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// BulkDelete godoc
// @Summary      Baja en lote
// @Tags         assets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.IDsRequest  true  "ids"
// @Success      200   {object}  dto.BulkResult
// @Router       /api/assets/bulk-delete [post]
func (h *AssetHandler) BulkDelete(c *fiber.Ctx) error {
	var in dto.IDsRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	n, err := h.uc.BulkDelete(c.UserContext(), GetActor(c), in.IDs)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.BulkResult{Affected: n})
}

// BulkStatus godoc
// @Summary      Cambio de estado en lote
// @Tags         assets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BulkStatusRequest  true  "ids y estado"
// @Success      200   {object}  dto.BulkResult
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/assets/bulk-status [post]
func (h *AssetHandler) BulkStatus(c *fiber.Ctx) error {
	var in dto.BulkStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	n, err := h.uc.BulkStatus(c.UserContext(), GetActor(c), in.IDs, in.Status)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.BulkResult{Affected: n})
}

// Renew godoc
// @Summary      Renovación rápida: adelanta la fecha un ciclo de facturación
// @Tags         assets
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Asset ID"
// @Success      200  {object}  dto.RenewResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/assets/{id}/renew [post]
func (h *AssetHandler) Renew(c *fiber.Ctx) error {
	a, err := h.uc.QuickRenew(c.UserContext(), GetActor(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.RenewResponse{Asset: *a, NextRenewal: a.NextRenewal})
}

// RenewalPreview godoc
// @Summary      Próxima fecha de renovación sin guardar cambios
// @Tags         assets
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Asset ID"
// @Success      200  {object}  map[string]string
// @Router       /api/assets/{id}/renewal-preview [get]
func (h *AssetHandler) RenewalPreview(c *fiber.Ctx) error {
	a, err := h.uc.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	next, err := renewal.Next(a.NextRenewal, a.BillingCycle)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"current": a.NextRenewal, "next": next})
}

// Reset godoc
// @Summary      Restaurar el registro de demostración
// @Tags         assets
// @Security     Bearer
// @Success      204
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/assets/reset [post]
func (h *AssetHandler) Reset(c *fiber.Ctx) error {
	if h.seed == nil {
		return writeError(c, domain.ErrUnsupported)
	}
	if err := h.uc.Replace(c.UserContext(), GetActor(c), h.seed()); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
