package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/biztime-api/internal/application/dto"
	"github.com/tu-usuario/biztime-api/internal/application/usecase"
	"github.com/tu-usuario/biztime-api/pkg/validate"
)

// IndustryHandler maneja las peticiones HTTP para el recurso Industry.
type IndustryHandler struct {
	uc *usecase.IndustryUseCase
}

// NewIndustryHandler construye el handler inyectando el caso de uso.
func NewIndustryHandler(uc *usecase.IndustryUseCase) *IndustryHandler {
	return &IndustryHandler{uc: uc}
}

// List godoc
// @Summary      Listar industrias con los codes de empresa asociados
// @Tags         industries
// @Produce      json
// @Success      200  {object}  dto.IndustryListResponse
// @Router       /industries [get]
func (h *IndustryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear industria
// @Tags         industries
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateIndustryRequest  true  "code y name"
// @Success      201   {object}  dto.IndustryEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /industries [post]
func (h *IndustryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateIndustryRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if err := validate.Struct(in); err != nil {
		return badRequest(c, "VALIDATION", err.Error())
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Associate godoc
// @Summary      Asociar una empresa a una industria
// @Tags         industries
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AssociateIndustryRequest  true  "comp_code e industry_code"
// @Success      201   {object}  dto.IndustryCompanyEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse  "Alguna clave no existe"
// @Router       /industries/add-to-company [post]
func (h *IndustryHandler) Associate(c *fiber.Ctx) error {
	var in dto.AssociateIndustryRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if err := validate.Struct(in); err != nil {
		return badRequest(c, "VALIDATION", err.Error())
	}
	out, err := h.uc.Associate(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
