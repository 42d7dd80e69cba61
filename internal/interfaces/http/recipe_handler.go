package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/application/recipe"
)

// RecipeHandler recetas con sus líneas de ingredientes y materiales.
type RecipeHandler struct {
	uc    *recipe.UseCase
	sheet *recipe.SheetUseCase
}

// NewRecipeHandler construye el handler. sheet puede ser nil si no se expone el PDF.
func NewRecipeHandler(uc *recipe.UseCase, sheet *recipe.SheetUseCase) *RecipeHandler {
	return &RecipeHandler{uc: uc, sheet: sheet}
}

// List godoc
// @Summary      Listar recetas con sus líneas
// @Tags         recipes
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.RecipeResponse
// @Router       /recipes [get]
func (h *RecipeHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Obtener receta
// @Tags         recipes
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la receta"
// @Success      200  {object}  dto.RecipeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /recipes/{id} [get]
func (h *RecipeHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Get(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear receta con sus líneas (una transacción)
// @Tags         recipes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecipeRequest  true  "Receta"
// @Success      201   {object}  dto.RecipeCreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /recipes [post]
func (h *RecipeHandler) Create(c *fiber.Ctx) error {
	var in dto.RecipeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := validateStruct(in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Reemplazar receta y todas sus líneas (una transacción)
// @Tags         recipes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la receta"
// @Param        body  body  dto.RecipeRequest  true  "Receta completa"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /recipes/{id} [put]
func (h *RecipeHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.RecipeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := validateStruct(in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Borrar receta (líneas primero)
// @Tags         recipes
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la receta"
// @Success      200  {object}  dto.MessageResponse
// @Router       /recipes/{id} [delete]
func (h *RecipeHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Delete(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Sheet godoc
// @Summary      Ficha PDF de la receta
// @Tags         recipes
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  int  true  "ID de la receta"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /recipes/{id}/pdf [get]
func (h *RecipeHandler) Sheet(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	pdf, filename, err := h.sheet.Download(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdf)
}
