package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Backoffice-api/internal/application/auth"
	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/domain"
)

// photoField campo multipart con la foto del empleado.
const photoField = "uploadImage"

// AccountHandler gestión de cuentas de empleado (solo admin).
type AccountHandler struct {
	uc *auth.AccountUseCase
}

// NewAccountHandler construye el handler.
func NewAccountHandler(uc *auth.AccountUseCase) *AccountHandler {
	return &AccountHandler{uc: uc}
}

// Create godoc
// @Summary      Crear cuenta de empleado
// @Tags         employee-accounts
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        fullName     formData  string  true   "Nombre completo"
// @Param        username     formData  string  true   "Usuario"
// @Param        password     formData  string  true   "Contraseña"
// @Param        email        formData  string  true   "Email"
// @Param        userRole     formData  string  true   "admin, manager o staff"
// @Param        phoneNumber  formData  string  false  "Teléfono"
// @Param        hireDate     formData  string  false  "YYYY-MM-DD"
// @Param        uploadImage  formData  file    false  "Foto"
// @Success      201  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /employee-accounts/create [post]
func (h *AccountHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAccountRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := validateStruct(in); err != nil {
		return respondError(c, err)
	}
	photo, closer, err := formUpload(c, photoField)
	if err != nil {
		return err
	}
	defer closeQuietly(closer)

	out, err := h.uc.Create(c.UserContext(), in, photo)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar cuentas activas
// @Tags         employee-accounts
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.AccountResponse
// @Router       /employee-accounts/list-employee-accounts [get]
func (h *AccountHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar cuenta (parcial)
// @Tags         employee-accounts
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        id           path      int     true   "ID del usuario"
// @Param        fullName     formData  string  false  "Nombre completo"
// @Param        password     formData  string  false  "Contraseña"
// @Param        email        formData  string  false  "Email"
// @Param        phoneNumber  formData  string  false  "Teléfono"
// @Param        hireDate     formData  string  false  "YYYY-MM-DD"
// @Param        uploadImage  formData  file    false  "Foto"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /employee-accounts/update/{id} [put]
func (h *AccountHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	hireDate, err := optionalFormDate(c, "hireDate")
	if err != nil {
		return respondError(c, domain.Invalid(err.Error()))
	}
	in := dto.UpdateAccountRequest{
		FullName:    optionalFormValue(c, "fullName"),
		Password:    optionalFormValue(c, "password"),
		Email:       optionalFormValue(c, "email"),
		PhoneNumber: optionalFormValue(c, "phoneNumber"),
		HireDate:    hireDate,
	}
	if err := validateStruct(in); err != nil {
		return respondError(c, err)
	}
	photo, closer, err := formUpload(c, photoField)
	if err != nil {
		return err
	}
	defer closeQuietly(closer)

	out, err := h.uc.Update(c.UserContext(), id, in, photo)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Disable godoc
// @Summary      Deshabilitar cuenta (soft delete)
// @Tags         employee-accounts
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del usuario"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /employee-accounts/delete/{id} [delete]
func (h *AccountHandler) Disable(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Disable(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
