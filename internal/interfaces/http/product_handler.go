package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/application/usecase"
	"github.com/jhoicas/Backoffice-api/internal/domain"
)

// productImageField campo multipart con la imagen del producto.
const productImageField = "ProductImage"

// ProductHandler maneja las peticiones HTTP para Product (multipart).
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ProductResponse
// @Router       /products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        ProductName         formData  string  true   "Nombre"
// @Param        ProductTypeID       formData  int     true   "Tipo de producto"
// @Param        ProductCategory     formData  string  true   "Categoría"
// @Param        ProductDescription  formData  string  false  "Descripción"
// @Param        ProductPrice        formData  string  true   "Precio"
// @Param        ProductImage        formData  file    true   "Imagen"
// @Success      201  {object}  dto.ProductResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	in, err := productForm(c)
	if err != nil {
		return respondError(c, err)
	}
	image, closer, err := formUpload(c, productImageField)
	if err != nil {
		return err
	}
	defer closeQuietly(closer)

	out, err := h.uc.Create(c.UserContext(), in, image)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar producto
// @Tags         products
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        id                  path      int     true   "ID del producto"
// @Param        ProductName         formData  string  true   "Nombre"
// @Param        ProductTypeID       formData  int     true   "Tipo de producto"
// @Param        ProductCategory     formData  string  true   "Categoría"
// @Param        ProductDescription  formData  string  false  "Descripción"
// @Param        ProductPrice        formData  string  true   "Precio"
// @Param        ProductImage        formData  file    false  "Imagen nueva (si falta se conserva la actual)"
// @Success      200  {object}  dto.ProductResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	in, err := productForm(c)
	if err != nil {
		return respondError(c, err)
	}
	image, closer, err := formUpload(c, productImageField)
	if err != nil {
		return err
	}
	defer closeQuietly(closer)

	out, err := h.uc.Update(c.UserContext(), id, in, image)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Borrar producto
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.MessageResponse
// @Router       /products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
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

// productForm lee los campos del formulario; el precio se interpreta aparte como decimal.
func productForm(c *fiber.Ctx) (dto.ProductRequest, error) {
	var in dto.ProductRequest
	if err := c.BodyParser(&in); err != nil {
		return in, domain.Invalid("Invalid request body")
	}
	raw := strings.TrimSpace(c.FormValue("ProductPrice"))
	if raw == "" {
		return in, domain.Invalid("ProductPrice is required")
	}
	price, err := decimal.NewFromString(raw)
	if err != nil || price.IsNegative() {
		return in, domain.Invalid("ProductPrice must be a non-negative number")
	}
	in.ProductPrice = price
	if err := validateStruct(in); err != nil {
		return in, err
	}
	return in, nil
}

// ProductTypeHandler maneja ProductType (listar abierto a todos los roles, mutar solo admin).
type ProductTypeHandler struct {
	uc *usecase.ProductTypeUseCase
}

// NewProductTypeHandler construye el handler.
func NewProductTypeHandler(uc *usecase.ProductTypeUseCase) *ProductTypeHandler {
	return &ProductTypeHandler{uc: uc}
}

// List godoc
// @Summary      Listar tipos de producto
// @Tags         product type
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ProductTypeResponse
// @Router       /ProductType [get]
func (h *ProductTypeHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear tipo de producto
// @Tags         product type
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProductTypeRequest  true  "Nombre del tipo"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /ProductType/create [post]
func (h *ProductTypeHandler) Create(c *fiber.Ctx) error {
	var in dto.ProductTypeRequest
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
// @Summary      Renombrar tipo de producto
// @Tags         product type
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del tipo"
// @Param        body  body  dto.ProductTypeRequest  true  "Nombre nuevo"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /ProductType/{id} [put]
func (h *ProductTypeHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.ProductTypeRequest
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
// @Summary      Borrar tipo de producto
// @Tags         product type
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del tipo"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /ProductType/{id} [delete]
func (h *ProductTypeHandler) Delete(c *fiber.Ctx) error {
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
