package http

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Backoffice-api/internal/domain"
)

// validate instancia única; validator cachea la metadata de cada struct.
var validate = validator.New(validator.WithRequiredStructEnabled())

// validateStruct devuelve un domain.Invalid con el primer campo que falla.
func validateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return domain.Invalid(fmt.Sprintf("%s: failed '%s' validation", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("validación: %w", err)
}

// paramID lee :id como entero positivo.
func paramID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.Invalid("id must be a positive integer")
	}
	return id, nil
}

