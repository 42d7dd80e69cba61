package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/domain"
)

// respondError traduce errores de dominio a 400/401/403/404 con {"code","message"}.
// Lo que no es de dominio se devuelve tal cual para que el ErrorHandler responda 500 y lo registre.
func respondError(c *fiber.Ctx, err error) error {
	var (
		status int
		code   string
		msg    string
	)
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		status, code, msg = fiber.StatusUnauthorized, "UNAUTHORIZED", "Not authenticated"
	case errors.Is(err, domain.ErrForbidden):
		status, code, msg = fiber.StatusForbidden, "FORBIDDEN", "Access denied"
	case domain.IsNotFound(err):
		status, code, msg = fiber.StatusNotFound, "NOT_FOUND", "Not found"
	case errors.Is(err, domain.ErrDuplicate):
		status, code, msg = fiber.StatusBadRequest, "DUPLICATE", "Already exists"
	case errors.Is(err, domain.ErrInvalidReference):
		status, code, msg = fiber.StatusBadRequest, "INVALID_REFERENCE", "Referenced resource does not exist"
	case errors.Is(err, domain.ErrInvalidInput):
		status, code, msg = fiber.StatusBadRequest, "VALIDATION", "Invalid input"
	default:
		return err
	}
	if status == fiber.StatusUnauthorized {
		c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: domain.Message(err, msg)})
}

// badBody respuesta para cuerpos que no se pueden decodificar.
func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "Invalid request body"})
}

func codeForStatus(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return "BAD_REQUEST"
	case fiber.StatusUnauthorized:
		return "UNAUTHORIZED"
	case fiber.StatusForbidden:
		return "FORBIDDEN"
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case fiber.StatusRequestEntityTooLarge:
		return "TOO_LARGE"
	}
	if status >= 500 {
		return "INTERNAL"
	}
	return "ERROR"
}
