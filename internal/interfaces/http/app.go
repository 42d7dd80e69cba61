package http

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/pkg/logger"
)

// LocalRequestID key de c.Locals con el id de petición.
const LocalRequestID = "requestid"

// AppConfig opciones comunes a todos los servicios.
type AppConfig struct {
	Name           string
	AllowedOrigins []string
	SwaggerFile    string // se monta en /docs solo si el archivo existe
	BodyLimit      int    // bytes; 0 = 8MB
}

// NewApp construye la app Fiber con el stack común (request id, log de peticiones, recover, CORS,
// /health) y el ErrorHandler que nunca filtra detalles internos.
func NewApp(cfg AppConfig, log *logger.Logger) *fiber.App {
	if log == nil {
		log = logger.Nop()
	}
	bodyLimit := cfg.BodyLimit
	if bodyLimit <= 0 {
		bodyLimit = 8 * 1024 * 1024
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    bodyLimit,
		ErrorHandler: errorHandler(log),
	})

	app.Use(requestid.New(requestid.Config{
		Generator:  uuid.NewString,
		ContextKey: LocalRequestID,
	}))
	// el log va por fuera de recover para registrar también los panics como 500
	app.Use(RequestLogger(log))
	app.Use(recover.New())
	if len(cfg.AllowedOrigins) > 0 {
		origins := strings.Join(cfg.AllowedOrigins, ",")
		app.Use(cors.New(cors.Config{
			AllowOrigins: origins,
			AllowHeaders: "Origin, Content-Type, Accept, Authorization",
			AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
			// fiber no admite credenciales con comodín
			AllowCredentials: !strings.Contains(origins, "*"),
		}))
	}

	if cfg.SwaggerFile != "" {
		if _, err := os.Stat(cfg.SwaggerFile); err == nil {
			// Swagger UI en local: http://localhost:<port>/docs
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: cfg.SwaggerFile,
				Path:     "docs",
				Title:    cfg.Name + " API",
			}))
		}
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(dto.HealthResponse{Status: "ok", Service: cfg.Name})
	})

	return app
}

// Serve escucha en addr hasta que ctx se cancela y luego apaga el servidor con un margen de 10s.
func Serve(ctx context.Context, app *fiber.App, addr string, log *logger.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return app.ShutdownWithContext(shutdownCtx)
}

// errorHandler recibe lo que los handlers no respondieron: errores de Fiber (ruta inexistente,
// body demasiado grande) con su status, y cualquier otro error o panic como 500 genérico.
func errorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: codeForStatus(fe.Code), Message: fe.Message})
		}
		log.Error().Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Str("request_id", RequestID(c)).
			Msg("error no controlado")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code:    "INTERNAL",
			Message: "An internal server error occurred.",
		})
	}
}

// RequestID devuelve el id asignado por el middleware requestid.
func RequestID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRequestID).(string)
	return s
}
