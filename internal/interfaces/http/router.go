package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Backoffice-api/internal/application/ports"
)

// UploadsPath ruta pública de los archivos subidos.
const UploadsPath = "/uploads"

// AuthRoutes registra /auth y /employee-accounts. El servicio de auth valida sus propios tokens
// con el mismo contrato que usan los satélites.
func AuthRoutes(app *fiber.App, v ports.TokenValidator, authH *AuthHandler, accounts *AccountHandler) {
	authGroup := app.Group("/auth")
	authGroup.Post("/token", authH.Token)
	authGroup.Get("/users/me", authH.Me)

	acc := app.Group("/employee-accounts", RequireRoles(v, RolesAdmin...))
	acc.Post("/create", accounts.Create)
	acc.Get("/list-employee-accounts", accounts.List)
	acc.Put("/update/:id", accounts.Update)
	acc.Delete("/delete/:id", accounts.Disable)
}

// ProductRoutes registra /products y /ProductType.
func ProductRoutes(app *fiber.App, v ports.TokenValidator, products *ProductHandler, types *ProductTypeHandler) {
	p := app.Group("/products", RequireRoles(v, RolesStaff...))
	p.Get("/", products.List)
	p.Post("/", products.Create)
	p.Put("/:id", products.Update)
	p.Delete("/:id", products.Delete)

	pt := app.Group("/ProductType")
	pt.Get("/", RequireRoles(v, RolesStaff...), types.List)
	pt.Post("/create", RequireRoles(v, RolesAdmin...), types.Create)
	pt.Put("/:id", RequireRoles(v, RolesAdmin...), types.Update)
	pt.Delete("/:id", RequireRoles(v, RolesAdmin...), types.Delete)
}

// IngredientRoutes registra /ingredients.
func IngredientRoutes(app *fiber.App, v ports.TokenValidator, h *IngredientHandler) {
	g := app.Group("/ingredients", RequireRoles(v, RolesStaff...))
	g.Get("/", h.List)
	g.Post("/", h.Create)
	g.Put("/:id", h.Update)
	g.Delete("/:id", h.Delete)
}

// MaterialRoutes registra /materials.
func MaterialRoutes(app *fiber.App, v ports.TokenValidator, h *MaterialHandler) {
	g := app.Group("/materials", RequireRoles(v, RolesStaff...))
	g.Get("/", h.List)
	g.Post("/", h.Create)
	g.Put("/:id", h.Update)
	g.Delete("/:id", h.Delete)
}

// MerchandiseRoutes registra /merchandise.
func MerchandiseRoutes(app *fiber.App, v ports.TokenValidator, h *MerchandiseHandler) {
	g := app.Group("/merchandise", RequireRoles(v, RolesStaff...))
	g.Get("/", h.List)
	g.Post("/", h.Create)
	g.Put("/:id", h.Update)
	g.Delete("/:id", h.Delete)
}

// RecipeRoutes registra /recipes. La ficha PDF solo se expone si el handler tiene generador.
func RecipeRoutes(app *fiber.App, v ports.TokenValidator, h *RecipeHandler) {
	g := app.Group("/recipes", RequireRoles(v, RolesStaff...))
	g.Get("/", h.List)
	g.Get("/:id", h.Get)
	g.Post("/", h.Create)
	g.Put("/:id", h.Update)
	g.Delete("/:id", h.Delete)
	if h.sheet != nil {
		g.Get("/:id/pdf", h.Sheet)
	}
}

// StaticUploads sirve dir bajo /uploads sin listado de directorio.
func StaticUploads(app *fiber.App, dir string) {
	app.Static(UploadsPath, dir, fiber.Static{Browse: false})
}
