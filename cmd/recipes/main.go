package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jhoicas/Backoffice-api/internal/application/recipe"
	"github.com/jhoicas/Backoffice-api/internal/bootstrap"
	"github.com/jhoicas/Backoffice-api/internal/infrastructure/identity"
	infrapdf "github.com/jhoicas/Backoffice-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Backoffice-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Backoffice-api/internal/interfaces/http"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc, err := bootstrap.Start(ctx, bootstrap.Options{Name: "recipes", DefaultPort: 8005})
	if err != nil {
		panic("arranque: " + err.Error())
	}
	defer svc.Close()
	cfg, log := svc.Cfg, svc.Log

	validator, closeCache, err := identity.NewRemoteValidator(ctx, cfg.Auth, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a Redis")
	}
	defer closeCache()

	recipeUC := recipe.NewUseCase(postgres.NewRecipeRepository(svc.Pool), postgres.NewTxRunner(svc.Pool))
	sheetUC := recipe.NewSheetUseCase(recipeUC, infrapdf.NewMarotoPDFGenerator())

	app := httpRouter.NewApp(svc.AppConfig(), log)
	httpRouter.RecipeRoutes(app, validator, httpRouter.NewRecipeHandler(recipeUC, sheetUC))

	if err := httpRouter.Serve(ctx, app, cfg.HTTP.Addr(), log); err != nil {
		log.Error().Err(err).Msg("servidor HTTP")
	}
}
