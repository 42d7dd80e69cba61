package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jhoicas/Backoffice-api/internal/application/usecase"
	"github.com/jhoicas/Backoffice-api/internal/bootstrap"
	"github.com/jhoicas/Backoffice-api/internal/infrastructure/identity"
	"github.com/jhoicas/Backoffice-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Backoffice-api/internal/interfaces/http"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc, err := bootstrap.Start(ctx, bootstrap.Options{Name: "materials", DefaultPort: 8003})
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

	uc := usecase.NewMaterialUseCase(postgres.NewMaterialRepository(svc.Pool))

	app := httpRouter.NewApp(svc.AppConfig(), log)
	httpRouter.MaterialRoutes(app, validator, httpRouter.NewMaterialHandler(uc))

	if err := httpRouter.Serve(ctx, app, cfg.HTTP.Addr(), log); err != nil {
		log.Error().Err(err).Msg("servidor HTTP")
	}
}
