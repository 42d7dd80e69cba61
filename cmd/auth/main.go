package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jhoicas/Backoffice-api/internal/application/auth"
	"github.com/jhoicas/Backoffice-api/internal/bootstrap"
	"github.com/jhoicas/Backoffice-api/internal/infrastructure/identity"
	"github.com/jhoicas/Backoffice-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Backoffice-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/Backoffice-api/internal/interfaces/http"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc, err := bootstrap.Start(ctx, bootstrap.Options{Name: "auth", DefaultPort: 8000, IssuesJWT: true})
	if err != nil {
		panic("arranque: " + err.Error())
	}
	defer svc.Close()
	cfg, log := svc.Cfg, svc.Log

	uploads, err := storage.NewLocalStorage(cfg.Uploads.Dir)
	if err != nil {
		log.Fatal().Err(err).Msg("directorio de uploads")
	}

	userRepo := postgres.NewUserRepository(svc.Pool)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	accountUC := auth.NewAccountUseCase(userRepo, uploads, log)

	// El servicio de auth valida sus propios tokens sin salir a la red.
	validator := identity.NewValidator(authUC)

	app := httpRouter.NewApp(svc.AppConfig(), log)
	httpRouter.StaticUploads(app, uploads.Dir())
	httpRouter.AuthRoutes(app, validator, httpRouter.NewAuthHandler(authUC), httpRouter.NewAccountHandler(accountUC))

	if err := httpRouter.Serve(ctx, app, cfg.HTTP.Addr(), log); err != nil {
		log.Error().Err(err).Msg("servidor HTTP")
	}
}
