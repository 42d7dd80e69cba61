// Package bootstrap arranque común de los servicios: configuración, logger, pool y schema.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Backoffice-api/internal/infrastructure/postgres"
	apphttp "github.com/jhoicas/Backoffice-api/internal/interfaces/http"
	"github.com/jhoicas/Backoffice-api/pkg/config"
	"github.com/jhoicas/Backoffice-api/pkg/logger"
)

// Service lo que cada main necesita después de arrancar.
type Service struct {
	Cfg  *config.Config
	Log  *logger.Logger
	Pool *pgxpool.Pool
}

// Options identifica al servicio.
type Options struct {
	Name        string
	DefaultPort int
	IssuesJWT   bool // solo el servicio de auth firma tokens
}

// Start carga config, crea el logger, abre el pool y aplica el schema si DB_APPLY_SCHEMA=true.
func Start(ctx context.Context, opts Options) (*Service, error) {
	cfg, err := config.Load(opts.Name, opts.DefaultPort)
	if err != nil {
		return nil, fmt.Errorf("cargar configuración: %w", err)
	}
	if err := cfg.Validate(opts.IssuesJWT); err != nil {
		return nil, err
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("addr", cfg.HTTP.Addr()).
		Msg("iniciando servicio")

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
	}
	if cfg.DB.ApplySchema {
		if err := postgres.ApplySchema(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		log.Info().Msg("schema aplicado")
	}
	return &Service{Cfg: cfg, Log: log, Pool: pool}, nil
}

// AppConfig opciones HTTP comunes derivadas de la configuración.
func (s *Service) AppConfig() apphttp.AppConfig {
	return apphttp.AppConfig{
		Name:           s.Cfg.App.Name,
		AllowedOrigins: s.Cfg.HTTP.AllowedOrigins,
		SwaggerFile:    s.Cfg.HTTP.SwaggerFile,
	}
}

// Close libera el pool.
func (s *Service) Close() {
	s.Pool.Close()
	s.Log.Info().Msg("servicio detenido")
}
