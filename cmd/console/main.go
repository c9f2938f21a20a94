package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/pflag"

	"github.com/jhoicas/busfleet-console/internal/application/auth"
	"github.com/jhoicas/busfleet-console/internal/application/dto"
	"github.com/jhoicas/busfleet-console/internal/application/usecase"
	"github.com/jhoicas/busfleet-console/internal/domain/repository"
	"github.com/jhoicas/busfleet-console/internal/i18n"
	"github.com/jhoicas/busfleet-console/internal/infrastructure/fleetapi"
	"github.com/jhoicas/busfleet-console/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/busfleet-console/internal/infrastructure/pdf"
	"github.com/jhoicas/busfleet-console/internal/infrastructure/postgres"
	"github.com/jhoicas/busfleet-console/internal/infrastructure/redisstore"
	httpRouter "github.com/jhoicas/busfleet-console/internal/interfaces/http"
	"github.com/jhoicas/busfleet-console/internal/interfaces/http/views"
	"github.com/jhoicas/busfleet-console/pkg/config"
	"github.com/jhoicas/busfleet-console/pkg/logger"
)

func main() {
	fs := config.Flags(os.Args[0])
	if err := fs.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		panic("flags: " + err.Error())
	}
	cfg, err := config.LoadWithFlags(fs)
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("backend", cfg.Backend.BaseURL).
		Str("sessions", cfg.Session.Driver).
		Msg("iniciando consola")

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// Almacén de sesiones según SESSION_DRIVER.
	var sessions repository.SessionRepository
	switch cfg.Session.Driver {
	case config.SessionDriverRedis:
		rdb, err := redisstore.NewRedis(ctx, cfg.Session.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer rdb.Close()
		sessions = redisstore.NewSessionStore(rdb, cfg.Session.TTL)
	case config.SessionDriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		repo := postgres.NewSessionRepository(pool, cfg.Session.TTL)
		if err := repo.EnsureSchema(ctx); err != nil {
			log.Fatal().Err(err).Msg("esquema de sesiones")
		}
		sessions = repo
	default:
		sessions = memory.NewSessionStore(cfg.Session.TTL)
	}

	client := fleetapi.New(cfg.Backend, log)
	authClient := fleetapi.NewAuthClient(client)
	companyRepo := fleetapi.NewCompanyClient(client)
	userRepo := fleetapi.NewUserClient(client)
	vehicleRepo := fleetapi.NewVehicleClient(client)
	routeRepo := fleetapi.NewRouteClient(client)

	companyUC := usecase.NewCompanyUseCase(companyRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	vehicleUC := usecase.NewVehicleUseCase(vehicleRepo)
	routeUC := usecase.NewRouteUseCase(routeRepo, vehicleRepo)
	dashboardUC := usecase.NewDashboardUseCase(companyUC, userUC, vehicleUC, routeUC)

	// PDF: hoja de ruta con QR al detalle de la ruta
	routeSheetUC := usecase.NewRouteSheetUseCase(routeUC, companyRepo, vehicleRepo, infrapdf.NewRouteSheetGenerator(), cfg.App.PublicURL)

	authUC := auth.NewAuthUseCase(authClient, sessions, log)
	gate := auth.NewGate(authClient, sessions, cfg.Auth.VerifyInterval, log)
	go gate.Run(ctx)

	tr := i18n.New(cfg.App.DefaultLang)
	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		Views:        views.New(tr),
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))
	app.Use(httpRouter.Locale(tr))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Consola de flota",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(dto.HealthResponse{Status: "ok", Service: cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		Gate:        gate,
		DashboardUC: dashboardUC,
		CompanyUC:   companyUC,
		UserUC:      userUC,
		VehicleUC:   vehicleUC,
		RouteUC:     routeUC,
		RouteSheet:  routeSheetUC,
		Translator:  tr,
		Log:         log,
		Cookie: httpRouter.SessionCookie{
			Name:   cfg.Session.CookieName,
			TTL:    cfg.Session.TTL,
			Secure: cfg.App.Env == "production",
		},
		PollSeconds: int(cfg.Auth.VerifyInterval / time.Second),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("consola detenida")
}
