package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rushdrop/cmd"
	httpin "rushdrop/internal/adapters/in/http"
	"rushdrop/internal/generated/servers"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs := getConfigs()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: configs.LogLevel}))
	slog.SetDefault(logger)

	app, err := cmd.NewCompositionRoot(configs, logger)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, app, configs, logger); err != nil {
		logger.Error("Application stopped with error", "error", err)
		os.Exit(1)
	}
}

func getConfigs() cmd.Config {
	// A missing .env is fine; the environment may carry everything.
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	config, err := cmd.ParseConfig(os.Getenv)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	return config
}

func run(ctx context.Context, app cmd.CompositionRoot, configs cmd.Config, logger *slog.Logger) error {
	hubCtx, stopHub := context.WithCancel(context.Background())
	defer stopHub()
	go app.Hub().Run(hubCtx)

	app.Scheduler().Start()

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		return err
	}

	e, err := newWebServer(app)
	if err != nil {
		jobManager.StopAll()
		return err
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort))
	}()

	select {
	case err = <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
	case <-ctx.Done():
		logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		err = e.Shutdown(shutdownCtx)
	}

	jobManager.StopAll()
	closed := app.CloseFlows()
	<-app.Scheduler().Stop().Done()
	stopHub()
	logger.Info("Application stopped", "closedFlows", closed)
	return err
}

func newWebServer(app cmd.CompositionRoot) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(log.INFO)

	doc, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}
	validator, err := httpin.NewRequestValidator(doc)
	if err != nil {
		return nil, err
	}
	e.Use(validator)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	if err = httpin.RegisterSwagger(e); err != nil {
		return nil, err
	}
	servers.RegisterHandlers(e, app.CreateServer())
	return e, nil
}
