package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	gwcfg "github.com/tuanle-dev/table-management/gateway/internal/config"
	"github.com/tuanle-dev/table-management/gateway/internal/directory"
	"github.com/tuanle-dev/table-management/gateway/internal/httpserver"
	"github.com/tuanle-dev/table-management/gateway/internal/middleware"
	"github.com/tuanle-dev/table-management/pkg/authclient"
	"github.com/tuanle-dev/table-management/pkg/authz"
	pkgdb "github.com/tuanle-dev/table-management/pkg/db"
	"github.com/tuanle-dev/table-management/pkg/httpx"
	"github.com/tuanle-dev/table-management/pkg/logging"
	"github.com/tuanle-dev/table-management/pkg/permissions"
	"github.com/tuanle-dev/table-management/pkg/tokens"
)

func main() {
	if err := godotenv.Load("gateway/.env"); err != nil {
		log.Printf("warning: could not load .env: %v", err)
	}

	cfg := gwcfg.Load()

	logger := logging.New(cfg.LogLevel).With("service", "gateway")
	slog.SetDefault(logger)

	var decider authz.Decider
	if cfg.LocalAuthz() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		db, err := pkgdb.Open(ctx, cfg.DatabaseURL)
		cancel()
		if err != nil {
			log.Fatalf("db open: %v", err)
		}
		decider = &authz.Service{
			Codec:   tokens.NewCodec(cfg.JWTSecret),
			Users:   &directory.GormDirectory{DB: db},
			Catalog: permissions.NewCatalog(),
		}
		logger.Info("authorization mode", "mode", "local")
	} else {
		decider = authclient.NewClient(cfg.AuthURL)
		logger.Info("authorization mode", "mode", "remote", "authUrl", cfg.AuthURL)
	}

	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = 10 * time.Second
	e.Server.WriteTimeout = 15 * time.Second
	e.Server.ReadHeaderTimeout = 3 * time.Second
	e.HTTPErrorHandler = httpx.ErrorHandler(logger)
	for _, m := range middleware.Common(logger) {
		e.Use(m)
	}

	if err := httpserver.Register(e, &httpserver.Deps{
		AuthURL:      cfg.AuthURL,
		TableURL:     cfg.TableURL,
		TableTypeURL: cfg.TableTypeURL,
		Decider:      decider,
	}); err != nil {
		log.Fatal(err)
	}

	go func() {
		log.Printf("gateway listening on %s", cfg.ListenAddr)
		if err := e.Start(cfg.ListenAddr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("shutdown: %v", err)
	}
}
