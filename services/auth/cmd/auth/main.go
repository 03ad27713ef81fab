package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/tuanle-dev/table-management/pkg/authz"
	pkgdb "github.com/tuanle-dev/table-management/pkg/db"
	"github.com/tuanle-dev/table-management/pkg/httpx"
	"github.com/tuanle-dev/table-management/pkg/logging"
	loggingmw "github.com/tuanle-dev/table-management/pkg/middleware/logging"
	"github.com/tuanle-dev/table-management/pkg/permissions"
	"github.com/tuanle-dev/table-management/pkg/tokens"
	authcfg "github.com/tuanle-dev/table-management/services/auth/internal/config"
	"github.com/tuanle-dev/table-management/services/auth/internal/httpserver"
	"github.com/tuanle-dev/table-management/services/auth/internal/models"
	"github.com/tuanle-dev/table-management/services/auth/internal/repo"
	"github.com/tuanle-dev/table-management/services/auth/internal/service"
)

func main() {
	if err := godotenv.Load("services/auth/.env"); err != nil {
		log.Printf("warning: could not load .env: %v", err)
	}

	cfg := authcfg.Load()

	logger := logging.New(cfg.LogLevel).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := pkgdb.Open(ctx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatalf("db open: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.RefreshToken{}); err != nil {
		log.Fatalf("db migrate: %v", err)
	}

	codec := tokens.NewCodec(cfg.JWTSecret)
	rp := &repo.GormRepo{DB: db}
	svc := &service.AuthService{
		Repo:       rp,
		Codec:      codec,
		AccessTTL:  cfg.AccessTTL,
		RefreshTTL: cfg.RefreshTTL,

		PasswordMaxAge: cfg.PasswordMaxAge,
	}
	authorizer := &authz.Service{
		Codec:   codec,
		Users:   rp,
		Catalog: permissions.NewCatalog(),
	}

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = httpx.ErrorHandler(logger)
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(loggingmw.RequestLogger(logger))

	httpserver.Register(e, &httpserver.Deps{
		AuthHandler: &httpserver.AuthHTTP{Svc: svc, Authz: authorizer},
	})

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.ServerPort),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
	}

	go func() {
		log.Printf("auth listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	_ = srv.Shutdown(shutdownCtx)

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	log.Println("auth stopped")
}
