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

	pkgdb "github.com/tuanle-dev/table-management/pkg/db"
	"github.com/tuanle-dev/table-management/pkg/httpx"
	"github.com/tuanle-dev/table-management/pkg/logging"
	loggingmw "github.com/tuanle-dev/table-management/pkg/middleware/logging"
	ttcfg "github.com/tuanle-dev/table-management/services/tabletype/internal/config"
	"github.com/tuanle-dev/table-management/services/tabletype/internal/httpserver"
	"github.com/tuanle-dev/table-management/services/tabletype/internal/models"
	"github.com/tuanle-dev/table-management/services/tabletype/internal/repo"
	"github.com/tuanle-dev/table-management/services/tabletype/internal/service"
)

func main() {
	if err := godotenv.Load("services/tabletype/.env"); err != nil {
		log.Printf("warning: could not load .env: %v", err)
	}

	cfg := ttcfg.Load()

	logger := logging.New(cfg.LogLevel).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := pkgdb.Open(ctx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatalf("db open: %v", err)
	}
	if err := db.AutoMigrate(&models.TableType{}); err != nil {
		log.Fatalf("db migrate: %v", err)
	}

	svc := &service.TableTypeService{Repo: &repo.GormRepo{DB: db}}

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = httpx.ErrorHandler(logger)
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(loggingmw.RequestLogger(logger))

	httpserver.Register(e, &httpserver.Deps{
		TableTypeHandler: &httpserver.TableTypeHTTP{Svc: svc},
	})

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.ServerPort),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
	}

	go func() {
		log.Printf("table-type listening on %s", srv.Addr)
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

	log.Println("table-type stopped")
}
