package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"aquadrop-backend/config"
	"aquadrop-backend/controllers"
	"aquadrop-backend/routes"
	"aquadrop-backend/services"
	"aquadrop-backend/storage"
	"aquadrop-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil && !errors.Is(err, config.ErrNoDotEnv) {
		log.Fatalf("config: %v", err)
	}
	logger := config.NewLogger(cfg)
	if err != nil {
		logger.Info("No .env file found")
	}
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gw, closeGateway, err := openGateway(ctx, cfg)
	if err != nil {
		logger.WithError(err).Fatal("storage unavailable")
	}
	defer closeGateway()

	loc, err := cfg.Location()
	if err != nil {
		logger.WithError(err).Fatal("invalid timezone")
	}
	store, err := services.OpenStore(ctx, gw,
		services.WithClock(utils.RealClock{Location: loc}),
		services.WithLogger(logger),
	)
	if err != nil {
		logger.WithError(err).Fatal("failed to open store")
	}

	var reminders *services.ReminderService
	if cfg.RemindersEnabled {
		notifier := services.NewTwilioNotifier(cfg.TwilioAccountSID, cfg.TwilioAuthToken,
			cfg.TwilioPhoneNumber, cfg.TwilioWhatsAppNumber)
		reminders = services.NewReminderService(store, notifier, logger)
		if err := reminders.StartScheduler(cfg.ReminderSchedule); err != nil {
			logger.WithError(err).Fatal("failed to start reminders")
		}
		defer reminders.StopScheduler()
	}

	h := controllers.NewHandler(store, reminders, cfg.LowStockThreshold, logger)
	r := routes.SetupRouter(h, cfg, logger)
	printRoutes(r)

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("server stopped")
		}
	}()
	logger.WithFields(logrus.Fields{"port": cfg.Port, "storage": cfg.StorageDriver}).Info("AquaDrop backend listening")

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("shutdown")
	}
}

// openGateway returns the configured persistence gateway and a cleanup func.
func openGateway(ctx context.Context, cfg *config.Config) (storage.Gateway, func(), error) {
	switch cfg.StorageDriver {
	case config.StorageRedis:
		rdb, err := config.ConnectRedis(ctx, cfg.RedisAddress)
		if err != nil {
			return nil, nil, err
		}
		return storage.NewRedisGateway(rdb, cfg.RedisKeyPrefix), func() { _ = rdb.Close() }, nil
	case config.StoragePostgres:
		db, err := config.ConnectDB(cfg.DBURL)
		if err != nil {
			return nil, nil, err
		}
		gw := storage.NewPostgresGateway(db)
		if err := gw.Migrate(); err != nil {
			return nil, nil, fmt.Errorf("migrate: %w", err)
		}
		closeDB := func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
		return gw, closeDB, nil
	default:
		return storage.NewMemoryGateway(), func() {}, nil
	}
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
