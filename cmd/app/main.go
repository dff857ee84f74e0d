package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/Stefan-Trajkovski/Saloon/internal/adapters/in/http"
	"github.com/Stefan-Trajkovski/Saloon/internal/adapters/out/cache"
	"github.com/Stefan-Trajkovski/Saloon/internal/adapters/out/googlecalendar"
	"github.com/Stefan-Trajkovski/Saloon/internal/adapters/out/logger"
	"github.com/Stefan-Trajkovski/Saloon/internal/adapters/out/rabbitmq"
	"github.com/Stefan-Trajkovski/Saloon/internal/config"
	"github.com/Stefan-Trajkovski/Saloon/internal/core/ports/out"
	"github.com/Stefan-Trajkovski/Saloon/internal/core/services"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	mainLogger, err := logger.NewConsoleLogger(cfg.App.Timezone)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	log := mainLogger.WithModule("Main")

	log.Info("app.starting", out.LogFields{
		"version":         cfg.App.Version,
		"env":             cfg.App.Env,
		"timezone":        cfg.App.Timezone,
		"calendarId":      cfg.Calendar.ID,
		"businessOpen":    cfg.Business.Open,
		"businessClose":   cfg.Business.Close,
		"slotDuration":    cfg.Business.SlotDuration.String(),
		"rabbitmqEnabled": cfg.RabbitMQ.Enabled,
		"cacheEnabled":    cfg.Cache.Enabled,
	})

	if cfg.IsNotLocal() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	calendarAdapter, err := googlecalendar.NewCalendarAdapter(ctx, cfg, log.WithModule("CalendarAdapter"))
	if err != nil {
		log.Error("app.calendar.init_failed", out.LogFields{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	var cacheAdapter out.CachePort
	if cfg.Cache.Enabled {
		adapter, err := cache.NewCacheAdapter(cfg, log.WithModule("CacheAdapter"))
		if err != nil {
			log.Error("app.cache.init_failed", out.LogFields{
				"error": err.Error(),
			})
			os.Exit(1)
		}
		cacheAdapter = adapter
	}

	var notifierAdapter out.NotifierPort
	if cfg.RabbitMQ.Enabled {
		notifier, err := rabbitmq.NewBookingNotifier(cfg, log.WithModule("BookingNotifier"))
		if err != nil {
			log.Error("app.rabbitmq.init_failed", out.LogFields{
				"error": err.Error(),
			})
			os.Exit(1)
		}
		notifierAdapter = notifier

		defer func() {
			if err := notifier.Stop(); err != nil {
				log.Error("app.rabbitmq.stop_failed", out.LogFields{
					"error": err.Error(),
				})
			}
		}()
	}

	bookingService := services.NewBookingService(
		cfg,
		calendarAdapter,
		notifierAdapter,
		cacheAdapter,
		log.WithModule("BookingService"),
	)

	router := gin.Default()
	controller := http.NewBookingController(bookingService, cfg)
	controller.RegisterRoutes(router)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info("app.http.starting", out.LogFields{
			"host": cfg.HTTP.Host,
			"port": cfg.HTTP.Port,
		})

		if err := router.Run(cfg.HTTP.Host + ":" + cfg.HTTP.Port); err != nil {
			log.Error("app.http.failed", out.LogFields{
				"error": err.Error(),
			})
			sigChan <- syscall.SIGTERM
		}
	}()

	sig := <-sigChan
	log.Info("app.shutdown.initiated", out.LogFields{
		"signal": sig.String(),
	})
}
