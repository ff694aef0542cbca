package main

import (
	"context"
	"errors"
	"fmt"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gin-gonic/gin"
	"github.com/suchimauz/dental-schedule-slots/internal/adapters/in/http"
	"github.com/suchimauz/dental-schedule-slots/internal/adapters/in/rabbitmq"
	"github.com/suchimauz/dental-schedule-slots/internal/adapters/out/cache"
	"github.com/suchimauz/dental-schedule-slots/internal/adapters/out/dentalapi"
	"github.com/suchimauz/dental-schedule-slots/internal/adapters/out/logger"
	"github.com/suchimauz/dental-schedule-slots/internal/config"
	"github.com/suchimauz/dental-schedule-slots/internal/core/ports/out"
	"github.com/suchimauz/dental-schedule-slots/internal/core/services/booking_service"
	"github.com/suchimauz/dental-schedule-slots/internal/core/services/directory_service"
	"github.com/suchimauz/dental-schedule-slots/internal/core/services/session_service"
	"github.com/suchimauz/dental-schedule-slots/internal/core/services/slot_generator_service"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Загрузка конфигурации
	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Локально цветной вывод в консоль, в остальных окружениях JSON через zap
	var mainLogger out.LoggerPort
	if cfg.IsLocal() {
		mainLogger = logger.NewConsoleLogger(cfg.Location())
	} else {
		zapLogger, err := logger.NewZapLogger(false)
		if err != nil {
			fmt.Printf("Failed to initialize logger: %v\n", err)
			os.Exit(1)
		}
		defer zapLogger.Sync()
		mainLogger = zapLogger
	}
	log := mainLogger.WithModule("Main")

	log.Info("app.starting", out.LogFields{
		"version":         cfg.App.Version,
		"env":             cfg.App.Env,
		"timezone":        cfg.App.Timezone,
		"rabbitmqEnabled": cfg.RabbitMQ.Enabled,
		"cacheEnabled":    cfg.Cache.Enabled,
	})

	// Настройка Gin в зависимости от окружения
	if cfg.IsNotLocal() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Инициализация адаптеров
	dentalAPIAdapter := dentalapi.NewDentalAPIAdapter(cfg, mainLogger)

	var cachePort out.CachePort
	cacheAdapter, err := cache.NewCacheAdapter(cfg, mainLogger)
	if err != nil {
		log.Error("app.cache.init_failed", out.LogFields{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	// Выключенный кэш должен остаться nil интерфейсом
	if cacheAdapter != nil {
		cachePort = cacheAdapter
	}

	sessionStore := cache.NewSessionStore(cfg, mainLogger)
	bookingFormStore := cache.NewBookingFormStore(cfg, mainLogger)

	// Инициализация сервисов
	slotGeneratorService := slot_generator_service.NewSlotGeneratorService(dentalAPIAdapter, cachePort, cfg, mainLogger)
	sessionService := session_service.NewSessionService(dentalAPIAdapter, sessionStore, cfg, mainLogger)
	bookingService := booking_service.NewBookingService(dentalAPIAdapter, bookingFormStore, slotGeneratorService, cfg, mainLogger)
	directoryService := directory_service.NewDirectoryService(dentalAPIAdapter, cachePort, slotGeneratorService, cfg, mainLogger)

	// Форма записи закрывается вместе с сессией
	sessionService.OnTeardown(bookingService.DiscardForm)

	// Настройка HTTP сервера
	router := http.NewRouter(cfg, mainLogger,
		http.NewAuthController(sessionService, cfg, mainLogger),
		http.NewAppointmentController(bookingService, sessionService, cfg, mainLogger),
		http.NewDirectoryController(directoryService, sessionService, cfg, mainLogger),
		http.NewSlotController(slotGeneratorService, sessionService, cfg, mainLogger),
	)
	server := &nethttp.Server{
		Addr:              cfg.HTTP.Host + ":" + cfg.HTTP.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Настройка RabbitMQ слушателя только если он включен
	listener, err := rabbitmq.NewCacheInvalidationListener(slotGeneratorService, cfg, mainLogger)
	if err != nil {
		log.Error("app.rabbitmq.init_failed", out.LogFields{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	if listener != nil {
		if err := listener.Start(ctx); err != nil {
			log.Error("app.rabbitmq.start_failed", out.LogFields{
				"error": err.Error(),
			})
			os.Exit(1)
		}

		defer func() {
			if err := listener.Stop(); err != nil {
				log.Error("app.rabbitmq.stop_failed", out.LogFields{
					"error": err.Error(),
				})
			}
		}()
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info("app.http.starting", out.LogFields{
			"host": cfg.HTTP.Host,
			"port": cfg.HTTP.Port,
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
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

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("app.http.shutdown_failed", out.LogFields{
			"error": err.Error(),
		})
	}

	// Дополнительное логирование для разработки
	if cfg.IsLocal() {
		log.Debug("app.config.debug", out.LogFields{
			"config": map[string]interface{}{
				"http": map[string]string{
					"host": cfg.HTTP.Host,
					"port": cfg.HTTP.Port,
				},
				"dentalApi": map[string]string{
					"url":     cfg.DentalAPI.URL,
					"timeout": cfg.DentalAPI.Timeout.String(),
				},
				"rabbitmq": map[string]interface{}{
					"enabled":  cfg.RabbitMQ.Enabled,
					"exchange": cfg.RabbitMQ.QueueConfig.Exchange,
				},
				"cache": map[string]interface{}{
					"enabled":           cfg.Cache.Enabled,
					"dentists_size":     cfg.Cache.DentistsSize,
					"appointments_size": cfg.Cache.AppointmentsSize,
				},
			},
		})
	}
}
