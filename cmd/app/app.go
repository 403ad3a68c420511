package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/campushub/api/internal/adapters/config"
	"github.com/campushub/api/internal/adapters/controller/rest"
	"github.com/campushub/api/internal/adapters/database/memory"
	"github.com/campushub/api/internal/adapters/database/postgres"
	"github.com/campushub/api/internal/domain/service"
	"github.com/campushub/api/pkg/auth"
	"github.com/campushub/api/pkg/logger"
)

type App struct {
	Router chi.Router
	Logger *logger.Logger

	port int
}

// New wires storages, services and the router for the configured storage
// driver. The memory driver is the default; postgres is opt-in via config.
func New(cfg *config.Config) (*App, error) {
	appLogger, err := logger.Named("app")
	if err != nil {
		return nil, err
	}
	httpLogger, err := logger.Named("http")
	if err != nil {
		return nil, err
	}

	var (
		userStorage         service.UserStorage
		eventStorage        service.EventStorage
		resourceStorage     service.ResourceStorage
		bookingStorage      service.BookingStorage
		clubStorage         service.ClubStorage
		notificationStorage service.NotificationStorage
		messageStorage      service.MessageStorage
	)

	if cfg.StorageDriver == "postgres" {
		userStorage = postgres.NewUserStorage(cfg.Database)
		eventStorage = postgres.NewEventStorage(cfg.Database)
		resourceStorage = postgres.NewResourceStorage(cfg.Database)
		bookingStorage = postgres.NewBookingStorage(cfg.Database)
		clubStorage = postgres.NewClubStorage(cfg.Database)
		notificationStorage = postgres.NewNotificationStorage(cfg.Database)
		messageStorage = postgres.NewMessageStorage(cfg.Database)
		appLogger.Info("using postgres storage")
	} else {
		userStorage = memory.NewUserStorage()
		eventStorage = memory.NewEventStorage()
		resourceStorage = memory.NewResourceStorage()
		bookingStorage = memory.NewBookingStorage()
		clubStorage = memory.NewClubStorage()
		notificationStorage = memory.NewNotificationStorage()
		messageStorage = memory.NewMessageStorage()
		appLogger.Info("using in-memory storage")
	}

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL)

	notificationService := service.NewNotificationService(notificationStorage)
	userService := service.NewUserService(userStorage, tokens)
	eventService := service.NewEventService(eventStorage, notificationService)
	resourceService := service.NewResourceService(resourceStorage)
	bookingService := service.NewBookingService(bookingStorage, resourceStorage, notificationService)
	clubService := service.NewClubService(clubStorage, userStorage)
	messageService := service.NewMessageService(messageStorage, userStorage)
	analyticsService := service.NewAnalyticsService(eventStorage, resourceStorage, bookingStorage, clubStorage)

	router := rest.NewRouter(rest.Deps{
		Tokens:              tokens,
		Logger:              httpLogger,
		UserService:         userService,
		EventService:        eventService,
		ResourceService:     resourceService,
		BookingService:      bookingService,
		ClubService:         clubService,
		MessageService:      messageService,
		NotificationService: notificationService,
		AnalyticsService:    analyticsService,
	})

	return &App{
		Router: router,
		Logger: appLogger,
		port:   cfg.ServerPort,
	}, nil
}

// Start serves HTTP until SIGINT/SIGTERM, then drains for up to ten seconds.
func (a *App) Start() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", a.port),
		Handler:      a.Router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.Logger.Infof("server listening on :%d", a.port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-quit:
	}

	a.Logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	a.Logger.Info("server stopped")
	return nil
}
