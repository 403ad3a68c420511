package rest

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/campushub/api/internal/domain/entity"
	"github.com/campushub/api/internal/domain/service"
	"github.com/campushub/api/pkg/auth"
	"github.com/campushub/api/pkg/logger"
)

type Deps struct {
	Tokens *auth.TokenManager
	Logger *logger.Logger

	UserService         *service.UserService
	EventService        *service.EventService
	ResourceService     *service.ResourceService
	BookingService      *service.BookingService
	ClubService         *service.ClubService
	MessageService      *service.MessageService
	NotificationService *service.NotificationService
	AnalyticsService    *service.AnalyticsService
}

// NewRouter builds the full route table. Role requirements per route follow
// the authorization matrix: event creation is organizer/admin, status
// transitions, resources, clubs and analytics are admin, the rest any
// authenticated user.
func NewRouter(deps Deps) chi.Router {
	m := NewMiddleware(deps.Tokens, deps.Logger)

	authHandler := NewAuthHandler(deps.UserService)
	eventHandler := NewEventHandler(deps.EventService)
	resourceHandler := NewResourceHandler(deps.ResourceService)
	bookingHandler := NewBookingHandler(deps.BookingService)
	clubHandler := NewClubHandler(deps.ClubService)
	messageHandler := NewMessageHandler(deps.MessageService)
	notificationHandler := NewNotificationHandler(deps.NotificationService)
	analyticsHandler := NewAnalyticsHandler(deps.AnalyticsService)

	adminOnly := RequireRole(entity.RoleAdmin)

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(m.AccessLog)

	r.Get("/health", HealthCheck)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
		r.With(m.Authenticate).Get("/me", authHandler.Me)
	})

	r.Group(func(r chi.Router) {
		r.Use(m.Authenticate)

		r.Route("/events", func(r chi.Router) {
			r.With(RequireRole(entity.RoleOrganizer, entity.RoleAdmin)).Post("/", eventHandler.Create)
			r.Get("/", eventHandler.List)
			r.Get("/{id}", eventHandler.Get)
			r.Put("/{id}", eventHandler.Update)
			r.With(adminOnly).Patch("/{id}/status", eventHandler.UpdateStatus)
			r.Delete("/{id}", eventHandler.Delete)
		})

		r.Route("/resources", func(r chi.Router) {
			r.With(adminOnly).Post("/", resourceHandler.Create)
			r.Get("/", resourceHandler.List)
		})

		r.Route("/bookings", func(r chi.Router) {
			r.Post("/", bookingHandler.Create)
			r.Get("/", bookingHandler.List)
			r.With(adminOnly).Patch("/{id}/status", bookingHandler.UpdateStatus)
		})

		r.Route("/clubs", func(r chi.Router) {
			r.With(adminOnly).Post("/", clubHandler.Create)
			r.Get("/", clubHandler.List)
			r.Post("/{id}/join", clubHandler.Join)
		})

		r.Route("/messages", func(r chi.Router) {
			r.Post("/", messageHandler.Send)
			r.Get("/", messageHandler.List)
		})

		r.Route("/notifications", func(r chi.Router) {
			r.Get("/", notificationHandler.List)
			r.Patch("/{id}/read", notificationHandler.MarkRead)
		})

		r.Route("/analytics", func(r chi.Router) {
			r.Use(adminOnly)
			r.Get("/", analyticsHandler.Overview)
			r.Get("/export", analyticsHandler.Export)
		})
	})

	return r
}

// HealthCheck handles GET /health
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
