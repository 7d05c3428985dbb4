// Package router wires HTTP routes to their handlers and middleware.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/event-management/internal/handler"
	"github.com/iliyamo/event-management/internal/middleware"
)

// Deps collects everything needed to register the API surface.
type Deps struct {
	JWTSecret  string
	AdminCheck middleware.AdminCheckFunc
	Cache      echo.MiddlewareFunc // response cache for public reads, optional

	Auth          *handler.AuthHandler
	Events        *handler.EventHandler
	Registrations *handler.RegistrationHandler
	Employees     *handler.EmployeeHandler
	Assignments   *handler.AssignmentHandler
	Feedback      *handler.FeedbackHandler
	Notifications *handler.NotificationHandler
}

// RegisterRoutes registers the whole API.  Paths are flat, matching
// what the SPA calls.  Three tiers: public, authenticated user, and
// admin (token plus an authoritative admins-table check).
func RegisterRoutes(e *echo.Echo, d Deps) {
	auth := middleware.JWTAuth(d.JWTSecret)
	admin := middleware.RequireAdmin(d.AdminCheck)

	e.GET("/healthz", handler.Health)

	// Public.  The event reads are cacheable; the cache middleware is
	// keyed by route and query only, so it must never wrap per-user
	// endpoints.
	cached := []echo.MiddlewareFunc{}
	if d.Cache != nil {
		cached = append(cached, d.Cache)
	}
	e.POST("/registerUser", d.Auth.RegisterUser)
	e.POST("/login", d.Auth.Login)
	e.GET("/events", d.Events.ListEvents, cached...)
	e.GET("/events/:id", d.Events.GetEvent, cached...)
	e.GET("/events/:id/feedback", d.Feedback.EventFeedback, cached...)

	// Authenticated users
	e.POST("/logout", d.Auth.Logout, auth)
	e.POST("/registerEvent", d.Registrations.RegisterEvent, auth)
	e.POST("/feedback", d.Feedback.SubmitFeedback, auth)
	e.GET("/users/:id/registrations", d.Registrations.UserRegistrations, auth)
	e.GET("/notifications", d.Notifications.ListNotifications, auth)
	e.PUT("/notifications/:id/read", d.Notifications.MarkNotificationRead, auth)

	// Admin only
	e.POST("/createEvent", d.Events.CreateEvent, auth, admin)
	e.GET("/events/:id/registrations", d.Registrations.EventRegistrations, auth, admin)
	e.POST("/assignEvent", d.Assignments.AssignEvent, auth, admin)

	emp := e.Group("/employees", auth, admin)
	emp.GET("", d.Employees.ListEmployees)
	emp.GET("/:id", d.Employees.GetEmployee)
	emp.POST("", d.Employees.CreateEmployee)
	emp.PUT("/:id", d.Employees.UpdateEmployee)
	emp.DELETE("/:id", d.Employees.DeleteEmployee)
}
