// Package v1 provides HTTP handlers for the mentors API.
package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/mark-torres10/personal-tribe-of-mentors/internal/service"
)

// ServiceName is reported by the root endpoint.
const ServiceName = "Tribe of Mentors API"

// Handler handles HTTP requests.
type Handler struct {
	service *service.Service
}

// NewHandler creates a new handler.
func NewHandler(service *service.Service) *Handler {
	return &Handler{
		service: service,
	}
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// RegisterRoutes registers routes with the echo server.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.Root)
	e.GET("/health", h.Health)

	e.GET("/mentors", h.ListMentors)
	e.POST("/chat", h.Chat)
}

// Root reports the service name and that it is running.
func (h *Handler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": ServiceName,
		"status":  "running",
	})
}

// Health returns health status.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "healthy",
	})
}
