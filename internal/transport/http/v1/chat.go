package v1

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/mark-torres10/personal-tribe-of-mentors/internal/domain"
)

// Chat generates a reply from the requested mentor.
// POST /chat
func (h *Handler) Chat(c echo.Context) error {
	var req domain.ChatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "invalid request body"})
	}

	resp, err := h.service.Chat(c.Request().Context(), &req)
	if err != nil {
		var (
			roleErr  *domain.MessageRoleError
			upstream *domain.UpstreamError
		)
		switch {
		case errors.Is(err, domain.ErrInvalidMentor):
			return c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "Invalid mentor ID"})
		case errors.As(err, &roleErr):
			return c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "Invalid message role: " + roleErr.Reason})
		case errors.As(err, &upstream):
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: "Error calling LLM: " + upstream.Err.Error()})
		default:
			log.Printf("ERROR: chat request failed: %v", err)
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: err.Error()})
		}
	}

	return c.JSON(http.StatusOK, resp)
}
