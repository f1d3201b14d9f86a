package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// MentorSummary is the public view of a persona; prompt text is never exposed.
type MentorSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Title       string `json:"title"`
	Tagline     string `json:"tagline"`
	Description string `json:"description"`
}

// ListMentors returns the persona catalogue.
// GET /mentors
func (h *Handler) ListMentors(c echo.Context) error {
	personas := h.service.ListMentors()
	mentors := make([]MentorSummary, 0, len(personas))
	for _, p := range personas {
		mentors = append(mentors, MentorSummary{
			ID:          p.ID,
			Name:        p.Name,
			Title:       p.Title,
			Tagline:     p.Tagline,
			Description: p.Description,
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"mentors": mentors,
	})
}
