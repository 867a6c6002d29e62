package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"github.com/arturoeanton/go-movie-recommender/internal/port"
	"github.com/arturoeanton/go-movie-recommender/internal/service"
)

// HistoryHandler serves the search history.
type HistoryHandler struct {
	history *service.HistoryService
}

// NewHistoryHandler creates a new history handler.
func NewHistoryHandler(history *service.HistoryService) *HistoryHandler {
	return &HistoryHandler{history: history}
}

// Register sets up history routes.
func (h *HistoryHandler) Register(api fiber.Router) {
	api.Get("/history", h.Recent)
}

// Recent returns the most recent searches, newest first. ?limit defaults to
// 50 and must stay within 1..500.
func (h *HistoryHandler) Recent(c fiber.Ctx) error {
	limit := service.DefaultHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "limit must be an integer"})
		}
		limit = n
	}

	records, err := h.history.Recent(c.Context(), limit)
	if err != nil {
		if errors.Is(err, port.ErrInvalidHistoryLimit) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "could not retrieve search history: " + err.Error(),
		})
	}

	return c.JSON(fiber.Map{"history": records, "count": len(records)})
}
