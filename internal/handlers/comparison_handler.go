package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"lumina/internal/services"
)

// ComparisonHandler handles HTTP requests for the side-by-side comparison
// list.
type ComparisonHandler struct {
	service *services.ComparisonService
}

// NewComparisonHandler creates a new ComparisonHandler.
func NewComparisonHandler(service *services.ComparisonService) *ComparisonHandler {
	return &ComparisonHandler{service: service}
}

// RegisterRoutes registers the comparison routes.
func (h *ComparisonHandler) RegisterRoutes(router fiber.Router) {
	comparisonRoutes := router.Group("/comparison")
	comparisonRoutes.Get("/", h.HandleGetComparison)
	comparisonRoutes.Post("/toggle", h.HandleToggle)
	comparisonRoutes.Delete("/", h.HandleClear)
}

// HandleGetComparison returns the comparison list and its resolved products.
func (h *ComparisonHandler) HandleGetComparison(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"productIds": h.service.List(),
		"products":   h.service.Products(),
	})
}

// ToggleRequest is the body for toggling a product in the comparison list.
type ToggleRequest struct {
	ProductID string `json:"productId"`
}

// HandleToggle adds or removes a product from the comparison list. A
// toggle-on when the list is full leaves it unchanged.
func (h *ComparisonHandler) HandleToggle(c *fiber.Ctx) error {
	var req ToggleRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing comparison toggle body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if req.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "productId is required",
		})
	}

	list, err := h.service.Toggle(req.ProductID)
	if err != nil {
		log.Printf("Error toggling %s in comparison: %v", req.ProductID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update comparison list",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"productIds": list,
	})
}

// HandleClear empties the comparison list.
func (h *ComparisonHandler) HandleClear(c *fiber.Ctx) error {
	if err := h.service.Clear(); err != nil {
		log.Printf("Error clearing comparison list: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not clear comparison list",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Comparison list cleared",
	})
}
