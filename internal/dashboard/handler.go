package dashboard

import (
	"bakehouse-backend/internal/auth"

	"github.com/gofiber/fiber/v2"
)

type Card struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Path        string `json:"path"`
}

type DashboardResponse struct {
	Business string `json:"business"`
	Role     string `json:"role"`
	Cards    []Card `json:"cards"`
}

var cards = []Card{
	{
		Title:       "Deliver to Fair",
		Description: "Manage daily deliveries to fairs with profit calculation",
		Path:        "/fair-delivery",
	},
	{
		Title:       "Deliver to Shops",
		Description: "Track deliveries to various shops with detailed product lists",
		Path:        "/shop-delivery",
	},
	{
		Title:       "Reports",
		Description: "View daily and monthly reports with profit analysis",
		Path:        "/reports",
	},
}

// GET /api/dashboard
func DashboardHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := auth.SessionFromCtx(c)
		if err != nil {
			return err
		}

		return c.JSON(DashboardResponse{
			Business: "Kodikara Bake House",
			Role:     string(sess.Role),
			Cards:    cards,
		})
	}
}
