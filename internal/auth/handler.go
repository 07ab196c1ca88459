package auth

import (
	"strings"

	"bakehouse-backend/internal/config"
	"bakehouse-backend/internal/models"
	"bakehouse-backend/internal/session"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type LoginRequest struct {
	Email    string          `json:"email"`
	Password string          `json:"password"`
	Role     models.UserRole `json:"role"`
}

// POST /api/auth/login
// Demo-grade gate: any non-empty email/password is accepted, no password
// verification exists. The point of login is to create the session context
// that carries the role and the in-memory ledgers.
func LoginHandler(cfg *config.Config, store *session.Store, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body LoginRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.Email = strings.TrimSpace(strings.ToLower(body.Email))

		if body.Email == "" || body.Password == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Please fill in all fields")
		}

		role := body.Role
		if role == "" {
			role = models.RoleGuest
		}

		sess := store.Create(body.Email, role)

		token, err := GenerateToken(cfg.JWTSecret, sess)
		if err != nil {
			store.Delete(sess.ID)
			return fiber.NewError(fiber.StatusInternalServerError, "Token could not be created")
		}

		log.Info("session created", zap.String("email", sess.Email), zap.String("role", string(sess.Role)))

		return c.JSON(fiber.Map{
			"token": token,
			"user": fiber.Map{
				"email": sess.Email,
				"role":  sess.Role,
			},
			"notification": models.SuccessNotification("Logged in successfully"),
			"redirect":     "/dashboard",
		})
	}
}

// POST /api/auth/logout
// Deletes the session; every ledger held by it is gone afterwards.
func LogoutHandler(store *session.Store, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := SessionFromCtx(c)
		if err != nil {
			return err
		}

		store.Delete(sess.ID)
		log.Info("session ended", zap.String("email", sess.Email))

		return c.JSON(fiber.Map{
			"notification": models.Notification{
				Title:       "Logged out",
				Description: "You have been logged out successfully",
				Variant:     models.VariantDefault,
			},
			"redirect": "/login",
		})
	}
}

// GET /api/auth/me
func MeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := SessionFromCtx(c)
		if err != nil {
			return err
		}

		return c.JSON(fiber.Map{
			"email":      sess.Email,
			"role":       sess.Role,
			"created_at": sess.CreatedAt,
			"expires_at": sess.ExpiresAt,
		})
	}
}
