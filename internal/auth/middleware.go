package auth

import (
	"fmt"
	"strings"

	"bakehouse-backend/internal/config"
	"bakehouse-backend/internal/session"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const CtxSessionKey = "session"

// JWTMiddleware validates the bearer token and loads the live session it
// points at. A valid token whose session was logged out or swept is rejected.
func JWTMiddleware(cfg *config.Config, store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Authorization header missing")
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return fiber.NewError(fiber.StatusUnauthorized, "Authorization format must be 'Bearer <token>'")
		}

		tokenStr := parts[1]

		token, err := jwt.ParseWithClaims(tokenStr, &JWTCustomClaims{}, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid or expired token")
		}

		claims, ok := token.Claims.(*JWTCustomClaims)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Token could not be parsed")
		}

		sess := store.Get(claims.SessionID)
		if sess == nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Session has ended, please log in again")
		}

		c.Locals(CtxSessionKey, sess)

		return c.Next()
	}
}

// SessionFromCtx returns the session loaded by JWTMiddleware.
func SessionFromCtx(c *fiber.Ctx) (*session.Session, error) {
	sess, ok := c.Locals(CtxSessionKey).(*session.Session)
	if !ok || sess == nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Session not available")
	}
	return sess, nil
}
