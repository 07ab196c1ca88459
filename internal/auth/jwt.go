package auth

import (
	"bakehouse-backend/internal/models"
	"bakehouse-backend/internal/session"

	"github.com/golang-jwt/jwt/v5"
)

type JWTCustomClaims struct {
	SessionID string          `json:"session_id"`
	Email     string          `json:"email"`
	Role      models.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken signs a token bound to one server-side session. The token is
// only a pointer: logout kills the session and the token with it.
func GenerateToken(secret string, s *session.Session) (string, error) {
	claims := &JWTCustomClaims{
		SessionID: s.ID,
		Email:     s.Email,
		Role:      s.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(s.ExpiresAt),
			IssuedAt:  jwt.NewNumericDate(s.CreatedAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
