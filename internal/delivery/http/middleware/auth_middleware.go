package middleware

import (
	"errors"
	"slices"
	"strings"

	"github.com/Barshamagar123/skill-matcher/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

const (
	CtxUserIDKey = "user_id"
	CtxEmailKey  = "email"
	CtxRoleKey   = "role"
)

// Identity is the authenticated caller attached to the request.
type Identity struct {
	UserID uuid.UUID
	Email  string
	Role   string
}

type AuthMiddleware struct {
	jwt jwt.Service
}

func NewAuthMiddleware(jwtSvc jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{jwt: jwtSvc}
}

// Middleware rejects requests without a valid access token.
func (m *AuthMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		token, ok := BearerToken(c.Get(fiber.HeaderAuthorization))
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, "Access token required", nil, nil)
		}

		claims, err := m.jwt.ValidateAccessToken(token)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return NewAppError(fiber.StatusUnauthorized, "Token expired", nil, err)
			}
			return NewAppError(fiber.StatusUnauthorized, "Invalid token", nil, err)
		}

		setIdentity(c, claims)
		return c.Next()
	}
}

// Optional attaches the caller when a valid token is present and lets the
// request through otherwise.
func (m *AuthMiddleware) Optional() fiber.Handler {
	return func(c fiber.Ctx) error {
		token, ok := BearerToken(c.Get(fiber.HeaderAuthorization))
		if ok {
			if claims, err := m.jwt.ValidateAccessToken(token); err == nil {
				setIdentity(c, claims)
			}
		}
		return c.Next()
	}
}

// RequireRole must run after Middleware.
func RequireRole(roles ...string) fiber.Handler {
	return func(c fiber.Ctx) error {
		id, ok := CurrentIdentity(c)
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, "Authentication required", nil, nil)
		}
		if !slices.Contains(roles, id.Role) {
			return NewAppError(fiber.StatusForbidden, "Insufficient permissions", nil, nil)
		}
		return c.Next()
	}
}

func CurrentIdentity(c fiber.Ctx) (Identity, bool) {
	uid, ok := c.Locals(CtxUserIDKey).(uuid.UUID)
	if !ok || uid == uuid.Nil {
		return Identity{}, false
	}
	email, _ := c.Locals(CtxEmailKey).(string)
	role, _ := c.Locals(CtxRoleKey).(string)
	return Identity{UserID: uid, Email: email, Role: role}, true
}

func setIdentity(c fiber.Ctx, claims jwt.Claims) {
	c.Locals(CtxUserIDKey, claims.UserID)
	c.Locals(CtxEmailKey, claims.Email)
	c.Locals(CtxRoleKey, claims.Role)
}

func BearerToken(authHeader string) (string, bool) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return "", false
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}
	return token, true
}
