package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"storefront/internal/client"
	"storefront/internal/session"
)

// SessionLocalKey is the Fiber locals key holding the caller's *session.Session.
const SessionLocalKey = "session"

// Sessions resolves bearer tokens.
type Sessions interface {
	Get(ctx context.Context, token string) (*session.Session, error)
}

// BearerToken returns the token of an "Authorization: Bearer <token>" header.
func BearerToken(c *fiber.Ctx) string {
	h := c.Get(fiber.HeaderAuthorization)
	scheme, token, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// Authenticate rejects requests without a live session with 401. For the rest it
// stores the session in locals and the token in the user context, where the
// upstream client picks it up.
func Authenticate(sessions Sessions) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := BearerToken(c)
		s, err := sessions.Get(c.UserContext(), token)
		if err != nil {
			if errors.Is(err, session.ErrNoSession) {
				return fiber.NewError(fiber.StatusUnauthorized, "authentication required")
			}
			return err
		}
		c.Locals(SessionLocalKey, s)
		c.SetUserContext(client.WithToken(c.UserContext(), token))
		return c.Next()
	}
}

// SessionFrom returns the session stored by Authenticate, or nil.
func SessionFrom(c *fiber.Ctx) *session.Session {
	s, _ := c.Locals(SessionLocalKey).(*session.Session)
	return s
}
