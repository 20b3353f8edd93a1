package middleware

import (
	"strings"

	"koperasi-portal/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

const (
	localMemberID     = "member_id"
	localMemberNumber = "member_number"
	localMemberName   = "member_name"
)

func unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": fiber.Map{
			"message":    message,
			"code":       "UNAUTHORIZED",
			"httpStatus": fiber.StatusUnauthorized,
		},
	})
}

// MemberSession validates a Bearer token when one is sent and stores the member in context.
// Requests without a token pass through; procedures decide whether they need a session.
func MemberSession(signer *jwt.Signer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Next()
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return unauthorized(c, "Invalid authorization format. Use: Bearer <token>")
		}

		claims, err := signer.ValidateToken(parts[1])
		if err != nil {
			return unauthorized(c, "Invalid or expired token")
		}

		c.Locals(localMemberID, claims.MemberID)
		c.Locals(localMemberNumber, claims.MemberNumber)
		c.Locals(localMemberName, claims.Name)

		return c.Next()
	}
}

// SessionMemberID returns the member authenticated by MemberSession, if any
func SessionMemberID(c *fiber.Ctx) (int, bool) {
	id, ok := c.Locals(localMemberID).(int)
	return id, ok
}
