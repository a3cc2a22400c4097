package server

import (
	"inkwell/internal/authz"
	"inkwell/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// principalFor builds the authorization principal for a resolved user.
func principalFor(user *models.User) *authz.Principal {
	return &authz.Principal{
		ID:       user.ID,
		Username: user.Username,
		IsStaff:  user.IsStaff,
	}
}

// currentPrincipal returns the authenticated principal from locals, or nil
// for anonymous requests.
func currentPrincipal(c *fiber.Ctx) *authz.Principal {
	if p, ok := c.Locals("principal").(*authz.Principal); ok {
		return p
	}
	return nil
}

// newTokenID generates a unique JWT ID for revocation tracking.
func newTokenID() string {
	return uuid.NewString()
}
