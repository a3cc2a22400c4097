package server

import (
	"time"

	"inkwell/internal/cache"
	"inkwell/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// Register creates a new user account
func (s *Server) Register(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req struct {
		Username  string `json:"username"`
		Email     string `json:"email"`
		Password  string `json:"password"`
		Password2 string `json:"password2"`
	}
	if err := c.BodyParser(&req); err != nil {
		return failBadBody(c)
	}

	user, err := s.authService.Register(ctx, service.RegisterInput{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		Password2: req.Password2,
	})
	if err != nil {
		return fail(c, err)
	}

	return ok(c, fiber.StatusCreated, fiber.Map{
		"message": "User created",
		"user":    user,
	})
}

// Login verifies credentials and issues a session token
func (s *Server) Login(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return failBadBody(c)
	}

	user, err := s.authService.Login(ctx, req.Username, req.Password)
	if err != nil {
		return fail(c, err)
	}

	token, err := s.generateToken(user)
	if err != nil {
		return fail(c, err)
	}

	return ok(c, fiber.StatusOK, fiber.Map{
		"message": "Login successful",
		"token":   token,
		"user":    user,
	})
}

// Logout revokes the presented token until its natural expiry
func (s *Server) Logout(c *fiber.Ctx) error {
	claims, _ := c.Locals("claims").(jwt.MapClaims)
	if claims != nil {
		jti, _ := claims["jti"].(string)
		if jti != "" {
			ttl := tokenLifetime
			if exp, expOk := claims["exp"].(float64); expOk {
				if remaining := time.Until(time.Unix(int64(exp), 0)); remaining > 0 {
					ttl = remaining
				}
			}
			// Best effort: without Redis the token simply ages out.
			_ = cache.RevokeToken(c.Context(), jti, ttl)
		}
	}

	return ok(c, fiber.StatusOK, fiber.Map{
		"message": "Logout successful",
	})
}

// Me returns the authenticated user's profile
func (s *Server) Me(c *fiber.Ctx) error {
	ctx := c.UserContext()
	principal := currentPrincipal(c)

	user, err := s.authService.Me(ctx, principal.ID)
	if err != nil {
		return fail(c, err)
	}

	return ok(c, fiber.StatusOK, fiber.Map{
		"user": user,
	})
}
