package auth

import (
	"github.com/gofiber/fiber/v2"

	"pharmachain-backend/internal/config"
	"pharmachain-backend/internal/models"
)

type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignUpRequest struct {
	FullName        string `json:"fullName"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// POST /api/auth/login
func LoginHandler(cfg *config.Config, gateway Gateway) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CredentialsRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		identity, err := gateway.SignIn(c.Context(), body.Email, body.Password)
		if err != nil {
			// The provider's message goes back to the form unchanged.
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		token, err := GenerateToken(cfg.JWTSecret, identity)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "token could not be issued")
		}

		return c.JSON(fiber.Map{
			"token": token,
			"email": identity.Email,
			"roles": models.Roles,
		})
	}
}

// POST /api/auth/signup
func SignUpHandler(cfg *config.Config, gateway Gateway) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body SignUpRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		if body.ConfirmPassword != "" && body.Password != body.ConfirmPassword {
			return fiber.NewError(fiber.StatusBadRequest, "Passwords do not match")
		}

		identity, err := gateway.SignUp(c.Context(), body.Email, body.Password)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		token, err := GenerateToken(cfg.JWTSecret, identity)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "token could not be issued")
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"token": token,
			"email": identity.Email,
			"roles": models.Roles,
		})
	}
}

// POST /api/auth/logout
func LogoutHandler(gateway Gateway) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := gateway.SignOut(c.Context()); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(fiber.Map{"message": "signed out"})
	}
}

// GET /api/auth/me
func MeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, email := SessionUser(c)
		return c.JSON(fiber.Map{
			"user_id": userID,
			"email":   email,
		})
	}
}

// GET /api/roles — the role selection screen. Any authenticated session
// may pick any role; the token only routes to a dashboard.
func RolesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"roles": models.Roles})
	}
}
