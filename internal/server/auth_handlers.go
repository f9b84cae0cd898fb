package server

import (
	"gothampost/internal/auth"
	"gothampost/internal/models"
	"gothampost/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Register handles POST /api/auth/register
// @Summary Register a new account
// @Description Create a new user account. New accounts always start with the Reader role.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body object{username=string,email=string,password=string} true "Registration request"
// @Success 201 {object} models.User
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /auth/register [post]
func (s *Server) Register(c *fiber.Ctx) error {
	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.authService.Register(c.UserContext(), service.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

// Login handles POST /api/auth/login
// @Summary User login
// @Description Authenticate with email and password and receive a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body object{email=string,password=string} true "Login credentials"
// @Success 200 {object} object{token=string,user=models.User}
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/login [post]
func (s *Server) Login(c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	result, err := s.authService.Login(c.UserContext(), service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"token": result.Token,
		"user":  result.User,
	})
}

// Logout handles POST /api/auth/logout
// @Summary Log out
// @Description Revoke the presented token so it can no longer be used
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{message=string}
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/logout [post]
func (s *Server) Logout(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)
	role, _ := c.Locals("role").(string)
	jti, _ := c.Locals("jti").(string)

	identity := auth.Identity{
		UserID: userID,
		Role:   models.UserRole(role),
		JTI:    jti,
	}
	if err := s.authService.Logout(c.UserContext(), identity); err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Logged out",
	})
}
