package server

import (
	"gothampost/internal/models"
	"gothampost/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetUsers handles GET /api/users
// @Summary List users
// @Tags users
// @Produce json
// @Param limit query int false "Max results (default 20, max 100)"
// @Param offset query int false "Results offset"
// @Success 200 {array} models.User
// @Router /users [get]
func (s *Server) GetUsers(c *fiber.Ctx) error {
	p := parsePagination(c)
	users, err := s.userService.ListUsers(c.UserContext(), p.Limit, p.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(users)
}

// GetUser handles GET /api/users/:id
// @Summary Get a user by ID
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.User
// @Failure 404 {object} models.ErrorResponse
// @Router /users/{id} [get]
func (s *Server) GetUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.userService.GetUser(c.UserContext(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(user)
}

// GetUserPosts handles GET /api/users/:id/posts
// @Summary List a user's posts
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {array} models.Post
// @Failure 404 {object} models.ErrorResponse
// @Router /users/{id}/posts [get]
func (s *Server) GetUserPosts(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if _, err := s.userService.GetUser(c.UserContext(), id); err != nil {
		return respondServiceError(c, err)
	}

	p := parsePagination(c)
	posts, err := s.postService.ListPostsByUser(c.UserContext(), id, p.Limit, p.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(posts)
}

// GetMyProfile handles GET /api/users/me
// @Summary Get the authenticated user's profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.User
// @Failure 401 {object} models.ErrorResponse
// @Router /users/me [get]
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)
	user, err := s.userService.GetUser(c.UserContext(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(user)
}

// UpdateMyProfile handles PUT /api/users/me
// @Summary Update the authenticated user's profile
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body object{username=string,email=string,password=string} false "Fields to update"
// @Success 200 {object} models.User
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /users/me [put]
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)
	return s.updateUser(c, userID)
}

// UpdateUser handles PUT /api/users/:id
// @Summary Update a user's profile
// @Description Users may edit their own profile; admins may edit anyone's. Role is not editable here.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body object{username=string,email=string,password=string} false "Fields to update"
// @Success 200 {object} models.User
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /users/{id} [put]
func (s *Server) UpdateUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	return s.updateUser(c, id)
}

func (s *Server) updateUser(c *fiber.Ctx, id uint) error {
	var req struct {
		Username *string `json:"username"`
		Email    *string `json:"email"`
		Password *string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateUser(c.UserContext(), service.UpdateUserInput{
		Caller:   s.caller(c),
		UserID:   id,
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(user)
}

// ChangeUserRole handles PUT /api/users/:id/role
// @Summary Change a user's role
// @Description Assign a new role to a user. Admin only. Existing tokens keep their old role claim until expiry.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body object{role=string} true "New role (Admin, RegisteredUser, or Reader)"
// @Success 200 {object} models.User
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /users/{id}/role [put]
func (s *Server) ChangeUserRole(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Role string `json:"role"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.ChangeRole(c.UserContext(), service.ChangeRoleInput{
		Caller: s.caller(c),
		UserID: id,
		Role:   req.Role,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(user)
}

// DeleteUser handles DELETE /api/users/:id
// @Summary Delete a user
// @Description Remove an account and everything it owns. Admin only.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} object{message=string}
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /users/{id} [delete]
func (s *Server) DeleteUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.userService.DeleteUser(c.UserContext(), s.caller(c), id); err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "User deleted",
	})
}
