package server

import (
	"gothampost/internal/models"
	"gothampost/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetCategories handles GET /api/categories
// @Summary List categories
// @Tags categories
// @Produce json
// @Param limit query int false "Max results (default 20, max 100)"
// @Param offset query int false "Results offset"
// @Success 200 {array} models.Category
// @Router /categories [get]
func (s *Server) GetCategories(c *fiber.Ctx) error {
	p := parsePagination(c)
	categories, err := s.categoryService.ListCategories(c.UserContext(), p.Limit, p.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(categories)
}

// GetCategory handles GET /api/categories/:id
// @Summary Get a category by ID
// @Tags categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} models.Category
// @Failure 404 {object} models.ErrorResponse
// @Router /categories/{id} [get]
func (s *Server) GetCategory(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	category, err := s.categoryService.GetCategory(c.UserContext(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(category)
}

// GetCategoryPosts handles GET /api/categories/:id/posts
// @Summary List posts in a category
// @Tags categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {array} models.Post
// @Failure 404 {object} models.ErrorResponse
// @Router /categories/{id}/posts [get]
func (s *Server) GetCategoryPosts(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	p := parsePagination(c)
	posts, err := s.postService.ListPostsByCategory(c.UserContext(), id, p.Limit, p.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(posts)
}

// CreateCategory handles POST /api/categories
// @Summary Create a category
// @Description Admin only.
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body object{name=string,description=string} true "Category"
// @Success 201 {object} models.Category
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /categories [post]
func (s *Server) CreateCategory(c *fiber.Ctx) error {
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	category, err := s.categoryService.CreateCategory(c.UserContext(), service.CreateCategoryInput{
		Caller:      s.caller(c),
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

// UpdateCategory handles PUT /api/categories/:id
// @Summary Update a category
// @Description Admin only.
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Param request body object{name=string,description=string} false "Fields to update"
// @Success 200 {object} models.Category
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /categories/{id} [put]
func (s *Server) UpdateCategory(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	category, err := s.categoryService.UpdateCategory(c.UserContext(), service.UpdateCategoryInput{
		Caller:      s.caller(c),
		CategoryID:  id,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(category)
}

// DeleteCategory handles DELETE /api/categories/:id
// @Summary Delete a category
// @Description Remove a category and the posts filed under it. Admin only.
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Success 200 {object} object{message=string}
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /categories/{id} [delete]
func (s *Server) DeleteCategory(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.categoryService.DeleteCategory(c.UserContext(), s.caller(c), id); err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Category deleted",
	})
}
