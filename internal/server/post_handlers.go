package server

import (
	"gothampost/internal/models"
	"gothampost/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetPosts handles GET /api/posts
// @Summary List posts
// @Tags posts
// @Produce json
// @Param limit query int false "Max results (default 20, max 100)"
// @Param offset query int false "Results offset"
// @Success 200 {array} models.Post
// @Router /posts [get]
func (s *Server) GetPosts(c *fiber.Ctx) error {
	p := parsePagination(c)
	posts, err := s.postService.ListPosts(c.UserContext(), p.Limit, p.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(posts)
}

// GetPost handles GET /api/posts/:id
// @Summary Get a post by ID
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} models.Post
// @Failure 404 {object} models.ErrorResponse
// @Router /posts/{id} [get]
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postService.GetPost(c.UserContext(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(post)
}

// CreatePost handles POST /api/posts
// @Summary Create a post
// @Description Author a new post owned by the caller. Requires the RegisteredUser or Admin role.
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body object{title=string,content=string,category_id=int} true "Post content"
// @Success 201 {object} models.Post
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /posts [post]
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req struct {
		Title      string `json:"title"`
		Content    string `json:"content"`
		CategoryID *uint  `json:"category_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CreatePost(c.UserContext(), service.CreatePostInput{
		Caller:     s.caller(c),
		Title:      req.Title,
		Content:    req.Content,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// UpdatePost handles PUT /api/posts/:id
// @Summary Update a post
// @Description Edit a post's title, content, or category. Owners may edit their own posts; admins any.
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Param request body object{title=string,content=string,category_id=int} false "Fields to update"
// @Success 200 {object} models.Post
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /posts/{id} [put]
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Title      *string `json:"title"`
		Content    *string `json:"content"`
		CategoryID *uint   `json:"category_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.UpdatePost(c.UserContext(), service.UpdatePostInput{
		Caller:     s.caller(c),
		PostID:     id,
		Title:      req.Title,
		Content:    req.Content,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(post)
}

// DeletePost handles DELETE /api/posts/:id
// @Summary Delete a post
// @Description Remove a post and its comments and likes. Admin only.
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Success 200 {object} object{message=string}
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /posts/{id} [delete]
func (s *Server) DeletePost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.postService.DeletePost(c.UserContext(), s.caller(c), id); err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Post deleted",
	})
}
