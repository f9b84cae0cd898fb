package server

import (
	"gothampost/internal/models"
	"gothampost/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetComments handles GET /api/comments
// @Summary List comments
// @Tags comments
// @Produce json
// @Param limit query int false "Max results (default 20, max 100)"
// @Param offset query int false "Results offset"
// @Success 200 {array} models.Comment
// @Router /comments [get]
func (s *Server) GetComments(c *fiber.Ctx) error {
	p := parsePagination(c)
	comments, err := s.commentService.ListComments(c.UserContext(), p.Limit, p.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(comments)
}

// GetComment handles GET /api/comments/:id
// @Summary Get a comment by ID
// @Tags comments
// @Produce json
// @Param id path int true "Comment ID"
// @Success 200 {object} models.Comment
// @Failure 404 {object} models.ErrorResponse
// @Router /comments/{id} [get]
func (s *Server) GetComment(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	comment, err := s.commentService.GetComment(c.UserContext(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(comment)
}

// GetPostComments handles GET /api/posts/:id/comments
// @Summary List comments on a post
// @Tags comments
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {array} models.Comment
// @Failure 404 {object} models.ErrorResponse
// @Router /posts/{id}/comments [get]
func (s *Server) GetPostComments(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	p := parsePagination(c)
	comments, err := s.commentService.ListCommentsByPost(c.UserContext(), postID, p.Limit, p.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(comments)
}

// CreateComment handles POST /api/posts/:id/comments
// @Summary Comment on a post
// @Description Add a comment owned by the caller. Requires the RegisteredUser or Admin role.
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Param request body object{content=string} true "Comment content"
// @Success 201 {object} models.Comment
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /posts/{id}/comments [post]
func (s *Server) CreateComment(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, err := s.commentService.CreateComment(c.UserContext(), service.CreateCommentInput{
		Caller:  s.caller(c),
		PostID:  postID,
		Content: req.Content,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}

// UpdateComment handles PUT /api/comments/:id
// @Summary Update a comment
// @Description Edit a comment's content. Owners may edit their own comments; admins any.
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Comment ID"
// @Param request body object{content=string} true "New content"
// @Success 200 {object} models.Comment
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /comments/{id} [put]
func (s *Server) UpdateComment(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, err := s.commentService.UpdateComment(c.UserContext(), service.UpdateCommentInput{
		Caller:    s.caller(c),
		CommentID: id,
		Content:   req.Content,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(comment)
}

// DeleteComment handles DELETE /api/comments/:id
// @Summary Delete a comment
// @Description Remove a comment. Owners may delete their own comments; admins any.
// @Tags comments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Comment ID"
// @Success 200 {object} object{message=string}
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /comments/{id} [delete]
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.commentService.DeleteComment(c.UserContext(), s.caller(c), id); err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Comment deleted",
	})
}
