package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetPostLikes handles GET /api/posts/:id/likes
// @Summary List likes on a post
// @Tags likes
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {array} models.Like
// @Failure 404 {object} models.ErrorResponse
// @Router /posts/{id}/likes [get]
func (s *Server) GetPostLikes(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	p := parsePagination(c)
	likes, err := s.likeService.ListLikesByPost(c.UserContext(), postID, p.Limit, p.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(likes)
}

// GetLikes handles GET /api/likes
// @Summary List likes
// @Tags likes
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {array} models.Like
// @Router /likes [get]
func (s *Server) GetLikes(c *fiber.Ctx) error {
	p := parsePagination(c)
	likes, err := s.likeService.ListLikes(c.UserContext(), p.Limit, p.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(likes)
}

// GetLike handles GET /api/likes/:id
// @Summary Get a like by ID
// @Tags likes
// @Produce json
// @Param id path int true "Like ID"
// @Success 200 {object} models.Like
// @Failure 404 {object} models.ErrorResponse
// @Router /likes/{id} [get]
func (s *Server) GetLike(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	like, err := s.likeService.GetLike(c.UserContext(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(like)
}

// LikePost handles POST /api/posts/:id/like
// @Summary Like a post
// @Description Record the caller's like. A user can like a post at most once.
// @Tags likes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Success 201 {object} models.Like
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /posts/{id}/like [post]
func (s *Server) LikePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	like, err := s.likeService.LikePost(c.UserContext(), s.caller(c), postID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(like)
}

// UnlikePost handles DELETE /api/posts/:id/like
// @Summary Remove the caller's like from a post
// @Tags likes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} models.ErrorResponse
// @Router /posts/{id}/like [delete]
func (s *Server) UnlikePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.likeService.UnlikePost(c.UserContext(), s.caller(c), postID); err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Like removed",
	})
}

// DeleteLike handles DELETE /api/likes/:id
// @Summary Delete a like by ID
// @Description Remove a like. Owners may remove their own likes; admins any.
// @Tags likes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Like ID"
// @Success 200 {object} object{message=string}
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /likes/{id} [delete]
func (s *Server) DeleteLike(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.likeService.DeleteLike(c.UserContext(), s.caller(c), id); err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Like removed",
	})
}
