package server

import (
	"errors"
	"strings"
	"unicode"

	"gothampost/internal/authz"
	"gothampost/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper. Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// Pagination holds parsed limit/offset query parameters.
type Pagination struct {
	Limit  int
	Offset int
}

const (
	defaultPageLimit   = 20
	maxPaginationLimit = 100
)

// parsePagination extracts limit and offset query parameters.
func parsePagination(c *fiber.Ctx) Pagination {
	limit := c.QueryInt("limit", defaultPageLimit)
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPaginationLimit {
		limit = maxPaginationLimit
	}

	offset := c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}

	return Pagination{
		Limit:  limit,
		Offset: offset,
	}
}

// parseID extracts a route parameter by name as a positive uint.
// On failure it writes a 400 JSON response and returns errResponseWritten.
// Callers should check: if err != nil { return nil }
func (s *Server) parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid "+humanizeParam(param)))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// humanizeParam converts a route param name into a human-readable label.
// Examples: "id" -> "ID", "userId" -> "user ID", "commentId" -> "comment ID".
func humanizeParam(param string) string {
	if param == "id" {
		return "ID"
	}
	if strings.HasSuffix(param, "Id") {
		prefix := param[:len(param)-2]
		words := splitCamel(prefix)
		return strings.ToLower(strings.Join(words, " ")) + " ID"
	}
	return param
}

// splitCamel splits a camelCase string into words.
func splitCamel(s string) []string {
	var words []string
	start := 0
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) {
			words = append(words, s[start:i])
			start = i
		}
	}
	words = append(words, s[start:])
	return words
}

// caller builds the authorization identity from locals set by AuthRequired.
func (s *Server) caller(c *fiber.Ctx) authz.Caller {
	userID, _ := c.Locals("userID").(uint)
	role, _ := c.Locals("role").(string)
	return authz.Caller{
		UserID: userID,
		Role:   models.UserRole(role),
	}
}

// respondServiceError maps a service error onto its HTTP status and writes
// the standard error body.
func respondServiceError(c *fiber.Ctx, err error) error {
	return models.RespondWithError(c, models.StatusForError(err), err)
}
