// Package authz centralizes the role/ownership authorization policy.
//
// Every write path in the API funnels through Allows so the role rules live in
// exactly one table instead of being duplicated across handlers.
package authz

import (
	"gothampost/internal/models"
	"gothampost/internal/observability"
)

// Action identifies an operation governed by the authorization policy.
type Action int

const (
	// ActionCreatePost covers authoring a new post.
	ActionCreatePost Action = iota
	// ActionCreateComment covers commenting on a post.
	ActionCreateComment
	// ActionCreateLike covers liking a post.
	ActionCreateLike
	// ActionUpdatePost covers editing a post's mutable fields.
	ActionUpdatePost
	// ActionUpdateComment covers editing a comment.
	ActionUpdateComment
	// ActionUpdateUser covers editing a user profile.
	ActionUpdateUser
	// ActionChangeUserRole covers changing another user's role.
	ActionChangeUserRole
	// ActionDeletePost covers removing a post and its dependents.
	ActionDeletePost
	// ActionDeleteComment covers removing a comment.
	ActionDeleteComment
	// ActionDeleteLike covers removing a like.
	ActionDeleteLike
	// ActionDeleteUser covers removing a user account.
	ActionDeleteUser
	// ActionManageCategory covers creating, updating, and deleting categories.
	ActionManageCategory
)

// String returns the action name used in logs and metrics labels.
func (a Action) String() string {
	switch a {
	case ActionCreatePost:
		return "create_post"
	case ActionCreateComment:
		return "create_comment"
	case ActionCreateLike:
		return "create_like"
	case ActionUpdatePost:
		return "update_post"
	case ActionUpdateComment:
		return "update_comment"
	case ActionUpdateUser:
		return "update_user"
	case ActionChangeUserRole:
		return "change_user_role"
	case ActionDeletePost:
		return "delete_post"
	case ActionDeleteComment:
		return "delete_comment"
	case ActionDeleteLike:
		return "delete_like"
	case ActionDeleteUser:
		return "delete_user"
	case ActionManageCategory:
		return "manage_category"
	default:
		return "unknown"
	}
}

// Caller is the authenticated identity a request acts as. Both fields come
// from the validated token, never from the request body.
type Caller struct {
	UserID uint
	Role   models.UserRole
}

// Owns reports whether the caller owns a resource with the given owner id.
func (c Caller) Owns(ownerID uint) bool {
	return c.UserID != 0 && c.UserID == ownerID
}

// Allows decides whether a role may perform an action, given whether the
// caller owns the target resource. The policy is fail-closed: anything not
// explicitly granted is denied, including unknown roles and actions.
//
// Reads are not listed here; every read endpoint is public.
func Allows(role models.UserRole, action Action, isOwner bool) bool {
	if role == models.RoleAdmin {
		return true
	}

	switch action {
	case ActionCreatePost, ActionCreateComment, ActionCreateLike:
		return role.CanPublish()
	case ActionUpdatePost, ActionUpdateComment:
		return role.CanPublish() && isOwner
	case ActionUpdateUser:
		// Any authenticated user may edit their own profile, Readers included.
		return isOwner && knownRole(role)
	case ActionDeleteComment, ActionDeleteLike:
		// Ownership alone suffices: a user demoted to Reader can still
		// remove content they created while they could publish.
		return isOwner && knownRole(role)
	case ActionChangeUserRole, ActionDeletePost, ActionDeleteUser, ActionManageCategory:
		// Admin-only; the admin short-circuit above already granted them.
		return false
	default:
		return false
	}
}

// Check wraps Allows with the caller/owner comparison and returns a
// FORBIDDEN application error on denial.
func Check(caller Caller, action Action, resourceOwnerID uint) error {
	if Allows(caller.Role, action, caller.Owns(resourceOwnerID)) {
		return nil
	}
	observability.PolicyDenials.WithLabelValues(action.String(), string(caller.Role)).Inc()
	return models.NewForbiddenError("You are not allowed to " + actionMessage(action))
}

func knownRole(role models.UserRole) bool {
	_, ok := models.ParseRole(string(role))
	return ok
}

func actionMessage(action Action) string {
	switch action {
	case ActionCreatePost:
		return "create posts"
	case ActionCreateComment:
		return "comment on posts"
	case ActionCreateLike:
		return "like posts"
	case ActionUpdatePost:
		return "update this post"
	case ActionUpdateComment:
		return "update this comment"
	case ActionUpdateUser:
		return "update this user"
	case ActionChangeUserRole:
		return "change user roles"
	case ActionDeletePost:
		return "delete this post"
	case ActionDeleteComment:
		return "delete this comment"
	case ActionDeleteLike:
		return "remove this like"
	case ActionDeleteUser:
		return "delete users"
	case ActionManageCategory:
		return "manage categories"
	default:
		return "perform this action"
	}
}
