// Package authz decides, per operation, whether the acting principal may
// proceed. Every decision is returned as a tagged value so call sites handle
// allow and deny uniformly instead of raising transport errors in place.
package authz

import (
	"inkwell/internal/models"
)

// Principal is the acting identity for a request. A nil *Principal means
// the caller is anonymous.
type Principal struct {
	ID       uint
	Username string
	IsStaff  bool
}

// Decision is the outcome of a guard check. When Allowed is false, Code is
// one of models.CodeUnauthorized or models.CodeForbidden.
type Decision struct {
	Allowed bool
	Code    string
	Reason  string
}

// Err converts a denial into the matching AppError. It returns nil for an
// allowed decision.
func (d Decision) Err() *models.AppError {
	if d.Allowed {
		return nil
	}
	if d.Code == models.CodeUnauthorized {
		return models.NewUnauthorizedError(d.Reason)
	}
	return models.NewForbiddenError(d.Reason)
}

func allow() Decision {
	return Decision{Allowed: true}
}

func unauthorized(reason string) Decision {
	return Decision{Code: models.CodeUnauthorized, Reason: reason}
}

func forbidden(reason string) Decision {
	return Decision{Code: models.CodeForbidden, Reason: reason}
}

// CanManageCategories reports whether p may create, update, or delete
// categories. Staff only.
func CanManageCategories(p *Principal) Decision {
	if p == nil {
		return unauthorized("Login required")
	}
	if !p.IsStaff {
		return forbidden("Staff role required")
	}
	return allow()
}

// CanCreatePost reports whether p may create a post. Any authenticated
// principal becomes the author.
func CanCreatePost(p *Principal) Decision {
	if p == nil {
		return unauthorized("Login required")
	}
	return allow()
}

// CanListOwnPosts reports whether p may list their own posts across all
// statuses.
func CanListOwnPosts(p *Principal) Decision {
	if p == nil {
		return unauthorized("Login required")
	}
	return allow()
}

// CanMutatePost reports whether p may update or delete post. Author only.
func CanMutatePost(p *Principal, post *models.Post) Decision {
	if p == nil {
		return unauthorized("Login required")
	}
	if post.AuthorID != p.ID {
		return forbidden("You can only modify your own posts")
	}
	return allow()
}

// CanComment reports whether p may comment on a post.
func CanComment(p *Principal) Decision {
	if p == nil {
		return unauthorized("Login required")
	}
	return allow()
}

// CanDeleteComment reports whether p may delete comment. Author only.
func CanDeleteComment(p *Principal, comment *models.Comment) Decision {
	if p == nil {
		return unauthorized("Login required")
	}
	if comment.AuthorID != p.ID {
		return forbidden("Not your comment")
	}
	return allow()
}
