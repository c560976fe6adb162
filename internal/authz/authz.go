// Package authz holds the single authorization decision for the API.
// Every endpoint reduces to one call: may this actor perform this action
// on this kind of resource, given whether the actor owns it?
package authz

import (
	"github.com/emzola/kritika/data"
)

// Action is the operation an actor attempts against a resource.
type Action int

const (
	ActionRead Action = iota
	ActionCreate
	ActionUpdate
	ActionDelete
)

// Resource is the kind of entity an action targets.
type Resource int

const (
	// ResourceCatalog covers categories, genres and titles.
	ResourceCatalog Resource = iota
	ResourceReview
	ResourceComment
	ResourceUser
)

// Allowed decides whether an actor with the given role may perform action on
// resource. authenticated is false for the anonymous user; owner reports
// whether the actor authored the targeted record (or, for ResourceUser,
// whether the record is the actor's own profile).
func Allowed(role data.Role, authenticated, owner bool, action Action, resource Resource) bool {
	switch resource {
	case ResourceCatalog:
		if action == ActionRead {
			return true
		}
		return authenticated && role.IsAdmin()
	case ResourceReview, ResourceComment:
		if action == ActionRead {
			return true
		}
		if !authenticated {
			return false
		}
		if action == ActionCreate {
			return true
		}
		return owner || role.IsModerator()
	case ResourceUser:
		if !authenticated {
			return false
		}
		if role.IsAdmin() {
			return true
		}
		return owner && action != ActionCreate
	}
	return false
}
