package authz

import (
	"testing"

	"github.com/emzola/kritika/data"
	"github.com/stretchr/testify/assert"
)

func TestAllowed(t *testing.T) {
	tests := []struct {
		name          string
		role          data.Role
		authenticated bool
		owner         bool
		action        Action
		resource      Resource
		want          bool
	}{
		{"anonymous reads catalog", "", false, false, ActionRead, ResourceCatalog, true},
		{"anonymous reads review", "", false, false, ActionRead, ResourceReview, true},
		{"anonymous reads comment", "", false, false, ActionRead, ResourceComment, true},
		{"anonymous cannot create review", "", false, false, ActionCreate, ResourceReview, false},
		{"anonymous cannot read user", "", false, false, ActionRead, ResourceUser, false},

		{"user creates review", data.RoleUser, true, false, ActionCreate, ResourceReview, true},
		{"user creates comment", data.RoleUser, true, false, ActionCreate, ResourceComment, true},
		{"author updates own review", data.RoleUser, true, true, ActionUpdate, ResourceReview, true},
		{"author deletes own comment", data.RoleUser, true, true, ActionDelete, ResourceComment, true},
		{"user cannot update another's review", data.RoleUser, true, false, ActionUpdate, ResourceReview, false},
		{"user cannot delete another's comment", data.RoleUser, true, false, ActionDelete, ResourceComment, false},
		{"user cannot write catalog", data.RoleUser, true, false, ActionCreate, ResourceCatalog, false},
		{"user cannot list users", data.RoleUser, true, false, ActionRead, ResourceUser, false},
		{"user reads own profile", data.RoleUser, true, true, ActionRead, ResourceUser, true},
		{"user updates own profile", data.RoleUser, true, true, ActionUpdate, ResourceUser, true},
		{"user deletes own profile", data.RoleUser, true, true, ActionDelete, ResourceUser, true},
		{"user cannot delete another's profile", data.RoleUser, true, false, ActionDelete, ResourceUser, false},
		{"user cannot create users", data.RoleUser, true, true, ActionCreate, ResourceUser, false},

		{"moderator updates another's review", data.RoleModerator, true, false, ActionUpdate, ResourceReview, true},
		{"moderator deletes another's comment", data.RoleModerator, true, false, ActionDelete, ResourceComment, true},
		{"moderator cannot write catalog", data.RoleModerator, true, false, ActionCreate, ResourceCatalog, false},
		{"moderator cannot manage users", data.RoleModerator, true, false, ActionCreate, ResourceUser, false},

		{"admin writes catalog", data.RoleAdmin, true, false, ActionCreate, ResourceCatalog, true},
		{"admin deletes catalog", data.RoleAdmin, true, false, ActionDelete, ResourceCatalog, true},
		{"admin manages users", data.RoleAdmin, true, false, ActionCreate, ResourceUser, true},
		{"admin deletes another's review", data.RoleAdmin, true, false, ActionDelete, ResourceReview, true},
		{"superuser writes catalog", data.RoleSuperuser, true, false, ActionCreate, ResourceCatalog, true},
		{"superuser manages users", data.RoleSuperuser, true, false, ActionDelete, ResourceUser, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Allowed(tt.role, tt.authenticated, tt.owner, tt.action, tt.resource)
			assert.Equal(t, tt.want, got)
		})
	}
}
