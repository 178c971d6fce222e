package gatekit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStandardRoles tests the seeded global role set
func TestStandardRoles(t *testing.T) {
	roles := StandardRoles()
	require.Len(t, roles, 4)

	byID := map[int64]Role{}
	for _, role := range roles {
		assert.Equal(t, RoleTypeGlobal, role.RoleType)
		assert.Equal(t, int64(0), role.OrgID)
		byID[role.ID] = role
	}

	t.Run("Admin has everything", func(t *testing.T) {
		admin := byID[RoleAdminID]
		assert.Equal(t, "Admin", admin.Name)
		assert.True(t, admin.Rights.Granted(ElementRoles, ActionDelete))
		assert.True(t, admin.Rights.Granted(ElementOrganizations, ActionUpdate))
		assert.True(t, admin.Rights.GrantedDashboard())
	})

	t.Run("Maintainer cannot manage roles", func(t *testing.T) {
		maintainer := byID[RoleMaintainerID]
		assert.True(t, maintainer.Rights.Granted(ElementRoles, ActionRead))
		assert.False(t, maintainer.Rights.Granted(ElementRoles, ActionCreate))
		assert.True(t, maintainer.Rights.Granted(ElementCourses, ActionDelete))
		assert.True(t, maintainer.Rights.GrantedDashboard())
	})

	t.Run("Instructor manages only own courses", func(t *testing.T) {
		instructor := byID[RoleInstructorID]
		assert.True(t, instructor.Rights.Granted(ElementCourses, ActionCreate))
		assert.False(t, instructor.Rights.Granted(ElementCourses, ActionUpdate))
		assert.True(t, instructor.Rights.GrantedOwn(ElementCourses, ActionUpdate))
		assert.True(t, instructor.Rights.GrantedOwn(ElementCourses, ActionDelete))
	})

	t.Run("User is read only without dashboard", func(t *testing.T) {
		user := byID[RoleUserID]
		assert.True(t, user.Rights.Granted(ElementCourses, ActionRead))
		assert.False(t, user.Rights.Granted(ElementCourses, ActionCreate))
		assert.False(t, user.Rights.Granted(ElementRoles, ActionRead))
		assert.False(t, user.Rights.GrantedDashboard())
	})
}

// TestIsOrgAdminRole tests the distinguished admin-role predicate
func TestIsOrgAdminRole(t *testing.T) {
	tests := []struct {
		name string
		role Role
		want bool
	}{
		{"Global admin", Role{ID: 1, RoleType: RoleTypeGlobal}, true},
		{"Global maintainer", Role{ID: 2, RoleType: RoleTypeGlobal}, true},
		{"Global instructor", Role{ID: 3, RoleType: RoleTypeGlobal}, false},
		{"Global user", Role{ID: 4, RoleType: RoleTypeGlobal}, false},
		{"Org role with ID 1", Role{ID: 1, RoleType: RoleTypeOrganization}, false},
		{"Other role type", Role{ID: 2, RoleType: RoleTypeOther}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.role.IsOrgAdminRole())
		})
	}
}
