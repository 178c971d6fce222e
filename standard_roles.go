package gatekit

// Standard global role IDs. These roles exist on every deployment and
// are shared by all organizations; Admin and Maintainer are the
// distinguished organization-admin roles consulted by IsOrgAdmin.
const (
	RoleAdminID      int64 = 1
	RoleMaintainerID int64 = 2
	RoleInstructorID int64 = 3
	RoleUserID       int64 = 4
)

// IsOrgAdminRole reports whether this role is one of the distinguished
// admin roles of an organization.
func (r Role) IsOrgAdminRole() bool {
	return r.RoleType == RoleTypeGlobal &&
		(r.ID == RoleAdminID || r.ID == RoleMaintainerID)
}

func fullPermission() Permission {
	return Permission{ActionCreate: true, ActionRead: true, ActionUpdate: true, ActionDelete: true}
}

func readPermission() Permission {
	return Permission{ActionRead: true}
}

// StandardRoles returns the four predefined global roles with their
// full rights matrices, used to seed a fresh deployment.
//
//   - Admin: everything, including the dashboard.
//   - Maintainer: everything except role management, plus the dashboard.
//   - Instructor: creates courses and course content, manages only
//     their own courses through the own-resource variants.
//   - User: read-only on shared content.
func StandardRoles() []Role {
	return []Role{
		{
			ID:          RoleAdminID,
			RoleUID:     "role_global_admin",
			Name:        "Admin",
			Description: "Full administrative rights over the organization.",
			RoleType:    RoleTypeGlobal,
			Rights: Rights{
				Courses: PermissionsWithOwn{
					ActionCreate: true, ActionRead: true, ActionReadOwn: true,
					ActionUpdate: true, ActionUpdateOwn: true,
					ActionDelete: true, ActionDeleteOwn: true,
				},
				Users:          fullPermission(),
				Usergroups:     fullPermission(),
				Collections:    fullPermission(),
				Organizations:  fullPermission(),
				CourseChapters: fullPermission(),
				Activities:     fullPermission(),
				Roles:          fullPermission(),
				Dashboard:      DashboardPermission{ActionAccess: true},
			},
		},
		{
			ID:          RoleMaintainerID,
			RoleUID:     "role_global_maintainer",
			Name:        "Maintainer",
			Description: "Administrative rights except role management.",
			RoleType:    RoleTypeGlobal,
			Rights: Rights{
				Courses: PermissionsWithOwn{
					ActionCreate: true, ActionRead: true, ActionReadOwn: true,
					ActionUpdate: true, ActionUpdateOwn: true,
					ActionDelete: true, ActionDeleteOwn: true,
				},
				Users:          fullPermission(),
				Usergroups:     fullPermission(),
				Collections:    fullPermission(),
				Organizations:  readPermission(),
				CourseChapters: fullPermission(),
				Activities:     fullPermission(),
				Roles:          readPermission(),
				Dashboard:      DashboardPermission{ActionAccess: true},
			},
		},
		{
			ID:          RoleInstructorID,
			RoleUID:     "role_global_instructor",
			Name:        "Instructor",
			Description: "Creates courses and manages their own content.",
			RoleType:    RoleTypeGlobal,
			Rights: Rights{
				Courses: PermissionsWithOwn{
					ActionCreate: true, ActionRead: true, ActionReadOwn: true,
					ActionUpdateOwn: true, ActionDeleteOwn: true,
				},
				Users:          readPermission(),
				Usergroups:     readPermission(),
				Collections:    Permission{ActionCreate: true, ActionRead: true},
				Organizations:  readPermission(),
				CourseChapters: Permission{ActionCreate: true, ActionRead: true},
				Activities:     Permission{ActionCreate: true, ActionRead: true},
				Roles:          readPermission(),
				Dashboard:      DashboardPermission{ActionAccess: true},
			},
		},
		{
			ID:          RoleUserID,
			RoleUID:     "role_global_user",
			Name:        "User",
			Description: "Read-only access to shared content.",
			RoleType:    RoleTypeGlobal,
			Rights: Rights{
				Courses: PermissionsWithOwn{
					ActionRead: true, ActionReadOwn: true,
				},
				Users:          readPermission(),
				Usergroups:     readPermission(),
				Collections:    readPermission(),
				Organizations:  readPermission(),
				CourseChapters: readPermission(),
				Activities:     readPermission(),
				Roles:          Permission{},
			},
		},
	}
}
