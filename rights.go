package gatekit

// Action is a CRUD-style action requested on an element.
type Action string

// Actions governed by the permission matrix.
const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// IsValid reports whether the action is one of the governed verbs.
func (a Action) IsValid() bool {
	switch a {
	case ActionCreate, ActionRead, ActionUpdate, ActionDelete:
		return true
	}
	return false
}

// Permission is the standard grant set for an element type: one
// independent flag per action.
type Permission struct {
	ActionCreate bool `json:"action_create"`
	ActionRead   bool `json:"action_read"`
	ActionUpdate bool `json:"action_update"`
	ActionDelete bool `json:"action_delete"`
}

// Granted reports whether the plain flag for an action is set.
func (p Permission) Granted(action Action) bool {
	switch action {
	case ActionCreate:
		return p.ActionCreate
	case ActionRead:
		return p.ActionRead
	case ActionUpdate:
		return p.ActionUpdate
	case ActionDelete:
		return p.ActionDelete
	}
	return false
}

// PermissionsWithOwn extends Permission with own-resource variants for
// element types that track authorship (courses). There is no create_own:
// creating a resource makes the actor its prospective author, so the
// plain create flag is the only create grant.
type PermissionsWithOwn struct {
	ActionCreate    bool `json:"action_create"`
	ActionRead      bool `json:"action_read"`
	ActionReadOwn   bool `json:"action_read_own"`
	ActionUpdate    bool `json:"action_update"`
	ActionUpdateOwn bool `json:"action_update_own"`
	ActionDelete    bool `json:"action_delete"`
	ActionDeleteOwn bool `json:"action_delete_own"`
}

// Granted reports whether the plain flag for an action is set.
func (p PermissionsWithOwn) Granted(action Action) bool {
	switch action {
	case ActionCreate:
		return p.ActionCreate
	case ActionRead:
		return p.ActionRead
	case ActionUpdate:
		return p.ActionUpdate
	case ActionDelete:
		return p.ActionDelete
	}
	return false
}

// GrantedOwn reports whether the own-resource variant for an action is
// set. Own variants apply only when the actor is also the resource's
// author; the caller is responsible for that check.
func (p PermissionsWithOwn) GrantedOwn(action Action) bool {
	switch action {
	case ActionRead:
		return p.ActionReadOwn
	case ActionUpdate:
		return p.ActionUpdateOwn
	case ActionDelete:
		return p.ActionDeleteOwn
	}
	return false
}

// DashboardPermission is the single-flag grant for the admin dashboard.
// The dashboard has no CRUD surface, just an access switch.
type DashboardPermission struct {
	ActionAccess bool `json:"action_access"`
}

// Rights is a role's full permission matrix: one entry per governed
// element type. A Rights value with a zero entry for a type denies every
// action on that type, so absent categories fail closed. Houses carry no
// entry at all and are always denied through the role path.
type Rights struct {
	Courses        PermissionsWithOwn  `json:"courses"`
	Users          Permission          `json:"users"`
	Usergroups     Permission          `json:"usergroups"`
	Collections    Permission          `json:"collections"`
	Organizations  Permission          `json:"organizations"`
	CourseChapters Permission          `json:"coursechapters"`
	Activities     Permission          `json:"activities"`
	Roles          Permission          `json:"roles"`
	Dashboard      DashboardPermission `json:"dashboard"`
}

// Granted reports whether the plain flag for an action on an element
// type is set. Unknown element types (houses, dashboard) are denied.
func (r Rights) Granted(elementType ElementType, action Action) bool {
	switch elementType {
	case ElementCourses:
		return r.Courses.Granted(action)
	case ElementUsers:
		return r.Users.Granted(action)
	case ElementUsergroups:
		return r.Usergroups.Granted(action)
	case ElementCollections:
		return r.Collections.Granted(action)
	case ElementOrganizations:
		return r.Organizations.Granted(action)
	case ElementCourseChapters:
		return r.CourseChapters.Granted(action)
	case ElementActivities:
		return r.Activities.Granted(action)
	case ElementRoles:
		return r.Roles.Granted(action)
	}
	return false
}

// GrantedOwn reports whether the own-resource variant for an action on
// an element type is set. Only courses define own variants.
func (r Rights) GrantedOwn(elementType ElementType, action Action) bool {
	if elementType == ElementCourses {
		return r.Courses.GrantedOwn(action)
	}
	return false
}

// GrantedDashboard reports whether the admin dashboard access flag is set.
func (r Rights) GrantedDashboard() bool {
	return r.Dashboard.ActionAccess
}
