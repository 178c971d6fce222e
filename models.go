package gatekit

import (
	"time"

	"github.com/uptrace/bun"
)

// AnonymousUserID is the sentinel user ID for unauthenticated visitors.
const AnonymousUserID int64 = 0

// Principal is the acting entity of an authorization decision. It is
// supplied by an external identity collaborator; GateKit never issues
// or validates credentials.
type Principal struct {
	UserID int64
	OrgID  int64 // Organization membership context, 0 when none.
}

// Anonymous returns the anonymous principal.
func Anonymous() Principal {
	return Principal{UserID: AnonymousUserID}
}

// IsAnonymous reports whether the principal carries no identity.
func (p Principal) IsAnonymous() bool {
	return p.UserID == AnonymousUserID
}

// RoleType tags the scope a role belongs to.
type RoleType string

const (
	// RoleTypeGlobal roles are defined by the platform and shared by
	// every organization (Admin, Maintainer, Instructor, User).
	RoleTypeGlobal RoleType = "global"

	// RoleTypeOrganization roles are created by and scoped to a single
	// organization.
	RoleTypeOrganization RoleType = "organization"

	// RoleTypeOther covers roles outside the two standard scopes.
	RoleTypeOther RoleType = "other"
)

// Role is a named permission grouping within an organization scope
// (or global). Its Rights matrix governs what holders may do per
// element type.
type Role struct {
	bun.BaseModel `bun:"table:roles,alias:r"`

	ID          int64     `bun:"id,pk,autoincrement"`
	RoleUID     string    `bun:"role_uid,notnull,unique"`
	OrgID       int64     `bun:"org_id"` // 0 for global roles
	Name        string    `bun:"name,notnull"`
	Description string    `bun:"description"`
	RoleType    RoleType  `bun:"role_type,notnull"`
	Rights      Rights    `bun:"rights,type:jsonb"`
	CreatedAt   time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt   time.Time `bun:"updated_at,notnull,default:current_timestamp"`
}

// RoleAssignment binds a user to a role within an organization scope.
// A user can hold several roles in the same organization; their
// effective permission is the union of the bound roles' grants.
type RoleAssignment struct {
	bun.BaseModel `bun:"table:role_assignments,alias:ra"`

	ID        int64     `bun:"id,pk,autoincrement"`
	UserID    int64     `bun:"user_id,notnull"`
	RoleID    int64     `bun:"role_id,notnull"`
	OrgID     int64     `bun:"org_id,notnull"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
}

// Authorship is the recorded relation between a user and a resource.
type Authorship string

const (
	AuthorshipCreator     Authorship = "creator"
	AuthorshipMaintainer  Authorship = "maintainer"
	AuthorshipContributor Authorship = "contributor"
	AuthorshipReporter    Authorship = "reporter"
)

// AuthorshipStatus is the lifecycle state of an authorship record.
// Only active records confer authorship rights.
type AuthorshipStatus string

const (
	AuthorshipActive   AuthorshipStatus = "active"
	AuthorshipPending  AuthorshipStatus = "pending"
	AuthorshipInactive AuthorshipStatus = "inactive"
)

// ResourceAuthor ties a resource instance to a user with an authorship
// role and status. Authorship is lifecycle-managed independently of the
// resource row itself (granted, suspended, transferred).
type ResourceAuthor struct {
	bun.BaseModel `bun:"table:resource_authors,alias:au"`

	ID          int64            `bun:"id,pk,autoincrement"`
	ResourceUID string           `bun:"resource_uid,notnull"`
	UserID      int64            `bun:"user_id,notnull"`
	Authorship  Authorship       `bun:"authorship,notnull"`
	Status      AuthorshipStatus `bun:"status,notnull"`
	CreatedAt   time.Time        `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt   time.Time        `bun:"updated_at,notnull,default:current_timestamp"`
}

// IsActiveAuthor reports whether this record currently confers
// authorship rights to the given user.
func (a *ResourceAuthor) IsActiveAuthor(userID int64) bool {
	return a != nil && a.Status == AuthorshipActive && a.UserID == userID
}

// ResourceMeta is the engine-facing facet of a stored resource
// instance: the fields the authorization strategies read. The full
// resource rows (course content, collection items) live in caller-owned
// tables; this table carries only what verdicts need.
type ResourceMeta struct {
	bun.BaseModel `bun:"table:resource_meta,alias:rm"`

	ID          int64       `bun:"id,pk,autoincrement"`
	ResourceUID string      `bun:"resource_uid,notnull,unique"`
	ElementType ElementType `bun:"element_type,notnull"`
	OrgID       int64       `bun:"org_id,notnull"`
	Public      bool        `bun:"public,notnull,default:false"`
	CreatedAt   time.Time   `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt   time.Time   `bun:"updated_at,notnull,default:current_timestamp"`
}

// OrgConfigPayload is the jsonb body of an organization's configuration.
type OrgConfigPayload struct {
	Features OrgFeatures `json:"features"`
}

// OrganizationConfig holds the per-organization feature configuration
// read by the quota enforcer.
type OrganizationConfig struct {
	bun.BaseModel `bun:"table:organization_configs,alias:oc"`

	ID        int64            `bun:"id,pk,autoincrement"`
	OrgID     int64            `bun:"org_id,notnull,unique"`
	Config    OrgConfigPayload `bun:"config,type:jsonb"`
	CreatedAt time.Time        `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt time.Time        `bun:"updated_at,notnull,default:current_timestamp"`
}
