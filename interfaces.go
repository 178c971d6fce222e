package gatekit

import (
	"context"

	"github.com/fernandezvara/dbkit"
)

// Database defines the database operations interface for dependency injection.
type Database interface {
	dbkit.IDB
}

// RoleStore loads the roles bound to a principal within an
// organization scope. Global roles bound to the user are included.
type RoleStore interface {
	RolesForUser(ctx context.Context, userID, orgID int64) ([]Role, error)
}

// AuthorshipStore loads the authorship record of a resource.
// A missing record is (nil, nil), never an error.
type AuthorshipStore interface {
	Authorship(ctx context.Context, resourceUID string) (*ResourceAuthor, error)
}

// ResourceStore loads the engine-facing facet of a resource instance.
// A missing instance is (nil, nil), never an error.
type ResourceStore interface {
	Resource(ctx context.Context, resourceUID string) (*ResourceMeta, error)
}

// ConfigStore loads the per-organization feature configuration.
// A missing configuration row is (nil, nil), never an error.
type ConfigStore interface {
	OrgConfig(ctx context.Context, orgID int64) (*OrganizationConfig, error)
}

// UsageCounter is the external integer counter keyed by
// "{feature}_usage:{orgID}". Get reports absence through its second
// return value; absent counters read as zero.
type UsageCounter interface {
	Get(ctx context.Context, key string) (int64, bool, error)
	Set(ctx context.Context, key string, value int64) error
}
