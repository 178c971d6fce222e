package gatekit

import (
	"context"

	"github.com/fernandezvara/dbkit"
)

// dbStores is the default database-backed implementation of the store
// interfaces, sharing one dbkit connection.
type dbStores struct {
	db dbkit.IDB
}

var (
	_ RoleStore       = (*dbStores)(nil)
	_ AuthorshipStore = (*dbStores)(nil)
	_ ResourceStore   = (*dbStores)(nil)
	_ ConfigStore     = (*dbStores)(nil)
)

// RolesForUser returns every role bound to the user within the
// organization scope, global roles included. The result is a read-only
// snapshot; no caching happens between calls.
func (s *dbStores) RolesForUser(ctx context.Context, userID, orgID int64) ([]Role, error) {
	var roles []Role
	err := dbkit.WithErr1(
		s.db.NewSelect().
			Model(&roles).
			Join("JOIN role_assignments AS ra ON ra.role_id = r.id").
			Where("ra.user_id = ?", userID).
			Where("ra.org_id = ?", orgID).
			Scan(ctx),
		"RolesForUser").Err()
	if err != nil {
		return nil, err
	}
	return roles, nil
}

// Authorship returns the authorship record of a resource, or nil when
// none is recorded.
func (s *dbStores) Authorship(ctx context.Context, resourceUID string) (*ResourceAuthor, error) {
	var author ResourceAuthor
	err := dbkit.WithErr1(
		s.db.NewSelect().
			Model(&author).
			Where("resource_uid = ?", resourceUID).
			OrderExpr("au.authorship = ? DESC, au.created_at ASC", AuthorshipCreator).
			Limit(1).
			Scan(ctx),
		"Authorship").Err()
	if err != nil {
		if dbkit.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &author, nil
}

// Resource returns the engine-facing facet of a resource instance, or
// nil when the instance does not exist.
func (s *dbStores) Resource(ctx context.Context, resourceUID string) (*ResourceMeta, error) {
	var meta ResourceMeta
	err := dbkit.WithErr1(
		s.db.NewSelect().
			Model(&meta).
			Where("resource_uid = ?", resourceUID).
			Limit(1).
			Scan(ctx),
		"Resource").Err()
	if err != nil {
		if dbkit.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &meta, nil
}

// OrgConfig returns the organization's feature configuration, or nil
// when the organization has no configuration row.
func (s *dbStores) OrgConfig(ctx context.Context, orgID int64) (*OrganizationConfig, error) {
	var config OrganizationConfig
	err := dbkit.WithErr1(
		s.db.NewSelect().
			Model(&config).
			Where("org_id = ?", orgID).
			Limit(1).
			Scan(ctx),
		"OrgConfig").Err()
	if err != nil {
		if dbkit.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &config, nil
}
