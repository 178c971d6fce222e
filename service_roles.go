package gatekit

import (
	"context"
	"strings"

	"github.com/fernandezvara/dbkit"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// maxRoleNameLength bounds organization role names.
const maxRoleNameLength = 100

// RoleCreate carries the caller-supplied fields of a new organization
// role. The role type is always forced to RoleTypeOrganization: global
// roles are seeded, never created through this path.
type RoleCreate struct {
	OrgID       int64
	Name        string
	Description string
	Rights      Rights
}

// RoleUpdate carries the mutable fields of an existing role.
type RoleUpdate struct {
	Name        string
	Description string
	Rights      Rights
}

// CreateRole creates an organization-scoped role after the original
// verification ladder: the principal must be identified and hold the
// roles.create grant (or a distinguished admin role) in the target
// organization, the name must be present and bounded, and the name must
// be unique within the organization.
func (s *Service) CreateRole(ctx context.Context, principal Principal, create RoleCreate) (*Role, error) {
	if err := RequireAuthenticated(principal.UserID); err != nil {
		return nil, err
	}

	if create.OrgID == 0 {
		return nil, NewError(ErrConflict, "Organization ID is required for role creation")
	}

	if err := s.requireRoleManagement(ctx, principal, ActionCreate, create.OrgID); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(create.Name)
	if name == "" {
		return nil, NewError(ErrConflict, "Role name is required and cannot be empty").
			WithOrg(create.OrgID)
	}
	if len(name) > maxRoleNameLength {
		return nil, NewError(ErrConflict, "Role name cannot exceed 100 characters").
			WithOrg(create.OrgID)
	}

	taken, err := s.roleNameTaken(ctx, name, create.OrgID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, NewError(ErrConflict, "A role with this name already exists in this organization").
			WithOrg(create.OrgID)
	}

	role := &Role{
		RoleUID:     "role_" + uuid.NewString(),
		OrgID:       create.OrgID,
		Name:        name,
		Description: create.Description,
		RoleType:    RoleTypeOrganization,
		Rights:      create.Rights,
	}

	result, err := s.db.NewInsert().Model(role).Exec(ctx)
	if err = dbkit.WithErr(result, err, "CreateRole").Err(); err != nil {
		if dbkit.IsDuplicate(err) {
			return nil, NewError(ErrConflict, "A role with this name already exists in this organization").
				WithOrg(create.OrgID)
		}
		return nil, NewError(ErrDatabaseError, "failed to create role").
			WithOrg(create.OrgID)
	}

	return role, nil
}

// UpdateRole mutates a role's name, description, and rights. Global
// roles cannot be updated through this path.
func (s *Service) UpdateRole(ctx context.Context, principal Principal, roleUID string, update RoleUpdate) (*Role, error) {
	if err := RequireAuthenticated(principal.UserID); err != nil {
		return nil, err
	}

	role, err := s.RoleByUID(ctx, roleUID)
	if err != nil {
		return nil, err
	}
	if role.RoleType != RoleTypeOrganization {
		return nil, NewError(ErrForbidden, "Global roles cannot be modified").
			WithElement(roleUID)
	}

	if err := s.requireRoleManagement(ctx, principal, ActionUpdate, role.OrgID); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(update.Name)
	if name == "" {
		return nil, NewError(ErrConflict, "Role name is required and cannot be empty").
			WithOrg(role.OrgID)
	}
	if len(name) > maxRoleNameLength {
		return nil, NewError(ErrConflict, "Role name cannot exceed 100 characters").
			WithOrg(role.OrgID)
	}

	role.Name = name
	role.Description = update.Description
	role.Rights = update.Rights

	result, err := s.db.NewUpdate().
		Model(role).
		Column("name", "description", "rights", "updated_at").
		Where("role_uid = ?", roleUID).
		Exec(ctx)
	if err = dbkit.WithErr(result, err, "UpdateRole").Err(); err != nil {
		return nil, NewError(ErrDatabaseError, "failed to update role").
			WithElement(roleUID)
	}

	return role, nil
}

// DeleteRole removes an organization role and its assignments. Global
// roles cannot be deleted.
func (s *Service) DeleteRole(ctx context.Context, principal Principal, roleUID string) error {
	if err := RequireAuthenticated(principal.UserID); err != nil {
		return err
	}

	role, err := s.RoleByUID(ctx, roleUID)
	if err != nil {
		return err
	}
	if role.RoleType != RoleTypeOrganization {
		return NewError(ErrForbidden, "Global roles cannot be deleted").
			WithElement(roleUID)
	}

	if err := s.requireRoleManagement(ctx, principal, ActionDelete, role.OrgID); err != nil {
		return err
	}

	result, err := s.db.NewDelete().
		Table("role_assignments").
		Where("role_id = ?", role.ID).
		Exec(ctx)
	if err = dbkit.WithErr(result, err, "DeleteRoleAssignments").Err(); err != nil {
		return NewError(ErrDatabaseError, "failed to delete role assignments").
			WithElement(roleUID)
	}

	result, err = s.db.NewDelete().
		Table("roles").
		Where("role_uid = ?", roleUID).
		Exec(ctx)
	if err = dbkit.WithErr(result, err, "DeleteRole").Err(); err != nil {
		return NewError(ErrDatabaseError, "failed to delete role").
			WithElement(roleUID)
	}

	return nil
}

// RoleByUID loads a role by its UID.
func (s *Service) RoleByUID(ctx context.Context, roleUID string) (*Role, error) {
	var role Role
	err := dbkit.WithErr1(
		s.db.NewSelect().
			Model(&role).
			Where("role_uid = ?", roleUID).
			Limit(1).
			Scan(ctx),
		"RoleByUID").Err()
	if err != nil {
		if dbkit.IsNotFound(err) {
			return nil, NewError(ErrNotFound, "Role not found").
				WithElement(roleUID)
		}
		return nil, err
	}
	return &role, nil
}

// RolesForOrg lists an organization's roles, global roles included.
func (s *Service) RolesForOrg(ctx context.Context, orgID int64) ([]Role, error) {
	var roles []Role
	err := dbkit.WithErr1(
		s.db.NewSelect().
			Model(&roles).
			Where("org_id = ? OR role_type = ?", orgID, RoleTypeGlobal).
			Order("id ASC").
			Scan(ctx),
		"RolesForOrg").Err()
	if err != nil {
		return nil, err
	}
	return roles, nil
}

// AssignRole binds a role to a user within an organization. Duplicate
// bindings conflict.
func (s *Service) AssignRole(ctx context.Context, principal Principal, userID, roleID, orgID int64) error {
	if err := RequireAuthenticated(principal.UserID); err != nil {
		return err
	}
	if err := s.requireRoleManagement(ctx, principal, ActionUpdate, orgID); err != nil {
		return err
	}

	return s.assignRole(ctx, userID, roleID, orgID)
}

// assignRole writes the binding without a management check. Used by
// AssignRole and by bootstrap paths that seed the first administrator
// of an organization.
func (s *Service) assignRole(ctx context.Context, userID, roleID, orgID int64) error {
	assignment := &RoleAssignment{
		UserID: userID,
		RoleID: roleID,
		OrgID:  orgID,
	}

	result, err := s.db.NewInsert().
		Model(assignment).
		On("CONFLICT (user_id, role_id, org_id) DO NOTHING").
		Exec(ctx)
	if err = dbkit.WithErr(result, err, "AssignRole").Err(); err != nil {
		return NewError(ErrDatabaseError, "failed to assign role").
			WithUser(userID).
			WithOrg(orgID)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return NewError(ErrConflict, "User already has this role").
			WithUser(userID).
			WithOrg(orgID)
	}

	return nil
}

// BootstrapOrgAdmin grants the standard Admin role to a user without a
// management check. Call it once when an organization is created, so
// its first administrator exists before anyone can pass the guarded
// AssignRole path.
func (s *Service) BootstrapOrgAdmin(ctx context.Context, userID, orgID int64) error {
	return s.assignRole(ctx, userID, RoleAdminID, orgID)
}

// RevokeRole removes a role binding.
func (s *Service) RevokeRole(ctx context.Context, principal Principal, userID, roleID, orgID int64) error {
	if err := RequireAuthenticated(principal.UserID); err != nil {
		return err
	}
	if err := s.requireRoleManagement(ctx, principal, ActionUpdate, orgID); err != nil {
		return err
	}

	result, err := s.db.NewDelete().
		Table("role_assignments").
		Where("user_id = ? AND role_id = ? AND org_id = ?", userID, roleID, orgID).
		Exec(ctx)
	if err = dbkit.WithErr(result, err, "RevokeRole").Err(); err != nil {
		return NewError(ErrDatabaseError, "failed to revoke role").
			WithUser(userID).
			WithOrg(orgID)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return NewError(ErrNotFound, "User does not have this role").
			WithUser(userID).
			WithOrg(orgID)
	}

	return nil
}

// requireRoleManagement admits principals holding the roles-category
// grant for the action, or a distinguished admin role.
func (s *Service) requireRoleManagement(ctx context.Context, principal Principal, action Action, orgID int64) error {
	granted, err := s.HasRolePermission(ctx, principal.UserID, action, "role_x", orgID)
	if err != nil {
		return err
	}
	if granted {
		return nil
	}

	admin, err := s.IsOrgAdmin(ctx, principal.UserID, orgID)
	if err != nil {
		return err
	}
	if admin {
		return nil
	}

	return NewError(ErrForbidden, "You don't have permission to manage roles in this organization").
		WithUser(principal.UserID).
		WithOrg(orgID)
}

// roleNameTaken reports whether an organization role with the given
// name already exists in the organization. Global role names are not
// considered, they live in a separate namespace.
func (s *Service) roleNameTaken(ctx context.Context, name string, orgID int64) (bool, error) {
	exists, err := dbkit.Exists[Role](ctx, s.db, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("name = ? AND org_id = ? AND role_type = ?",
			name, orgID, RoleTypeOrganization)
	})
	if err != nil {
		return false, NewError(ErrDatabaseError, "failed to check role name uniqueness").
			WithOrg(orgID)
	}

	return exists, nil
}
