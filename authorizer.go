package gatekit

import (
	"context"
)

// The authorization strategies below are independent on purpose: each
// endpoint composes its own legality formula (public OR role for reads,
// roles-and-authorship for mutations) without duplicating resolver
// logic. Resolvers return booleans; only the composite
// AuthorizeRolesAndAuthorship and the Require* helpers raise, because
// they sit at the final admit/deny boundary.

// ElementIsPublic reports whether the element is marked publicly
// readable. Only courses and collections support the public flag; any
// other element type is an automatic denial regardless of instance
// state. A missing instance also denies.
func (s *Service) ElementIsPublic(ctx context.Context, elementUID string) (bool, error) {
	desc, err := ClassifyElement(elementUID)
	if err != nil {
		return false, err
	}

	if !desc.Type.SupportsPublicFlag() {
		return false, nil
	}

	meta, err := s.meta.Resource(ctx, elementUID)
	if err != nil {
		return false, err
	}
	if meta == nil {
		return false, nil
	}

	return meta.Public, nil
}

// RequirePublicElement is the raising form of ElementIsPublic, used by
// anonymous read paths where a non-public element is a hard denial.
func (s *Service) RequirePublicElement(ctx context.Context, elementUID string) error {
	public, err := s.ElementIsPublic(ctx, elementUID)
	if err != nil {
		return err
	}
	if !public {
		return NewError(ErrForbidden, "You don't have the right to perform this action").
			WithElement(elementUID)
	}
	return nil
}

// IsAuthor reports whether the user is the recorded author of the
// element. Create always grants: an actor creating a new resource is
// trivially its prospective author, there is nothing to check ownership
// against yet. Missing records and user mismatches are a false result,
// not an error; a revoked or pending record confers nothing.
func (s *Service) IsAuthor(ctx context.Context, userID int64, action Action, elementUID string) (bool, error) {
	if action == ActionCreate {
		return true, nil
	}

	if _, err := ClassifyElement(elementUID); err != nil {
		return false, err
	}

	author, err := s.authors.Authorship(ctx, elementUID)
	if err != nil {
		return false, err
	}

	return author.IsActiveAuthor(userID), nil
}

// HasRolePermission reports whether any role bound to the user within
// the organization scope grants the plain flag for the action on the
// element's type. Zero bound roles deny; a role whose rights carry no
// entry for the type is non-granting for it (fail-closed). Aggregation
// is a union: the fold short-circuits on the first grant.
func (s *Service) HasRolePermission(ctx context.Context, userID int64, action Action, elementUID string, orgID int64) (bool, error) {
	desc, err := ClassifyElement(elementUID)
	if err != nil {
		return false, err
	}

	roles, err := s.roles.RolesForUser(ctx, userID, orgID)
	if err != nil {
		return false, err
	}

	for _, role := range roles {
		if role.Rights.Granted(desc.Type, action) {
			return true, nil
		}
	}
	return false, nil
}

// HasRolePermissionAsOwner reports whether any bound role grants the
// own-resource variant for the action AND the user is the element's
// active author. Own variants narrow a grant to the author's own
// resources; they never widen access for non-authors.
func (s *Service) HasRolePermissionAsOwner(ctx context.Context, userID int64, action Action, elementUID string, orgID int64) (bool, error) {
	desc, err := ClassifyElement(elementUID)
	if err != nil {
		return false, err
	}

	roles, err := s.roles.RolesForUser(ctx, userID, orgID)
	if err != nil {
		return false, err
	}

	granted := false
	for _, role := range roles {
		if role.Rights.GrantedOwn(desc.Type, action) {
			granted = true
			break
		}
	}
	if !granted {
		return false, nil
	}

	return s.IsAuthor(ctx, userID, action, elementUID)
}

// IsOrgAdmin reports whether any role bound to the user within the
// organization scope is one of the distinguished admin roles (the
// global Admin or Maintainer role), as opposed to holding a generic
// permission bit.
func (s *Service) IsOrgAdmin(ctx context.Context, userID, orgID int64) (bool, error) {
	roles, err := s.roles.RolesForUser(ctx, userID, orgID)
	if err != nil {
		return false, err
	}

	for _, role := range roles {
		if role.IsOrgAdminRole() {
			return true, nil
		}
	}
	return false, nil
}

// HasDashboardAccess reports whether any bound role grants the admin
// dashboard access flag.
func (s *Service) HasDashboardAccess(ctx context.Context, userID, orgID int64) (bool, error) {
	roles, err := s.roles.RolesForUser(ctx, userID, orgID)
	if err != nil {
		return false, err
	}

	for _, role := range roles {
		if role.Rights.GrantedDashboard() {
			return true, nil
		}
	}
	return false, nil
}

// AuthorizeRolesAndAuthorship is the terminal check most endpoints use:
// the action is allowed when either the authorship path or the role
// path grants it. It raises ErrForbidden only when both deny, making it
// the single composite strategy with a hard failure mode.
func (s *Service) AuthorizeRolesAndAuthorship(ctx context.Context, userID int64, action Action, elementUID string, orgID int64) error {
	isAuthor, err := s.IsAuthor(ctx, userID, action, elementUID)
	if err != nil {
		return err
	}
	if isAuthor {
		return nil
	}

	granted, err := s.HasRolePermission(ctx, userID, action, elementUID, orgID)
	if err != nil {
		return err
	}
	if granted {
		return nil
	}

	return NewError(ErrForbidden, "User rights (roles & authorship)").
		WithElement(elementUID).
		WithUser(userID).
		WithOrg(orgID)
}

// RequireAuthenticated fails with ErrUnauthorized when the user ID is
// the anonymous sentinel. Identified principals pass.
func RequireAuthenticated(userID int64) error {
	if userID == AnonymousUserID {
		return NewError(ErrUnauthorized, "You should be logged in to perform this action")
	}
	return nil
}
