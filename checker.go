package gatekit

import "context"

// Checker bundles the authorization strategies for one principal. It is
// typically created per request and stored in context for use in
// handlers, so call sites do not thread user and organization IDs
// through every check.
type Checker struct {
	principal Principal
	service   *Service
}

// NewChecker creates a Checker for a principal.
func NewChecker(principal Principal, service *Service) *Checker {
	return &Checker{
		principal: principal,
		service:   service,
	}
}

// Principal returns the principal this checker is for.
func (c *Checker) Principal() Principal {
	return c.principal
}

// RequireAuthenticated fails with ErrUnauthorized for the anonymous
// principal.
func (c *Checker) RequireAuthenticated() error {
	return RequireAuthenticated(c.principal.UserID)
}

// ElementIsPublic reports whether the element is publicly readable.
func (c *Checker) ElementIsPublic(ctx context.Context, elementUID string) (bool, error) {
	return c.service.ElementIsPublic(ctx, elementUID)
}

// IsAuthor reports whether the principal is the element's active author.
func (c *Checker) IsAuthor(ctx context.Context, action Action, elementUID string) (bool, error) {
	return c.service.IsAuthor(ctx, c.principal.UserID, action, elementUID)
}

// HasRolePermission reports whether the principal's bound roles grant
// the action on the element's type.
func (c *Checker) HasRolePermission(ctx context.Context, action Action, elementUID string) (bool, error) {
	return c.service.HasRolePermission(ctx, c.principal.UserID, action, elementUID, c.principal.OrgID)
}

// IsOrgAdmin reports whether the principal holds a distinguished admin
// role in their organization.
func (c *Checker) IsOrgAdmin(ctx context.Context) (bool, error) {
	return c.service.IsOrgAdmin(ctx, c.principal.UserID, c.principal.OrgID)
}

// Authorize is the terminal roles-and-authorship check for an action on
// an element. Reads by the anonymous principal fall back to the public
// flag; everything else requires an identity first.
func (c *Checker) Authorize(ctx context.Context, action Action, elementUID string) error {
	if c.principal.IsAnonymous() {
		if action == ActionRead {
			return c.service.RequirePublicElement(ctx, elementUID)
		}
		return RequireAuthenticated(c.principal.UserID)
	}

	return c.service.AuthorizeRolesAndAuthorship(ctx, c.principal.UserID, action, elementUID, c.principal.OrgID)
}

// CheckFeature verifies quota headroom for a feature in the principal's
// organization.
func (c *Checker) CheckFeature(ctx context.Context, feature Feature) error {
	return c.service.CheckLimitsWithUsage(ctx, feature, c.principal.OrgID)
}
