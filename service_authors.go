package gatekit

import (
	"context"

	"github.com/fernandezvara/dbkit"
)

// Authorship management. A resource's public flag and its authorship
// are independently queried and independently lifecycle-managed: the
// flag mutates through resource updates, authorship through the
// explicit operations below.

// GrantAuthorship records an authorship relation for a resource. The
// creator relation is unique per resource; granting a second creator
// conflicts. Contributors start pending and gain rights only once
// activated.
func (s *Service) GrantAuthorship(ctx context.Context, principal Principal, resourceUID string, userID int64, authorship Authorship, status AuthorshipStatus) (*ResourceAuthor, error) {
	if err := RequireAuthenticated(principal.UserID); err != nil {
		return nil, err
	}

	if _, err := ClassifyElement(resourceUID); err != nil {
		return nil, err
	}

	existing, err := s.authors.Authorship(ctx, resourceUID)
	if err != nil {
		return nil, err
	}

	// The first grant on a fresh resource needs no prior authorship:
	// it is how the creator relation comes into existence.
	if existing != nil {
		if err := s.requireAuthorshipManagement(ctx, principal, resourceUID); err != nil {
			return nil, err
		}
		if authorship == AuthorshipCreator && existing.Authorship == AuthorshipCreator {
			return nil, NewError(ErrConflict, "Resource already has a creator").
				WithElement(resourceUID)
		}
	}

	author := &ResourceAuthor{
		ResourceUID: resourceUID,
		UserID:      userID,
		Authorship:  authorship,
		Status:      status,
	}

	result, err := s.db.NewInsert().Model(author).Exec(ctx)
	if err = dbkit.WithErr(result, err, "GrantAuthorship").Err(); err != nil {
		if dbkit.IsDuplicate(err) {
			return nil, NewError(ErrConflict, "User already holds authorship on this resource").
				WithElement(resourceUID).
				WithUser(userID)
		}
		return nil, NewError(ErrDatabaseError, "failed to record authorship").
			WithElement(resourceUID).
			WithUser(userID)
	}

	return author, nil
}

// UpdateAuthorshipStatus activates, suspends, or revokes an authorship
// relation. The creator's status cannot be changed here; use
// TransferCreatorAuthorship to move creatorship instead.
func (s *Service) UpdateAuthorshipStatus(ctx context.Context, principal Principal, resourceUID string, userID int64, status AuthorshipStatus) error {
	if err := RequireAuthenticated(principal.UserID); err != nil {
		return err
	}

	if err := s.requireAuthorshipManagement(ctx, principal, resourceUID); err != nil {
		return err
	}

	var author ResourceAuthor
	err := dbkit.WithErr1(
		s.db.NewSelect().
			Model(&author).
			Where("resource_uid = ? AND user_id = ?", resourceUID, userID).
			Limit(1).
			Scan(ctx),
		"AuthorshipByUser").Err()
	if err != nil {
		if dbkit.IsNotFound(err) {
			return NewError(ErrNotFound, "No authorship record for this user").
				WithElement(resourceUID).
				WithUser(userID)
		}
		return err
	}

	if author.Authorship == AuthorshipCreator {
		return NewError(ErrForbidden, "The creator's authorship cannot be modified").
			WithElement(resourceUID).
			WithUser(userID)
	}

	result, err := s.db.NewUpdate().
		Table("resource_authors").
		Set("status = ?", status).
		Set("updated_at = current_timestamp").
		Where("resource_uid = ? AND user_id = ?", resourceUID, userID).
		Exec(ctx)
	if err = dbkit.WithErr(result, err, "UpdateAuthorshipStatus").Err(); err != nil {
		return NewError(ErrDatabaseError, "failed to update authorship status").
			WithElement(resourceUID).
			WithUser(userID)
	}

	return nil
}

// TransferCreatorAuthorship moves the creator relation of a resource to
// another user. The previous creator is kept as an active maintainer.
func (s *Service) TransferCreatorAuthorship(ctx context.Context, principal Principal, resourceUID string, newCreatorID int64) error {
	if err := RequireAuthenticated(principal.UserID); err != nil {
		return err
	}

	if err := s.requireAuthorshipManagement(ctx, principal, resourceUID); err != nil {
		return err
	}

	current, err := s.authors.Authorship(ctx, resourceUID)
	if err != nil {
		return err
	}
	if current == nil || current.Authorship != AuthorshipCreator {
		return NewError(ErrNotFound, "Resource has no creator to transfer from").
			WithElement(resourceUID)
	}
	if current.UserID == newCreatorID {
		return NewError(ErrConflict, "User is already the creator").
			WithElement(resourceUID).
			WithUser(newCreatorID)
	}

	result, err := s.db.NewUpdate().
		Table("resource_authors").
		Set("authorship = ?", AuthorshipMaintainer).
		Set("updated_at = current_timestamp").
		Where("resource_uid = ? AND user_id = ?", resourceUID, current.UserID).
		Exec(ctx)
	if err = dbkit.WithErr(result, err, "DemotePreviousCreator").Err(); err != nil {
		return NewError(ErrDatabaseError, "failed to transfer authorship").
			WithElement(resourceUID)
	}

	author := &ResourceAuthor{
		ResourceUID: resourceUID,
		UserID:      newCreatorID,
		Authorship:  AuthorshipCreator,
		Status:      AuthorshipActive,
	}
	result, err = s.db.NewInsert().
		Model(author).
		On("CONFLICT (resource_uid, user_id) DO UPDATE").
		Set("authorship = EXCLUDED.authorship").
		Set("status = EXCLUDED.status").
		Exec(ctx)
	if err = dbkit.WithErr(result, err, "PromoteNewCreator").Err(); err != nil {
		return NewError(ErrDatabaseError, "failed to transfer authorship").
			WithElement(resourceUID).
			WithUser(newCreatorID)
	}

	return nil
}

// AuthorsOf lists every authorship record of a resource.
func (s *Service) AuthorsOf(ctx context.Context, resourceUID string) ([]ResourceAuthor, error) {
	var authors []ResourceAuthor
	err := dbkit.WithErr1(
		s.db.NewSelect().
			Model(&authors).
			Where("resource_uid = ?", resourceUID).
			Order("created_at ASC").
			Scan(ctx),
		"AuthorsOf").Err()
	if err != nil {
		return nil, err
	}
	return authors, nil
}

// requireAuthorshipManagement admits the resource's active author or a
// distinguished admin role.
func (s *Service) requireAuthorshipManagement(ctx context.Context, principal Principal, resourceUID string) error {
	author, err := s.authors.Authorship(ctx, resourceUID)
	if err != nil {
		return err
	}
	if author.IsActiveAuthor(principal.UserID) {
		return nil
	}

	admin, err := s.IsOrgAdmin(ctx, principal.UserID, principal.OrgID)
	if err != nil {
		return err
	}
	if admin {
		return nil
	}

	return NewError(ErrForbidden, "You must be the resource owner or have an admin role to manage authorship").
		WithElement(resourceUID).
		WithUser(principal.UserID)
}
