package gatekit

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAuthorshipLifecycle tests granting, updating, and listing authorship
func TestAuthorshipLifecycle(t *testing.T) {
	h := NewTestDataHelper(t)
	if h == nil {
		return
	}

	ctx := h.GetContext()
	service := h.GetService()

	orgID := h.CreateTestOrg()
	creatorID := h.CreateTestUser()
	creator := Principal{UserID: creatorID, OrgID: orgID}
	courseUID := h.CreateTestResourceUID("course")

	t.Run("First grant creates the creator relation", func(t *testing.T) {
		author, err := service.GrantAuthorship(ctx, creator, courseUID, creatorID, AuthorshipCreator, AuthorshipActive)
		require.NoError(t, err)
		assert.Equal(t, AuthorshipCreator, author.Authorship)
		assert.True(t, author.IsActiveAuthor(creatorID))
	})

	t.Run("Creator gains the authorship path", func(t *testing.T) {
		granted, err := service.IsAuthor(ctx, creatorID, ActionUpdate, courseUID)
		require.NoError(t, err)
		assert.True(t, granted)
	})

	t.Run("Second creator conflicts", func(t *testing.T) {
		otherID := h.CreateTestUser()
		_, err := service.GrantAuthorship(ctx, creator, courseUID, otherID, AuthorshipCreator, AuthorshipActive)
		assert.True(t, IsConflict(err))
	})

	t.Run("Repeated grant for the same user conflicts", func(t *testing.T) {
		_, err := service.GrantAuthorship(ctx, creator, courseUID, creatorID, AuthorshipMaintainer, AuthorshipActive)
		require.Error(t, err)
		assert.True(t, IsConflict(err))
		assert.False(t, errors.Is(err, ErrDatabaseError))
	})

	t.Run("Creator adds a pending contributor", func(t *testing.T) {
		contributorID := h.CreateTestUser()
		_, err := service.GrantAuthorship(ctx, creator, courseUID, contributorID, AuthorshipContributor, AuthorshipPending)
		require.NoError(t, err)

		t.Run("Pending contributor has no rights yet", func(t *testing.T) {
			granted, err := service.IsAuthor(ctx, contributorID, ActionUpdate, courseUID)
			require.NoError(t, err)
			assert.False(t, granted)
		})

		t.Run("Activation is allowed for non creators", func(t *testing.T) {
			require.NoError(t, service.UpdateAuthorshipStatus(ctx, creator, courseUID, contributorID, AuthorshipActive))
		})

		t.Run("Creator status is immutable", func(t *testing.T) {
			err := service.UpdateAuthorshipStatus(ctx, creator, courseUID, creatorID, AuthorshipInactive)
			assert.True(t, IsForbidden(err))
		})
	})

	t.Run("AuthorsOf lists every record", func(t *testing.T) {
		authors, err := service.AuthorsOf(ctx, courseUID)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(authors), 2)
	})
}

// TestAuthorshipManagementGuard tests who may manage authorship
func TestAuthorshipManagementGuard(t *testing.T) {
	h := NewTestDataHelper(t)
	if h == nil {
		return
	}

	ctx := h.GetContext()
	service := h.GetService()

	orgID := h.CreateTestOrg()
	creatorID := h.CreateTestUser()
	creator := Principal{UserID: creatorID, OrgID: orgID}
	courseUID := h.CreateTestResourceUID("course")

	_, err := service.GrantAuthorship(ctx, creator, courseUID, creatorID, AuthorshipCreator, AuthorshipActive)
	require.NoError(t, err)

	t.Run("Stranger cannot add authors", func(t *testing.T) {
		stranger := Principal{UserID: h.CreateTestUser(), OrgID: orgID}
		_, err := service.GrantAuthorship(ctx, stranger, courseUID, stranger.UserID, AuthorshipContributor, AuthorshipPending)
		assert.True(t, IsForbidden(err))
	})

	t.Run("Org admin can add authors", func(t *testing.T) {
		adminID := h.CreateTestUser()
		require.NoError(t, h.SetupAdminUser(adminID, orgID))
		admin := Principal{UserID: adminID, OrgID: orgID}

		_, err := service.GrantAuthorship(ctx, admin, courseUID, h.CreateTestUser(), AuthorshipMaintainer, AuthorshipActive)
		assert.NoError(t, err)
	})

	t.Run("Anonymous is unauthorized", func(t *testing.T) {
		_, err := service.GrantAuthorship(ctx, Anonymous(), courseUID, 1, AuthorshipContributor, AuthorshipPending)
		assert.True(t, IsUnauthorized(err))
	})
}

// TestTransferCreatorAuthorship tests moving the creator relation
func TestTransferCreatorAuthorship(t *testing.T) {
	h := NewTestDataHelper(t)
	if h == nil {
		return
	}

	ctx := h.GetContext()
	service := h.GetService()

	orgID := h.CreateTestOrg()
	creatorID := h.CreateTestUser()
	successorID := h.CreateTestUser()
	creator := Principal{UserID: creatorID, OrgID: orgID}
	courseUID := h.CreateTestResourceUID("course")

	_, err := service.GrantAuthorship(ctx, creator, courseUID, creatorID, AuthorshipCreator, AuthorshipActive)
	require.NoError(t, err)

	t.Run("Transfer to self conflicts", func(t *testing.T) {
		err := service.TransferCreatorAuthorship(ctx, creator, courseUID, creatorID)
		assert.True(t, IsConflict(err))
	})

	t.Run("Transfer moves creatorship and demotes the old creator", func(t *testing.T) {
		require.NoError(t, service.TransferCreatorAuthorship(ctx, creator, courseUID, successorID))

		authors, err := service.AuthorsOf(ctx, courseUID)
		require.NoError(t, err)

		byUser := map[int64]ResourceAuthor{}
		for _, author := range authors {
			byUser[author.UserID] = author
		}

		assert.Equal(t, AuthorshipMaintainer, byUser[creatorID].Authorship)
		assert.Equal(t, AuthorshipCreator, byUser[successorID].Authorship)
		assert.Equal(t, AuthorshipActive, byUser[successorID].Status)
	})

	t.Run("Resource without creator is not found", func(t *testing.T) {
		bareUID := h.CreateTestResourceUID("course")
		adminID := h.CreateTestUser()
		require.NoError(t, h.SetupAdminUser(adminID, orgID))
		admin := Principal{UserID: adminID, OrgID: orgID}

		err := service.TransferCreatorAuthorship(ctx, admin, bareUID, successorID)
		assert.True(t, IsNotFound(err))
	})
}
