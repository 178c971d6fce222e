package gatekit

import (
	"context"
	"sync"
)

// In-memory store fakes shared by the unit tests. Integration tests use
// the database-backed stores through TestDataHelper instead.

type fakeRoleStore struct {
	roles map[int64]map[int64][]Role // userID -> orgID -> roles
	err   error
}

func (f *fakeRoleStore) RolesForUser(_ context.Context, userID, orgID int64) ([]Role, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.roles[userID][orgID], nil
}

type fakeAuthorshipStore struct {
	authors map[string]*ResourceAuthor
	err     error
}

func (f *fakeAuthorshipStore) Authorship(_ context.Context, resourceUID string) (*ResourceAuthor, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.authors[resourceUID], nil
}

type fakeResourceStore struct {
	resources map[string]*ResourceMeta
	err       error
}

func (f *fakeResourceStore) Resource(_ context.Context, resourceUID string) (*ResourceMeta, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.resources[resourceUID], nil
}

type fakeConfigStore struct {
	configs map[int64]*OrganizationConfig
	err     error
}

func (f *fakeConfigStore) OrgConfig(_ context.Context, orgID int64) (*OrganizationConfig, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.configs[orgID], nil
}

type fakeCounter struct {
	mu     sync.Mutex
	values map[string]int64
	err    error
}

func newFakeCounter() *fakeCounter {
	return &fakeCounter{values: map[string]int64{}}
}

func (f *fakeCounter) Get(_ context.Context, key string) (int64, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, false, f.err
	}
	value, ok := f.values[key]
	return value, ok, nil
}

func (f *fakeCounter) Set(_ context.Context, key string, value int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.values[key] = value
	return nil
}

// fakeStores bundles the fakes behind one builder so tests read as data.
type fakeStores struct {
	roles   *fakeRoleStore
	authors *fakeAuthorshipStore
	meta    *fakeResourceStore
	configs *fakeConfigStore
	counter *fakeCounter
}

func newFakeStores() *fakeStores {
	return &fakeStores{
		roles:   &fakeRoleStore{roles: map[int64]map[int64][]Role{}},
		authors: &fakeAuthorshipStore{authors: map[string]*ResourceAuthor{}},
		meta:    &fakeResourceStore{resources: map[string]*ResourceMeta{}},
		configs: &fakeConfigStore{configs: map[int64]*OrganizationConfig{}},
		counter: newFakeCounter(),
	}
}

func (f *fakeStores) service() *Service {
	return NewService(nil,
		WithRoleStore(f.roles),
		WithAuthorshipStore(f.authors),
		WithResourceStore(f.meta),
		WithConfigStore(f.configs),
		WithUsageCounter(f.counter),
	)
}

func (f *fakeStores) bindRole(userID, orgID int64, role Role) {
	if f.roles.roles[userID] == nil {
		f.roles.roles[userID] = map[int64][]Role{}
	}
	f.roles.roles[userID][orgID] = append(f.roles.roles[userID][orgID], role)
}

func (f *fakeStores) addAuthor(resourceUID string, userID int64, authorship Authorship, status AuthorshipStatus) {
	f.authors.authors[resourceUID] = &ResourceAuthor{
		ResourceUID: resourceUID,
		UserID:      userID,
		Authorship:  authorship,
		Status:      status,
	}
}

func (f *fakeStores) addResource(resourceUID string, elementType ElementType, orgID int64, public bool) {
	f.meta.resources[resourceUID] = &ResourceMeta{
		ResourceUID: resourceUID,
		ElementType: elementType,
		OrgID:       orgID,
		Public:      public,
	}
}

func (f *fakeStores) setOrgFeatures(orgID int64, features OrgFeatures) {
	f.configs.configs[orgID] = &OrganizationConfig{
		OrgID:  orgID,
		Config: OrgConfigPayload{Features: features},
	}
}

// roleWith wraps a Rights matrix in an organization role for binding.
func roleWith(rights Rights) Role {
	return Role{
		ID:       100,
		RoleUID:  "role_test",
		Name:     "test role",
		RoleType: RoleTypeOrganization,
		Rights:   rights,
	}
}
