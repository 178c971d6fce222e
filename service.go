package gatekit

import (
	"github.com/fernandezvara/dbkit"
)

// Service renders authorization and quota verdicts. It integrates with
// the relational store through dbkit and with the usage counter store
// through a UsageCounter implementation.
//
// Error Handling:
// Every entry point returns a boolean or one of the sentinel errors
// (ErrUnauthorized, ErrForbidden, ErrNotFound, ErrConflict, ErrInternal)
// wrapped in *Error with a human-readable detail. Database failures are
// wrapped through dbkit so callers can still classify them:
//
//	err := service.AuthorizeRolesAndAuthorship(ctx, userID, action, uid, orgID)
//	if gatekit.IsForbidden(err) {
//	    // surface 403 with err detail
//	}
type Service struct {
	db      dbkit.IDB
	roles   RoleStore
	authors AuthorshipStore
	meta    ResourceStore
	configs ConfigStore
	counter UsageCounter
}

// Option configures a Service.
type Option func(*Service)

// WithUsageCounter sets the counter store backing the quota enforcer.
// Without one, quota checks fail with ErrInternal: the counter store is
// deployment configuration, not a soft dependency.
func WithUsageCounter(counter UsageCounter) Option {
	return func(s *Service) {
		s.counter = counter
	}
}

// WithRoleStore overrides the default database-backed role store.
func WithRoleStore(store RoleStore) Option {
	return func(s *Service) {
		s.roles = store
	}
}

// WithAuthorshipStore overrides the default database-backed authorship store.
func WithAuthorshipStore(store AuthorshipStore) Option {
	return func(s *Service) {
		s.authors = store
	}
}

// WithResourceStore overrides the default database-backed resource store.
func WithResourceStore(store ResourceStore) Option {
	return func(s *Service) {
		s.meta = store
	}
}

// WithConfigStore overrides the default database-backed config store.
func WithConfigStore(store ConfigStore) Option {
	return func(s *Service) {
		s.configs = store
	}
}

// NewService creates a new GateKit service.
//
// Example:
//
//	db, _ := dbkit.New(dbkit.Config{URL: "postgres://..."})
//	counter, _ := gatekit.NewRedisCounter(ctx, "redis://localhost:6379")
//	service := gatekit.NewService(db, gatekit.WithUsageCounter(counter))
func NewService(db dbkit.IDB, opts ...Option) *Service {
	s := &Service{db: db}

	if db != nil {
		stores := &dbStores{db: db}
		s.roles = stores
		s.authors = stores
		s.meta = stores
		s.configs = stores
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}
