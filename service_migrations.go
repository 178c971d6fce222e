package gatekit

import (
	"context"

	"github.com/fernandezvara/dbkit"
)

// Migrations returns all database migrations required by GateKit.
// Use dbkit.Migrate(ctx, service.Migrations()) to run them.
func (s *Service) Migrations() []dbkit.Migration {
	return []dbkit.Migration{
		{
			ID:          "gatekit-001",
			Description: "Create roles table",
			SQL: `
                CREATE TABLE IF NOT EXISTS roles (
                    id BIGSERIAL PRIMARY KEY,
                    role_uid TEXT NOT NULL UNIQUE,
                    org_id BIGINT NOT NULL DEFAULT 0,
                    name TEXT NOT NULL,
                    description TEXT,
                    role_type TEXT NOT NULL,
                    rights JSONB NOT NULL DEFAULT '{}'::jsonb,
                    created_at TIMESTAMPTZ NOT NULL DEFAULT current_timestamp,
                    updated_at TIMESTAMPTZ NOT NULL DEFAULT current_timestamp
                )`,
		},
		{
			ID:          "gatekit-002",
			Description: "Create role_assignments table",
			SQL: `
                CREATE TABLE IF NOT EXISTS role_assignments (
                    id BIGSERIAL PRIMARY KEY,
                    user_id BIGINT NOT NULL,
                    role_id BIGINT NOT NULL,
                    org_id BIGINT NOT NULL,
                    created_at TIMESTAMPTZ NOT NULL DEFAULT current_timestamp,
                    UNIQUE (user_id, role_id, org_id)
                )`,
		},
		{
			ID:          "gatekit-003",
			Description: "Create resource_authors table",
			SQL: `
                CREATE TABLE IF NOT EXISTS resource_authors (
                    id BIGSERIAL PRIMARY KEY,
                    resource_uid TEXT NOT NULL,
                    user_id BIGINT NOT NULL,
                    authorship TEXT NOT NULL,
                    status TEXT NOT NULL,
                    created_at TIMESTAMPTZ NOT NULL DEFAULT current_timestamp,
                    updated_at TIMESTAMPTZ NOT NULL DEFAULT current_timestamp,
                    UNIQUE (resource_uid, user_id)
                )`,
		},
		{
			ID:          "gatekit-004",
			Description: "Create resource_meta table",
			SQL: `
                CREATE TABLE IF NOT EXISTS resource_meta (
                    id BIGSERIAL PRIMARY KEY,
                    resource_uid TEXT NOT NULL UNIQUE,
                    element_type TEXT NOT NULL,
                    org_id BIGINT NOT NULL,
                    public BOOLEAN NOT NULL DEFAULT false,
                    created_at TIMESTAMPTZ NOT NULL DEFAULT current_timestamp,
                    updated_at TIMESTAMPTZ NOT NULL DEFAULT current_timestamp
                )`,
		},
		{
			ID:          "gatekit-005",
			Description: "Create organization_configs table",
			SQL: `
                CREATE TABLE IF NOT EXISTS organization_configs (
                    id BIGSERIAL PRIMARY KEY,
                    org_id BIGINT NOT NULL UNIQUE,
                    config JSONB NOT NULL DEFAULT '{}'::jsonb,
                    created_at TIMESTAMPTZ NOT NULL DEFAULT current_timestamp,
                    updated_at TIMESTAMPTZ NOT NULL DEFAULT current_timestamp
                )`,
		},
		{
			ID:          "gatekit-006",
			Description: "Seed standard global roles",
			SQL: `
                INSERT INTO roles (id, role_uid, org_id, name, description, role_type, rights)
                VALUES
                    (1, 'role_global_admin', 0, 'Admin', 'Full administrative rights over the organization.', 'global', '{}'::jsonb),
                    (2, 'role_global_maintainer', 0, 'Maintainer', 'Administrative rights except role management.', 'global', '{}'::jsonb),
                    (3, 'role_global_instructor', 0, 'Instructor', 'Creates courses and manages their own content.', 'global', '{}'::jsonb),
                    (4, 'role_global_user', 0, 'User', 'Read-only access to shared content.', 'global', '{}'::jsonb)
                ON CONFLICT (id) DO NOTHING`,
		},
		{
			ID:          "gatekit-007",
			Description: "Advance roles sequence past the seeded IDs",
			SQL: `
                SELECT setval('roles_id_seq', GREATEST(nextval('roles_id_seq'), 5), false)`,
		},
	}
}

// SeedStandardRoles writes the full rights matrices of the standard
// global roles. Run after migrations; the seed migration only reserves
// the IDs so the matrices stay defined in code, not SQL.
func (s *Service) SeedStandardRoles(ctx context.Context) error {
	for _, role := range StandardRoles() {
		role := role
		result, err := s.db.NewUpdate().
			Model(&role).
			Column("name", "description", "role_type", "rights").
			Where("id = ?", role.ID).
			Exec(ctx)
		if err = dbkit.WithErr(result, err, "SeedStandardRoles").Err(); err != nil {
			return NewError(ErrDatabaseError, "failed to seed standard roles")
		}
	}
	return nil
}
