// Package gatekit provides an authorization and feature-quota enforcement system
// for multi-tenant platforms.
//
// GateKit answers two questions for every request: "may this user perform this
// action on this element?" (roles, authorship, and public visibility) and "has
// this organization exhausted its quota for this feature?" (per-organization
// feature flags and usage limits).
//
// # Core Concepts
//
// Element UID: A prefixed string identifier like "course_abc123" or "org_42".
// The prefix classifies the element into a category (courses, organizations,
// collections, ...) without any lookup.
//
// Rights: A per-role matrix of create/read/update/delete grants for each
// element category. Courses additionally carry "own" variants that only apply
// to elements the user authored.
//
// Authorship: A per-resource record linking a user to a resource as creator,
// maintainer, contributor, or reporter. Only active authorship confers access.
//
// Feature quota: Per-organization configuration mapping features (ai, courses,
// members, ...) to an enabled flag and a usage limit. Usage counts live in a
// counter store keyed by "{feature}_usage:{orgID}".
//
// # Key Features
//
//   - Prefix-based element classification, no database round trip
//   - Role aggregation: permissions are the UNION across all assigned roles
//   - Authorship OR role grants: either path admits the request
//   - Public elements readable by anonymous users (courses and collections)
//   - Standard global roles (Admin, Maintainer, Instructor, User) seeded by ID
//   - Per-organization feature flags with limits; limit 0 means unlimited
//   - Redis-backed usage counters with increment/decrement helpers
//   - DBKit integration: uses your existing database connection
//
// # Basic Usage
//
//	// 1. Create the service
//	db, _ := dbkit.New(dbkit.Config{URL: databaseURL})
//	counter, _ := gatekit.NewRedisCounter(ctx, redisURL)
//	service := gatekit.NewService(db, gatekit.WithUsageCounter(counter))
//
//	// 2. Run migrations and seed the standard roles
//	db.Migrate(ctx, service.Migrations())
//	service.SeedStandardRoles(ctx)
//
//	// 3. Assign roles
//	service.AssignRole(ctx, userID, gatekit.RoleInstructorID, orgID)
//
//	// 4. Check access
//	err := service.AuthorizeRolesAndAuthorship(ctx, userID, gatekit.ActionUpdate, "course_abc", orgID)
//	if gatekit.IsForbidden(err) {
//	    // denied
//	}
//
//	// 5. Enforce feature quotas
//	if err := service.CheckLimitsWithUsage(ctx, gatekit.FeatureAI, orgID); err == nil {
//	    service.IncreaseFeatureUsage(ctx, gatekit.FeatureAI, orgID)
//	}
//
// # Middleware Usage
//
//	mw := gatekit.NewMiddleware(service, gatekit.WithPrincipalExtractor(fromSession))
//
//	handler := mw.Attach(mux)
//
//	mux.Handle("/courses/{courseID}", mw.RequireAction(gatekit.ActionRead, func(r *http.Request) string {
//	    return r.PathValue("courseID")
//	})(courseHandler))
//
//	mux.Handle("/ai/ask", mw.RequireFeature(gatekit.FeatureAI)(askHandler))
//
// # Request-scoped Checks
//
// A Checker binds a Principal (user and organization) to the service so
// handlers do not thread IDs through every call:
//
//	checker := gatekit.NewChecker(principal, service)
//	if err := checker.Authorize(ctx, gatekit.ActionDelete, "course_abc"); err != nil {
//	    // gatekit.IsUnauthorized(err) for anonymous callers,
//	    // gatekit.IsForbidden(err) for authenticated ones
//	}
//
// Anonymous callers (UserID 0) may only read public elements; every other
// action fails with ErrUnauthorized.
package gatekit
