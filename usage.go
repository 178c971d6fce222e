package gatekit

import (
	"context"
	"fmt"
)

// UsageKey returns the counter-store key for a (feature, organization)
// pair: "{feature}_usage:{orgID}".
func UsageKey(feature Feature, orgID int64) string {
	return fmt.Sprintf("%s_usage:%d", feature, orgID)
}

// CheckLimitsWithUsage verifies that the organization still has quota
// headroom for the feature. It renders a verdict only; usage is never
// mutated here. Callers increment after a successful action and
// decrement on rollback, so check-then-increment is not atomic: two
// concurrent requests can both pass the check and overshoot the limit
// by up to the concurrency degree minus one. Deployments needing a
// strict bound must use an atomic increment-and-compare counter.
//
// Failure modes:
//
//	ErrNotFound  - organization has no configuration row
//	ErrForbidden - feature disabled, or usage has reached the limit
//	ErrInternal  - no usage counter store configured (deployment error)
func (s *Service) CheckLimitsWithUsage(ctx context.Context, feature Feature, orgID int64) error {
	config, err := s.configs.OrgConfig(ctx, orgID)
	if err != nil {
		return err
	}
	if config == nil {
		return NewError(ErrNotFound, "Organization has no config").
			WithFeature(feature).
			WithOrg(orgID)
	}

	flags := config.Config.Features.Flags(feature)
	if !flags.Enabled {
		return NewError(ErrForbidden, fmt.Sprintf("%s is not enabled for this organization", feature.Title())).
			WithFeature(feature).
			WithOrg(orgID)
	}

	if s.counter == nil {
		return NewError(ErrInternal, "usage counter store is not configured").
			WithFeature(feature).
			WithOrg(orgID)
	}

	// Limit 0 means unlimited: no comparison at all.
	if flags.Limit == 0 {
		return nil
	}

	usage, _, err := s.counter.Get(ctx, UsageKey(feature, orgID))
	if err != nil {
		return NewError(ErrInternal, "usage counter read failed").
			WithFeature(feature).
			WithOrg(orgID)
	}

	if usage >= flags.Limit {
		return NewError(ErrForbidden, fmt.Sprintf("Usage Limit has been reached for %s", feature.Title())).
			WithFeature(feature).
			WithOrg(orgID)
	}

	return nil
}

// IncreaseFeatureUsage records one unit of consumption for the feature.
// An absent counter reads as zero, so the first increment sets it to 1.
func (s *Service) IncreaseFeatureUsage(ctx context.Context, feature Feature, orgID int64) error {
	return s.adjustUsage(ctx, feature, orgID, +1)
}

// DecreaseFeatureUsage reverses one unit of consumption, typically on
// rollback or deletion. The value is not clamped at zero: repeated
// decrements without matching increments leave a negative counter.
func (s *Service) DecreaseFeatureUsage(ctx context.Context, feature Feature, orgID int64) error {
	return s.adjustUsage(ctx, feature, orgID, -1)
}

func (s *Service) adjustUsage(ctx context.Context, feature Feature, orgID int64, delta int64) error {
	if s.counter == nil {
		return NewError(ErrInternal, "usage counter store is not configured").
			WithFeature(feature).
			WithOrg(orgID)
	}

	key := UsageKey(feature, orgID)
	current, _, err := s.counter.Get(ctx, key)
	if err != nil {
		return NewError(ErrInternal, "usage counter read failed").
			WithFeature(feature).
			WithOrg(orgID)
	}

	if err := s.counter.Set(ctx, key, current+delta); err != nil {
		return NewError(ErrInternal, "usage counter write failed").
			WithFeature(feature).
			WithOrg(orgID)
	}

	return nil
}

// FeatureUsage reads the current usage counter for a (feature,
// organization) pair. An absent counter reads as zero.
func (s *Service) FeatureUsage(ctx context.Context, feature Feature, orgID int64) (int64, error) {
	if s.counter == nil {
		return 0, NewError(ErrInternal, "usage counter store is not configured").
			WithFeature(feature).
			WithOrg(orgID)
	}

	usage, _, err := s.counter.Get(ctx, UsageKey(feature, orgID))
	if err != nil {
		return 0, NewError(ErrInternal, "usage counter read failed").
			WithFeature(feature).
			WithOrg(orgID)
	}
	return usage, nil
}
