package gatekit

// Feature is one of the closed set of plan-governed features.
type Feature string

// The closed feature set. Limits and enablement are configured per
// organization for each of these.
const (
	FeatureAI            Feature = "ai"
	FeatureAnalytics     Feature = "analytics"
	FeatureAPI           Feature = "api"
	FeatureAssignments   Feature = "assignments"
	FeatureCollaboration Feature = "collaboration"
	FeatureCourses       Feature = "courses"
	FeatureDiscussions   Feature = "discussions"
	FeatureMembers       Feature = "members"
	FeaturePayments      Feature = "payments"
	FeatureStorage       Feature = "storage"
	FeatureUsergroups    Feature = "usergroups"
)

// Features lists every governed feature.
func Features() []Feature {
	return []Feature{
		FeatureAI,
		FeatureAnalytics,
		FeatureAPI,
		FeatureAssignments,
		FeatureCollaboration,
		FeatureCourses,
		FeatureDiscussions,
		FeatureMembers,
		FeaturePayments,
		FeatureStorage,
		FeatureUsergroups,
	}
}

// IsValid reports whether the feature belongs to the closed set.
func (f Feature) IsValid() bool {
	switch f {
	case FeatureAI, FeatureAnalytics, FeatureAPI, FeatureAssignments,
		FeatureCollaboration, FeatureCourses, FeatureDiscussions,
		FeatureMembers, FeaturePayments, FeatureStorage, FeatureUsergroups:
		return true
	}
	return false
}

// Title returns the feature name with its first letter upper-cased, the
// form used in user-facing denial details ("Ai", "Storage").
func (f Feature) Title() string {
	s := string(f)
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-'a'+'A') + s[1:]
	}
	return s
}

// FeatureFlags is the per-feature configuration of an organization:
// whether the feature is enabled and how many units it may consume.
// Limit 0 means unlimited.
type FeatureFlags struct {
	Enabled bool  `json:"enabled"`
	Limit   int64 `json:"limit"`
}

// OrgFeatures maps each feature to its flags for one organization.
// Absent entries are treated as disabled.
type OrgFeatures map[Feature]FeatureFlags

// Flags returns the flags for a feature, zero-valued (disabled) when
// the feature has no entry.
func (of OrgFeatures) Flags(feature Feature) FeatureFlags {
	return of[feature]
}
