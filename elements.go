package gatekit

import "strings"

// ElementType is the plural category name of a governed resource.
type ElementType string

// Governed element types.
const (
	ElementCourses        ElementType = "courses"
	ElementUsers          ElementType = "users"
	ElementUsergroups     ElementType = "usergroups"
	ElementHouses         ElementType = "houses"
	ElementOrganizations  ElementType = "organizations"
	ElementCourseChapters ElementType = "coursechapters"
	ElementCollections    ElementType = "collections"
	ElementActivities     ElementType = "activities"
	ElementRoles          ElementType = "roles"
)

// ElementDescriptor describes how a classified element is addressed:
// its plural type, its singular form, and the attribute name that
// carries its numeric key.
type ElementDescriptor struct {
	Type     ElementType
	Singular string
	IDField  string
}

// elementPrefixes maps the prefix token of an element UID (the part
// before the first underscore) to its descriptor. The table is fixed;
// unknown prefixes are a classification failure, never a default.
var elementPrefixes = map[string]ElementDescriptor{
	"course":       {Type: ElementCourses, Singular: "course", IDField: "course_id"},
	"courseupdate": {Type: ElementCourses, Singular: "course", IDField: "course_id"},
	"user":         {Type: ElementUsers, Singular: "user", IDField: "user_id"},
	"usergroup":    {Type: ElementUsergroups, Singular: "usergroup", IDField: "usergroup_id"},
	"house":        {Type: ElementHouses, Singular: "house", IDField: "house_id"},
	"org":          {Type: ElementOrganizations, Singular: "organization", IDField: "org_id"},
	"chapter":      {Type: ElementCourseChapters, Singular: "chapter", IDField: "chapter_id"},
	"collection":   {Type: ElementCollections, Singular: "collection", IDField: "collection_id"},
	"activity":     {Type: ElementActivities, Singular: "activity", IDField: "activity_id"},
	"role":         {Type: ElementRoles, Singular: "role", IDField: "role_id"},
}

// ClassifyElement resolves an element UID such as "course_a1b2" to its
// descriptor. Classification is pure: the verdict depends only on the
// prefix token, so the same input always yields the same descriptor.
// A UID without a separator is treated as a bare prefix, so "course"
// classifies the same as "course_a1b2".
//
// Example:
//
//	desc, err := gatekit.ClassifyElement("course_a1b2")
//	// desc.Type == gatekit.ElementCourses
//	// desc.Singular == "course"
//	// desc.IDField == "course_id"
func ClassifyElement(elementUID string) (ElementDescriptor, error) {
	prefix, _, _ := strings.Cut(elementUID, "_")
	desc, ok := elementPrefixes[prefix]
	if !ok {
		return ElementDescriptor{}, NewError(ErrConflict, "Issue verifying element nature").
			WithElement(elementUID)
	}
	return desc, nil
}

// ElementTypeOf returns only the element type of an element UID.
func ElementTypeOf(elementUID string) (ElementType, error) {
	desc, err := ClassifyElement(elementUID)
	if err != nil {
		return "", err
	}
	return desc.Type, nil
}

// SupportsPublicFlag reports whether instances of this element type can
// be marked publicly readable. Only courses and collections carry a
// public flag; every other type rejects public-only access.
func (t ElementType) SupportsPublicFlag() bool {
	return t == ElementCourses || t == ElementCollections
}
