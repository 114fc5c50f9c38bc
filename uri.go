package twitter

import "strings"

// Scheme is the URI scheme token stripped by SplitURI.
const Scheme = "twitter:"

// SplitURI normalizes a raw endpoint URI into its path segments.
//
// The literal "twitter:" prefix and an optional "//" after it are removed,
// everything from the first '?' is dropped, and the rest is split on '/'.
// Empty segments produced by consecutive separators are kept. An empty
// remainder yields no segments.
//
//	SplitURI("twitter://timeline/home?count=10") // ["timeline" "home"]
//	SplitURI("twitter:search")                    // ["search"]
//	SplitURI("twitter://")                        // []
func SplitURI(uri string) []string {
	uri = strings.TrimPrefix(uri, Scheme)
	uri = strings.TrimPrefix(uri, "//")
	uri, _, _ = strings.Cut(uri, "?")
	if uri == "" {
		return nil
	}
	return strings.Split(uri, "/")
}

// Route is the typed form of an endpoint URI.
type Route struct {
	Category    Category
	SubCategory SubCategory

	// HasSub reports whether the URI carried a second segment that resolved
	// within Category's family.
	HasSub bool
}

// String returns the canonical "category[/subcategory]" form.
func (r Route) String() string {
	if !r.HasSub {
		return r.Category.String()
	}
	return r.Category.String() + "/" + r.SubCategory.String()
}

// Describe resolves uri into a Route without building a handler.
// It fails with ErrUnknownType when the first segment is missing or unknown.
// An unknown second segment is not an error; HasSub is false in that case.
func Describe(uri string) (Route, error) {
	segs := SplitURI(uri)
	if len(segs) == 0 {
		return Route{}, errMissingCategory
	}
	cat, err := ParseCategory(segs[0])
	if err != nil {
		return Route{}, err
	}
	r := Route{Category: cat}
	if len(segs) > 1 {
		if sub, err := ParseSubCategory(cat, segs[1]); err == nil {
			r.SubCategory = sub
			r.HasSub = true
		}
	}
	return r, nil
}
