package twitter

import (
	"fmt"
	"strings"
)

// Category is the top-level resource family named by the first URI segment.
type Category int

// Categories in canonical order. The zero value is not a valid category.
const (
	DirectMessage Category = iota + 1
	Search
	Streaming
	Timeline
	Trends
	User
	UserList
)

var categoryNames = map[Category]string{
	DirectMessage: "directmessage",
	Search:        "search",
	Streaming:     "streaming",
	Timeline:      "timeline",
	Trends:        "trends",
	User:          "user",
	UserList:      "userlist",
}

// String returns the canonical lowercase key of c.
func (c Category) String() string {
	if s, ok := categoryNames[c]; ok {
		return s
	}
	return fmt.Sprintf("category(%d)", int(c))
}

// SubCategory refines a Category and is named by the second URI segment.
// Which values are valid depends on the category; see SubCategories.
type SubCategory int

// Sub-categories, grouped by family.
const (
	// Timeline family.
	Home SubCategory = iota + 1
	Mentions
	Public
	RetweetsOfMe
	UserTimeline

	// Streaming family.
	Sample
	Filter

	// Trends family.
	Daily
	Weekly
)

var subCategoryNames = map[SubCategory]string{
	Home:         "home",
	Mentions:     "mentions",
	Public:       "public",
	RetweetsOfMe: "retweetsofme",
	UserTimeline: "user",
	Sample:       "sample",
	Filter:       "filter",
	Daily:        "daily",
	Weekly:       "weekly",
}

// String returns the canonical lowercase key of s.
func (s SubCategory) String() string {
	if name, ok := subCategoryNames[s]; ok {
		return name
	}
	return fmt.Sprintf("subcategory(%d)", int(s))
}

// Lookup tables are derived once from the ordered lists below so that every
// value has exactly one key.
var (
	categoryOrder = []Category{DirectMessage, Search, Streaming, Timeline, Trends, User, UserList}

	subCategoryOrder = map[Category][]SubCategory{
		Timeline:  {Home, Mentions, Public, RetweetsOfMe, UserTimeline},
		Streaming: {Sample, Filter},
		Trends:    {Daily, Weekly},
	}

	categoryByKey    = indexCategories()
	subCategoryByKey = indexSubCategories()
)

func indexCategories() map[string]Category {
	m := make(map[string]Category, len(categoryOrder))
	for _, c := range categoryOrder {
		m[c.String()] = c
	}
	return m
}

func indexSubCategories() map[Category]map[string]SubCategory {
	m := make(map[Category]map[string]SubCategory, len(subCategoryOrder))
	for c, subs := range subCategoryOrder {
		family := make(map[string]SubCategory, len(subs))
		for _, s := range subs {
			family[s.String()] = s
		}
		m[c] = family
	}
	return m
}

// Categories returns every category in canonical order.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// SubCategories returns the sub-categories valid for c, in canonical order.
// Categories without a family (search, directmessage, user, userlist)
// return nil.
func SubCategories(c Category) []SubCategory {
	subs := subCategoryOrder[c]
	if len(subs) == 0 {
		return nil
	}
	out := make([]SubCategory, len(subs))
	copy(out, subs)
	return out
}

// ParseCategory maps a URI segment to a Category, ignoring case.
// Unknown segments return an error wrapping ErrUnknownType.
func ParseCategory(segment string) (Category, error) {
	if c, ok := categoryByKey[strings.ToLower(segment)]; ok {
		return c, nil
	}
	return 0, &typeError{family: "category", token: segment}
}

// ParseSubCategory maps a URI segment to a SubCategory within c's family,
// ignoring case. Unknown segments, and categories with no family, return an
// error wrapping ErrUnknownType.
func ParseSubCategory(c Category, segment string) (SubCategory, error) {
	if s, ok := subCategoryByKey[c][strings.ToLower(segment)]; ok {
		return s, nil
	}
	return 0, &typeError{family: c.String(), token: segment}
}
