package twitter

import "strings"

// Requirement checks an endpoint's properties before a handler is built.
type Requirement interface {
	Satisfied(p Properties) bool
}

// NonBlank returns a Requirement that is satisfied when every key is present
// and holds a string that is not empty after trimming whitespace.
func NonBlank(keys ...string) Requirement {
	return nonBlank{keys: keys}
}

type nonBlank struct {
	keys []string
}

func (r nonBlank) Satisfied(p Properties) bool {
	for _, k := range r.keys {
		if p == nil {
			return false
		}
		v, ok := p.GetString(k)
		if !ok || strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}

// All returns a Requirement satisfied when all requirements are.
func All(rs ...Requirement) Requirement {
	return all{rs: rs}
}

type all struct {
	rs []Requirement
}

func (r all) Satisfied(p Properties) bool {
	for _, req := range r.rs {
		if !req.Satisfied(p) {
			return false
		}
	}
	return true
}

// Any returns a Requirement satisfied when at least one requirement is.
func Any(rs ...Requirement) Requirement {
	return anyOf{rs: rs}
}

type anyOf struct {
	rs []Requirement
}

func (r anyOf) Satisfied(p Properties) bool {
	for _, req := range r.rs {
		if req.Satisfied(p) {
			return true
		}
	}
	return false
}
