package twitter

import (
	"errors"

	"github.com/tidwall/gjson"
)

// Property keys read by the resolver. Every other key is opaque here and only
// travels with the EndpointConfig to the handler.
const (
	PropKeywords      = "keywords"
	PropUser          = "user"
	PropRecipientUser = "recipientUser"
)

// ErrInvalidJSON is returned when a JSON property document is not valid JSON.
var ErrInvalidJSON = errors.New("invalid JSON")

// Properties is the read-only property bag of an endpoint.
type Properties interface {
	// HasField returns true if key is present.
	HasField(key string) bool

	// GetString returns the string value at key, or false if not found
	// or not a string.
	GetString(key string) (string, bool)
}

// EndpointConfig is an endpoint URI plus its properties. The resolver only
// reads it, and every handler it builds keeps a copy.
type EndpointConfig struct {
	URI        string
	Properties Properties
}

// Get returns the string property at key. A nil property bag behaves as empty.
func (c EndpointConfig) Get(key string) (string, bool) {
	if c.Properties == nil {
		return "", false
	}
	return c.Properties.GetString(key)
}

// MapProperties is a Properties backed by a plain map.
type MapProperties map[string]string

func (m MapProperties) HasField(key string) bool {
	_, ok := m[key]
	return ok
}

func (m MapProperties) GetString(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// JSONProperties parses raw as a JSON object and returns a Properties that
// uses gjson for lookups. Keys may be gjson paths, so nested documents such
// as {"search":{"keywords":"go"}} can be read with "search.keywords".
func JSONProperties(raw []byte) (Properties, error) {
	if !gjson.ValidBytes(raw) {
		return nil, ErrInvalidJSON
	}
	if !gjson.ParseBytes(raw).IsObject() {
		return nil, ErrInvalidJSON
	}
	return jsonProperties{raw: raw}, nil
}

type jsonProperties struct {
	raw []byte
}

func (p jsonProperties) HasField(key string) bool {
	return gjson.GetBytes(p.raw, key).Exists()
}

func (p jsonProperties) GetString(key string) (string, bool) {
	r := gjson.GetBytes(p.raw, key)
	if !r.Exists() {
		return "", false
	}
	if r.Type != gjson.String {
		return "", false
	}
	return r.String(), true
}
