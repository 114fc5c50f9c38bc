// Package twitter resolves twitter endpoint URIs into consumers and producers.
//
// An endpoint is a URI such as "twitter://timeline/home" plus a bag of
// properties. The package decides which handler the URI names, checks that
// the properties that handler needs are present, and builds it. The handler
// then does its work through a Client, which owns every network call.
//
// # Quick Start
//
//	r := twitter.New(twitter.WithClient(client))
//
//	cfg := twitter.EndpointConfig{
//	    URI:        "twitter://search?delay=60",
//	    Properties: twitter.MapProperties{"keywords": "golang"},
//	}
//
//	c, err := r.Consumer(cfg)
//	if err != nil {
//	    return err // *ConfigError: a required property is missing
//	}
//	statuses, err := c.Poll(ctx)
//
// # URI Structure
//
//	twitter:[//]category[/subcategory][?query]
//
// The query string is ignored here. Tokens match case-insensitively.
//
//	timeline/
//	    home          consumer
//	    mentions      consumer
//	    public        consumer (default consumer)
//	    retweetsofme  consumer
//	    user          consumer (needs "user"), producer
//	search            consumer (needs "keywords")
//	directmessage     consumer, producer (needs "recipientUser")
//	streaming/
//	    sample        consumer
//	    filter        consumer
//	trends/
//	    daily         reserved
//	    weekly        reserved
//	user              reserved
//	userlist          reserved
//
// # Defaults and Errors
//
// Two kinds of trouble are kept apart:
//
//   - The URI cannot be placed: it is empty, a token is unknown, the
//     sub-category is missing, or the category is reserved. The resolver logs
//     a warning and returns the default handler, *PublicConsumer for consumers
//     and *MockProducer for producers.
//   - The URI is clear but a property it needs is missing or blank. The
//     resolver returns a *ConfigError, which matches ErrInvalidArgument.
//
// Use WithOnFallback to see the first kind as it happens; the reason passed to
// the hook wraps ErrUnknownType or ErrNotImplemented.
//
// # Properties
//
// MapProperties covers the common case. JSONProperties reads a JSON document
// with gjson, so keys may be paths:
//
//	props, err := twitter.JSONProperties([]byte(`{"keywords":"go","auth":{"user":"alice"}}`))
//	props.GetString("auth.user") // "alice", true
//
// # Thread Safety
//
// Resolver is immutable after New. Consumer and Producer may be called from
// many goroutines.
package twitter
