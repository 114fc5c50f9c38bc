package twitter

import (
	"context"
	"encoding/json"
)

// Handler is a consumer or producer bound to one endpoint configuration.
type Handler interface {
	// Kind returns the handler's route in "category/subcategory" form,
	// for logging and metrics.
	Kind() string

	// Endpoint returns the configuration the handler was built from.
	Endpoint() EndpointConfig
}

// Consumer reads statuses from one API family.
//
// Example:
//
//	c, err := twitter.ResolveConsumer("twitter://timeline/home", cfg)
//	if err != nil {
//	    return err
//	}
//	statuses, err := c.Poll(ctx)
type Consumer interface {
	Handler

	// Poll fetches the next batch of statuses through the Client.
	Poll(ctx context.Context) ([]Status, error)
}

// Producer writes to one API family.
type Producer interface {
	Handler

	// Publish sends text through the Client.
	Publish(ctx context.Context, text string) error
}

// Status is one item returned by the API. Its content is owned by the Client;
// handlers pass it through untouched.
type Status struct {
	ID   string
	User string
	Text string

	// Raw is the undecoded API payload, if the Client kept it.
	Raw json.RawMessage
}

// Client performs the network calls behind every handler. Authentication,
// rate limiting, and response decoding all live behind this interface.
type Client interface {
	HomeTimeline(ctx context.Context) ([]Status, error)
	Mentions(ctx context.Context) ([]Status, error)
	PublicTimeline(ctx context.Context) ([]Status, error)
	RetweetsOfMe(ctx context.Context) ([]Status, error)
	UserTimeline(ctx context.Context, user string) ([]Status, error)
	Search(ctx context.Context, keywords string) ([]Status, error)
	DirectMessages(ctx context.Context) ([]Status, error)
	Sample(ctx context.Context) ([]Status, error)
	Filter(ctx context.Context, keywords string) ([]Status, error)

	UpdateStatus(ctx context.Context, text string) error
	SendDirectMessage(ctx context.Context, recipient, text string) error
}

// bound is embedded by every handler.
type bound struct {
	cfg    EndpointConfig
	client Client
}

func (b bound) Endpoint() EndpointConfig { return b.cfg }

func (b bound) prop(key string) string {
	v, _ := b.cfg.Get(key)
	return v
}

// call runs fn against the client, or fails with ErrNoClient.
func call[T any](b bound, fn func(Client) (T, error)) (T, error) {
	if b.client == nil {
		var zero T
		return zero, ErrNoClient
	}
	return fn(b.client)
}
