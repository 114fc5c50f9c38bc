package twitter

import "context"

// DirectMessageConsumer polls the authenticated user's direct messages.
type DirectMessageConsumer struct{ bound }

func (*DirectMessageConsumer) Kind() string { return "directmessage" }

func (c *DirectMessageConsumer) Poll(ctx context.Context) ([]Status, error) {
	return call(c.bound, func(cl Client) ([]Status, error) { return cl.DirectMessages(ctx) })
}

// SearchConsumer polls search results for the "keywords" property.
type SearchConsumer struct{ bound }

func (*SearchConsumer) Kind() string { return "search" }

func (c *SearchConsumer) Poll(ctx context.Context) ([]Status, error) {
	return call(c.bound, func(cl Client) ([]Status, error) { return cl.Search(ctx, c.prop(PropKeywords)) })
}

// SampleConsumer polls the random sample stream.
type SampleConsumer struct{ bound }

func (*SampleConsumer) Kind() string { return "streaming/sample" }

func (c *SampleConsumer) Poll(ctx context.Context) ([]Status, error) {
	return call(c.bound, func(cl Client) ([]Status, error) { return cl.Sample(ctx) })
}

// FilterConsumer polls the filtered stream. The "keywords" property, when
// set, is passed as the track filter.
type FilterConsumer struct{ bound }

func (*FilterConsumer) Kind() string { return "streaming/filter" }

func (c *FilterConsumer) Poll(ctx context.Context) ([]Status, error) {
	return call(c.bound, func(cl Client) ([]Status, error) { return cl.Filter(ctx, c.prop(PropKeywords)) })
}

// HomeConsumer polls the home timeline.
type HomeConsumer struct{ bound }

func (*HomeConsumer) Kind() string { return "timeline/home" }

func (c *HomeConsumer) Poll(ctx context.Context) ([]Status, error) {
	return call(c.bound, func(cl Client) ([]Status, error) { return cl.HomeTimeline(ctx) })
}

// MentionsConsumer polls mentions of the authenticated user.
type MentionsConsumer struct{ bound }

func (*MentionsConsumer) Kind() string { return "timeline/mentions" }

func (c *MentionsConsumer) Poll(ctx context.Context) ([]Status, error) {
	return call(c.bound, func(cl Client) ([]Status, error) { return cl.Mentions(ctx) })
}

// PublicConsumer polls the public timeline. It is also the fallback consumer.
type PublicConsumer struct{ bound }

func (*PublicConsumer) Kind() string { return "timeline/public" }

func (c *PublicConsumer) Poll(ctx context.Context) ([]Status, error) {
	return call(c.bound, func(cl Client) ([]Status, error) { return cl.PublicTimeline(ctx) })
}

// RetweetsConsumer polls retweets of the authenticated user's statuses.
type RetweetsConsumer struct{ bound }

func (*RetweetsConsumer) Kind() string { return "timeline/retweetsofme" }

func (c *RetweetsConsumer) Poll(ctx context.Context) ([]Status, error) {
	return call(c.bound, func(cl Client) ([]Status, error) { return cl.RetweetsOfMe(ctx) })
}

// UserConsumer polls the timeline of the "user" property.
type UserConsumer struct{ bound }

func (*UserConsumer) Kind() string { return "timeline/user" }

func (c *UserConsumer) Poll(ctx context.Context) ([]Status, error) {
	return call(c.bound, func(cl Client) ([]Status, error) { return cl.UserTimeline(ctx, c.prop(PropUser)) })
}
