package twitter

import (
	"context"
	"sync"
)

// DirectMessageProducer sends each published text to the "recipientUser"
// property as a direct message.
type DirectMessageProducer struct{ bound }

func (*DirectMessageProducer) Kind() string { return "directmessage" }

func (p *DirectMessageProducer) Publish(ctx context.Context, text string) error {
	_, err := call(p.bound, func(cl Client) (struct{}, error) {
		return struct{}{}, cl.SendDirectMessage(ctx, p.prop(PropRecipientUser), text)
	})
	return err
}

// UserProducer posts each published text as a status update.
type UserProducer struct{ bound }

func (*UserProducer) Kind() string { return "timeline/user" }

func (p *UserProducer) Publish(ctx context.Context, text string) error {
	_, err := call(p.bound, func(cl Client) (struct{}, error) {
		return struct{}{}, cl.UpdateStatus(ctx, text)
	})
	return err
}

// MockProducer is the fallback producer. It never calls the Client; it only
// records what was published.
type MockProducer struct {
	bound

	mu        sync.Mutex
	published []string
}

func (*MockProducer) Kind() string { return "mock" }

func (p *MockProducer) Publish(_ context.Context, text string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.published = append(p.published, text)
	return nil
}

// Published returns a copy of every text passed to Publish, in order.
func (p *MockProducer) Published() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.published))
	copy(out, p.published)
	return out
}
