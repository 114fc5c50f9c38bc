package twitter

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClient records the last call and its arguments.
type fakeClient struct {
	call string
	args []string
	err  error
}

func (f *fakeClient) record(call string, args ...string) ([]Status, error) {
	f.call = call
	f.args = args
	if f.err != nil {
		return nil, f.err
	}
	return []Status{{ID: "1", Text: call}}, nil
}

func (f *fakeClient) HomeTimeline(context.Context) ([]Status, error) { return f.record("home") }
func (f *fakeClient) Mentions(context.Context) ([]Status, error)     { return f.record("mentions") }
func (f *fakeClient) PublicTimeline(context.Context) ([]Status, error) {
	return f.record("public")
}
func (f *fakeClient) RetweetsOfMe(context.Context) ([]Status, error) { return f.record("retweets") }
func (f *fakeClient) UserTimeline(_ context.Context, user string) ([]Status, error) {
	return f.record("user", user)
}
func (f *fakeClient) Search(_ context.Context, keywords string) ([]Status, error) {
	return f.record("search", keywords)
}
func (f *fakeClient) DirectMessages(context.Context) ([]Status, error) { return f.record("dm") }
func (f *fakeClient) Sample(context.Context) ([]Status, error)         { return f.record("sample") }
func (f *fakeClient) Filter(_ context.Context, keywords string) ([]Status, error) {
	return f.record("filter", keywords)
}

func (f *fakeClient) UpdateStatus(_ context.Context, text string) error {
	_, err := f.record("update", text)
	return err
}

func (f *fakeClient) SendDirectMessage(_ context.Context, recipient, text string) error {
	_, err := f.record("send", recipient, text)
	return err
}

func TestConsumer_Poll(t *testing.T) {
	tests := map[string]struct {
		cfg      EndpointConfig
		wantCall string
		wantArgs []string
	}{
		"home":          {endpoint("twitter://timeline/home"), "home", nil},
		"mentions":      {endpoint("twitter://timeline/mentions"), "mentions", nil},
		"public":        {endpoint("twitter://timeline/public"), "public", nil},
		"retweets":      {endpoint("twitter://timeline/retweetsofme"), "retweets", nil},
		"user":          {endpoint("twitter://timeline/user", PropUser, "alice"), "user", []string{"alice"}},
		"search":        {endpoint("twitter://search", PropKeywords, "rust"), "search", []string{"rust"}},
		"directmessage": {endpoint("twitter://directmessage"), "dm", nil},
		"sample":        {endpoint("twitter://streaming/sample"), "sample", nil},
		"filter":        {endpoint("twitter://streaming/filter", PropKeywords, "go"), "filter", []string{"go"}},
		"filter no kw":  {endpoint("twitter://streaming/filter"), "filter", []string{""}},
		"fallback":      {endpoint("twitter://bogus"), "public", nil},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			fc := &fakeClient{}
			r := quietResolver(WithClient(fc))

			c, err := r.Consumer(tt.cfg)
			require.NoError(t, err)

			statuses, err := c.Poll(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.wantCall, fc.call)
			assert.Equal(t, tt.wantArgs, fc.args)
			assert.Len(t, statuses, 1)
		})
	}
}

func TestConsumer_PollErrors(t *testing.T) {
	t.Run("no client", func(t *testing.T) {
		c, err := quietResolver().Consumer(endpoint("twitter://timeline/home"))
		require.NoError(t, err)

		_, err = c.Poll(context.Background())
		assert.ErrorIs(t, err, ErrNoClient)
	})

	t.Run("client error is returned", func(t *testing.T) {
		wantErr := errors.New("rate limited")
		r := quietResolver(WithClient(&fakeClient{err: wantErr}))

		c, err := r.Consumer(endpoint("twitter://timeline/mentions"))
		require.NoError(t, err)

		_, err = c.Poll(context.Background())
		assert.ErrorIs(t, err, wantErr)
	})
}

func TestProducer_Publish(t *testing.T) {
	t.Run("direct message goes to recipient", func(t *testing.T) {
		fc := &fakeClient{}
		p, err := quietResolver(WithClient(fc)).Producer(endpoint("twitter://directmessage", PropRecipientUser, "bob"))
		require.NoError(t, err)

		require.NoError(t, p.Publish(context.Background(), "hi"))
		assert.Equal(t, "send", fc.call)
		assert.Equal(t, []string{"bob", "hi"}, fc.args)
	})

	t.Run("user producer updates status", func(t *testing.T) {
		fc := &fakeClient{}
		p, err := quietResolver(WithClient(fc)).Producer(endpoint("twitter://timeline/user"))
		require.NoError(t, err)

		require.NoError(t, p.Publish(context.Background(), "hello world"))
		assert.Equal(t, "update", fc.call)
		assert.Equal(t, []string{"hello world"}, fc.args)
	})

	t.Run("no client", func(t *testing.T) {
		p, err := quietResolver().Producer(endpoint("twitter://timeline/user"))
		require.NoError(t, err)
		assert.ErrorIs(t, p.Publish(context.Background(), "x"), ErrNoClient)
	})

	t.Run("client error is returned", func(t *testing.T) {
		wantErr := errors.New("duplicate status")
		p, err := quietResolver(WithClient(&fakeClient{err: wantErr})).Producer(endpoint("twitter://timeline/user"))
		require.NoError(t, err)
		assert.ErrorIs(t, p.Publish(context.Background(), "x"), wantErr)
	})
}

func TestMockProducer(t *testing.T) {
	fc := &fakeClient{}
	p, err := quietResolver(WithClient(fc)).Producer(endpoint("twitter://unknown/path"))
	require.NoError(t, err)

	mock, ok := p.(*MockProducer)
	require.True(t, ok)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, mock.Publish(context.Background(), "msg"))
		}()
	}
	wg.Wait()

	assert.Len(t, mock.Published(), 10)
	assert.Empty(t, fc.call, "mock must not touch the client")

	got := mock.Published()
	got[0] = "changed"
	assert.Equal(t, "msg", mock.Published()[0])
}

func TestHandlerKinds(t *testing.T) {
	kinds := map[string]Handler{
		"directmessage":         &DirectMessageConsumer{},
		"search":                &SearchConsumer{},
		"streaming/sample":      &SampleConsumer{},
		"streaming/filter":      &FilterConsumer{},
		"timeline/home":         &HomeConsumer{},
		"timeline/mentions":     &MentionsConsumer{},
		"timeline/public":       &PublicConsumer{},
		"timeline/retweetsofme": &RetweetsConsumer{},
		"timeline/user":         &UserConsumer{},
		"mock":                  &MockProducer{},
	}

	for want, h := range kinds {
		assert.Equal(t, want, h.Kind())
	}
	assert.Equal(t, "directmessage", (&DirectMessageProducer{}).Kind())
	assert.Equal(t, "timeline/user", (&UserProducer{}).Kind())
}
