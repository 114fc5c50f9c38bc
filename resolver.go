package twitter

import (
	"errors"
	"fmt"
	"log/slog"
)

// Properties each handler needs before it can be built.
var (
	searchRequires       = NonBlank(PropKeywords)
	userTimelineRequires = NonBlank(PropUser)
	dmProducerRequires   = NonBlank(PropRecipientUser)
)

// Resolver turns endpoint configurations into handlers.
//
// Usage:
//  1. Create a resolver with New
//  2. Call Consumer or Producer for each endpoint
//
// A Resolver is immutable after New and safe for concurrent use. Every call
// builds a new handler; nothing is cached.
type Resolver struct {
	client Client
	logger *slog.Logger
	hooks  hooks
}

// Option configures a Resolver.
type Option func(*Resolver)

// New creates a Resolver with the given options.
//
// Example:
//
//	r := twitter.New(
//	    twitter.WithClient(client),
//	    twitter.WithLogger(logger),
//	    twitter.WithOnFallback(func(dir twitter.Direction, uri string, reason error) {
//	        logger.Warn("defaulted endpoint", "uri", uri, "reason", reason)
//	    }),
//	)
func New(opts ...Option) *Resolver {
	r := &Resolver{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// WithClient sets the Client handed to every handler. Handlers built without
// one fail with ErrNoClient when invoked.
func WithClient(c Client) Option {
	return func(r *Resolver) {
		r.client = c
	}
}

// WithLogger sets the logger. By default slog.Default() is used at call time.
func WithLogger(l *slog.Logger) Option {
	return func(r *Resolver) {
		r.logger = l
	}
}

func (r *Resolver) log() *slog.Logger {
	if r.logger != nil {
		return r.logger
	}
	return slog.Default()
}

var defaultResolver = New()

// ResolveConsumer resolves uri against cfg's properties with a Resolver that
// has no Client and logs to slog.Default(). uri replaces cfg.URI.
func ResolveConsumer(uri string, cfg EndpointConfig) (Consumer, error) {
	cfg.URI = uri
	return defaultResolver.Consumer(cfg)
}

// ResolveProducer is the producer counterpart of ResolveConsumer.
func ResolveProducer(uri string, cfg EndpointConfig) (Producer, error) {
	cfg.URI = uri
	return defaultResolver.Producer(cfg)
}

// Consumer builds the consumer named by cfg.URI.
//
// The only errors are *ConfigError values (matching ErrInvalidArgument):
// search without "keywords" and timeline/user without "user". Anything the
// resolver cannot place, including an empty URI, an unknown token, a missing
// sub-category, or an unimplemented category, yields a *PublicConsumer and a
// warning instead.
func (r *Resolver) Consumer(cfg EndpointConfig) (Consumer, error) {
	b := bound{cfg: cfg, client: r.client}

	c, err := selectConsumer(SplitURI(cfg.URI), b)

	var cerr *ConfigError
	if errors.As(err, &cerr) {
		r.callOnInvalid(DirConsumer, cfg.URI, cerr)
		return nil, cerr
	}

	if c == nil {
		c = &PublicConsumer{b}
		r.fallback(DirConsumer, cfg.URI, err, c.Kind(),
			"no consumer type was specified, or the type/sub-type pairing was invalid")
	} else {
		r.log().Debug("resolved consumer", "uri", cfg.URI, "handler", c.Kind())
	}

	r.callOnResolve(DirConsumer, cfg.URI, c.Kind())
	return c, nil
}

// Producer builds the producer named by cfg.URI.
//
// The only error is a *ConfigError for directmessage without
// "recipientUser". Everything else the resolver cannot place yields a
// *MockProducer and a warning.
func (r *Resolver) Producer(cfg EndpointConfig) (Producer, error) {
	b := bound{cfg: cfg, client: r.client}

	p, err := selectProducer(SplitURI(cfg.URI), b)

	var cerr *ConfigError
	if errors.As(err, &cerr) {
		r.callOnInvalid(DirProducer, cfg.URI, cerr)
		return nil, cerr
	}

	if p == nil {
		p = &MockProducer{bound: b}
		r.fallback(DirProducer, cfg.URI, err, p.Kind(),
			"no producer type was specified, or the type/sub-type pairing was invalid")
	} else {
		r.log().Debug("resolved producer", "uri", cfg.URI, "handler", p.Kind())
	}

	r.callOnResolve(DirProducer, cfg.URI, p.Kind())
	return p, nil
}

func (r *Resolver) fallback(dir Direction, uri string, reason error, kind, msg string) {
	r.log().Warn(msg,
		slog.String("direction", string(dir)),
		slog.String("uri", uri),
		slog.Any("reason", reason),
		slog.String("default", kind),
	)
	r.callOnFallback(dir, uri, reason)
}

// selectConsumer walks the category decision table. A nil consumer with a
// non-ConfigError error means "use the default".
func selectConsumer(segs []string, b bound) (Consumer, error) {
	if len(segs) == 0 {
		return nil, errMissingCategory
	}
	cat, err := ParseCategory(segs[0])
	if err != nil {
		return nil, err
	}

	switch cat {
	case DirectMessage:
		return &DirectMessageConsumer{b}, nil

	case Search:
		if !searchRequires.Satisfied(b.cfg.Properties) {
			return nil, &ConfigError{Category: cat, Property: PropKeywords, Message: "SEARCH requires keywords"}
		}
		return &SearchConsumer{b}, nil

	case Streaming:
		sub, err := subCategory(cat, segs)
		if err != nil {
			return nil, err
		}
		switch sub {
		case Sample:
			return &SampleConsumer{b}, nil
		case Filter:
			return &FilterConsumer{b}, nil
		default:
			return nil, notImplemented(cat, sub)
		}

	case Timeline:
		sub, err := subCategory(cat, segs)
		if err != nil {
			return nil, err
		}
		switch sub {
		case Home:
			return &HomeConsumer{b}, nil
		case Mentions:
			return &MentionsConsumer{b}, nil
		case Public:
			return &PublicConsumer{b}, nil
		case RetweetsOfMe:
			return &RetweetsConsumer{b}, nil
		case UserTimeline:
			if !userTimelineRequires.Satisfied(b.cfg.Properties) {
				return nil, &ConfigError{Category: cat, Property: PropUser, Message: "USER timeline requires a user"}
			}
			return &UserConsumer{b}, nil
		default:
			return nil, notImplemented(cat, sub)
		}

	case Trends:
		// TODO: daily and weekly trend consumers once Client grows a trends call.
		sub, err := subCategory(cat, segs)
		if err != nil {
			return nil, err
		}
		return nil, notImplemented(cat, sub)

	case User, UserList:
		return nil, fmt.Errorf("%w: %s consumer", ErrNotImplemented, cat)

	default:
		return nil, fmt.Errorf("%w: no consumer for %s", ErrNotImplemented, cat)
	}
}

// selectProducer is the producer decision table.
func selectProducer(segs []string, b bound) (Producer, error) {
	if len(segs) == 0 {
		return nil, errMissingCategory
	}
	cat, err := ParseCategory(segs[0])
	if err != nil {
		return nil, err
	}

	switch cat {
	case DirectMessage:
		if !dmProducerRequires.Satisfied(b.cfg.Properties) {
			return nil, &ConfigError{
				Category: cat,
				Property: PropRecipientUser,
				Message:  "DIRECT MESSAGE producer requires a recipient user",
			}
		}
		return &DirectMessageProducer{b}, nil

	case Timeline:
		sub, err := subCategory(cat, segs)
		if err != nil {
			return nil, err
		}
		if sub == UserTimeline {
			return &UserProducer{b}, nil
		}
		return nil, notImplemented(cat, sub)

	default:
		return nil, fmt.Errorf("%w: no producer for %s", ErrNotImplemented, cat)
	}
}

// subCategory resolves the second segment within cat's family.
func subCategory(cat Category, segs []string) (SubCategory, error) {
	if len(segs) < 2 {
		return 0, errMissingSubCategory
	}
	return ParseSubCategory(cat, segs[1])
}

func notImplemented(cat Category, sub SubCategory) error {
	return fmt.Errorf("%w: %s/%s", ErrNotImplemented, cat, sub)
}
