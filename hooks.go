package twitter

// Direction says which side of the endpoint a resolution was for.
type Direction string

const (
	DirConsumer Direction = "consumer"
	DirProducer Direction = "producer"
)

// OnResolveFunc is called after a handler has been built, including the
// fallback handler. kind is the handler's Kind.
type OnResolveFunc func(dir Direction, uri, kind string)

// OnFallbackFunc is called when the URI could not be mapped to a specific
// handler and the default was used instead. reason wraps ErrUnknownType or
// ErrNotImplemented.
type OnFallbackFunc func(dir Direction, uri string, reason error)

// OnInvalidFunc is called when resolution fails with a *ConfigError.
type OnInvalidFunc func(dir Direction, uri string, err error)

// hooks holds all configured hook functions.
type hooks struct {
	onResolve  []OnResolveFunc
	onFallback []OnFallbackFunc
	onInvalid  []OnInvalidFunc
}

// WithOnResolve adds a hook called after every successful resolution.
// Multiple hooks are called in order.
//
// Example:
//
//	twitter.WithOnResolve(func(dir twitter.Direction, uri, kind string) {
//	    metrics.Incr("twitter.resolve", "kind:"+kind)
//	})
func WithOnResolve(fn OnResolveFunc) Option {
	return func(r *Resolver) {
		r.hooks.onResolve = append(r.hooks.onResolve, fn)
	}
}

// WithOnFallback adds a hook called when the default handler is returned.
// It runs before the OnResolve hooks. Multiple hooks are called in order.
//
// Example:
//
//	twitter.WithOnFallback(func(dir twitter.Direction, uri string, reason error) {
//	    if errors.Is(reason, twitter.ErrNotImplemented) {
//	        alert("endpoint %s uses an unimplemented category", uri)
//	    }
//	})
func WithOnFallback(fn OnFallbackFunc) Option {
	return func(r *Resolver) {
		r.hooks.onFallback = append(r.hooks.onFallback, fn)
	}
}

// WithOnInvalid adds a hook called when a required property is missing.
// The error is still returned to the caller. Multiple hooks are called in order.
func WithOnInvalid(fn OnInvalidFunc) Option {
	return func(r *Resolver) {
		r.hooks.onInvalid = append(r.hooks.onInvalid, fn)
	}
}

func (r *Resolver) callOnResolve(dir Direction, uri, kind string) {
	for _, fn := range r.hooks.onResolve {
		fn(dir, uri, kind)
	}
}

func (r *Resolver) callOnFallback(dir Direction, uri string, reason error) {
	for _, fn := range r.hooks.onFallback {
		fn(dir, uri, reason)
	}
}

func (r *Resolver) callOnInvalid(dir Direction, uri string, err error) {
	for _, fn := range r.hooks.onInvalid {
		fn(dir, uri, err)
	}
}
