// Package metrics counts endpoint resolutions with Prometheus.
//
//	m := metrics.New()
//	if err := m.Register(prometheus.DefaultRegisterer); err != nil {
//	    return err
//	}
//	r := twitter.New(m.Options()...)
package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	twitter "github.com/francois/camel-twitter"
)

// Fallback reasons used as the "reason" label.
const (
	ReasonUnknownType    = "unknown_type"
	ReasonNotImplemented = "not_implemented"
	ReasonOther          = "other"
)

// Metrics holds the resolution counters.
type Metrics struct {
	Resolutions *prometheus.CounterVec
	Fallbacks   *prometheus.CounterVec
	Invalid     *prometheus.CounterVec
}

// New creates unregistered counters.
func New() *Metrics {
	return &Metrics{
		Resolutions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "twitter",
				Subsystem: "endpoint",
				Name:      "resolutions_total",
				Help:      "Handlers built, by direction and handler kind",
			},
			[]string{"direction", "kind"},
		),

		Fallbacks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "twitter",
				Subsystem: "endpoint",
				Name:      "fallbacks_total",
				Help:      "Resolutions that returned the default handler",
			},
			[]string{"direction", "reason"},
		),

		Invalid: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "twitter",
				Subsystem: "endpoint",
				Name:      "invalid_total",
				Help:      "Resolutions rejected for a missing required property",
			},
			[]string{"direction", "property"},
		),
	}
}

// Register adds every counter to reg.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{m.Resolutions, m.Fallbacks, m.Invalid} {
		if err := reg.Register(c); err != nil {
			return fmt.Errorf("metrics: register: %w", err)
		}
	}
	return nil
}

// Options returns resolver hooks that update the counters.
func (m *Metrics) Options() []twitter.Option {
	return []twitter.Option{
		twitter.WithOnResolve(func(dir twitter.Direction, _, kind string) {
			m.Resolutions.WithLabelValues(string(dir), kind).Inc()
		}),
		twitter.WithOnFallback(func(dir twitter.Direction, _ string, reason error) {
			m.Fallbacks.WithLabelValues(string(dir), reasonLabel(reason)).Inc()
		}),
		twitter.WithOnInvalid(func(dir twitter.Direction, _ string, err error) {
			property := ""
			var cerr *twitter.ConfigError
			if errors.As(err, &cerr) {
				property = cerr.Property
			}
			m.Invalid.WithLabelValues(string(dir), property).Inc()
		}),
	}
}

func reasonLabel(reason error) string {
	switch {
	case errors.Is(reason, twitter.ErrUnknownType):
		return ReasonUnknownType
	case errors.Is(reason, twitter.ErrNotImplemented):
		return ReasonNotImplemented
	default:
		return ReasonOther
	}
}
