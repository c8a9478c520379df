package geolib

import "net"

// Resolver performs a geolocation query of a given class for an
// address. Implementations must be safe for concurrent use.
type Resolver interface {
	Resolve(ip net.IP, mode LookupMode) (Resolution, error)
}

// Logger receives events the engine considers worth reporting. The
// library itself stays silent if you do not provide one.
type Logger interface {
	// LookupError reports a failed resolution. Enrichment proceeds
	// without attributes.
	LookupError(ip net.IP, err error)

	// ParseError reports an address candidate which could not be
	// parsed. This is a routine event for garbage headers.
	ParseError(raw string, err error)
}

// Metrics receives counters of engine activity.
type Metrics interface {
	LookupOK(mode LookupMode)
	LookupFailed(mode LookupMode)
	CacheHit()
	CacheMiss()
	CandidateDiscarded()
}

// NoopLogger is a Logger which does nothing.
type NoopLogger struct{}

func (n NoopLogger) LookupError(ip net.IP, err error) {}

func (n NoopLogger) ParseError(raw string, err error) {}

// NopMetrics is a Metrics which does nothing.
type NopMetrics struct{}

func (n NopMetrics) LookupOK(mode LookupMode)     {}
func (n NopMetrics) LookupFailed(mode LookupMode) {}
func (n NopMetrics) CacheHit()                    {}
func (n NopMetrics) CacheMiss()                   {}
func (n NopMetrics) CandidateDiscarded()          {}
